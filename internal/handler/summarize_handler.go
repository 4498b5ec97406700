package handler

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"legibrief/internal/port"
	"legibrief/internal/service"
)

const maxUploadBytes = 10 << 20

// SummarizeHandler handles PDF upload and analysis.
type SummarizeHandler struct {
	analyzeService service.AnalyzeService
	extractor      port.TextExtractor
	store          port.UploadStore
}

// NewSummarizeHandler creates a new SummarizeHandler.
func NewSummarizeHandler(analyzeService service.AnalyzeService, extractor port.TextExtractor, store port.UploadStore) *SummarizeHandler {
	return &SummarizeHandler{analyzeService: analyzeService, extractor: extractor, store: store}
}

// Summarize handles POST /api/summarize. It accepts a multipart upload with a
// single "file" field holding a PDF, stores it transiently, extracts its text,
// runs the analysis workflow, and returns the normalized record. The stored
// file is removed on every exit path.
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxUploadBytes {
		RespondError(c, http.StatusBadRequest, "File exceeds the maximum allowed size of 10MB")
		return
	}
	if !isPDF(header.Filename, file) {
		RespondError(c, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	path, err := h.store.Save(file, filepath.Ext(header.Filename))
	if err != nil {
		log.Printf("summarizeHandler.Summarize: save failed: %v", err)
		RespondError(c, http.StatusInternalServerError, "Error processing file")
		return
	}
	defer func() {
		if err := h.store.Remove(path); err != nil {
			log.Printf("summarizeHandler.Summarize: cleanup failed for %s: %v", path, err)
		}
	}()

	text, err := h.extractor.ExtractText(path)
	if err != nil || strings.TrimSpace(text) == "" {
		log.Printf("summarizeHandler.Summarize: extraction failed for %s: %v", header.Filename, err)
		RespondError(c, http.StatusInternalServerError, "Could not extract text from the uploaded PDF. Please ensure the file contains selectable text.")
		return
	}

	record, err := h.analyzeService.Analyze(c.Request.Context(), text)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// isPDF checks the filename extension and sniffs the leading bytes, then
// rewinds the reader so the full file can still be saved.
func isPDF(filename string, file io.ReadSeeker) bool {
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return false
	}
	head := make([]byte, 512)
	n, _ := io.ReadFull(file, head)
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false
	}
	if n < 4 {
		return false
	}
	head = head[:n]
	if http.DetectContentType(head) == "application/pdf" {
		return true
	}
	return bytes.HasPrefix(head, []byte("%PDF-"))
}
