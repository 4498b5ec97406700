package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legibrief/internal/domain"
	"legibrief/mocks"
)

func summarizeRouter(analyze *mocks.MockAnalyzeService, extractor *mocks.MockTextExtractor, store *mocks.MockUploadStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSummarizeHandler(analyze, extractor, store)
	r.POST("/api/summarize", h.Summarize)
	return r
}

func multipartPDF(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< >>\n%%EOF")

func TestSummarizeMissingFile(t *testing.T) {
	r := summarizeRouter(new(mocks.MockAnalyzeService), new(mocks.MockTextExtractor), new(mocks.MockUploadStore))

	req := httptest.NewRequest(http.MethodPost, "/api/summarize", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "No file uploaded"}`, rec.Body.String())
}

func TestSummarizeRejectsNonPDFExtension(t *testing.T) {
	r := summarizeRouter(new(mocks.MockAnalyzeService), new(mocks.MockTextExtractor), new(mocks.MockUploadStore))

	body, contentType := multipartPDF(t, "file", "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Only PDF files are allowed"}`, rec.Body.String())
}

func TestSummarizeRejectsDisguisedContent(t *testing.T) {
	r := summarizeRouter(new(mocks.MockAnalyzeService), new(mocks.MockTextExtractor), new(mocks.MockUploadStore))

	body, contentType := multipartPDF(t, "file", "fake.pdf", []byte("<html><body>hi</body></html>"))
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "Only PDF files are allowed"}`, rec.Body.String())
}

func TestSummarizeExtractionFailureRemovesUpload(t *testing.T) {
	analyze := new(mocks.MockAnalyzeService)
	extractor := new(mocks.MockTextExtractor)
	store := new(mocks.MockUploadStore)
	store.On("Save", mock.Anything, ".pdf").Return("uploads/abc.pdf", nil)
	store.On("Remove", "uploads/abc.pdf").Return(nil)
	extractor.On("ExtractText", "uploads/abc.pdf").Return("", nil)

	r := summarizeRouter(analyze, extractor, store)
	body, contentType := multipartPDF(t, "file", "bill.pdf", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	store.AssertCalled(t, "Remove", "uploads/abc.pdf")
	analyze.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
}

func TestSummarizeNotLegislationRemovesUpload(t *testing.T) {
	analyze := new(mocks.MockAnalyzeService)
	extractor := new(mocks.MockTextExtractor)
	store := new(mocks.MockUploadStore)
	store.On("Save", mock.Anything, ".pdf").Return("uploads/abc.pdf", nil)
	store.On("Remove", "uploads/abc.pdf").Return(nil)
	extractor.On("ExtractText", "uploads/abc.pdf").Return("Meeting notes", nil)
	analyze.On("Analyze", mock.Anything, "Meeting notes").Return(domain.BillRecord{}, domain.ErrNotLegislation)

	r := summarizeRouter(analyze, extractor, store)
	body, contentType := multipartPDF(t, "file", "memo.pdf", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error": "The uploaded document does not appear to be a legislative bill or law. This tool only summarizes legislation."}`, rec.Body.String())
	store.AssertCalled(t, "Remove", "uploads/abc.pdf")
}

func TestSummarizeSuccessReturnsRecordAndRemovesUpload(t *testing.T) {
	analyze := new(mocks.MockAnalyzeService)
	extractor := new(mocks.MockTextExtractor)
	store := new(mocks.MockUploadStore)
	store.On("Save", mock.Anything, ".pdf").Return("uploads/abc.pdf", nil)
	store.On("Remove", "uploads/abc.pdf").Return(nil)
	extractor.On("ExtractText", "uploads/abc.pdf").Return("AN ACT relating to water", nil)

	record := domain.BillRecord{
		BillNumber:     "SB 101",
		BillName:       "Water Quality Act",
		State:          "Nebraska",
		YearIntroduced: domain.NewYearNumber(2023),
		Sponsors:       domain.NewNameText("Sen. Doe"),
		Cosponsors:     domain.NewNames([]string{"Sen. Roe"}),
		Committee:      "Natural Resources",
		Citations:      []string{},
		Sections:       []domain.BillSection{},
	}
	analyze.On("Analyze", mock.Anything, "AN ACT relating to water").Return(record, nil)

	r := summarizeRouter(analyze, extractor, store)
	body, contentType := multipartPDF(t, "file", "bill.pdf", pdfBytes)
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "SB 101", got["billNumber"])
	assert.Equal(t, float64(2023), got["yearIntroduced"])
	assert.Equal(t, "Sen. Doe", got["sponsors"])
	assert.Equal(t, []any{"Sen. Roe"}, got["cosponsors"])
	store.AssertCalled(t, "Remove", "uploads/abc.pdf")
}
