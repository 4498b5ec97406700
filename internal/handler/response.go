package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"legibrief/internal/domain"
)

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// MapDomainError translates domain errors to an HTTP status code and a
// client-facing message.
func MapDomainError(err error) (status int, msg string) {
	var mismatch *domain.YearMismatchError
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "No file uploaded"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Only PDF files are allowed"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "File exceeds the maximum allowed size of 10MB"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusInternalServerError, "Could not extract text from the uploaded PDF. Please ensure the file contains selectable text."
	case errors.Is(err, domain.ErrNotLegislation):
		return http.StatusBadRequest, "The uploaded document does not appear to be a legislative bill or law. This tool only summarizes legislation."
	case errors.Is(err, domain.ErrMissingJurisdiction):
		return http.StatusBadRequest, "State or federal jurisdiction is required"
	case errors.Is(err, domain.ErrInsufficientQuery):
		return http.StatusBadRequest, "Please provide at least one piece of information about the bill"
	case errors.As(err, &mismatch):
		return http.StatusBadRequest, fmt.Sprintf(
			"No bill matching your criteria was found for the year %s. The search found a bill from %s instead. Please try again with different search parameters or without specifying a year.",
			mismatch.Requested, mismatch.Found)
	case errors.Is(err, domain.ErrSearchUnparseable):
		return http.StatusInternalServerError, "Unable to find complete information about this bill. Please try with more specific details."
	case errors.Is(err, domain.ErrDecodeFailed):
		return http.StatusInternalServerError, "The analysis could not be completed. Please try again."
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusInternalServerError, "The analysis service is currently unavailable. Please try again later."
	default:
		return http.StatusInternalServerError, "An unexpected error occurred on the server"
	}
}

// HandleError maps the error and writes the response.
func HandleError(c *gin.Context, err error) {
	status, msg := MapDomainError(err)
	RespondError(c, status, msg)
}
