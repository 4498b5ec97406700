package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile         = errors.New("no file uploaded")
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed    = errors.New("document text could not be extracted")
	ErrNotLegislation      = errors.New("document is not a legislative bill or law")
	ErrGenerationFailed    = errors.New("text generation request failed")
	ErrDecodeFailed        = errors.New("generated output is not valid JSON")
	ErrSearchUnparseable   = errors.New("search response could not be parsed")
	ErrMissingJurisdiction = errors.New("state or federal jurisdiction is required")
	ErrInsufficientQuery   = errors.New("at least one piece of bill information is required")
	ErrYearMismatch        = errors.New("search result year does not match requested year")
)

// YearMismatchError reports a search result whose yearIntroduced disagrees
// with the requested year. It matches ErrYearMismatch under errors.Is.
type YearMismatchError struct {
	Requested string
	Found     string
}

func (e *YearMismatchError) Error() string {
	return fmt.Sprintf("requested year %s but search found a bill from %s", e.Requested, e.Found)
}

func (e *YearMismatchError) Is(target error) bool {
	return target == ErrYearMismatch
}
