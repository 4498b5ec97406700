package domain

import (
	"encoding/json"
	"strconv"
)

// RawPayload is a decoded provider response of untrusted shape. It exists only
// between decoding a generation response and normalization.
type RawPayload = map[string]any

// NameList holds sponsor attribution, which upstream sources supply either as
// free-form text or as an ordered list of names. It marshals back in the shape
// it was sourced from and is never an arbitrary object.
type NameList struct {
	Text  string
	Names []string
}

// NewNameText returns a NameList backed by a single free-form string.
func NewNameText(text string) NameList {
	return NameList{Text: text}
}

// NewNames returns a NameList backed by an ordered list of names.
func NewNames(names []string) NameList {
	if names == nil {
		names = []string{}
	}
	return NameList{Names: names}
}

func (n NameList) MarshalJSON() ([]byte, error) {
	if n.Names != nil {
		return json.Marshal(n.Names)
	}
	return json.Marshal(n.Text)
}

func (n *NameList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		n.Names = names
		n.Text = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	n.Text = text
	n.Names = nil
	return nil
}

// Year is deliberately loosely typed: sources report the year introduced as
// either a number or a string, and the record preserves whichever arrived.
type Year struct {
	Number   int64
	Text     string
	IsNumber bool
}

// NewYearNumber returns a numeric Year.
func NewYearNumber(n int64) Year {
	return Year{Number: n, IsNumber: true}
}

// NewYearText returns a string-valued Year.
func NewYearText(text string) Year {
	return Year{Text: text}
}

// String renders the year for comparison and display regardless of the
// underlying representation.
func (y Year) String() string {
	if y.IsNumber {
		return strconv.FormatInt(y.Number, 10)
	}
	return y.Text
}

func (y Year) MarshalJSON() ([]byte, error) {
	if y.IsNumber {
		return json.Marshal(y.Number)
	}
	return json.Marshal(y.Text)
}

func (y *Year) UnmarshalJSON(data []byte) error {
	var n int64
	if err := json.Unmarshal(data, &n); err == nil {
		y.Number = n
		y.IsNumber = true
		y.Text = ""
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	y.Text = text
	y.IsNumber = false
	y.Number = 0
	return nil
}

// BillSection is one normalized section of a bill.
type BillSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BillRecord is the canonical normalized output for both workflows. Every
// narrative field is a plain string after normalization, and sections and
// citations are always present arrays.
type BillRecord struct {
	BillNumber     string   `json:"billNumber"`
	BillName       string   `json:"billName"`
	State          string   `json:"state"`
	YearIntroduced Year     `json:"yearIntroduced"`
	Sponsors       NameList `json:"sponsors"`
	Cosponsors     NameList `json:"cosponsors"`
	Committee      string   `json:"committee"`

	Summary                string `json:"summary"`
	FinancialImplications  string `json:"financialImplications"`
	IdeologicalLeaning     string `json:"ideologicalLeaning"`
	AdvocacyGroupPositions string `json:"advocacyGroupPositions"`
	ChangesTo              string `json:"changesTo"`
	SimilarLaws            string `json:"similarLaws"`
	OtherFactors           string `json:"otherFactors"`

	Sections  []BillSection `json:"sections"`
	Citations []string      `json:"citations"`
}

// SearchQuery mirrors the /api/search request body. BillState is mandatory;
// at least one of BillName, BillNumber, or AdditionalInfo must be set.
type SearchQuery struct {
	BillName       string `json:"billName"`
	BillNumber     string `json:"billNumber"`
	BillState      string `json:"billState"`
	BillYear       string `json:"billYear"`
	AdditionalInfo string `json:"additionalInfo"`
}
