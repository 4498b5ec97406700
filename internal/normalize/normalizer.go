package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"legibrief/internal/domain"
)

// narrativeFields are the research fields coerced through AsFlatString. The
// generator is asked for these exact camelCase names, so no alternate
// spellings are tried here.
var narrativeFields = []string{
	"financialImplications",
	"ideologicalLeaning",
	"advocacyGroupPositions",
	"changesTo",
	"similarLaws",
	"otherFactors",
}

// Normalize coerces a raw provider payload into the canonical BillRecord.
// Deterministic, pure, and total: malformed input degrades to placeholder
// text, it never fails.
func Normalize(raw domain.RawPayload) domain.BillRecord {
	rec := domain.BillRecord{
		BillNumber:     asText(Resolve(raw, billNumberKeys, defaultText)),
		BillName:       asText(Resolve(raw, billNameKeys, defaultText)),
		State:          asText(Resolve(raw, stateKeys, defaultText)),
		YearIntroduced: asYear(Resolve(raw, yearKeys, nil)),
		Sponsors:       asNameList(Resolve(raw, sponsorsKeys, nil)),
		Cosponsors:     asNameList(Resolve(raw, cosponsorsKeys, nil)),
		Committee:      asText(Resolve(raw, committeeKeys, defaultText)),
	}

	rec.Summary = resolveSummary(raw)
	rec.Sections = resolveSections(raw)

	narrative := map[string]*string{
		"financialImplications":  &rec.FinancialImplications,
		"ideologicalLeaning":     &rec.IdeologicalLeaning,
		"advocacyGroupPositions": &rec.AdvocacyGroupPositions,
		"changesTo":              &rec.ChangesTo,
		"similarLaws":            &rec.SimilarLaws,
		"otherFactors":           &rec.OtherFactors,
	}
	for _, field := range narrativeFields {
		var v any
		if raw != nil {
			v = raw[field]
		}
		*narrative[field] = AsFlatString(v, field)
	}

	if raw != nil {
		rec.Citations = AsStringArray(raw["citations"])
	} else {
		rec.Citations = []string{}
	}

	return rec
}

// ResolveYear reports the year a raw payload actually carries, as a string,
// before any placeholder defaulting. The second return is false when no year
// candidate key is present.
func ResolveYear(raw domain.RawPayload) (string, bool) {
	v := Resolve(raw, yearKeys, nil)
	if v == nil {
		return "", false
	}
	switch val := v.(type) {
	case string:
		return val, true
	default:
		return Stringify(val), true
	}
}

// asText renders an identity or attribution value as a flat string.
func asText(v any) string {
	if v == nil {
		return defaultText
	}
	return Stringify(v)
}

// asYear preserves the source representation of yearIntroduced, numeric or
// textual.
func asYear(v any) domain.Year {
	switch val := v.(type) {
	case nil:
		return domain.NewYearText(defaultText)
	case string:
		return domain.NewYearText(val)
	case float64:
		if val == math.Trunc(val) {
			return domain.NewYearNumber(int64(val))
		}
		return domain.NewYearText(Stringify(val))
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return domain.NewYearNumber(n)
		}
		return domain.NewYearText(val.String())
	case int:
		return domain.NewYearNumber(int64(val))
	case int64:
		return domain.NewYearNumber(val)
	default:
		return domain.NewYearText(Stringify(val))
	}
}

// asNameList keeps sponsor attribution as the string/list union and never as
// an arbitrary object.
func asNameList(v any) domain.NameList {
	switch val := v.(type) {
	case nil:
		return domain.NewNameText(defaultText)
	case string:
		return domain.NewNameText(val)
	case []string:
		return domain.NewNames(val)
	case []any:
		names := make([]string, 0, len(val))
		for _, el := range val {
			names = append(names, Stringify(el))
		}
		return domain.NewNames(names)
	default:
		return domain.NewNameText(defaultText)
	}
}

// resolveSummary extracts the summary text, tolerating one level of nesting
// under a summary/Summary object, and applies the informativeness floor.
func resolveSummary(raw domain.RawPayload) string {
	text := summaryText(raw)
	if len(text) >= summaryFloor {
		return text
	}
	if text != "" {
		return text + summaryShortSuffix
	}
	return summaryMissing
}

func summaryText(raw domain.RawPayload) string {
	if raw == nil {
		return ""
	}
	if v, ok := raw["summary"]; ok && v != nil {
		switch s := v.(type) {
		case string:
			return s
		case map[string]any:
			if d, ok := s["description"].(string); ok {
				return d
			}
			if p, ok := s["Purpose"].(string); ok {
				return p
			}
		}
		return ""
	}
	if v, ok := raw["Summary"]; ok && v != nil {
		switch s := v.(type) {
		case string:
			return s
		case map[string]any:
			if p, ok := s["Purpose"].(string); ok {
				return p
			}
			if d, ok := s["description"].(string); ok {
				return d
			}
		}
	}
	return ""
}

// resolveSections normalizes the sections value, which may arrive as an array
// of objects, an array of strings, a keyed object, or nested under the
// summary object. Always returns a non-nil slice.
func resolveSections(raw domain.RawPayload) []domain.BillSection {
	v := sectionsValue(raw)
	switch secs := v.(type) {
	case []any:
		out := make([]domain.BillSection, 0, len(secs))
		for i, el := range secs {
			out = append(out, sectionFromElement(i, el))
		}
		return out
	case map[string]any:
		// Keyed object form, e.g. {"Sec. 1": "does x"}. Go map iteration is
		// unordered, so entries are sorted by key for determinism.
		keys := make([]string, 0, len(secs))
		for k := range secs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]domain.BillSection, 0, len(keys))
		for _, k := range keys {
			out = append(out, domain.BillSection{Title: k, Description: sectionBody(secs[k])})
		}
		return out
	default:
		return []domain.BillSection{}
	}
}

func sectionsValue(raw domain.RawPayload) any {
	if raw == nil {
		return nil
	}
	if v, ok := raw["sections"]; ok && v != nil {
		return v
	}
	if s, ok := raw["summary"].(map[string]any); ok {
		if v, ok := s["sections"]; ok && v != nil {
			return v
		}
	}
	if s, ok := raw["Summary"].(map[string]any); ok {
		if v, ok := s["sections"]; ok && v != nil {
			return v
		}
		if v, ok := s["Sections"]; ok && v != nil {
			return v
		}
	}
	return nil
}

func sectionFromElement(i int, el any) domain.BillSection {
	switch s := el.(type) {
	case map[string]any:
		title := firstScalar(s, "title", "number")
		if title == "" {
			title = fmt.Sprintf("Section %d", i+1)
		}
		desc := firstScalar(s, "content", "description", "Description")
		if desc == "" {
			desc = Stringify(el)
		}
		return domain.BillSection{Title: title, Description: desc}
	case string:
		return domain.BillSection{Title: fmt.Sprintf("Section %d", i+1), Description: s}
	default:
		return domain.BillSection{Title: fmt.Sprintf("Section %d", i+1), Description: Stringify(el)}
	}
}

func sectionBody(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if d := firstScalar(val, "description", "Description", "content"); d != "" {
			return d
		}
		return Stringify(val)
	default:
		return Stringify(val)
	}
}

// firstScalar returns the stringified first present non-nil scalar among the
// given keys, skipping nested objects and arrays.
func firstScalar(m map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		return Stringify(v)
	}
	return ""
}
