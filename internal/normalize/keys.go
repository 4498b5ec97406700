package normalize

import "strings"

// Candidate key spellings per logical field. The generator is asked for exact
// camelCase names but does not reliably honor casing, so each field resolves
// against camelCase, snake_case, PascalCase, and spaced Title Case variants.
var (
	billNumberKeys = []string{"billNumber", "bill_number", "BillNumber", "Bill Number"}
	billNameKeys   = []string{"billName", "bill_name", "BillName", "Bill Name"}
	stateKeys      = []string{"state", "State"}
	yearKeys       = []string{"yearIntroduced", "year_introduced", "YearIntroduced", "Year Introduced"}
	sponsorsKeys   = []string{"sponsors", "bill_sponsors", "BillSponsor", "Bill Sponsor", "Bill Sponsor(s)"}
	cosponsorsKeys = []string{"cosponsors", "bill_cosponsors", "BillCosponsors", "Bill Cosponsors", "Bill Cosponsor(s)"}
	committeeKeys  = []string{"committee", "committee_referred_to", "CommitteeReferredTo", "Committee Referred To"}
)

// defaultText is the fallback for identity and attribution fields.
const defaultText = "Not specified"

const (
	// summaryFloor is a heuristic informativeness gate in characters, not a
	// hard validation failure.
	summaryFloor = 200

	summaryShortSuffix = " (Note: This summary is minimal and should be expanded with a more comprehensive analysis of at least 200 words that fully explains the bill's purpose, provisions, and implications.)"

	summaryMissing = "No adequate summary available. A comprehensive summary of at least 200 words should be provided that fully explains the bill's purpose, provisions, and implications."
)

// humanize turns a camelCase field name into spaced lowercase prose, e.g.
// "financialImplications" -> "financial implications".
func humanize(field string) string {
	var b strings.Builder
	b.Grow(len(field) + 4)
	for i, r := range field {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// missingPlaceholder is the deterministic text for an absent narrative field.
func missingPlaceholder(field string) string {
	return "Information about " + humanize(field) + " is not available at this time."
}

// malformedPlaceholder is the deterministic text for a narrative field that
// arrived as a nested object. Distinct wording from the absent case so logs
// and tests can tell the two apart.
func malformedPlaceholder(field string) string {
	return "Information about " + humanize(field) + " is not properly formatted. Please review the bill text for details."
}
