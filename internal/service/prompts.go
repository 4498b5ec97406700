package service

import (
	"strings"
	"unicode/utf8"

	"legibrief/internal/domain"
)

// Prompt-size bounds, in characters of document text.
const (
	classifyPrefixLen = 9000
	enrichPrefixLen   = 8000
)

const classifySystemPrompt = "You are a helpful assistant that can identify whether a document is a legislative bill or law. Provide a clear yes or no answer."

func buildClassifyPrompt(text string) string {
	return "Is the following document a legislative bill or law? Respond with only \"Yes\" or \"No\".\n\n" + truncate(text, classifyPrefixLen)
}

const extractSystemPrompt = `You are a legislative analyst. Analyze the provided bill or law and extract the following information:

1. Bill Number (billNumber) - include the exact bill number as shown in the document
2. Bill Name (billName) - include the full title as shown in the document
3. State (state) - the state the legislation has been proposed in
4. Year Introduced (yearIntroduced) - the year the bill was introduced
5. Sponsors (sponsors) - list all primary sponsors
6. Cosponsors (cosponsors) - list all cosponsors, if many, include all names
7. Committee (committee) - committee referred to
8. Summary (summary) - write at least 300 words summarizing the purpose and main provisions
   - Include a detailed breakdown of each section of the bill
   - Ensure the summary is comprehensive enough for a legislator to speak knowledgeably about the bill
   - Highlight key provisions, requirements, and implications
9. Sections (sections) - array of objects, each with 'number' and 'description' properties

Base your analysis ONLY on the text provided, without any external research.
Provide the information in a JSON format with the exact field names shown in parentheses above.
Make sure the summary is thorough and detailed, at least 300 words long.
Do not use snake_case for field names - use the exact field names provided above.`

const enrichSystemPrompt = `You are a legislative analyst. You have been provided with the text of a bill or law and some initial analysis.

CONDUCT THOROUGH RESEARCH to provide the following additional information:

1. Financial implications or appropriations of the bill (financialImplications):
   - Provide detailed information about the cost of implementation
   - Include specific dollar amounts if available
   - Describe funding mechanisms or sources mentioned
   - Write at least 150 words on this topic

2. Ideological leaning of the bill (ideologicalLeaning):
   - Analyze whether the bill aligns with conservative, progressive, or moderate positions
   - Explain the reasoning behind your analysis
   - Identify the political philosophy or values reflected in the bill
   - Write at least 150 words on this topic

3. Different advocacy groups' positions on the bill (advocacyGroupPositions):
   - Research specific advocacy groups that have taken positions on this bill
   - For state bills, focus on relevant state-level advocacy groups
   - Include both supporters and opponents of the bill when available
   - Explain each group's reasoning for their position
   - Write at least 200 words on this topic

4. What the bill changes about existing law (changesTo):
   - Describe the current legal status quo
   - Explain specifically how this bill modifies, replaces, or adds to existing law
   - Identify key changes and their significance
   - Write at least 150 words on this topic

5. Other states with similar laws on their books (similarLaws):
   - Identify at least 3-5 states with similar legislation if they exist
   - Include specific statute citations whenever possible
   - Describe key similarities and differences between those laws and this bill
   - Write at least 150 words on this topic

6. Other factors to consider (otherFactors):
   - Include any relevant information not covered in the above categories
   - Discuss implementation challenges, legal concerns, or potential unintended consequences
   - Address any controversial aspects of the bill
   - Write at least 150 words on this topic

Add "(AI)" at the end of any sentence that contains information from your research.

Provide the information in a JSON format with the following fields:
- financialImplications (string)
- ideologicalLeaning (string)
- advocacyGroupPositions (string)
- changesTo (string)
- similarLaws (string)
- otherFactors (string)
- citations (an array of sources you used)

Each string field should be a detailed paragraph of at least 150-200 words, NOT an object or nested structure.`

func buildEnrichPrompt(initialJSON, text string) string {
	var b strings.Builder
	b.WriteString("Bill information:\n")
	b.WriteString(initialJSON)
	b.WriteString("\n\nOriginal Bill Text:\n")
	b.WriteString(truncate(text, enrichPrefixLen))
	b.WriteString("\n\nIMPORTANT: Each of the strings in your response (financialImplications, ideologicalLeaning, etc.) should be a detailed paragraph of at least 150-200 words, NOT an object or nested structure. Make sure your response is properly formatted as a flat JSON object with string values, not nested objects.")
	return b.String()
}

const searchSystemPrompt = `You are a legislative research assistant. Your task is to search for information about a legislative bill based on the details provided.

FIND AND RESEARCH A SPECIFIC BILL matching the criteria provided. Then provide the following information:

1. Basic bill information:
   - Bill Number (billNumber) - exact bill number
   - Bill Name (billName) - full title
   - State (state) - the state or federal jurisdiction
   - Year Introduced (yearIntroduced) - the year the bill was introduced
   - Sponsors (sponsors) - list all primary sponsors
   - Cosponsors (cosponsors) - list all cosponsors
   - Committee (committee) - committee referred to

2. Bill summary:
   - Write at least 300 words summarizing the bill's purpose and provisions
   - Include a detailed breakdown of each section
   - Ensure the summary is comprehensive enough for a legislator to speak knowledgeably about it
   - Highlight key provisions, requirements, and implications

3. Financial implications (write at least 150 words)

4. Ideological leaning (write at least 150 words)

5. Advocacy group positions (write at least 200 words)

6. Changes to existing law (write at least 150 words)

7. Similar laws in other states (write at least 150 words)

8. Other factors to consider (write at least 150 words)

For basic information (items #1-2), RESTRICT your research to:
- Official state legislature websites
- Congress.gov
- U.S. House and Senate websites
- Legiscan.com
- Billtrack50.com

For items #3-8, you may use any reliable source.

Include citations for all information. Format your response as a JSON object with the following fields:
- billNumber (string)
- billName (string)
- state (string)
- yearIntroduced (string or number)
- sponsors (string or array of strings)
- cosponsors (string or array of strings)
- committee (string)
- summary (string, at least 300 words)
- financialImplications (string, at least 150 words)
- ideologicalLeaning (string, at least 150 words)
- advocacyGroupPositions (string, at least 200 words)
- changesTo (string, at least 150 words)
- similarLaws (string, at least 150 words)
- otherFactors (string, at least 150 words)
- citations (array of strings)

IMPORTANT: Each of the string fields should be a detailed paragraph, NOT an object or nested structure.`

func buildSearchPrompt(q domain.SearchQuery) string {
	jurisdiction := q.BillState
	if strings.EqualFold(jurisdiction, "federal") {
		jurisdiction = "Federal (United States)"
	}

	var b strings.Builder
	b.WriteString("Please search for information about the following bill:\n\n")
	if q.BillName != "" {
		b.WriteString("Bill Name: " + q.BillName + "\n")
	}
	if q.BillNumber != "" {
		b.WriteString("Bill Number: " + q.BillNumber + "\n")
	}
	b.WriteString("Jurisdiction: " + jurisdiction + "\n")
	if q.BillYear != "" {
		b.WriteString("Year Introduced: " + q.BillYear + "\n")
	}
	if q.AdditionalInfo != "" {
		b.WriteString("Additional Information: " + q.AdditionalInfo + "\n")
	}
	if q.BillYear != "" {
		b.WriteString("\nIMPORTANT: Only return results for bills introduced in " + q.BillYear + ". Do not include bills from other years.\n")
	}
	b.WriteString("\nProvide comprehensive information as specified in the instructions.")
	return b.String()
}

// truncate bounds s to at most n bytes, backing up to a rune boundary so the
// prompt never carries a split character.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
