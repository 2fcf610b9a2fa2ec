package chunker

import "regexp"

var (
	// regulationTitlePattern matches the uppercase title line of a
	// regulation, directive, or decision, including delegated and
	// implementing acts.
	regulationTitlePattern = regexp.MustCompile(`^(?:[A-Z]+\s+)*(?:REGULATION|DIRECTIVE|DECISION)\s+\(E[CU]\)`)

	// communicationTitlePattern matches the title line of a Commission
	// communication.
	communicationTitlePattern = regexp.MustCompile(`^COMMUNICATION\s+FROM\s+THE\s+`)

	// declarationPattern matches declaration headers by EU institutions.
	declarationPattern = regexp.MustCompile(`^(?:(?:COMMISSION|COUNCIL|EUROPEAN\s+PARLIAMENT)\s+DECLARATION|DECLARATION\s+BY\s+THE\s+(?:COMMISSION|COUNCIL|EUROPEAN\s+PARLIAMENT))`)

	// legalBasisPattern matches "Having regard to" citations in the preamble.
	legalBasisPattern = regexp.MustCompile(`^Having\s+regard\s+to\b`)

	// whereasPattern matches the recital block opener.
	whereasPattern = regexp.MustCompile(`^Whereas[:,]?\s*$`)

	// mainSectionPattern matches numbered top-level section headings
	// ("1. INTRODUCTION"). Subsection headings are excluded separately.
	mainSectionPattern = regexp.MustCompile(`^(\d+)\.\s+([A-Z].*)$`)

	// subsectionPattern matches numbered subsection headings ("1.2. Scope").
	subsectionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.?\s+(\S.*)$`)

	// tableParagraphPattern matches table-row style numbered paragraphs:
	// "| (12) | paragraph text |".
	tableParagraphPattern = regexp.MustCompile(`^\|\s*\((\d+)\)\s*\|\s*(.*?)\s*\|?\s*$`)

	// plainParagraphPattern matches plain numbered paragraph starts:
	// "(12) paragraph text".
	plainParagraphPattern = regexp.MustCompile(`^\((\d+)\)\s+(\S.*)$`)

	// numberOnlyPattern matches recital markers that stand alone on a line.
	numberOnlyPattern = regexp.MustCompile(`^\((\d+)\)\s*$`)

	// annexPattern matches annex headings ("ANNEX", "ANNEX I", "ANNEX 2").
	annexPattern = regexp.MustCompile(`^ANNEX(?:\s+[IVXLC0-9]+)?\s*$`)

	// datePattern matches adoption date lines ("of 27 April 2016").
	datePattern = regexp.MustCompile(`^of\s+\d{1,2}\s+[A-Z][a-z]+\s+\d{4}`)

	// fieldHeaderPattern matches structured field headers in communication
	// documents ("Subject: ..." or a bare "Subject:" line).
	fieldHeaderPattern = regexp.MustCompile(`^([A-Z][A-Za-z0-9 ,/'()-]{0,80}):\s*(.*)$`)

	// fieldContinuationPattern matches a value line that pairs with a bare
	// field name on the previous line (": value").
	fieldContinuationPattern = regexp.MustCompile(`^:\s*(\S.*)$`)

	// footnotePattern matches footnote definitions at the start of a line:
	// "( 3 ) OJ L 119, 4.5.2016, p. 1.".
	footnotePattern = regexp.MustCompile(`^\(\s*(\d+)\s*\)\s+(\S.*)$`)

	// tableRowPattern matches any markdown-style table row.
	tableRowPattern = regexp.MustCompile(`^\|.*\|\s*$`)

	// tableSeparatorPattern matches markdown table separator rows ("|---|---|").
	tableSeparatorPattern = regexp.MustCompile(`^\|[\s:-]+\|`)

	// eliReferencePattern matches ELI links and ELI-prefixed references.
	eliReferencePattern = regexp.MustCompile(`^(?:https?://data\.europa\.eu/eli/|ELI:\s*)`)

	// ojReferencePattern matches Official Journal citations.
	ojReferencePattern = regexp.MustCompile(`^OJ\s+[CL]?\s*\d`)

	// seeReferencePattern matches cross-reference lines ("See ...").
	seeReferencePattern = regexp.MustCompile(`^See\b`)
)

// isMainSectionLine reports whether the line is a top-level section heading
// and not a subsection heading ("1.2. Scope").
func isMainSectionLine(line string) bool {
	return mainSectionPattern.MatchString(line) && !subsectionPattern.MatchString(line)
}
