package chunker

import (
	"strings"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// Hierarchy levels assigned to main-content chunks.
const (
	levelSection    = 1
	levelSubsection = 2
	levelParagraph  = 3
)

// processMainContent splits the main-content region of a regulation-style
// document into numbered sections, then recurses into each section for
// subsections and numbered paragraphs.
func processMainContent(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	sectionStarts := findMatchingLines(lines, documentBoundary.start, documentBoundary.end, isMainSectionLine)

	if len(sectionStarts) == 0 {
		// The region was cut at a section marker, so this only happens for
		// degenerate input. Keep the region as a single chunk.
		return []chunk.DocumentChunk{{
			Type:     chunk.TypeMainContent,
			Content:  joinRange(lines, documentBoundary.start, documentBoundary.end),
			StartPos: documentBoundary.start,
			EndPos:   documentBoundary.end,
		}}
	}

	var chunks []chunk.DocumentChunk
	for startIndex, sectionStart := range sectionStarts {
		sectionEnd := documentBoundary.end
		if startIndex+1 < len(sectionStarts) {
			sectionEnd = sectionStarts[startIndex+1]
		}
		chunks = append(chunks, processSection(lines, sectionStart, sectionEnd)...)
	}

	return chunks
}

// processSection emits the MAIN_SECTION chunk for a section slice plus all
// subsection and paragraph chunks found inside it.
func processSection(lines []string, sectionStart, sectionEnd int) []chunk.DocumentChunk {
	match := mainSectionPattern.FindStringSubmatch(strings.TrimSpace(lines[sectionStart]))
	sectionNumber, sectionTitle := "", ""
	if match != nil {
		sectionNumber = match[1]
		sectionTitle = strings.TrimSpace(match[2])
	}

	subsectionStarts := findMatchingLines(lines, sectionStart+1, sectionEnd, subsectionPattern.MatchString)

	var children []chunk.DocumentChunk
	if len(subsectionStarts) > 0 {
		// Paragraphs before the first subsection belong to the section itself.
		children = append(children, extractParagraphs(lines, sectionStart+1, subsectionStarts[0], sectionNumber, "")...)

		for startIndex, subsectionStart := range subsectionStarts {
			subsectionEnd := sectionEnd
			if startIndex+1 < len(subsectionStarts) {
				subsectionEnd = subsectionStarts[startIndex+1]
			}
			children = append(children, processSubsection(lines, subsectionStart, subsectionEnd, sectionNumber)...)
		}
	} else {
		children = append(children, extractParagraphs(lines, sectionStart+1, sectionEnd, sectionNumber, "")...)
	}

	contentEnd := sectionEnd
	if len(children) > 0 {
		contentEnd = minStartPos(children)
	}

	sectionChunk := chunk.DocumentChunk{
		Type:          chunk.TypeMainSection,
		Content:       joinRange(lines, sectionStart, contentEnd),
		SectionNumber: sectionNumber,
		Title:         sectionTitle,
		Level:         levelSection,
		StartPos:      sectionStart,
		EndPos:        contentEnd,
	}

	return append([]chunk.DocumentChunk{sectionChunk}, children...)
}

// processSubsection emits the SUBSECTION chunk for a subsection slice plus
// the paragraph chunks found inside it.
func processSubsection(lines []string, subsectionStart, subsectionEnd int, sectionNumber string) []chunk.DocumentChunk {
	match := subsectionPattern.FindStringSubmatch(strings.TrimSpace(lines[subsectionStart]))
	subsectionNumber, subsectionTitle := "", ""
	if match != nil {
		subsectionNumber = match[1] + "." + match[2]
		subsectionTitle = strings.TrimSpace(match[3])
	}

	paragraphs := extractParagraphs(lines, subsectionStart+1, subsectionEnd, sectionNumber, subsectionNumber)

	contentEnd := subsectionEnd
	if len(paragraphs) > 0 {
		contentEnd = minStartPos(paragraphs)
	}

	subsectionChunk := chunk.DocumentChunk{
		Type:             chunk.TypeSubsection,
		Content:          joinRange(lines, subsectionStart, contentEnd),
		SectionNumber:    sectionNumber,
		SubsectionNumber: subsectionNumber,
		Title:            subsectionTitle,
		Level:            levelSubsection,
		StartPos:         subsectionStart,
		EndPos:           contentEnd,
	}

	return append([]chunk.DocumentChunk{subsectionChunk}, paragraphs...)
}

// extractParagraphs finds numbered paragraphs in [start, end). Table-row
// style ("| (n) | text |") is preferred; when no table rows are present,
// plain "(n) text" starts are used, with the text sliced between
// consecutive starts. Paragraph text is cleaned of table-markdown syntax.
func extractParagraphs(lines []string, start, end int, sectionNumber, subsectionNumber string) []chunk.DocumentChunk {
	var chunks []chunk.DocumentChunk

	// Table style first.
	for lineIndex := start; lineIndex < end && lineIndex < len(lines); lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])
		if match := tableParagraphPattern.FindStringSubmatch(trimmedLine); match != nil {
			chunks = append(chunks, chunk.DocumentChunk{
				Type:             chunk.TypeParagraph,
				Content:          cleanTableSyntax(match[2]),
				SectionNumber:    sectionNumber,
				SubsectionNumber: subsectionNumber,
				ParagraphNumber:  match[1],
				Level:            levelParagraph,
				StartPos:         lineIndex,
				EndPos:           lineIndex + 1,
			})
		}
	}
	if len(chunks) > 0 {
		return chunks
	}

	// Plain style fallback.
	paragraphStarts := findMatchingLines(lines, start, end, func(line string) bool {
		return plainParagraphPattern.MatchString(line)
	})

	for startIndex, paragraphStart := range paragraphStarts {
		paragraphEnd := end
		if startIndex+1 < len(paragraphStarts) {
			paragraphEnd = paragraphStarts[startIndex+1]
		}

		match := plainParagraphPattern.FindStringSubmatch(strings.TrimSpace(lines[paragraphStart]))
		paragraphNumber := ""
		if match != nil {
			paragraphNumber = match[1]
		}

		chunks = append(chunks, chunk.DocumentChunk{
			Type:             chunk.TypeParagraph,
			Content:          cleanTableSyntax(joinRange(lines, paragraphStart, paragraphEnd)),
			SectionNumber:    sectionNumber,
			SubsectionNumber: subsectionNumber,
			ParagraphNumber:  paragraphNumber,
			Level:            levelParagraph,
			StartPos:         paragraphStart,
			EndPos:           paragraphEnd,
		})
	}

	return chunks
}

// cleanTableSyntax strips markdown table decoration from paragraph text:
// separator rows are dropped, cell pipes become spaces, and whitespace is
// collapsed.
func cleanTableSyntax(text string) string {
	var cleanedLines []string
	for _, line := range strings.Split(text, "\n") {
		trimmedLine := strings.TrimSpace(line)
		if tableSeparatorPattern.MatchString(trimmedLine) {
			continue
		}
		trimmedLine = strings.Trim(trimmedLine, "|")
		trimmedLine = strings.ReplaceAll(trimmedLine, "|", " ")
		trimmedLine = strings.Join(strings.Fields(trimmedLine), " ")
		if trimmedLine != "" {
			cleanedLines = append(cleanedLines, trimmedLine)
		}
	}
	return strings.Join(cleanedLines, "\n")
}

// findMatchingLines returns the indices of lines in [start, end) whose
// trimmed text satisfies the predicate.
func findMatchingLines(lines []string, start, end int, predicate func(string) bool) []int {
	var matches []int
	for lineIndex := start; lineIndex < end && lineIndex < len(lines); lineIndex++ {
		if predicate(strings.TrimSpace(lines[lineIndex])) {
			matches = append(matches, lineIndex)
		}
	}
	return matches
}

// joinRange joins lines[start:end] with trailing whitespace trimmed.
func joinRange(lines []string, start, end int) string {
	if end > len(lines) {
		end = len(lines)
	}
	if start >= end {
		return ""
	}
	return strings.TrimRight(strings.Join(lines[start:end], "\n"), " \t\n")
}

// minStartPos returns the smallest StartPos among the chunks.
func minStartPos(chunks []chunk.DocumentChunk) int {
	smallest := chunks[0].StartPos
	for _, documentChunk := range chunks[1:] {
		if documentChunk.StartPos < smallest {
			smallest = documentChunk.StartPos
		}
	}
	return smallest
}
