package chunker

import (
	"regexp"
	"strings"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// inlineFootnoteRefPattern matches inline footnote markers "( n )" inside
// running text.
var inlineFootnoteRefPattern = regexp.MustCompile(`\(\s*(\d+)\s*\)`)

// processCommunicationContent walks the main content of a communication
// document line by line, recognizing "Field:" headers, bare "Field" names
// paired with a ":value" continuation on the next line, and line-initial
// footnote definitions. Text accumulates into PARAGRAPH chunks keyed by
// the current field name; footnote definitions become REFERENCE chunks.
func processCommunicationContent(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	var chunks []chunk.DocumentChunk

	currentField := ""
	accumulatorStart := -1
	var accumulatorLines []string

	flush := func() {
		if len(accumulatorLines) == 0 {
			return
		}
		content := strings.TrimRight(strings.Join(accumulatorLines, "\n"), " \t\n")
		paragraphChunk := chunk.DocumentChunk{
			Type:     chunk.TypeParagraph,
			Content:  content,
			Title:    currentField,
			StartPos: accumulatorStart,
			EndPos:   accumulatorStart + len(accumulatorLines),
		}
		if currentField != "" {
			paragraphChunk.Metadata = map[string]string{"field": currentField}
		}
		if footnoteRefs := inlineFootnoteRefs(content); footnoteRefs != "" {
			if paragraphChunk.Metadata == nil {
				paragraphChunk.Metadata = make(map[string]string)
			}
			paragraphChunk.Metadata["footnote_refs"] = footnoteRefs
		}
		chunks = append(chunks, paragraphChunk)
		accumulatorLines = nil
	}

	for lineIndex := documentBoundary.start; lineIndex < documentBoundary.end; lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])

		if trimmedLine == "" {
			flush()
			continue
		}

		// Line-initial footnote definition: "( 3 ) OJ L 119 ...".
		if match := footnotePattern.FindStringSubmatch(trimmedLine); match != nil {
			flush()
			chunks = append(chunks, chunk.DocumentChunk{
				Type:            chunk.TypeReference,
				Content:         trimmedLine,
				Title:           currentField,
				ParagraphNumber: match[1],
				StartPos:        lineIndex,
				EndPos:          lineIndex + 1,
			})
			continue
		}

		// "Field: value" or bare "Field:" header.
		if match := fieldHeaderPattern.FindStringSubmatch(trimmedLine); match != nil {
			flush()
			currentField = strings.TrimSpace(match[1])
			accumulatorStart = lineIndex
			if value := strings.TrimSpace(match[2]); value != "" {
				accumulatorLines = append(accumulatorLines, value)
			}
			continue
		}

		// Bare "Field" on the previous line paired with ": value" here.
		if match := fieldContinuationPattern.FindStringSubmatch(trimmedLine); match != nil {
			if fieldName, ok := takeBareFieldName(&accumulatorLines); ok {
				flush()
				currentField = fieldName
				accumulatorStart = lineIndex - 1
				accumulatorLines = append(accumulatorLines, strings.TrimSpace(match[1]))
				continue
			}
		}

		if len(accumulatorLines) == 0 {
			accumulatorStart = lineIndex
		}
		accumulatorLines = append(accumulatorLines, lines[lineIndex])
	}

	flush()
	return chunks
}

// takeBareFieldName pops the last accumulated line if it looks like a bare
// field name: a short line starting with an uppercase letter and without
// terminal punctuation.
func takeBareFieldName(accumulatorLines *[]string) (string, bool) {
	if len(*accumulatorLines) == 0 {
		return "", false
	}
	candidate := strings.TrimSpace((*accumulatorLines)[len(*accumulatorLines)-1])
	if candidate == "" || len(candidate) > 60 {
		return "", false
	}
	firstRune := []rune(candidate)[0]
	if firstRune < 'A' || firstRune > 'Z' {
		return "", false
	}
	if strings.HasSuffix(candidate, ".") || strings.HasSuffix(candidate, ",") {
		return "", false
	}
	*accumulatorLines = (*accumulatorLines)[:len(*accumulatorLines)-1]
	return candidate, true
}

// inlineFootnoteRefs collects inline "( n )" markers from the text as a
// comma-separated list of footnote numbers.
func inlineFootnoteRefs(text string) string {
	matches := inlineFootnoteRefPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return ""
	}
	numbers := make([]string, 0, len(matches))
	for _, match := range matches {
		numbers = append(numbers, match[1])
	}
	return strings.Join(numbers, ",")
}
