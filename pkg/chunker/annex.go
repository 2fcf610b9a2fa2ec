package chunker

import (
	"strings"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// processAnnex splits the annex region into chunks. A region containing
// markdown-table rows is kept intact as a single table-tagged ANNEX chunk;
// otherwise the region is split on blank lines into one ANNEX chunk per
// paragraph.
func processAnnex(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	annexTitle := ""
	if match := annexPattern.FindString(strings.TrimSpace(lines[documentBoundary.start])); match != "" {
		annexTitle = strings.TrimSpace(lines[documentBoundary.start])
	}

	if rangeContainsTableRows(lines, documentBoundary.start, documentBoundary.end) {
		return []chunk.DocumentChunk{{
			Type:     chunk.TypeAnnex,
			Content:  joinRange(lines, documentBoundary.start, documentBoundary.end),
			Title:    annexTitle,
			Level:    levelSection,
			Metadata: map[string]string{"content_type": "table"},
			StartPos: documentBoundary.start,
			EndPos:   documentBoundary.end,
		}}
	}

	var chunks []chunk.DocumentChunk
	paragraphStart := -1
	var paragraphLines []string

	flush := func() {
		if len(paragraphLines) == 0 {
			return
		}
		annexChunk := chunk.DocumentChunk{
			Type:     chunk.TypeAnnex,
			Content:  strings.Join(paragraphLines, "\n"),
			Level:    levelSection,
			StartPos: paragraphStart,
			EndPos:   paragraphStart + len(paragraphLines),
		}
		if len(chunks) == 0 {
			annexChunk.Title = annexTitle
		}
		chunks = append(chunks, annexChunk)
		paragraphLines = nil
	}

	for lineIndex := documentBoundary.start; lineIndex < documentBoundary.end; lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])
		if trimmedLine == "" {
			flush()
			continue
		}
		if len(paragraphLines) == 0 {
			paragraphStart = lineIndex
		}
		paragraphLines = append(paragraphLines, lines[lineIndex])
	}

	flush()
	return chunks
}

// rangeContainsTableRows reports whether any line in [start, end) is a
// markdown table row.
func rangeContainsTableRows(lines []string, start, end int) bool {
	for lineIndex := start; lineIndex < end && lineIndex < len(lines); lineIndex++ {
		if tableRowPattern.MatchString(strings.TrimSpace(lines[lineIndex])) {
			return true
		}
	}
	return false
}

// processReferences converts the trailing references region into REFERENCE
// chunks. Lines matching ELI, Official Journal, "See", or footnote
// patterns become individual chunks; everything else accumulates into a
// trailing REFERENCE chunk.
func processReferences(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	var chunks []chunk.DocumentChunk

	trailingStart := -1
	var trailingLines []string

	flushTrailing := func() {
		if len(trailingLines) == 0 {
			return
		}
		chunks = append(chunks, chunk.DocumentChunk{
			Type:     chunk.TypeReference,
			Content:  strings.Join(trailingLines, "\n"),
			StartPos: trailingStart,
			EndPos:   trailingStart + len(trailingLines),
		})
		trailingLines = nil
	}

	for lineIndex := documentBoundary.start; lineIndex < documentBoundary.end; lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])
		if trimmedLine == "" {
			continue
		}

		if isReferenceLine(trimmedLine) {
			flushTrailing()
			referenceChunk := chunk.DocumentChunk{
				Type:     chunk.TypeReference,
				Content:  trimmedLine,
				StartPos: lineIndex,
				EndPos:   lineIndex + 1,
			}
			if match := footnotePattern.FindStringSubmatch(trimmedLine); match != nil {
				referenceChunk.ParagraphNumber = match[1]
			}
			chunks = append(chunks, referenceChunk)
			continue
		}

		if len(trailingLines) == 0 {
			trailingStart = lineIndex
		}
		trailingLines = append(trailingLines, lines[lineIndex])
	}

	flushTrailing()
	return chunks
}

// isReferenceLine reports whether a line is an individually chunked
// reference entry.
func isReferenceLine(line string) bool {
	return eliReferencePattern.MatchString(line) ||
		ojReferencePattern.MatchString(line) ||
		seeReferencePattern.MatchString(line) ||
		footnotePattern.MatchString(line)
}
