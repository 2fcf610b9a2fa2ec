package chunker

import (
	"strings"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// processPreamble walks the preamble region accumulating lines into a
// current chunk of a specific type. Every marker line flushes the
// accumulator and starts a new chunk of the marker's type: "Having regard
// to" opens a LEGAL_BASIS chunk, a declaration header opens a
// COMMISSION_DECLARATION chunk, and "Whereas:" opens the recital block.
// Lines before any marker accumulate into a generic PREAMBLE chunk.
//
// When the recital block is flushed it is exploded into one WHEREAS chunk
// per numbered recital.
func processPreamble(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	var chunks []chunk.DocumentChunk

	accumulatorType := chunk.TypePreamble
	accumulatorStart := -1
	var accumulatorLines []string

	flush := func() {
		if len(accumulatorLines) == 0 {
			return
		}
		if accumulatorType == chunk.TypeWhereas {
			chunks = append(chunks, splitWhereasBlock(accumulatorLines, accumulatorStart)...)
		} else {
			chunks = append(chunks, chunk.DocumentChunk{
				Type:     accumulatorType,
				Content:  strings.TrimRight(strings.Join(accumulatorLines, "\n"), " \t\n"),
				StartPos: accumulatorStart,
				EndPos:   accumulatorStart + len(accumulatorLines),
			})
		}
		accumulatorLines = nil
	}

	for lineIndex := documentBoundary.start; lineIndex < documentBoundary.end; lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])

		markerType, isMarker := preambleMarkerType(trimmedLine)
		if isMarker {
			flush()
			accumulatorType = markerType
			accumulatorStart = lineIndex
			accumulatorLines = append(accumulatorLines, lines[lineIndex])
			continue
		}

		if len(accumulatorLines) == 0 {
			if trimmedLine == "" {
				continue
			}
			accumulatorStart = lineIndex
		}
		accumulatorLines = append(accumulatorLines, lines[lineIndex])
	}

	flush()
	return chunks
}

// preambleMarkerType classifies a line as a preamble marker.
func preambleMarkerType(line string) (chunk.Type, bool) {
	switch {
	case legalBasisPattern.MatchString(line):
		return chunk.TypeLegalBasis, true
	case declarationPattern.MatchString(line):
		return chunk.TypeCommissionDeclaration, true
	case whereasPattern.MatchString(line):
		return chunk.TypeWhereas, true
	default:
		return "", false
	}
}

// splitWhereasBlock explodes a recital block into one WHEREAS chunk per
// numbered recital. Recital starts are lines containing only "(n)"; the
// text between consecutive markers belongs to the preceding recital. If
// no numbered markers are found the whole block becomes a single WHEREAS
// chunk.
func splitWhereasBlock(blockLines []string, blockStart int) []chunk.DocumentChunk {
	type recitalStart struct {
		offset int
		number string
	}

	var starts []recitalStart
	for offset, line := range blockLines {
		if match := numberOnlyPattern.FindStringSubmatch(strings.TrimSpace(line)); match != nil {
			starts = append(starts, recitalStart{offset: offset, number: match[1]})
		}
	}

	if len(starts) == 0 {
		return []chunk.DocumentChunk{{
			Type:     chunk.TypeWhereas,
			Content:  strings.TrimRight(strings.Join(blockLines, "\n"), " \t\n"),
			StartPos: blockStart,
			EndPos:   blockStart + len(blockLines),
		}}
	}

	var chunks []chunk.DocumentChunk
	for startIndex, currentStart := range starts {
		sliceEnd := len(blockLines)
		if startIndex+1 < len(starts) {
			sliceEnd = starts[startIndex+1].offset
		}

		recitalLines := blockLines[currentStart.offset:sliceEnd]
		chunks = append(chunks, chunk.DocumentChunk{
			Type:            chunk.TypeWhereas,
			Content:         strings.TrimRight(strings.Join(recitalLines, "\n"), " \t\n"),
			ParagraphNumber: currentStart.number,
			StartPos:        blockStart + currentStart.offset,
			EndPos:          blockStart + sliceEnd,
		})
	}

	return chunks
}
