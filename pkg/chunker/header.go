package chunker

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// minSubjectLineLength is the shortest line the subject heuristic accepts.
const minSubjectLineLength = 20

// processHeader splits the front-matter region into title, date, and
// subject chunks, accumulating everything else into generic header chunks.
func processHeader(documentBoundary boundary, lines []string) []chunk.DocumentChunk {
	var chunks []chunk.DocumentChunk
	accumulator := newLineAccumulator()

	flush := func() {
		if accumulated, ok := accumulator.take(); ok {
			chunks = append(chunks, accumulated)
		}
	}

	for lineIndex := documentBoundary.start; lineIndex < documentBoundary.end; lineIndex++ {
		trimmedLine := strings.TrimSpace(lines[lineIndex])
		if trimmedLine == "" {
			accumulator.appendBlank(lines[lineIndex])
			continue
		}

		switch {
		case regulationTitlePattern.MatchString(trimmedLine) || communicationTitlePattern.MatchString(trimmedLine):
			flush()
			chunks = append(chunks, chunk.DocumentChunk{
				Type:     chunk.TypeTitle,
				Content:  trimmedLine,
				Title:    trimmedLine,
				StartPos: lineIndex,
				EndPos:   lineIndex + 1,
			})

		case datePattern.MatchString(trimmedLine):
			flush()
			chunks = append(chunks, chunk.DocumentChunk{
				Type:     chunk.TypeDate,
				Content:  trimmedLine,
				StartPos: lineIndex,
				EndPos:   lineIndex + 1,
			})

		case isSubjectLine(trimmedLine):
			accumulator.append(lineIndex, lines[lineIndex], chunk.TypeSubject)

		default:
			accumulator.append(lineIndex, lines[lineIndex], chunk.TypeHeader)
		}

		// A change of accumulator type flushes the previous run.
		if flushed, ok := accumulator.takeCompleted(); ok {
			chunks = append(chunks, flushed)
		}
	}

	flush()
	return chunks
}

// isSubjectLine applies the subject heuristic: a line starting with a
// lowercase letter and longer than the minimum length is taken to be the
// subject line ("on the protection of natural persons ...").
func isSubjectLine(line string) bool {
	if utf8.RuneCountInString(line) <= minSubjectLineLength {
		return false
	}
	firstRune := []rune(line)[0]
	return unicode.IsLower(firstRune)
}

// lineAccumulator collects consecutive lines of a single chunk type.
type lineAccumulator struct {
	lines     []string
	startPos  int
	chunkType chunk.Type
	completed *chunk.DocumentChunk
}

func newLineAccumulator() *lineAccumulator {
	return &lineAccumulator{}
}

// append adds a line to the accumulator. If the chunk type changes, the
// previous run is set aside as completed and a new run begins.
func (accumulator *lineAccumulator) append(lineIndex int, line string, chunkType chunk.Type) {
	if len(accumulator.lines) > 0 && accumulator.chunkType != chunkType {
		finished := accumulator.build()
		accumulator.completed = &finished
		accumulator.lines = nil
	}
	if len(accumulator.lines) == 0 {
		accumulator.startPos = lineIndex
		accumulator.chunkType = chunkType
	}
	accumulator.lines = append(accumulator.lines, line)
}

// appendBlank keeps interior blank lines inside an open run; leading
// blanks are dropped.
func (accumulator *lineAccumulator) appendBlank(line string) {
	if len(accumulator.lines) > 0 {
		accumulator.lines = append(accumulator.lines, line)
	}
}

// takeCompleted returns a run that was closed by a type change, if any.
func (accumulator *lineAccumulator) takeCompleted() (chunk.DocumentChunk, bool) {
	if accumulator.completed == nil {
		return chunk.DocumentChunk{}, false
	}
	finished := *accumulator.completed
	accumulator.completed = nil
	return finished, true
}

// take closes and returns the open run, if non-empty.
func (accumulator *lineAccumulator) take() (chunk.DocumentChunk, bool) {
	if len(accumulator.lines) == 0 {
		return chunk.DocumentChunk{}, false
	}
	finished := accumulator.build()
	accumulator.lines = nil
	return finished, true
}

func (accumulator *lineAccumulator) build() chunk.DocumentChunk {
	content := strings.TrimRight(strings.Join(accumulator.lines, "\n"), " \t\n")
	return chunk.DocumentChunk{
		Type:     accumulator.chunkType,
		Content:  content,
		StartPos: accumulator.startPos,
		EndPos:   accumulator.startPos + len(accumulator.lines),
	}
}
