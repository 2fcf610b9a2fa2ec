// Package chunker segments flattened EUR-Lex document text into an ordered
// list of typed chunks reflecting the act's hierarchical structure:
// title, preamble, recitals, numbered sections and paragraphs, annexes,
// and references.
//
// Chunking is a total function: it never fails and never returns an empty
// list for non-empty input. Documents with no recognizable structure fall
// back to a single whole-document chunk.
package chunker

import (
	"sort"
	"strings"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// DocumentKind selects the chunking path for a document.
type DocumentKind string

const (
	// KindAuto detects the kind from the document's title markers.
	KindAuto DocumentKind = "auto"

	// KindRegulation forces the regulation/directive/decision path.
	KindRegulation DocumentKind = "regulation"

	// KindCommunication forces the communication (structured field) path.
	KindCommunication DocumentKind = "communication"
)

// Chunker converts raw extracted document text into ordered DocumentChunk
// values. The zero configuration auto-detects the document kind.
type Chunker struct {
	kind DocumentKind
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithDocumentKind forces the chunking path instead of auto-detecting it
// from title markers.
func WithDocumentKind(kind DocumentKind) Option {
	return func(chunkerInstance *Chunker) {
		chunkerInstance.kind = kind
	}
}

// New creates a Chunker with the given options.
func New(options ...Option) *Chunker {
	chunkerInstance := &Chunker{kind: KindAuto}
	for _, option := range options {
		option(chunkerInstance)
	}
	return chunkerInstance
}

// ChunkDocument segments the document text into an ordered, contiguous
// chunk list. Empty input yields an empty list; any non-empty input yields
// at least one chunk.
func (chunkerInstance *Chunker) ChunkDocument(text string) []chunk.DocumentChunk {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	lineCount := len(lines)
	markers := scanMarkers(lines)
	kind := chunkerInstance.resolveKind(markers)

	var boundaries []boundary
	if kind == KindCommunication {
		if markers.communicationTitle < 0 && markers.structuredField < 0 && markers.footnoteBlock < 0 {
			// No communication structure at all: the whole document is a
			// single MAIN_CONTENT chunk.
			return postProcess([]chunk.DocumentChunk{fallbackChunk(lines, kind)}, lineCount)
		}
		boundaries = deriveCommunicationBoundaries(markers, lineCount)
	} else {
		boundaries = deriveRegulationBoundaries(markers, lineCount)
	}

	var chunks []chunk.DocumentChunk
	for _, documentBoundary := range boundaries {
		chunks = append(chunks, processBoundary(documentBoundary, lines, kind)...)
	}

	if len(chunks) == 0 {
		// Degenerate content (e.g., whitespace only): the whole document
		// becomes a single fallback chunk.
		chunks = []chunk.DocumentChunk{fallbackChunk(lines, kind)}
	}

	return postProcess(chunks, lineCount)
}

// resolveKind applies the forced kind or detects it from title markers.
// A communication title appearing before any regulation title selects the
// communication path.
func (chunkerInstance *Chunker) resolveKind(markers markerSet) DocumentKind {
	if chunkerInstance.kind != KindAuto && chunkerInstance.kind != "" {
		return chunkerInstance.kind
	}
	if markers.communicationTitle >= 0 &&
		(markers.regulationTitle < 0 || markers.communicationTitle < markers.regulationTitle) {
		return KindCommunication
	}
	return KindRegulation
}

// processBoundary dispatches a coarse region to its type-specific
// sub-processor.
func processBoundary(documentBoundary boundary, lines []string, kind DocumentKind) []chunk.DocumentChunk {
	switch documentBoundary.kind {
	case boundaryHeader:
		return processHeader(documentBoundary, lines)
	case boundaryPreamble:
		return processPreamble(documentBoundary, lines)
	case boundaryMainContent:
		if kind == KindCommunication {
			return processCommunicationContent(documentBoundary, lines)
		}
		return processMainContent(documentBoundary, lines)
	case boundaryAnnex:
		return processAnnex(documentBoundary, lines)
	case boundaryReferences:
		return processReferences(documentBoundary, lines)
	default:
		return nil
	}
}

// fallbackChunk wraps the entire document in a single chunk of the
// path-appropriate fallback type.
func fallbackChunk(lines []string, kind DocumentKind) chunk.DocumentChunk {
	fallbackType := chunk.TypePreamble
	if kind == KindCommunication {
		fallbackType = chunk.TypeMainContent
	}
	return chunk.DocumentChunk{
		Type:     fallbackType,
		Content:  strings.Join(lines, "\n"),
		StartPos: 0,
		EndPos:   len(lines),
	}
}

// postProcess finalizes the chunk list in a single pass: chunks are sorted
// by start position, each chunk's end position becomes the next chunk's
// start position (the last chunk ends at the document line count), and
// order indices are assigned sequentially. New chunk values are built;
// the input chunks are not mutated.
func postProcess(chunks []chunk.DocumentChunk, lineCount int) []chunk.DocumentChunk {
	sorted := make([]chunk.DocumentChunk, len(chunks))
	copy(sorted, chunks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartPos < sorted[j].StartPos
	})

	finalized := make([]chunk.DocumentChunk, 0, len(sorted))
	for chunkIndex, documentChunk := range sorted {
		endPos := lineCount
		if chunkIndex+1 < len(sorted) {
			endPos = sorted[chunkIndex+1].StartPos
		}
		finalized = append(finalized, documentChunk.WithSpan(documentChunk.StartPos, endPos, chunkIndex))
	}

	return finalized
}
