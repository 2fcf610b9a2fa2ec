// Package chunk defines the typed document chunk model produced by the
// EUR-Lex chunker and consumed by downstream citation and relevancy tools.
package chunk

// Type classifies the semantic role of a chunk within a legal document.
type Type string

const (
	// TypeTitle is the act title (e.g., "COMMISSION REGULATION (EU) 2023/1234").
	TypeTitle Type = "TITLE"

	// TypeHeader is generic front-matter text that is not a title, date, or subject.
	TypeHeader Type = "HEADER"

	// TypeDate is the adoption date line (e.g., "of 27 April 2016").
	TypeDate Type = "DATE"

	// TypeSubject is the subject line describing what the act is about.
	TypeSubject Type = "SUBJECT"

	// TypeCommissionDeclaration is a declaration by an EU institution.
	TypeCommissionDeclaration Type = "COMMISSION_DECLARATION"

	// TypeLegalBasis is a "Having regard to" citation in the preamble.
	TypeLegalBasis Type = "LEGAL_BASIS"

	// TypeWhereas is a single numbered recital from the "Whereas:" block.
	TypeWhereas Type = "WHEREAS"

	// TypePreamble is preamble text that matched no more specific marker.
	// It is also the whole-document fallback type when no structural
	// markers are recognized at all.
	TypePreamble Type = "PREAMBLE"

	// TypeMainSection is a numbered top-level section ("1. INTRODUCTION").
	TypeMainSection Type = "MAIN_SECTION"

	// TypeSubsection is a numbered subsection ("1.2. Scope").
	TypeSubsection Type = "SUBSECTION"

	// TypeParagraph is a numbered paragraph within a section.
	TypeParagraph Type = "PARAGRAPH"

	// TypeMainContent is the whole-document fallback type for
	// communication documents with no recognizable structure.
	TypeMainContent Type = "MAIN_CONTENT"

	// TypeAnnex is annex content (tables or annex paragraphs).
	TypeAnnex Type = "ANNEX"

	// TypeReference is a reference entry (ELI links, OJ citations, footnotes).
	TypeReference Type = "REFERENCE"
)

// DocumentChunk is one semantic unit of a chunked legal document.
//
// Chunks are value records: post-processing builds new instances with
// finalized positions rather than mutating chunks in place. StartPos and
// EndPos are line indices into the source document forming a half-open
// range [StartPos, EndPos).
type DocumentChunk struct {
	// Type is the semantic classification of the chunk.
	Type Type `json:"type"`

	// Content is the chunk text with lines joined by newlines.
	Content string `json:"content"`

	// SectionNumber is the top-level section number, when applicable ("3").
	SectionNumber string `json:"section_number,omitempty"`

	// SubsectionNumber is the dotted subsection number, when applicable ("3.1").
	SubsectionNumber string `json:"subsection_number,omitempty"`

	// ParagraphNumber is the numbered paragraph or recital number ("12").
	ParagraphNumber string `json:"paragraph_number,omitempty"`

	// Title is the heading text for titled chunks (sections, annexes, fields).
	Title string `json:"title,omitempty"`

	// Level is the hierarchy depth: 0 for document-level chunks, 1 for
	// sections, 2 for subsections, 3 for paragraphs.
	Level int `json:"level"`

	// StartPos is the first line index of the chunk (inclusive).
	StartPos int `json:"start_pos"`

	// EndPos is the line index one past the chunk (exclusive). After
	// post-processing it equals the next chunk's StartPos, or the
	// document line count for the last chunk.
	EndPos int `json:"end_pos"`

	// Metadata holds free-form annotations (e.g., content_type=table).
	Metadata map[string]string `json:"metadata,omitempty"`

	// OrderIndex is the chunk's position in the final ordered list,
	// assigned during post-processing.
	OrderIndex int `json:"order_index"`
}

// WithSpan returns a copy of the chunk with finalized positions and order
// index. The receiver is not modified.
func (documentChunk DocumentChunk) WithSpan(startPos, endPos, orderIndex int) DocumentChunk {
	finalized := documentChunk
	finalized.StartPos = startPos
	finalized.EndPos = endPos
	finalized.OrderIndex = orderIndex
	return finalized
}
