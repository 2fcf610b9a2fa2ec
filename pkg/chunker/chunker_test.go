package chunker

import (
	"strings"
	"testing"

	"github.com/coolbeans/lexchunk/pkg/chunk"
)

// regulationSample is a condensed regulation-style document exercising the
// header, preamble, main content, and annex paths.
const regulationSample = `COMMISSION REGULATION (EU) 2016/679
of 27 April 2016
on the protection of natural persons with regard to the processing of personal data

Having regard to the Treaty on the Functioning of the European Union,
Having regard to the proposal from the European Commission,
Whereas:
(1)
The protection of natural persons in relation to the processing of personal data is a fundamental right.
(2)
The principles of data protection should apply to any information concerning an identified person.
(3)
Rapid technological developments have brought new challenges for the protection of personal data.
1. INTRODUCTION
This section introduces the subject matter of the act.
| (1) | First numbered paragraph presented in a table. |
| (2) | Second numbered paragraph presented in a table. |
2. SCOPE
2.1. Material scope
(1) This act applies to the processing of personal data.
(2) It does not apply to purely personal or household activities.
ANNEX
| Category | Threshold |
| --- | --- |
| Personal data | 100 |`

func chunkTypeCounts(chunks []chunk.DocumentChunk) map[chunk.Type]int {
	counts := make(map[chunk.Type]int)
	for _, documentChunk := range chunks {
		counts[documentChunk.Type]++
	}
	return counts
}

func TestChunkDocument_NonEmptyInputYieldsChunks(t *testing.T) {
	inputs := []string{
		regulationSample,
		"just a single line of text without any structure at all",
		"   \n\t\n ",
		"\n\n\n",
	}

	chunkerInstance := New()
	for _, input := range inputs {
		chunks := chunkerInstance.ChunkDocument(input)
		if len(chunks) == 0 {
			t.Errorf("ChunkDocument(%q) returned no chunks for non-empty input", input)
		}
	}
}

func TestChunkDocument_EmptyInput(t *testing.T) {
	chunks := New().ChunkDocument("")
	if len(chunks) != 0 {
		t.Errorf("ChunkDocument(\"\") returned %d chunks, want 0", len(chunks))
	}
}

func TestChunkDocument_ChunksAreSortedAndContiguous(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)
	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}

	lineCount := len(strings.Split(regulationSample, "\n"))

	for chunkIndex, documentChunk := range chunks {
		if documentChunk.OrderIndex != chunkIndex {
			t.Errorf("chunk %d: OrderIndex = %d, want %d", chunkIndex, documentChunk.OrderIndex, chunkIndex)
		}
		if chunkIndex > 0 {
			previous := chunks[chunkIndex-1]
			if documentChunk.StartPos < previous.StartPos {
				t.Errorf("chunk %d: StartPos %d precedes chunk %d StartPos %d",
					chunkIndex, documentChunk.StartPos, chunkIndex-1, previous.StartPos)
			}
			if previous.EndPos != documentChunk.StartPos {
				t.Errorf("chunk %d: EndPos = %d, want next StartPos %d",
					chunkIndex-1, previous.EndPos, documentChunk.StartPos)
			}
		}
	}

	lastChunk := chunks[len(chunks)-1]
	if lastChunk.EndPos != lineCount {
		t.Errorf("last chunk EndPos = %d, want document line count %d", lastChunk.EndPos, lineCount)
	}
}

func TestChunkDocument_WhereasRecitalsExploded(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)

	var whereasChunks []chunk.DocumentChunk
	for _, documentChunk := range chunks {
		if documentChunk.Type == chunk.TypeWhereas {
			whereasChunks = append(whereasChunks, documentChunk)
		}
	}

	if len(whereasChunks) != 3 {
		t.Fatalf("got %d WHEREAS chunks, want 3", len(whereasChunks))
	}

	for recitalIndex, whereasChunk := range whereasChunks {
		wantNumber := []string{"1", "2", "3"}[recitalIndex]
		if whereasChunk.ParagraphNumber != wantNumber {
			t.Errorf("recital %d: ParagraphNumber = %q, want %q",
				recitalIndex, whereasChunk.ParagraphNumber, wantNumber)
		}
	}

	if !strings.Contains(whereasChunks[0].Content, "fundamental right") {
		t.Errorf("recital 1 content missing its text: %q", whereasChunks[0].Content)
	}
}

func TestChunkDocument_NoMarkersFallsBackToSinglePreamble(t *testing.T) {
	unstructured := "some plain text that resembles nothing in particular\nand a second line of it\nand a third"

	chunks := New().ChunkDocument(unstructured)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want exactly 1", len(chunks))
	}
	if chunks[0].Type != chunk.TypePreamble {
		t.Errorf("chunk type = %s, want %s", chunks[0].Type, chunk.TypePreamble)
	}
	if chunks[0].StartPos != 0 || chunks[0].EndPos != 3 {
		t.Errorf("chunk span = [%d, %d), want [0, 3)", chunks[0].StartPos, chunks[0].EndPos)
	}
}

func TestChunkDocument_NoMarkersCommunicationPathFallsBackToMainContent(t *testing.T) {
	unstructured := "some plain text that resembles nothing in particular\nand a second line of it"

	chunks := New(WithDocumentKind(KindCommunication)).ChunkDocument(unstructured)
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want exactly 1", len(chunks))
	}
	if chunks[0].Type != chunk.TypeMainContent {
		t.Errorf("chunk type = %s, want %s", chunks[0].Type, chunk.TypeMainContent)
	}
	if chunks[0].StartPos != 0 || chunks[0].EndPos != 2 {
		t.Errorf("chunk span = [%d, %d), want [0, 2)", chunks[0].StartPos, chunks[0].EndPos)
	}
}

func TestChunkDocument_TableParagraphsAreCleaned(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)

	var tableParagraphs []chunk.DocumentChunk
	for _, documentChunk := range chunks {
		if documentChunk.Type == chunk.TypeParagraph && documentChunk.SectionNumber == "1" {
			tableParagraphs = append(tableParagraphs, documentChunk)
		}
	}

	if len(tableParagraphs) != 2 {
		t.Fatalf("got %d paragraphs in section 1, want 2", len(tableParagraphs))
	}

	if tableParagraphs[0].Content != "First numbered paragraph presented in a table." {
		t.Errorf("paragraph content = %q, want cleaned cell text", tableParagraphs[0].Content)
	}
	for _, paragraphChunk := range tableParagraphs {
		if strings.Contains(paragraphChunk.Content, "|") {
			t.Errorf("paragraph content still contains pipe syntax: %q", paragraphChunk.Content)
		}
	}
}

func TestChunkDocument_RegulationStructure(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)
	counts := chunkTypeCounts(chunks)

	if counts[chunk.TypeTitle] != 1 {
		t.Errorf("TITLE count = %d, want 1", counts[chunk.TypeTitle])
	}
	if counts[chunk.TypeDate] != 1 {
		t.Errorf("DATE count = %d, want 1", counts[chunk.TypeDate])
	}
	if counts[chunk.TypeSubject] != 1 {
		t.Errorf("SUBJECT count = %d, want 1", counts[chunk.TypeSubject])
	}
	if counts[chunk.TypeLegalBasis] != 2 {
		t.Errorf("LEGAL_BASIS count = %d, want 2", counts[chunk.TypeLegalBasis])
	}
	if counts[chunk.TypeMainSection] != 2 {
		t.Errorf("MAIN_SECTION count = %d, want 2", counts[chunk.TypeMainSection])
	}
	if counts[chunk.TypeSubsection] != 1 {
		t.Errorf("SUBSECTION count = %d, want 1", counts[chunk.TypeSubsection])
	}
	if counts[chunk.TypeParagraph] != 4 {
		t.Errorf("PARAGRAPH count = %d, want 4", counts[chunk.TypeParagraph])
	}
	if counts[chunk.TypeAnnex] != 1 {
		t.Errorf("ANNEX count = %d, want 1", counts[chunk.TypeAnnex])
	}
}

func TestChunkDocument_AnnexTableTagged(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)

	for _, documentChunk := range chunks {
		if documentChunk.Type == chunk.TypeAnnex {
			if documentChunk.Metadata["content_type"] != "table" {
				t.Errorf("annex metadata content_type = %q, want \"table\"", documentChunk.Metadata["content_type"])
			}
			return
		}
	}
	t.Fatal("no ANNEX chunk produced")
}

func TestChunkDocument_SubsectionNumbering(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)

	for _, documentChunk := range chunks {
		if documentChunk.Type == chunk.TypeSubsection {
			if documentChunk.SubsectionNumber != "2.1" {
				t.Errorf("SubsectionNumber = %q, want \"2.1\"", documentChunk.SubsectionNumber)
			}
			if documentChunk.SectionNumber != "2" {
				t.Errorf("SectionNumber = %q, want \"2\"", documentChunk.SectionNumber)
			}
			if documentChunk.Title != "Material scope" {
				t.Errorf("Title = %q, want \"Material scope\"", documentChunk.Title)
			}
			return
		}
	}
	t.Fatal("no SUBSECTION chunk produced")
}

func TestChunkDocument_PlainParagraphsUnderSubsection(t *testing.T) {
	chunks := New().ChunkDocument(regulationSample)

	var subsectionParagraphs []chunk.DocumentChunk
	for _, documentChunk := range chunks {
		if documentChunk.Type == chunk.TypeParagraph && documentChunk.SubsectionNumber == "2.1" {
			subsectionParagraphs = append(subsectionParagraphs, documentChunk)
		}
	}

	if len(subsectionParagraphs) != 2 {
		t.Fatalf("got %d paragraphs under subsection 2.1, want 2", len(subsectionParagraphs))
	}
	if subsectionParagraphs[0].ParagraphNumber != "1" || subsectionParagraphs[1].ParagraphNumber != "2" {
		t.Errorf("paragraph numbers = %q, %q, want \"1\", \"2\"",
			subsectionParagraphs[0].ParagraphNumber, subsectionParagraphs[1].ParagraphNumber)
	}
}

func TestIsSubjectLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"typical subject line", "on the protection of natural persons with regard to the processing of personal data", true},
		{"uppercase start", "REGULATION (EU) 2016/679 OF THE EUROPEAN PARLIAMENT", false},
		{"short lowercase line", "on data protection", false},
		// The minimum length counts runes, not bytes: twenty accented
		// characters occupy forty bytes but are still a short line.
		{"twenty multibyte runes", strings.Repeat("é", 20), false},
		{"twenty-one multibyte runes", strings.Repeat("é", 21), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSubjectLine(tt.line); got != tt.want {
				t.Errorf("isSubjectLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestResolveKind_Detection(t *testing.T) {
	communicationText := "COMMUNICATION FROM THE COMMISSION TO THE EUROPEAN PARLIAMENT\nSubject: The state of the Energy Union"
	regulationText := "COUNCIL REGULATION (EU) 2021/100\nof 1 February 2021"

	communicationChunks := New().ChunkDocument(communicationText)
	foundTitle := false
	for _, documentChunk := range communicationChunks {
		if documentChunk.Type == chunk.TypeTitle {
			foundTitle = true
		}
	}
	if !foundTitle {
		t.Error("communication document produced no TITLE chunk")
	}

	regulationChunks := New().ChunkDocument(regulationText)
	if len(regulationChunks) == 0 {
		t.Fatal("regulation document produced no chunks")
	}
}
