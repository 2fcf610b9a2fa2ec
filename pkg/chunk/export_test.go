package chunk

import (
	"encoding/json"
	"testing"
)

func sampleChunks() []DocumentChunk {
	return []DocumentChunk{
		{Type: TypeTitle, Content: "COMMISSION REGULATION (EU) 2016/679", StartPos: 0, EndPos: 1, OrderIndex: 0},
		{Type: TypeWhereas, Content: "(1)\nFirst recital.", ParagraphNumber: "1", StartPos: 1, EndPos: 3, OrderIndex: 1},
		{Type: TypeWhereas, Content: "(2)\nSecond recital.", ParagraphNumber: "2", StartPos: 3, EndPos: 5, OrderIndex: 2},
		{Type: TypeMainSection, Content: "1. INTRODUCTION", SectionNumber: "1", Title: "INTRODUCTION", Level: 1, StartPos: 5, EndPos: 6, OrderIndex: 3},
	}
}

func TestSummary(t *testing.T) {
	summary := Summary(sampleChunks())

	if summary[TypeWhereas] != 2 {
		t.Errorf("WHEREAS count = %d, want 2", summary[TypeWhereas])
	}
	if summary[TypeTitle] != 1 {
		t.Errorf("TITLE count = %d, want 1", summary[TypeTitle])
	}
	if summary[TypeMainSection] != 1 {
		t.Errorf("MAIN_SECTION count = %d, want 1", summary[TypeMainSection])
	}
	if len(summary) != 3 {
		t.Errorf("summary has %d types, want 3", len(summary))
	}
}

func TestExport_RoundTrip(t *testing.T) {
	chunks := sampleChunks()

	data, err := ExportJSON(chunks)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var decoded ExportDocument
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal exported JSON: %v", err)
	}

	if decoded.TotalChunks != len(chunks) {
		t.Errorf("total_chunks = %d, want %d", decoded.TotalChunks, len(chunks))
	}

	manualTally := make(map[Type]int)
	for _, documentChunk := range chunks {
		manualTally[documentChunk.Type]++
	}
	if len(decoded.ChunkSummary) != len(manualTally) {
		t.Fatalf("chunk_summary has %d types, want %d", len(decoded.ChunkSummary), len(manualTally))
	}
	for chunkType, count := range manualTally {
		if decoded.ChunkSummary[chunkType] != count {
			t.Errorf("chunk_summary[%s] = %d, want %d", chunkType, decoded.ChunkSummary[chunkType], count)
		}
	}

	if len(decoded.Chunks) != len(chunks) {
		t.Fatalf("decoded %d chunks, want %d", len(decoded.Chunks), len(chunks))
	}
	if decoded.Chunks[1].ParagraphNumber != "1" {
		t.Errorf("decoded recital ParagraphNumber = %q, want \"1\"", decoded.Chunks[1].ParagraphNumber)
	}
}

func TestExport_EmptyList(t *testing.T) {
	exported := Export(nil)
	if exported.TotalChunks != 0 {
		t.Errorf("total_chunks = %d, want 0", exported.TotalChunks)
	}
	if exported.Chunks == nil {
		t.Error("Chunks should be an empty slice, not nil, for stable JSON output")
	}
}

func TestWithSpan_DoesNotMutateReceiver(t *testing.T) {
	original := DocumentChunk{Type: TypeParagraph, Content: "text", StartPos: 3, EndPos: 4, OrderIndex: 0}

	finalized := original.WithSpan(3, 9, 5)

	if original.EndPos != 4 || original.OrderIndex != 0 {
		t.Errorf("receiver mutated: %+v", original)
	}
	if finalized.EndPos != 9 || finalized.OrderIndex != 5 {
		t.Errorf("finalized chunk = %+v, want EndPos 9 and OrderIndex 5", finalized)
	}
}
