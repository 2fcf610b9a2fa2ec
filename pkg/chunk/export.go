package chunk

import (
	"encoding/json"
	"fmt"
)

// Summary tallies chunks by type.
func Summary(chunks []DocumentChunk) map[Type]int {
	summary := make(map[Type]int)
	for _, documentChunk := range chunks {
		summary[documentChunk.Type]++
	}
	return summary
}

// ExportDocument is the serializable form of a chunked document.
type ExportDocument struct {
	// TotalChunks is the number of chunks in the document.
	TotalChunks int `json:"total_chunks"`

	// ChunkSummary maps chunk type to occurrence count.
	ChunkSummary map[Type]int `json:"chunk_summary"`

	// Chunks is the full ordered chunk list.
	Chunks []DocumentChunk `json:"chunks"`
}

// Export converts a chunk list into its serializable document form.
func Export(chunks []DocumentChunk) ExportDocument {
	exported := ExportDocument{
		TotalChunks:  len(chunks),
		ChunkSummary: Summary(chunks),
		Chunks:       chunks,
	}
	if exported.Chunks == nil {
		exported.Chunks = []DocumentChunk{}
	}
	return exported
}

// ExportJSON serializes a chunk list as an indented JSON document.
func ExportJSON(chunks []DocumentChunk) ([]byte, error) {
	data, err := json.MarshalIndent(Export(chunks), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chunk export: %w", err)
	}
	return data, nil
}
