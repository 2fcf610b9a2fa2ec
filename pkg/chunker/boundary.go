package chunker

import (
	"sort"
	"strings"
)

// boundaryKind tags a coarse document region before sub-processing.
type boundaryKind string

const (
	boundaryHeader      boundaryKind = "header"
	boundaryPreamble    boundaryKind = "preamble"
	boundaryMainContent boundaryKind = "main_content"
	boundaryAnnex       boundaryKind = "annex"
	boundaryReferences  boundaryKind = "references"
)

// boundary is a half-open line range [start, end) with a region tag.
type boundary struct {
	kind  boundaryKind
	start int
	end   int
}

// markerSet records the first-occurrence line index of each structural
// marker, or -1 when the marker does not appear.
type markerSet struct {
	regulationTitle    int
	communicationTitle int
	declaration        int
	legalBasis         int
	whereas            int
	mainSection        int
	structuredField    int
	annex              int
	footnoteBlock      int
}

// scanMarkers performs a single pass over the document lines and records
// where each structural marker first appears.
func scanMarkers(lines []string) markerSet {
	markers := markerSet{
		regulationTitle:    -1,
		communicationTitle: -1,
		declaration:        -1,
		legalBasis:         -1,
		whereas:            -1,
		mainSection:        -1,
		structuredField:    -1,
		annex:              -1,
		footnoteBlock:      -1,
	}

	for lineIndex, line := range lines {
		trimmedLine := strings.TrimSpace(line)
		if trimmedLine == "" {
			continue
		}

		if markers.regulationTitle < 0 && regulationTitlePattern.MatchString(trimmedLine) {
			markers.regulationTitle = lineIndex
		}
		if markers.communicationTitle < 0 && communicationTitlePattern.MatchString(trimmedLine) {
			markers.communicationTitle = lineIndex
		}
		if markers.declaration < 0 && declarationPattern.MatchString(trimmedLine) {
			markers.declaration = lineIndex
		}
		if markers.legalBasis < 0 && legalBasisPattern.MatchString(trimmedLine) {
			markers.legalBasis = lineIndex
		}
		if markers.whereas < 0 && whereasPattern.MatchString(trimmedLine) {
			markers.whereas = lineIndex
		}
		if markers.mainSection < 0 && isMainSectionLine(trimmedLine) {
			markers.mainSection = lineIndex
		}
		if markers.structuredField < 0 && fieldHeaderPattern.MatchString(trimmedLine) {
			markers.structuredField = lineIndex
		}
		if markers.annex < 0 && annexPattern.MatchString(trimmedLine) {
			markers.annex = lineIndex
		}
		if markers.footnoteBlock < 0 && footnotePattern.MatchString(trimmedLine) {
			markers.footnoteBlock = lineIndex
		}
	}

	return markers
}

// cut is an interior boundary start candidate.
type cut struct {
	pos  int
	kind boundaryKind
}

// deriveRegulationBoundaries builds the coarse region list for
// regulation-style documents: header / preamble / main_content / annex.
//
// The decision tree is fixed: each found marker contributes one interior
// cut; anything before the first cut is the header; if no marker is found
// at all, the whole document is a single preamble region. The documented
// fallbacks are authoritative.
func deriveRegulationBoundaries(markers markerSet, lineCount int) []boundary {
	var cuts []cut

	// The preamble begins at the earliest of the declaration header, the
	// first legal-basis citation, and the recital block opener.
	preambleStart := -1
	for _, candidate := range []int{markers.declaration, markers.legalBasis, markers.whereas} {
		if candidate >= 0 && (preambleStart < 0 || candidate < preambleStart) {
			preambleStart = candidate
		}
	}
	if preambleStart >= 0 {
		cuts = append(cuts, cut{pos: preambleStart, kind: boundaryPreamble})
	}

	if markers.mainSection >= 0 && markers.mainSection > preambleStart {
		cuts = append(cuts, cut{pos: markers.mainSection, kind: boundaryMainContent})
	}

	if markers.annex >= 0 {
		cuts = append(cuts, cut{pos: markers.annex, kind: boundaryAnnex})
	}

	if len(cuts) == 0 {
		if markers.regulationTitle >= 0 {
			// Title but no body structure: the header processor extracts
			// the title and accumulates the rest.
			return []boundary{{kind: boundaryHeader, start: 0, end: lineCount}}
		}
		return []boundary{{kind: boundaryPreamble, start: 0, end: lineCount}}
	}

	return assembleBoundaries(cuts, lineCount)
}

// deriveCommunicationBoundaries builds the coarse region list for
// communication-style documents: header / main_content / references.
func deriveCommunicationBoundaries(markers markerSet, lineCount int) []boundary {
	var cuts []cut

	mainStart := markers.structuredField
	if mainStart < 0 && markers.communicationTitle >= 0 {
		mainStart = markers.communicationTitle + 1
	}
	if mainStart >= 0 && mainStart < lineCount {
		cuts = append(cuts, cut{pos: mainStart, kind: boundaryMainContent})
	}

	// A trailing footnote block marks the references region, but only when
	// it appears after the main content begins.
	if markers.footnoteBlock >= 0 && markers.footnoteBlock > mainStart {
		cuts = append(cuts, cut{pos: markers.footnoteBlock, kind: boundaryReferences})
	}

	if len(cuts) == 0 {
		if markers.communicationTitle >= 0 {
			return []boundary{{kind: boundaryHeader, start: 0, end: lineCount}}
		}
		return []boundary{{kind: boundaryMainContent, start: 0, end: lineCount}}
	}

	return assembleBoundaries(cuts, lineCount)
}

// assembleBoundaries orders interior cuts, prepends a header region when
// the first cut leaves room for one, and closes each region at the next
// cut (or the end of the document).
func assembleBoundaries(cuts []cut, lineCount int) []boundary {
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].pos < cuts[j].pos })

	var boundaries []boundary
	if cuts[0].pos > 0 {
		boundaries = append(boundaries, boundary{kind: boundaryHeader, start: 0, end: cuts[0].pos})
	}

	for cutIndex, currentCut := range cuts {
		end := lineCount
		if cutIndex+1 < len(cuts) {
			end = cuts[cutIndex+1].pos
		}
		if end <= currentCut.pos {
			continue
		}
		boundaries = append(boundaries, boundary{kind: currentCut.kind, start: currentCut.pos, end: end})
	}

	return boundaries
}
