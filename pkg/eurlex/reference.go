package eurlex

import (
	"regexp"
)

// EU legislation reference patterns. The "No" form reverses the
// number/year order: "Regulation (EC) No 45/2001" is number 45 of 2001,
// while "Regulation (EU) 2016/679" is number 679 of 2016.
var (
	regulationPattern   = regexp.MustCompile(`Regulation\s+\(E[CU]\)\s+(\d{4})/(\d+)`)
	regulationNoPattern = regexp.MustCompile(`Regulation\s+\(E[CU]\)\s+No\s+(\d+)/(\d+)`)
	directivePattern    = regexp.MustCompile(`Directive\s+(?:\(E[CU]\)\s+)?(\d+)/(\d+)(?:/E[CU])?`)
	decisionPattern     = regexp.MustCompile(`Decision\s+(\d+)/(\d+)/E[CU]`)
)

// ParseReferences extracts all EU legislation references from the text.
// The same act referenced multiple times yields multiple entries; callers
// that need uniqueness can key on the generated CELEX number.
func ParseReferences(text string) []Reference {
	var references []Reference

	// The "No" form must run before the plain form, which would otherwise
	// match the same text with year and number transposed.
	seenOffsets := make(map[int]bool)
	for _, match := range regulationNoPattern.FindAllStringSubmatchIndex(text, -1) {
		seenOffsets[match[0]] = true
		references = append(references, Reference{
			Type:    ReferenceRegulation,
			Year:    text[match[4]:match[5]],
			Number:  text[match[2]:match[3]],
			RawText: text[match[0]:match[1]],
		})
	}
	for _, match := range regulationPattern.FindAllStringSubmatchIndex(text, -1) {
		if seenOffsets[match[0]] {
			continue
		}
		references = append(references, Reference{
			Type:    ReferenceRegulation,
			Year:    text[match[2]:match[3]],
			Number:  text[match[4]:match[5]],
			RawText: text[match[0]:match[1]],
		})
	}

	for _, match := range directivePattern.FindAllStringSubmatch(text, -1) {
		references = append(references, Reference{
			Type:    ReferenceDirective,
			Year:    match[1],
			Number:  match[2],
			RawText: match[0],
		})
	}

	for _, match := range decisionPattern.FindAllStringSubmatch(text, -1) {
		references = append(references, Reference{
			Type:    ReferenceDecision,
			Year:    match[1],
			Number:  match[2],
			RawText: match[0],
		})
	}

	return references
}
