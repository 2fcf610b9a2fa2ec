package eurlex

import (
	"fmt"
	"regexp"
	"strings"
)

// ELI type slugs used in the URI path.
const (
	eliSlugRegulation = "reg"
	eliSlugDirective  = "dir"
	eliSlugDecision   = "dec"
)

// eliURIPattern matches the path components of an ELI URI:
// {type}/{year}/{number}/oj with an optional trailing language segment.
var eliURIPattern = regexp.MustCompile(`^(reg|dir|dec)/(\d{4})/(\d+)(?:/oj)?/?$`)

// GenerateELI creates an ELI URI from a parsed EU reference.
// Returns an error if the reference lacks required components.
//
// ELI format: http://data.europa.eu/eli/{type}/{year}/{number}/oj
// Example: Regulation (EU) 2016/679 -> http://data.europa.eu/eli/reg/2016/679/oj
func GenerateELI(reference Reference) (ELIURI, error) {
	if reference.Year == "" {
		return ELIURI{}, fmt.Errorf("reference missing required year component")
	}
	if reference.Number == "" {
		return ELIURI{}, fmt.Errorf("reference missing required number component")
	}

	typeSlug, err := referenceTypeToELISlug(reference.Type)
	if err != nil {
		return ELIURI{}, err
	}

	return ELIURI{
		TypeSlug: typeSlug,
		Year:     normalizeYear(reference.Year),
		Number:   reference.Number, // ELI uses unpadded numbers.
	}, nil
}

// ParseELI parses an ELI URI (full URL or bare path) into its components.
func ParseELI(uri string) (ELIURI, error) {
	path := strings.TrimPrefix(uri, ELIBaseURL)
	path = strings.TrimPrefix(path, strings.Replace(ELIBaseURL, "http://", "https://", 1))
	path = strings.TrimPrefix(path, "/")

	match := eliURIPattern.FindStringSubmatch(path)
	if match == nil {
		return ELIURI{}, fmt.Errorf("malformed ELI URI: %q", uri)
	}

	return ELIURI{
		TypeSlug: match[1],
		Year:     match[2],
		Number:   match[3],
	}, nil
}

// ReferenceType returns the reference type corresponding to the URI's
// type slug.
func (eliURI ELIURI) ReferenceType() (ReferenceType, error) {
	switch eliURI.TypeSlug {
	case eliSlugRegulation:
		return ReferenceRegulation, nil
	case eliSlugDirective:
		return ReferenceDirective, nil
	case eliSlugDecision:
		return ReferenceDecision, nil
	default:
		return "", fmt.Errorf("unsupported ELI type slug: %q", eliURI.TypeSlug)
	}
}

// referenceTypeToELISlug maps a ReferenceType to the ELI type path segment.
func referenceTypeToELISlug(referenceType ReferenceType) (string, error) {
	switch referenceType {
	case ReferenceRegulation:
		return eliSlugRegulation, nil
	case ReferenceDirective:
		return eliSlugDirective, nil
	case ReferenceDecision:
		return eliSlugDecision, nil
	default:
		return "", fmt.Errorf("unsupported reference type for ELI generation: %q", referenceType)
	}
}
