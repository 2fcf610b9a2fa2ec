// Package eurlex provides EUR-Lex identifier handling: parsing and
// generating CELEX numbers and ELI URIs, extracting EU legislation
// references from text, and resolving identifiers to fetchable URLs.
package eurlex

import (
	"time"
)

// DocumentSector is the CELEX sector code.
// See: https://eur-lex.europa.eu/content/tools/TableOfSectors/types_of_documents_in_eurlex.html
type DocumentSector string

const (
	SectorTreaties                 DocumentSector = "1"
	SectorInternationalAgreements  DocumentSector = "2"
	SectorLegislation              DocumentSector = "3"
	SectorComplementaryLegislation DocumentSector = "4"
	SectorPreparatoryActs          DocumentSector = "5"
	SectorCaseLaw                  DocumentSector = "6"
)

// DocumentTypeCode is the CELEX document type indicator within a sector.
type DocumentTypeCode string

const (
	TypeRegulation DocumentTypeCode = "R"
	TypeDirective  DocumentTypeCode = "L"
	TypeDecision   DocumentTypeCode = "D"
)

// CELEXNumber is a structured representation of a CELEX identifier.
// Format: {Sector}{Year}{TypeCode}{PaddedNumber}
// Example: "32016R0679" = Sector 3, Year 2016, Regulation, Number 0679
type CELEXNumber struct {
	Sector   DocumentSector   `json:"sector"`
	Year     string           `json:"year"`
	TypeCode DocumentTypeCode `json:"type_code"`
	Number   string           `json:"number"`
}

// String returns the canonical CELEX string representation.
func (celexNumber CELEXNumber) String() string {
	return string(celexNumber.Sector) + celexNumber.Year + string(celexNumber.TypeCode) + celexNumber.Number
}

// ELIBaseURL is the base URL for ELI URIs.
const ELIBaseURL = "http://data.europa.eu/eli/"

// ELIURI is a European Legislation Identifier URI.
// Format: http://data.europa.eu/eli/{type}/{year}/{number}/oj
type ELIURI struct {
	TypeSlug string `json:"type_slug"`
	Year     string `json:"year"`
	Number   string `json:"number"`
}

// String returns the full ELI URI.
func (eliURI ELIURI) String() string {
	return ELIBaseURL + eliURI.TypeSlug + "/" + eliURI.Year + "/" + eliURI.Number + "/oj"
}

// ReferenceType classifies an EU legislation reference.
type ReferenceType string

const (
	ReferenceRegulation ReferenceType = "regulation"
	ReferenceDirective  ReferenceType = "directive"
	ReferenceDecision   ReferenceType = "decision"
)

// Reference is a parsed EU legislation reference extracted from text.
type Reference struct {
	// Type is the kind of act referenced.
	Type ReferenceType `json:"type"`

	// Year is the document year as it appeared in the reference
	// (possibly two digits).
	Year string `json:"year"`

	// Number is the document number within the year.
	Number string `json:"number"`

	// RawText is the reference text as found in the source.
	RawText string `json:"raw_text"`
}

// ValidationResult captures the outcome of a URI validation via HEAD request.
type ValidationResult struct {
	URI        string    `json:"uri"`
	Valid      bool      `json:"valid"`
	StatusCode int       `json:"status_code"`
	CheckedAt  time.Time `json:"checked_at"`
	Error      string    `json:"error,omitempty"`
}
