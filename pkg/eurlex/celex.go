package eurlex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// celexPattern matches a canonical CELEX number: sector digit, four-digit
// year, type letter, and document number.
var celexPattern = regexp.MustCompile(`^([1-6])(\d{4})([A-Z])(\d{1,4})$`)

// ParseCELEX parses a CELEX identifier string into its components.
// Returns an error for malformed identifiers or unsupported type codes.
func ParseCELEX(celexString string) (CELEXNumber, error) {
	match := celexPattern.FindStringSubmatch(celexString)
	if match == nil {
		return CELEXNumber{}, fmt.Errorf("malformed CELEX number: %q", celexString)
	}

	typeCode := DocumentTypeCode(match[3])
	switch typeCode {
	case TypeRegulation, TypeDirective, TypeDecision:
	default:
		return CELEXNumber{}, fmt.Errorf("unsupported CELEX type code %q in %q", match[3], celexString)
	}

	return CELEXNumber{
		Sector:   DocumentSector(match[1]),
		Year:     match[2],
		TypeCode: typeCode,
		Number:   padCELEXNumber(match[4]),
	}, nil
}

// GenerateCELEX creates a CELEX number from a parsed EU reference.
// Returns an error if the reference lacks a year or number.
//
// CELEX format: {Sector}{Year}{TypeCode}{PaddedNumber}
// Example: Regulation (EU) 2016/679 -> "32016R0679"
func GenerateCELEX(reference Reference) (CELEXNumber, error) {
	if reference.Year == "" {
		return CELEXNumber{}, fmt.Errorf("reference missing required year component")
	}
	if reference.Number == "" {
		return CELEXNumber{}, fmt.Errorf("reference missing required number component")
	}

	typeCode, err := referenceTypeToDocumentTypeCode(reference.Type)
	if err != nil {
		return CELEXNumber{}, err
	}

	return CELEXNumber{
		Sector:   SectorLegislation,
		Year:     normalizeYear(reference.Year),
		TypeCode: typeCode,
		Number:   padCELEXNumber(reference.Number),
	}, nil
}

// Reference converts the CELEX number back to a legislation reference,
// with the document number stripped of its zero padding.
func (celexNumber CELEXNumber) Reference() (Reference, error) {
	var referenceType ReferenceType
	switch celexNumber.TypeCode {
	case TypeRegulation:
		referenceType = ReferenceRegulation
	case TypeDirective:
		referenceType = ReferenceDirective
	case TypeDecision:
		referenceType = ReferenceDecision
	default:
		return Reference{}, fmt.Errorf("unsupported CELEX type code %q", celexNumber.TypeCode)
	}

	return Reference{
		Type:    referenceType,
		Year:    celexNumber.Year,
		Number:  strings.TrimLeft(celexNumber.Number, "0"),
		RawText: celexNumber.String(),
	}, nil
}

// referenceTypeToDocumentTypeCode maps a ReferenceType to its CELEX type code.
func referenceTypeToDocumentTypeCode(referenceType ReferenceType) (DocumentTypeCode, error) {
	switch referenceType {
	case ReferenceRegulation:
		return TypeRegulation, nil
	case ReferenceDirective:
		return TypeDirective, nil
	case ReferenceDecision:
		return TypeDecision, nil
	default:
		return "", fmt.Errorf("unsupported reference type for CELEX generation: %q", referenceType)
	}
}

// normalizeYear converts a 2-digit year to 4-digit using 1958 (the year
// the EEC was founded) as the cutoff: years >= 58 become 19xx, years < 58
// become 20xx. 4-digit years pass through unchanged.
func normalizeYear(yearString string) string {
	if len(yearString) != 2 {
		return yearString
	}
	yearValue, err := strconv.Atoi(yearString)
	if err != nil {
		return yearString
	}
	if yearValue >= 58 {
		return "19" + yearString
	}
	return "20" + yearString
}

// padCELEXNumber pads a document number to 4 digits with leading zeros.
func padCELEXNumber(numberString string) string {
	for len(numberString) < 4 {
		numberString = "0" + numberString
	}
	return numberString
}
