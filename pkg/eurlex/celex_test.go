package eurlex

import (
	"testing"
)

func TestGenerateCELEX(t *testing.T) {
	tests := []struct {
		name      string
		reference Reference
		want      string
		wantErr   bool
	}{
		{
			name:      "GDPR regulation",
			reference: Reference{Type: ReferenceRegulation, Year: "2016", Number: "679"},
			want:      "32016R0679",
		},
		{
			name:      "data protection directive with two-digit year",
			reference: Reference{Type: ReferenceDirective, Year: "95", Number: "46"},
			want:      "31995L0046",
		},
		{
			name:      "decision",
			reference: Reference{Type: ReferenceDecision, Year: "2010", Number: "87"},
			want:      "32010D0087",
		},
		{
			name:      "two-digit year below cutoff",
			reference: Reference{Type: ReferenceRegulation, Year: "16", Number: "679"},
			want:      "32016R0679",
		},
		{
			name:      "missing year",
			reference: Reference{Type: ReferenceRegulation, Number: "679"},
			wantErr:   true,
		},
		{
			name:      "missing number",
			reference: Reference{Type: ReferenceRegulation, Year: "2016"},
			wantErr:   true,
		},
		{
			name:      "unsupported type",
			reference: Reference{Type: "treaty", Year: "2016", Number: "679"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			celexNumber, err := GenerateCELEX(tt.reference)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("GenerateCELEX succeeded with %q, want error", celexNumber)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateCELEX failed: %v", err)
			}
			if celexNumber.String() != tt.want {
				t.Errorf("CELEX = %q, want %q", celexNumber.String(), tt.want)
			}
		})
	}
}

func TestParseCELEX(t *testing.T) {
	celexNumber, err := ParseCELEX("32016R0679")
	if err != nil {
		t.Fatalf("ParseCELEX failed: %v", err)
	}
	if celexNumber.Sector != SectorLegislation {
		t.Errorf("Sector = %q, want %q", celexNumber.Sector, SectorLegislation)
	}
	if celexNumber.Year != "2016" {
		t.Errorf("Year = %q, want \"2016\"", celexNumber.Year)
	}
	if celexNumber.TypeCode != TypeRegulation {
		t.Errorf("TypeCode = %q, want %q", celexNumber.TypeCode, TypeRegulation)
	}
	if celexNumber.Number != "0679" {
		t.Errorf("Number = %q, want \"0679\"", celexNumber.Number)
	}
}

func TestParseCELEX_RoundTrip(t *testing.T) {
	for _, celexString := range []string{"32016R0679", "31995L0046", "32010D0087"} {
		celexNumber, err := ParseCELEX(celexString)
		if err != nil {
			t.Fatalf("ParseCELEX(%q) failed: %v", celexString, err)
		}
		if celexNumber.String() != celexString {
			t.Errorf("round trip of %q produced %q", celexString, celexNumber.String())
		}
	}
}

func TestCELEXNumber_Reference(t *testing.T) {
	celexNumber, err := ParseCELEX("31995L0046")
	if err != nil {
		t.Fatalf("ParseCELEX failed: %v", err)
	}

	reference, err := celexNumber.Reference()
	if err != nil {
		t.Fatalf("Reference failed: %v", err)
	}
	if reference.Type != ReferenceDirective {
		t.Errorf("Type = %q, want %q", reference.Type, ReferenceDirective)
	}
	if reference.Year != "1995" || reference.Number != "46" {
		t.Errorf("Year/Number = %s/%s, want 1995/46 with padding stripped", reference.Year, reference.Number)
	}

	eliURI, err := GenerateELI(reference)
	if err != nil {
		t.Fatalf("GenerateELI failed: %v", err)
	}
	if eliURI.String() != "http://data.europa.eu/eli/dir/1995/46/oj" {
		t.Errorf("ELI = %q, want the directive URI", eliURI.String())
	}
}

func TestParseCELEX_Malformed(t *testing.T) {
	for _, malformed := range []string{"", "R2016679", "92016R0679", "32016X0679", "32016R06790X"} {
		if _, err := ParseCELEX(malformed); err == nil {
			t.Errorf("ParseCELEX(%q) succeeded, want error", malformed)
		}
	}
}
