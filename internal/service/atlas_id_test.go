package service

import (
	"testing"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

func TestGenerateAtlasID(t *testing.T) {
	roster := []domain.StaffRecord{
		{ID: 1, AtlasID: "SMITHJohn"},
		{ID: 2, AtlasID: "SMITHJane"},
		{ID: 3, AtlasID: "DOEJim"},
		{ID: 4, AtlasID: "DOEJim2"},
	}

	tests := []struct {
		name       string
		firstName  string
		surname    string
		middleName string
		excludeID  int
		want       string
	}{
		{name: "fresh name", firstName: "Alice", surname: "Brown", want: "BROWNAlice"},
		{name: "middle initial appended", firstName: "Alice", surname: "Brown", middleName: "May", want: "BROWNAliceM"},
		{name: "collision gets suffix 2", firstName: "John", surname: "Smith", want: "SMITHJohn2"},
		{name: "double collision gets suffix 3", firstName: "Jim", surname: "Doe", want: "DOEJim3"},
		{name: "own record excluded from scan", firstName: "John", surname: "Smith", excludeID: 1, want: "SMITHJohn"},
		{name: "punctuation stripped", firstName: "Mary Jane", surname: "O'Neil", want: "O'NEILMaryjane"},
		{name: "empty first name", firstName: "", surname: "Brown", want: ""},
		{name: "digits-only surname cleans to empty", firstName: "Alice", surname: "1234", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateAtlasID(roster, tt.firstName, tt.surname, tt.middleName, tt.excludeID)
			if got != tt.want {
				t.Errorf("generateAtlasID(%q, %q, %q, %d) = %q, want %q",
					tt.firstName, tt.surname, tt.middleName, tt.excludeID, got, tt.want)
			}
		})
	}
}

func TestSentenceCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dAVID", "David"},
		{"  anne  ", "Anne"},
		{"o", "O"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := sentenceCase(tt.in); got != tt.want {
			t.Errorf("sentenceCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ten digits", in: "0409992215", want: "0409-992-215"},
		{name: "spaces stripped", in: "0409 992 215", want: "0409-992-215"},
		{name: "already formatted", in: "0409-992-215", want: "0409-992-215"},
		{name: "too short kept verbatim", in: "12345", want: "12345"},
		{name: "landline with area code kept verbatim", in: "02 9999 8888 x12", want: "02 9999 8888 x12"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatPhone(tt.in); got != tt.want {
				t.Errorf("formatPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanNamePart(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"O'Brien-Smith", "O'Brien-Smith"},
		{"Mary Jane", "MaryJane"},
		{"J.R.", "JR"},
		{"  Bob  ", "Bob"},
		{"1234", ""},
	}
	for _, tt := range tests {
		if got := cleanNamePart(tt.in); got != tt.want {
			t.Errorf("cleanNamePart(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
