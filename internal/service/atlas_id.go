package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

// cleanNamePart strips everything except letters, hyphens and apostrophes.
func cleanNamePart(part string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(part) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '\'' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validNamePart reports whether a name consists only of letters, hyphens and
// apostrophes.
func validNamePart(part string) bool {
	if part == "" {
		return false
	}
	for _, r := range part {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// generateAtlasID derives the human-readable roster key from name parts:
// UPPER(surname) + Capitalised(firstName), plus the middle initial when a
// middle name is given. On collision with another record's AtlasID the base
// gets a numeric suffix starting at 2. Records whose ID equals excludeID are
// ignored by the collision scan so re-saving a record does not suffix
// itself. Returns "" when first name or surname is empty after cleaning.
func generateAtlasID(records []domain.StaffRecord, firstName, surname, middleName string, excludeID int) string {
	if firstName == "" || surname == "" {
		return ""
	}

	cleanFirst := cleanNamePart(firstName)
	cleanSurname := cleanNamePart(surname)
	cleanMiddle := cleanNamePart(middleName)

	if cleanFirst == "" || cleanSurname == "" {
		return ""
	}

	baseID := strings.ToUpper(cleanSurname) + sentenceCase(cleanFirst)
	if cleanMiddle != "" {
		baseID += strings.ToUpper(cleanMiddle[:1])
	}

	taken := func(candidate string) bool {
		for _, rec := range records {
			if rec.AtlasID == candidate && rec.ID != excludeID {
				return true
			}
		}
		return false
	}

	atlasID := baseID
	for counter := 2; taken(atlasID); counter++ {
		atlasID = baseID + strconv.Itoa(counter)
	}
	return atlasID
}

// sentenceCase capitalises the first letter and lowercases the rest.
func sentenceCase(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return strings.ToUpper(trimmed[:1]) + strings.ToLower(trimmed[1:])
}

// formatPhone renders a 10-digit number as XXXX-XXX-XXX; anything else is
// returned untouched.
func formatPhone(phone string) string {
	if phone == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) == 10 {
		return d[:4] + "-" + d[4:7] + "-" + d[7:]
	}
	return phone
}

// creationDate is today in the dd-MMM-yyyy display format used everywhere in
// the roster.
func creationDate() string {
	return time.Now().Format("02-Jan-2006")
}
