package auth

import (
	"strconv"
	"unicode/utf16"
)

// ChecksumPassword computes the stored credential value for a password. It
// is the legacy rolling hash (h = h*31 + codeUnit over UTF-16 code units in
// signed 32-bit arithmetic, rendered base 10), kept because stored
// credentials compare by exact equality against it.
//
// This is a checksum, not a password hash. Production deployments should
// substitute a real password-hashing primitive and rehash stored values.
func ChecksumPassword(password string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(password)) {
		hash = (hash << 5) - hash + int32(unit)
	}
	return strconv.FormatInt(int64(hash), 10)
}
