package gstin

import (
	"regexp"
	"strings"
)

// A GSTIN is 15 characters: a 2-digit state code (01-37), a 10-character
// PAN block (5 letters, 4 digits, 1 letter), 1 alphanumeric entity code,
// the fixed literal 'Z', and 1 checksum character.
var structure = regexp.MustCompile(`^(0[1-9]|[1-2][0-9]|3[0-7])[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// Verify reports whether the identifier is a structurally valid GSTIN whose
// checksum character matches. Case-insensitive. Malformed input is simply
// false; structurally invalid and checksum-mismatched identifiers are
// indistinguishable here.
func Verify(identifier string) bool {
	if len(identifier) != 15 {
		return false
	}

	identifier = strings.ToUpper(identifier)
	if !structure.MatchString(identifier) {
		return false
	}

	return checksumChar(identifier[:14]) == identifier[14]
}

// checksumChar derives the mod-36 check character over the first 14
// characters: each character's base-36 code is weighted 1 at even positions
// and 2 at odd ones, and the quotient plus remainder of product/36 is
// accumulated.
func checksumChar(s string) byte {
	total := 0
	for i := 0; i < len(s); i++ {
		code := charCode(s[i])
		multiplier := 1
		if i%2 == 1 {
			multiplier = 2
		}
		product := code * multiplier
		total += product/36 + product%36
	}

	y := (36 - total%36) % 36
	return codeChar(y)
}

// charCode maps '0'-'9' to 0-9 and 'A'-'Z' to 10-35.
func charCode(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return int(c-'A') + 10
}

// codeChar is the inverse of charCode.
func codeChar(code int) byte {
	if code < 10 {
		return byte('0' + code)
	}
	return byte('A' + code - 10)
}
