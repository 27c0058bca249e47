// Package rut validates and formats Chilean RUT identifiers
// (numeric body plus a mod-11 check character, digit or 'K').
package rut

import (
	"regexp"
	"strconv"
	"strings"
)

// rutPattern matches the basic RUT shape after dots are stripped or kept
// (e.g. "12.345.678-9" or "12345678-9").
var rutPattern = regexp.MustCompile(`^\d{1,2}\.?\d{3}\.?\d{3}-[0-9kK]$`)

// nonRutChars strips everything that is not a digit or the check letter K.
var nonRutChars = regexp.MustCompile(`[^0-9K]`)

// Valid reports whether s is a well-formed RUT with a correct check
// character. Accepts input with or without dots and with or without the
// dash before the check character.
func Valid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}

	clean := strings.ToUpper(strings.TrimSpace(s))
	clean = strings.ReplaceAll(clean, ".", "")

	// No dash: assume the last character is the check char and insert one.
	if !strings.Contains(clean, "-") {
		if len(clean) <= 1 {
			return false
		}
		clean = clean[:len(clean)-1] + "-" + clean[len(clean)-1:]
	}

	if !rutPattern.MatchString(clean) {
		return false
	}

	dash := strings.LastIndex(clean, "-")
	body, err := strconv.Atoi(clean[:dash])
	if err != nil || body < 0 {
		return false
	}
	check := clean[dash+1]

	return checkChar(body) == check
}

// checkChar computes the expected check character for a RUT body. This is
// the usual arithmetic shortcut of the mod-11 scheme: with s seeded to 1,
// a final s of 0 maps to 'K' and any other value to the digit s-1.
func checkChar(body int) byte {
	s, m := 1, 0
	for ; body != 0; body /= 10 {
		s = (s + body%10*(9-m%6)) % 11
		m++
	}
	if s != 0 {
		return byte(s + 47) // '0'..'9'
	}
	return 'K'
}

// Format renders a RUT in the canonical display form "12.345.678-9".
// It does not validate; input too short to split into body and check
// character is returned unchanged.
func Format(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	clean := strings.ToUpper(strings.TrimSpace(s))
	clean = strings.ReplaceAll(clean, ".", "")

	var body, check string
	if dash := strings.LastIndex(clean, "-"); dash != -1 {
		body = clean[:dash]
		check = clean[dash+1:]
	} else {
		if len(clean) < 2 {
			return s
		}
		body = clean[:len(clean)-1]
		check = clean[len(clean)-1:]
	}

	var b strings.Builder
	for i, r := range body {
		rem := len(body) - i
		if i > 0 && rem%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String() + "-" + check
}

// Clean strips dots and stray dashes, returning the normalized
// "12345678-9" form (uppercased, single dash before the check character).
// Clean is idempotent; empty input yields an empty string.
func Clean(s string) string {
	if s == "" {
		return ""
	}
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	cleaned = strings.ReplaceAll(cleaned, ".", "")

	if len(cleaned) > 1 {
		// Dash already in place before the check character: keep as-is.
		if strings.LastIndex(cleaned, "-") == len(cleaned)-2 {
			return cleaned
		}
		numPart := nonRutChars.ReplaceAllString(cleaned, "")
		if len(numPart) > 1 {
			return numPart[:len(numPart)-1] + "-" + numPart[len(numPart)-1:]
		}
		return numPart
	}
	return strings.ReplaceAll(cleaned, "-", "")
}
