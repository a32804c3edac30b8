package validate

import (
	"regexp"
	"strings"
)

var (
	isbnPrefixPattern = regexp.MustCompile(`^ISBN(?:-1[03])?:? `)
	serialPattern     = regexp.MustCompile(`^PC-\d{2}[A-Z]{2}\d[A-Z]$`)
	idPattern         = regexp.MustCompile(`^[\dA-Fa-f]{8}-[\dA-Fa-f]{4}-[\dA-Fa-f]{4}-[\dA-Fa-f]{4}-[\dA-Fa-f]{12}$`)
)

// ISBN reports whether s is a valid ISBN-10 or ISBN-13, including the check
// digit. Hyphens, spaces and an optional "ISBN"/"ISBN-10:"/"ISBN-13:" prefix
// are allowed.
func ISBN(s string) bool {
	s = isbnPrefixPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("-", "", " ", "").Replace(s)

	switch len(s) {
	case 10:
		return isbn10(s)
	case 13:
		return isbn13(s)
	}
	return false
}

// isbn10 checks the weighted-sum checksum: weights 10..2 over the first nine
// digits, modulo 11, remainder 11 maps to '0' and 10 to 'X'.
func isbn10(s string) bool {
	sum := 0
	for i := 0; i < 9; i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return false
		}
		sum += (10 - i) * int(d-'0')
	}

	var want byte
	switch check := 11 - sum%11; check {
	case 11:
		want = '0'
	case 10:
		want = 'X'
	default:
		want = byte('0' + check)
	}

	last := s[9]
	if last == 'x' {
		last = 'X'
	}
	return last == want
}

// isbn13 checks the alternating 1/3-weighted checksum over the first twelve
// digits, modulo 10, remainder 10 maps to '0'.
func isbn13(s string) bool {
	if !strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979") {
		return false
	}

	sum := 0
	for i := 0; i < 12; i++ {
		d := s[i]
		if d < '0' || d > '9' {
			return false
		}
		weight := 1
		if i%2 == 1 {
			weight = 3
		}
		sum += weight * int(d-'0')
	}

	check := 10 - sum%10
	if check == 10 {
		check = 0
	}
	return s[12] >= '0' && s[12] <= '9' && int(s[12]-'0') == check
}

// SerialNumber reports whether s matches the serial-number format PC-<2
// digits><2 uppercase letters><digit><uppercase letter>.
func SerialNumber(s string) bool {
	return serialPattern.MatchString(s)
}

// ID reports whether s is a canonical UUID in its textual 8-4-4-4-12 form.
func ID(s string) bool {
	return idPattern.MatchString(s)
}
