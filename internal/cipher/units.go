// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import (
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// maxKeyValue bounds numeric keys so parsing never overflows.
const maxKeyValue = 1<<31 - 1

// toUnits splits s into UTF-16 code units, the indexing used by the widget.
// A lone surrogate written by fromUnits (a 3-byte ED A0..BF xx sequence) is
// read back as that same unit. Any other invalid byte becomes U+FFFD.
func toUnits(s string) []uint16 {
	units := make([]uint16, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if u, ok := decodeSurrogate(s[i:]); ok {
				units = append(units, u)
				i += 3
				continue
			}
		}
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units
}

// fromUnits reassembles code units into a string. Surrogate pairs become one
// rune. An unpaired surrogate is kept in its generalized UTF-8 (WTF-8) form so
// toUnits restores it exactly.
func fromUnits(units []uint16) string {
	buf := make([]byte, 0, len(units)*3)
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case isHighSurrogate(u) && i+1 < len(units) && isLowSurrogate(units[i+1]):
			buf = utf8.AppendRune(buf, utf16.DecodeRune(rune(u), rune(units[i+1])))
			i++
		case isHighSurrogate(u) || isLowSurrogate(u):
			buf = append(buf, 0xED, 0x80|byte(u>>6)&0x3F, 0x80|byte(u)&0x3F)
		default:
			buf = utf8.AppendRune(buf, rune(u))
		}
	}
	return string(buf)
}

// decodeSurrogate reads a 3-byte encoded surrogate (U+D800..U+DFFF) from the
// start of s.
func decodeSurrogate(s string) (uint16, bool) {
	if len(s) < 3 || s[0] != 0xED || s[1] < 0xA0 || s[1] > 0xBF || s[2] < 0x80 || s[2] > 0xBF {
		return 0, false
	}
	return 0xD000 | uint16(s[1]&0x3F)<<6 | uint16(s[2]&0x3F), true
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u < 0xDC00 }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u < 0xE000 }

// scanInt splits off the sign and the leading run of decimal digits the way
// JavaScript's parseInt does: leading whitespace is skipped and scanning stops
// at the first non-digit.
func scanInt(s string) (negative bool, digits string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return negative, s[:n]
}

// parseInt reads a leading, optionally signed, decimal integer saturated at
// maxKeyValue. ok is false when no digit was found.
func parseInt(s string) (n int, ok bool) {
	negative, digits := scanInt(s)
	if digits == "" {
		return 0, false
	}

	var value int64
	for i := 0; i < len(digits) && value < maxKeyValue; i++ {
		value = min(value*10+int64(digits[i]-'0'), maxKeyValue)
	}

	if negative {
		value = -value
	}
	return int(value), true
}

// parseShift reads the same integer as parseInt but keeps only its residue
// modulo 26, so keys of any length rotate by the exact amount.
func parseShift(s string) (shift int, ok bool) {
	negative, digits := scanInt(s)
	if digits == "" {
		return 0, false
	}

	for i := 0; i < len(digits); i++ {
		shift = (shift*10 + int(digits[i]-'0')) % 26
	}

	if negative {
		shift = mod26(-shift)
	}
	return shift, true
}

// numericKey parses key with parseInt and falls back to def.
func numericKey(key string, def int) int {
	if n, ok := parseInt(key); ok {
		return n
	}
	return def
}

// mod26 maps any integer onto [0, 26).
func mod26(n int) int {
	return ((n % 26) + 26) % 26
}

// rotate shifts an ASCII letter within its own alphabet; other units are
// returned unchanged. shift must already be in [0, 26).
func rotate(u uint16, shift int) uint16 {
	switch {
	case u >= 'A' && u <= 'Z':
		return 'A' + uint16((int(u-'A')+shift)%26)
	case u >= 'a' && u <= 'z':
		return 'a' + uint16((int(u-'a')+shift)%26)
	default:
		return u
	}
}

func isASCIILetter(u uint16) bool {
	return (u >= 'A' && u <= 'Z') || (u >= 'a' && u <= 'z')
}
