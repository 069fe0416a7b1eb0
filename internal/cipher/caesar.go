// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

// DefaultCaesarShift is used when the key is absent or not a number.
const DefaultCaesarShift = 3

// Caesar rotates every ASCII letter of input by shift positions within its
// own case alphabet. Decryption rotates by -shift, so the two directions are
// exact inverses for any integer shift.
func Caesar(input string, shift int, decrypt bool) string {
	s := mod26(shift)
	if decrypt {
		s = mod26(-shift)
	}

	units := toUnits(input)
	for i, u := range units {
		units[i] = rotate(u, s)
	}
	return fromUnits(units)
}

func caesarTransform(input, key string, decrypt bool) string {
	shift, ok := parseShift(key)
	if !ok {
		shift = DefaultCaesarShift
	}
	return Caesar(input, shift, decrypt)
}
