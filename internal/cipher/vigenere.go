// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "strings"

// DefaultVigenereKey is used when no keyword is given.
const DefaultVigenereKey = "KEY"

// Vigenere shifts every ASCII letter of input by the matching letter of the
// upper-cased keyword. The key position advances on every input code unit,
// letters or not, so punctuation consumes key letters too.
func Vigenere(input, key string, decrypt bool) string {
	if key == "" {
		key = DefaultVigenereKey
	}
	keyUnits := toUnits(strings.ToUpper(key))

	units := toUnits(input)
	for i, u := range units {
		if !isASCIILetter(u) {
			continue
		}
		shift := mod26(int(keyUnits[i%len(keyUnits)]) - 'A')
		if decrypt {
			shift = mod26(26 - shift)
		}
		units[i] = rotate(u, shift)
	}
	return fromUnits(units)
}

func vigenereTransform(input, key string, decrypt bool) string {
	return Vigenere(input, key, decrypt)
}
