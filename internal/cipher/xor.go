// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

// DefaultXORKey is used when no key is given.
const DefaultXORKey = "default"

// XOR combines every UTF-16 code unit of input with the repeating key.
// The operation is its own inverse.
func XOR(input, key string) string {
	if key == "" {
		key = DefaultXORKey
	}
	keyUnits := toUnits(key)

	units := toUnits(input)
	for i := range units {
		units[i] ^= keyUnits[i%len(keyUnits)]
	}
	return fromUnits(units)
}

// mode only changes the history label
func xorTransform(input, key string, _ bool) string {
	return XOR(input, key)
}
