// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "fmt"

// Placeholder returns the fixed output of a simulated method, for example
// "[AES-256 Encryption simulation]".
func Placeholder(name string, decrypt bool) string {
	direction := "Encryption"
	if decrypt {
		direction = "Decryption"
	}
	return fmt.Sprintf("[%s %s simulation]", name, direction)
}

func placeholder(name string) transformFunc {
	return func(_, _ string, decrypt bool) string {
		return Placeholder(name, decrypt)
	}
}
