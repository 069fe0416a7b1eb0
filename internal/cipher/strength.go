// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "github.com/MKhiriev/go-cipher-lab/models"

// MaxStrength is the ceiling of the heuristic.
const MaxStrength = 100

// Strength rates text for display next to the tool output. It is a
// presentation heuristic, not a measure of security:
//
//	+20 length > 8, +20 more for length > 16 (UTF-16 code units)
//	+10 each for an uppercase letter, a lowercase letter, a digit and
//	    any other character
//	+ the method's nominal security score (0 for unknown methods)
//
// The sum is capped at MaxStrength. Empty text scores 0.
func Strength(text string, method models.Method) int {
	if text == "" {
		return 0
	}

	units := toUnits(text)
	score := 0
	if len(units) > 8 {
		score += 20
	}
	if len(units) > 16 {
		score += 20
	}

	var upper, lower, digit, other bool
	for _, u := range units {
		switch {
		case u >= 'A' && u <= 'Z':
			upper = true
		case u >= 'a' && u <= 'z':
			lower = true
		case u >= '0' && u <= '9':
			digit = true
		default:
			other = true
		}
	}
	for _, present := range []bool{upper, lower, digit, other} {
		if present {
			score += 10
		}
	}

	if e, ok := catalogIndex[method]; ok {
		score += e.info.SecurityScore
	}

	return min(score, MaxStrength)
}
