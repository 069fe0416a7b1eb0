// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

// DefaultRails is used when the key is absent or not a number.
const DefaultRails = 3

// RailFence writes input along a zigzag of rails and reads the rails top to
// bottom; decryption replays the same zigzag over positions to put every
// code unit back. Fewer than two rails, or fewer than two units, leave the
// text unchanged. Surrogate pairs may be split across rails.
func RailFence(input string, rails int, decrypt bool) string {
	text := toUnits(input)
	if rails <= 1 || len(text) < 2 {
		return input
	}
	// more rails than units never bounce
	rails = min(rails, len(text))

	pattern := zigzag(len(text), rails)
	if !decrypt {
		fence := make([][]uint16, rails)
		for i, u := range text {
			fence[pattern[i]] = append(fence[pattern[i]], u)
		}

		out := make([]uint16, 0, len(text))
		for _, rail := range fence {
			out = append(out, rail...)
		}
		return fromUnits(out)
	}

	next := make([]int, rails)
	for _, rail := range pattern {
		next[rail]++
	}
	offset := 0
	for rail, count := range next {
		next[rail] = offset
		offset += count
	}

	out := make([]uint16, len(text))
	for i, rail := range pattern {
		out[i] = text[next[rail]]
		next[rail]++
	}
	return fromUnits(out)
}

// zigzag returns the rail index of every position. The direction flips when
// the rail index reaches either boundary.
func zigzag(n, rails int) []int {
	pattern := make([]int, n)
	rail, dir := 0, 1
	for i := range pattern {
		pattern[i] = rail
		if rail == 0 {
			dir = 1
		} else if rail == rails-1 {
			dir = -1
		}
		rail += dir
	}
	return pattern
}

func railFenceTransform(input, key string, decrypt bool) string {
	return RailFence(input, numericKey(key, DefaultRails), decrypt)
}
