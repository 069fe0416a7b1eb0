// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "github.com/MKhiriev/go-cipher-lab/models"

// transformFunc is the shape every catalog transform implements.
type transformFunc func(input, key string, decrypt bool) string

type catalogEntry struct {
	info      models.MethodInfo
	transform transformFunc
}

// catalog lists the methods in menu order.
var catalog = []catalogEntry{
	{info: models.MethodInfo{ID: models.Caesar, Name: "Caesar Cipher", KeyClass: models.KeyNumeric, SecurityScore: 20}, transform: caesarTransform},
	{info: models.MethodInfo{ID: models.XOR, Name: "XOR Cipher", KeyClass: models.KeyText, SecurityScore: 40}, transform: xorTransform},
	{info: models.MethodInfo{ID: models.Base64, Name: "Base64 Encoding", KeyClass: models.KeyNone, SecurityScore: 30}, transform: base64Transform},
	{info: models.MethodInfo{ID: models.Binary, Name: "Binary Encoding", KeyClass: models.KeyNone, SecurityScore: 30}, transform: binaryTransform},
	{info: models.MethodInfo{ID: models.Hex, Name: "Hexadecimal", KeyClass: models.KeyNone, SecurityScore: 30}, transform: hexTransform},
	{info: models.MethodInfo{ID: models.Vigenere, Name: "Vigenère Cipher", KeyClass: models.KeyText, SecurityScore: 50}, transform: vigenereTransform},
	{info: models.MethodInfo{ID: models.RailFence, Name: "Rail Fence Cipher", KeyClass: models.KeyNumeric, SecurityScore: 40}, transform: railFenceTransform},
	{info: models.MethodInfo{ID: models.Playfair, Name: "Playfair Cipher", KeyClass: models.KeyText, SecurityScore: 60, Simulated: true}, transform: placeholder("Playfair")},
	{info: models.MethodInfo{ID: models.AES, Name: "AES-256", KeyClass: models.KeyText, SecurityScore: 100, Simulated: true}, transform: placeholder("AES-256")},
	{info: models.MethodInfo{ID: models.RSA, Name: "RSA", KeyClass: models.KeyPair, SecurityScore: 100, Simulated: true}, transform: placeholder("RSA")},
}

var catalogIndex = func() map[models.Method]catalogEntry {
	idx := make(map[models.Method]catalogEntry, len(catalog))
	for _, e := range catalog {
		idx[e.info.ID] = e
	}
	return idx
}()

// Methods returns the catalog in menu order. The slice is a copy and may be
// modified by the caller.
func Methods() []models.MethodInfo {
	out := make([]models.MethodInfo, len(catalog))
	for i, e := range catalog {
		out[i] = e.info
	}
	return out
}

// Lookup returns the catalog entry for method.
func Lookup(method models.Method) (models.MethodInfo, bool) {
	e, ok := catalogIndex[method]
	return e.info, ok
}

// IsKnown reports whether method is in the catalog.
func IsKnown(method models.Method) bool {
	_, ok := catalogIndex[method]
	return ok
}

// DisplayName returns the human-readable name of method, or the raw
// identifier when the method is unknown.
func DisplayName(method models.Method) string {
	if e, ok := catalogIndex[method]; ok {
		return e.info.Name
	}
	return string(method)
}
