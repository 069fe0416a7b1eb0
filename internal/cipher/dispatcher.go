// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "github.com/MKhiriev/go-cipher-lab/models"

// Transform runs method over input in the given mode. key is optional; each
// method documents its default. An unknown method returns input unchanged.
func Transform(method models.Method, mode models.Mode, input, key string) string {
	e, ok := catalogIndex[method]
	if !ok {
		return input
	}
	return e.transform(input, key, mode.IsDecrypt())
}

// Run executes req and scores the output.
func Run(req models.TransformRequest) models.TransformResult {
	output := Transform(req.Method, req.Mode, req.Input, req.Key)
	return models.TransformResult{
		Output:   output,
		Strength: Strength(output, req.Method),
	}
}
