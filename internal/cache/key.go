// Citescape - Country-Parameterized City Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/citescape

package cache

import (
	"crypto/sha256"
	"fmt"

	"github.com/goccy/go-json"
)

// GenerateKey builds a compact key from a namespace and the JSON form of
// params. Map keys are sorted by the encoder, so equal maps give equal keys.
func GenerateKey(namespace string, params interface{}) (string, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", namespace, err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16]), nil
}
