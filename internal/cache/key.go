package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// KeyParams identifies a cacheable request.
type KeyParams struct {
	// Operation names the analysis, e.g. "compare".
	Operation string `json:"operation"`

	// Catalog identifies the data the answer was computed from. Use a
	// content digest so edits in place change the key.
	Catalog string `json:"catalog"`

	// Defaults are the resolved values substituted for unset request
	// fields. Changing them must change the key.
	Defaults any `json:"defaults,omitempty"`

	// Request is the operation's input. It must marshal to JSON; map keys
	// are emitted sorted, so equal requests produce equal keys.
	Request any `json:"request"`
}

// GenerateKey returns the hex SHA-256 of the normalized parameters.
func GenerateKey(params KeyParams) (string, error) {
	normalized := KeyParams{
		Operation: strings.ToLower(strings.TrimSpace(params.Operation)),
		Catalog:   strings.TrimSpace(params.Catalog),
		Request:   params.Request,
		Defaults:  params.Defaults,
	}
	if normalized.Operation == "" {
		return "", ErrInvalidCacheKey
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("encoding cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
