// Package asn1json renders a transform.ModuleTree as JSON, in support
// of the round-trip test property from spec.md §8 and for tests that
// want a readable dump of parser output.
package asn1json

import (
	"bytes"
	"encoding/json"

	"github.com/go-asn1/asn1spec/transform"
)

// Marshal renders tree as compact JSON using transform's struct tags.
func Marshal(tree transform.ModuleTree) ([]byte, error) {
	return json.Marshal(tree)
}

// MarshalIndent renders tree as indented JSON for readable dumps.
func MarshalIndent(tree transform.ModuleTree) ([]byte, error) {
	return json.MarshalIndent(tree, "", "  ")
}

// Equal reports whether a and b marshal to the same JSON value — the
// comparison spec.md §8's Property 1 (round-trip stability) exercises.
// encoding/json sorts map keys, so two structurally equal trees always
// marshal byte-for-byte identically.
func Equal(a, b transform.ModuleTree) (bool, error) {
	aj, err := Marshal(a)
	if err != nil {
		return false, err
	}
	bj, err := Marshal(b)
	if err != nil {
		return false, err
	}
	return bytes.Equal(aj, bj), nil
}
