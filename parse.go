// Package asn1 is the public entry point: it lexes, parses and
// reduces one or more ASN.1 module definitions into a ModuleTree, per
// spec.md §6.
package asn1

import (
	"os"

	"github.com/pkg/errors"

	"github.com/go-asn1/asn1spec/asn1err"
	"github.com/go-asn1/asn1spec/grammar"
	"github.com/go-asn1/asn1spec/transform"
)

// ModuleTree is the reduced result of a successful parse: one entry
// per ModuleDefinition found in the source, keyed by module name.
type ModuleTree = transform.ModuleTree

// ParseString parses source, which may contain one or more
// concatenated ModuleDefinitions, and reduces them into a ModuleTree.
// It returns a *asn1err.SyntaxError if the grammar rejects the input,
// or a *asn1err.InternalError if the transformer and the grammar
// disagree about a parse node's shape.
func ParseString(source string, opts ...Option) (ModuleTree, error) {
	cfg := newConfig()
	for _, o := range opts {
		o(cfg)
	}
	if cfg.encoding != "utf-8" {
		return nil, &asn1err.InternalError{Message: "unsupported encoding " + cfg.encoding}
	}

	root, err := grammar.New().Parse(source)
	if err != nil {
		return nil, err
	}
	return transform.Transform(root, cfg.reporter)
}

// ParseFiles reads and concatenates paths in order, then parses the
// result as ParseString would. A read failure is wrapped with the
// offending path for context.
func ParseFiles(paths []string, opts ...Option) (ModuleTree, error) {
	var source string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", p)
		}
		source += string(data) + "\n"
	}
	return ParseString(source, opts...)
}
