package asn1

import "github.com/go-asn1/asn1spec/diag"

// config is the unexported knob bag Option funcs build up, in the
// functional-options shape.
type config struct {
	reporter diag.Reporter
	encoding string
}

func newConfig() *config {
	return &config{reporter: diag.NopReporter{}, encoding: "utf-8"}
}

// Option configures a ParseString/ParseFiles call.
type Option func(*config)

// WithReporter directs semantic warnings raised during transformation
// to r instead of discarding them.
func WithReporter(r diag.Reporter) Option {
	return func(c *config) { c.reporter = r }
}

// WithEncoding names the source encoding. Only "utf-8" (the default)
// is implemented; anything else fails with an asn1err.InternalError
// naming the unsupported encoding.
func WithEncoding(name string) Option {
	return func(c *config) { c.encoding = name }
}
