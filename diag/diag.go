// Package diag provides the pluggable reporter that the transformer
// uses to surface semantic-local warnings without aborting a parse.
package diag

import (
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/go-asn1/asn1spec/asn1err"
)

// Reporter receives warnings as the transformer walks the parse
// tree. Implementations must not block; the transformer calls Warn
// synchronously from the walk.
type Reporter interface {
	Warn(w *asn1err.SemanticWarning)
}

// NopReporter discards every warning. It is the default used when a
// caller does not supply one, matching the "no persisted state, no
// side channel unless asked" posture of the public API.
type NopReporter struct{}

func (NopReporter) Warn(*asn1err.SemanticWarning) {}

// CollectingReporter accumulates warnings into a *multierror.Error so
// a caller can inspect them individually or treat the batch as a
// single error.
type CollectingReporter struct {
	errs *multierror.Error
}

// NewCollectingReporter returns a Reporter that appends every warning
// to an internal *multierror.Error.
func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{}
}

func (r *CollectingReporter) Warn(w *asn1err.SemanticWarning) {
	r.errs = multierror.Append(r.errs, w)
}

// Warnings returns the collected warnings in the order they were
// reported. It returns nil if none were reported.
func (r *CollectingReporter) Warnings() []*asn1err.SemanticWarning {
	if r.errs == nil {
		return nil
	}
	out := make([]*asn1err.SemanticWarning, 0, len(r.errs.Errors))
	for _, e := range r.errs.Errors {
		if w, ok := e.(*asn1err.SemanticWarning); ok {
			out = append(out, w)
		}
	}
	return out
}

// Err returns the accumulated warnings as a single error, or nil if
// none were reported.
func (r *CollectingReporter) Err() error {
	if r.errs == nil {
		return nil
	}
	return r.errs.ErrorOrNil()
}

// LogrusReporter logs every warning through a *logrus.Logger at Warn
// level, with module/assignment/line as structured fields.
type LogrusReporter struct {
	log *logrus.Logger
}

// NewLogrusReporter returns a Reporter backed by the given logger.
func NewLogrusReporter(log *logrus.Logger) *LogrusReporter {
	return &LogrusReporter{log: log}
}

func (r *LogrusReporter) Warn(w *asn1err.SemanticWarning) {
	r.log.WithFields(logrus.Fields{
		"module":     w.Module,
		"assignment": w.Assignment,
		"line":       w.Line,
	}).Warn(w.Message)
}
