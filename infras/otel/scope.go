package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Scope wraps a span for the common pattern of opening one at the top of a
// method and deferring End and TraceIfError on the named error return.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{span: span}
}

func (s *scopeImpl) End() {
	s.span.End()
}

// TraceError records err on the span and flips its status to Error.
func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// TraceIfError is TraceError guarded for deferred use with a named return.
func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetAttribute maps the value onto the closest typed otel attribute,
// stringifying anything without a direct representation.
func (s *scopeImpl) SetAttribute(key string, value any) {
	switch val := value.(type) {
	case bool:
		s.span.SetAttributes(attribute.Bool(key, val))
	case string:
		s.span.SetAttributes(attribute.String(key, val))
	case int:
		s.span.SetAttributes(attribute.Int(key, val))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, val))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, val))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, val))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", val)))
	}
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
