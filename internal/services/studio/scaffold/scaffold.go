// Package scaffold produces starter game code from a one-line description.
// The description is only echoed into the header comment; the body is a
// fixed template per kind.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Filename is the download name of every scaffold.
const Filename = "game-code.js"

// Kind selects the template.
type Kind string

const (
	Kind2D Kind = "2d"
	Kind3D Kind = "3d"
)

// ErrEmptyPrompt is returned when the description is blank.
var ErrEmptyPrompt = errors.New("prompt is empty")

// Scaffold is generated starter code.
type Scaffold struct {
	Kind     Kind
	Prompt   string
	Code     string
	Filename string
}

// ParseKind accepts "2d" or "3d" in any case.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case Kind2D:
		return Kind2D, nil
	case Kind3D:
		return Kind3D, nil
	default:
		return "", fmt.Errorf("unknown scaffold kind %q", value)
	}
}

// Generate builds the scaffold for kind. Whitespace runs in prompt collapse
// to single spaces so the header stays a one-line comment.
func Generate(kind Kind, prompt string) (Scaffold, error) {
	prompt = strings.Join(strings.Fields(prompt), " ")
	if prompt == "" {
		return Scaffold{}, ErrEmptyPrompt
	}
	var header, body string
	switch kind {
	case Kind2D:
		header, body = "// 2D Game based on: ", body2D
	case Kind3D:
		header, body = "// 3D Game based on: ", body3D
	default:
		return Scaffold{}, fmt.Errorf("unknown scaffold kind %q", kind)
	}
	return Scaffold{
		Kind:     kind,
		Prompt:   prompt,
		Code:     header + prompt + "\n" + body,
		Filename: Filename,
	}, nil
}

// GenerateContext is Generate wrapped in a trace span.
func GenerateContext(ctx context.Context, kind Kind, prompt string) (Scaffold, error) {
	_, span := otel.Tracer("gameforge/scaffold").Start(ctx, "scaffold.Generate")
	defer span.End()
	span.SetAttributes(attribute.String("scaffold.kind", string(kind)))

	out, err := Generate(kind, prompt)
	if err != nil {
		span.RecordError(err)
		return Scaffold{}, err
	}
	span.SetAttributes(attribute.Int("scaffold.bytes", len(out.Code)))
	return out, nil
}
