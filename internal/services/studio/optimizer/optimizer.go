// Package optimizer applies a fixed set of textual rewrites to browser game
// code. The rewrites are pattern substitutions, not program analysis.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Mode selects the rule set.
type Mode string

const (
	Mode2D Mode = "2d"
	Mode3D Mode = "3d"
)

// Rule identifiers reported in Result.Notes.
const (
	NoteConsoleRemoved   = "console_log_removed"
	NoteAnimationFrame   = "request_animation_frame"
	NoteLetDeclarations  = "var_to_let"
	NoteConstDeclaration = "var_to_const"
	NoteImageReuse       = "image_reuse_hint"
	NoteErrorHandling    = "error_handling_added"
	NoteThreeReuse       = "three_reuse_hint"
)

// ErrEmptyInput is returned for blank code; callers treat it as a no-op.
var ErrEmptyInput = errors.New("code is empty")

var (
	consoleLogPattern  = regexp.MustCompile(`console\.log\(.*\);?`)
	setIntervalPattern = regexp.MustCompile(`setInterval\(draw, \d+\);`)
	varPattern         = regexp.MustCompile(`var\s+`)
)

// Result is the rewritten code and the rules that changed it, in order.
type Result struct {
	Code  string
	Notes []string
}

// Changed reports whether any rule fired.
func (r Result) Changed() bool {
	return len(r.Notes) > 0
}

// ParseMode accepts "2d" or "3d" in any case.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case Mode2D:
		return Mode2D, nil
	case Mode3D:
		return Mode3D, nil
	default:
		return "", fmt.Errorf("unknown optimizer mode %q", value)
	}
}

// Run dispatches to the rule set for mode inside a trace span.
func Run(ctx context.Context, mode Mode, code string) (Result, error) {
	_, span := otel.Tracer("gameforge/optimizer").Start(ctx, "optimizer.Run")
	defer span.End()
	span.SetAttributes(attribute.String("optimizer.mode", string(mode)), attribute.Int("optimizer.input_bytes", len(code)))

	var (
		result Result
		err    error
	)
	switch mode {
	case Mode2D:
		result, err = Optimize2D(code)
	case Mode3D:
		result, err = Optimize3D(code)
	default:
		err = fmt.Errorf("unknown optimizer mode %q", mode)
	}
	if err != nil {
		span.RecordError(err)
		return Result{}, err
	}
	span.SetAttributes(attribute.StringSlice("optimizer.notes", result.Notes))
	return result, nil
}

// Optimize2D applies the p5.js rules.
func Optimize2D(code string) (Result, error) {
	if strings.TrimSpace(code) == "" {
		return Result{}, ErrEmptyInput
	}
	r := rewriter{code: code}
	r.replaceAll(consoleLogPattern, "", NoteConsoleRemoved)
	if strings.Contains(r.code, "setInterval(") && strings.Contains(r.code, "draw") {
		if loc := setIntervalPattern.FindStringIndex(r.code); loc != nil {
			r.code = r.code[:loc[0]] + "// Using requestAnimationFrame for smoother animation\n    requestAnimationFrame(draw);" + r.code[loc[1]:]
			r.note(NoteAnimationFrame)
		}
	}
	r.replaceAll(varPattern, "let ", NoteLetDeclarations)
	if strings.Contains(r.code, "createImage(") {
		r.code += "\n\n// Consider reusing image objects instead of creating them in the draw loop"
		r.note(NoteImageReuse)
	}
	if !strings.Contains(r.code, "try {") {
		r.code = "// Added error handling for better debugging\ntry {\n" + r.code + "\n} catch (e) {\n    console.error(\"Game error:\", e);\n}"
		r.note(NoteErrorHandling)
	}
	return r.result(), nil
}

// Optimize3D applies the Three.js rules.
func Optimize3D(code string) (Result, error) {
	if strings.TrimSpace(code) == "" {
		return Result{}, ErrEmptyInput
	}
	r := rewriter{code: code}
	r.replaceAll(consoleLogPattern, "", NoteConsoleRemoved)
	r.replaceAll(varPattern, "const ", NoteConstDeclaration)
	if !strings.Contains(r.code, "try {") {
		r.code = "// Added error handling\ntry {\n" + r.code + "\n} catch (e) {\n    console.error(\"3D Game error:\", e);\n}"
		r.note(NoteErrorHandling)
	}
	if strings.Contains(r.code, "new THREE") {
		r.code += "\n\n// Reuse Three.js objects to optimize memory"
		r.note(NoteThreeReuse)
	}
	return r.result(), nil
}

type rewriter struct {
	code  string
	notes []string
}

func (r *rewriter) replaceAll(pattern *regexp.Regexp, replacement, note string) {
	if !pattern.MatchString(r.code) {
		return
	}
	r.code = pattern.ReplaceAllLiteralString(r.code, replacement)
	r.note(note)
}

func (r *rewriter) note(name string) {
	r.notes = append(r.notes, name)
}

func (r *rewriter) result() Result {
	return Result{Code: r.code, Notes: r.notes}
}
