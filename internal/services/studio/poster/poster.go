// Package poster draws the promotional game poster: a gradient backdrop,
// corner triangles, a center ring and the wrapped game title.
package poster

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"regexp"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Canvas size, 2:3.
const (
	Width  = 600
	Height = 900
)

const (
	titleSize      = 36
	comingSoonSize = 28
	platformSize   = 18
	lineHeight     = 40
	titleMargin    = 80
	cornerSize     = 150
	ringRadius     = 120
	ringWidth      = 2
	ringSegments   = 180

	comingSoonText = "COMING SOON"
	platformText   = "Available on PC, Console and Mobile"
)

var (
	gradientStart = color.NRGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff}
	gradientEnd   = color.NRGBA{R: 0x2d, G: 0x37, B: 0x48, A: 0xff}
	cornerColor   = color.NRGBA{R: 66, G: 153, B: 225, A: 26}
	ringColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	titleColor    = color.White
	comingColor   = color.NRGBA{R: 0xf5, G: 0x65, B: 0x65, A: 0xff}
	platformColor = color.NRGBA{R: 0xa0, G: 0xae, B: 0xc0, A: 0xff}
)

// ErrEmptyPrompt is returned when the title is blank.
var ErrEmptyPrompt = errors.New("prompt is empty")

var whitespaceRun = regexp.MustCompile(`\s+`)

type fonts struct {
	bold, italic, regular *opentype.Font
}

var loadFonts = sync.OnceValues(func() (fonts, error) {
	var (
		out fonts
		err error
	)
	if out.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return fonts{}, fmt.Errorf("parse bold font: %w", err)
	}
	if out.italic, err = opentype.Parse(goitalic.TTF); err != nil {
		return fonts{}, fmt.Errorf("parse italic font: %w", err)
	}
	if out.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return fonts{}, fmt.Errorf("parse regular font: %w", err)
	}
	return out, nil
})

// Render draws the poster for prompt.
func Render(ctx context.Context, prompt string) (*image.RGBA, error) {
	_, span := otel.Tracer("gameforge/poster").Start(ctx, "poster.Render")
	defer span.End()
	span.SetAttributes(attribute.Int("poster.prompt_length", len(prompt)))

	if strings.TrimSpace(prompt) == "" {
		span.RecordError(ErrEmptyPrompt)
		return nil, ErrEmptyPrompt
	}
	loaded, err := loadFonts()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	// Faces carry glyph caches and are not safe for concurrent use, so each
	// render builds its own.
	title, err := newFace(loaded.bold, titleSize)
	if err != nil {
		return nil, err
	}
	defer title.Close()
	coming, err := newFace(loaded.italic, comingSoonSize)
	if err != nil {
		return nil, err
	}
	defer coming.Close()
	platform, err := newFace(loaded.regular, platformSize)
	if err != nil {
		return nil, err
	}
	defer platform.Close()

	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	if err := fillGradient(ctx, img); err != nil {
		span.RecordError(err)
		return nil, err
	}
	drawDecorations(img)
	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	lines := WrapTitle(prompt, func(s string) float64 { return measure(title, s) }, Width-titleMargin)
	startY := float64(Height) / 3
	for i, line := range lines {
		drawCentered(img, title, titleColor, line, startY+float64(i*lineHeight))
	}
	drawCentered(img, coming, comingColor, comingSoonText, startY+float64(len(lines)*lineHeight)+lineHeight)
	drawCentered(img, platform, platformColor, platformText, Height-100)

	span.SetAttributes(attribute.Int("poster.lines", len(lines)))
	return img, nil
}

// WrapTitle splits prompt on single spaces and greedily fills lines no
// wider than maxWidth. Each word keeps its trailing space, and the first
// word never wraps even when it alone is too wide.
func WrapTitle(prompt string, measure func(string) float64, maxWidth float64) []string {
	words := strings.Split(prompt, " ")
	var lines []string
	line := ""
	for i, word := range words {
		test := line + word + " "
		if measure(test) > maxWidth && i > 0 {
			lines = append(lines, line)
			line = word + " "
			continue
		}
		line = test
	}
	return append(lines, line)
}

// Filename derives the download name from the first 15 characters of prompt.
func Filename(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > 15 {
		runes = runes[:15]
	}
	return "game-poster-" + whitespaceRun.ReplaceAllString(string(runes), "-") + ".png"
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return errors.New("poster image is nil")
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode poster png: %w", err)
	}
	return nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create %vpx face: %w", size, err)
	}
	return face, nil
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// fillGradient paints the diagonal gradient from (0,0) to (Width,Height),
// projecting each pixel center onto the gradient axis. It stops early when
// ctx ends.
func fillGradient(ctx context.Context, img *image.RGBA) error {
	const dx, dy = float64(Width), float64(Height)
	lengthSq := dx*dx + dy*dy
	for y := 0; y < Height; y++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for x := 0; x < Width; x++ {
			t := ((float64(x)+0.5)*dx + (float64(y)+0.5)*dy) / lengthSq
			img.Set(x, y, lerp(gradientStart, gradientEnd, math.Min(1, math.Max(0, t))))
		}
	}
	return nil
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p) + (float64(q)-float64(p))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 0xff}
}

func drawDecorations(img *image.RGBA) {
	corners := vector.NewRasterizer(Width, Height)
	corners.DrawOp = draw.Over
	corners.MoveTo(0, 0)
	corners.LineTo(cornerSize, 0)
	corners.LineTo(0, cornerSize)
	corners.ClosePath()
	corners.MoveTo(Width, Height)
	corners.LineTo(Width-cornerSize, Height)
	corners.LineTo(Width, Height-cornerSize)
	corners.ClosePath()
	corners.Draw(img, img.Bounds(), image.NewUniform(cornerColor), image.Point{})

	// The stroke is the area between two circles wound in opposite
	// directions so the inner one cancels out.
	ring := vector.NewRasterizer(Width, Height)
	ring.DrawOp = draw.Over
	cx, cy := float32(Width)/2, float32(Height)/2
	circlePath(ring, cx, cy, ringRadius+ringWidth/2, false)
	circlePath(ring, cx, cy, ringRadius-ringWidth/2, true)
	ring.Draw(img, img.Bounds(), image.NewUniform(ringColor), image.Point{})
}

func circlePath(z *vector.Rasterizer, cx, cy, r float32, reverse bool) {
	for i := 0; i <= ringSegments; i++ {
		step := i
		if reverse {
			step = ringSegments - i
		}
		angle := 2 * math.Pi * float64(step) / ringSegments
		x := cx + r*float32(math.Cos(angle))
		y := cy + r*float32(math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}

// drawCentered draws text with its horizontal center at Width/2 and its
// baseline at y.
func drawCentered(img *image.RGBA, face font.Face, c color.Color, text string, y float64) {
	width := measure(face, text)
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6((float64(Width)/2 - width/2) * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}
