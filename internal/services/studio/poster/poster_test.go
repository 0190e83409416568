package poster

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"image/png"
	"slices"
	"testing"
)

func TestRenderDrawsPoster(t *testing.T) {
	t.Parallel()

	img, err := Render(context.Background(), "Galactic Pizza Delivery Simulator Deluxe Edition")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds().Dx(); got != Width {
		t.Fatalf("width = %d, want %d", got, Width)
	}
	if got := img.Bounds().Dy(); got != Height {
		t.Fatalf("height = %d, want %d", got, Height)
	}

	// Top-left corner sits inside the translucent triangle over the
	// gradient start, so it is slightly bluer than the bare gradient.
	corner := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if corner.B <= gradientStart.B {
		t.Fatalf("corner pixel %v not tinted", corner)
	}

	// A pixel outside every decoration follows the gradient, darker at
	// the top than at the bottom.
	top := color.RGBAModel.Convert(img.At(Width-5, 50)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(5, Height-5)).(color.RGBA)
	if top.R >= bottom.R {
		t.Fatalf("gradient not increasing: top %v bottom %v", top, bottom)
	}

	// Some title pixel near the first baseline is white.
	found := false
	for x := 40; x < Width-40 && !found; x++ {
		for y := Height/3 - 30; y < Height/3; y++ {
			if c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); c.R > 240 && c.G > 240 && c.B > 240 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("expected title text near the first baseline")
	}
}

func TestRenderRejectsBlankPrompt(t *testing.T) {
	t.Parallel()

	if _, err := Render(context.Background(), "   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("Render() error = %v, want ErrEmptyPrompt", err)
	}
}

func TestRenderStopsWhenContextEnds(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	img, err := Render(ctx, "Neon Drift")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want context.Canceled", err)
	}
	if img != nil {
		t.Fatal("Render() returned an image after cancellation")
	}
}

func TestWrapTitle(t *testing.T) {
	t.Parallel()

	// One unit per character keeps the arithmetic obvious.
	measure := func(s string) float64 { return float64(len(s)) }
	tests := []struct {
		name     string
		prompt   string
		maxWidth float64
		want     []string
	}{
		{name: "fits", prompt: "tiny game", maxWidth: 20, want: []string{"tiny game "}},
		{name: "wraps", prompt: "aaa bbb ccc", maxWidth: 8, want: []string{"aaa bbb ", "ccc "}},
		{name: "long first word stays", prompt: "abcdefghij k", maxWidth: 5, want: []string{"abcdefghij ", "k "}},
		{name: "every word wraps", prompt: "aaaa bbbb cccc", maxWidth: 5, want: []string{"aaaa ", "bbbb ", "cccc "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapTitle(tt.prompt, measure, tt.maxWidth); !slices.Equal(got, tt.want) {
				t.Fatalf("WrapTitle(%q) = %q, want %q", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Space Race":                  "game-poster-Space-Race.png",
		"A very long game title here": "game-poster-A-very-long-gam.png",
		"two  spaces":                 "game-poster-two-spaces.png",
		"宇宙 レース":                      "game-poster-宇宙-レース.png",
	}
	for prompt, want := range tests {
		if got := Filename(prompt); got != want {
			t.Fatalf("Filename(%q) = %q, want %q", prompt, got, want)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	img, err := Render(context.Background(), "Encode me")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
	if err := EncodePNG(&buf, nil); err == nil {
		t.Fatal("expected nil image error")
	}
}
