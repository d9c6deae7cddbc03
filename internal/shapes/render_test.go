package shapes

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
)

func TestRender_KnownFigures(t *testing.T) {
	r := NewRenderer()

	cases := []string{
		"How many sides does a triangle have?",
		"Which shape is perfectly round and has no corners?",
		"How many corners does a RECTANGLE have?",
		"If you rotate a square by 90 degrees, what do you see?",
		"Draw a circle inside a box.",
	}
	for _, text := range cases {
		data, ok := r.Render(text)
		if !ok {
			t.Errorf("Render(%q) found no figure", text)
			continue
		}
		if !strings.HasPrefix(data, "data:image/png;base64,") {
			t.Errorf("Render(%q) did not return a data URI", text)
			continue
		}

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, "data:image/png;base64,"))
		if err != nil {
			t.Errorf("Render(%q): invalid base64: %v", text, err)
			continue
		}
		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Errorf("Render(%q): invalid PNG: %v", text, err)
			continue
		}
		if img.Bounds().Dx() != canvasSize || img.Bounds().Dy() != canvasSize {
			t.Errorf("Render(%q): unexpected bounds %v", text, img.Bounds())
		}
	}
}

func TestRender_NoFigure(t *testing.T) {
	r := NewRenderer()

	if _, ok := r.Render("How many faces does a cube have?"); ok {
		t.Error("cube is not drawable and should not render")
	}
	if _, ok := r.Render(""); ok {
		t.Error("empty text should not render")
	}
}

func TestRender_RectangleBeatsShorterKeywords(t *testing.T) {
	r := NewRenderer()

	a, _ := r.Render("How many corners does a rectangle have?")
	b, _ := r.Render("How many sides does a square have?")
	if a == b {
		t.Error("rectangle and square rendered identically")
	}
}
