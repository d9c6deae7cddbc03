// Package shapes renders small inline illustrations for shape questions.
// Rendering is best effort: when the question text does not name a
// figure the renderer can draw, the question simply ships without an
// image.
package shapes

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
)

// canvasSize is the width and height of the rendered image in pixels.
const canvasSize = 120

// margin keeps the figure away from the canvas edge.
const margin = 14

var (
	background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ink        = color.RGBA{R: 30, G: 64, B: 110, A: 255}
)

// figures lists the drawable figures in detection order. More specific
// names come first so "rectangle" is not matched by a shorter keyword.
var figures = []struct {
	keyword string
	draw    func(*image.RGBA)
}{
	{"rectangle", drawRectangle},
	{"triangle", drawTriangle},
	{"square", drawSquare},
	{"circle", drawCircle},
	{"round", drawCircle},
}

// Renderer draws PNG illustrations for shape questions.
type Renderer struct{}

// NewRenderer returns a ready Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render scans the question text for a drawable figure and returns it
// as a base64 data URI. ok is false when no known figure is named or
// encoding fails.
func (r *Renderer) Render(questionText string) (string, bool) {
	text := strings.ToLower(questionText)

	for _, f := range figures {
		if !strings.Contains(text, f.keyword) {
			continue
		}

		img := image.NewRGBA(image.Rect(0, 0, canvasSize, canvasSize))
		fill(img, img.Bounds(), background)
		f.draw(img)

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return "", false
		}
		return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), true
	}
	return "", false
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawSquare(img *image.RGBA) {
	fill(img, image.Rect(margin, margin, canvasSize-margin, canvasSize-margin), ink)
}

func drawRectangle(img *image.RGBA) {
	top := canvasSize/2 - (canvasSize-2*margin)/4
	bottom := canvasSize/2 + (canvasSize-2*margin)/4
	fill(img, image.Rect(margin, top, canvasSize-margin, bottom), ink)
}

func drawCircle(img *image.RGBA) {
	center := canvasSize / 2
	radius := canvasSize/2 - margin
	for y := 0; y < canvasSize; y++ {
		for x := 0; x < canvasSize; x++ {
			dx, dy := x-center, y-center
			if dx*dx+dy*dy <= radius*radius {
				img.SetRGBA(x, y, ink)
			}
		}
	}
}

func drawTriangle(img *image.RGBA) {
	// Isosceles triangle, apex at the top center, filled by scanlines.
	height := canvasSize - 2*margin
	halfBase := (canvasSize - 2*margin) / 2
	for row := 0; row < height; row++ {
		halfWidth := halfBase * row / height
		y := margin + row
		fill(img, image.Rect(canvasSize/2-halfWidth, y, canvasSize/2+halfWidth+1, y+1), ink)
	}
}
