// Package bigchar renders a Hangul syllable as large block art using
// half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontPaths are searched in order for a font with Hangul coverage.
var FontPaths = []string{
	// macOS
	"/System/Library/Fonts/AppleSDGothicNeo.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/nanum/NanumGothic.ttf",
	"/usr/share/fonts/truetype/unfonts-core/UnDotum.ttf",
	// Windows
	"C:\\Windows\\Fonts\\malgun.ttf",
	"C:\\Windows\\Fonts\\gulim.ttc",
}

const threshold = 40

// Renderer draws glyphs from one font face and caches the results.
type Renderer struct {
	face  font.Face
	mu    sync.Mutex
	cache map[string]string
}

var (
	defaultRenderer *Renderer
	defaultOnce     sync.Once
)

// Default returns a renderer over the first usable system font, or nil
// when none was found.
func Default() *Renderer {
	defaultOnce.Do(func() {
		for _, path := range FontPaths {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if r, err := New(data); err == nil {
				defaultRenderer = r
				return
			}
		}
	})
	return defaultRenderer
}

// New parses a TrueType/OpenType font or collection.
func New(data []byte) (*Renderer, error) {
	var fnt *opentype.Font
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		fnt, err = coll.Font(0)
		if err != nil {
			return nil, fmt.Errorf("reading font collection: %w", err)
		}
	} else {
		fnt, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing font: %w", err)
		}
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: 64, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return &Renderer{face: face, cache: make(map[string]string)}, nil
}

// Render draws char into a cols×rows cell block. Results are cached.
func (r *Renderer) Render(char string, cols, rows int) string {
	if r == nil || char == "" || cols <= 0 || rows <= 0 {
		return ""
	}

	key := fmt.Sprintf("%s/%dx%d", char, cols, rows)
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[key]; ok {
		return cached
	}

	out := HalfBlocks(scaleDown(r.rasterize(char), cols, rows*2), cols, rows)
	r.cache[key] = out
	return out
}

// rasterize draws char white on black at the face's natural size.
func (r *Renderer) rasterize(char string) *image.Gray {
	glyph := []rune(char)[0]
	bounds, _, _ := r.face.GlyphBounds(glyph)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const padding = 4
	width := max(glyphWidth+padding*2, 64)
	height := max(glyphHeight+padding*2, 64)

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.P((width-glyphWidth)/2, height-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(char)
	return img
}

// scaleDown shrinks src by averaging the pixels of each target cell.
func scaleDown(src *image.Gray, width, height int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		y0, y1 := y*sh/height, min((y+1)*sh/height, sh)
		for x := 0; x < width; x++ {
			x0, x1 := x*sw/width, min((x+1)*sw/width, sw)

			sum, n := 0, 0
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(x, y, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

// HalfBlocks converts img into rows of ▀ ▄ █ cells, two pixels per cell.
func HalfBlocks(img *image.Gray, cols, rows int) string {
	on := func(x, y int) bool {
		if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
			return false
		}
		return img.GrayAt(x, y).Y > threshold
	}

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := on(col, row*2), on(col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}
