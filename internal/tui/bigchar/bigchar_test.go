package bigchar

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalfBlocks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 255})
	img.SetGray(0, 1, color.Gray{Y: 255})
	img.SetGray(1, 0, color.Gray{Y: 255})
	img.SetGray(2, 1, color.Gray{Y: 255})

	assert.Equal(t, "█▀▄", HalfBlocks(img, 3, 1))
}

func TestHalfBlocks_OutOfBoundsIsBlank(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 1, 1))
	img.SetGray(0, 0, color.Gray{Y: 255})

	assert.Equal(t, "▀ \n  ", HalfBlocks(img, 2, 2))
}

func TestScaleDown(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for x := 0; x < 2; x++ {
		for y := 0; y < 4; y++ {
			src.SetGray(x, y, color.Gray{Y: 200})
		}
	}

	dst := scaleDown(src, 2, 2)
	assert.Equal(t, uint8(200), dst.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(0), dst.GrayAt(1, 1).Y)
}

func TestNilRenderer(t *testing.T) {
	var r *Renderer
	assert.Empty(t, r.Render("한", 10, 5))
}

func TestNew_RejectsGarbage(t *testing.T) {
	_, err := New([]byte("not a font"))
	assert.Error(t, err)
}
