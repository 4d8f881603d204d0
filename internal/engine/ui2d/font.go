package ui2d

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Glyph holds the atlas UV rectangle of one character.
type Glyph struct {
	U0, V0, U1, V1 float32
}

// Atlas is a monospace bitmap font rasterized into a single alpha image.
type Atlas struct {
	Image   *image.Alpha
	CellW   int
	CellH   int
	Advance int
	glyphs  map[rune]Glyph
}

// NewAtlas rasterizes the printable ASCII range of basicfont.Face7x13.
func NewAtlas() *Atlas {
	face := basicfont.Face7x13
	cellW, cellH := face.Advance, face.Height
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	img := image.NewAlpha(image.Rect(0, 0, cellW*atlasColumns, cellH*rows))
	a := &Atlas{
		Image:   img,
		CellW:   cellW,
		CellH:   cellH,
		Advance: face.Advance,
		glyphs:  make(map[rune]Glyph, count),
	}

	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	ascent := face.Metrics().Ascent.Ceil()
	w, h := float32(img.Bounds().Dx()), float32(img.Bounds().Dy())
	for i := 0; i < count; i++ {
		r := firstGlyph + rune(i)
		x, y := (i%atlasColumns)*cellW, (i/atlasColumns)*cellH
		d.Dot = fixed.P(x, y+ascent)
		d.DrawString(string(r))
		a.glyphs[r] = Glyph{
			U0: float32(x) / w,
			V0: float32(y) / h,
			U1: float32(x+cellW) / w,
			V1: float32(y+cellH) / h,
		}
	}
	return a
}

// Glyph returns the UVs for r, falling back to '?'.
func (a *Atlas) Glyph(r rune) Glyph {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	return a.glyphs['?']
}

// MeasureText returns the size of text at the given scale. Newlines start a
// new line.
func (a *Atlas) MeasureText(text string, scale float32) (float32, float32) {
	lines, longest, cur := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return float32(longest*a.Advance) * scale, float32(lines*a.CellH) * scale
}

// Font is an Atlas uploaded as a GL texture.
type Font struct {
	*Atlas
	texID uint32
}

// NewFont builds the atlas and uploads it as a single-channel texture.
func NewFont() *Font {
	a := NewAtlas()
	f := &Font{Atlas: a}

	b := a.Image.Bounds()
	gl.GenTextures(1, &f.texID)
	gl.BindTexture(gl.TEXTURE_2D, f.texID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&a.Image.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return f
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texID
}

// Close releases the texture.
func (f *Font) Close() {
	if f.texID != 0 {
		gl.DeleteTextures(1, &f.texID)
		f.texID = 0
	}
}
