package ui2d

import (
	"reflect"
	"testing"
)

// recorder is a Canvas that records draw calls using the real atlas metrics.
type recorder struct {
	atlas *Atlas
	rects []Rect
	texts []string
}

func newRecorder() *recorder {
	return &recorder{atlas: NewAtlas()}
}

func (r *recorder) Begin() { r.rects, r.texts = nil, nil }
func (r *recorder) End()   {}
func (r *recorder) DrawRect(x, y, w, h float32, _ Color) {
	r.rects = append(r.rects, Rect{x, y, w, h})
}
func (r *recorder) DrawRectOutline(x, y, w, h, _ float32, c Color) { r.DrawRect(x, y, w, h, c) }
func (r *recorder) DrawText(_, _ float32, text string, _ float32, _ Color) {
	r.texts = append(r.texts, text)
}
func (r *recorder) MeasureText(text string, scale float32) (float32, float32) {
	return r.atlas.MeasureText(text, scale)
}
func (r *recorder) ScreenSize() (int, int) { return 1280, 720 }

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ffffff", Color{1, 1, 1, 1}, false},
		{"000", Color{0, 0, 0, 1}, false},
		{"#ff000080", RGBA(255, 0, 0, 128), false},
		{"#222", RGB(0x22, 0x22, 0x22), false},
		{"#12345", Color{}, true},
		{"#gggggg", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := Color{0.5, 0.5, 0.5, 0.8}
	if got := c.Fade(0.5).A; got != 0.4 {
		t.Errorf("Fade alpha = %v", got)
	}
	if got := c.Darken(1); got.R != 0 || got.A != 0.8 {
		t.Errorf("Darken = %+v", got)
	}
	if got := c.Lighten(1); got.R != 1 {
		t.Errorf("Lighten = %+v", got)
	}
}

func TestAtlasGlyphs(t *testing.T) {
	a := NewAtlas()
	if a.CellW != 7 || a.CellH != 13 {
		t.Fatalf("cell = %dx%d, want 7x13", a.CellW, a.CellH)
	}
	g := a.Glyph('A')
	if g.U0 >= g.U1 || g.V0 >= g.V1 || g.U1 > 1 || g.V1 > 1 {
		t.Fatalf("bad UVs %+v", g)
	}

	// The 'A' cell must contain ink.
	b := a.Image.Bounds()
	x0, y0 := int(g.U0*float32(b.Dx())), int(g.V0*float32(b.Dy()))
	ink := 0
	for y := y0; y < y0+a.CellH; y++ {
		for x := x0; x < x0+a.CellW; x++ {
			if a.Image.AlphaAt(x, y).A > 0 {
				ink++
			}
		}
	}
	if ink == 0 {
		t.Error("glyph 'A' is blank")
	}

	if a.Glyph('é') != a.Glyph('?') {
		t.Error("unknown rune should fall back to '?'")
	}
}

func TestMeasureText(t *testing.T) {
	a := NewAtlas()
	w, h := a.MeasureText("abc\nde", 2)
	if w != 3*7*2 || h != 2*13*2 {
		t.Errorf("MeasureText = %v x %v", w, h)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want []string
	}{
		{"hello world", 20, []string{"hello world"}},
		{"hello world", 5, []string{"hello", "world"}},
		{"a b c d", 3, []string{"a b", "c d"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"one\n\ntwo", 10, []string{"one", "", "two"}},
		{"unbounded", 0, []string{"unbounded"}},
	}
	for _, tt := range tests {
		if got := WrapText(tt.in, tt.max); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("WrapText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestButtonConsumesClick(t *testing.T) {
	rec := newRecorder()
	ctx := NewContext(rec)

	frame := func() (first, second bool) {
		ctx.Begin()
		ctx.BeginPanel("p", Rect{0, 0, 200, 200}, DefaultPanelStyle())
		first = ctx.Button("a", 0, "First")
		ctx.EndPanel()
		ctx.BeginPanel("q", Rect{0, 0, 200, 200}, DefaultPanelStyle())
		second = ctx.Button("b", 0, "Second")
		ctx.EndPanel()
		ctx.End()
		return first, second
	}

	in := ctx.Input()
	in.MouseX, in.MouseY = 50, 20
	if a, b := frame(); a || b {
		t.Fatal("clicked without a click")
	}

	in.MouseLeftClicked = true
	a, b := frame()
	if !a || b {
		t.Errorf("clicks = %v, %v; want only the first button", a, b)
	}
	if in.MouseLeftClicked {
		t.Error("click not cleared at end of frame")
	}
}

func TestCapturesUsesPreviousFrame(t *testing.T) {
	ctx := NewContext(newRecorder())

	style := DefaultPanelStyle()
	style.Interactive = true

	ctx.Begin()
	ctx.BeginPanel("doc", Rect{100, 100, 50, 50}, style)
	ctx.EndPanel()
	ctx.BeginPanel("help", Rect{0, 0, 50, 50}, DefaultPanelStyle())
	ctx.EndPanel()
	ctx.End()

	ctx.Begin()
	if !ctx.Captures(120, 120) {
		t.Error("interactive panel did not capture")
	}
	if ctx.Captures(10, 10) {
		t.Error("non-interactive panel captured")
	}
	ctx.End()

	ctx.Begin()
	if ctx.Captures(120, 120) {
		t.Error("capture survived a frame without the panel")
	}
	ctx.End()
}

func TestParagraphWrapsToPanel(t *testing.T) {
	rec := newRecorder()
	ctx := NewContext(rec)
	ctx.Begin()
	style := DefaultPanelStyle()
	style.Padding = 0
	// 70px at 7px per glyph: ten characters per line.
	ctx.BeginPanel("p", Rect{0, 0, 70, 200}, style)
	ctx.Paragraph("aaaa bbbb cccc", ColorText, 1)
	ctx.EndPanel()
	ctx.End()

	want := []string{"aaaa bbbb", "cccc"}
	if !reflect.DeepEqual(rec.texts, want) {
		t.Errorf("lines = %q, want %q", rec.texts, want)
	}
	for _, line := range rec.texts {
		if len(line) > 10 {
			t.Errorf("line %q too long", line)
		}
	}
}

func TestFadedPanelDoesNotCapture(t *testing.T) {
	ctx := NewContext(newRecorder())
	style := DefaultPanelStyle()
	style.Interactive = true

	ctx.Begin()
	ctx.SetAlpha(0)
	ctx.BeginPanel("doc", Rect{0, 0, 50, 50}, style)
	ctx.EndPanel()
	ctx.End()

	ctx.Begin()
	if ctx.Captures(10, 10) {
		t.Error("invisible panel captured input")
	}
	ctx.End()
}
