package ui2d

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PanelStyle controls how BeginPanel draws and lays out a panel.
type PanelStyle struct {
	Background Color
	Border     Color
	Text       Color
	Padding    float32
	// TextScale multiplies the 7x13 glyphs.
	TextScale float32
	// Interactive panels swallow pointer input; see Context.Captures.
	Interactive bool
}

// DefaultPanelStyle is the translucent overlay look.
func DefaultPanelStyle() PanelStyle {
	return PanelStyle{
		Background: ColorPanelBg,
		Border:     ColorPanelBorder,
		Text:       ColorText,
		Padding:    12,
		TextScale:  1,
	}
}

type panelState struct {
	id    string
	rect  Rect
	style PanelStyle
}

// Context is the main UI context that manages layout and widget state.
type Context struct {
	canvas Canvas
	input  *InputState

	// Widget pressed and not yet released
	activeWidget string

	// Interactive panel rects of this and the previous frame
	captured     []Rect
	prevCaptured []Rect

	current *panelState
	alpha   float32

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// NewContext creates a UI context drawing into canvas.
func NewContext(canvas Canvas) *Context {
	return &Context{
		canvas: canvas,
		input:  &InputState{},
		alpha:  1,
	}
}

// Canvas returns the drawing surface.
func (c *Context) Canvas() Canvas {
	return c.canvas
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.Update()
	c.prevCaptured, c.captured = c.captured, c.prevCaptured[:0]
	c.alpha = 1
	c.canvas.Begin()
}

// End finishes the UI frame.
func (c *Context) End() {
	c.canvas.End()
	c.input.EndFrame()
}

// Captures reports whether (x, y) fell on an interactive panel last frame.
// The host uses it to keep clicks on the UI from reaching the 3D scene.
func (c *Context) Captures(x, y float32) bool {
	for _, r := range c.prevCaptured {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// SetAlpha fades everything drawn until the next Begin or SetAlpha.
func (c *Context) SetAlpha(a float32) {
	c.alpha = max(0, min(1, a))
}

// ScreenSize returns the current screen dimensions.
func (c *Context) ScreenSize() (float32, float32) {
	w, h := c.canvas.ScreenSize()
	return float32(w), float32(h)
}

// BeginPanel starts a panel at r.
func (c *Context) BeginPanel(id string, r Rect, style PanelStyle) {
	if style.TextScale <= 0 {
		style.TextScale = 1
	}
	c.current = &panelState{id: id, rect: r, style: style}
	if style.Interactive && c.alpha > 0 {
		c.captured = append(c.captured, r)
	}

	c.canvas.DrawRect(r.X, r.Y, r.W, r.H, style.Background.Fade(c.alpha))
	if style.Border.A > 0 {
		c.canvas.DrawRectOutline(r.X, r.Y, r.W, r.H, 1, style.Border.Fade(c.alpha))
	}

	c.cursorX = r.X + style.Padding
	c.cursorY = r.Y + style.Padding
	c.rowH = 0
}

// EndPanel finishes the current panel.
func (c *Context) EndPanel() {
	c.current = nil
}

func (c *Context) lineHeight(scale float32) float32 {
	_, h := c.canvas.MeasureText("M", scale)
	return h
}

func (c *Context) contentWidth() float32 {
	return c.current.rect.W - 2*c.current.style.Padding
}

// Row moves the cursor to a new row of the given height.
func (c *Context) Row(height float32) {
	if c.current == nil {
		return
	}
	c.cursorX = c.current.rect.X + c.current.style.Padding
	c.cursorY += c.rowH
	c.rowH = height
}

// Spacer adds vertical space.
func (c *Context) Spacer(height float32) {
	c.Row(0)
	c.cursorY += height
}

// Separator draws a thin horizontal rule.
func (c *Context) Separator() {
	if c.current == nil {
		return
	}
	c.Row(9)
	c.canvas.DrawRect(c.cursorX, c.cursorY+4, c.contentWidth(), 1, c.current.style.Border.Fade(c.alpha))
}

// Label draws a text line in the panel text color.
func (c *Context) Label(text string) {
	if c.current == nil {
		return
	}
	c.LabelStyled(text, c.current.style.Text, c.current.style.TextScale)
}

// LabelStyled draws a text line with an explicit color and scale.
func (c *Context) LabelStyled(text string, color Color, scale float32) {
	if c.current == nil {
		return
	}
	c.Row(c.lineHeight(scale) + 4)
	c.canvas.DrawText(c.cursorX, c.cursorY, text, scale, color.Fade(c.alpha))
}

// Paragraph draws text wrapped to the panel width.
func (c *Context) Paragraph(text string, color Color, scale float32) {
	if c.current == nil {
		return
	}
	charW, _ := c.canvas.MeasureText("M", scale)
	maxChars := 0
	if charW > 0 {
		maxChars = int(c.contentWidth() / charW)
	}
	for _, line := range WrapText(text, maxChars) {
		c.LabelStyled(line, color, scale)
	}
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.current == nil {
		return false
	}
	scale := c.current.style.TextScale
	_, textH := c.canvas.MeasureText(label, scale)
	h := textH + 12
	c.Row(h + 4)
	if width == 0 {
		width = c.contentWidth()
	}

	x, y := c.cursorX, c.cursorY
	fullID := c.current.id + "/" + id
	rect := Rect{x, y, width, h}

	hovered := c.alpha > 0 && rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false
	if hovered {
		if c.input.MouseLeftPressed {
			c.activeWidget = fullID
		}
		if c.input.MouseLeftClicked {
			clicked = true
			// Only one widget gets a click.
			c.input.MouseLeftClicked = false
		}
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.canvas.DrawRect(x, y, width, h, color.Fade(c.alpha))
	c.canvas.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder.Fade(c.alpha))

	textW, _ := c.canvas.MeasureText(label, scale)
	c.canvas.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, scale, ColorText.Fade(c.alpha))

	return clicked
}
