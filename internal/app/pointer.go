package app

// clickSlop is how far, in pixels, the pointer may travel between press and
// release for the gesture to still count as a click.
const clickSlop = 4

// pointer turns raw button and motion events into clicks and drags. Only one
// button gesture is tracked at a time.
type pointer struct {
	down         bool
	dragging     bool
	button       uint8
	downX, downY int
	lastX, lastY int
	// onUI is set when the press landed on an interactive overlay panel.
	onUI bool
	// pan is set when the drag moves the orbit center instead of rotating.
	pan bool
}

// press starts a gesture. It reports false while another button is held.
func (p *pointer) press(x, y int, button uint8, onUI, pan bool) bool {
	if p.down {
		return false
	}
	p.down = true
	p.dragging = false
	p.button = button
	p.onUI = onUI
	p.pan = pan
	p.downX, p.downY = x, y
	p.lastX, p.lastY = x, y
	return true
}

// move returns the motion since the last event while a drag is in progress.
func (p *pointer) move(x, y int) (dx, dy int, drag bool) {
	if !p.down {
		p.lastX, p.lastY = x, y
		return 0, 0, false
	}
	if !p.dragging {
		ox, oy := x-p.downX, y-p.downY
		if ox*ox+oy*oy <= clickSlop*clickSlop {
			return 0, 0, false
		}
		p.dragging = true
	}
	dx, dy = x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	return dx, dy, true
}

// release ends the gesture started by button and reports whether it was a
// click.
func (p *pointer) release(x, y int, button uint8) bool {
	if !p.down || button != p.button {
		return false
	}
	p.move(x, y)
	click := !p.dragging
	p.down = false
	p.dragging = false
	p.pan = false
	return click
}
