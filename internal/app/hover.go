package app

import "github.com/Faultbox/folio3d/internal/portfolio"

// hoverTracker forwards pointer-over changes to the switcher. The model can
// change under a still pointer, so the active model is tracked as well.
type hoverTracker struct {
	over  bool
	model portfolio.ModelIdentity
}

// update reports whether the pointer or the model under it changed.
func (h *hoverTracker) update(ctrl *portfolio.Controller, over bool) bool {
	active := ctrl.Active()
	if over == h.over && active == h.model {
		return false
	}
	h.over, h.model = over, active
	if over {
		ctrl.PointerEnter()
	} else {
		ctrl.PointerLeave()
	}
	return true
}
