package portfolio

import (
	"math"
	"reflect"
	"testing"
	"time"
)

// harness drives a controller with fixed 10ms frames.
type harness struct {
	c       *Controller
	now     time.Duration
	changes []ModelIdentity
}

func newHarness(t *testing.T, initial ModelIdentity, tune func(*Tuning)) *harness {
	t.Helper()
	h := &harness{}
	tuning := DefaultTuning()
	if tune != nil {
		tune(&tuning)
	}
	h.c = NewController(Options{
		Initial:  initial,
		Tuning:   tuning,
		OnChange: func(m ModelIdentity) { h.changes = append(h.changes, m) },
	})
	t.Cleanup(h.c.Close)
	return h
}

func (h *harness) advanceTo(t time.Duration) {
	for h.now < t {
		step := min(10*time.Millisecond, t-h.now)
		h.now += step
		h.c.Tick(h.now, step)
	}
}

func (h *harness) advance(d time.Duration) {
	h.advanceTo(h.now + d)
}

func TestControllerInitialModel(t *testing.T) {
	if got := newHarness(t, NextJS, nil).c.Active(); got != NextJS {
		t.Errorf("default active = %v", got)
	}
	if got := newHarness(t, Resume, nil).c.Active(); got != Resume {
		t.Errorf("resume active = %v", got)
	}
	if got := newHarness(t, ModelIdentity(9), nil).c.Active(); got != NextJS {
		t.Errorf("unknown active = %v, want nextjs", got)
	}
}

func TestClickSwapsAtHalfDelayAndEndsAtFullDelay(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	if !h.c.Click() {
		t.Fatal("Click returned false")
	}
	if s := h.c.State(); !s.Transitioning || s.Active != NextJS {
		t.Fatalf("after click state = %+v", s)
	}

	h.advanceTo(149 * time.Millisecond)
	if h.c.Active() != NextJS || len(h.changes) != 0 {
		t.Fatalf("swapped early: active=%v changes=%v", h.c.Active(), h.changes)
	}

	h.advanceTo(150 * time.Millisecond)
	if h.c.Active() != React {
		t.Fatalf("active = %v, want react", h.c.Active())
	}
	if !reflect.DeepEqual(h.changes, []ModelIdentity{React}) {
		t.Fatalf("changes = %v", h.changes)
	}
	if !h.c.State().Transitioning {
		t.Fatal("transition ended at swap")
	}

	h.advanceTo(299 * time.Millisecond)
	if !h.c.State().Transitioning {
		t.Fatal("transition ended early")
	}
	h.advanceTo(300 * time.Millisecond)
	if h.c.State().Transitioning {
		t.Fatal("transition still running after full delay")
	}
}

func TestClickDuringTransitionIgnored(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click()
	h.advance(50 * time.Millisecond)
	if h.c.Click() {
		t.Error("second click accepted")
	}
	h.advance(200 * time.Millisecond)
	if h.c.Click() {
		t.Error("click after swap but before end accepted")
	}
	h.advance(time.Second)
	if !reflect.DeepEqual(h.changes, []ModelIdentity{React}) {
		t.Errorf("changes = %v, want [react]", h.changes)
	}
}

func TestClicksCycleThroughModels(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	for i := 0; i < 4; i++ {
		if !h.c.Click() {
			t.Fatalf("click %d rejected", i)
		}
		h.advance(400 * time.Millisecond)
	}
	want := []ModelIdentity{React, Tailwind, NextJS, React}
	if !reflect.DeepEqual(h.changes, want) {
		t.Errorf("changes = %v, want %v", h.changes, want)
	}
}

func TestResumeIgnoresClickAndHover(t *testing.T) {
	h := newHarness(t, Resume, nil)
	if h.c.Click() {
		t.Error("click on resume accepted")
	}
	h.c.PointerEnter()
	if h.c.State().Hovered {
		t.Error("resume became hovered")
	}
	h.advance(time.Second)
	if len(h.changes) != 0 || h.c.Active() != Resume {
		t.Errorf("active=%v changes=%v", h.c.Active(), h.changes)
	}
	p := h.c.Pose()
	if p.RotationY != 0 || p.OffsetY != 0 || p.Scale != 1 || p.Opacity != 1 {
		t.Errorf("resume pose = %+v", p)
	}
}

func TestHoverScalesUp(t *testing.T) {
	h := newHarness(t, React, nil)
	h.c.PointerEnter()
	if !h.c.State().Hovered {
		t.Fatal("not hovered")
	}
	h.advance(3 * time.Second)
	if got := h.c.Pose().Scale; got != 1.1 {
		t.Errorf("hovered scale = %v, want 1.1", got)
	}
	h.c.PointerLeave()
	h.advance(3 * time.Second)
	if got := h.c.Pose().Scale; got != 1 {
		t.Errorf("scale after leave = %v, want 1", got)
	}
}

func TestExternalSetToResumeClearsHover(t *testing.T) {
	h := newHarness(t, Tailwind, nil)
	h.c.PointerEnter()
	h.advance(100 * time.Millisecond)
	h.c.SetExternalModel(Resume)

	s := h.c.State()
	if s.Active != Resume || s.Hovered || s.Transitioning {
		t.Fatalf("state = %+v", s)
	}
	if len(h.changes) != 0 {
		t.Errorf("external set notified: %v", h.changes)
	}
	h.advance(3 * time.Second)
	if got := h.c.Pose().Scale; got != 1 {
		t.Errorf("resume scale = %v, want 1", got)
	}
}

func TestExternalSetDuringTransition(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click()
	h.advance(50 * time.Millisecond)

	h.c.SetExternalModel(Tailwind)
	if s := h.c.State(); s.Active != Tailwind || s.Transitioning {
		t.Fatalf("state = %+v", s)
	}
	if got := h.c.Pose().Opacity; got != 1 {
		t.Errorf("opacity after external set = %v, want 1", got)
	}

	// The swap scheduled by the click still lands.
	h.advanceTo(150 * time.Millisecond)
	if h.c.Active() != React {
		t.Errorf("active = %v, want react", h.c.Active())
	}
	if !reflect.DeepEqual(h.changes, []ModelIdentity{React}) {
		t.Errorf("changes = %v", h.changes)
	}
}

func TestExternalSetAfterSwapWins(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click()
	h.advanceTo(200 * time.Millisecond) // swapped, finish still pending

	h.c.SetExternalModel(Resume)
	h.advanceTo(400 * time.Millisecond)

	if s := h.c.State(); s.Active != Resume || s.Transitioning || s.Hovered {
		t.Errorf("state = %+v, want resume and idle", s)
	}
	if !reflect.DeepEqual(h.changes, []ModelIdentity{React}) {
		t.Errorf("changes = %v, want [react]", h.changes)
	}
	if p := h.c.Pose(); p.Opacity != 1 || p.RotationY != 0 || p.OffsetY != 0 {
		t.Errorf("pose = %+v, want neutral and opaque", p)
	}
}

func TestStaleFinishKeepsNewTransition(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click() // swap at 150, finish at 300
	h.advanceTo(50 * time.Millisecond)
	h.c.SetExternalModel(Tailwind)
	h.advanceTo(100 * time.Millisecond)
	if !h.c.Click() { // swap at 250, finish at 400
		t.Fatal("click after external set rejected")
	}

	h.advanceTo(350 * time.Millisecond)
	if !h.c.State().Transitioning {
		t.Fatal("first click's finish ended the second transition")
	}
	h.advanceTo(400 * time.Millisecond)
	if h.c.State().Transitioning {
		t.Fatal("second transition did not end")
	}
	// 150ms: first swap -> react; 250ms: second swap -> next of tailwind.
	want := []ModelIdentity{React, NextJS}
	if !reflect.DeepEqual(h.changes, want) {
		t.Errorf("changes = %v, want %v", h.changes, want)
	}
	if h.c.Active() != NextJS {
		t.Errorf("active = %v", h.c.Active())
	}
}

func TestCloseSilencesPendingCallbacks(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click()
	h.advance(50 * time.Millisecond)
	h.c.Close()
	if p := h.c.Scheduler().Pending(); p != 0 {
		t.Errorf("pending after close = %d", p)
	}

	h.advance(time.Second)
	h.c.Click()
	h.c.PointerEnter()
	h.c.SetExternalModel(Resume)
	h.c.Close()

	if len(h.changes) != 0 {
		t.Errorf("changes after close = %v", h.changes)
	}
	if s := h.c.State(); s.Active != NextJS || s.Hovered {
		t.Errorf("state mutated after close: %+v", s)
	}
}

func TestCloseFromOnChange(t *testing.T) {
	var c *Controller
	calls := 0
	c = NewController(Options{
		Tuning: DefaultTuning(),
		OnChange: func(ModelIdentity) {
			calls++
			c.Close()
		},
	})
	c.Click()
	for now := 10 * time.Millisecond; now <= time.Second; now += 10 * time.Millisecond {
		c.Tick(now, 10*time.Millisecond)
	}
	if calls != 1 {
		t.Errorf("OnChange calls = %d", calls)
	}
	if c.State().Active != React {
		t.Errorf("active = %v", c.State().Active)
	}
}

func TestIdleMotion(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.advanceTo(time.Second)
	p := h.c.Pose()
	if math.Abs(p.RotationY-0.2) > 1e-9 {
		t.Errorf("rotation after 1s = %v, want 0.2", p.RotationY)
	}
	if want := 0.3 * math.Sin(1); math.Abs(p.OffsetY-want) > 1e-9 {
		t.Errorf("offset = %v, want %v", p.OffsetY, want)
	}
}

func TestIdleRotationHeldOnResume(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.advanceTo(time.Second)
	held := h.c.Pose().RotationY

	h.c.SetExternalModel(Resume)
	h.advance(2 * time.Second)
	if p := h.c.Pose(); p.RotationY != 0 || p.OffsetY != 0 {
		t.Errorf("resume pose = %+v", p)
	}

	h.c.SetExternalModel(React)
	if got := h.c.Pose().RotationY; got != held {
		t.Errorf("rotation = %v, want held %v", got, held)
	}
}

func TestOpacityFadesOutAndBackIn(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	h.c.Click()
	h.advanceTo(150 * time.Millisecond)
	if got := h.c.Pose().Opacity; got > 0.05 {
		t.Errorf("opacity at swap = %v, want ~0", got)
	}
	h.advanceTo(290 * time.Millisecond)
	if got := h.c.Pose().Opacity; got != 0 {
		t.Errorf("opacity before end = %v, want 0", got)
	}
	h.advanceTo(600 * time.Millisecond)
	if got := h.c.Pose().Opacity; got != 1 {
		t.Errorf("opacity after fade in = %v, want 1", got)
	}
}

func TestOpacitySnapsOnSwapWithoutFadeIn(t *testing.T) {
	h := newHarness(t, NextJS, func(tu *Tuning) { tu.RestoreOpacityAfterSwap = false })
	h.c.Click()
	h.advanceTo(100 * time.Millisecond)
	if got := h.c.Pose().Opacity; got >= 1 {
		t.Errorf("opacity during fade out = %v", got)
	}
	h.advanceTo(150 * time.Millisecond)
	if got := h.c.Pose().Opacity; got != 1 {
		t.Errorf("opacity at swap = %v, want 1", got)
	}
	if !h.c.State().Transitioning {
		t.Error("transition ended at swap")
	}
}

func TestEndOnFadeRest(t *testing.T) {
	h := newHarness(t, NextJS, func(tu *Tuning) { tu.EndOnFadeRest = true })
	h.c.Click()
	h.advanceTo(140 * time.Millisecond)
	if !h.c.State().Transitioning {
		t.Fatal("transition ended before swap")
	}
	h.advanceTo(200 * time.Millisecond)
	if h.c.State().Transitioning {
		t.Error("transition still running after fade settled")
	}
	if h.c.Active() != React {
		t.Errorf("active = %v", h.c.Active())
	}
}

func TestSetTuningAffectsNextClick(t *testing.T) {
	h := newHarness(t, NextJS, nil)
	tuning := DefaultTuning()
	tuning.HalfDelay = 50 * time.Millisecond
	tuning.FullDelay = 100 * time.Millisecond
	h.c.SetTuning(tuning)

	h.c.Click()
	h.advance(50 * time.Millisecond)
	if h.c.Active() != React {
		t.Errorf("active = %v after tuned half delay", h.c.Active())
	}
	h.advance(50 * time.Millisecond)
	if h.c.State().Transitioning {
		t.Error("transition still running after tuned full delay")
	}
}
