package portfolio

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// Tuning holds the controller timings and motion constants.
type Tuning struct {
	// HalfDelay is the delay between a click and the model swap.
	HalfDelay time.Duration
	// FullDelay is the delay between a click and the end of the transition.
	FullDelay time.Duration
	// AngularRate is the idle spin in radians per second.
	AngularRate float64
	// BobAmplitude is the idle vertical bob in world units.
	BobAmplitude float64
	// RestoreOpacityAfterSwap fades the new model back in once the
	// transition ends. When false the new model appears at full opacity
	// the moment it is swapped in.
	RestoreOpacityAfterSwap bool
	// EndOnFadeRest also ends the transition as soon as the fade-out has
	// settled after the swap. FullDelay stays the upper bound.
	EndOnFadeRest bool

	Animator AnimatorConfig
}

// DefaultTuning returns the stock timings.
func DefaultTuning() Tuning {
	return Tuning{
		HalfDelay:               150 * time.Millisecond,
		FullDelay:               300 * time.Millisecond,
		AngularRate:             0.2,
		BobAmplitude:            0.3,
		RestoreOpacityAfterSwap: true,
		Animator:                DefaultAnimatorConfig(),
	}
}

// SwitcherState is the externally visible switcher state.
type SwitcherState struct {
	Active        ModelIdentity
	Hovered       bool
	Transitioning bool
}

// Pose is what the scene applies to the active model each frame.
type Pose struct {
	RotationY float64
	OffsetY   float64
	Scale     float64
	Opacity   float64
}

// Options configures a Controller.
type Options struct {
	// Initial is the starting model. The zero value is the first cycle model.
	Initial ModelIdentity
	// OnChange is called with the new model each time a click-driven swap
	// happens. It is not called for SetExternalModel.
	OnChange func(ModelIdentity)
	Tuning   Tuning
	// Scheduler drives the delayed swap/finish callbacks. A private one is
	// created when nil; in that case Tick feeds it.
	Scheduler *Scheduler
	Logger    *zap.Logger
}

// Controller owns the switcher state machine. It is single-threaded: every
// method and every scheduled callback runs on the goroutine that calls Tick.
type Controller struct {
	tuning   Tuning
	onChange func(ModelIdentity)
	sched    *Scheduler
	log      *zap.Logger
	anim     *Animator

	state SwitcherState

	// generation is bumped by Close; callbacks from an older generation
	// are ignored.
	generation uint64
	closed     bool
	// transition identifies the latest click; only its finish callback may
	// clear Transitioning.
	transition uint64
	swapped    bool
	fadedOut   bool
	pending    map[Token]struct{}

	rotation float64
	offset   float64
}

// NewController creates a controller showing opts.Initial.
func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewScheduler()
	}
	c := &Controller{
		tuning:   opts.Tuning,
		onChange: opts.OnChange,
		sched:    sched,
		log:      log,
		anim:     NewAnimator(opts.Tuning.Animator),
		state:    SwitcherState{Active: Normalize(opts.Initial)},
		pending:  make(map[Token]struct{}),
	}
	c.anim.OnRest(c.handleRest)
	return c
}

// State returns a snapshot of the switcher state.
func (c *Controller) State() SwitcherState {
	return c.state
}

// Active returns the model on stage.
func (c *Controller) Active() ModelIdentity {
	return c.state.Active
}

// Scheduler returns the scheduler driving delayed callbacks.
func (c *Controller) Scheduler() *Scheduler {
	return c.sched
}

// Tuning returns the current tuning.
func (c *Controller) Tuning() Tuning {
	return c.tuning
}

// SetTuning applies new timings. A transition already in flight keeps the
// delays it was started with.
func (c *Controller) SetTuning(t Tuning) {
	if c.closed {
		return
	}
	c.tuning = t
	c.anim.Configure(t.Animator)
	c.anim.SetHovered(c.scaleHovered())
	c.log.Debug("tuning updated",
		zap.Duration("half_delay", t.HalfDelay),
		zap.Duration("full_delay", t.FullDelay))
}

// SetExternalModel puts m on stage immediately, abandoning any transition
// in flight. A swap already scheduled by an earlier click still fires later
// and wins; OnChange is not called for m itself.
func (c *Controller) SetExternalModel(m ModelIdentity) {
	if c.closed {
		return
	}
	m = Normalize(m)
	c.state.Active = m
	c.state.Transitioning = false
	c.swapped = false
	c.fadedOut = false
	if !m.Cyclable() {
		c.state.Hovered = false
	}
	c.anim.SetHovered(c.scaleHovered())
	c.anim.SetFading(false)
	c.anim.ResetOpacity(1)
	c.log.Debug("model set externally", zap.Stringer("model", m))
}

// PointerEnter marks the model hovered. Ignored on non-cyclable models.
func (c *Controller) PointerEnter() {
	if c.closed || !c.state.Active.Cyclable() || c.state.Hovered {
		return
	}
	c.state.Hovered = true
	c.anim.SetHovered(true)
}

// PointerLeave clears the hover. Ignored on non-cyclable models.
func (c *Controller) PointerLeave() {
	if c.closed || !c.state.Active.Cyclable() || !c.state.Hovered {
		return
	}
	c.state.Hovered = false
	c.anim.SetHovered(false)
}

// Click starts a transition to the next model in the cycle. It reports
// whether a transition was started; clicks during a transition or on a
// non-cyclable model are ignored.
func (c *Controller) Click() bool {
	if c.closed {
		return false
	}
	if c.state.Transitioning || !c.state.Active.Cyclable() {
		c.log.Debug("click ignored",
			zap.Stringer("model", c.state.Active),
			zap.Bool("transitioning", c.state.Transitioning))
		return false
	}

	c.transition++
	id, gen := c.transition, c.generation
	target := Next(c.state.Active)

	c.state.Transitioning = true
	c.swapped = false
	c.fadedOut = false
	c.anim.SetFading(true)

	c.schedule(c.tuning.HalfDelay, func() { c.swap(gen, id, target) })
	c.schedule(c.tuning.FullDelay, func() { c.finish(gen, id) })
	return true
}

// Tick advances the controller to elapsed (time since start) with delta
// being the time since the previous frame. Delayed callbacks fire first,
// then idle motion and the animator advance.
func (c *Controller) Tick(elapsed, delta time.Duration) {
	if c.closed {
		return
	}
	c.sched.Advance(elapsed)
	if c.closed {
		return
	}

	if c.state.Active.Cyclable() {
		c.rotation += delta.Seconds() * c.tuning.AngularRate
		c.offset = c.tuning.BobAmplitude * math.Sin(elapsed.Seconds())
	} else {
		// The spin angle is held so the logos resume where they left off.
		c.offset = 0
	}
	c.anim.Update(delta)
}

// Pose returns the transform the scene should apply this frame.
func (c *Controller) Pose() Pose {
	p := Pose{
		Scale:   c.anim.Scale(),
		Opacity: c.anim.Opacity(),
	}
	if c.state.Active.Cyclable() {
		p.RotationY = c.rotation
		p.OffsetY = c.offset
	}
	return p
}

// Close cancels pending callbacks. Every later call is a no-op.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.generation++
	for tok := range c.pending {
		c.sched.Cancel(tok)
	}
	clear(c.pending)
}

func (c *Controller) schedule(d time.Duration, fn func()) {
	var tok Token
	tok = c.sched.After(d, func() {
		delete(c.pending, tok)
		fn()
	})
	c.pending[tok] = struct{}{}
}

func (c *Controller) stale(gen uint64) bool {
	return c.closed || gen != c.generation
}

func (c *Controller) swap(gen, id uint64, target ModelIdentity) {
	if c.stale(gen) {
		return
	}
	c.state.Active = target
	current := id == c.transition && c.state.Transitioning
	if current {
		c.swapped = true
		if !c.tuning.RestoreOpacityAfterSwap {
			c.anim.SetFading(false)
			c.anim.ResetOpacity(1)
		}
	}
	c.anim.SetHovered(c.scaleHovered())
	c.log.Info("model switched", zap.Stringer("model", target))
	if c.onChange != nil {
		c.onChange(target)
	}
	if current && c.tuning.EndOnFadeRest && c.fadedOut {
		c.finish(gen, id)
	}
}

func (c *Controller) finish(gen, id uint64) {
	if c.stale(gen) || id != c.transition || !c.state.Transitioning {
		return
	}
	c.state.Transitioning = false
	c.swapped = false
	c.fadedOut = false
	c.anim.SetFading(false)
}

func (c *Controller) handleRest(ch Channel, v float64) {
	if ch != ChannelOpacity || v != 0 || !c.state.Transitioning {
		return
	}
	c.fadedOut = true
	if c.tuning.EndOnFadeRest && c.swapped {
		c.finish(c.generation, c.transition)
	}
}

func (c *Controller) scaleHovered() bool {
	return c.state.Hovered && c.state.Active.Cyclable()
}
