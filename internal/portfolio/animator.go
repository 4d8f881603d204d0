package portfolio

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Channel identifies an animated value.
type Channel int

const (
	ChannelScale Channel = iota
	ChannelOpacity
)

func (c Channel) String() string {
	if c == ChannelScale {
		return "scale"
	}
	return "opacity"
}

// AnimatorConfig tunes the scale spring and the opacity fade.
type AnimatorConfig struct {
	// HoverScale is the scale target while hovered.
	HoverScale float64
	// Mass, Tension and Friction describe the scale spring.
	Mass     float64
	Tension  float64
	Friction float64
	// FadeDuration is the time a full 1 -> 0 (or 0 -> 1) fade takes.
	FadeDuration time.Duration
	// Epsilon is the distance under which a channel snaps to its target.
	Epsilon float64
}

// DefaultAnimatorConfig returns the stock tuning.
func DefaultAnimatorConfig() AnimatorConfig {
	return AnimatorConfig{
		HoverScale:   1.1,
		Mass:         1,
		Tension:      280,
		Friction:     60,
		FadeDuration: 150 * time.Millisecond,
		Epsilon:      1e-3,
	}
}

// SpringParams converts mass/tension/friction into the angular frequency and
// damping ratio harmonica expects.
func SpringParams(mass, tension, friction float64) (angularFreq, damping float64) {
	if mass <= 0 || tension <= 0 {
		return 0, 0
	}
	angularFreq = math.Sqrt(tension / mass)
	damping = friction / (2 * math.Sqrt(tension*mass))
	return angularFreq, damping
}

// Animator eases the display scale and opacity toward their targets.
// Scale follows a damped spring; opacity follows an out-cubic tween that
// restarts from the current value whenever its target changes.
type Animator struct {
	cfg AnimatorConfig

	omega, zeta float64
	spring      harmonica.Spring
	springDt    time.Duration

	scale       float64
	scaleVel    float64
	scaleTarget float64
	scaleRest   bool

	opacity       float64
	opacityTarget float64
	fade          *gween.Tween
	opacityRest   bool

	onRest func(Channel, float64)
}

// NewAnimator returns an animator resting at scale 1 and opacity 1.
func NewAnimator(cfg AnimatorConfig) *Animator {
	a := &Animator{
		scale:         1,
		scaleTarget:   1,
		scaleRest:     true,
		opacity:       1,
		opacityTarget: 1,
		opacityRest:   true,
	}
	a.Configure(cfg)
	return a
}

// Configure replaces the tuning. Motion in flight continues from its
// current value.
func (a *Animator) Configure(cfg AnimatorConfig) {
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = DefaultAnimatorConfig().Epsilon
	}
	if cfg.HoverScale <= 0 {
		cfg.HoverScale = 1
	}
	a.cfg = cfg
	a.omega, a.zeta = SpringParams(cfg.Mass, cfg.Tension, cfg.Friction)
	a.springDt = 0
}

// OnRest registers fn to be called each time a channel settles on its
// target.
func (a *Animator) OnRest(fn func(Channel, float64)) {
	a.onRest = fn
}

// SetHovered picks the scale target.
func (a *Animator) SetHovered(hovered bool) {
	target := 1.0
	if hovered {
		target = a.cfg.HoverScale
	}
	if target == a.scaleTarget {
		return
	}
	a.scaleTarget = target
	a.scaleRest = false
}

// SetFading picks the opacity target: 0 while fading, 1 otherwise.
func (a *Animator) SetFading(fading bool) {
	target := 1.0
	if fading {
		target = 0
	}
	if target == a.opacityTarget {
		return
	}
	a.opacityTarget = target
	a.startFade()
}

// ResetOpacity jumps opacity to v and drops any fade in progress.
func (a *Animator) ResetOpacity(v float64) {
	a.opacity = clamp01(v)
	a.fade = nil
	a.opacityRest = a.opacity == a.opacityTarget
}

func (a *Animator) startFade() {
	dist := math.Abs(a.opacityTarget - a.opacity)
	if dist < a.cfg.Epsilon || a.cfg.FadeDuration <= 0 {
		a.opacity = a.opacityTarget
		a.fade = nil
		a.opacityRest = false // reported on the next Update
		return
	}
	// Shorter distances take proportionally less time.
	d := float32(a.cfg.FadeDuration.Seconds() * dist)
	a.fade = gween.New(float32(a.opacity), float32(a.opacityTarget), d, ease.OutCubic)
	a.opacityRest = false
}

// Update advances both channels by dt.
func (a *Animator) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	a.updateScale(dt)
	a.updateOpacity(dt)
}

func (a *Animator) updateScale(dt time.Duration) {
	if a.scaleRest {
		return
	}
	if a.omega == 0 {
		a.scale, a.scaleVel = a.scaleTarget, 0
	} else if dt > 0 {
		if dt != a.springDt {
			a.spring = harmonica.NewSpring(dt.Seconds(), a.omega, a.zeta)
			a.springDt = dt
		}
		a.scale, a.scaleVel = a.spring.Update(a.scale, a.scaleVel, a.scaleTarget)
		lo, hi := 1.0, a.cfg.HoverScale
		if lo > hi {
			lo, hi = hi, lo
		}
		a.scale = math.Max(lo, math.Min(hi, a.scale))
	}
	if math.Abs(a.scale-a.scaleTarget) < a.cfg.Epsilon && math.Abs(a.scaleVel) < a.cfg.Epsilon*10 {
		a.scale, a.scaleVel = a.scaleTarget, 0
		a.scaleRest = true
		a.rest(ChannelScale, a.scale)
	}
}

func (a *Animator) updateOpacity(dt time.Duration) {
	if a.opacityRest {
		return
	}
	if a.fade != nil {
		v, done := a.fade.Update(float32(dt.Seconds()))
		a.opacity = clamp01(float64(v))
		if !done {
			return
		}
		a.fade = nil
	}
	a.opacity = a.opacityTarget
	a.opacityRest = true
	a.rest(ChannelOpacity, a.opacity)
}

func (a *Animator) rest(ch Channel, v float64) {
	if a.onRest != nil {
		a.onRest(ch, v)
	}
}

// Scale returns the current display scale.
func (a *Animator) Scale() float64 { return a.scale }

// Opacity returns the current display opacity.
func (a *Animator) Opacity() float64 { return a.opacity }

// ScaleTarget returns the value the scale spring is heading for.
func (a *Animator) ScaleTarget() float64 { return a.scaleTarget }

// OpacityTarget returns the value the opacity fade is heading for.
func (a *Animator) OpacityTarget() float64 { return a.opacityTarget }

// Resting reports whether both channels have settled.
func (a *Animator) Resting() bool {
	return a.scaleRest && a.opacityRest
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
