package app

import (
	"github.com/Faultbox/folio3d/internal/config"
	"github.com/Faultbox/folio3d/internal/engine/renderer"
	"github.com/Faultbox/folio3d/internal/engine/ui2d"
	"github.com/Faultbox/folio3d/internal/portfolio"
)

// tuningFromConfig maps the animation section onto controller tuning.
func tuningFromConfig(a config.AnimationConfig) portfolio.Tuning {
	t := portfolio.DefaultTuning()
	t.HalfDelay = a.HalfDelay
	t.FullDelay = a.FullDelay
	t.AngularRate = a.AngularRate
	t.BobAmplitude = a.BobAmplitude
	t.RestoreOpacityAfterSwap = a.RestoreOpacityAfterSwap
	t.EndOnFadeRest = a.EndOnFadeRest
	t.Animator.HoverScale = a.HoverScale
	t.Animator.Mass = a.SpringMass
	t.Animator.Tension = a.SpringTension
	t.Animator.Friction = a.SpringFriction
	return t
}

// backgroundColor parses a hex color, keeping fallback when s is invalid.
func backgroundColor(s string, fallback [3]float32) [3]float32 {
	c, err := ui2d.ParseHex(s)
	if err != nil {
		return fallback
	}
	return c.RGB3()
}

// backgroundGradient blends from the background color at the bottom to
// background_top. It returns nil, a flat background, when the top color is
// unset or invalid.
func backgroundGradient(s config.SceneConfig) *renderer.Gradient {
	top, err := ui2d.ParseHex(s.BackgroundTop)
	if err != nil {
		return nil
	}
	return &renderer.Gradient{
		Top:    top.RGB3(),
		Bottom: backgroundColor(s.Background, defaultBackground),
	}
}
