// Package portfolio implements the model switcher: which logo is on stage,
// how clicks cycle through the logos, and the animation state the scene reads
// every frame.
package portfolio

import "strings"

// ModelIdentity names one of the selectable visual models.
type ModelIdentity int

const (
	NextJS ModelIdentity = iota
	React
	Tailwind
	// Resume is never part of the click cycle; only an external set reaches it.
	Resume
)

// cycleOrder is the order clicks advance through. NextJS must stay first: the
// zero ModelIdentity is the default model.
var cycleOrder = [...]ModelIdentity{NextJS, React, Tailwind}

// CycleOrder returns the click cycle.
func CycleOrder() []ModelIdentity {
	out := make([]ModelIdentity, len(cycleOrder))
	copy(out, cycleOrder[:])
	return out
}

// All returns every identity, cyclable ones first.
func All() []ModelIdentity {
	return append(CycleOrder(), Resume)
}

// Valid reports whether m is one of the known identities.
func (m ModelIdentity) Valid() bool {
	return m >= NextJS && m <= Resume
}

// Cyclable reports whether m takes part in click-to-advance, hover and idle motion.
func (m ModelIdentity) Cyclable() bool {
	switch m {
	case NextJS, React, Tailwind:
		return true
	default:
		return false
	}
}

// Normalize maps unknown values to the first cycle identity.
func Normalize(m ModelIdentity) ModelIdentity {
	if !m.Valid() {
		return cycleOrder[0]
	}
	return m
}

// Next returns the identity after m in the cycle, wrapping around. Resume and
// unknown values restart the cycle, so Next never returns Resume.
func Next(m ModelIdentity) ModelIdentity {
	for i, id := range cycleOrder {
		if id == m {
			return cycleOrder[(i+1)%len(cycleOrder)]
		}
	}
	return cycleOrder[0]
}

// String returns the config/log name of the identity.
func (m ModelIdentity) String() string {
	switch m {
	case NextJS:
		return "nextjs"
	case React:
		return "react"
	case Tailwind:
		return "tailwind"
	case Resume:
		return "resume"
	default:
		return "nextjs"
	}
}

// Label returns the human readable name shown in the overlay.
func (m ModelIdentity) Label() string {
	switch m {
	case NextJS:
		return "Next.js"
	case React:
		return "React"
	case Tailwind:
		return "Tailwind CSS"
	case Resume:
		return "Resume"
	default:
		return "Next.js"
	}
}

// ParseModel parses a config/log name. ok is false for unknown names, in
// which case the first cycle identity is returned.
func ParseModel(s string) (m ModelIdentity, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nextjs", "next", "next.js":
		return NextJS, true
	case "react":
		return React, true
	case "tailwind", "tailwindcss":
		return Tailwind, true
	case "resume", "cv":
		return Resume, true
	default:
		return cycleOrder[0], false
	}
}
