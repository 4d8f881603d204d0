package portfolio

import "testing"

func TestNextCycles(t *testing.T) {
	tests := []struct {
		in   ModelIdentity
		want ModelIdentity
	}{
		{NextJS, React},
		{React, Tailwind},
		{Tailwind, NextJS},
		{Resume, NextJS},
		{ModelIdentity(42), NextJS},
	}
	for _, tt := range tests {
		if got := Next(tt.in); got != tt.want {
			t.Errorf("Next(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNextNeverReturnsResume(t *testing.T) {
	for _, m := range All() {
		if Next(m) == Resume {
			t.Errorf("Next(%v) returned resume", m)
		}
	}
}

func TestCyclable(t *testing.T) {
	for _, m := range CycleOrder() {
		if !m.Cyclable() {
			t.Errorf("%v should be cyclable", m)
		}
	}
	if Resume.Cyclable() {
		t.Error("resume should not be cyclable")
	}
}

func TestCycleOrderIsCopy(t *testing.T) {
	order := CycleOrder()
	order[0] = Resume
	if CycleOrder()[0] != NextJS {
		t.Error("CycleOrder exposed internal slice")
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(ModelIdentity(-1)); got != NextJS {
		t.Errorf("Normalize(-1) = %v, want nextjs", got)
	}
	if got := Normalize(Resume); got != Resume {
		t.Errorf("Normalize(resume) = %v", got)
	}
}

func TestParseModel(t *testing.T) {
	tests := []struct {
		in     string
		want   ModelIdentity
		wantOK bool
	}{
		{"nextjs", NextJS, true},
		{"Next.js", NextJS, true},
		{" react ", React, true},
		{"TAILWIND", Tailwind, true},
		{"resume", Resume, true},
		{"vue", NextJS, false},
		{"", NextJS, false},
	}
	for _, tt := range tests {
		got, ok := ParseModel(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseModel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStringParses(t *testing.T) {
	for _, m := range All() {
		got, ok := ParseModel(m.String())
		if !ok || got != m {
			t.Errorf("ParseModel(%q) = %v, %v", m.String(), got, ok)
		}
	}
}
