package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.5, -1},
		{0.25, -2},
		{0.0, -100},
	}

	for _, tt := range tests {
		if got := volumeToDb(tt.vol); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("volumeToDb(%f) = %f, want %f", tt.vol, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestSetSFXVolume(t *testing.T) {
	m := New()
	if m.sfxVolLevel != 1.0 {
		t.Errorf("default sfx volume = %f", m.sfxVolLevel)
	}
	m.SetSFXVolume(0.5)
	if m.sfxVolLevel != 0.5 {
		t.Errorf("sfx volume = %f, want 0.5", m.sfxVolLevel)
	}
	m.SetSFXVolume(-1.0)
	if m.sfxVolLevel != 0.0 {
		t.Errorf("sfx volume = %f, want 0.0 (clamped)", m.sfxVolLevel)
	}
}

func TestPlayRequiresInit(t *testing.T) {
	m := New()
	if err := m.PlaySwitch(); err == nil {
		t.Error("PlaySwitch before Init should fail")
	}
	if err := m.PlaySFX([]byte("not a wav")); err == nil {
		t.Error("PlaySFX with garbage should fail")
	}
}

// blipWAV encodes a short blip as 16-bit mono PCM.
func blipWAV(t *testing.T) []byte {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "switch.wav"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: 22050, NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, Blip(format.SampleRate, 440, 880, 20*time.Millisecond), format); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestSetSwitchSound(t *testing.T) {
	m := New()
	if err := m.SetSwitchSound([]byte("RIFF but not really")); err == nil {
		t.Fatal("garbage switch sound should be rejected")
	}
	if m.switchSound != nil {
		t.Error("rejected data replaced the blip")
	}

	data := blipWAV(t)
	if err := m.SetSwitchSound(data); err != nil {
		t.Fatalf("SetSwitchSound(valid wav) = %v", err)
	}
	if len(m.switchSound) != len(data) {
		t.Errorf("stored %d bytes, want %d", len(m.switchSound), len(data))
	}
	// The custom sound still needs an open speaker.
	if err := m.PlaySwitch(); err == nil {
		t.Error("PlaySwitch before Init should fail")
	}

	if err := m.SetSwitchSound(nil); err != nil || m.switchSound != nil {
		t.Errorf("nil should restore the blip, err=%v", err)
	}
}

func TestBlip(t *testing.T) {
	sr := DefaultSampleRate
	s := Blip(sr, 440, 880, 100*time.Millisecond)

	want := sr.N(100 * time.Millisecond)
	buf := make([][2]float64, 512)
	total := 0
	var first, last float64
	for {
		n, ok := s.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if math.Abs(v) > 0.3 {
				t.Fatalf("sample %d = %f out of range", total+i, v)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d not mono", total+i)
			}
			if total+i == 0 {
				first = v
			}
			last = v
		}
		total += n
	}
	if total != want {
		t.Errorf("blip length = %d samples, want %d", total, want)
	}
	if math.Abs(first) > 0.01 || math.Abs(last) > 0.01 {
		t.Errorf("blip does not start/end near silence: %f, %f", first, last)
	}
}
