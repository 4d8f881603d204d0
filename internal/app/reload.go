package app

import (
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/config"
)

// applyReloads drains the config watcher without blocking the frame.
func (a *App) applyReloads() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-a.watcher.Updates:
			if !ok {
				a.watcher = nil
				return
			}
			a.applyConfig(cfg)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			a.log.Warn("config reload failed", zap.Error(err))
		default:
			return
		}
	}
}

// applyConfig applies the live-tunable parts of a reloaded config. Window
// and logging settings need a restart.
func (a *App) applyConfig(cfg *config.Config) {
	a.ctrl.SetTuning(tuningFromConfig(cfg.Animation))
	a.renderer.SetBackground(backgroundColor(cfg.Scene.Background, defaultBackground))
	a.renderer.SetGradient(backgroundGradient(cfg.Scene))
	a.camera.SetDistanceLimits(cfg.Scene.MinDistance, cfg.Scene.MaxDistance)
	a.overlay.showFPS = cfg.Debug.ShowFPS
	a.bounds.reload(cfg.Debug.ShowBounds)
	a.shots.SetOutputDir(cfg.Debug.ScreenshotDir)

	if a.audio != nil {
		a.audio.SetSFXVolume(cfg.Audio.Volume)
		a.audio.SetMuted(!cfg.Audio.Enabled)
		if cfg.Audio.SwitchSound != a.cfg.Audio.SwitchSound {
			a.loadSwitchSound(cfg.Audio.SwitchSound)
		}
	}

	a.cfg.Animation = cfg.Animation
	a.cfg.Scene.Background = cfg.Scene.Background
	a.cfg.Scene.BackgroundTop = cfg.Scene.BackgroundTop
	a.cfg.Resume.URL = cfg.Resume.URL
	a.cfg.Audio = cfg.Audio
	a.cfg.Debug.ShowFPS = cfg.Debug.ShowFPS
	a.cfg.Debug.ScreenshotDir = cfg.Debug.ScreenshotDir

	a.log.Info("config reloaded", zap.String("path", cfg.Source))
}

// boundsToggle is the bounds overlay state. The B key flips it at runtime; a
// reload only overrides it when show_bounds itself changed in the file.
type boundsToggle struct {
	on   bool
	file bool
}

func newBoundsToggle(file bool) boundsToggle {
	return boundsToggle{on: file, file: file}
}

func (b *boundsToggle) toggle() {
	b.on = !b.on
}

func (b *boundsToggle) reload(file bool) {
	if file == b.file {
		return
	}
	b.file = file
	b.on = file
}
