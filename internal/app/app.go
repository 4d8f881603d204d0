// Package app runs the portfolio viewer: it owns the window, renderer and
// overlay, routes input to the model switcher and the camera, and drives
// the frame loop.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/browser"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/folio3d/internal/config"
	"github.com/Faultbox/folio3d/internal/engine/audio"
	"github.com/Faultbox/folio3d/internal/engine/camera"
	"github.com/Faultbox/folio3d/internal/engine/debug"
	"github.com/Faultbox/folio3d/internal/engine/input"
	"github.com/Faultbox/folio3d/internal/engine/lighting"
	"github.com/Faultbox/folio3d/internal/engine/picking"
	"github.com/Faultbox/folio3d/internal/engine/renderer"
	"github.com/Faultbox/folio3d/internal/engine/ui2d"
	"github.com/Faultbox/folio3d/internal/engine/window"
	"github.com/Faultbox/folio3d/internal/logger"
	"github.com/Faultbox/folio3d/internal/portfolio"
	"github.com/Faultbox/folio3d/internal/scene"
)

var (
	defaultBackground = [3]float32{0.1, 0.1, 0.14}
	boundsColor       = [4]float32{1, 0.8, 0.2, 1}
	boundsHoverColor  = [4]float32{0.3, 1, 0.4, 1}
)

// App is the viewer instance.
type App struct {
	cfg *config.Config
	log *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	lights   *lighting.Rig

	scene *scene.Scene
	gpu   *scene.GPU

	ui      *ui2d.Renderer
	ctx     *ui2d.Context
	overlay overlay
	resume  *scene.Resume

	ctrl    *portfolio.Controller
	audio   *audio.Manager
	watcher *config.Watcher
	shots   *debug.Screenshotter

	pointer        pointer
	hover          hoverTracker
	bounds         boundsToggle
	running        bool
	screenshotNext bool
}

// New creates the window and every subsystem. Optional pieces (audio,
// config watching, resume file, model overrides) degrade to warnings.
func New(cfg *config.Config) (_ *App, err error) {
	a := &App{
		cfg:    cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		lights: lighting.DefaultRig(),
		shots:  debug.NewScreenshotter(cfg.Debug.ScreenshotDir, "folio"),
		resume: scene.DefaultResume(),
	}
	a.overlay = overlay{showHelp: true, showFPS: cfg.Debug.ShowFPS}
	a.bounds = newBoundsToggle(cfg.Debug.ShowBounds)
	defer func() {
		if err != nil {
			err = multierr.Append(err, a.Close())
		}
	}()

	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer comes after the window so the GL context exists.
	dw, dh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		Background: backgroundColor(cfg.Scene.Background, defaultBackground),
		Gradient:   backgroundGradient(cfg.Scene),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ww, wh := a.window.Size()
	a.ui, err = ui2d.New(ww, wh)
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}
	a.ctx = ui2d.NewContext(a.ui)

	a.camera = camera.NewOrbitCamera(cfg.Scene.FOV, cfg.Scene.Distance, cfg.Scene.MinDistance, cfg.Scene.MaxDistance)

	a.scene = scene.New(scene.Options{
		Overrides: cfg.Scene.Models,
		Logger:    logger.Named("scene"),
	})
	a.gpu, err = a.scene.Upload(a.renderer)
	if err != nil {
		return nil, err
	}

	if cfg.Resume.File != "" {
		if r, rerr := scene.LoadResume(cfg.Resume.File); rerr != nil {
			a.log.Warn("resume file unavailable, using built-in content", zap.Error(rerr))
		} else {
			a.resume = r
		}
	}

	initial, ok := portfolio.ParseModel(cfg.Scene.InitialModel)
	if !ok && cfg.Scene.InitialModel != "" {
		a.log.Warn("unknown initial model", zap.String("model", cfg.Scene.InitialModel), zap.Stringer("using", initial))
	}
	a.ctrl = portfolio.NewController(portfolio.Options{
		Initial:  initial,
		OnChange: a.onModelChange,
		Tuning:   tuningFromConfig(cfg.Animation),
		Logger:   logger.Named("switcher"),
	})

	a.initAudio()
	a.initWatcher()

	a.log.Info("initialized", zap.Stringer("model", a.ctrl.Active()))
	return a, nil
}

func (a *App) initAudio() {
	if !a.cfg.Audio.Enabled {
		return
	}
	m := audio.New()
	if err := m.Init(); err != nil {
		a.log.Warn("audio unavailable, continuing silently", zap.Error(err))
		return
	}
	m.SetSFXVolume(a.cfg.Audio.Volume)
	a.audio = m
	a.loadSwitchSound(a.cfg.Audio.SwitchSound)
}

// loadSwitchSound replaces the built-in blip with a WAV file. An empty path or
// a file that fails to load keeps the blip.
func (a *App) loadSwitchSound(path string) {
	if a.audio == nil {
		return
	}
	var data []byte
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			a.log.Warn("switch sound unavailable, using blip", zap.String("path", path), zap.Error(err))
			data = nil
		}
	}
	if err := a.audio.SetSwitchSound(data); err != nil {
		a.log.Warn("switch sound rejected, using blip", zap.String("path", path), zap.Error(err))
		_ = a.audio.SetSwitchSound(nil)
	}
}

func (a *App) initWatcher() {
	if a.cfg.Source == "" {
		return
	}
	w, err := config.Watch(a.cfg.Source)
	if err != nil {
		a.log.Warn("config hot reload disabled", zap.String("path", a.cfg.Source), zap.Error(err))
		return
	}
	a.watcher = w
	a.log.Debug("watching config", zap.String("path", a.cfg.Source))
}

// Run starts the main loop and returns when the window closes.
func (a *App) Run() error {
	a.running = true

	start := time.Now()
	last := start
	frames := 0
	fpsTimer := start

	a.log.Info("starting main loop")
	for a.running {
		now := time.Now()
		delta := now.Sub(last)
		last = now

		a.applyReloads()

		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.updateHover()

		a.ctrl.Tick(now.Sub(start), delta)

		a.render()
		if a.screenshotNext {
			a.screenshotNext = false
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frames++
		if now.Sub(fpsTimer) >= time.Second {
			a.overlay.fps = frames
			a.log.Debug("fps", zap.Int("count", frames), zap.Duration("dt", delta))
			frames = 0
			fpsTimer = now
		}
	}
	return nil
}

func (a *App) handleEvents() {
	mouse := a.ctx.Input()
	for _, e := range a.input.Events() {
		switch e.Type {
		case input.EventWindowResize:
			a.resize()

		case input.EventKeyDown:
			if !e.Repeat {
				a.handleKey(e)
			}

		case input.EventMouseMove:
			mouse.MouseX, mouse.MouseY = float32(e.MouseX), float32(e.MouseY)
			dx, dy, drag := a.pointer.move(e.MouseX, e.MouseY)
			switch {
			case !drag || a.pointer.onUI:
			case a.pointer.pan:
				a.camera.Pan(float32(dx), float32(dy))
			default:
				a.camera.HandleDrag(float32(dx), float32(dy))
			}

		case input.EventMouseDown:
			if e.Button != input.ButtonLeft && e.Button != input.ButtonRight {
				continue
			}
			if e.Button == input.ButtonLeft {
				mouse.MouseLeftDown = true
			}
			onUI := a.ctx.Captures(float32(e.MouseX), float32(e.MouseY))
			pan := e.Button == input.ButtonRight || e.Shift
			a.pointer.press(e.MouseX, e.MouseY, e.Button, onUI, pan)

		case input.EventMouseUp:
			if e.Button == input.ButtonLeft {
				mouse.MouseLeftDown = false
			}
			onUI, pan := a.pointer.onUI, a.pointer.pan
			if !a.pointer.release(e.MouseX, e.MouseY, e.Button) || e.Button != input.ButtonLeft || pan {
				continue
			}
			if onUI {
				mouse.MouseLeftClicked = true
			} else if a.hover.over {
				a.ctrl.Click()
			}

		case input.EventMouseWheel:
			x, y := a.input.MousePosition()
			if !a.ctx.Captures(float32(x), float32(y)) {
				a.camera.HandleZoom(e.WheelY)
			}

		case input.EventMouseLeave:
			a.setHovered(false)
		}
	}
}

func (a *App) handleKey(e input.Event) {
	act, model := keyAction(e.Key)
	switch act {
	case actionSetModel:
		a.ctrl.SetExternalModel(model)
		a.log.Debug("model selected", zap.Stringer("model", model))
	case actionToggleHelp:
		a.overlay.showHelp = !a.overlay.showHelp
	case actionOpenResume:
		a.openResume()
	case actionScreenshot:
		a.screenshotNext = true
	case actionFullscreen:
		if err := a.window.ToggleFullscreen(); err != nil {
			a.log.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case actionResetCamera:
		a.camera.Reset()
	case actionToggleBounds:
		a.bounds.toggle()
	case actionQuit:
		a.running = false
	}
}

// updateHover re-picks every frame since the model moves under a still
// pointer.
func (a *App) updateHover() {
	if a.pointer.dragging {
		return
	}
	x, y := a.input.MousePosition()
	if a.ctx.Captures(float32(x), float32(y)) {
		a.setHovered(false)
		return
	}
	w, h := a.window.Size()
	inv := a.camera.ViewProjection(float32(w) / float32(max(h, 1))).Inverse()
	ray := picking.ScreenToRay(float32(x), float32(y), float32(w), float32(h), inv)
	active := a.ctrl.Active()
	a.setHovered(a.scene.Pick(active, a.ctrl.Pose(), ray))
}

func (a *App) setHovered(over bool) {
	if !a.hover.update(a.ctrl, over) {
		return
	}
	cursor := window.CursorArrow
	if over && a.ctrl.Active().Cyclable() {
		cursor = window.CursorHand
	}
	a.window.SetCursor(cursor)
}

func (a *App) onModelChange(m portfolio.ModelIdentity) {
	if a.audio == nil {
		return
	}
	if err := a.audio.PlaySwitch(); err != nil {
		a.log.Debug("switch sound failed", zap.Error(err))
	}
}

func (a *App) openResume() {
	url := a.cfg.Resume.URL
	if url == "" {
		return
	}
	if err := browser.OpenURL(url); err != nil {
		a.log.Warn("failed to open resume", zap.String("url", url), zap.Error(err))
		return
	}
	a.log.Info("opened resume", zap.String("url", url))
}

func (a *App) resize() {
	dw, dh := a.window.DrawableSize()
	a.renderer.Resize(dw, dh)
	w, h := a.window.Size()
	a.ui.Resize(w, h)
}

func (a *App) render() {
	a.renderer.Begin()
	view := a.camera.ViewMatrix()
	proj := a.camera.ProjectionMatrix(a.renderer.Aspect())
	a.renderer.SetCamera(view, proj, a.camera.Position())
	a.renderer.SetLights(a.lights)

	state := a.ctrl.State()
	pose := a.ctrl.Pose()
	a.gpu.Draw(a.renderer, state.Active, pose, a.hover.over)
	if a.bounds.on {
		a.drawBounds(state, pose)
	}

	a.ctx.Begin()
	if state.Active == portfolio.Resume {
		if scene.DrawResume(a.ctx, a.resume, float32(pose.Opacity)) {
			a.openResume()
		}
	}
	a.overlay.draw(a.ctx, state)
	a.ctx.End()
}

func (a *App) drawBounds(state portfolio.SwitcherState, pose portfolio.Pose) {
	box := a.scene.Bounds(state.Active, pose)
	color := boundsColor
	if a.hover.over {
		color = boundsHoverColor
	}
	lines := debug.Wireframe(box.Min.Array(), box.Max.Array(), debug.DefaultBoundsPadding)
	if err := a.renderer.DrawLines(lines, color); err != nil {
		a.log.Warn("bounds overlay disabled", zap.Error(err))
		a.bounds.on = false
	}
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases every subsystem. Safe on a partially constructed App.
func (a *App) Close() error {
	a.log.Info("closing")
	var err error
	if a.ctrl != nil {
		a.ctrl.Close()
	}
	if a.watcher != nil {
		err = multierr.Append(err, a.watcher.Close())
		a.watcher = nil
	}
	if a.audio != nil {
		a.audio.Close()
		a.audio = nil
	}
	if a.gpu != nil {
		a.gpu.Close()
		a.gpu = nil
	}
	if a.ui != nil {
		a.ui.Close()
		a.ui = nil
	}
	if a.renderer != nil {
		a.renderer.Close()
		a.renderer = nil
	}
	if a.window != nil {
		a.window.Close()
		a.window = nil
	}
	return err
}
