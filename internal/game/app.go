// Package game runs the frame loop: input handling, light rig updates,
// rendering and frame pacing.
package game

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/urosevicvuk/gameGL/internal/config"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/input"
	"github.com/urosevicvuk/gameGL/internal/logging"
	"github.com/urosevicvuk/gameGL/internal/profiling"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

// radiusStep is the per-frame light radius change while Q or E is held.
const radiusStep = 0.1

type App struct {
	window       *glfw.Window
	renderer     *renderer.Renderer
	scene        *scene.Scene
	inputManager *input.Manager
	watcher      *renderer.ShaderWatcher

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames       int
	lastFPSCheck time.Time
}

// NewApp wires the window callbacks and returns the ready-to-run loop.
// The watcher may be nil when shader hot-reload is unavailable.
func NewApp(window *glfw.Window, r *renderer.Renderer, s *scene.Scene, im *input.Manager, watcher *renderer.ShaderWatcher) *App {
	a := &App{
		window:       window,
		renderer:     r,
		scene:        s,
		inputManager: im,
		watcher:      watcher,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}

	im.SetCallbacks(window)
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		r.Camera().HandleMouseMovement(xpos, ypos)
	})
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		r.Resize(width, height)
	})

	return a
}

// Run blocks until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	start := time.Now()
	dt := start.Sub(a.lastTime).Seconds()
	a.lastTime = start

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	a.handleInputActions()
	a.renderer.Camera().Update(dt, a.inputManager)
	a.scene.Update(dt, a.renderer.Camera())

	if a.watcher != nil && a.watcher.Dirty() {
		a.renderer.ReloadShaders()
	}

	a.renderer.Render(a.scene, dt)

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.inputManager.PostUpdate()

	if d := time.Since(start); d > 33*time.Millisecond {
		logging.Debugf("Slow frame: %v (passes %v, glfw %v). Top: %s",
			d, profiling.SumWithPrefix("passes."), profiling.SumWithPrefix("glfw."), profiling.TopN(4))
	}

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		logging.Debugf("FPS: %d", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	a.fpsLimiter.Wait()
}

func (a *App) handleInputActions() {
	im := a.inputManager

	if im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionToggleFlashlight) {
		a.scene.ToggleFlashlight()
		logging.Infof("Flashlight: %v", a.scene.FlashlightOn())
	}
	if im.JustPressed(input.ActionCycleShadowMode) {
		mode := config.CycleShadowMode()
		logging.Infof("Shadow mode: %s", mode)
	}
	if im.JustPressed(input.ActionResetScene) {
		a.scene.Reset()
	}

	// Held keys adjust the radius continuously.
	if im.IsActive(input.ActionRadiusDown) {
		config.AdjustLightRadius(-radiusStep)
	}
	if im.IsActive(input.ActionRadiusUp) {
		config.AdjustLightRadius(radiusStep)
	}

	if scroll := im.ConsumeScroll(); scroll != 0 {
		a.scene.AdjustFlashlightDistance(float32(scroll) * 0.25)
	}
}
