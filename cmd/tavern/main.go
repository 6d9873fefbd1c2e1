package main

import (
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/urosevicvuk/gameGL/internal/game"
	"github.com/urosevicvuk/gameGL/internal/graphics"
	"github.com/urosevicvuk/gameGL/internal/graphics/passes"
	"github.com/urosevicvuk/gameGL/internal/graphics/renderer"
	"github.com/urosevicvuk/gameGL/internal/input"
	"github.com/urosevicvuk/gameGL/internal/logging"
	"github.com/urosevicvuk/gameGL/internal/scene"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	defaultScenePath = "assets/scenes/tavern.toml"
	shaderDir        = "assets/shaders"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		logging.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		logging.Fatalf("Failed to create window: %v", err)
	}

	scenePath := defaultScenePath
	if len(os.Args) > 1 {
		scenePath = os.Args[1]
	}

	quad := graphics.NewQuad()
	gbuffer := passes.NewGBufferPass(windowWidth, windowHeight)
	shadow := passes.NewCubeShadowPass()
	ssao := passes.NewSSAOPass(windowWidth, windowHeight, gbuffer, quad)
	lighting := passes.NewLightingPass(gbuffer, ssao, shadow, quad)

	r, err := renderer.New(windowWidth, windowHeight, gbuffer, shadow, ssao, lighting)
	if err != nil {
		logging.Fatalf("Failed to initialize renderer: %v", err)
	}
	defer r.Dispose()
	defer quad.Dispose()

	tavern, err := scene.Load(scenePath)
	if err != nil {
		logging.Fatalf("Failed to load scene: %v", err)
	}
	defer tavern.Dispose()

	watcher, err := renderer.NewShaderWatcher(shaderDir)
	if err != nil {
		logging.Warnf("Shader hot-reload unavailable: %v", err)
		watcher = nil
	} else {
		defer watcher.Close()
	}

	app := game.NewApp(window, r, tavern, input.NewManager(), watcher)
	app.Run()
}
