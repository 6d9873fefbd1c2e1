package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical game action, not a physical key
type Action int

// Action constants using iota
const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionToggleFlashlight
	ActionRadiusDown
	ActionRadiusUp
	ActionCycleShadowMode
	ActionResetScene
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// Manager maps physical keys to logical actions and tracks per-frame
// pressed/released edges.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	// Accumulated scroll wheel offset since last Consume
	scrollY float64
}

// NewManager creates a Manager with the default key bindings.
func NewManager() *Manager {
	m := &Manager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	m.BindKey(glfw.KeyW, ActionMoveForward)
	m.BindKey(glfw.KeyS, ActionMoveBackward)
	m.BindKey(glfw.KeyA, ActionMoveLeft)
	m.BindKey(glfw.KeyD, ActionMoveRight)
	m.BindKey(glfw.KeyF, ActionToggleFlashlight)
	m.BindKey(glfw.KeyQ, ActionRadiusDown)
	m.BindKey(glfw.KeyE, ActionRadiusUp)
	m.BindKey(glfw.KeyTab, ActionCycleShadowMode)
	m.BindKey(glfw.KeyR, ActionResetScene)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	return m
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key glfw.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// This can be called from a custom key callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	m.mu.RLock()
	actions, exists := m.keyToActions[key]
	m.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	m.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !m.currentState[act] {
				m.justPressed[act] = true
			}
			if !isPressed && m.currentState[act] {
				m.justReleased[act] = true
			}
			m.currentState[act] = isPressed
		}
	}
	m.mu.Unlock()
}

// HandleScroll accumulates a scroll wheel offset.
func (m *Manager) HandleScroll(_, yoff float64) {
	m.mu.Lock()
	m.scrollY += yoff
	m.mu.Unlock()
}

// ConsumeScroll returns the accumulated scroll offset and clears it.
func (m *Manager) ConsumeScroll() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	y := m.scrollY
	m.scrollY = 0
	return y
}

// SetCallbacks wires the GLFW key and scroll callbacks to this manager.
// This should be called once during initialization.
func (m *Manager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		m.HandleScroll(xoff, yoff)
	})
}

// PostUpdate must be called at the end of each frame to clear edge flags.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
