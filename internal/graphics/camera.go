package graphics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/urosevicvuk/gameGL/internal/input"
)

const (
	// PitchLimit constrains pitch to avoid gimbal flip at the poles.
	PitchLimit = 89.0

	defaultSpeed       = 5.0
	defaultSensitivity = 0.1
)

// Camera is a first-person fly camera. It owns its own state; callers
// pass it around explicitly instead of reaching for globals.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Speed       float32
	Sensitivity float32

	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	firstMouse bool
	lastMouseX float64
	lastMouseY float64
}

// NewCamera creates a camera at standing eye height looking down -Z.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{0.0, 1.6, 5.0},
		Yaw:         -90.0,
		Pitch:       0.0,
		Speed:       defaultSpeed,
		Sensitivity: defaultSensitivity,
		FOV:         60.0,
		AspectRatio: float32(width) / float32(height),
		NearPlane:   0.1,
		FarPlane:    100.0,
		firstMouse:  true,
	}
}

// SetViewport updates the aspect ratio after a window resize.
func (c *Camera) SetViewport(width, height int) {
	if height == 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// HandleMouseMovement consumes an absolute cursor position from GLFW and
// applies the delta to yaw/pitch.
func (c *Camera) HandleMouseMovement(xpos, ypos float64) {
	if c.firstMouse {
		c.lastMouseX = xpos
		c.lastMouseY = ypos
		c.firstMouse = false
		return
	}

	xoffset := float32(xpos - c.lastMouseX)
	yoffset := float32(c.lastMouseY - ypos) // window Y grows downward
	c.lastMouseX = xpos
	c.lastMouseY = ypos

	c.ApplyLook(xoffset, yoffset)
}

// ResetMouse makes the next cursor event re-anchor instead of producing a
// large spurious delta (used after cursor recapture).
func (c *Camera) ResetMouse() {
	c.firstMouse = true
}

// ApplyLook applies a raw look delta scaled by sensitivity, constraining
// pitch to [-PitchLimit, PitchLimit].
func (c *Camera) ApplyLook(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity

	if c.Pitch > PitchLimit {
		c.Pitch = PitchLimit
	}
	if c.Pitch < -PitchLimit {
		c.Pitch = -PitchLimit
	}
}

// Update moves the camera from held movement actions.
func (c *Camera) Update(dt float64, im *input.Manager) {
	step := c.Speed * float32(dt)
	front := c.Front()
	right := c.Right()

	if im.IsActive(input.ActionMoveForward) {
		c.Position = c.Position.Add(front.Mul(step))
	}
	if im.IsActive(input.ActionMoveBackward) {
		c.Position = c.Position.Sub(front.Mul(step))
	}
	if im.IsActive(input.ActionMoveLeft) {
		c.Position = c.Position.Sub(right.Mul(step))
	}
	if im.IsActive(input.ActionMoveRight) {
		c.Position = c.Position.Add(right.Mul(step))
	}
}

// Front returns the unit view direction derived from yaw/pitch.
func (c *Camera) Front() mgl32.Vec3 {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	return mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
}

// Right returns the unit right vector.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(mgl32.Vec3{0, 1, 0}).Normalize()
}

// Up returns the unit up vector.
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// ViewMatrix returns the camera's view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	front := c.Front()
	return mgl32.LookAtV(c.Position, c.Position.Add(front), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the camera's perspective projection matrix.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}
