package scene

import "softraster/internal/mathutil"

// Step sizes for interactive control.
const (
	MoveStep   = 0.1 // world units
	PanStep    = 0.2 // world units
	RotateStep = 10  // degrees
)

// Controls applies user input to a scene. Every camera change re-derives
// the view matrix and the frustum planes.
type Controls struct {
	Scene *Scene
	euler mathutil.Vec3 // degrees, each in [-180, 180]
}

// NewControls starts with the model unrotated.
func NewControls(s *Scene) *Controls {
	return &Controls{Scene: s}
}

// Euler returns the current model rotation in degrees.
func (c *Controls) Euler() mathutil.Vec3 { return c.euler }

// Move translates the eye and target together.
func (c *Controls) Move(d mathutil.Vec3) { c.Scene.Camera.Move(d) }

// Pan moves only the target.
func (c *Controls) Pan(d mathutil.Vec3) { c.Scene.Camera.Pan(d) }

// Rotate adds d degrees to the model's Euler angles and rebuilds the model
// matrix through a quaternion.
func (c *Controls) Rotate(d mathutil.Vec3) {
	c.SetRotation(c.euler.Add(d))
}

// SetRotation sets the model's Euler angles in degrees.
func (c *Controls) SetRotation(euler mathutil.Vec3) {
	c.euler = mathutil.NormalizeEuler(euler)
	c.Scene.Camera.Model = mathutil.RotateQuat(
		mathutil.Deg2Rad(c.euler[0]),
		mathutil.Deg2Rad(c.euler[1]),
		mathutil.Deg2Rad(c.euler[2]),
	)
}

// ToggleLight flips point lighting.
func (c *Controls) ToggleLight() { c.Scene.Lighting = !c.Scene.Lighting }

// ToggleTexture flips texturing.
func (c *Controls) ToggleTexture() { c.Scene.Textured = !c.Scene.Textured }

// ToggleWireframe flips between filled and wireframe drawing.
func (c *Controls) ToggleWireframe() { c.Scene.Wireframe = !c.Scene.Wireframe }

// Action is a single discrete input step.
type Action int

const (
	MoveXNeg Action = iota
	MoveXPos
	MoveYNeg
	MoveYPos
	MoveZNeg
	MoveZPos
	PanXNeg
	PanXPos
	PanYNeg
	PanYPos
	RotateXNeg
	RotateXPos
	RotateYNeg
	RotateYPos
	RotateZNeg
	RotateZPos
	LightToggle
	TextureToggle
	WireframeToggle
)

// Apply performs one step of a. Unknown actions are ignored.
func (c *Controls) Apply(a Action) {
	switch a {
	case MoveXNeg:
		c.Move(mathutil.Vec3{-MoveStep, 0, 0})
	case MoveXPos:
		c.Move(mathutil.Vec3{MoveStep, 0, 0})
	case MoveYNeg:
		c.Move(mathutil.Vec3{0, -MoveStep, 0})
	case MoveYPos:
		c.Move(mathutil.Vec3{0, MoveStep, 0})
	case MoveZNeg:
		c.Move(mathutil.Vec3{0, 0, -MoveStep})
	case MoveZPos:
		c.Move(mathutil.Vec3{0, 0, MoveStep})
	case PanXNeg:
		c.Pan(mathutil.Vec3{-PanStep, 0, 0})
	case PanXPos:
		c.Pan(mathutil.Vec3{PanStep, 0, 0})
	case PanYNeg:
		c.Pan(mathutil.Vec3{0, -PanStep, 0})
	case PanYPos:
		c.Pan(mathutil.Vec3{0, PanStep, 0})
	case RotateXNeg:
		c.Rotate(mathutil.Vec3{-RotateStep, 0, 0})
	case RotateXPos:
		c.Rotate(mathutil.Vec3{RotateStep, 0, 0})
	case RotateYNeg:
		c.Rotate(mathutil.Vec3{0, -RotateStep, 0})
	case RotateYPos:
		c.Rotate(mathutil.Vec3{0, RotateStep, 0})
	case RotateZNeg:
		c.Rotate(mathutil.Vec3{0, 0, -RotateStep})
	case RotateZPos:
		c.Rotate(mathutil.Vec3{0, 0, RotateStep})
	case LightToggle:
		c.ToggleLight()
	case TextureToggle:
		c.ToggleTexture()
	case WireframeToggle:
		c.ToggleWireframe()
	}
}
