package renderer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"raytracer/pkg/core"
	"raytracer/pkg/material"
)

// Scene is the part of a scene the renderer needs: nearest-hit resolution
// along a ray. Defined here so scene packages can depend on the renderer
// for camera setups without a cycle.
type Scene interface {
	Hit(ray core.Ray, tRange core.Interval) (*material.Hit, bool)
}

// shadowAcneEpsilon excludes the ray's own origin surface from hit
// queries, so a scattered ray cannot immediately re-hit where it started.
const shadowAcneEpsilon = 0.001

// CameraSetup stores the configuration a camera is derived from. It is
// consumed once by NewCamera.
type CameraSetup struct {
	Width         int        // Image width in pixels
	Height        int        // Image height in pixels
	VFov          float64    // Vertical field of view, in degrees
	LookFrom      core.Point // Camera position
	LookAt        core.Point // Point the camera is looking at
	ViewUp        core.Vec3  // Vector pointing upwards from the camera
	DefocusAngle  float64    // Angular aperture size, in degrees
	FocusDistance float64    // Distance from camera to the plane in focus
}

// DefaultCameraSetup returns a 400x225 camera at the origin looking down
// the negative z-axis
func DefaultCameraSetup() CameraSetup {
	lookFrom := core.NewVec3(0, 0, 0)
	lookAt := core.NewVec3(0, 0, -1)
	return CameraSetup{
		Width:         400,
		Height:        225,
		VFov:          45.0,
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		ViewUp:        core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: lookAt.Subtract(lookFrom).Length(),
	}
}

// Validate reports configuration that would silently render as NaN or
// garbage. NewCamera does not call it; boundaries that construct setups
// from user input should.
func (s CameraSetup) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("image dimensions must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.VFov <= 0 || s.VFov >= 180 {
		return fmt.Errorf("vertical fov must be in (0, 180) degrees, got %v", s.VFov)
	}
	if s.LookFrom.Subtract(s.LookAt).NearZero() {
		return errors.New("lookfrom and lookat coincide, view direction is degenerate")
	}
	if s.ViewUp.NearZero() {
		return errors.New("view up vector is zero")
	}
	if s.FocusDistance <= 0 {
		return fmt.Errorf("focus distance must be positive, got %v", s.FocusDistance)
	}
	return nil
}

// Camera holds the derived, immutable viewing geometry plus the sampling
// knobs. Construct one from a CameraSetup via NewCamera; degenerate setups
// are not rejected here and propagate as NaN (see CameraSetup.Validate).
type Camera struct {
	width, height int
	center        core.Point
	pxDeltaU      core.Vec3  // horizontal delta between pixel centers
	pxDeltaV      core.Vec3  // vertical delta between pixel centers
	px00          core.Point // center of the upper-left pixel
	defocusAngle  float64
	defocusDiskU  core.Vec3
	defocusDiskV  core.Vec3

	samplesPerPixel int
	maxBounces      int
	seed            int64
	progress        func(remainingRows int)
}

// NewCamera derives a camera from a setup
func NewCamera(setup CameraSetup) *Camera {
	direction := setup.LookFrom.Subtract(setup.LookAt)

	// Right-handed orthonormal basis in screen-space orientation
	w := direction.Normalize()
	u := setup.ViewUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport dimensions from the vertical fov at the focus distance
	h := math.Tan(setup.VFov / 2 * math.Pi / 180)
	viewportHeight := 2 * h * setup.FocusDistance
	viewportWidth := viewportHeight * float64(setup.Width) / float64(setup.Height)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Multiply(viewportHeight).Negate()

	pxDeltaU := viewportU.Divide(float64(setup.Width))
	pxDeltaV := viewportV.Divide(float64(setup.Height))

	viewportUpperLeft := setup.LookFrom.
		Subtract(w.Multiply(setup.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	px00 := viewportUpperLeft.Add(pxDeltaU.Add(pxDeltaV).Divide(2))

	defocusRadius := setup.FocusDistance * math.Tan(setup.DefocusAngle/2*math.Pi/180)

	return &Camera{
		width:           setup.Width,
		height:          setup.Height,
		center:          setup.LookFrom,
		pxDeltaU:        pxDeltaU,
		pxDeltaV:        pxDeltaV,
		px00:            px00,
		defocusAngle:    setup.DefocusAngle,
		defocusDiskU:    u.Multiply(defocusRadius),
		defocusDiskV:    v.Multiply(defocusRadius),
		samplesPerPixel: 1,
		maxBounces:      1,
		seed:            defaultSeed,
	}
}

// SetAntiAliasing sets the number of samples per pixel. Values below 1
// disable supersampling (a single deterministic center sample).
func (c *Camera) SetAntiAliasing(samples int) {
	if samples < 1 {
		samples = 1
	}
	c.samplesPerPixel = samples
}

// SetBounces sets the maximum ray bounce depth. A budget of 0 makes every
// ray black.
func (c *Camera) SetBounces(bounces int) {
	if bounces < 0 {
		bounces = 0
	}
	c.maxBounces = bounces
}

// SetSeed sets the root seed for per-row sampling generators. The same
// seed reproduces the same image regardless of worker count.
func (c *Camera) SetSeed(seed int64) {
	c.seed = seed
}

// SetProgress installs an observer invoked after each finished row with
// the number of rows still pending. The callback runs on worker
// goroutines and must be safe for concurrent use.
func (c *Camera) SetProgress(fn func(remainingRows int)) {
	c.progress = fn
}

// samplePixel averages samplesPerPixel independent rays through pixel
// (col, row)
func (c *Camera) samplePixel(col, row int, s Scene, random *rand.Rand) core.Color {
	var rgb core.Vec3
	for i := 0; i < c.samplesPerPixel; i++ {
		ray := c.samplingRay(col, row, random)
		rgb = rgb.Add(c.rayColor(ray, s, random))
	}
	return rgb.Divide(float64(c.samplesPerPixel))
}

// samplingRay creates a ray through pixel (col, row), jittered for
// antialiasing and offset across the defocus disk for depth of field
func (c *Camera) samplingRay(col, row int, random *rand.Rand) core.Ray {
	offset := c.samplingOffset(random)
	pxSample := c.px00.
		Add(c.pxDeltaU.Multiply(float64(col) + offset.X)).
		Add(c.pxDeltaV.Multiply(float64(row) + offset.Y))

	origin := c.center
	if c.defocusAngle > 0 {
		disk := core.RandomInUnitDisk(random)
		origin = origin.
			Add(c.defocusDiskU.Multiply(disk.X)).
			Add(c.defocusDiskV.Multiply(disk.Y))
	}

	return core.NewRay(origin, pxSample.Subtract(origin))
}

// samplingOffset returns a uniform jitter in [-0.5, 0.5)² when
// supersampling, and zero otherwise so a single sample hits the exact
// pixel center
func (c *Camera) samplingOffset(random *rand.Rand) core.Vec3 {
	if c.samplesPerPixel > 1 {
		return core.NewVec3(random.Float64()-0.5, random.Float64()-0.5, 0)
	}
	return core.Vec3{}
}

// rayColor evaluates the light a ray gathers. The recursive
// scatter-then-recurse formulation is flattened into a loop that carries
// the attenuation product, bounded by the bounce budget.
func (c *Camera) rayColor(ray core.Ray, s Scene, random *rand.Rand) core.Color {
	throughput := core.NewVec3(1, 1, 1)
	for bounces := c.maxBounces; ; bounces-- {
		if bounces <= 0 {
			// Path budget exhausted: an energy cutoff, not a physical event
			return core.Vec3{}
		}

		hit, ok := s.Hit(ray, core.NewIntervalFrom(shadowAcneEpsilon))
		if !ok {
			return throughput.MultiplyVec(backgroundGradient(ray))
		}

		scattered, ok := hit.Material.Scatter(ray, *hit, random)
		if !ok {
			// Absorbed
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scattered.Attenuation)
		ray = scattered
	}
}

// backgroundGradient blends white and sky blue by the ray's vertical
// direction
func backgroundGradient(ray core.Ray) core.Color {
	a := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	white := core.NewVec3(1, 1, 1).Multiply(1.0 - a)
	blue := core.NewVec3(0.5, 0.7, 1.0).Multiply(a)
	return white.Add(blue)
}
