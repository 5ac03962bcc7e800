package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"raytracer/pkg/core"
	"raytracer/pkg/output"
	"raytracer/pkg/renderer"
	"raytracer/pkg/scene"
)

// clearLine is a caret return followed by the ANSI erase-line sequence,
// used to redraw the progress line in place.
const clearLine = "\r\x1b[2K"

func main() {
	// Input
	demoName := flag.String("demo", "spheromania", "Demo scene: 'spheres', 'spheromania' or 'github'")
	scenePath := flag.String("scene", "", "Path to a JSON scene descriptor (overrides -demo)")

	// Output
	width := flag.Int("width", 400, "Width of the image in pixels")
	height := flag.Int("height", 225, "Height of the image in pixels")
	outPath := flag.String("output", "", "Path to the output file (default stdout)")
	format := flag.String("format", "ppm", "Output format: 'ppm', 'ppm-raw' or 'png'")
	gamma := flag.Float64("gamma", 2.2, "Value used for gamma correction")

	// Camera overrides
	center := flag.String("center", "", "Camera center as 'x,y,z'")
	target := flag.String("target", "", "Point the camera is looking at, as 'x,y,z'")
	fov := flag.Float64("fov", 0, "Vertical field of view, in degrees")
	aperture := flag.Float64("aperture", -1, "Angular aperture size, in degrees (blur amount)")
	focus := flag.Float64("focus", 0, "Distance between camera center and object in focus")

	// Rendering
	samples := flag.Int("samples", 100, "Samples per pixel (increase for SSAA)")
	bounces := flag.Int("bounces", 10, "Max. amount of bounces per ray")
	seed := flag.Int64("seed", 42, "Root seed for sampling randomness")

	flag.Parse()

	world, setup, err := createScene(*scenePath, *demoName, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := applyCameraOverrides(&setup, *center, *target, *fov, *aperture, *focus); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := setup.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid camera configuration: %v\n", err)
		os.Exit(1)
	}

	camera := renderer.NewCamera(setup)
	camera.SetAntiAliasing(*samples)
	camera.SetBounces(*bounces)
	camera.SetSeed(*seed)
	camera.SetProgress(func(remaining int) {
		fmt.Fprintf(os.Stderr, "%sLines remaining: %d", clearLine, remaining)
	})

	startTime := time.Now()
	img, err := camera.Render(world)
	fmt.Fprintf(os.Stderr, "%sDone in %v.\n", clearLine, time.Since(startTime).Round(time.Millisecond))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := writeImage(img, *outPath, *format, *gamma); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// createScene builds the scene and camera setup, from a JSON descriptor
// when a path is given and from the named demo otherwise
func createScene(scenePath, demoName string, width, height int) (*scene.Scene, renderer.CameraSetup, error) {
	if scenePath != "" {
		return scene.LoadFile(scenePath, width, height)
	}

	var world *scene.Scene
	var setup renderer.CameraSetup
	switch demoName {
	case "spheres":
		world, setup = scene.NewSpheresScene()
	case "spheromania":
		world, setup = scene.NewSpheromaniaScene(time.Now().UnixNano())
	case "github":
		world, setup = scene.NewGithubScene()
	default:
		return nil, renderer.CameraSetup{}, fmt.Errorf("unknown demo scene %q", demoName)
	}

	setup.Width = width
	setup.Height = height
	return world, setup, nil
}

// applyCameraOverrides replaces camera parameters the user set explicitly
func applyCameraOverrides(setup *renderer.CameraSetup, center, target string, fov, aperture, focus float64) error {
	if center != "" {
		point, err := core.ParseVec3(center)
		if err != nil {
			return fmt.Errorf("invalid -center: %w", err)
		}
		setup.LookFrom = point
	}
	if target != "" {
		point, err := core.ParseVec3(target)
		if err != nil {
			return fmt.Errorf("invalid -target: %w", err)
		}
		setup.LookAt = point
	}
	if fov > 0 {
		setup.VFov = fov
	}
	if aperture >= 0 {
		setup.DefocusAngle = aperture
	}
	if focus > 0 {
		setup.FocusDistance = focus
	} else if center != "" || target != "" {
		// Moved camera without an explicit focus: focus on the target
		setup.FocusDistance = setup.LookFrom.Subtract(setup.LookAt).Length()
	}
	return nil
}

// writeImage encodes the image to the chosen file or stdout
func writeImage(img *core.Image, path, format string, gamma float64) error {
	var writer io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer file.Close()
		writer = file
	}

	switch format {
	case "ppm":
		return output.WritePPM(writer, img, gamma)
	case "ppm-raw":
		return output.WriteRawPPM(writer, img, gamma)
	case "png":
		return output.WritePNG(writer, img, gamma)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
