package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-motionblur-raytracer/pkg/renderer"
)

var ErrUnknownScene = errors.New("scene: unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Identifier accepted by Create
	DisplayName string // Human readable name
	Description string
}

type sceneFactory struct {
	description string
	build       func(seed int64, cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]sceneFactory{
	"random": {
		description: "Ground, three large spheres and a grid of small bouncing spheres",
		build:       NewRandomScene,
	},
	"simple": {
		description: "Ground and the three large spheres only",
		build: func(_ int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewSimpleScene(cameraOverrides...)
		},
	},
	"grid": {
		description: "10x10 grid of colored metal spheres, alternate rows bouncing",
		build: func(_ int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewSphereGridScene(10, cameraOverrides...)
		},
	},
	"empty": {
		description: "No objects, sky gradient only",
		build: func(_ int64, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewEmptyScene(cameraOverrides...)
		},
	},
}

// Names returns the identifiers of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns every built-in scene sorted by identifier
func List() []SceneInfo {
	var scenes []SceneInfo
	for _, name := range Names() {
		scenes = append(scenes, SceneInfo{
			ID:          name,
			DisplayName: titleCase(name),
			Description: builtinScenes[name].description,
		})
	}
	return scenes
}

// Create builds the named scene. Seeded scenes are reproducible; the others ignore seed.
func Create(name string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	factory, ok := builtinScenes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return factory.build(seed, cameraOverrides...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
