// Package scene builds hard-coded object lists for the renderer. The core
// only needs the world's Hit capability; everything here is thin glue.
package scene

import (
	"github.com/user/go-raytracer/pkg/geometry"
	"github.com/user/go-raytracer/pkg/renderer"
)

// Scene pairs a world of objects with the camera that frames it
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	World        *geometry.World
}
