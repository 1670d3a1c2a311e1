package renderer

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-haunted/engine/camera"
	"github.com/Carmen-Shannon/oxy-haunted/engine/geometry"
	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-haunted/engine/scene"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
	"github.com/go-gl/mathgl/mgl64"
)

// DrawItem is one visible mesh flattened out of the scene graph.
type DrawItem struct {
	Entity        *scene.Entity
	Geometry      geometry.Geometry
	Material      material.Material
	World         [16]float32
	CastShadow    bool
	ReceiveShadow bool
	Params        material.GPUMaterialParams

	// ViewDistance is the distance from the camera to the item origin.
	ViewDistance float64
}

// Frame is everything a backend needs to draw one frame. It is built on the
// tick goroutine and handed to the backend by value of its slices, so the
// backend never walks the scene graph itself.
type Frame struct {
	Index  uint64
	Width  int
	Height int

	ClearColor [4]float64
	Camera     camera.GPUCameraUniform

	// Background holds sky items, drawn first without depth writes.
	Background []DrawItem
	// Opaque items in traversal order.
	Opaque []DrawItem
	// Transparent items sorted back to front.
	Transparent []DrawItem

	LightHeader light.GPULightHeader
	Lights      []light.GPULight
	Shadows     []light.GPUShadowData

	// Textures lists every distinct texture handle bound by a drawn material.
	Textures []texture.Texture
}

// BuildFrame flattens a scene and camera into a Frame.
//
// Invisible entities prune their subtree. Ambient lights are folded into the
// light header; the remaining enabled lights become GPU light records, capped
// at light.MaxGPULights. Shadow records are assigned in light order.
//
// Parameters:
//   - s: the scene to flatten
//   - cam: the camera the frame is viewed through
//   - width, height: the target size in pixels
//
// Returns:
//   - *Frame: the frame packet
func BuildFrame(s scene.Scene, cam camera.Camera, width, height int) *Frame {
	f := &Frame{
		Width:      width,
		Height:     height,
		ClearColor: [4]float64{0, 0, 0, 1},
		Camera:     camera.NewGPUCameraUniform(cam),
	}

	if fog := s.Fog(); fog != nil {
		f.ClearColor = [4]float64{float64(fog.Color[0]), float64(fog.Color[1]), float64(fog.Color[2]), 1}
		f.Camera.FogColor = fog.Color
		f.Camera.FogDensity = fog.Density
	}

	eye := cam.Position()
	eyeVec := mgl64.Vec3{float64(eye[0]), float64(eye[1]), float64(eye[2])}
	seen := make(map[texture.Texture]struct{})

	s.Traverse(func(e *scene.Entity, world mgl64.Mat4) bool {
		if !e.Visible() {
			return false
		}
		mesh := e.Mesh()
		if mesh == nil {
			return true
		}
		mat := mesh.Material
		if mat == nil {
			mat = material.Default()
		}
		item := DrawItem{
			Entity:        e,
			Geometry:      mesh.Geometry,
			Material:      mat,
			World:         toFloat32(world),
			CastShadow:    e.CastShadow(),
			ReceiveShadow: e.ReceiveShadow(),
			Params:        material.ToGPUMaterialParams(mat),
			ViewDistance:  world.Col(3).Vec3().Sub(eyeVec).Len(),
		}
		switch {
		case mat.Sky() != nil:
			f.Background = append(f.Background, item)
		case mat.Transparent():
			f.Transparent = append(f.Transparent, item)
		default:
			f.Opaque = append(f.Opaque, item)
		}
		for _, slot := range material.Slots() {
			tex := mat.Texture(slot)
			if tex == nil {
				continue
			}
			if _, ok := seen[tex]; ok {
				continue
			}
			seen[tex] = struct{}{}
			f.Textures = append(f.Textures, tex)
		}
		return true
	})

	sort.SliceStable(f.Transparent, func(i, j int) bool {
		return f.Transparent[i].ViewDistance > f.Transparent[j].ViewDistance
	})

	for _, li := range s.Lights() {
		l := li.Light
		if l.Type() == light.LightTypeAmbient {
			c := l.Color()
			k := l.Intensity()
			for i := range 3 {
				f.LightHeader.AmbientColor[i] += c[i] * k
			}
			continue
		}
		if len(f.Lights) >= light.MaxGPULights {
			continue
		}
		pos := li.Position()
		shadowIndex := light.NoShadow
		shadows := light.ToGPUShadowData(l, pos)
		if len(shadows) > 0 {
			shadowIndex = uint32(len(f.Shadows))
			f.Shadows = append(f.Shadows, shadows...)
		}
		f.Lights = append(f.Lights, light.ToGPULight(l, pos, shadowIndex))
	}
	f.LightHeader.LightCount = uint32(len(f.Lights))

	return f
}

// DrawCount returns the number of draw items in the frame.
func (f *Frame) DrawCount() int {
	return len(f.Background) + len(f.Opaque) + len(f.Transparent)
}

// ShadowCasters returns the opaque and transparent items that cast shadows.
func (f *Frame) ShadowCasters() []DrawItem {
	var out []DrawItem
	for _, group := range [][]DrawItem{f.Opaque, f.Transparent} {
		for _, item := range group {
			if item.CastShadow {
				out = append(out, item)
			}
		}
	}
	return out
}

// LightBuffer serializes the header followed by the light records.
//
// Returns:
//   - []byte: header plus one 64-byte record per light
func (f *Frame) LightBuffer() []byte {
	buf := f.LightHeader.Marshal()
	for i := range f.Lights {
		buf = append(buf, f.Lights[i].Marshal()...)
	}
	return buf
}

// ShadowBuffer serializes the shadow camera records.
//
// Returns:
//   - []byte: one record per shadow face, or nil without shadows
func (f *Frame) ShadowBuffer() []byte {
	var buf []byte
	for i := range f.Shadows {
		buf = append(buf, f.Shadows[i].Marshal()...)
	}
	return buf
}

func toFloat32(m mgl64.Mat4) [16]float32 {
	var out [16]float32
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
