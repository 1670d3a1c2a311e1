package haunted

import (
	"log"

	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

// Decorated surface names, the keys of Materials.
const (
	SurfaceFloor = "floor"
	SurfaceWall  = "wall"
	SurfaceRoof  = "roof"
	SurfaceDoor  = "door"
	SurfaceBush  = "bush"
	SurfaceGrave = "grave"
)

// Materials maps a decorated surface name to its bound material.
type Materials map[string]material.Material

// Get returns the material of a surface, or the default material if the
// surface is unknown.
func (m Materials) Get(surface string) material.Material {
	if mat, ok := m[surface]; ok && mat != nil {
		return mat
	}
	return material.Default()
}

// textureBinding ties one asset to a material slot. arm marks a packed
// occlusion/roughness/metalness map that feeds three slots.
type textureBinding struct {
	id    string
	slot  material.Slot
	arm   bool
	srgb  bool
	tiled bool
}

// surfaceBinding is the full texture and parameter set of a surface.
type surfaceBinding struct {
	name         string
	textures     []textureBinding
	repeat       [2]float32
	wrapS, wrapT texture.WrapMode
	displacement *[2]float32
	transparent  bool
}

// standardSet is the diffuse / ARM / normal triplet shared by the scanned
// surfaces.
func standardSet(prefix string, tiled bool) []textureBinding {
	return []textureBinding{
		{id: prefix + "_diff_1k.jpg", slot: material.SlotColor, srgb: true, tiled: tiled},
		{id: prefix + "_arm_1k.jpg", arm: true, tiled: tiled},
		{id: prefix + "_nor_gl_1k.jpg", slot: material.SlotNormal, tiled: tiled},
	}
}

var surfaceBindings = []surfaceBinding{
	{
		name: SurfaceFloor,
		textures: append([]textureBinding{
			{id: "assets/floor/alpha.jpg", slot: material.SlotAlpha},
			{id: "assets/floor/coast_sand_rocks_02_1k/coast_sand_rocks_02_disp_1k.jpg", slot: material.SlotDisplacement, tiled: true},
		}, standardSet("assets/floor/coast_sand_rocks_02_1k/coast_sand_rocks_02", true)...),
		repeat:       [2]float32{8, 8},
		wrapS:        texture.WrapRepeat,
		wrapT:        texture.WrapRepeat,
		displacement: &[2]float32{0.3, -0.2},
		transparent:  true,
	},
	{
		name:     SurfaceWall,
		textures: standardSet("assets/wall/castle_brick_broken_06", false),
	},
	{
		name:     SurfaceRoof,
		textures: standardSet("assets/roof/roof_slates_02", true),
		repeat:   [2]float32{3, 1},
		wrapS:    texture.WrapRepeat,
	},
	{
		name: SurfaceDoor,
		textures: []textureBinding{
			{id: "assets/door/color.jpg", slot: material.SlotColor, srgb: true},
			{id: "assets/door/alpha.jpg", slot: material.SlotAlpha},
			{id: "assets/door/ambientOcclusion.jpg", slot: material.SlotAmbientOcclusion},
			{id: "assets/door/height.jpg", slot: material.SlotDisplacement},
			{id: "assets/door/normal.jpg", slot: material.SlotNormal},
			{id: "assets/door/metalness.jpg", slot: material.SlotMetalness},
			{id: "assets/door/roughness.jpg", slot: material.SlotRoughness},
		},
		displacement: &[2]float32{0.1, 0.04},
		transparent:  true,
	},
	{
		name:     SurfaceBush,
		textures: standardSet("assets/bush/leaves_forest_ground", true),
		repeat:   [2]float32{2, 1},
		wrapS:    texture.WrapRepeat,
	},
	{
		name:     SurfaceGrave,
		textures: standardSet("assets/grave/plastered_stone_wall", false),
	},
}

// AssetIDs returns every asset identifier the diorama binds, in binding order.
func AssetIDs() []string {
	var ids []string
	for _, sb := range surfaceBindings {
		for _, tb := range sb.textures {
			ids = append(ids, tb.id)
		}
	}
	return ids
}

// BindMaterials loads every surface texture and builds the surface materials.
//
// A surface with any texture that failed to load is bound to
// material.Default() instead of a partially textured material. The load
// errors are returned joined, and are recoverable: the returned Materials is
// always complete.
//
// Parameters:
//   - loader: the asset loader, nil for a loader with no backing files
//
// Returns:
//   - Materials: a material for every decorated surface
//   - error: the joined *texture.AssetLoadError values, nil if every asset loaded
func BindMaterials(loader texture.Loader) (Materials, error) {
	if loader == nil {
		loader = texture.NewLoader(nil)
	}

	textures, loadErr := loader.LoadAll(AssetIDs()...)

	out := make(Materials, len(surfaceBindings))
	for _, sb := range surfaceBindings {
		opts := []material.MaterialBuilderOption{material.WithName(sb.name)}
		complete := true
		for _, tb := range sb.textures {
			tex := textures[tb.id]
			if tex == nil || tex.Fallback() {
				complete = false
				break
			}
			if tb.srgb {
				tex.SetColorSpace(texture.ColorSpaceSRGB)
			}
			if tb.tiled {
				tex.SetRepeat(sb.repeat[0], sb.repeat[1])
				tex.SetWrap(sb.wrapS, sb.wrapT)
			}
			if tb.arm {
				opts = append(opts, material.WithARMTexture(tex))
			} else {
				opts = append(opts, material.WithTexture(tb.slot, tex))
			}
		}
		if !complete {
			log.Printf("[Haunted] surface %s uses the default material", sb.name)
			out[sb.name] = material.Default()
			continue
		}
		if sb.displacement != nil {
			opts = append(opts, material.WithDisplacement(sb.displacement[0], sb.displacement[1]))
		}
		if sb.transparent {
			opts = append(opts, material.WithTransparent(true))
		}
		out[sb.name] = material.NewMaterial(opts...)
	}
	return out, loadErr
}
