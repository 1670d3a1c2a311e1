package haunted

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/Carmen-Shannon/oxy-haunted/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

func assetFS(t *testing.T, skip ...string) fstest.MapFS {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}

	skipped := map[string]bool{}
	for _, s := range skip {
		skipped[s] = true
	}
	fsys := fstest.MapFS{}
	for _, id := range AssetIDs() {
		if !skipped[id] {
			fsys[id] = &fstest.MapFile{Data: buf.Bytes()}
		}
	}
	return fsys
}

func TestBindMaterials(t *testing.T) {
	mats, err := BindMaterials(texture.NewLoader(assetFS(t)))
	if err != nil {
		t.Fatalf("BindMaterials: %v", err)
	}
	for _, name := range []string{SurfaceFloor, SurfaceWall, SurfaceRoof, SurfaceDoor, SurfaceBush, SurfaceGrave} {
		if mats[name] == nil || mats[name].Name() != name {
			t.Errorf("surface %s not bound", name)
		}
	}

	floor := mats[SurfaceFloor]
	if !floor.Transparent() || floor.DisplacementScale() != 0.3 || floor.DisplacementBias() != -0.2 {
		t.Errorf("floor transparent %v displacement %v/%v", floor.Transparent(), floor.DisplacementScale(), floor.DisplacementBias())
	}
	diff := floor.Texture(material.SlotColor)
	if diff.ColorSpace() != texture.ColorSpaceSRGB {
		t.Error("floor color map is not sRGB")
	}
	if diff.Repeat() != [2]float32{8, 8} {
		t.Errorf("floor color repeat = %v, want 8x8", diff.Repeat())
	}
	if s, tm := diff.Wrap(); s != texture.WrapRepeat || tm != texture.WrapRepeat {
		t.Errorf("floor wrap = %v/%v, want repeat on both", s, tm)
	}
	if alpha := floor.Texture(material.SlotAlpha); alpha.Repeat() != [2]float32{1, 1} {
		t.Errorf("floor alpha repeat = %v, want untiled", alpha.Repeat())
	}
	if n := floor.Texture(material.SlotNormal); n.ColorSpace() != texture.ColorSpaceLinear {
		t.Error("floor normal map is not linear")
	}
	arm := floor.Texture(material.SlotRoughness)
	if arm == nil || arm != floor.Texture(material.SlotMetalness) || arm != floor.Texture(material.SlotAmbientOcclusion) {
		t.Error("floor ARM map not bound to all three slots")
	}

	roof := mats[SurfaceRoof].Texture(material.SlotColor)
	if roof.Repeat() != [2]float32{3, 1} {
		t.Errorf("roof repeat = %v, want 3x1", roof.Repeat())
	}
	if s, tm := roof.Wrap(); s != texture.WrapRepeat || tm != texture.WrapClampToEdge {
		t.Errorf("roof wrap = %v/%v, want repeat/clamp", s, tm)
	}

	door := mats[SurfaceDoor]
	if door.Texture(material.SlotMetalness) == door.Texture(material.SlotRoughness) {
		t.Error("door metalness and roughness should be separate maps")
	}
	if door.Texture(material.SlotColor).ColorSpace() != texture.ColorSpaceSRGB {
		t.Error("door color map is not sRGB")
	}
}

func TestBindMaterialsFallsBackPerSurface(t *testing.T) {
	const missing = "assets/door/alpha.jpg"
	mats, err := BindMaterials(texture.NewLoader(assetFS(t, missing)))

	var loadErr *texture.AssetLoadError
	if !errors.As(err, &loadErr) || loadErr.ID != missing {
		t.Fatalf("err = %v, want an AssetLoadError for %s", err, missing)
	}
	if got := mats[SurfaceDoor].Name(); got != "default" {
		t.Errorf("door material = %q, want the default material", got)
	}
	if got := mats[SurfaceWall].Name(); got != SurfaceWall {
		t.Errorf("wall material = %q, want it unaffected", got)
	}
}

func TestBindMaterialsWithoutLoader(t *testing.T) {
	mats, err := BindMaterials(nil)
	if err == nil {
		t.Error("missing assets reported no error")
	}
	if len(mats) != len(surfaceBindings) {
		t.Fatalf("materials = %d, want %d", len(mats), len(surfaceBindings))
	}
	for name, m := range mats {
		if m.Name() != "default" {
			t.Errorf("surface %s = %q, want default", name, m.Name())
		}
	}
}
