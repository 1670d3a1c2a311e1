package light

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestNewLightDefaults(t *testing.T) {
	l := NewLight(LightTypePoint)
	if l.Intensity() != 1 || l.Decay() != 2 || l.Distance() != 0 {
		t.Fatalf("unexpected point defaults: intensity=%v decay=%v distance=%v", l.Intensity(), l.Decay(), l.Distance())
	}
	if !l.Enabled() || l.CastsShadows() {
		t.Fatalf("point light should be enabled and not cast shadows by default")
	}
	if l.Shadow().Projection != ShadowProjectionPerspective {
		t.Errorf("point light shadow should be perspective")
	}
	if NewLight(LightTypeDirectional).Shadow().Projection != ShadowProjectionOrthographic {
		t.Errorf("directional light shadow should be orthographic")
	}
}

func TestAmbientNeverCastsShadows(t *testing.T) {
	l := NewLight(LightTypeAmbient, WithCastsShadows(true))
	if l.CastsShadows() {
		t.Fatal("ambient light built with shadows enabled")
	}
	l.SetCastsShadows(true)
	if l.CastsShadows() {
		t.Fatal("ambient light accepted SetCastsShadows(true)")
	}
	if ToGPUShadowData(l, [3]float32{}) != nil {
		t.Fatal("ambient light produced shadow records")
	}
}

func TestShadowOptions(t *testing.T) {
	l := NewLight(LightTypeDirectional,
		WithCastsShadows(true),
		WithShadowMapSize(256, 256),
		WithShadowBounds(-8, 8, 8, -8),
		WithShadowNearFar(1, 20),
	)
	s := l.Shadow()
	if s.MapWidth != 256 || s.MapHeight != 256 {
		t.Errorf("map size = %dx%d, want 256x256", s.MapWidth, s.MapHeight)
	}
	if s.Left != -8 || s.Right != 8 || s.Top != 8 || s.Bottom != -8 {
		t.Errorf("bounds = %v %v %v %v", s.Left, s.Right, s.Top, s.Bottom)
	}
	if s.Near != 1 || s.Far != 20 {
		t.Errorf("near/far = %v/%v, want 1/20", s.Near, s.Far)
	}
	if ts := s.TexelSize(); ts != [2]float32{1.0 / 256, 1.0 / 256} {
		t.Errorf("texel size = %v", ts)
	}
}

func TestDirectionalShadowMapsTargetToCenter(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithCastsShadows(true), WithShadowNearFar(1, 20))
	pos := [3]float32{10, 8, -8}
	records := ToGPUShadowData(l, pos)
	if len(records) != 1 {
		t.Fatalf("directional light produced %d shadow records, want 1", len(records))
	}

	// The target (origin) must land in the middle of the shadow map.
	vp := records[0].LightVP
	x := vp[12]
	y := vp[13]
	w := vp[15]
	if math.Abs(float64(x/w)) > 1e-5 || math.Abs(float64(y/w)) > 1e-5 {
		t.Errorf("origin projects to (%v, %v), want (0, 0)", x/w, y/w)
	}
}

func TestPointShadowHasSixFaces(t *testing.T) {
	l := NewLight(LightTypePoint, WithCastsShadows(true), WithShadowNearFar(0.5, 10))
	records := ToGPUShadowData(l, [3]float32{4, 0, 0})
	if len(records) != 6 {
		t.Fatalf("point light produced %d shadow records, want 6", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].LightVP == records[0].LightVP {
			t.Errorf("face %d duplicates face 0", i)
		}
	}
}

func TestGPULightMarshal(t *testing.T) {
	l := NewLight(LightTypeDirectional, WithHexColor(0x86cdff), WithIntensity(1), WithCastsShadows(true))
	g := ToGPULight(l, [3]float32{0, 10, 0}, 3)
	if g.Size() != 64 {
		t.Fatalf("GPULight size = %d, want 64", g.Size())
	}
	if g.Direction != [3]float32{0, -1, 0} {
		t.Errorf("direction = %v, want (0,-1,0)", g.Direction)
	}

	buf := g.Marshal()
	if len(buf) != 64 {
		t.Fatalf("marshal length = %d, want 64", len(buf))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8])); got != 10 {
		t.Errorf("position.y = %v, want 10", got)
	}
	if got := binary.LittleEndian.Uint32(buf[52:56]); got != 1 {
		t.Errorf("casts shadows = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(buf[56:60]); got != 3 {
		t.Errorf("shadow index = %d, want 3", got)
	}
}

func TestGPULightHeaderMarshal(t *testing.T) {
	h := GPULightHeader{AmbientColor: [3]float32{0.5, 0.25, 1}, LightCount: 5}
	buf := h.Marshal()
	if len(buf) != h.Size() {
		t.Fatalf("marshal length = %d, want %d", len(buf), h.Size())
	}
	if got := binary.LittleEndian.Uint32(buf[12:16]); got != 5 {
		t.Errorf("light count = %d, want 5", got)
	}
}
