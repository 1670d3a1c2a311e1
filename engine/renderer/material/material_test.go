package material

import (
	"encoding/binary"
	"testing"

	"github.com/Carmen-Shannon/oxy-haunted/engine/texture"
)

func TestDefault(t *testing.T) {
	m := Default()
	if m.BaseColor() != [4]float32{1, 1, 1, 1} || m.Roughness() != 1 || m.Metalness() != 0 {
		t.Fatalf("unexpected default factors: %v %v %v", m.BaseColor(), m.Roughness(), m.Metalness())
	}
	for _, s := range Slots() {
		if m.Texture(s) != nil {
			t.Errorf("default material has %s texture bound", s)
		}
	}
	if m.Transparent() || m.Sky() != nil || m.Side() != SideFront {
		t.Error("default material should be opaque, front-sided, non-sky")
	}
}

func TestARMTextureBindsThreeSlots(t *testing.T) {
	arm := texture.NewTexture("arm", 1, 1, []byte{0, 0, 0, 0})
	m := NewMaterial(WithARMTexture(arm))
	for _, s := range []Slot{SlotAmbientOcclusion, SlotRoughness, SlotMetalness} {
		if m.Texture(s) != arm {
			t.Errorf("%s slot not bound to ARM texture", s)
		}
	}
	if m.Texture(SlotColor) != nil {
		t.Error("color slot unexpectedly bound")
	}
}

func TestSkyForcesBackSide(t *testing.T) {
	m := NewMaterial(WithSky(SkyParameters{Turbidity: 10}))
	if m.Side() != SideBack {
		t.Errorf("sky side = %v, want back", m.Side())
	}
	if m.Sky().Turbidity != 10 {
		t.Errorf("turbidity = %v", m.Sky().Turbidity)
	}
}

func TestGPUMaterialParams(t *testing.T) {
	tex := texture.NewTexture("c", 1, 1, []byte{0, 0, 0, 0})
	m := NewMaterial(
		WithTexture(SlotColor, tex),
		WithTexture(SlotDisplacement, tex),
		WithTransparent(true),
		WithDisplacement(0.3, -0.2),
	)
	p := ToGPUMaterialParams(m)
	if p.Size() != 48 {
		t.Fatalf("size = %d, want 48", p.Size())
	}
	wantMask := uint32(1<<uint(SlotColor) | 1<<uint(SlotDisplacement))
	if p.TextureMask != wantMask {
		t.Errorf("texture mask = %b, want %b", p.TextureMask, wantMask)
	}
	if p.Flags != FlagTransparent {
		t.Errorf("flags = %b, want transparent", p.Flags)
	}
	buf := p.Marshal()
	if got := binary.LittleEndian.Uint32(buf[32:36]); got != wantMask {
		t.Errorf("marshaled mask = %b", got)
	}
}
