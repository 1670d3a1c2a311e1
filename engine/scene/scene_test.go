package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-haunted/engine/light"
	"github.com/go-gl/mathgl/mgl64"
)

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) < eps && math.Abs(a[1]-b[1]) < eps && math.Abs(a[2]-b[2]) < eps
}

func TestTransformMatrixOrder(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(1, 2, 3)
	tr.SetRotation(0, math.Pi/2, 0)
	tr.SetScale(2)

	// Local +X scaled by 2, rotated 90° about Y lands on -Z, then translated.
	got := tr.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl64.Vec3{1, 2, 1}
	if !vecNear(got, want, 1e-9) {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestWorldMatrixComposesParents(t *testing.T) {
	house := NewEntity("house", WithPosition(0, 1, 0))
	door := NewEntity("door", WithPosition(0, 1, 2))
	house.Add(door)

	if got := door.WorldPosition(); !vecNear(got, mgl64.Vec3{0, 2, 2}, 1e-12) {
		t.Errorf("door world position = %v, want (0,2,2)", got)
	}

	var visited []string
	var doorWorld mgl64.Mat4
	house.Traverse(func(e *Entity, world mgl64.Mat4) bool {
		visited = append(visited, e.Name())
		if e == door {
			doorWorld = world
		}
		return true
	})
	if len(visited) != 2 || visited[0] != "house" || visited[1] != "door" {
		t.Fatalf("traversal order = %v", visited)
	}
	if !doorWorld.ApproxEqual(door.WorldMatrix()) {
		t.Errorf("traversal world matrix differs from WorldMatrix")
	}
}

func TestAddReparents(t *testing.T) {
	a := NewEntity("a")
	b := NewEntity("b")
	c := NewEntity("c")
	a.Add(c)
	b.Add(c)

	if c.Parent() != b {
		t.Fatalf("parent = %v, want b", c.Parent())
	}
	if len(a.Children()) != 0 {
		t.Errorf("old parent still has %d children", len(a.Children()))
	}
	if b.Child("c") != c {
		t.Error("new parent cannot find child")
	}
}

func TestAddRejectsCycles(t *testing.T) {
	a := NewEntity("a")
	b := NewEntity("b")
	a.Add(b)
	b.Add(a)
	a.Add(a)
	if a.Parent() != nil {
		t.Error("ancestor was attached below its descendant")
	}
	if len(a.Children()) != 1 {
		t.Errorf("a has %d children, want 1", len(a.Children()))
	}
}

func TestSceneFindAndCount(t *testing.T) {
	graves := NewEntity("graves", WithChildren(NewEntity("grave-00"), NewEntity("grave-01")))
	s := NewScene("test", WithEntities(NewEntity("floor"), graves))

	if s.Find("grave-01") == nil {
		t.Fatal("nested entity not found")
	}
	if s.Find("test") != nil {
		t.Error("Find should not return the root")
	}
	if got := s.Count(); got != 4 {
		t.Errorf("Count = %d, want 4", got)
	}
	if !s.Remove(graves) || s.Find("grave-00") != nil {
		t.Error("Remove did not detach the subtree")
	}
}

func TestLightsSkipDisabledAndHidden(t *testing.T) {
	on := NewEntity("on", WithLight(light.NewLight(light.LightTypePoint)), WithPosition(1, 2, 3))
	off := NewEntity("off", WithLight(light.NewLight(light.LightTypePoint, light.WithEnabled(false))))
	hidden := NewEntity("hidden", WithLight(light.NewLight(light.LightTypePoint)))
	hidden.SetVisible(false)

	s := NewScene("lights", WithEntities(on, off, hidden))
	got := s.Lights()
	if len(got) != 1 || got[0].Entity != on {
		t.Fatalf("Lights = %v, want only 'on'", got)
	}
	if p := got[0].Position(); p != [3]float32{1, 2, 3} {
		t.Errorf("light position = %v", p)
	}
}

func TestFog(t *testing.T) {
	s := NewScene("fog", WithFog([3]float32{0.1, 0.2, 0.3}, 0.1))
	f := s.Fog()
	if f == nil || f.Density != 0.1 {
		t.Fatalf("fog = %v", f)
	}
	f.Density = 5
	if s.Fog().Density != 0.1 {
		t.Error("Fog should return a copy")
	}
	if got := f.Factor(0); got != 0 {
		t.Errorf("fog factor at 0 = %v, want 0", got)
	}
	s.SetFog(nil)
	if s.Fog() != nil {
		t.Error("fog not cleared")
	}
}
