package quadgraph

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewViewport(t *testing.T) {
	v := NewViewport(800, 600, 100)
	if v.Left != -4 || v.Right != 4 || v.Top != -3 || v.Bottom != 3 {
		t.Errorf("bounds = (%v, %v, %v, %v), want (-4, 4, -3, 3)", v.Left, v.Right, v.Top, v.Bottom)
	}
	if !(v.Left < v.Right) || !(v.Top < v.Bottom) {
		t.Error("bounds are not ordered")
	}
}

func TestViewport_ZoomClamp(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"zoom in", 37, MaxZoom},
		{"zoom out", -23, MinZoom},
		{"huge in", 1e9, MaxZoom},
		{"huge out", -1e9, MinZoom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(640, 480, DefaultZoom)
			for i := 0; i < 100; i++ {
				v = v.AddZoom(tt.delta)
				if v.Zoom < MinZoom || v.Zoom > MaxZoom {
					t.Fatalf("step %d: Zoom = %v, outside [%v, %v]", i, v.Zoom, MinZoom, MaxZoom)
				}
			}
			if v.Zoom != tt.want {
				t.Errorf("Zoom = %v, want %v", v.Zoom, tt.want)
			}
		})
	}

	if z := NewViewport(10, 10, 1).Zoom; z != MinZoom {
		t.Errorf("NewViewport zoom 1 = %v, want %v", z, MinZoom)
	}
	if z := NewViewport(10, 10, math.NaN()).Zoom; z != DefaultZoom {
		t.Errorf("NewViewport zoom NaN = %v, want %v", z, DefaultZoom)
	}
}

func TestViewport_ZoomRecomputesBounds(t *testing.T) {
	v := NewViewport(800, 600, 100).SetZoom(200)
	if v.Right != 2 || v.Bottom != 1.5 {
		t.Errorf("after SetZoom(200): Right = %v, Bottom = %v; want 2, 1.5", v.Right, v.Bottom)
	}
	v = v.Resize(400, 400)
	if v.Right != 1 || v.Top != -1 {
		t.Errorf("after Resize: Right = %v, Top = %v; want 1, -1", v.Right, v.Top)
	}
}

func TestViewport_ValueSemantics(t *testing.T) {
	v := NewViewport(100, 100, 50)
	moved := v.MoveCenter(3, 4)
	if v.CenterX != 0 || v.CenterY != 0 {
		t.Error("MoveCenter modified the receiver")
	}
	if moved.CenterX != 3 || moved.CenterY != 4 {
		t.Errorf("center = (%v, %v), want (3, 4)", moved.CenterX, moved.CenterY)
	}
	if moved.MinX() != 2 || moved.MaxY() != 5 {
		t.Errorf("MinX = %v, MaxY = %v; want 2, 5", moved.MinX(), moved.MaxY())
	}
}

func TestViewport_ScreenToWorld(t *testing.T) {
	tests := []struct {
		name         string
		flipX, flipY bool
		sx, sy       float64
		want         gg.Point
	}{
		{"center", false, false, 400, 300, gg.Pt(1, 2)},
		{"right and up", false, false, 500, 200, gg.Pt(2, 3)},
		{"flip x", true, false, 500, 200, gg.Pt(0, 3)},
		{"flip y", false, true, 500, 200, gg.Pt(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(800, 600, 100).SetCenter(1, 2)
			v.FlipX, v.FlipY = tt.flipX, tt.flipY
			got := v.ScreenToWorld(tt.sx, tt.sy)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("ScreenToWorld(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}
			back := v.WorldToScreen(got)
			if math.Abs(back.X-tt.sx) > 1e-9 || math.Abs(back.Y-tt.sy) > 1e-9 {
				t.Errorf("WorldToScreen(%v) = %v, want (%v, %v)", got, back, tt.sx, tt.sy)
			}
		})
	}
}

func TestViewport_ContainsY(t *testing.T) {
	v := Viewport{Left: -5, Right: 5, Top: -5, Bottom: 5, Zoom: 100, CenterY: 1}
	for y, want := range map[float64]bool{-4: true, 6: true, -4.5: false, 6.1: false, math.NaN(): false} {
		if got := v.ContainsY(y); got != want {
			t.Errorf("ContainsY(%v) = %v, want %v", y, got, want)
		}
	}
}
