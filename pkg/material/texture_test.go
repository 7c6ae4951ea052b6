package material

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

func TestParseScatterRule(t *testing.T) {
	tests := []struct {
		input    string
		expected ScatterRule
		wantErr  bool
	}{
		{"diffuse", Diffuse, false},
		{"Diffuse", Diffuse, false},
		{" matt ", Diffuse, false},
		{"specular", Specular, false},
		{"metal", Specular, false},
		{"glass", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rule, err := ParseScatterRule(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if rule != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, rule)
			}
		})
	}
}

func TestScatterRule_JSON(t *testing.T) {
	var cfg struct {
		Rule ScatterRule `json:"rule"`
	}
	if err := json.Unmarshal([]byte(`{"rule":"specular"}`), &cfg); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Rule != Specular {
		t.Errorf("Expected specular, got %v", cfg.Rule)
	}

	if err := json.Unmarshal([]byte(`{"rule":"plastic"}`), &cfg); err == nil {
		t.Error("Expected error for unknown rule")
	}
}

func TestDiffuse_ScatterCount(t *testing.T) {
	texture := NewDiffuse(core.NewColor(0.7, 0.7, 0.7))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	normal := core.NewVec3(0, 1, 0)
	point := core.NewVec3(0, 0, 0)

	for _, k := range []int{0, 1, 4, 16} {
		ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0), core.White(), k)
		scattered := texture.Scatter(ray, point, normal, sampler)
		if len(scattered) != k {
			t.Errorf("Potential %d: expected %d child rays, got %d", k, k, len(scattered))
		}
	}
}

func TestDiffuse_ScatterDirections(t *testing.T) {
	texture := NewDiffuse(core.NewColor(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	normal := core.NewVec3(0, 0, 1)
	point := core.NewVec3(1, 2, 3)
	ray := core.NewRay(core.NewVec3(1, 2, 4), core.NewVec3(0, 0, -1), core.NewColor(0.3, 0.3, 0.3), 64)

	for i, child := range texture.Scatter(ray, point, normal, sampler) {
		// (d - n) must lie inside the ball of radius DiffuseJitter
		offset := child.Direction.Subtract(normal)
		if offset.Length() >= DiffuseJitter {
			t.Errorf("Child %d offset %v outside jitter ball", i, offset)
		}
		// jitter radius 0.5 keeps every child above the surface
		if child.Direction.Dot(normal) <= 0 {
			t.Errorf("Child %d points below the surface: %v", i, child.Direction)
		}
		if child.Origin != point {
			t.Errorf("Child %d should start at the hit point, got %v", i, child.Origin)
		}
		if child.Color != core.White() {
			t.Errorf("Child %d should carry a neutral color, got %+v", i, child.Color)
		}
		if child.ScatterPotential != 1 {
			t.Errorf("Child %d should have potential 1, got %d", i, child.ScatterPotential)
		}
	}

	if ray.ScatterPotential != 64 || ray.Color != core.NewColor(0.3, 0.3, 0.3) {
		t.Errorf("Incoming ray was modified: %+v", ray)
	}
}

func TestSpecular_Scatter(t *testing.T) {
	texture := NewSpecular(core.NewColor(0.9, 0.9, 0.9))
	normal := core.NewVec3(0, 0, 1)
	point := core.NewVec3(0, 0, 0)
	incoming := core.NewVec3(0, -1, -1).Normalize()

	tests := []struct {
		name      string
		potential int
		expected  int
	}{
		{"Drained ray is absorbed", 0, 0},
		{"Negative potential is absorbed", -3, 0},
		{"Single potential reflects", 1, 1},
		{"Large potential still reflects once", 16, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 1, 1), incoming, core.White(), tt.potential)
			scattered := texture.Scatter(ray, point, normal, nil)
			if len(scattered) != tt.expected {
				t.Fatalf("Expected %d child rays, got %d", tt.expected, len(scattered))
			}
			if tt.expected == 0 {
				return
			}

			child := scattered[0]
			expected := core.NewVec3(0, -1, 1).Normalize()
			if child.Direction.Subtract(expected).Length() > 1e-10 {
				t.Errorf("Perfect reflection failed: expected %v, got %v", expected, child.Direction)
			}
			if math.Abs(child.Direction.Dot(normal)+incoming.Dot(normal)) > 1e-10 {
				t.Error("reflect(d, n)·n should equal -d·n")
			}
			if child.Origin != point || child.Color != core.White() {
				t.Errorf("Unexpected child ray %+v", child)
			}
		})
	}
}
