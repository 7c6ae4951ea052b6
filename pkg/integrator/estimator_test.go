package integrator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
	"github.com/LucasKurosei/ray-tracing/pkg/geometry"
	"github.com/LucasKurosei/ray-tracing/pkg/material"
)

func newTestSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func colorInUnitRange(c core.Color) bool {
	for _, v := range []float64{c.R, c.G, c.B} {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func TestEstimator_Miss(t *testing.T) {
	estimator := NewEstimator(NewHorizonBackground())
	carried := core.NewColor(0.4, 0.5, 0.6)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"Straight up returns carried color", core.NewVec3(0, 1, 0), carried},
		{"Slightly above horizon", core.NewVec3(1, 0.01, -1), carried},
		{"Straight down is black", core.NewVec3(0, -1, 0), core.Black()},
		{"Exactly horizontal is black", core.NewVec3(1, 0, 0), core.Black()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction, carried, 4)
			color, err := estimator.RayColor(ray, geometry.World{}, newTestSampler(), 4)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if color != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, color)
			}
		})
	}
}

func TestEstimator_DiffuseFloorOpenSky(t *testing.T) {
	floorColor := core.NewColor(0.7, 0.7, 0.7)
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -500.5, 0), 500, material.NewDiffuse(floorColor)),
	}
	estimator := NewEstimator(NewHorizonBackground())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), core.White(), 16)
	color, err := estimator.RayColor(ray, world, newTestSampler(), 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Every child leaves the top of the floor upward and sees the sky
	if color.ToVec3().Subtract(floorColor.ToVec3()).Length() > 1e-12 {
		t.Errorf("Expected %+v, got %+v", floorColor, color)
	}
}

func TestEstimator_DiffuseFloorNoSky(t *testing.T) {
	floorColor := core.NewColor(0.7, 0.7, 0.7)
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -500.5, 0), 500, material.NewDiffuse(floorColor)),
		// A ceiling hides the sky from every bounce
		geometry.NewSphere(core.NewVec3(0, 502, 0), 500, material.NewDiffuse(core.NewColor(0.9, 0.9, 0.9))),
	}
	estimator := NewEstimator(NewHorizonBackground())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), core.White(), 16)
	color, err := estimator.RayColor(ray, world, newTestSampler(), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !(color.R < floorColor.R && color.G < floorColor.G && color.B < floorColor.B) {
		t.Errorf("Expected a color strictly darker than %+v, got %+v", floorColor, color)
	}
	if !colorInUnitRange(color) {
		t.Errorf("Color %+v outside [0,1]", color)
	}
}

func TestEstimator_Mirror(t *testing.T) {
	mirrorColor := core.NewColor(0.8, 0.6, 0.4)
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -2, 0), 1, material.NewSpecular(mirrorColor)),
	}
	estimator := NewEstimator(NewHorizonBackground())

	// Straight down onto the top of the mirror, reflected straight back up
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), core.White(), 1)
	color, err := estimator.RayColor(ray, world, newTestSampler(), 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if color.ToVec3().Subtract(mirrorColor.ToVec3()).Length() > 1e-12 {
		t.Errorf("Expected %+v, got %+v", mirrorColor, color)
	}

	// A drained ray is absorbed by the mirror
	drained := ray.WithScatterPotential(0)
	color, err = estimator.RayColor(drained, world, newTestSampler(), 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if color != core.Black() {
		t.Errorf("Expected black for a drained ray, got %+v", color)
	}
}

func TestEstimator_DepthExhaustionStillResolvesOneBounce(t *testing.T) {
	floorColor := core.NewColor(0.5, 0.5, 0.5)
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -500.5, 0), 500, material.NewDiffuse(floorColor)),
	}
	estimator := NewEstimator(NewHorizonBackground())

	// With no budget left the children cannot branch, but they still see the sky
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), core.White(), 4)
	color, err := estimator.RayColor(ray, world, newTestSampler(), 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if color.ToVec3().Subtract(floorColor.ToVec3()).Length() > 1e-12 {
		t.Errorf("Expected %+v, got %+v", floorColor, color)
	}
}

func TestEstimator_EnergyViolation(t *testing.T) {
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -2, 0), 1, material.NewSpecular(core.NewColor(1.2, 0.5, 0.5))),
	}
	estimator := NewEstimator(NewHorizonBackground())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0), core.White(), 1)
	_, err := estimator.RayColor(ray, world, newTestSampler(), 4)
	if !errors.Is(err, core.ErrEnergyConservation) {
		t.Errorf("Expected ErrEnergyConservation, got %v", err)
	}
}

func TestEstimator_TerminatesInRandomScenes(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	sampler := core.NewRandomSampler(random)

	for scene := 0; scene < 10; scene++ {
		world := make(geometry.World, 0, 6)
		for i := 0; i < 6; i++ {
			c := core.NewColor(random.Float64(), random.Float64(), random.Float64())
			texture := material.NewDiffuse(c)
			if random.Intn(2) == 0 {
				texture = material.NewSpecular(c)
			}
			center := core.NewVec3(random.Float64()*4-2, random.Float64()*4-2, 2+random.Float64()*4)
			world = append(world, geometry.NewSphere(center, 0.2+random.Float64(), texture))
		}

		for depth := 0; depth <= 3; depth++ {
			dir := core.NewVec3(random.Float64()*2-1, random.Float64()*2-1, 1)
			ray := core.NewRay(core.NewVec3(0, 0, 0), dir, core.White(), 4)
			color, err := NewEstimator(NewHorizonBackground()).RayColor(ray, world, sampler, depth)
			if err != nil {
				t.Fatalf("Scene %d depth %d: unexpected error: %v", scene, depth, err)
			}
			if !colorInUnitRange(color) {
				t.Errorf("Scene %d depth %d: color %+v outside [0,1]", scene, depth, color)
			}
		}
	}
}

func TestEstimator_Deterministic(t *testing.T) {
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -500.5, 0), 500, material.NewDiffuse(core.NewColor(0.7, 0.7, 0.7))),
		geometry.NewSphere(core.NewVec3(0, 0, 2), 0.5, material.NewDiffuse(core.NewColor(0.5, 0, 1))),
	}
	estimator := NewEstimator(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.1, -0.1, 1), core.White(), 4)

	a, errA := estimator.RayColor(ray, world, newTestSampler(), 3)
	b, errB := estimator.RayColor(ray, world, newTestSampler(), 3)
	if errA != nil || errB != nil {
		t.Fatalf("Unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("Same seed produced different colors: %+v vs %+v", a, b)
	}
}
