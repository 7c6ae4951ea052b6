package material

import (
	"fmt"
	"strings"

	"github.com/LucasKurosei/ray-tracing/pkg/core"
)

// ScatterRule selects how a surface redirects incoming light
type ScatterRule int

const (
	// Diffuse spawns one jittered child ray per unit of scatter potential
	Diffuse ScatterRule = iota
	// Specular spawns a single mirrored child ray
	Specular
)

func (r ScatterRule) String() string {
	switch r {
	case Diffuse:
		return "diffuse"
	case Specular:
		return "specular"
	default:
		return fmt.Sprintf("ScatterRule(%d)", int(r))
	}
}

// ParseScatterRule converts a rule name ("diffuse", "specular") to a ScatterRule
func ParseScatterRule(name string) (ScatterRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "diffuse", "matt", "lambertian":
		return Diffuse, nil
	case "specular", "metal", "mirror":
		return Specular, nil
	default:
		return 0, fmt.Errorf("unknown scatter rule %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (r ScatterRule) MarshalText() ([]byte, error) {
	if r != Diffuse && r != Specular {
		return nil, fmt.Errorf("invalid scatter rule %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (r *ScatterRule) UnmarshalText(text []byte) error {
	rule, err := ParseScatterRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// Texture is a surface's base color plus its scattering rule
type Texture struct {
	BaseColor core.Color
	Rule      ScatterRule
}

// NewDiffuse creates a diffuse texture
func NewDiffuse(baseColor core.Color) Texture {
	return Texture{BaseColor: baseColor, Rule: Diffuse}
}

// NewSpecular creates a mirror texture
func NewSpecular(baseColor core.Color) Texture {
	return Texture{BaseColor: baseColor, Rule: Specular}
}

// Scatter produces the child rays leaving point for an incoming ray.
// The incoming ray is never modified and the returned slice is freshly allocated.
func (t Texture) Scatter(rayIn core.Ray, point core.Point, normal core.Vec3, sampler core.Sampler) []core.Ray {
	switch t.Rule {
	case Specular:
		return scatterSpecular(rayIn, point, normal)
	default:
		return scatterDiffuse(rayIn, point, normal, sampler)
	}
}
