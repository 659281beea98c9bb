// Package gem generates the procedural gemstone mesh shown by the viewer.
// The stone is a simple brilliant-style cut: a flat table, a ring of crown
// facets, a thin girdle band and a pavilion tapering to a culet point.
package gem

import (
	"math"

	"github.com/cymmbal/demo-gems/pkg/geometry"
)

// Cut describes the proportions of a gem. All lengths are in scene units.
type Cut struct {
	Facets        int     // facets around the girdle
	Radius        float64 // girdle radius
	TableRadius   float64 // radius of the flat top
	CrownHeight   float64 // girdle to table
	GirdleHeight  float64 // thickness of the girdle band
	PavilionDepth float64 // girdle to culet
}

// DefaultCut returns proportions loosely based on a round brilliant
func DefaultCut() Cut {
	return Cut{
		Facets:        16,
		Radius:        1.0,
		TableRadius:   0.55,
		CrownHeight:   0.35,
		GirdleHeight:  0.06,
		PavilionDepth: 0.9,
	}
}

// Model is a generated gem mesh
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// TriangleCount returns the number of facet triangles in the mesh
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// SurfaceArea returns the total facet area
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// Generate builds a gem mesh from the given cut. Facet winding is
// counter-clockwise seen from outside, so normals point away from the stone.
func Generate(name string, cut Cut) *Model {
	n := cut.Facets
	if n < 3 {
		n = 3
	}

	ring := func(radius, y float64) []geometry.Vector3 {
		points := make([]geometry.Vector3, n)
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			points[i] = geometry.Vector3{
				X: radius * math.Sin(a),
				Y: y,
				Z: radius * math.Cos(a),
			}
		}
		return points
	}

	half := cut.GirdleHeight / 2
	table := ring(cut.TableRadius, half+cut.CrownHeight)
	upper := ring(cut.Radius, half)
	lower := ring(cut.Radius, -half)

	tableCenter := geometry.Vector3{Y: half + cut.CrownHeight}
	culet := geometry.Vector3{Y: -half - cut.PavilionDepth}

	m := &Model{Name: name}
	for i := 0; i < n; i++ {
		j := (i + 1) % n

		// table fan
		m.Triangles = append(m.Triangles,
			geometry.NewTriangle(tableCenter, table[i], table[j]))

		// crown facet, split into two triangles
		m.Triangles = append(m.Triangles,
			geometry.NewTriangle(upper[i], upper[j], table[j]),
			geometry.NewTriangle(upper[i], table[j], table[i]))

		// girdle band
		m.Triangles = append(m.Triangles,
			geometry.NewTriangle(lower[i], lower[j], upper[j]),
			geometry.NewTriangle(lower[i], upper[j], upper[i]))

		// pavilion facet down to the culet
		m.Triangles = append(m.Triangles,
			geometry.NewTriangle(lower[i], culet, lower[j]))
	}
	return m
}
