package geometry_test

import (
	"fmt"

	"github.com/matzehuels/erdgraph/pkg/geometry"
)

func ExampleRect_InsetBy() {
	record := geometry.R(50, 80, 300, 70)
	expanded := record.InsetBy(-40, -40)

	fmt.Println(expanded.Origin, expanded.Size.Width, expanded.Size.Height)
	// Output: (10, 40) 380 150
}

func ExampleRect_IntersectedLine() {
	r := geometry.R(0, 0, 100, 100)
	p, q, ok := r.IntersectedLine(geometry.Pt(50, 50), geometry.Pt(150, 50))

	fmt.Println(p, q, ok)
	// Output: (50, 50) (100, 50) true
}

func ExampleOrthogonalDirection() {
	center := geometry.Pt(200, 115)
	d, _ := geometry.OrthogonalDirection(center, geometry.Pt(350, 115))

	fmt.Println(d)
	// Output: right
}
