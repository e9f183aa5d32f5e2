package graph_test

import (
	"fmt"

	"github.com/matzehuels/erdgraph/pkg/graph"
	"github.com/matzehuels/erdgraph/pkg/layout"
	"github.com/matzehuels/erdgraph/pkg/scene"
)

func ExampleFromDocument() {
	doc := scene.New()
	rec := scene.DefaultRecord()
	rec.Header = &scene.TextSpan{Text: "users"}
	users := doc.AddRecord(rec)
	doc.AddField(users, scene.DefaultField("id"))

	res := layout.New(layout.DefaultConfig()).Run(doc, false)
	l, err := graph.FromDocument(doc, res.ViewBox)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	r := l.Records[0]
	fmt.Printf("%s at (%g, %g) size %gx%g\n", r.Label, r.X, r.Y, r.Width, r.Height)
	for _, a := range r.Fields[0].Anchors {
		fmt.Printf("  %s (%g, %g)\n", a.Side, a.X, a.Y)
	}
	// Output:
	// users at (50, 80) size 300x35
	//   top (200, 80)
	//   right (350, 97.5)
	//   bottom (200, 115)
	//   left (50, 97.5)
}

func ExampleFromDocument_notLaidOut() {
	doc := scene.New()
	doc.AddRecord(scene.DefaultRecord())

	_, err := graph.FromDocument(doc, layout.New(layout.DefaultConfig()).PlaceNodes(doc.Clone()))
	fmt.Println(err)
	// Output: NOT_LAID_OUT: record 1 () has no position
}
