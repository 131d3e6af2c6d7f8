package extension_test

import (
	"fmt"

	"github.com/go-drift/edgeframe/pkg/anchor"
	"github.com/go-drift/edgeframe/pkg/extension"
	"github.com/go-drift/edgeframe/pkg/geometry"
	"github.com/go-drift/edgeframe/pkg/view"
)

// Example extends a bar's top edge to the screen behind a status inset and
// attaches a hairline separator to its bottom edge.
func Example() {
	extension.Configure(extension.Config{System: anchor.NewSystem()})

	screen := view.New()
	screen.SetBounds(geometry.RectFromLTWH(0, 0, 400, 800))

	bar := view.New()
	bar.SetBounds(geometry.Rect{Left: 0, Top: 20, Right: 400, Bottom: 64})
	screen.AddSubview(bar)

	ext := extension.For(bar)
	ext.SetExtendedEdges(geometry.NewEdgeSet(geometry.EdgeTop))
	ext.SetSeparatorEdge(geometry.EdgeBottom)
	extension.System().Layout()

	region := ext.Region().Frame().Rect()
	fmt.Printf("extended: %v\n", ext.ExtendedEdges())
	fmt.Printf("region: %g,%g %gx%g\n", region.Left, region.Top, region.Width(), region.Height())

	// Output:
	// extended: {top}
	// region: 0,0 400x64
}
