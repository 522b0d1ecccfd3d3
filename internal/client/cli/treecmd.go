package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/Kisalay21/familytree/internal/client/tree"
)

// Tree prints the positioned ancestry graph, one generation per block,
// oldest generation first.
func (a *App) Tree(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	g := tree.Layout(p)

	nodes := make([]tree.Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Y != nodes[j].Y {
			return nodes[i].Y < nodes[j].Y
		}
		return nodes[i].X < nodes[j].X
	})

	lastY := nodes[0].Y
	for _, n := range nodes {
		if n.Y != lastY {
			fmt.Println()
			lastY = n.Y
		}
		name := n.Name
		if n.IsRoot {
			name = n.FullName
		}
		side := ""
		if n.IsPaternal {
			side = " [paternal]"
		}
		if n.IsMaternal {
			side = " [maternal]"
		}
		fmt.Printf("  (%6.0f,%5.0f) %s — %s%s\n", n.X, n.Y, name, n.Relation, side)
	}

	segments := g.Connectors()
	if len(segments) > 0 {
		fmt.Printf("\n%d connector(s):\n", len(segments))
		for _, s := range segments {
			fmt.Printf("  (%.0f,%.0f) -> (%.0f,%.0f)\n", s.X1, s.Y1, s.X2, s.Y2)
		}
	}
	return nil
}
