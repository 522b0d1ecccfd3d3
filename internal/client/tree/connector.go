package tree

import "math"

// connectorGap is the clearance trimmed from each end of a connector so the
// line stops at the node edge instead of its center.
const connectorGap = 45.0

// Segment is one trimmed connector line in graph coordinates. (X1, Y1) sits
// near the parent, (X2, Y2) near the child.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
}

// Connector returns the trimmed line between the node with the given id and
// its parent. It reports false for the root, for unlinked nodes, and when
// the parent is not part of the graph.
func (g *Graph) Connector(id string) (Segment, bool) {
	child := g.Node(id)
	if child == nil || child.ParentID == "" {
		return Segment{}, false
	}
	parent := g.Node(child.ParentID)
	if parent == nil {
		return Segment{}, false
	}

	// Both endpoints are pulled inward along the center-to-center direction.
	angle := math.Atan2(parent.Y-child.Y, parent.X-child.X)
	dx := math.Cos(angle) * connectorGap
	dy := math.Sin(angle) * connectorGap

	return Segment{
		X1: parent.X - dx,
		Y1: parent.Y - dy,
		X2: child.X + dx,
		Y2: child.Y + dy,
	}, true
}

// Connectors returns the trimmed segments of every linked node, in node
// order.
func (g *Graph) Connectors() []Segment {
	var segments []Segment
	for _, n := range g.Nodes {
		if s, ok := g.Connector(n.ID); ok {
			segments = append(segments, s)
		}
	}
	return segments
}
