// Package tree computes the positioned ancestry graph for a heritage
// record. Layout is pure and deterministic: the same profile always yields
// the same nodes in the same order, so callers can diff or cache results.
package tree

import (
	"fmt"
	"math"
	"strings"

	"github.com/Kisalay21/familytree/internal/client/models"
)

// Geometry of the graph. Y grows downward, so ancestor generations sit at
// negative Y above the root.
const (
	levelY  = -120.0 // vertical distance between generations
	spreadX = 220.0  // horizontal distance between father and mother

	grandOffset      = 80.0  // sibling offset of grandparents from their child
	greatGrandOffset = 140.0 // sibling offset of great-grandparents

	extraRadiusX = 160.0 // ellipse of unlinked immediate family below the root
	extraRadiusY = 80.0
	extraDropY   = 100.0
)

// Well-known node ids.
const (
	NodeRoot   = "root"
	NodeFather = "father"
	NodeMother = "mother"
	NodePatGF  = "patGF"
	NodePatGM  = "patGM"
	NodeMatGF  = "matGF"
	NodeMatGM  = "matGM"
	NodePatGGF = "patGGF"
	NodePatGGM = "patGGM"
	NodeMatGGF = "matGGF"
	NodeMatGGM = "matGGM"
)

// Node is one positioned member of the ancestry graph. ParentID is empty for
// the root and for unlinked extra family members.
type Node struct {
	ID         string
	Name       string
	FullName   string // root only: the profile display name
	Relation   string
	Image      string
	X, Y       float64
	ParentID   string
	IsRoot     bool
	IsPaternal bool
	IsMaternal bool
}

// Graph is the laid-out ancestry graph. Nodes keep insertion order.
type Graph struct {
	Nodes []Node
}

// Node returns the node with the given id, or nil.
func (g *Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Layout builds the ancestry graph for a profile.
//
// Ancestor slots are gated hierarchically: a grandparent appears only when
// the corresponding parent is present, and a great-grandparent only when the
// same-gender grandparent of that side is present. A filled slot whose gate
// is missing is silently skipped.
func Layout(p *models.UserProfile) Graph {
	g := Graph{}
	heritage := p.Heritage

	g.Nodes = append(g.Nodes, Node{
		ID:       NodeRoot,
		Name:     "YOU",
		FullName: p.DisplayName,
		Relation: "Self",
		Image:    p.PhotoURL,
		IsRoot:   true,
	})

	// Paternal side on positive X.
	if heritage.Father != "" {
		g.Nodes = append(g.Nodes, Node{
			ID: NodeFather, Name: heritage.Father, Relation: "Father",
			X: spreadX / 2, Y: levelY, ParentID: NodeRoot, IsPaternal: true,
		})
		g.layoutLineage(heritage.Paternal, NodeFather, spreadX/2, 1, true)
	}

	// Maternal side mirrors on negative X.
	if heritage.Mother != "" {
		g.Nodes = append(g.Nodes, Node{
			ID: NodeMother, Name: heritage.Mother, Relation: "Mother",
			X: -spreadX / 2, Y: levelY, ParentID: NodeRoot, IsMaternal: true,
		})
		g.layoutLineage(heritage.Maternal, NodeMother, -spreadX/2, -1, false)
	}

	g.layoutExtras(p)

	return g
}

// layoutLineage places the grandparents and great-grandparents of one side.
// baseX is the parent's X; dir is +1 paternal, -1 maternal.
func (g *Graph) layoutLineage(l models.Lineage, parentID string, baseX, dir float64, paternal bool) {
	gfID, gmID, ggfID, ggmID := NodeMatGF, NodeMatGM, NodeMatGGF, NodeMatGGM
	if paternal {
		gfID, gmID, ggfID, ggmID = NodePatGF, NodePatGM, NodePatGGF, NodePatGGM
	}

	if l.Grandfather != "" {
		g.Nodes = append(g.Nodes, Node{
			ID: gfID, Name: l.Grandfather, Relation: "Grandfather",
			X: baseX + dir*grandOffset, Y: levelY * 2, ParentID: parentID,
			IsPaternal: paternal, IsMaternal: !paternal,
		})

		if l.GreatGrandfather != "" {
			g.Nodes = append(g.Nodes, Node{
				ID: ggfID, Name: l.GreatGrandfather, Relation: "Great-Grandfather",
				X: baseX + dir*greatGrandOffset, Y: levelY * 3, ParentID: gfID,
				IsPaternal: paternal, IsMaternal: !paternal,
			})
		}
	}

	if l.Grandmother != "" {
		g.Nodes = append(g.Nodes, Node{
			ID: gmID, Name: l.Grandmother, Relation: "Grandmother",
			X: baseX - dir*grandOffset, Y: levelY * 2, ParentID: parentID,
			IsPaternal: paternal, IsMaternal: !paternal,
		})

		if l.GreatGrandmother != "" {
			g.Nodes = append(g.Nodes, Node{
				ID: ggmID, Name: l.GreatGrandmother, Relation: "Great-Grandmother",
				X: baseX - dir*greatGrandOffset, Y: levelY * 3, ParentID: gmID,
				IsPaternal: paternal, IsMaternal: !paternal,
			})
		}
	}
}

// layoutExtras spreads immediate family members that are not the father or
// mother on an ellipse below the root. They carry no connector.
func (g *Graph) layoutExtras(p *models.UserProfile) {
	var extras []models.FamilyMember
	for _, m := range p.ImmediateFamily {
		if isParentRelation(m.Relation) {
			continue
		}
		extras = append(extras, m)
	}

	count := len(extras)
	for idx, m := range extras {
		angle := float64(idx) * (360.0 / math.Max(1, float64(count))) * (math.Pi / 180)
		g.Nodes = append(g.Nodes, Node{
			ID:       fmt.Sprintf("extra-%d", idx),
			Name:     m.Name,
			Relation: m.Relation,
			Image:    m.Img,
			X:        math.Cos(angle) * extraRadiusX,
			Y:        math.Sin(angle)*extraRadiusY + extraDropY,
		})
	}
}

func isParentRelation(relation string) bool {
	return strings.Contains(relation, "Father") || strings.Contains(relation, "Mother")
}
