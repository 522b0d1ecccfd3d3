package tree

import (
	"math"
	"testing"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullProfile() *models.UserProfile {
	return &models.UserProfile{
		DisplayName: "Ravi",
		Heritage: models.Heritage{
			Father: "Father",
			Mother: "Mother",
			Paternal: models.Lineage{
				Grandfather:      "PatGF",
				Grandmother:      "PatGM",
				GreatGrandfather: "PatGGF",
				GreatGrandmother: "PatGGM",
			},
			Maternal: models.Lineage{
				Grandfather:      "MatGF",
				Grandmother:      "MatGM",
				GreatGrandfather: "MatGGF",
				GreatGrandmother: "MatGGM",
			},
		},
	}
}

func TestLayout_RootOnly(t *testing.T) {
	g := Layout(&models.UserProfile{DisplayName: "Ravi"})

	require.Len(t, g.Nodes, 1)
	root := g.Nodes[0]
	assert.Equal(t, NodeRoot, root.ID)
	assert.Equal(t, "YOU", root.Name)
	assert.Equal(t, "Ravi", root.FullName)
	assert.Equal(t, "Self", root.Relation)
	assert.True(t, root.IsRoot)
	assert.Zero(t, root.X)
	assert.Zero(t, root.Y)
}

func TestLayout_FullFourGenerations(t *testing.T) {
	g := Layout(fullProfile())
	require.Len(t, g.Nodes, 11)

	want := map[string][2]float64{
		NodeRoot:   {0, 0},
		NodeFather: {110, -120},
		NodeMother: {-110, -120},
		NodePatGF:  {190, -240},
		NodePatGM:  {30, -240},
		NodeMatGF:  {-190, -240},
		NodeMatGM:  {-30, -240},
		NodePatGGF: {250, -360},
		NodePatGGM: {-30, -360},
		NodeMatGGF: {-250, -360},
		NodeMatGGM: {30, -360},
	}
	for id, pos := range want {
		n := g.Node(id)
		require.NotNil(t, n, id)
		assert.InDelta(t, pos[0], n.X, 1e-9, id)
		assert.InDelta(t, pos[1], n.Y, 1e-9, id)
	}

	// Great-grandmothers hang under the grandmothers, not the grandfathers.
	assert.Equal(t, NodePatGM, g.Node(NodePatGGM).ParentID)
	assert.Equal(t, NodeMatGM, g.Node(NodeMatGGM).ParentID)
	assert.Equal(t, NodePatGF, g.Node(NodePatGGF).ParentID)
	assert.Equal(t, NodeMatGF, g.Node(NodeMatGGF).ParentID)
}

func TestLayout_GatingSkipsOrphanSlots(t *testing.T) {
	// A great-grandfather without the intermediate grandfather is skipped.
	p := &models.UserProfile{
		DisplayName: "Ravi",
		Heritage: models.Heritage{
			Father:   "A",
			Paternal: models.Lineage{GreatGrandfather: "C"},
		},
	}
	g := Layout(p)

	require.Len(t, g.Nodes, 2)
	assert.NotNil(t, g.Node(NodeFather))
	assert.Nil(t, g.Node(NodePatGF))
	assert.Nil(t, g.Node(NodePatGGF))
}

func TestLayout_GatingRequiresParent(t *testing.T) {
	// Grandparents without the corresponding parent are skipped entirely.
	p := &models.UserProfile{
		DisplayName: "Ravi",
		Heritage: models.Heritage{
			Mother:   "Sita",
			Paternal: models.Lineage{Grandfather: "Mohan"},
		},
	}
	g := Layout(p)

	require.Len(t, g.Nodes, 2)
	assert.NotNil(t, g.Node(NodeMother))
	assert.Nil(t, g.Node(NodeFather))
	assert.Nil(t, g.Node(NodePatGF))
}

func TestLayout_ExtraFamilyOnEllipse(t *testing.T) {
	p := &models.UserProfile{
		DisplayName: "Ravi",
		ImmediateFamily: []models.FamilyMember{
			{Name: "Father", Relation: models.RelationFather},
			{Name: "Mother", Relation: models.RelationMother},
			{Name: "Bhai", Relation: "Brother"},
			{Name: "Didi", Relation: "Sister"},
		},
	}
	g := Layout(p)

	// Parents feed the heritage slots, not the ellipse.
	require.Len(t, g.Nodes, 3)

	first := g.Node("extra-0")
	require.NotNil(t, first)
	assert.Equal(t, "Bhai", first.Name)
	assert.InDelta(t, 160, first.X, 1e-9)
	assert.InDelta(t, 100, first.Y, 1e-9)
	assert.Empty(t, first.ParentID)

	second := g.Node("extra-1")
	require.NotNil(t, second)
	assert.InDelta(t, -160, second.X, 1e-9)
	assert.InDelta(t, 100, second.Y, 1e-6)
}

func TestLayout_Deterministic(t *testing.T) {
	p := fullProfile()
	assert.Equal(t, Layout(p), Layout(p))
}

func TestConnector_TrimsBothEnds(t *testing.T) {
	g := Layout(fullProfile())

	seg, ok := g.Connector(NodeFather)
	require.True(t, ok)

	parent := g.Node(NodeRoot)
	child := g.Node(NodeFather)

	assert.InDelta(t, connectorGap, math.Hypot(seg.X1-parent.X, seg.Y1-parent.Y), 1e-9)
	assert.InDelta(t, connectorGap, math.Hypot(seg.X2-child.X, seg.Y2-child.Y), 1e-9)

	// Trimmed segment is shorter than center-to-center by two gaps.
	full := math.Hypot(child.X-parent.X, child.Y-parent.Y)
	trimmed := math.Hypot(seg.X2-seg.X1, seg.Y2-seg.Y1)
	assert.InDelta(t, full-2*connectorGap, trimmed, 1e-9)
}

func TestConnector_NoneForRootAndExtras(t *testing.T) {
	p := fullProfile()
	p.ImmediateFamily = []models.FamilyMember{{Name: "Bhai", Relation: "Brother"}}
	g := Layout(p)

	_, ok := g.Connector(NodeRoot)
	assert.False(t, ok)

	_, ok = g.Connector("extra-0")
	assert.False(t, ok)

	_, ok = g.Connector("missing")
	assert.False(t, ok)

	// Ten linked ancestors in the full profile.
	assert.Len(t, g.Connectors(), 10)
}
