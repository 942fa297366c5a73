package hierarchy

import (
	"testing"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kigaliTree struct {
	province, district, otherDistrict, sector, cell, village *entity.Location
}

func newNode(code, name string, locationType entity.LocationType, parent *entity.Location) *entity.Location {
	node := &entity.Location{ID: uuid.New(), Code: code, Name: name, Type: locationType}
	if parent != nil {
		parentID := parent.ID
		node.ParentID = &parentID
	}

	return node
}

func buildKigali() kigaliTree {
	province := newNode("K1", "Kigali City", entity.LocationProvince, nil)
	district := newNode("K1-D1", "Gasabo", entity.LocationDistrict, province)
	otherDistrict := newNode("K1-D2", "Kicukiro", entity.LocationDistrict, province)
	sector := newNode("K1-D1-S1", "Remera", entity.LocationSector, district)
	cell := newNode("K1-D1-S1-C1", "Rukiri I", entity.LocationCell, sector)
	village := newNode("K1-D1-S1-C1-V1", "Amahoro", entity.LocationVillage, cell)

	return kigaliTree{province, district, otherDistrict, sector, cell, village}
}

func (k kigaliTree) all() []*entity.Location {
	return []*entity.Location{k.village, k.cell, k.sector, k.otherDistrict, k.district, k.province}
}

func TestArena_AncestorOfType(t *testing.T) {
	tree := buildKigali()
	arena, err := NewArena(tree.all())
	require.NoError(t, err)

	t.Run("node is its own ancestor of its type", func(t *testing.T) {
		for _, node := range tree.all() {
			got, ok := arena.AncestorOfType(node.ID, node.Type)
			require.True(t, ok, node.Code)
			assert.Same(t, node, got)
		}
	})

	t.Run("province found from every depth", func(t *testing.T) {
		for _, node := range []*entity.Location{tree.district, tree.sector, tree.cell, tree.village} {
			got, ok := arena.AncestorOfType(node.ID, entity.LocationProvince)
			require.True(t, ok, node.Code)
			assert.Equal(t, "K1", got.Code)
		}
	})

	t.Run("no descendant type above the node", func(t *testing.T) {
		_, ok := arena.AncestorOfType(tree.district.ID, entity.LocationVillage)
		assert.False(t, ok)
	})

	t.Run("unknown node", func(t *testing.T) {
		_, ok := arena.AncestorOfType(uuid.New(), entity.LocationProvince)
		assert.False(t, ok)
	})
}

func TestArena_FullPath(t *testing.T) {
	tree := buildKigali()
	arena, err := NewArena(tree.all())
	require.NoError(t, err)

	path, err := arena.FullPath(tree.village.ID, " / ")
	require.NoError(t, err)
	assert.Equal(t, "Kigali City / Gasabo / Remera / Rukiri I / Amahoro", path)

	again, err := arena.FullPath(tree.village.ID, " / ")
	require.NoError(t, err)
	assert.Equal(t, path, again)

	rootPath, err := arena.FullPath(tree.province.ID, " > ")
	require.NoError(t, err)
	assert.Equal(t, "Kigali City", rootPath)
}

func TestArena_Path(t *testing.T) {
	tree := buildKigali()

	t.Run("root first", func(t *testing.T) {
		arena, err := NewArena(tree.all())
		require.NoError(t, err)

		chain, err := arena.Path(tree.cell.ID)
		require.NoError(t, err)
		require.Len(t, chain, 4)
		assert.Equal(t, []string{"K1", "K1-D1", "K1-D1-S1", "K1-D1-S1-C1"},
			[]string{chain[0].Code, chain[1].Code, chain[2].Code, chain[3].Code})
	})

	t.Run("missing ancestor", func(t *testing.T) {
		arena, err := NewArena([]*entity.Location{tree.village, tree.cell})
		require.NoError(t, err)

		_, err = arena.Path(tree.village.ID)
		assert.ErrorIs(t, err, ErrBrokenChain)
	})

	t.Run("unknown node", func(t *testing.T) {
		arena, err := NewArena(tree.all())
		require.NoError(t, err)

		_, err = arena.Path(uuid.New())
		assert.ErrorIs(t, err, ErrUnknownNode)
	})
}

func TestArena_ChildrenAndRoots(t *testing.T) {
	tree := buildKigali()
	arena, err := NewArena(tree.all())
	require.NoError(t, err)

	assert.Equal(t, 6, arena.Len())

	roots := arena.Roots()
	require.Len(t, roots, 1)
	assert.Equal(t, "K1", roots[0].Code)

	children := arena.Children(tree.province.ID)
	require.Len(t, children, 2)
	assert.Equal(t, "K1-D1", children[0].Code)
	assert.Equal(t, "K1-D2", children[1].Code)

	assert.Empty(t, arena.Children(tree.village.ID))

	parent, ok := arena.Parent(tree.sector.ID)
	require.True(t, ok)
	assert.Same(t, tree.district, parent)

	_, ok = arena.Parent(tree.province.ID)
	assert.False(t, ok)
}

func TestNewArena_RefusesCycles(t *testing.T) {
	a := &entity.Location{ID: uuid.New(), Code: "A", Type: entity.LocationDistrict}
	b := &entity.Location{ID: uuid.New(), Code: "B", Type: entity.LocationSector}
	aID, bID := a.ID, b.ID
	a.ParentID = &bID
	b.ParentID = &aID

	_, err := NewArena([]*entity.Location{a, b})
	assert.ErrorIs(t, err, ErrCycle)
}

func TestNewArena_RefusesSelfParent(t *testing.T) {
	node := &entity.Location{ID: uuid.New(), Code: "SELF", Type: entity.LocationCell}
	id := node.ID
	node.ParentID = &id

	_, err := NewArena([]*entity.Location{node})
	assert.ErrorIs(t, err, ErrCycle)
}

func TestNewArena_RefusesTooDeep(t *testing.T) {
	var nodes []*entity.Location
	var parent *entity.Location
	for i := 0; i <= entity.MaxLocationDepth; i++ {
		node := newNode(uuid.NewString(), "n", entity.LocationVillage, parent)
		nodes = append(nodes, node)
		parent = node
	}

	_, err := NewArena(nodes)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestNewArena_SkipsNilAndDuplicates(t *testing.T) {
	tree := buildKigali()
	arena, err := NewArena([]*entity.Location{tree.province, nil, tree.province, tree.district})
	require.NoError(t, err)
	assert.Equal(t, 2, arena.Len())
	assert.Len(t, arena.Children(tree.province.ID), 1)
}
