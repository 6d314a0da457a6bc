package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryTreeNode(t *testing.T) {
	root := mustCategory(t, "cat-1", "Apparel", nil, 0)
	child := mustCategory(t, "cat-2", "Shoes", strPtr("cat-1"), 0)

	childNode, err := NewCategoryTreeNode(child, nil, 2)
	require.NoError(t, err)

	node, err := NewCategoryTreeNode(root, []*CategoryTreeNode{childNode}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, node.Depth())
	assert.Len(t, node.Children(), 1)
}

func TestNewCategoryTreeNode_Rejections(t *testing.T) {
	root := mustCategory(t, "cat-1", "Apparel", nil, 0)

	_, err := NewCategoryTreeNode(root, nil, 0)
	assert.ErrorIs(t, err, ErrTreeDepthOutOfRange)

	_, err = NewCategoryTreeNode(root, nil, 4)
	assert.ErrorIs(t, err, ErrTreeDepthOutOfRange)

	// Child at the wrong depth.
	child := mustCategory(t, "cat-2", "Shoes", strPtr("cat-1"), 0)
	wrongDepth, err := NewCategoryTreeNode(child, nil, 3)
	require.NoError(t, err)
	_, err = NewCategoryTreeNode(root, []*CategoryTreeNode{wrongDepth}, 1)
	assert.ErrorIs(t, err, ErrChildDepthMismatch)

	// Child pointing at another parent.
	stray := mustCategory(t, "cat-3", "Hats", strPtr("cat-other"), 0)
	strayNode, err := NewCategoryTreeNode(stray, nil, 2)
	require.NoError(t, err)
	_, err = NewCategoryTreeNode(root, []*CategoryTreeNode{strayNode}, 1)
	assert.ErrorIs(t, err, ErrChildParentMismatch)

	// Siblings sharing a display order.
	a, err := NewCategoryTreeNode(mustCategory(t, "cat-4", "Boots", strPtr("cat-1"), 1), nil, 2)
	require.NoError(t, err)
	b, err := NewCategoryTreeNode(mustCategory(t, "cat-5", "Sandals", strPtr("cat-1"), 1), nil, 2)
	require.NoError(t, err)
	_, err = NewCategoryTreeNode(root, []*CategoryTreeNode{a, b}, 1)
	assert.ErrorIs(t, err, ErrDuplicateDisplayOrder)
}

func TestNewCategoryTreeNode_ChildFanOutBound(t *testing.T) {
	root := mustCategory(t, "cat-root", "Apparel", nil, 0)

	children := make([]*CategoryTreeNode, 0, 31)
	for i := 0; i < 31; i++ {
		c := mustCategory(t, fmt.Sprintf("cat-%d", i), "Sub", strPtr("cat-root"), i)
		node, err := NewCategoryTreeNode(c, nil, 2)
		require.NoError(t, err)
		children = append(children, node)
	}

	_, err := NewCategoryTreeNode(root, children[:30], 1)
	assert.NoError(t, err)

	_, err = NewCategoryTreeNode(root, children, 1)
	assert.ErrorIs(t, err, ErrTooManyChildCategories)
}

func TestNewCategoryTree_Rejections(t *testing.T) {
	// A node whose category has a parent cannot be a root.
	child := mustCategory(t, "cat-2", "Shoes", strPtr("cat-1"), 0)
	childNode, err := NewCategoryTreeNode(child, nil, 1)
	require.NoError(t, err)
	_, err = NewCategoryTree([]*CategoryTreeNode{childNode})
	assert.ErrorIs(t, err, ErrRootHasParent)

	// Depth 2 node cannot be a root.
	deep, err := NewCategoryTreeNode(mustCategory(t, "cat-3", "Hats", nil, 0), nil, 2)
	require.NoError(t, err)
	_, err = NewCategoryTree([]*CategoryTreeNode{deep})
	assert.ErrorIs(t, err, ErrRootDepthNotOne)

	// Too many roots.
	roots := make([]*CategoryTreeNode, 0, 21)
	for i := 0; i < 21; i++ {
		node, err := NewCategoryTreeNode(mustCategory(t, fmt.Sprintf("cat-%d", i), "Root", nil, i), nil, 1)
		require.NoError(t, err)
		roots = append(roots, node)
	}
	_, err = NewCategoryTree(roots[:20])
	assert.NoError(t, err)
	_, err = NewCategoryTree(roots)
	assert.ErrorIs(t, err, ErrTooManyRootCategories)
}

func TestCategoryTreeFromFlatList(t *testing.T) {
	cats := []*Category{
		mustCategory(t, "cat-shoes", "Shoes", strPtr("cat-apparel"), 1),
		mustCategory(t, "cat-apparel", "Apparel", nil, 0),
		mustCategory(t, "cat-tops", "Tops", strPtr("cat-apparel"), 0),
		mustCategory(t, "cat-sneakers", "Sneakers", strPtr("cat-shoes"), 0),
	}

	tree, err := CategoryTreeFromFlatList(cats)
	require.NoError(t, err)

	require.Len(t, tree.Roots(), 1)
	root := tree.Roots()[0]
	assert.Equal(t, "cat-apparel", root.Category().ID())

	require.Len(t, root.Children(), 2)
	assert.Equal(t, "cat-tops", root.Children()[0].Category().ID())
	assert.Equal(t, "cat-shoes", root.Children()[1].Category().ID())

	shoes := root.Children()[1]
	require.Len(t, shoes.Children(), 1)
	assert.Equal(t, 3, shoes.Children()[0].Depth())
}

// Siblings come back ascending by display order regardless of input order.
func TestCategoryTreeFromFlatList_SiblingOrdering(t *testing.T) {
	cats := []*Category{
		mustCategory(t, "cat-c", "Clearance", nil, 2),
		mustCategory(t, "cat-a", "Apparel", nil, 0),
		mustCategory(t, "cat-b", "Beauty", nil, 1),
	}

	tree, err := CategoryTreeFromFlatList(cats)
	require.NoError(t, err)

	require.Len(t, tree.Roots(), 3)
	got := make([]string, 0, 3)
	for _, r := range tree.Roots() {
		got = append(got, r.Category().ID())
	}
	assert.Equal(t, []string{"cat-a", "cat-b", "cat-c"}, got)
}

// A category whose parent is not in the list disappears from the tree.
func TestCategoryTreeFromFlatList_DropsOrphans(t *testing.T) {
	cats := []*Category{
		mustCategory(t, "cat-a", "Apparel", nil, 0),
		mustCategory(t, "cat-orphan", "Orphan", strPtr("cat-missing"), 0),
	}

	tree, err := CategoryTreeFromFlatList(cats)
	require.NoError(t, err)

	require.Len(t, tree.Roots(), 1)
	assert.Equal(t, "cat-a", tree.Roots()[0].Category().ID())
	assert.Empty(t, tree.Roots()[0].Children())
}

// A cycle is unreachable from any root, so it vanishes like an orphan.
func TestCategoryTreeFromFlatList_DropsCycles(t *testing.T) {
	cats := []*Category{
		mustCategory(t, "cat-a", "Apparel", nil, 0),
		mustCategory(t, "cat-x", "X", strPtr("cat-y"), 0),
		mustCategory(t, "cat-y", "Y", strPtr("cat-x"), 0),
	}

	tree, err := CategoryTreeFromFlatList(cats)
	require.NoError(t, err)
	require.Len(t, tree.Roots(), 1)
	assert.Equal(t, "cat-a", tree.Roots()[0].Category().ID())
}

func TestCategoryTreeFromFlatList_TooDeep(t *testing.T) {
	cats := []*Category{
		mustCategory(t, "d1", "Level1", nil, 0),
		mustCategory(t, "d2", "Level2", strPtr("d1"), 0),
		mustCategory(t, "d3", "Level3", strPtr("d2"), 0),
		mustCategory(t, "d4", "Level4", strPtr("d3"), 0),
	}

	_, err := CategoryTreeFromFlatList(cats)
	assert.ErrorIs(t, err, ErrTreeDepthOutOfRange)
}

func TestCategoryTreeFromFlatList_Empty(t *testing.T) {
	tree, err := CategoryTreeFromFlatList(nil)
	require.NoError(t, err)
	assert.Empty(t, tree.Roots())
}
