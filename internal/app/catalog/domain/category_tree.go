package domain

import "sort"

// CategoryTreeNode is one validated node of the category hierarchy. Depth is
// 1-based: roots sit at depth 1 and the tree never exceeds MaxTreeDepth.
type CategoryTreeNode struct {
	category *Category
	children []*CategoryTreeNode
	depth    int
}

// NewCategoryTreeNode validates one node against its children: depth bounds,
// child fan-out, child depth and parentage consistency, and distinct sibling
// display orders.
func NewCategoryTreeNode(category *Category, children []*CategoryTreeNode, depth int) (*CategoryTreeNode, error) {
	if depth < 1 || depth > MaxTreeDepth {
		return nil, ErrTreeDepthOutOfRange
	}
	if len(children) > MaxChildCategories {
		return nil, ErrTooManyChildCategories
	}

	seenOrders := make(map[int]struct{}, len(children))
	for _, child := range children {
		if child.Depth() != depth+1 {
			return nil, ErrChildDepthMismatch
		}
		parentID := child.Category().ParentID()
		if parentID == nil || *parentID != category.ID() {
			return nil, ErrChildParentMismatch
		}
		if _, dup := seenOrders[child.Category().DisplayOrder()]; dup {
			return nil, ErrDuplicateDisplayOrder
		}
		seenOrders[child.Category().DisplayOrder()] = struct{}{}
	}

	return &CategoryTreeNode{
		category: category,
		children: children,
		depth:    depth,
	}, nil
}

func (n *CategoryTreeNode) Category() *Category {
	return n.category
}

func (n *CategoryTreeNode) Children() []*CategoryTreeNode {
	return n.children
}

func (n *CategoryTreeNode) Depth() int {
	return n.depth
}

// CategoryTree is the full validated hierarchy.
type CategoryTree struct {
	roots []*CategoryTreeNode
}

// NewCategoryTree validates the root level: every root has depth 1 and no
// parent, root count is bounded and root display orders are distinct.
func NewCategoryTree(roots []*CategoryTreeNode) (*CategoryTree, error) {
	if len(roots) > MaxRootCategories {
		return nil, ErrTooManyRootCategories
	}

	seenOrders := make(map[int]struct{}, len(roots))
	for _, root := range roots {
		if root.Depth() != 1 {
			return nil, ErrRootDepthNotOne
		}
		if !root.Category().IsRoot() {
			return nil, ErrRootHasParent
		}
		if _, dup := seenOrders[root.Category().DisplayOrder()]; dup {
			return nil, ErrDuplicateDisplayOrder
		}
		seenOrders[root.Category().DisplayOrder()] = struct{}{}
	}

	return &CategoryTree{roots: roots}, nil
}

func (t *CategoryTree) Roots() []*CategoryTreeNode {
	return t.roots
}

// CategoryTreeFromFlatList rebuilds the hierarchy from a flat category list.
// Siblings are ordered ascending by display order. Categories whose declared
// parent is absent from the input are dropped, not rejected; that includes
// any cyclic parent chain, which is unreachable from the roots. A chain
// deeper than MaxTreeDepth fails with ErrTreeDepthOutOfRange.
func CategoryTreeFromFlatList(categories []*Category) (*CategoryTree, error) {
	byParent := make(map[string][]*Category)
	var rootCategories []*Category
	for _, c := range categories {
		if c.IsRoot() {
			rootCategories = append(rootCategories, c)
			continue
		}
		byParent[*c.ParentID()] = append(byParent[*c.ParentID()], c)
	}

	roots, err := buildNodes(rootCategories, byParent, 1)
	if err != nil {
		return nil, err
	}
	return NewCategoryTree(roots)
}

func buildNodes(siblings []*Category, byParent map[string][]*Category, depth int) ([]*CategoryTreeNode, error) {
	sort.SliceStable(siblings, func(i, j int) bool {
		return siblings[i].DisplayOrder() < siblings[j].DisplayOrder()
	})

	nodes := make([]*CategoryTreeNode, 0, len(siblings))
	for _, c := range siblings {
		// Bail out before recursing so runaway chains surface as a
		// depth error instead of recursing past the bound.
		if depth > MaxTreeDepth {
			return nil, ErrTreeDepthOutOfRange
		}
		children, err := buildNodes(byParent[c.ID()], byParent, depth+1)
		if err != nil {
			return nil, err
		}
		node, err := NewCategoryTreeNode(c, children, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
