// Package hierarchy provides read-only traversal over a set of location nodes.
//
// An Arena indexes nodes by id and derives the children lists from the parent
// references, so traversal never needs back-pointers on the nodes themselves.
// Arenas are usually built from the ancestry of one or more nodes fetched in a
// single query and thrown away after the request.
package hierarchy

import (
	"slices"
	"strings"

	"bookstore/internal/domain/entity"
	"bookstore/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrCycle is returned when following parent references revisits a node.
	ErrCycle = errors.New("location hierarchy contains a cycle")
	// ErrTooDeep is returned when a parent chain is longer than the number of hierarchy levels.
	ErrTooDeep = errors.New("location hierarchy is deeper than the known levels")
	// ErrUnknownNode is returned when a node id is not part of the arena.
	ErrUnknownNode = errors.New("location is not part of the arena")
	// ErrBrokenChain is returned when a parent referenced by a node is missing from the arena.
	ErrBrokenChain = errors.New("location ancestry is incomplete")
)

// Arena is an immutable, id-addressed set of location nodes.
type Arena struct {
	nodes    map[uuid.UUID]*entity.Location
	children map[uuid.UUID][]*entity.Location
	roots    []*entity.Location
}

// NewArena indexes nodes. Duplicate ids keep the last occurrence.
// It refuses inputs whose parent references form a cycle or exceed the hierarchy depth.
func NewArena(nodes []*entity.Location) (*Arena, error) {
	a := &Arena{
		nodes:    make(map[uuid.UUID]*entity.Location, len(nodes)),
		children: make(map[uuid.UUID][]*entity.Location),
	}

	for _, node := range nodes {
		if node == nil {
			continue
		}
		a.nodes[node.ID] = node
	}

	for _, node := range a.nodes {
		if err := a.checkChain(node); err != nil {
			return nil, err
		}

		if node.ParentID == nil {
			a.roots = append(a.roots, node)

			continue
		}
		a.children[*node.ParentID] = append(a.children[*node.ParentID], node)
	}

	sortByCode(a.roots)
	for _, list := range a.children {
		sortByCode(list)
	}

	return a, nil
}

// checkChain walks up from node within the arena and fails on revisits or excess depth.
func (a *Arena) checkChain(node *entity.Location) error {
	visited := make(map[uuid.UUID]struct{}, entity.MaxLocationDepth)
	current := node

	for current != nil {
		if _, seen := visited[current.ID]; seen {
			return errors.Wrapf(ErrCycle, "at node %s", current.Code)
		}
		visited[current.ID] = struct{}{}
		if len(visited) > entity.MaxLocationDepth {
			return errors.Wrapf(ErrTooDeep, "below node %s", node.Code)
		}

		if current.ParentID == nil {
			return nil
		}
		current = a.nodes[*current.ParentID]
	}

	return nil
}

// Len returns the number of nodes in the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node with the given id.
func (a *Arena) Node(id uuid.UUID) (*entity.Location, bool) {
	node, ok := a.nodes[id]

	return node, ok
}

// Roots returns the nodes without a parent, ordered by code.
func (a *Arena) Roots() []*entity.Location {
	return slices.Clone(a.roots)
}

// Children returns the direct children of id known to the arena, ordered by code.
func (a *Arena) Children(id uuid.UUID) []*entity.Location {
	return slices.Clone(a.children[id])
}

// Parent returns the parent of id. ok is false for roots and when the parent is not in the arena.
func (a *Arena) Parent(id uuid.UUID) (*entity.Location, bool) {
	node, ok := a.nodes[id]
	if !ok || node.ParentID == nil {
		return nil, false
	}
	parent, ok := a.nodes[*node.ParentID]

	return parent, ok
}

// AncestorOfType walks from id towards the root and returns the first node of type target,
// starting with the node itself. ok is false when the root is passed without a match.
func (a *Arena) AncestorOfType(id uuid.UUID, target entity.LocationType) (*entity.Location, bool) {
	current, ok := a.nodes[id]
	for ok {
		if current.Type == target {
			return current, true
		}
		if current.ParentID == nil {
			return nil, false
		}
		current, ok = a.nodes[*current.ParentID]
	}

	return nil, false
}

// Path returns the chain from the root down to id, inclusive.
func (a *Arena) Path(id uuid.UUID) ([]*entity.Location, error) {
	node, ok := a.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNode, "id %s", id)
	}

	chain := make([]*entity.Location, 0, entity.MaxLocationDepth)
	for {
		chain = append(chain, node)
		if node.ParentID == nil {
			break
		}

		parent, ok := a.nodes[*node.ParentID]
		if !ok {
			return nil, errors.Wrapf(ErrBrokenChain, "parent of %s", node.Code)
		}
		node = parent
	}
	slices.Reverse(chain)

	return chain, nil
}

// FullPath renders the names on the path to id, root first, joined by sep.
func (a *Arena) FullPath(id uuid.UUID, sep string) (string, error) {
	chain, err := a.Path(id)
	if err != nil {
		return "", err
	}

	return JoinNames(chain, sep), nil
}

// JoinNames joins the names of chain with sep.
func JoinNames(chain []*entity.Location, sep string) string {
	names := make([]string, len(chain))
	for i, node := range chain {
		names[i] = node.Name
	}

	return strings.Join(names, sep)
}

func sortByCode(list []*entity.Location) {
	slices.SortFunc(list, func(x, y *entity.Location) int {
		return strings.Compare(x.Code, y.Code)
	})
}
