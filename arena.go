package sdf

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when a NodeID does not name a node of the arena.
var ErrUnknownNode = errors.New("sdf: unknown node")

// NodeID is a stable handle to a node in an Arena.
type NodeID int

// node is either a leaf wrapping a primitive field or a composite referring
// to two earlier nodes.
type node struct {
	leaf Field
	op   Op
	a, b NodeID
}

// Arena stores a field graph as a flat list of nodes. Composite nodes refer
// to their children by NodeID, and a child must already exist when the
// parent is added, so every edge points to a smaller ID and the graph is
// acyclic by construction. Shared sub-trees are simply IDs used by more than
// one parent.
//
// The zero value is an empty arena ready for use. An Arena is not safe for
// concurrent modification; once built, Field views may be evaluated
// concurrently.
type Arena struct {
	nodes []node
}

// Len returns the number of nodes.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Add stores a leaf field and returns its ID. The field itself is kept by
// reference, so setters on it still take effect before rendering.
func (a *Arena) Add(f Field) NodeID {
	a.nodes = append(a.nodes, node{leaf: f})
	return NodeID(len(a.nodes) - 1)
}

// Combine adds a composite node applying op to the children x and y.
func (a *Arena) Combine(op Op, x, y NodeID) (NodeID, error) {
	for _, id := range [...]NodeID{x, y} {
		if !a.valid(id) {
			return -1, fmt.Errorf("%s child %d: %w", op, id, ErrUnknownNode)
		}
	}
	a.nodes = append(a.nodes, node{op: op, a: x, b: y})
	return NodeID(len(a.nodes) - 1), nil
}

// Union adds the union of x and y.
func (a *Arena) Union(x, y NodeID) (NodeID, error) {
	return a.Combine(OpUnion, x, y)
}

// Intersection adds the intersection of x and y.
func (a *Arena) Intersection(x, y NodeID) (NodeID, error) {
	return a.Combine(OpIntersection, x, y)
}

// Difference adds y with x removed.
func (a *Arena) Difference(x, y NodeID) (NodeID, error) {
	return a.Combine(OpDifference, x, y)
}

// Distance evaluates the node id at p. Unknown IDs evaluate to the far
// distance of an empty scene.
func (a *Arena) Distance(id NodeID, p Point) float64 {
	if !a.valid(id) {
		return farDistance
	}
	n := &a.nodes[id]
	if n.leaf != nil {
		return n.leaf.Distance(p)
	}
	return n.op.Apply(a.Distance(n.a, p), a.Distance(n.b, p))
}

// Field returns a view of node id that implements Field.
func (a *Arena) Field(id NodeID) (Field, error) {
	if !a.valid(id) {
		return nil, fmt.Errorf("field %d: %w", id, ErrUnknownNode)
	}
	return arenaField{arena: a, id: id}, nil
}

func (a *Arena) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(a.nodes)
}

type arenaField struct {
	arena *Arena
	id    NodeID
}

func (f arenaField) Distance(p Point) float64 {
	return f.arena.Distance(f.id, p)
}
