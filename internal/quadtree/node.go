package quadtree

import (
	"nbodysim/internal/particle"
	"nbodysim/internal/vector"
)

// quadrant identifies one of a node's four children. The order matches
// spec.md §3's field order (NE, NW, SW, SE).
type quadrant int

const (
	quadNE quadrant = iota
	quadNW
	quadSW
	quadSE
)

// Node is one cell of the Barnes-Hut quadtree. A leaf holds a resident
// particle (particleIndex >= 0); its count is 1, or more when coincident
// particles landed on it. An internal node owns up to four children and has
// no resident particle of its own.
type Node struct {
	min, max vector.Vector2D
	center   vector.Vector2D

	children [4]*Node

	nodeMass   float64
	massCenter vector.Vector2D

	// particleIndex is the index into the tree's particle arrays of the
	// resident particle, or -1 if this node holds none directly (either
	// empty, or internal with mass aggregated from children).
	particleIndex int

	count int

	// subdivided records whether the last force query recursed into this
	// node's children rather than approximating it as a single mass. It is
	// cosmetic - read only by a renderer deciding which cells to draw - and
	// is only ever mutated from the serial, post-ClearStatistics pass over
	// particle 0 (see internal/model), so no synchronization is needed.
	subdivided bool

	parent *Node
}

func newNode(min, max vector.Vector2D, parent *Node) *Node {
	return &Node{
		min:           min,
		max:           max,
		center:        vector.New(min.X+(max.X-min.X)/2, min.Y+(max.Y-min.Y)/2),
		particleIndex: -1,
		parent:        parent,
	}
}

// IsRoot reports whether this node is the root of its tree.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether this node has no children.
func (n *Node) IsLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// Subdivided reports whether the last force query opened this node rather
// than treating it as a single aggregate mass.
func (n *Node) Subdivided() bool { return n.subdivided }

// Children returns the four child pointers, in NE, NW, SW, SE order. Unused
// quadrants are nil.
func (n *Node) Children() [4]*Node { return n.children }

// Bounds returns the node's axis-aligned bounding box.
func (n *Node) Bounds() (min, max vector.Vector2D) { return n.min, n.max }

// MassCenter returns the node's aggregate mass center (valid after
// ComputeMassDistribution).
func (n *Node) MassCenter() vector.Vector2D { return n.massCenter }

// NodeMass returns the node's aggregate mass (valid after
// ComputeMassDistribution).
func (n *Node) NodeMass() float64 { return n.nodeMass }

// ParticleCount returns the number of Insert calls that descended through
// this node (invariant I4, spec.md §3).
func (n *Node) ParticleCount() int { return n.count }

func (n *Node) clearSubdivided() {
	n.subdivided = false
	for _, c := range n.children {
		if c != nil {
			c.clearSubdivided()
		}
	}
}

// quadrantOf determines which quadrant a point belongs to relative to this
// node's center. Points exactly on a center line resolve to SW first, then
// NW, then NE, then SE - matching the original implementation this package
// is grounded on. The ambiguity is measure-zero and further subdivision
// eliminates it (spec.md §4.1).
func (n *Node) quadrantOf(x, y float64) quadrant {
	switch {
	case x <= n.center.X && y <= n.center.Y:
		return quadSW
	case x <= n.center.X && y >= n.center.Y:
		return quadNW
	case x >= n.center.X && y >= n.center.Y:
		return quadNE
	default:
		return quadSE
	}
}

// childBox returns the bounding box a given quadrant's child would occupy.
func (n *Node) childBox(q quadrant) (min, max vector.Vector2D) {
	switch q {
	case quadSW:
		return n.min, n.center
	case quadNW:
		return vector.New(n.min.X, n.center.Y), vector.New(n.center.X, n.max.Y)
	case quadNE:
		return n.center, n.max
	default: // quadSE
		return vector.New(n.center.X, n.min.Y), vector.New(n.max.X, n.center.Y)
	}
}

func (n *Node) childFor(q quadrant) *Node {
	if n.children[q] == nil {
		min, max := n.childBox(q)
		n.children[q] = newNode(min, max, n)
	}
	return n.children[q]
}

func (n *Node) contains(x, y float64) bool {
	return x >= n.min.X && x <= n.max.X && y >= n.min.Y && y <= n.max.Y
}

func position(states []particle.State, index int) (float64, float64) {
	s := states[index]
	return s.PositionX, s.PositionY
}

// insert recursively places the particle at index into this subtree.
func (n *Node) insert(t *Tree, index int, level int) error {
	x, y := position(t.states, index)
	if !n.contains(x, y) {
		return ErrOutOfBounds
	}

	switch {
	case n.count == 0:
		n.particleIndex = index

	case n.count == 1:
		residentX, residentY := position(t.states, n.particleIndex)
		if residentX == x && residentY == y {
			t.coincident = append(t.coincident, index)
		} else {
			resident := n.particleIndex
			n.particleIndex = -1

			q := n.quadrantOf(residentX, residentY)
			if err := n.childFor(q).insert(t, resident, level+1); err != nil {
				return err
			}

			q = n.quadrantOf(x, y)
			if err := n.childFor(q).insert(t, index, level+1); err != nil {
				return err
			}
		}

	default: // n.count > 1
		// A leaf that took a coincident particle still holds its resident;
		// push the resident down before routing a new particle past it, so
		// it stays part of the mass distribution.
		if n.particleIndex >= 0 {
			resident := n.particleIndex
			n.particleIndex = -1
			residentX, residentY := position(t.states, resident)
			if err := n.childFor(n.quadrantOf(residentX, residentY)).insert(t, resident, level+1); err != nil {
				return err
			}
		}
		q := n.quadrantOf(x, y)
		if err := n.childFor(q).insert(t, index, level+1); err != nil {
			return err
		}
	}

	n.count++
	return nil
}

// computeMassDistribution recurses post-order, establishing invariant I2.
func (n *Node) computeMassDistribution(t *Tree) {
	if n.particleIndex >= 0 {
		p := t.params[n.particleIndex]
		x, y := position(t.states, n.particleIndex)
		n.nodeMass = p.Mass
		n.massCenter = vector.New(x, y)
		return
	}

	n.nodeMass = 0
	var weightedX, weightedY float64
	for _, c := range n.children {
		if c == nil {
			continue
		}
		c.computeMassDistribution(t)
		n.nodeMass += c.nodeMass
		weightedX += c.massCenter.X * c.nodeMass
		weightedY += c.massCenter.Y * c.nodeMass
	}

	if n.nodeMass > 0 {
		n.massCenter = vector.New(weightedX/n.nodeMass, weightedY/n.nodeMass)
	}
}
