// Package quadtree implements the Barnes-Hut spatial decomposition used to
// approximate long-range gravitational interaction in O(N log N) instead of
// the O(N^2) direct sum.
//
// A Tree owns a strict ownership hierarchy of nodes; unlike the C++ original
// it was distilled from, a Node never exposes Reset or ClearStatistics
// itself - those are root-only operations and are only reachable through
// Tree, which always operates on its own root. This removes the "misuse of
// a root-only operation on a non-root node" failure mode by construction
// instead of by a runtime check.
package quadtree

import (
	"errors"

	"nbodysim/internal/particle"
	"nbodysim/internal/vector"
)

// ErrOutOfBounds is returned by Insert when a particle's position falls
// outside the tree's root bounding box.
var ErrOutOfBounds = errors.New("quadtree: particle position outside root bounding box")

const (
	defaultTheta       = 1.0
	defaultSofteningSq = 0.01
)

// Tree is one Barnes-Hut quadtree instance. theta, softening and the
// gravitational constant are per-instance configuration (spec.md's redesign
// of the C++ original's process-wide statics), so independent simulations
// never share state.
type Tree struct {
	root *Node

	theta       float64
	softeningSq float64
	g           float64

	states []particle.State
	params []particle.Parameters

	// coincident holds the indices of particles whose position exactly
	// equals an already-placed leaf's position. They are excluded from the
	// tree structure (which would otherwise recurse forever subdividing a
	// zero-size box) and contribute to forces by direct summation.
	coincident []int
}

// New constructs a Tree rooted at [min, max] with the given gravitational
// constant. theta defaults to 1.0 and softening^2 to 0.01, matching the
// defaults spec.md §3 documents for the 2D tree.
func New(min, max vector.Vector2D, g float64) *Tree {
	return &Tree{
		root:        newNode(min, max, nil),
		theta:       defaultTheta,
		softeningSq: defaultSofteningSq,
		g:           g,
	}
}

// GetTheta returns the current Barnes-Hut opening angle.
func (t *Tree) GetTheta() float64 { return t.theta }

// SetTheta sets the Barnes-Hut opening angle. Live-tunable; the renderer
// binds it to the up/down keys (spec.md §4.1).
func (t *Tree) SetTheta(theta float64) { t.theta = theta }

// SetSoftening sets the Plummer softening length squared (ε²).
func (t *Tree) SetSoftening(softeningSq float64) { t.softeningSq = softeningSq }

// Root returns the tree's root node for read-only traversal (e.g. by a
// renderer drawing the cells opened during the last force query).
func (t *Tree) Root() *Node { return t.root }

// AllNodesParticles returns the number of successful Insert calls that
// descended through the root - invariant P2 in spec.md §8.
func (t *Tree) AllNodesParticles() int { return t.root.count }

// Reset clears the tree back to an empty root spanning [min, max] and
// rebinds it to the given particle arrays. Called at the start of every
// derivative evaluation (spec.md §3, Lifecycle): the tree is rebuilt from
// scratch on every Evaluate call.
func (t *Tree) Reset(min, max vector.Vector2D, states []particle.State, params []particle.Parameters) {
	t.root = newNode(min, max, nil)
	t.states = states
	t.params = params
	t.coincident = t.coincident[:0]
}

// ClearStatistics walks the tree clearing every node's subdivided flag. The
// model calls it on every derivative evaluation, right before the particle-0
// query, so after a step the renderer observes the cells opened for the
// final stage's particle-0 query (spec.md §4.1).
func (t *Tree) ClearStatistics() {
	t.root.clearSubdivided()
}

// Insert adds the particle at the given index into the tree. Returns
// ErrOutOfBounds if the particle's position lies outside the root's box;
// the caller (the model) leaves the particle out of the tree for this step
// in that case rather than treating it as fatal (spec.md §7).
func (t *Tree) Insert(index int) error {
	return t.root.insert(t, index, 0)
}

// ComputeMassDistribution recomputes nodeMass and massCenter for every node
// in post-order, establishing invariant I2 (spec.md §3): an internal node's
// mass is the sum of its children's masses, and its center is their
// mass-weighted average.
func (t *Tree) ComputeMassDistribution() {
	t.root.computeMassDistribution(t)
}

// MassCenter returns the root's aggregate mass center, valid after
// ComputeMassDistribution.
func (t *Tree) MassCenter() vector.Vector2D { return t.root.massCenter }

// TotalMass returns the root's aggregate mass, valid after
// ComputeMassDistribution.
func (t *Tree) TotalMass() float64 { return t.root.nodeMass }
