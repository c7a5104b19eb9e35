package quadtree

import (
	"math"

	"nbodysim/internal/particle"
	"nbodysim/internal/vector"
)

// CalculateForce computes the net gravitational acceleration exerted on the
// particle at targetIndex by the whole tree, using the Barnes-Hut opening
// criterion: a node with s/d <= theta is treated as a single body at its
// center of mass; otherwise it is opened (spec.md §4.1).
//
// track controls whether visited internal nodes have their subdivided flag
// set, so a renderer can later draw exactly the cells this query opened.
// Only the query for particle 0 is run with track=true (spec.md §5).
func (t *Tree) CalculateForce(targetIndex int, track bool) vector.Vector2D {
	tx, ty := position(t.states, targetIndex)
	var accelX, accelY float64
	t.root.accumulateForce(t, targetIndex, tx, ty, &accelX, &accelY, track)

	// Coincident particles share an exact position with whatever resident
	// the tree chose to keep, so the tree can only ever see one of them.
	// Every particle on the side-list is summed in directly (spec.md §4.1).
	for _, idx := range t.coincident {
		if idx == targetIndex {
			continue
		}
		sx, sy := position(t.states, idx)
		addPairwiseAcceleration(tx, ty, sx, sy, t.params[idx].Mass, t.g, t.softeningSq, &accelX, &accelY)
	}

	return vector.New(accelX, accelY)
}

func (n *Node) accumulateForce(t *Tree, targetIndex int, tx, ty float64, accelX, accelY *float64, track bool) {
	if n.count == 0 {
		return
	}

	if n.IsLeaf() {
		if n.particleIndex == targetIndex {
			return
		}
		addPairwiseAcceleration(tx, ty, n.massCenter.X, n.massCenter.Y, n.nodeMass, t.g, t.softeningSq, accelX, accelY)
		return
	}

	size := n.max.X - n.min.X
	dx := n.massCenter.X - tx
	dy := n.massCenter.Y - ty
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist > 0 && size/dist <= t.theta {
		addPairwiseAcceleration(tx, ty, n.massCenter.X, n.massCenter.Y, n.nodeMass, t.g, t.softeningSq, accelX, accelY)
		return
	}

	if track {
		n.subdivided = true
	}
	for _, c := range n.children {
		if c != nil {
			c.accumulateForce(t, targetIndex, tx, ty, accelX, accelY, track)
		}
	}
}

// addPairwiseAcceleration adds to (accelX, accelY) the acceleration induced
// on a point at (tx, ty) by a mass at (sx, sy), using Plummer softening:
// the softening length squared is added under the square root before the
// distance is cubed, not after (spec.md §4.1, original_source/Utils/Math.cpp).
func addPairwiseAcceleration(tx, ty, sx, sy, mass, g, softeningSq float64, accelX, accelY *float64) {
	dx := sx - tx
	dy := sy - ty
	distSq := dx*dx + dy*dy
	dist := math.Sqrt(distSq + softeningSq)
	denom := dist * dist * dist
	if denom == 0 {
		return
	}
	factor := g * mass / denom
	*accelX += factor * dx
	*accelY += factor * dy
}

// CalculateDirectForce computes the net acceleration on targetIndex by brute
// pairwise summation over every other particle, bypassing the tree entirely.
// It exists for testing the tree's approximation against the exact sum
// (property P5, theta == 0) and is never used on the simulation's hot path.
func CalculateDirectForce(states []particle.State, params []particle.Parameters, g, softeningSq float64, targetIndex int) vector.Vector2D {
	tx, ty := states[targetIndex].PositionX, states[targetIndex].PositionY
	var accelX, accelY float64
	for i, s := range states {
		if i == targetIndex {
			continue
		}
		addPairwiseAcceleration(tx, ty, s.PositionX, s.PositionY, params[i].Mass, g, softeningSq, &accelX, &accelY)
	}
	return vector.New(accelX, accelY)
}
