package geometry

import (
	"github.com/regexPattern/raytracer/pkg/core"
)

// Group is a composite shape owning child shapes. A group's transform is
// composed into each child when the child is added, so intersection and
// normal computation on a child need no walk back up the tree. The group
// keeps a bounding box enclosing all children, used to cull the whole
// subtree from a ray test.
type Group struct {
	base
	children []Shape
	bounds   core.AABB
}

// NewGroup creates an empty group with the given transform. Children added
// later are re-expressed under this transform.
func NewGroup(transform core.Transform) *Group {
	g := &Group{base: newBase(), bounds: core.EmptyAABB()}
	g.transform = transform
	return g
}

// AddChild transfers ownership of a shape to the group. The group's
// transform is composed into the child (and recursively into subgroup
// children), and the group's bounding box grows to include it.
func (g *Group) AddChild(child Shape) {
	applyTransform(child, g.transform)
	g.bounds = g.bounds.Union(Bounds(child))
	g.children = append(g.children, child)
}

// SetTransform replaces the group's transform and re-expresses every child
// under the new one, so a transform set after children were added still
// takes effect.
func (g *Group) SetTransform(t core.Transform) {
	delta := t.Mul(g.transform.Inverse())
	for _, child := range g.children {
		applyTransform(child, delta)
	}
	g.transform = t
	g.recomputeBounds()
}

// AddChildren adds multiple children at once
func (g *Group) AddChildren(children ...Shape) {
	for _, child := range children {
		g.AddChild(child)
	}
}

// Children returns the group's children. The slice is owned by the group.
func (g *Group) Children() []Shape {
	return g.children
}

// applyTransform composes t into a shape's transform. For groups this
// recurses into every descendant, then refreshes the cached bounds.
func applyTransform(s Shape, t core.Transform) {
	if sub, ok := s.(*Group); ok {
		for _, child := range sub.children {
			applyTransform(child, t)
		}
		sub.transform = t.Mul(sub.transform)
		sub.recomputeBounds()
		return
	}

	s.SetTransform(t.Mul(s.Transform()))
}

func (g *Group) recomputeBounds() {
	g.bounds = core.EmptyAABB()
	for _, child := range g.children {
		g.bounds = g.bounds.Union(Bounds(child))
	}
}

// intersect tests the ray against the group's bounding box and, on a hit,
// against every child. The box test may report false positives (a wasted
// descent) but never false negatives.
func (g *Group) intersect(ray core.Ray) []Intersection {
	if g.bounds.IsEmpty() || !g.bounds.Hit(ray) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}

	SortIntersections(xs)
	return xs
}

func (g *Group) localIntersect(ray core.Ray) []Intersection {
	return g.intersect(ray)
}

// localNormalAt is never reached: intersections always reference the leaf
// primitive hit, never a group.
func (g *Group) localNormalAt(core.Vec3, Intersection) core.Vec3 {
	panic("geometry: normal requested on a group")
}

func (g *Group) localBounds() core.AABB {
	return g.bounds
}

// Divide recursively rebalances the group so no subgroup holds more than
// threshold children, partitioning along the bounding box's longest axis.
// Children straddling the split stay at their current level. This reshapes
// ownership only: render output is identical, ray tests get cheaper.
//
// Divide must run before rendering starts; it mutates the tree.
func (g *Group) Divide(threshold int) {
	if threshold <= len(g.children) {
		left, right := g.partitionChildren()
		if len(left) > 0 {
			g.addSubgroup(left)
		}
		if len(right) > 0 {
			g.addSubgroup(right)
		}
	}

	for _, child := range g.children {
		if sub, ok := child.(*Group); ok {
			sub.Divide(threshold)
		}
	}
}

// partitionChildren removes and returns the children that fit entirely in
// the left or right half of the group's bounding box
func (g *Group) partitionChildren() (left, right []Shape) {
	leftBox, rightBox := g.bounds.Split()

	remaining := g.children[:0]
	for _, child := range g.children {
		childBox := Bounds(child)
		switch {
		case leftBox.ContainsBox(childBox):
			left = append(left, child)
		case rightBox.ContainsBox(childBox):
			right = append(right, child)
		default:
			remaining = append(remaining, child)
		}
	}
	g.children = remaining

	return left, right
}

// addSubgroup wraps already-owned children in a new subgroup. Their
// transforms are already fully composed, so the subgroup takes them as-is
// under an identity transform.
func (g *Group) addSubgroup(children []Shape) {
	sub := NewGroup(core.Identity())
	sub.children = children
	sub.recomputeBounds()
	g.children = append(g.children, sub)
}
