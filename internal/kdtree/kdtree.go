// Package kdtree implements a static spatial index over N-dimensional
// points, used to accelerate nearest-neighbor and radius queries during
// clustering. The tree is built once from a point set and never mutated.
package kdtree

import (
	"math"
	"sort"
)

// leafCapacity is the maximum number of points a leaf node holds before it
// must be split.
const leafCapacity = 16

// Point is an N-dimensional point plus the index it was built with, so
// callers can map a query result back to the original point list.
type Point struct {
	Vec   []float64
	Index int
}

// node is a flat-arena tagged-variant KD-tree node. A node is a leaf when
// Points is non-nil; otherwise it is an internal node with Axis/Split and
// child offsets into the tree's node slice.
type node struct {
	// Leaf fields.
	points []Point

	// Internal fields.
	axis        int
	split       float64
	left, right int // indices into Tree.nodes; -1 means absent
}

func (n *node) isLeaf() bool {
	return n.points != nil
}

// Tree is an immutable KD-tree over a fixed point set.
type Tree struct {
	nodes []node
	root  int
	dims  int
}

// Build constructs a KD-tree over points. Each input point appears in
// exactly one leaf. Building an empty point set yields a Tree with no
// root; queries against it return no results.
func Build(points []Point) *Tree {
	t := &Tree{}
	if len(points) == 0 {
		t.root = -1
		return t
	}
	t.dims = len(points[0].Vec)

	buf := make([]Point, len(points))
	copy(buf, points)
	t.root = t.build(buf)
	return t
}

// build recursively partitions pts, appending nodes to t.nodes, and returns
// the index of the node it created.
func (t *Tree) build(pts []Point) int {
	if len(pts) <= leafCapacity {
		idx := len(t.nodes)
		leafPts := make([]Point, len(pts))
		copy(leafPts, pts)
		t.nodes = append(t.nodes, node{points: leafPts, left: -1, right: -1})
		return idx
	}

	axis := chooseSplitAxis(pts, t.dims)
	sort.Slice(pts, func(i, j int) bool {
		return pts[i].Vec[axis] < pts[j].Vec[axis]
	})
	median := len(pts) / 2
	splitVal := pts[median].Vec[axis]

	idx := len(t.nodes)
	t.nodes = append(t.nodes, node{axis: axis, split: splitVal})

	left := t.build(pts[:median])
	right := t.build(pts[median:])

	t.nodes[idx].left = left
	t.nodes[idx].right = right
	return idx
}

// chooseSplitAxis returns the dimension of maximum variance across pts.
func chooseSplitAxis(pts []Point, dims int) int {
	mean := make([]float64, dims)
	for _, p := range pts {
		for d := 0; d < dims; d++ {
			mean[d] += p.Vec[d]
		}
	}
	n := float64(len(pts))
	for d := range mean {
		mean[d] /= n
	}

	variance := make([]float64, dims)
	for _, p := range pts {
		for d := 0; d < dims; d++ {
			diff := p.Vec[d] - mean[d]
			variance[d] += diff * diff
		}
	}

	best := 0
	for d := 1; d < dims; d++ {
		if variance[d] > variance[best] {
			best = d
		}
	}
	return best
}

// Result is a query match: the original index of the matched point and its
// distance from the query point.
type Result struct {
	Index    int
	Distance float64
}

// Nearest returns the closest point to q, breaking ties by lowest index.
// Nearest on an empty tree returns ok=false.
func (t *Tree) Nearest(q []float64) (Result, bool) {
	if t.root == -1 {
		return Result{}, false
	}
	best := Result{Index: -1, Distance: math.Inf(1)}
	t.nearest(t.root, q, &best)
	if best.Index == -1 {
		return Result{}, false
	}
	return best, true
}

func (t *Tree) nearest(nodeIdx int, q []float64, best *Result) {
	if nodeIdx == -1 {
		return
	}
	n := &t.nodes[nodeIdx]

	if n.isLeaf() {
		for _, p := range n.points {
			d := euclidean(q, p.Vec)
			if d < best.Distance || (d == best.Distance && p.Index < best.Index) {
				best.Distance = d
				best.Index = p.Index
			}
		}
		return
	}

	var near, far int
	if q[n.axis] < n.split {
		near, far = n.left, n.right
	} else {
		near, far = n.right, n.left
	}

	t.nearest(near, q, best)

	axisDist := q[n.axis] - n.split
	if axisDist*axisDist <= best.Distance*best.Distance {
		t.nearest(far, q, best)
	}
}

// SearchRadius returns every point within r of q (inclusive). Order is
// stable for a given tree and query but otherwise unspecified.
func (t *Tree) SearchRadius(q []float64, r float64) []Result {
	if t.root == -1 {
		return nil
	}
	var out []Result
	t.searchRadius(t.root, q, r, &out)
	return out
}

func (t *Tree) searchRadius(nodeIdx int, q []float64, r float64, out *[]Result) {
	if nodeIdx == -1 {
		return
	}
	n := &t.nodes[nodeIdx]

	if n.isLeaf() {
		for _, p := range n.points {
			d := euclidean(q, p.Vec)
			if d <= r {
				*out = append(*out, Result{Index: p.Index, Distance: d})
			}
		}
		return
	}

	axisDist := q[n.axis] - n.split
	if axisDist <= 0 {
		t.searchRadius(n.left, q, r, out)
		if -axisDist <= r {
			t.searchRadius(n.right, q, r, out)
		}
	} else {
		t.searchRadius(n.right, q, r, out)
		if axisDist <= r {
			t.searchRadius(n.left, q, r, out)
		}
	}
}

// euclidean computes the Euclidean distance between two equal-length
// vectors. Distance (not squared distance) is returned so radius queries
// can compare directly against a caller-supplied radius.
func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
