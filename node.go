package suffixtree

import (
	"cmp"
	"slices"
	"sort"
)

// edge is a (label, destination) pair. The label is a view into a stored
// input sequence, never a copy; splits shrink it from the front.
type edge[E any] struct {
	label key[E]
	dest  int32
}

// node holds the outgoing edges keyed by the first element of their label,
// a suffix link, and the payload set of identifiers. Children are kept as
// two parallel slices sorted by first element, so lookup is a binary
// search and harvest iterates in ascending element order.
type node[E any, ID cmp.Ordered] struct {
	first  []E     // first element of each outgoing edge label
	edges  []int32 // edge handles, parallel to first
	data   []ID    // sorted: ids are non-decreasing across puts
	suffix int32
	count  int // cached result count, -1 when never computed
}

// findChild locates el among n's children. Returns the slot and whether an
// edge starting with el exists; on a miss the slot is the insertion point.
func (t *Tree[E, ID]) findChild(n int32, el E) (int, bool) {
	nd := &t.nodes[n]
	i := sort.Search(len(nd.first), func(i int) bool {
		return !t.less(nd.first[i], el)
	})
	if i < len(nd.first) && !t.less(el, nd.first[i]) {
		return i, true
	}
	return i, false
}

// childEdge returns the handle of the outgoing edge whose label starts with
// el, or nilEdge.
func (t *Tree[E, ID]) childEdge(n int32, el E) int32 {
	if i, ok := t.findChild(n, el); ok {
		return t.nodes[n].edges[i]
	}
	return nilEdge
}

// setChild registers eh under n keyed by el, replacing any edge already
// registered under an equal element. This preserves first-element
// uniqueness: splits re-register the shortened edge under the new node and
// overwrite the old slot in the parent.
func (t *Tree[E, ID]) setChild(n int32, el E, eh int32) {
	i, ok := t.findChild(n, el)
	nd := &t.nodes[n]
	if ok {
		nd.edges[i] = eh
		return
	}
	nd.first = slices.Insert(nd.first, i, el)
	nd.edges = slices.Insert(nd.edges, i, eh)
}

func (t *Tree[E, ID]) contains(n int32, id ID) bool {
	_, ok := slices.BinarySearch(t.nodes[n].data, id)
	return ok
}

// addRef adds id to n's payload set and walks the suffix-link chain upward
// adding it to every node that does not already contain it. The chain is
// finite and terminates at the root, and an id is never removed once added.
func (t *Tree[E, ID]) addRef(n int32, id ID) {
	for n != nilNode && !t.contains(n, id) {
		nd := &t.nodes[n]
		nd.data = append(nd.data, id)
		n = nd.suffix
	}
}

// getData collects at most max distinct ids from the subtree rooted at n,
// walking depth-first in children order. max < 0 means unbounded. The
// result is sorted ascending.
func (t *Tree[E, ID]) getData(n int32, max int) []ID {
	var out []ID
	seen := make(map[ID]struct{})
	t.collect(n, max, seen, &out)
	slices.Sort(out)
	return out
}

// collect reports whether the accumulator is full.
func (t *Tree[E, ID]) collect(n int32, max int, seen map[ID]struct{}, out *[]ID) bool {
	full := func() bool { return max >= 0 && len(*out) >= max }
	for _, id := range t.nodes[n].data {
		if full() {
			return true
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		*out = append(*out, id)
	}
	for _, eh := range t.nodes[n].edges {
		if full() {
			return true
		}
		if t.collect(t.edges[eh].dest, max, seen, out) {
			return true
		}
	}
	return full()
}

// countNode recomputes the cached result count of n's subtree post-order
// and returns the set of ids reachable from n.
func (t *Tree[E, ID]) countNode(n int32) map[ID]struct{} {
	set := make(map[ID]struct{}, len(t.nodes[n].data))
	for _, id := range t.nodes[n].data {
		set[id] = struct{}{}
	}
	for _, eh := range t.nodes[n].edges {
		for id := range t.countNode(t.edges[eh].dest) {
			set[id] = struct{}{}
		}
	}
	t.nodes[n].count = len(set)
	return set
}
