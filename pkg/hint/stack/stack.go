// ABOUTME: Groups markers with overlapping rectangles into stacks and rotates their z-order
// ABOUTME: Partitioning is a pure worklist traversal; rotation permutes existing z-order values

// Package stack resolves overlapping hint markers. Markers whose rectangles
// are connected through a chain of pairwise overlaps form a stack; rotating
// a stack cycles which of its markers is drawn on top.
package stack

import (
	"cmp"
	"slices"

	"github.com/mauromedda/hintmark/pkg/hint"
)

// Item is what the resolver needs from a marker.
type Item interface {
	Position() hint.Rect
	ZOrder() int
	SetZOrder(z int)
}

// Overlaps reports whether two rectangles intersect. Touching edges count.
func Overlaps(a, b hint.Rect) bool {
	return a.Bottom >= b.Top && a.Top <= b.Bottom &&
		a.Right >= b.Left && a.Left <= b.Right
}

// component collects the connected component of seed among remaining.
// It returns the component (seed first, then discovery order) and the
// indices of remaining that were not absorbed, in their original order.
func component(seed int, remaining []int, rects []hint.Rect) (group, rest []int) {
	rest = slices.Clone(remaining)
	group = []int{seed}
	for head := 0; head < len(group); head++ {
		cur := rects[group[head]]
		kept := rest[:0]
		for _, idx := range rest {
			if Overlaps(cur, rects[idx]) {
				group = append(group, idx)
				continue
			}
			kept = append(kept, idx)
		}
		rest = kept
	}
	return group, rest
}

// Partition splits rects into connected groups of overlapping rectangles.
// Every index appears in exactly one group. Groups are ordered by their
// lowest index.
func Partition(rects []hint.Rect) [][]int {
	remaining := make([]int, len(rects))
	for i := range remaining {
		remaining[i] = i
	}

	var groups [][]int
	for len(remaining) > 0 {
		var group []int
		group, remaining = component(remaining[0], remaining[1:], rects)
		groups = append(groups, group)
	}
	return groups
}

// StackFor returns the stack of markers connected to seed through pool,
// seed first, and the markers of pool that are not part of it. seed must
// not be in pool. pool itself is left untouched.
func StackFor[T Item](seed T, pool []T) (stack, rest []T) {
	rects := make([]hint.Rect, 0, len(pool)+1)
	rects = append(rects, seed.Position())
	remaining := make([]int, 0, len(pool))
	for i, p := range pool {
		rects = append(rects, p.Position())
		remaining = append(remaining, i+1)
	}

	group, left := component(0, remaining, rects)

	stack = make([]T, 0, len(group))
	stack = append(stack, seed)
	for _, idx := range group[1:] {
		stack = append(stack, pool[idx-1])
	}
	rest = make([]T, 0, len(left))
	for _, idx := range left {
		rest = append(rest, pool[idx-1])
	}
	return stack, rest
}

// Stacks partitions items into stacks of overlapping markers.
func Stacks[T Item](items []T) [][]T {
	groups := Partition(positions(items))
	stacks := make([][]T, len(groups))
	for i, g := range groups {
		stacks[i] = make([]T, len(g))
		for j, idx := range g {
			stacks[i][j] = items[idx]
		}
	}
	return stacks
}

// Rotate cycles the z-order of every stack in items by one step.
//
// Within a stack, markers are ordered by z-order ascending (ties by their
// position in items) and the z-order values are shifted: forward moves the
// highest value to the lowest marker, backward moves the lowest value to
// the highest marker. Values are only reassigned, never invented, so
// markers outside a stack keep their relation to it. Single-marker stacks
// are left alone.
func Rotate[T Item](items []T, forward bool) {
	// All stacks are identified before any z-order changes.
	groups := Partition(positions(items))

	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		slices.SortFunc(g, func(a, b int) int {
			if c := cmp.Compare(items[a].ZOrder(), items[b].ZOrder()); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		zs := make([]int, len(g))
		for i, idx := range g {
			zs[i] = items[idx].ZOrder()
		}
		rotate(zs, forward)
		for i, idx := range g {
			items[idx].SetZOrder(zs[i])
		}
	}
}

func rotate(zs []int, forward bool) {
	n := len(zs)
	if n < 2 {
		return
	}
	if forward {
		last := zs[n-1]
		copy(zs[1:], zs[:n-1])
		zs[0] = last
		return
	}
	first := zs[0]
	copy(zs, zs[1:])
	zs[n-1] = first
}

func positions[T Item](items []T) []hint.Rect {
	rects := make([]hint.Rect, len(items))
	for i, it := range items {
		rects[i] = it.Position()
	}
	return rects
}
