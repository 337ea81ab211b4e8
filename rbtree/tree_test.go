package rbtree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func lessInt(a, b int) bool { return a < b }

func makeIntTree(t *testing.T) *Tree[int, int] {
	t.Helper()
	tree, err := New(Config[int, int]{KeyOf: Identity[int], Less: lessInt})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return tree
}

func insertInts(t *testing.T, tree *Tree[int, int], keys ...int) {
	t.Helper()
	for _, k := range keys {
		if _, ok, err := tree.Insert(k); err != nil || !ok {
			t.Fatalf("insert of %d failed: ok=%v, err=%v", k, ok, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after inserting %d: %v", k, err)
		}
	}
}

// collectInts walks the tree by successor-chasing from Begin.
func collectInts(tree *Tree[int, int]) []int {
	out := []int{}
	for it := tree.Begin(); !it.Equal(tree.End()); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// collectReverse walks the tree by predecessor-chasing from RBegin.
func collectReverse(tree *Tree[int, int]) []int {
	out := []int{}
	for it := tree.RBegin(); !it.Equal(tree.REnd()); it = it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[int, int]{Less: lessInt})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing key projection, got %v", err)
	}
	_, err = New(Config[int, int]{KeyOf: Identity[int]})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing comparator, got %v", err)
	}
}

func TestNewDefaultsAllocator(t *testing.T) {
	tree := makeIntTree(t)
	if tree.Config().Allocator == nil {
		t.Fatalf("expected default allocator in normalized config")
	}
}

func TestEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	tree := makeIntTree(t)
	if err := tree.Check(); err != nil {
		t.Fatalf("expected empty tree to be valid, got %v", err)
	}
	if !tree.Begin().Equal(tree.End()) {
		t.Errorf("expected begin == end for empty tree")
	}
	if !tree.RBegin().Equal(tree.REnd()) {
		t.Errorf("expected rbegin == rend for empty tree")
	}
	if !tree.End().IsEnd() || tree.Len() != 0 || !tree.IsEmpty() {
		t.Errorf("unexpected empty tree state len=%d", tree.Len())
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("expected no minimum in empty tree")
	}
	if got := tree.End().Value(); got != 0 {
		t.Errorf("expected zero value at end, got %d", got)
	}
	if !tree.End().Prev().Equal(tree.End()) {
		t.Errorf("expected end.Prev() of empty tree to stay at end")
	}
	if !tree.Find(7).IsEnd() {
		t.Errorf("expected find in empty tree to return end")
	}
}

func TestFirstInsertBecomesBlackRoot(t *testing.T) {
	tree := makeIntTree(t)
	it, ok, err := tree.Insert(42)
	if err != nil || !ok {
		t.Fatalf("insert failed: ok=%v, err=%v", ok, err)
	}
	root := tree.hdr.root()
	if root != it.node || root.color != Black {
		t.Fatalf("expected first node to be black root")
	}
	if tree.hdr.leftmost() != root || tree.hdr.rightmost() != root || root.parent != tree.hdr.end() {
		t.Fatalf("expected header to cache the single node")
	}
}

func TestInsertScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	tree := makeIntTree(t)
	insertInts(t, tree, 20, 10, 50, 30, 80, 40, 35, 25)
	want := []int{10, 20, 25, 30, 35, 40, 50, 80}
	if got := collectInts(tree); !slices.Equal(got, want) {
		t.Fatalf("in-order = %v, want %v", got, want)
	}
	root := tree.hdr.root()
	if root.value != 35 || root.left.value != 20 || root.right.value != 50 {
		t.Errorf("unexpected tree shape, root=%d", root.value)
	}
	if root.left.color != Red || root.right.color != Red {
		t.Errorf("expected children of root to be red")
	}
	if tree.BlackHeight() != 2 {
		t.Errorf("black height = %d, want 2", tree.BlackHeight())
	}
}

func TestEraseInternalNodeScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	tree := makeIntTree(t)
	insertInts(t, tree, 20, 10, 50, 30, 80, 40, 35, 25)
	it20 := tree.Find(20)
	it25 := tree.Find(25)
	if n := tree.EraseKey(20); n != 1 {
		t.Fatalf("EraseKey(20) = %d, want 1", n)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariants broken after erase: %v", err)
	}
	want := []int{10, 25, 30, 35, 40, 50, 80}
	if got := collectInts(tree); !slices.Equal(got, want) {
		t.Fatalf("in-order = %v, want %v", got, want)
	}
	if it20.node == tree.Find(25).node {
		t.Errorf("node of erased key must not be reused for its successor")
	}
	if !tree.Find(25).Equal(it25) {
		t.Errorf("expected iterator to successor 25 to survive the relink")
	}
	if v := tree.hdr.root().left.value; v != 25 {
		t.Errorf("expected successor 25 to take the place of 20, found %d", v)
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 3, 1, 2)
	existing := tree.Find(2)
	it, ok, err := tree.Insert(2)
	if err != nil {
		t.Fatal(err)
	}
	if ok || !it.Equal(existing) {
		t.Errorf("expected duplicate insert to return existing position and false")
	}
	if tree.Len() != 3 {
		t.Errorf("size changed on duplicate insert: %d", tree.Len())
	}
}

func TestEraseBeginRoundTrip(t *testing.T) {
	tree := makeIntTree(t)
	for i := 0; i < 200; i++ {
		if _, _, err := tree.Insert((i * 37) % 200); err != nil {
			t.Fatal(err)
		}
	}
	if tree.Len() != 200 {
		t.Fatalf("expected 200 values, have %d", tree.Len())
	}
	expect := 0
	for !tree.IsEmpty() {
		if v := tree.Begin().Value(); v != expect {
			t.Fatalf("begin = %d, want %d", v, expect)
		}
		tree.Erase(tree.Begin())
		if err := tree.Check(); err != nil {
			t.Fatalf("invariants broken after erasing %d: %v", expect, err)
		}
		expect++
	}
	if tree.Len() != 0 || !tree.Begin().Equal(tree.End()) {
		t.Fatalf("expected empty tree after erasing everything")
	}
}

func TestHeaderTracksExtrema(t *testing.T) {
	tree := makeIntTree(t)
	keys := []int{50, 20, 70, 10, 90, 5, 95, 60, 1, 99}
	for i, k := range keys {
		tree.Insert(k)
		lo, hi := slices.Min(keys[:i+1]), slices.Max(keys[:i+1])
		if tree.Begin().Value() != lo || tree.RBegin().Value() != hi {
			t.Fatalf("after insert %d: begin=%d rbegin=%d, want %d/%d",
				k, tree.Begin().Value(), tree.RBegin().Value(), lo, hi)
		}
	}
	remaining := slices.Clone(keys)
	for _, k := range []int{1, 99, 50, 5, 95, 10} {
		tree.EraseKey(k)
		remaining = slices.DeleteFunc(remaining, func(x int) bool { return x == k })
		lo, hi := slices.Min(remaining), slices.Max(remaining)
		if tree.Begin().Value() != lo || tree.RBegin().Value() != hi {
			t.Fatalf("after erase %d: begin=%d rbegin=%d, want %d/%d",
				k, tree.Begin().Value(), tree.RBegin().Value(), lo, hi)
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestClearTwice(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 4, 2, 6, 1, 3, 5, 7)
	tree.Clear()
	if tree.Len() != 0 || tree.Check() != nil {
		t.Fatalf("unexpected state after first clear")
	}
	tree.Clear()
	if tree.Len() != 0 || tree.Check() != nil || !tree.Begin().Equal(tree.End()) {
		t.Fatalf("unexpected state after second clear")
	}
	insertInts(t, tree, 9)
	if got := collectInts(tree); !slices.Equal(got, []int{9}) {
		t.Fatalf("tree not reusable after clear: %v", got)
	}
}

func TestBounds(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 10, 20, 30, 40)
	cases := []struct {
		key          int
		lower, upper int // -1 means End
	}{
		{5, 10, 10},
		{10, 10, 20},
		{15, 20, 20},
		{40, 40, -1},
		{45, -1, -1},
	}
	valueOrEnd := func(it Iterator[int]) int {
		if it.IsEnd() {
			return -1
		}
		return it.Value()
	}
	for _, c := range cases {
		if got := valueOrEnd(tree.LowerBound(c.key)); got != c.lower {
			t.Errorf("LowerBound(%d) = %d, want %d", c.key, got, c.lower)
		}
		if got := valueOrEnd(tree.UpperBound(c.key)); got != c.upper {
			t.Errorf("UpperBound(%d) = %d, want %d", c.key, got, c.upper)
		}
		first, last := tree.EqualRange(c.key)
		if !first.Equal(tree.LowerBound(c.key)) || !last.Equal(tree.UpperBound(c.key)) {
			t.Errorf("EqualRange(%d) inconsistent with bounds", c.key)
		}
	}
	if tree.Count(20) != 1 || tree.Count(25) != 0 {
		t.Errorf("unexpected counts")
	}
	if !tree.Contains(30) || tree.Contains(31) {
		t.Errorf("unexpected Contains results")
	}
	if !tree.Find(31).Equal(tree.End()) {
		t.Errorf("expected Find of missing key to return End")
	}
}

func TestReverseIteration(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 3, 1, 4, 5, 9, 2, 6)
	want := []int{9, 6, 5, 4, 3, 2, 1}
	if got := collectReverse(tree); !slices.Equal(got, want) {
		t.Fatalf("reverse = %v, want %v", got, want)
	}
	if !tree.End().Prev().Equal(tree.Find(9)) {
		t.Errorf("expected end.Prev() to be the last element")
	}
	if got := slices.Collect(tree.Backward()); !slices.Equal(got, want) {
		t.Errorf("Backward = %v, want %v", got, want)
	}
	slices.Reverse(want)
	if got := slices.Collect(tree.All()); !slices.Equal(got, want) {
		t.Errorf("All = %v, want %v", got, want)
	}
	if got := slices.Collect(tree.Ascend(4)); !slices.Equal(got, []int{4, 5, 6, 9}) {
		t.Errorf("Ascend(4) = %v", got)
	}
}

func TestIteratorsSurviveRotations(t *testing.T) {
	tree := makeIntTree(t)
	it, _, _ := tree.Insert(500)
	p := it.Ptr()
	for i := 0; i < 1000; i++ {
		if i != 500 {
			tree.Insert(i)
		}
	}
	for i := 0; i < 1000; i += 3 {
		if i != 500 {
			tree.EraseKey(i)
		}
	}
	if it.Value() != 500 || it.Ptr() != p || !tree.Find(500).Equal(it) {
		t.Fatalf("iterator did not survive rebalancing")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestInsertHint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	tree := makeIntTree(t)
	for i := 0; i < 100; i += 2 {
		if _, err := tree.InsertHint(tree.End(), i); err != nil {
			t.Fatal(err)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	// hint right after the new position
	it, err := tree.InsertHint(tree.Find(10), 9)
	if err != nil || it.Value() != 9 || !it.Next().Equal(tree.Find(10)) {
		t.Fatalf("insert before hint failed")
	}
	// hint right before the new position
	it, err = tree.InsertHint(tree.Find(10), 11)
	if err != nil || it.Value() != 11 || !it.Prev().Equal(tree.Find(10)) {
		t.Fatalf("insert after hint failed")
	}
	// hint at begin and at the rightmost element
	if it, _ = tree.InsertHint(tree.Begin(), -1); !it.Equal(tree.Begin()) {
		t.Fatalf("insert at begin failed")
	}
	if it, _ = tree.InsertHint(tree.RBegin().Base().Prev(), 1000); !it.Equal(tree.End().Prev()) {
		t.Fatalf("insert after rightmost failed")
	}
	// misleading hint falls back to a full search
	if it, _ = tree.InsertHint(tree.Begin(), 51); it.Value() != 51 {
		t.Fatalf("insert with bad hint failed")
	}
	// duplicate with hint returns the existing element
	existing := tree.Find(20)
	if it, _ = tree.InsertHint(tree.Begin(), 20); !it.Equal(existing) {
		t.Fatalf("duplicate hint insert returned wrong position")
	}
	if it, _ = tree.InsertHint(existing, 20); !it.Equal(existing) {
		t.Fatalf("duplicate hint insert at itself returned wrong position")
	}
	if it, _ = tree.InsertHint(Iterator[int]{}, 7); it.Value() != 7 {
		t.Fatalf("insert with zero hint failed")
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 56 {
		t.Errorf("len = %d, want 56", tree.Len())
	}
}

func TestInsertAllAndEraseRange(t *testing.T) {
	tree := makeIntTree(t)
	if err := tree.InsertAll(1, 2, 3, 4, 5, 6, 7, 8, 3, 9); err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 9 {
		t.Fatalf("len = %d, want 9", tree.Len())
	}
	last := tree.EraseRange(tree.Find(3), tree.Find(7))
	if last.Value() != 7 {
		t.Errorf("EraseRange returned %d, want 7", last.Value())
	}
	if got := collectInts(tree); !slices.Equal(got, []int{1, 2, 7, 8, 9}) {
		t.Fatalf("after EraseRange: %v", got)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	tree.EraseRange(tree.Begin(), tree.End())
	if !tree.IsEmpty() || tree.Check() != nil {
		t.Fatalf("expected full range erase to clear the tree")
	}
}

func TestEraseReturnsSuccessor(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 1, 2, 3)
	if next := tree.Erase(tree.Find(2)); next.Value() != 3 {
		t.Errorf("Erase returned %d, want 3", next.Value())
	}
	if next := tree.Erase(tree.Find(3)); !next.Equal(tree.End()) {
		t.Errorf("expected erasing the last element to return End")
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 8, 4, 12, 2, 6, 10, 14, 1, 3)
	c, err := tree.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Check(); err != nil {
		t.Fatalf("clone broken: %v", err)
	}
	if !Equal(tree, c, func(a, b int) bool { return a == b }) {
		t.Fatalf("clone differs: %v vs %v", collectInts(tree), collectInts(c))
	}
	if c.hdr.root() == tree.hdr.root() || c.hdr.root().parent != c.hdr.end() {
		t.Fatalf("clone shares nodes with original")
	}
	c.EraseKey(8)
	c.Insert(100)
	if tree.Contains(100) || !tree.Contains(8) || tree.Len() != 9 {
		t.Fatalf("modifying the clone changed the original")
	}
	empty, err := makeIntTree(t).Clone()
	if err != nil || !empty.IsEmpty() || empty.Check() != nil {
		t.Fatalf("clone of empty tree failed: %v", err)
	}
}

func TestAssign(t *testing.T) {
	src := makeIntTree(t)
	insertInts(t, src, 5, 3, 7)
	dst, err := New(Config[int, int]{KeyOf: Identity[int], Less: func(a, b int) bool { return a > b }})
	if err != nil {
		t.Fatal(err)
	}
	dst.InsertAll(1, 2)
	if err := dst.Assign(src); err != nil {
		t.Fatal(err)
	}
	if got := collectInts(dst); !slices.Equal(got, []int{3, 5, 7}) {
		t.Fatalf("assigned tree = %v", got)
	}
	dst.Insert(4) // must be ordered by the assigned comparator
	if got := collectInts(dst); !slices.Equal(got, []int{3, 4, 5, 7}) {
		t.Fatalf("comparator not taken over: %v", got)
	}
	if err := dst.Assign(dst); err != nil || dst.Len() != 4 {
		t.Fatalf("self-assignment must be a no-op")
	}
}

func TestSwap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	a, b := makeIntTree(t), makeIntTree(t)
	a.Swap(b) // both empty
	if !a.IsEmpty() || !b.IsEmpty() || a.Check() != nil || b.Check() != nil {
		t.Fatalf("swap of empty trees broke them")
	}
	insertInts(t, a, 1, 2, 3)
	itA := a.Find(2)
	a.Swap(b) // a empty now
	if !a.IsEmpty() || b.Len() != 3 || a.Check() != nil || b.Check() != nil {
		t.Fatalf("swap into empty tree failed")
	}
	if !b.Find(2).Equal(itA) {
		t.Fatalf("swap must not move nodes")
	}
	b.Swap(a) // b empty now
	if !b.IsEmpty() || a.Len() != 3 || a.Check() != nil || b.Check() != nil {
		t.Fatalf("swap out of tree failed")
	}
	insertInts(t, b, 10, 20)
	a.Swap(b)
	if got := collectInts(a); !slices.Equal(got, []int{10, 20}) {
		t.Fatalf("a after swap = %v", got)
	}
	if got := collectInts(b); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("b after swap = %v", got)
	}
	if a.Check() != nil || b.Check() != nil {
		t.Fatalf("swap of non-empty trees broke invariants")
	}
	if !b.End().Prev().Equal(b.Find(3)) || !a.End().Prev().Equal(a.Find(20)) {
		t.Fatalf("end positions not re-anchored after swap")
	}
}

func TestCompareTrees(t *testing.T) {
	eq := func(a, b int) bool { return a == b }
	a, b := makeIntTree(t), makeIntTree(t)
	if !Equal(a, b, eq) || LexicographicalLess(a, b, lessInt) {
		t.Fatalf("empty trees must be equal and not less")
	}
	a.InsertAll(1, 2, 3)
	b.InsertAll(1, 2, 4)
	if Equal(a, b, eq) {
		t.Errorf("expected trees to differ")
	}
	if !LexicographicalLess(a, b, lessInt) || LexicographicalLess(b, a, lessInt) {
		t.Errorf("expected [1 2 3] < [1 2 4]")
	}
	b.EraseKey(4)
	if !LexicographicalLess(b, a, lessInt) {
		t.Errorf("expected prefix to be less")
	}
}

func TestComparatorDefinesEquivalence(t *testing.T) {
	type entry struct {
		name string
		rank int
	}
	tree, err := New(Config[int, entry]{
		KeyOf: func(e entry) int { return e.rank / 10 }, // buckets of ten
		Less:  lessInt,
	})
	if err != nil {
		t.Fatal(err)
	}
	tree.Insert(entry{"a", 11})
	_, ok, _ := tree.Insert(entry{"b", 15})
	if ok {
		t.Fatalf("expected equivalent key to be rejected")
	}
	if got := tree.Find(1).Value().name; got != "a" {
		t.Fatalf("expected first entry to be kept, got %q", got)
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := makeIntTree(t)
	insertInts(t, tree, 2, 1, 3)
	tree.hdr.root().left.color = Black // breaks black height
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected invariant error, got %v", err)
	}
	tree.hdr.root().left.color = Red
	tree.hdr.node.left = tree.hdr.root()
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected stale leftmost to be detected, got %v", err)
	}
	tree.hdr.node.left = tree.hdr.root().left
	tree.hdr.count = 7
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected count mismatch to be detected, got %v", err)
	}
}
