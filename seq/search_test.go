package seq

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type record struct {
	id   int
	name string
}

func byID(r record) int { return r.id }

func cmpInt(a, b int) int {
	return a - b
}

func records(ids ...int) []record {
	rr := make([]record, len(ids))
	for i, id := range ids {
		rr[i] = record{id: id, name: strings.Repeat("x", id%5)}
	}
	return rr
}

func TestBinarySearchEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	if idx := BinarySearch([]int{}, Natural(7)); idx != ^0 {
		t.Fatalf("search in empty slice: got=%d want=%d", idx, ^0)
	}
	if idx := BinarySearch[int](nil, Natural(7)); idx != -1 {
		t.Fatalf("search in nil slice: got=%d want=-1", idx)
	}
}

func TestBinarySearchSingle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	s := []int{5}
	cases := []struct {
		target, want int
	}{
		{5, 0},
		{3, ^0},
		{9, ^1},
	}
	for _, c := range cases {
		if idx := BinarySearch(s, Natural(c.target)); idx != c.want {
			t.Fatalf("search(%d) in %v: got=%d want=%d", c.target, s, idx, c.want)
		}
	}
}

func TestBinarySearchCallingConventionsAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	ints := []int{1, 3, 5, 7}
	rr := records(1, 3, 5, 7)
	for target := 0; target <= 8; target++ {
		tg := target
		direct := BinarySearch(ints, CompareFunc[int](func(it int) int { return it - tg }))
		twoItem := BinarySearch(ints, Against(tg, cmpInt))
		keyCmp := BinarySearch(rr, ByKey(tg, byID, cmpInt))
		keyOrd := BinarySearch(rr, ByOrderedKey(tg, byID))
		natural := BinarySearch(ints, Natural(tg))
		if direct != twoItem || direct != keyCmp || direct != keyOrd || direct != natural {
			t.Fatalf("target %d: conventions disagree: direct=%d two-item=%d key+cmp=%d key+ord=%d natural=%d",
				tg, direct, twoItem, keyCmp, keyOrd, natural)
		}
	}
	if idx := BinarySearch(rr, ByOrderedKey(5, byID)); idx != 2 {
		t.Fatalf("search(5): got=%d want=2", idx)
	}
	idx := BinarySearch(rr, ByOrderedKey(4, byID))
	if idx >= 0 || ^idx != 2 {
		t.Fatalf("search(4): got=%d, want complement of 2 (%d)", idx, ^2)
	}
}

func TestBinarySearchRandomSequences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	rnd := rand.New(rand.NewSource(4711))
	for round := 0; round < 200; round++ {
		n := rnd.Intn(40)
		s := make([]int, n)
		for i := range s {
			s[i] = rnd.Intn(50)
		}
		sort.Ints(s)
		target := rnd.Intn(60) - 5
		idx := BinarySearch(s, Natural(target))
		if idx >= 0 {
			if s[idx] != target {
				t.Fatalf("round %d: found index %d holds %d, want %d", round, idx, s[idx], target)
			}
			continue
		}
		ins := ^idx
		if ins < 0 || ins > len(s) {
			t.Fatalf("round %d: insertion point %d out of range [0,%d]", round, ins, len(s))
		}
		for i, v := range s {
			if v == target {
				t.Fatalf("round %d: target %d present at %d but not found", round, target, i)
			}
		}
		if ins > 0 && s[ins-1] > target || ins < len(s) && s[ins] < target {
			t.Fatalf("round %d: inserting %d at %d breaks order of %v", round, target, ins, s)
		}
	}
}

func TestInsertionPoint(t *testing.T) {
	if InsertionPoint(3) != 3 {
		t.Errorf("expected match index to be returned as is")
	}
	if InsertionPoint(^3) != 3 {
		t.Errorf("expected complement to be resolved to insertion point 3")
	}
	if InsertionPoint(-1) != 0 {
		t.Errorf("expected -1 to resolve to insertion point 0")
	}
}

func TestSortedFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	rr := records(2, 4, 6, 8)
	r, ok := SortedFind(rr, ByOrderedKey(6, byID))
	if !ok || r.id != 6 {
		t.Fatalf("find(6): got=(%v, %v), want id 6", r, ok)
	}
	r, ok = SortedFind(rr, ByOrderedKey(5, byID))
	if ok || r != (record{}) {
		t.Fatalf("find(5): got=(%v, %v), want zero value and false", r, ok)
	}
	p, ok := SortedFind([]*record{}, ByOrderedKey(5, func(r *record) int { return r.id }))
	if ok || p != nil {
		t.Fatalf("find in empty slice: got=(%v, %v), want (nil, false)", p, ok)
	}
}

func TestSortedInsertKeepsOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	var s []int
	for _, v := range []int{5, 1, 9, 3, 3, 7, 0, 9} {
		idx := SortedInsertOrdered(&s, v)
		if s[idx] != v {
			t.Fatalf("insert(%d): s[%d]=%d", v, idx, s[idx])
		}
		if !sort.IntsAreSorted(s) {
			t.Fatalf("insert(%d) broke order: %v", v, s)
		}
		if BinarySearch(s, Natural(v)) < 0 {
			t.Fatalf("inserted %d not found afterwards in %v", v, s)
		}
	}
	if len(s) != 8 {
		t.Fatalf("expected duplicates to be inserted, len=%d", len(s))
	}
}

func TestSortedInsertDuplicateAtMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	rr := records(1, 3, 5)
	dup := record{id: 3, name: "dup"}
	idx := SortedInsert(&rr, dup, Against(dup, func(a, b record) int { return a.id - b.id }))
	if idx != 1 {
		t.Fatalf("duplicate inserted at %d, want 1", idx)
	}
	if rr[1].name != "dup" || rr[2].id != 3 {
		t.Fatalf("expected duplicate in front of the found match, got %v", rr)
	}
}

func TestAddUniqueSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "expanse")
	defer teardown()

	s := []int{1, 3, 5, 7}
	if !AddUniqueSorted(&s, 4, Natural(4)) {
		t.Fatalf("expected 4 to be inserted")
	}
	if AddUniqueSorted(&s, 4, Natural(4)) {
		t.Fatalf("expected second insertion of 4 to be rejected")
	}
	if len(s) != 5 || s[2] != 4 {
		t.Fatalf("unexpected slice after unique inserts: %v", s)
	}
	if AddUniqueSorted(&s, 1, Natural(1)) {
		t.Fatalf("expected existing 1 to be rejected")
	}
}
