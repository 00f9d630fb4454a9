package jsoncache

import (
	"context"
	"slices"
	"testing"
)

func newTestSequence[T comparable](t *testing.T, initial ...T) (*SequenceCache[T], *memProvider) {
	t.Helper()
	mp := newMemProvider()
	sc, err := NewSequence[T](Options{Provider: mp}, initial...)
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	return sc, mp
}

func TestSequenceAddUniqueVsPush(t *testing.T) {
	ctx := context.Background()
	sc, mp := newTestSequence[string](t)

	for i := 0; i < 2; i++ {
		if err := sc.Add(ctx, "x"); err != nil {
			t.Fatal(err)
		}
	}
	if got := sc.Snapshot(); !slices.Equal(got, []string{"x"}) {
		t.Fatalf("Add twice: got=%v want [x]", got)
	}
	// the no-op Add still wrote
	if mp.putCount() != 2 {
		t.Fatalf("puts=%d want 2", mp.putCount())
	}

	for i := 0; i < 2; i++ {
		if err := sc.Push(ctx, "y"); err != nil {
			t.Fatal(err)
		}
	}
	if got := sc.Snapshot(); !slices.Equal(got, []string{"x", "y", "y"}) {
		t.Fatalf("Push twice: got=%v", got)
	}
	if mp.content() != `["x","y","y"]` {
		t.Fatalf("stored=%s", mp.content())
	}
}

func TestSequenceGet(t *testing.T) {
	sc, _ := newTestSequence(t, "a", "b", "c")
	cases := []struct {
		idx  int
		want string
		ok   bool
	}{
		{0, "a", true},
		{2, "c", true},
		{-1, "c", true},
		{-3, "a", true},
		{3, "", false},
		{-4, "", false},
	}
	for _, tc := range cases {
		got, ok := sc.Get(tc.idx)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Get(%d)=%q,%v want %q,%v", tc.idx, got, ok, tc.want, tc.ok)
		}
	}

	empty, _ := newTestSequence[int](t)
	if _, ok := empty.Get(-1); ok {
		t.Fatalf("Get(-1) on empty sequence should be absent")
	}
}

func TestSequenceDeleteThenGetLast(t *testing.T) {
	ctx := context.Background()
	sc, mp := newTestSequence(t, "x", "y")
	if err := sc.Delete(ctx, "y"); err != nil {
		t.Fatal(err)
	}
	if got, ok := sc.Get(-1); !ok || got != "x" {
		t.Fatalf("Get(-1)=%q,%v want x", got, ok)
	}
	if mp.content() != `["x"]` {
		t.Fatalf("stored=%s", mp.content())
	}
}

func TestSequenceDeleteRemovesAll(t *testing.T) {
	ctx := context.Background()
	sc, _ := newTestSequence(t, 1, 2, 1, 3, 1)
	if err := sc.Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if got := sc.Snapshot(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("got=%v want [2 3]", got)
	}
	if sc.Has(1) {
		t.Fatalf("Has(1) after delete")
	}
}

func TestSequenceMapFilter(t *testing.T) {
	ctx := context.Background()
	sc, mp := newTestSequence(t, 1, 2, 3, 4)

	if err := sc.Map(ctx, func(v int) int { return v * 10 }); err != nil {
		t.Fatal(err)
	}
	if mp.content() != `[10,20,30,40]` {
		t.Fatalf("after Map stored=%s", mp.content())
	}
	if err := sc.Filter(ctx, func(v int) bool { return v > 15 }); err != nil {
		t.Fatal(err)
	}
	if got := sc.Snapshot(); !slices.Equal(got, []int{20, 30, 40}) {
		t.Fatalf("after Filter got=%v", got)
	}
	if mp.content() != `[20,30,40]` {
		t.Fatalf("after Filter stored=%s", mp.content())
	}
	if err := sc.Filter(ctx, func(int) bool { return false }); err != nil {
		t.Fatal(err)
	}
	if mp.content() != `[]` {
		t.Fatalf("emptied sequence stored=%s", mp.content())
	}
}

func TestSequenceDistinct(t *testing.T) {
	sc, mp := newTestSequence(t, 1, 2, 2, 3, 1)
	got := sc.Distinct()
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("Distinct=%v want [1 2 3]", got)
	}
	if src := sc.Snapshot(); !slices.Equal(src, []int{1, 2, 2, 3, 1}) {
		t.Fatalf("Distinct mutated the source: %v", src)
	}
	if mp.putCount() != 0 {
		t.Fatalf("Distinct must not persist, puts=%d", mp.putCount())
	}
}

func TestSequenceViewsAreCopies(t *testing.T) {
	initial := []string{"a", "b"}
	sc, _ := newTestSequence(t, initial...)
	initial[0] = "changed"
	if got, _ := sc.Get(0); got != "a" {
		t.Fatalf("constructor did not copy initial values: %q", got)
	}

	snap := sc.Snapshot()
	snap[0] = "changed"
	if got, _ := sc.Get(0); got != "a" {
		t.Fatalf("Snapshot aliases the cache: %q", got)
	}

	ctx := context.Background()
	var seen []string
	for v := range sc.All() {
		seen = append(seen, v)
		// mutating while iterating works on a snapshot
		if err := sc.Push(ctx, v+"!"); err != nil {
			t.Fatal(err)
		}
	}
	if !slices.Equal(seen, []string{"a", "b"}) {
		t.Fatalf("All=%v", seen)
	}
	if sc.Len() != 4 {
		t.Fatalf("Len=%d want 4", sc.Len())
	}
}

func TestSequenceElementsAreDeepCopies(t *testing.T) {
	type user struct {
		Name  string
		Roles []string
	}
	ctx := context.Background()
	u := &user{Name: "ann", Roles: []string{"admin"}}
	sc, _ := newTestSequence(t, u)
	u.Roles[0] = "changed"

	got, _ := sc.Get(0)
	got.Name = "changed"
	sc.Snapshot()[0].Roles[0] = "changed"
	for v := range sc.All() {
		v.Roles = nil
	}
	if err := sc.Push(ctx, u); err != nil {
		t.Fatal(err)
	}
	u.Name = "changed-after-push"

	first, _ := sc.Get(0)
	if first.Name != "ann" || !slices.Equal(first.Roles, []string{"admin"}) {
		t.Fatalf("first=%+v", *first)
	}
	last, _ := sc.Get(-1)
	if last.Name != "ann" || !slices.Equal(last.Roles, []string{"changed"}) {
		t.Fatalf("pushed value not copied at push time: %+v", *last)
	}
}
