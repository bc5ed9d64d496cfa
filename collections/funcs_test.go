package collections_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-deeputils/collections"
)

func ptr[T any](v T) *T { return &v }

func TestMapAll(t *testing.T) {
	got := collections.MapAll(ints(1, 2, 3), func(n, _ int, _ []int) int { return n * 2 })
	assertSlice(t, got.All(), []int{2, 4, 6})
	if got.Count() != 3 {
		t.Fatalf("Count = %d; want 3", got.Count())
	}
}

func TestMapAllArguments(t *testing.T) {
	var indices []int
	got := collections.MapAll(ints(4, 5, 6), func(n, i int, items []int) string {
		indices = append(indices, i)
		if len(items) != 3 {
			t.Fatalf("items len = %d; want 3", len(items))
		}
		return strconv.Itoa(n) + "/" + strconv.Itoa(items[len(items)-1-i])
	}).All()
	assertSlice(t, indices, []int{0, 1, 2})
	assertSlice(t, got, []string{"4/6", "5/5", "6/4"})
}

func TestMapAllPropagatesPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Fatalf("recovered %v; want boom", r)
		}
	}()
	_ = collections.MapAll(collections.New(1, 2), func(_, _ int, _ []int) int { panic("boom") })
	t.Fatal("expected panic")
}

func TestMapAllEmpty(t *testing.T) {
	got := collections.MapAll(collections.Empty[int](), func(n, _ int, _ []int) int { return n })
	if !got.IsEmpty() {
		t.Fatal("MapAll on empty should be empty")
	}
}

type scaler struct{ factor int }

func TestMapBound(t *testing.T) {
	got := collections.MapBound(ints(1, 2, 3),
		func(s *scaler, n, _ int, _ []int) int { return n * s.factor },
		&scaler{factor: 3},
	)
	assertSlice(t, got.All(), []int{3, 6, 9})
}

func TestMapSlots(t *testing.T) {
	slots := []*int{ptr(1), nil, ptr(3)}
	calls := 0
	got := collections.MapSlots(slots, func(n, _ int, _ []*int) int {
		calls++
		return n * 2
	})
	if len(got) != 3 {
		t.Fatalf("len = %d; want 3", len(got))
	}
	if calls != 2 {
		t.Fatalf("calls = %d; want 2", calls)
	}
	if *got[0] != 2 || got[1] != nil || *got[2] != 6 {
		t.Fatalf("MapSlots = [%v %v %v]", got[0], got[1], got[2])
	}
}

func TestFold(t *testing.T) {
	s := collections.Fold(ints(1, 2, 3), func(acc string, n, _ int, _ []int) string {
		if acc == "" {
			return strconv.Itoa(n)
		}
		return acc + "," + strconv.Itoa(n)
	}, "")
	if s != "1,2,3" {
		t.Fatalf("Fold = %q; want \"1,2,3\"", s)
	}
}

func TestReduceSlots(t *testing.T) {
	sum := func(acc, n, _ int, _ []*int) int { return acc + n }

	got, err := collections.ReduceSlots([]*int{nil, ptr(2), nil, ptr(5)}, sum)
	if err != nil || got != 7 {
		t.Fatalf("ReduceSlots = %d, %v; want 7, nil", got, err)
	}

	got, err = collections.ReduceSlots([]*int{nil, ptr(2)}, sum, 10)
	if err != nil || got != 12 {
		t.Fatalf("ReduceSlots initial = %d, %v; want 12, nil", got, err)
	}

	if _, err = collections.ReduceSlots([]*int{nil, nil}, sum); !errors.Is(err, collections.ErrReduceOfEmpty) {
		t.Fatal("ReduceSlots over holes only should fail")
	}
}

func TestGroupByFunc(t *testing.T) {
	groups := collections.GroupBy(ints(1, 2, 3, 4), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assertSlice(t, groups["even"].All(), []int{2, 4})
	assertSlice(t, groups["odd"].All(), []int{1, 3})
}

func TestCollapseFunc(t *testing.T) {
	nested := collections.New([]int{1, 2}, []int{3, 4}, []int{5})
	assertSlice(t, collections.Collapse(nested).All(), []int{1, 2, 3, 4, 5})
}

func TestFlattenDeepFunc(t *testing.T) {
	inner := collections.New[any](3, []int{4, 5})
	c := collections.New[any](1, []any{2, inner}, []any{[]any{6}}, "seven")
	got := collections.FlattenDeep(c).All()
	want := []any{1, 2, 3, 4, 5, 6, "seven"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FlattenDeep mismatch (-want +got):\n%s", diff)
	}
}
