package arr_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-deeputils/arr"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

// ─── Collapse ─────────────────────────────────────────────────────────────────

func TestCollapse(t *testing.T) {
	got := arr.Collapse([][]int{{1, 2}, {3, 4}, {5}})
	assertSlice(t, got, []int{1, 2, 3, 4, 5})
}

// ─── DeepFlatten ──────────────────────────────────────────────────────────────

func TestDeepFlattenEmpty(t *testing.T) {
	got := arr.DeepFlatten([]any{})
	if got == nil || len(got) != 0 {
		t.Fatalf("DeepFlatten(empty) = %#v; want empty non-nil slice", got)
	}
	if got := arr.DeepFlatten(nil); got == nil || len(got) != 0 {
		t.Fatalf("DeepFlatten(nil) = %#v; want empty non-nil slice", got)
	}
}

func TestDeepFlattenNested(t *testing.T) {
	got := arr.DeepFlatten([]any{1, []any{2, []any{3, []any{4, []any{5}}}}})
	if diff := cmp.Diff([]any{1, 2, 3, 4, 5}, got); diff != "" {
		t.Fatalf("DeepFlatten mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  []any
	}{
		{"scalar", 7, []any{7}},
		{"flat", []any{"a", "b"}, []any{"a", "b"}},
		{"typed inner slice", []any{1, []int{2, 3}}, []any{1, 2, 3}},
		{"typed outer slice", [][]string{{"a"}, {"b", "c"}}, []any{"a", "b", "c"}},
		{"array", []any{[2]int{1, 2}, 3}, []any{1, 2, 3}},
		{"string is a leaf", []any{"abc", []any{"de"}}, []any{"abc", "de"}},
		{"bytes are a leaf", []any{[]byte("hi")}, []any{[]byte("hi")}},
		{"nil leaf", []any{nil, []any{nil}}, []any{nil, nil}},
		{"empty nested", []any{[]any{}, []any{[]any{}}, 1}, []any{1}},
		{"map is a leaf", []any{map[string]any{"a": 1}}, []any{map[string]any{"a": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := arr.DeepFlatten(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("DeepFlatten mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFlattenDepth(t *testing.T) {
	input := []any{1, []any{2, []any{3, []any{4}}}}
	tests := []struct {
		depth int
		want  []any
	}{
		{0, []any{1, 2, 3, 4}},
		{-1, []any{1, 2, 3, 4}},
		{1, []any{1, 2, []any{3, []any{4}}}},
		{2, []any{1, 2, 3, []any{4}}},
		{10, []any{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		got := arr.FlattenDepth(input, tt.depth)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Fatalf("FlattenDepth(%d) mismatch (-want +got):\n%s", tt.depth, diff)
		}
	}
}

// randomNested builds a nested []any and returns it with its leaf count.
func randomNested(r *rand.Rand, depth int) ([]any, int) {
	n := r.Intn(5)
	out := make([]any, 0, n)
	leaves := 0
	for i := 0; i < n; i++ {
		if depth > 0 && r.Intn(3) == 0 {
			inner, count := randomNested(r, depth-1)
			out = append(out, inner)
			leaves += count
			continue
		}
		out = append(out, r.Intn(100))
		leaves++
	}
	return out, leaves
}

func TestDeepFlattenLeafCountProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		input, leaves := randomNested(r, 6)
		got := arr.DeepFlatten(input)
		if len(got) != leaves {
			t.Fatalf("case %d: len = %d; want %d leaves (%v)", i, len(got), leaves, input)
		}
		if n := arr.LeafCount(input); n != leaves {
			t.Fatalf("case %d: LeafCount = %d; want %d", i, n, leaves)
		}
		for j, v := range got {
			if arr.IsSequence(v) {
				t.Fatalf("case %d: element %d is a sequence: %v", i, j, v)
			}
		}
	}
}

func TestLeafCount(t *testing.T) {
	if n := arr.LeafCount(nil); n != 0 {
		t.Fatalf("LeafCount(nil) = %d; want 0", n)
	}
	if n := arr.LeafCount("x"); n != 1 {
		t.Fatalf("LeafCount(scalar) = %d; want 1", n)
	}
	if n := arr.LeafCount([]any{nil, []int{1, 2}, [][]string{{"a"}}}); n != 4 {
		t.Fatalf("LeafCount = %d; want 4", n)
	}
}

func TestIsSequence(t *testing.T) {
	for _, v := range []any{[]any{}, []int{1}, [2]string{}, [][]any{}} {
		if !arr.IsSequence(v) {
			t.Fatalf("IsSequence(%#v) = false; want true", v)
		}
	}
	for _, v := range []any{nil, 1, "s", []byte("b"), map[string]any{}} {
		if arr.IsSequence(v) {
			t.Fatalf("IsSequence(%#v) = true; want false", v)
		}
	}
}

// ─── GroupBy ──────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	groups := arr.GroupBy([]int{1, 2, 3, 4}, func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	assertSlice(t, groups["even"], []int{2, 4})
	assertSlice(t, groups["odd"], []int{1, 3})
}
