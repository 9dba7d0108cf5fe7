package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/onsi/gomega"
	"github.com/toejough/typetour/internal/core"
	"pgregory.net/rapid"
)

func TestConcatenateArrays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seqs     [][]int
		expected []int
	}{
		{name: "no sequences", seqs: nil, expected: []int{}},
		{name: "only empty sequences", seqs: [][]int{{}, nil}, expected: []int{}},
		{name: "argument order", seqs: [][]int{{1, 2}, {3}, {}}, expected: []int{1, 2, 3}},
		{name: "single", seqs: [][]int{{9, 8, 7}}, expected: []int{9, 8, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := core.ConcatenateArrays(tt.seqs...)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ConcatenateArrays() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcatenateArrays_NoArgs(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)
	got := core.ConcatenateArrays[string]()

	expect.Expect(got).NotTo(gomega.BeNil())
	expect.Expect(got).To(gomega.BeEmpty())
}

func TestConcatenateArrays_DoesNotAlias(t *testing.T) {
	t.Parallel()

	expect := gomega.NewWithT(t)

	first := []string{"a", "b"}
	got := core.ConcatenateArrays(first)
	got[0] = "z"

	expect.Expect(first).To(gomega.Equal([]string{"a", "b"}))
}

// TestConcatenateArrays_Property proves every input element appears once, in argument order.
func TestConcatenateArrays_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		seqs := rapid.SliceOfN(rapid.SliceOf(rapid.Int()), 0, 6).Draw(rt, "seqs")

		got := core.ConcatenateArrays(seqs...)

		idx := 0

		for i, seq := range seqs {
			for j, want := range seq {
				if idx >= len(got) {
					rt.Fatalf("result too short: ran out at seqs[%d][%d]", i, j)
				}

				if got[idx] != want {
					rt.Fatalf("got[%d] = %d, want seqs[%d][%d] = %d", idx, got[idx], i, j, want)
				}

				idx++
			}
		}

		if idx != len(got) {
			rt.Fatalf("result has %d extra elements", len(got)-idx)
		}
	})
}
