package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7} {
		for _, total := range []int{20, 79, 80, 121} {
			widths := LayoutRow(total, n)
			if len(widths) != n {
				t.Fatalf("LayoutRow(%d, %d) returned %d widths", total, n, len(widths))
			}
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) widths sum to %d", total, n, sum)
			}
		}
	}
}

func TestLayoutRowZeroItems(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}
