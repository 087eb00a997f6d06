package linear

import (
	"slices"
	"testing"
)

func Test_grow(t *testing.T) {
	t.Parallel()
	type Scenario struct {
		ExpectedSlice []int
		Slice         []int
		Front         int
		Count         int
		Capacity      int
	}
	scenarios := []Scenario{
		{
			ExpectedSlice: []int{1, 2, 3, 0, 0, 0},
			Slice:         []int{1, 2, 3},
			Front:         0,
			Count:         3,
			Capacity:      6,
		},
		{
			ExpectedSlice: []int{3, 4, 1, 2, 0, 0, 0, 0},
			Slice:         []int{1, 2, 3, 4},
			Front:         2,
			Count:         4,
			Capacity:      8,
		},
		{
			ExpectedSlice: []int{5, 1},
			Slice:         []int{1, 0, 0, 5},
			Front:         3,
			Count:         2,
			Capacity:      2,
		},
		{
			ExpectedSlice: []int{0},
			Slice:         []int{},
			Front:         0,
			Count:         0,
			Capacity:      1,
		},
	}
	for _, scenario := range scenarios {
		scenario := scenario
		t.Run("", func(t *testing.T) {
			slice := grow(scenario.Slice, scenario.Front, scenario.Count, scenario.Capacity)
			if slices.Compare(slice, scenario.ExpectedSlice) != 0 {
				t.Fatalf("tried growing %v from position %d, expected final slice to be %v, but got %v",
					scenario.Slice, scenario.Front, scenario.ExpectedSlice, slice)
			}
		})
	}
}

func Test_takeAt(t *testing.T) {
	t.Parallel()
	value := "kept"
	slice := []*string{nil, &value}

	taken := takeAt(slice, 1)
	if taken != &value {
		t.Fatalf("expected pointer to %q, got %v", value, taken)
	}
	if slice[1] != nil {
		t.Fatalf("expected taken slot to be reset, got %v", slice[1])
	}
}
