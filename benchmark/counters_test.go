package benchmark

import "testing"

func TestCountersMerge(t *testing.T) {
	var merged Counters
	workers := []Counters{
		{PutTotal: 10, PutSuccess: 9, GetTotal: 10, GetSuccess: 10},
		{PutTotal: 5, PutSuccess: 0, GetTotal: 5, GetSuccess: 5},
		{},
	}
	for _, w := range workers {
		merged.Merge(w)
	}

	want := Counters{PutTotal: 15, PutSuccess: 9, GetTotal: 15, GetSuccess: 15}
	if merged != want {
		t.Errorf("merged = %+v, want %+v", merged, want)
	}
}
