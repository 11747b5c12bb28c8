package benchmark

import (
	"strings"
	"testing"
)

func TestRandomAlphanumericLengthAndAlphabet(t *testing.T) {
	rng := NewWorkerRand(1, 0)
	for _, length := range []int{1, 10, 20, 100} {
		s := RandomAlphanumeric(rng, length)
		if len(s) != length {
			t.Errorf("length %d: got %d characters", length, len(s))
		}
		for _, r := range s {
			if !strings.ContainsRune(alphanumerics, r) {
				t.Errorf("character %q outside the alphanumeric alphabet", r)
			}
		}
	}
}

func TestSeededWorkersAreDeterministic(t *testing.T) {
	a := NewWorkerRand(42, 3)
	b := NewWorkerRand(42, 3)
	for i := 0; i < 10; i++ {
		if got, want := RandomAlphanumeric(a, 10), RandomAlphanumeric(b, 10); got != want {
			t.Fatalf("same seed and worker diverged: %q vs %q", got, want)
		}
	}
}

func TestWorkersDrawDistinctStreams(t *testing.T) {
	a := NewWorkerRand(42, 0)
	b := NewWorkerRand(42, 1)
	same := true
	for i := 0; i < 5; i++ {
		if RandomAlphanumeric(a, 20) != RandomAlphanumeric(b, 20) {
			same = false
		}
	}
	if same {
		t.Error("workers with different ids produced identical streams")
	}
}
