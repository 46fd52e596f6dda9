package splash

import (
	"slices"
	"testing"

	"multisim/internal/core"
)

func TestPickIsDeterministicPerSeed(t *testing.T) {
	a := Pick(core.NewRNG(7))
	if a != Pick(core.NewRNG(7)) {
		t.Fatal("same seed picked different lines")
	}
	if !slices.Contains(Lines, a) {
		t.Fatalf("picked %q outside Lines", a)
	}
}
