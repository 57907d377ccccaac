package mines

import (
	"errors"
	"testing"
)

func TestCellFactories(t *testing.T) {
	mined := WithMine()
	if !mined.Mined() || mined.Flagged() || mined.Revealed() || mined.MinedNeighbors() != 0 {
		t.Errorf("WithMine() = %+v, want hidden unflagged mine", mined)
	}

	safe := WithoutMine()
	if safe.Mined() || safe.Flagged() || safe.Revealed() || safe.MinedNeighbors() != 0 {
		t.Errorf("WithoutMine() = %+v, want hidden unflagged safe cell", safe)
	}
}

func TestCellStatus(t *testing.T) {
	flagged, err := WithoutMine().Flag()
	if err != nil {
		t.Fatalf("Flag() failed: %v", err)
	}

	tests := []struct {
		name string
		cell Cell
		want Status
	}{
		{"untouched", WithoutMine(), StatusUntouched},
		{"untouched mine", WithMine(), StatusUntouched},
		{"flagged", flagged, StatusFlagged},
		{"revealed", WithoutMine().Reveal(), StatusRevealed},
		{"detonated", WithMine().Reveal(), StatusDetonated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCellFlagToggles(t *testing.T) {
	cell := WithMine()

	flagged, err := cell.Flag()
	if err != nil {
		t.Fatalf("Flag() failed: %v", err)
	}
	if !flagged.Flagged() {
		t.Error("Flag() should set the flag")
	}
	if cell.Flagged() {
		t.Error("Flag() must not modify the original cell")
	}

	unflagged, err := flagged.Flag()
	if err != nil {
		t.Fatalf("Flag() failed: %v", err)
	}
	if unflagged.Flagged() {
		t.Error("second Flag() should clear the flag")
	}
	if !unflagged.Mined() {
		t.Error("Flag() must keep the mine")
	}
}

func TestCellFlagRevealedFails(t *testing.T) {
	_, err := WithoutMine().Reveal().Flag()
	if !errors.Is(err, ErrIllegalState) {
		t.Errorf("Flag() on revealed cell error = %v, want ErrIllegalState", err)
	}
}

func TestCellRevealDropsFlag(t *testing.T) {
	flagged, err := WithoutMine().withMinedNeighbors(2).Flag()
	if err != nil {
		t.Fatalf("Flag() failed: %v", err)
	}

	revealed := flagged.Reveal()
	if !revealed.Revealed() {
		t.Error("Reveal() should reveal the cell")
	}
	if revealed.Flagged() {
		t.Error("Reveal() should clear the flag")
	}
	if revealed.MinedNeighbors() != 2 {
		t.Errorf("Reveal() changed MinedNeighbors to %d, want 2", revealed.MinedNeighbors())
	}
}

func TestCellDetonated(t *testing.T) {
	if WithMine().Detonated() {
		t.Error("hidden mine should not be detonated")
	}
	if WithoutMine().Reveal().Detonated() {
		t.Error("revealed safe cell should not be detonated")
	}
	if !WithMine().Reveal().Detonated() {
		t.Error("revealed mine should be detonated")
	}
}
