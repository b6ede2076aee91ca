package lines

import (
	"errors"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
)

func TestDefaultParamsAreValid(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("DefaultParams().Validate() error = %v", err)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	p := DefaultParams()
	p.Capacity = -1
	p.SpeedMin = 0
	p.MergeProbability = 1.5
	p.FrameInterval = 0

	err := p.Validate()
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected multierror, got %T (%v)", err, err)
	}
	if len(merr.Errors) != 4 {
		t.Fatalf("expected 4 problems, got %d: %v", len(merr.Errors), err)
	}
}

func TestTicksRoundsUp(t *testing.T) {
	p := DefaultParams()
	p.FrameInterval = 10 * time.Millisecond

	tests := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{10 * time.Millisecond, 1},
		{11 * time.Millisecond, 2},
		{3 * time.Second, 300},
	}
	for _, tt := range tests {
		if got := p.Ticks(tt.d); got != tt.want {
			t.Fatalf("Ticks(%s) = %d, want %d", tt.d, got, tt.want)
		}
	}
}
