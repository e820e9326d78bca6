package kmedoids

import "testing"

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{StatusInitializing, "initializing"},
		{StatusIterating, "iterating"},
		{StatusConverged, "converged"},
		{StatusMaxIterations, "max iterations reached"},
		{Status(9), "Status(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestTransitionLegalMoves(t *testing.T) {
	if got := transition(StatusInitializing, StatusIterating); got != StatusIterating {
		t.Errorf("got %v, want iterating", got)
	}
	if got := transition(StatusIterating, StatusConverged); got != StatusConverged {
		t.Errorf("got %v, want converged", got)
	}
	if got := transition(StatusIterating, StatusMaxIterations); got != StatusMaxIterations {
		t.Errorf("got %v, want max iterations reached", got)
	}
}

func TestTransitionIllegalMovePanics(t *testing.T) {
	tests := []struct {
		name     string
		from, to Status
	}{
		{"skip iterating", StatusInitializing, StatusConverged},
		{"leave converged", StatusConverged, StatusIterating},
		{"leave max iterations", StatusMaxIterations, StatusIterating},
		{"backwards", StatusIterating, StatusInitializing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %s -> %s", tt.from, tt.to)
				}
			}()
			transition(tt.from, tt.to)
		})
	}
}
