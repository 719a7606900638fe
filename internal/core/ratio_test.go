package core

import (
	"math"
	"testing"
)

func TestRatioFloat(t *testing.T) {
	tests := []struct {
		r    Ratio
		want float64
	}{
		{Square, 1},
		{Portrait, 0.8},
		{Landscape, 1.25},
		{Widescreen, 16.0 / 9.0},
		{Ratio{3, 0}, 1},
	}

	for _, tt := range tests {
		if got := tt.r.Float(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.Float() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestApproxRatio(t *testing.T) {
	tests := []struct {
		in   float64
		want Ratio
	}{
		{1, Square},
		{0.8, Portrait},
		{1.25, Landscape},
		{16.0 / 9.0, Widescreen},
		{1.5, Ratio{3, 2}},
		{3000.0 / 2000.0, Ratio{3, 2}},
		{0, Ratio{}},
		{-2, Ratio{}},
		{math.NaN(), Ratio{}},
	}

	for _, tt := range tests {
		if got := ApproxRatio(tt.in, 100); got != tt.want {
			t.Errorf("ApproxRatio(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestApproxRatioBoundedDenominator(t *testing.T) {
	r := ApproxRatio(math.Pi, 10)
	if r.H > 10 {
		t.Fatalf("denominator %d exceeds bound", r.H)
	}
	if r != (Ratio{22, 7}) {
		t.Errorf("ApproxRatio(pi, 10) = %v, want 22/7", r)
	}
}

func TestRatioReduce(t *testing.T) {
	if got := (Ratio{1920, 1080}).Reduce(); got != Widescreen {
		t.Errorf("Reduce(1920/1080) = %v", got)
	}
	if got := (Ratio{0, 5}).Reduce(); got != (Ratio{0, 5}) {
		t.Errorf("zero ratio should be returned unchanged, got %v", got)
	}
}
