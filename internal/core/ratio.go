package core

import "math"

// Ratio is a rational aspect ratio (width/height).
type Ratio struct {
	W, H int
}

// Well-known aspect ratios.
var (
	Square     = Ratio{1, 1}
	Portrait   = Ratio{4, 5}
	Landscape  = Ratio{5, 4}
	Widescreen = Ratio{16, 9}
)

// Float returns the ratio as width/height. A zero height yields 1.
func (r Ratio) Float() float64 {
	if r.H == 0 {
		return 1
	}
	return float64(r.W) / float64(r.H)
}

// IsZero reports whether the ratio is unset.
func (r Ratio) IsZero() bool {
	return r.W == 0 || r.H == 0
}

// Reduce returns the ratio in lowest terms.
func (r Ratio) Reduce() Ratio {
	if r.IsZero() {
		return r
	}
	g := gcd(abs(r.W), abs(r.H))
	return Ratio{r.W / g, r.H / g}
}

// ApproxRatio returns the closest reduced rational to f whose denominator
// does not exceed maxDen. Non-positive or non-finite input yields the zero Ratio.
func ApproxRatio(f float64, maxDen int) Ratio {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) || maxDen < 1 {
		return Ratio{}
	}

	// Continued fraction convergents h/k.
	h0, h1 := 0, 1
	k0, k1 := 1, 0
	x := f
	for i := 0; i < 64; i++ {
		a := int(math.Floor(x))
		h2 := a*h1 + h0
		k2 := a*k1 + k0
		if k2 > maxDen {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		frac := x - float64(a)
		if frac < 1e-9 {
			break
		}
		x = 1 / frac
	}
	if k1 == 0 {
		return Ratio{int(math.Round(f)), 1}
	}
	return Ratio{h1, k1}.Reduce()
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
