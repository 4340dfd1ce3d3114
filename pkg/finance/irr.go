package finance

import "math"

// IRR search bounds and termination limits. The bisection must terminate
// even on pathological cashflows, so both an iteration cap and an NPV
// tolerance apply.
const (
	MaxIRRIterations = 100
	NPVTolerance     = 1e-6

	irrSearchLow  = -0.99
	irrSearchHigh = 10.0
)

// NPV discounts the yearly cashflows (year 1..n) at the given rate against
// the initial investment.
func NPV(rate, initial float64, flows []float64) float64 {
	npv := -initial
	for i, f := range flows {
		npv += f / math.Pow(1+rate, float64(i+1))
	}
	return npv
}

// IRR finds the discount rate at which NPV is zero, by bisection over
// [-99%, 1000%]. The second return is false when no root exists in that
// range or the search fails to converge; all-positive and all-negative
// cashflow patterns land here routinely and must not be reported as zero.
func IRR(initial float64, flows []float64) (float64, bool) {
	lo, hi := irrSearchLow, irrSearchHigh
	fLo := NPV(lo, initial, flows)
	fHi := NPV(hi, initial, flows)

	if math.Abs(fLo) < NPVTolerance {
		return lo, true
	}
	if math.Abs(fHi) < NPVTolerance {
		return hi, true
	}
	if fLo*fHi > 0 {
		return 0, false
	}

	for i := 0; i < MaxIRRIterations; i++ {
		mid := (lo + hi) / 2
		fMid := NPV(mid, initial, flows)
		if math.Abs(fMid) < NPVTolerance {
			return mid, true
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}

	// Interval collapsed without hitting the NPV tolerance; the midpoint
	// is still a bracketed root to within 2^-100 of the search range.
	return (lo + hi) / 2, true
}

// PaybackMonths returns the first month at which cumulative discounted
// savings reach the initial investment. Savings inside a year are spread
// evenly over its twelve months and discounted monthly. The second return
// is false when payback never occurs within the project horizon.
func PaybackMonths(initial float64, flows []float64, discountRate float64) (int, bool) {
	if initial <= 0 {
		return 0, true
	}

	monthlyRate := math.Pow(1+discountRate, 1.0/12.0) - 1
	cumulative := 0.0
	for m := 1; m <= len(flows)*12; m++ {
		year := (m - 1) / 12
		monthly := flows[year] / 12.0
		cumulative += monthly / math.Pow(1+monthlyRate, float64(m))
		if cumulative >= initial {
			return m, true
		}
	}
	return 0, false
}
