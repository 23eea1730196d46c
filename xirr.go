package folio

import (
	"math"
	"sort"
)

// Flow is a dated signed cash flow: negative for money put in, positive for
// money taken out or still held.
type Flow struct {
	Amount float64
	Date   Date
}

const (
	xirrMaxIterations = 50
	xirrGuess         = 0.1
	xirrTolerance     = 1e-6
	xirrFlatSlope     = 1e-8
	xirrMinAmount     = 1e-4
	daysPerYear       = 365.25
)

// Xirr computes the annualized internal rate of return of an irregular
// series of dated cash flows by Newton-Raphson. The same solver serves
// positions, accounts and the whole portfolio; it degrades to a closed-form
// estimate instead of failing, and returns 0 for degenerate inputs.
func Xirr(flows []Flow) float64 {
	kept := make([]Flow, 0, len(flows))
	for _, f := range flows {
		if math.Abs(sane(f.Amount)) < xirrMinAmount {
			continue
		}
		kept = append(kept, Flow{Amount: sane(f.Amount), Date: f.Date})
	}
	if len(kept) < 2 {
		return 0
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Date.Before(kept[j].Date) })
	if kept[0].Date == kept[len(kept)-1].Date {
		return 0
	}

	first := kept[0].Date
	years := make([]float64, len(kept))
	for i, f := range kept {
		years[i] = float64(f.Date.DaysSince(first)) / daysPerYear
	}

	rate := xirrGuess
	for range xirrMaxIterations {
		var value, slope float64
		for i, f := range kept {
			pow := math.Pow(1+rate, years[i])
			value += f.Amount / pow
			slope -= years[i] * f.Amount / (pow * (1 + rate))
		}
		if math.Abs(slope) < xirrFlatSlope {
			break
		}
		next := rate - value/slope
		if math.IsNaN(next) || math.IsInf(next, 0) || next <= -1 {
			break
		}
		if math.Abs(next-rate) < xirrTolerance {
			return next
		}
		rate = next
	}

	return simpleAnnualized(kept, years[len(years)-1])
}

// simpleAnnualized is the fallback when Newton-Raphson does not converge:
// the aggregate inflow/outflow ratio annualized over the series span.
func simpleAnnualized(flows []Flow, spanYears float64) float64 {
	var in, out float64
	for _, f := range flows {
		if f.Amount > 0 {
			in += f.Amount
		} else {
			out -= f.Amount
		}
	}
	if out == 0 || in == 0 {
		return 0
	}
	years := math.Max(spanYears, 0.1)
	return math.Pow(in/out, 1/years) - 1
}
