package folio

import (
	"math"
	"testing"
)

func TestXirr(t *testing.T) {
	// 100k in, 150k out three years later: (150/100)^(1/3)-1 ≈ 14.47%.
	flows := []Flow{
		{Amount: -100000, Date: day("2020-01-01")},
		{Amount: 150000, Date: day("2023-01-01")},
	}
	got := Xirr(flows)
	want := math.Pow(1.5, 1/(float64(day("2023-01-01").DaysSince(day("2020-01-01")))/daysPerYear)) - 1
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("Xirr() = %v, want %v", got, want)
	}
	if math.Abs(got-0.1447) > 0.002 {
		t.Errorf("Xirr() = %v, want about 14.47%%", got)
	}
}

func TestXirrOrderIndependent(t *testing.T) {
	a := Xirr([]Flow{
		{Amount: -1000, Date: day("2022-01-01")},
		{Amount: -1000, Date: day("2022-07-01")},
		{Amount: 2500, Date: day("2024-01-01")},
	})
	b := Xirr([]Flow{
		{Amount: 2500, Date: day("2024-01-01")},
		{Amount: -1000, Date: day("2022-07-01")},
		{Amount: -1000, Date: day("2022-01-01")},
	})
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Xirr() depends on input order: %v != %v", a, b)
	}
	if a <= 0 {
		t.Errorf("Xirr() = %v, want a positive rate for a profitable series", a)
	}
}

func TestXirrNegativeReturn(t *testing.T) {
	got := Xirr([]Flow{
		{Amount: -100000, Date: day("2020-01-01")},
		{Amount: 80000, Date: day("2022-01-01")},
	})
	want := math.Pow(0.8, 1/(float64(day("2022-01-01").DaysSince(day("2020-01-01")))/daysPerYear)) - 1
	if math.Abs(got-want) > 1e-4 {
		t.Errorf("Xirr() = %v, want %v", got, want)
	}
}

func TestXirrDegenerate(t *testing.T) {
	cases := []struct {
		name  string
		flows []Flow
	}{
		{"empty", nil},
		{"single", []Flow{{Amount: -1000, Date: day("2020-01-01")}}},
		{"same date", []Flow{
			{Amount: -1000, Date: day("2020-01-01")},
			{Amount: 1100, Date: day("2020-01-01")},
		}},
		{"near-zero flows dropped", []Flow{
			{Amount: -0.00001, Date: day("2020-01-01")},
			{Amount: 1100, Date: day("2021-01-01")},
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Xirr(c.flows); got != 0 {
				t.Errorf("Xirr() = %v, want 0", got)
			}
		})
	}
}

func TestXirrNaNAmountTreatedAsZero(t *testing.T) {
	got := Xirr([]Flow{
		{Amount: math.NaN(), Date: day("2019-01-01")},
		{Amount: -100000, Date: day("2020-01-01")},
		{Amount: 150000, Date: day("2023-01-01")},
	})
	if math.Abs(got-0.1447) > 0.002 {
		t.Errorf("Xirr() = %v, want about 14.47%% ignoring the NaN flow", got)
	}
}

func TestSimpleAnnualizedFloorsSpan(t *testing.T) {
	// two days apart: the span floors at 0.1 years instead of exploding.
	flows := []Flow{
		{Amount: -1000, Date: day("2020-01-01")},
		{Amount: 1100, Date: day("2020-01-03")},
	}
	span := float64(2) / daysPerYear
	got := simpleAnnualized(flows, span)
	want := math.Pow(1.1, 1/0.1) - 1
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("simpleAnnualized() = %v, want %v", got, want)
	}
}
