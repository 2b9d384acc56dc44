package surebet

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrTooFewOdds is returned when fewer than two odds are supplied; a
// one-outcome market cannot be arbitraged.
var ErrTooFewOdds = errors.New("at least 2 odds are required")

// InvalidOddsError reports an odd that cannot be arbitraged (must be a
// finite value strictly greater than 1.0).
type InvalidOddsError struct {
	Index int
	Odd   float64
}

func (e *InvalidOddsError) Error() string {
	return fmt.Sprintf("invalid odd at index %d: %v (must be > 1.0)", e.Index, e.Odd)
}

// InvalidStakeError reports a non-positive total stake.
type InvalidStakeError struct {
	Stake float64
}

func (e *InvalidStakeError) Error() string {
	return fmt.Sprintf("invalid stake: %v (must be > 0)", e.Stake)
}

// InvalidTargetProfitError reports a negative target profit.
type InvalidTargetProfitError struct {
	TargetProfit float64
}

func (e *InvalidTargetProfitError) Error() string {
	return fmt.Sprintf("invalid target profit: %v (must be >= 0)", e.TargetProfit)
}

// Calculation is the full result of evaluating one set of odds. Slices are
// indexed by outcome, in the order the odds were given.
type Calculation struct {
	Odds                    []float64 `json:"odds"`
	ImpliedProbabilities    []float64 `json:"implied_probabilities"`
	TotalImpliedProbability float64   `json:"total_implied_probability"`
	MarginPercent           float64   `json:"margin_percent"`
	IsArbitrage             bool      `json:"is_arbitrage"`
	Stakes                  []float64 `json:"stakes"`
	Profits                 []float64 `json:"profits"`
	GuaranteedProfit        float64   `json:"guaranteed_profit"`
	ROIPercent              float64   `json:"roi_percent"`
	TotalStake              float64   `json:"total_stake"`
	TotalStaked             float64   `json:"total_staked"`
	BudgetExceeded          bool      `json:"budget_exceeded"`
}

// Evaluate computes arbitrage metrics for a set of decimal odds, splitting
// totalStake proportionally to implied probability so every outcome pays
// the same total return. Works for any number of outcomes >= 2.
func Evaluate(odds []float64, totalStake float64) (*Calculation, error) {
	return evaluate(odds, totalStake, 0, false)
}

// EvaluateTargetProfit allocates stakes so every outcome returns exactly
// totalStake + targetProfit. The combined outlay is not capped by
// totalStake in this mode; TotalStaked carries the real amount spent and
// BudgetExceeded is set when it goes over.
func EvaluateTargetProfit(odds []float64, totalStake, targetProfit float64) (*Calculation, error) {
	return evaluate(odds, totalStake, targetProfit, true)
}

func evaluate(odds []float64, totalStake, targetProfit float64, hasTarget bool) (*Calculation, error) {
	if len(odds) < 2 {
		return nil, ErrTooFewOdds
	}
	for i, odd := range odds {
		if math.IsNaN(odd) || math.IsInf(odd, 0) || odd <= 1.0 {
			return nil, &InvalidOddsError{Index: i, Odd: odd}
		}
	}
	if totalStake <= 0 {
		return nil, &InvalidStakeError{Stake: totalStake}
	}
	if hasTarget && targetProfit < 0 {
		return nil, &InvalidTargetProfitError{TargetProfit: targetProfit}
	}

	// Keep our own copy so later caller mutations of the input slice
	// cannot rewrite the reported odds.
	calc := &Calculation{
		Odds:                 append([]float64(nil), odds...),
		ImpliedProbabilities: make([]float64, len(odds)),
		Stakes:               make([]float64, len(odds)),
		Profits:              make([]float64, len(odds)),
		TotalStake:           totalStake,
	}

	for i, odd := range odds {
		calc.ImpliedProbabilities[i] = 1 / odd
		calc.TotalImpliedProbability += calc.ImpliedProbabilities[i]
	}
	calc.IsArbitrage = calc.TotalImpliedProbability < 1
	calc.MarginPercent = (1 - calc.TotalImpliedProbability) * 100

	if hasTarget {
		// Force every outcome to pay back exactly totalStake + targetProfit.
		totalReturn := totalStake + targetProfit
		for i, odd := range odds {
			calc.Stakes[i] = totalReturn / odd
		}
	} else {
		for i, prob := range calc.ImpliedProbabilities {
			calc.Stakes[i] = totalStake * prob / calc.TotalImpliedProbability
		}
	}

	// Profit is measured against the nominal totalStake in both modes.
	for i, stake := range calc.Stakes {
		calc.Profits[i] = stake*odds[i] - totalStake
		calc.TotalStaked += stake
	}

	calc.GuaranteedProfit = calc.Profits[0]
	for _, p := range calc.Profits[1:] {
		if p < calc.GuaranteedProfit {
			calc.GuaranteedProfit = p
		}
	}
	calc.ROIPercent = calc.GuaranteedProfit / totalStake * 100
	calc.BudgetExceeded = hasTarget && calc.TotalStaked > totalStake

	return calc, nil
}

// RoundStakes rounds each stake to whole cents while keeping the rounded
// sum equal to the rounded sum of the originals, pushing leftover cents
// onto the stakes with the largest truncated remainders. Presentation
// only; never feed rounded stakes back into Evaluate.
func RoundStakes(stakes []float64) []float64 {
	total := decimal.Zero
	for _, s := range stakes {
		total = total.Add(decimal.NewFromFloat(s))
	}
	total = total.Round(2)

	floored := make([]decimal.Decimal, len(stakes))
	type remainder struct {
		index int
		frac  decimal.Decimal
	}
	remainders := make([]remainder, len(stakes))
	sum := decimal.Zero
	for i, s := range stakes {
		d := decimal.NewFromFloat(s)
		floored[i] = d.RoundDown(2)
		remainders[i] = remainder{index: i, frac: d.Sub(floored[i])}
		sum = sum.Add(floored[i])
	}

	cent := decimal.New(1, -2)
	missing := int(total.Sub(sum).Div(cent).Round(0).IntPart())
	sort.SliceStable(remainders, func(a, b int) bool {
		return remainders[a].frac.GreaterThan(remainders[b].frac)
	})
	for i := 0; i < missing && i < len(remainders); i++ {
		idx := remainders[i].index
		floored[idx] = floored[idx].Add(cent)
	}

	out := make([]float64, len(stakes))
	for i, d := range floored {
		out[i], _ = d.Float64()
	}
	return out
}
