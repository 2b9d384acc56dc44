package surebet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	sports []Sport
	odds   map[string][]Match
	errs   map[string]error
}

func (f *fakeSource) Sports(ctx context.Context) ([]Sport, error) {
	return f.sports, nil
}

func (f *fakeSource) Odds(ctx context.Context, sportKey string) ([]Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.errs[sportKey]; err != nil {
		return nil, err
	}
	return f.odds[sportKey], nil
}

func h2h(prices ...Price) []Market {
	return []Market{{Key: "h2h", Outcomes: prices}}
}

func threeWayMatch(home, away string, bookmakers ...Bookmaker) Match {
	return Match{
		ID:           "match-1",
		SportKey:     "soccer_epl",
		SportTitle:   "Premier League",
		CommenceTime: time.Date(2026, 9, 5, 16, 0, 0, 0, time.UTC),
		HomeTeam:     home,
		AwayTeam:     away,
		Bookmakers:   bookmakers,
	}
}

func TestScanMatches_BestPriceSelection(t *testing.T) {
	match := threeWayMatch("Arsenal", "Chelsea",
		Bookmaker{Title: "BookA", Markets: h2h(
			Price{Name: "Arsenal", Price: 3.10},
			Price{Name: "Draw", Price: 3.60},
			Price{Name: "Chelsea", Price: 3.05},
		)},
		Bookmaker{Title: "BookB", Markets: h2h(
			Price{Name: "Arsenal", Price: 3.40},
			Price{Name: "Draw", Price: 3.45},
			Price{Name: "Chelsea", Price: 3.70},
		)},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{})
	found := s.ScanMatches([]Match{match})
	require.Len(t, found, 1)

	sb := found[0]
	require.Len(t, sb.Odds, 3)
	assert.Equal(t, "Arsenal", sb.Odds[0].Outcome)
	assert.Equal(t, "BookB", sb.Odds[0].Bookmaker)
	assert.Equal(t, 3.40, sb.Odds[0].Odd)
	assert.Equal(t, "Draw", sb.Odds[1].Outcome)
	assert.Equal(t, "BookA", sb.Odds[1].Bookmaker)
	assert.Equal(t, 3.60, sb.Odds[1].Odd)
	assert.Equal(t, "Chelsea", sb.Odds[2].Outcome)
	assert.Equal(t, "BookB", sb.Odds[2].Bookmaker)
	assert.Equal(t, 3.70, sb.Odds[2].Odd)

	// 1/3.40 + 1/3.60 + 1/3.70 = 0.8421... → real surebet.
	assert.True(t, sb.MarginPercent > 0)
	assert.Equal(t, "Premier League", sb.Sport)
	assert.Equal(t, "Arsenal", sb.HomeTeam)
	assert.Equal(t, "Chelsea", sb.AwayTeam)

	// Reported stake split sums to the reference stake.
	sum := 0.0
	for _, o := range sb.Odds {
		sum += o.Stake
	}
	assert.InDelta(t, 100.0, sum, 0.001)
}

func TestScanMatches_MarginThreshold(t *testing.T) {
	// Two bookmakers so the match is not rejected outright; both quote
	// the same prices, so best-price selection is the identity.
	thin := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.001}, Price{Name: "B", Price: 2.001})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.001}, Price{Name: "B", Price: 2.001})},
	)
	fat := threeWayMatch("C", "D",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "C", Price: 2.003}, Price{Name: "D", Price: 2.003})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "C", Price: 2.003}, Price{Name: "D", Price: 2.003})},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{MinMarginPercent: 0.1})
	found := s.ScanMatches([]Match{thin, fat})

	// thin margin ≈ 0.05% is filtered, fat ≈ 0.15% stays.
	require.Len(t, found, 1)
	assert.Equal(t, "C", found[0].HomeTeam)
}

func TestScanMatches_SkipsUnarbitrageableMatches(t *testing.T) {
	oneBookmaker := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 5.0}, Price{Name: "B", Price: 5.0})},
	)
	oneOutcome := threeWayMatch("C", "D",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "C", Price: 5.0})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "C", Price: 5.1})},
	)
	overround := threeWayMatch("E", "F",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "E", Price: 1.90}, Price{Name: "F", Price: 1.90})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "E", Price: 1.85}, Price{Name: "F", Price: 1.92})},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{})
	assert.Empty(t, s.ScanMatches([]Match{oneBookmaker, oneOutcome, overround}))
}

func TestScanMatches_SortedByMarginDescending(t *testing.T) {
	small := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.05}, Price{Name: "B", Price: 2.05})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.05}, Price{Name: "B", Price: 2.05})},
	)
	big := threeWayMatch("C", "D",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "C", Price: 2.30}, Price{Name: "D", Price: 2.30})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "C", Price: 2.30}, Price{Name: "D", Price: 2.30})},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{})
	found := s.ScanMatches([]Match{small, big})
	require.Len(t, found, 2)
	assert.Equal(t, "C", found[0].HomeTeam)
	assert.Greater(t, found[0].MarginPercent, found[1].MarginPercent)
}

func TestScan_SportFailureIsolation(t *testing.T) {
	good := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.20}, Price{Name: "B", Price: 2.20})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.20}, Price{Name: "B", Price: 2.20})},
	)
	source := &fakeSource{
		odds: map[string][]Match{"soccer_epl": {good}},
		errs: map[string]error{"basketball_nba": errors.New("upstream down")},
	}

	s := NewScanner(source, ScannerConfig{Sports: []string{"soccer_epl", "basketball_nba"}})
	found, err := s.Scan(context.Background())

	// The failing sport is skipped, not fatal.
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "A", found[0].HomeTeam)
}

func TestScan_UsesActiveSportsFromSource(t *testing.T) {
	good := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.20}, Price{Name: "B", Price: 2.20})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.20}, Price{Name: "B", Price: 2.20})},
	)
	source := &fakeSource{
		sports: []Sport{
			{Key: "soccer_epl", Active: true},
			{Key: "cricket", Active: false},
		},
		odds: map[string][]Match{
			"soccer_epl": {good},
			"cricket":    {good},
		},
	}

	s := NewScanner(source, ScannerConfig{})
	found, err := s.Scan(context.Background())
	require.NoError(t, err)

	// Inactive sports are never fetched.
	require.Len(t, found, 1)
}

func TestScan_CancelledContext(t *testing.T) {
	source := &fakeSource{
		odds: map[string][]Match{"soccer_epl": {threeWayMatch("A", "B")}},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScanner(source, ScannerConfig{Sports: []string{"soccer_epl"}})
	found, err := s.Scan(ctx)

	// Every fetch fails fast; partial (here: empty) results, no error.
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestScanMatches_StableEventID(t *testing.T) {
	match := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.30}, Price{Name: "B", Price: 2.30})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.30}, Price{Name: "B", Price: 2.30})},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{})
	first := s.ScanMatches([]Match{match})
	second := s.ScanMatches([]Match{match})
	require.Len(t, first, 1)
	require.Len(t, second, 1)

	// Same event, same identity on every cycle; consumers dedup on it.
	assert.Equal(t, "match-1", first[0].ID)
	assert.Equal(t, first[0].ID, second[0].ID)
}

func TestScanMatches_NegativeThresholdKeepsThinMargins(t *testing.T) {
	thin := threeWayMatch("A", "B",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "A", Price: 2.001}, Price{Name: "B", Price: 2.001})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "A", Price: 2.001}, Price{Name: "B", Price: 2.001})},
	)
	overround := threeWayMatch("C", "D",
		Bookmaker{Title: "X", Markets: h2h(Price{Name: "C", Price: 1.90}, Price{Name: "D", Price: 1.90})},
		Bookmaker{Title: "Y", Markets: h2h(Price{Name: "C", Price: 1.90}, Price{Name: "D", Price: 1.90})},
	)

	s := NewScanner(&fakeSource{}, ScannerConfig{MinMarginPercent: -1})
	found := s.ScanMatches([]Match{thin, overround})

	// A negative threshold drops the noise floor but still demands a
	// genuinely positive margin.
	require.Len(t, found, 1)
	assert.Equal(t, "A", found[0].HomeTeam)
}
