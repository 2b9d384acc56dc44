package surebet

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Sport is one sport/league offered by the odds source.
type Sport struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

// Price is one bookmaker's quote for a named outcome.
type Price struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Market groups a bookmaker's outcome prices (h2h, totals, ...).
type Market struct {
	Key      string  `json:"key"`
	Outcomes []Price `json:"outcomes"`
}

type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Match is one event with the quotes of every bookmaker covering it.
type Match struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime time.Time   `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// OddsSource is the external odds provider the scanner pulls from.
type OddsSource interface {
	Sports(ctx context.Context) ([]Sport, error)
	Odds(ctx context.Context, sportKey string) ([]Match, error)
}

// SurebetOdd is the best price found for one outcome of a surebet, with
// the bookmaker that offered it and its share of the reference stake.
type SurebetOdd struct {
	Outcome            string  `json:"outcome"`
	Bookmaker          string  `json:"bookmaker"`
	Odd                float64 `json:"odd"`
	ImpliedProbability float64 `json:"implied_probability"`
	Stake              float64 `json:"stake"`
}

// Surebet is one detected arbitrage opportunity.
type Surebet struct {
	ID                      string       `json:"id"`
	Sport                   string       `json:"sport"`
	SportKey                string       `json:"sport_key"`
	HomeTeam                string       `json:"home_team"`
	AwayTeam                string       `json:"away_team"`
	CommenceTime            time.Time    `json:"commence_time"`
	MarginPercent           float64      `json:"margin_percent"`
	GuaranteedProfit        float64      `json:"guaranteed_profit"`
	ROIPercent              float64      `json:"roi_percent"`
	TotalImpliedProbability float64      `json:"total_implied_probability"`
	Odds                    []SurebetOdd `json:"odds"`
}

// ScannerConfig tunes a Scanner. Zero values fall back to defaults.
type ScannerConfig struct {
	// MinMarginPercent excludes opportunities at or below this margin,
	// filtering float noise and stale quotes. Default 0.1; a negative
	// value removes the noise floor and keeps every positive margin.
	MinMarginPercent float64
	// Sports limits the scan to these sport keys; empty means every
	// active sport reported by the source.
	Sports []string
	// FetchTimeout bounds each per-sport odds call. Default 15s.
	FetchTimeout time.Duration
	// ReferenceStake is the stake the reported splits are computed for.
	// Default 100.
	ReferenceStake float64
}

// Scanner pulls matches from an OddsSource and surfaces arbitrage
// opportunities ranked by margin.
type Scanner struct {
	source OddsSource
	cfg    ScannerConfig
}

func NewScanner(source OddsSource, cfg ScannerConfig) *Scanner {
	if cfg.MinMarginPercent == 0 {
		cfg.MinMarginPercent = 0.1
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 15 * time.Second
	}
	if cfg.ReferenceStake == 0 {
		cfg.ReferenceStake = 100
	}
	return &Scanner{source: source, cfg: cfg}
}

// Scan fetches every configured sport concurrently and returns the
// surebets found, sorted by margin descending. A failing sport is logged
// and skipped; it never aborts the others. Cancelling ctx stops the
// in-flight fetches and returns whatever was already resolved.
func (s *Scanner) Scan(ctx context.Context) ([]Surebet, error) {
	keys := s.cfg.Sports
	if len(keys) == 0 {
		sports, err := s.source.Sports(ctx)
		if err != nil {
			return nil, err
		}
		for _, sp := range sports {
			if sp.Active {
				keys = append(keys, sp.Key)
			}
		}
	}

	var (
		mu       sync.Mutex
		surebets []Surebet
		wg       sync.WaitGroup
	)
	for _, key := range keys {
		wg.Add(1)
		go func(sportKey string) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
			defer cancel()

			matches, err := s.source.Odds(fetchCtx, sportKey)
			if err != nil {
				log.Printf("⚠️ surebet scan: sport %s skipped: %v", sportKey, err)
				return
			}
			found := s.ScanMatches(matches)
			mu.Lock()
			surebets = append(surebets, found...)
			mu.Unlock()
		}(key)
	}
	wg.Wait()

	sortByMargin(surebets)
	return surebets, nil
}

// ScanMatches evaluates already-fetched matches, sorted by margin
// descending. Pure: no I/O, safe for any caller.
func (s *Scanner) ScanMatches(matches []Match) []Surebet {
	var surebets []Surebet
	for _, match := range matches {
		if sb, ok := s.evaluateMatch(match); ok {
			surebets = append(surebets, sb)
		}
	}
	sortByMargin(surebets)
	return surebets
}

type bestPrice struct {
	outcome   string
	bookmaker string
	odd       float64
}

func (s *Scanner) evaluateMatch(match Match) (Surebet, bool) {
	if len(match.Bookmakers) < 2 {
		return Surebet{}, false
	}

	best := bestPrices(match)
	if len(best) < 2 {
		return Surebet{}, false
	}

	odds := make([]float64, len(best))
	for i, b := range best {
		odds[i] = b.odd
	}
	calc, err := Evaluate(odds, s.cfg.ReferenceStake)
	if err != nil {
		return Surebet{}, false
	}
	minMargin := s.cfg.MinMarginPercent
	if minMargin < 0 {
		minMargin = 0
	}
	if calc.MarginPercent <= minMargin {
		return Surebet{}, false
	}

	// Stable per-event ID so the same opportunity keeps the same identity
	// across scan cycles. Sourceless matches fall back to a random one.
	id := match.ID
	if id == "" {
		id = uuid.New().String()
	}

	stakes := RoundStakes(calc.Stakes)
	sb := Surebet{
		ID:                      id,
		Sport:                   match.SportTitle,
		SportKey:                match.SportKey,
		HomeTeam:                match.HomeTeam,
		AwayTeam:                match.AwayTeam,
		CommenceTime:            match.CommenceTime,
		MarginPercent:           calc.MarginPercent,
		GuaranteedProfit:        calc.GuaranteedProfit,
		ROIPercent:              calc.ROIPercent,
		TotalImpliedProbability: calc.TotalImpliedProbability,
		Odds:                    make([]SurebetOdd, len(best)),
	}
	for i, b := range best {
		sb.Odds[i] = SurebetOdd{
			Outcome:            b.outcome,
			Bookmaker:          b.bookmaker,
			Odd:                b.odd,
			ImpliedProbability: calc.ImpliedProbabilities[i],
			Stake:              stakes[i],
		}
	}
	return sb, true
}

// bestPrices picks, per outcome slot (home/draw/away from the h2h
// market), the highest price any bookmaker offers. On an exact price tie
// the first bookmaker seen keeps the slot; which one wins is not a
// guarantee of the API.
func bestPrices(match Match) []bestPrice {
	slots := []struct {
		outcome string
		name    string
	}{
		{"home", match.HomeTeam},
		{"draw", "Draw"},
		{"away", match.AwayTeam},
	}

	var best []bestPrice
	for _, slot := range slots {
		top := bestPrice{outcome: slot.name}
		for _, bk := range match.Bookmakers {
			for _, market := range bk.Markets {
				if market.Key != "h2h" {
					continue
				}
				for _, price := range market.Outcomes {
					if price.Name == slot.name && price.Price > top.odd {
						top.odd = price.Price
						top.bookmaker = bk.Title
					}
				}
			}
		}
		if top.odd > 0 {
			best = append(best, top)
		}
	}
	return best
}

func sortByMargin(surebets []Surebet) {
	sort.SliceStable(surebets, func(a, b int) bool {
		return surebets[a].MarginPercent > surebets[b].MarginPercent
	})
}
