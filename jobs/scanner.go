package jobs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Avidasevi/surebetsistem/services"
	"github.com/Avidasevi/surebetsistem/surebet"

	"github.com/robfig/cron/v3"
)

// scanSettings is the env-driven tuning of the periodic scan.
type scanSettings struct {
	interval    time.Duration
	alertMargin float64
	cfg         surebet.ScannerConfig
}

func loadScanSettings() scanSettings {
	st := scanSettings{
		interval:    5 * time.Minute,
		alertMargin: 1.0,
	}

	if raw := os.Getenv("SCAN_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("⚠️  Invalid SCAN_INTERVAL %q, using %s", raw, st.interval)
		} else {
			st.interval = parsed
		}
	}

	if raw := os.Getenv("SCAN_MIN_MARGIN"); raw != "" {
		margin, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("⚠️  Invalid SCAN_MIN_MARGIN %q, using default", raw)
		} else {
			st.cfg.MinMarginPercent = margin
		}
	}

	if raw := os.Getenv("SCAN_ALERT_MARGIN"); raw != "" {
		margin, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Printf("⚠️  Invalid SCAN_ALERT_MARGIN %q, using %.1f", raw, st.alertMargin)
		} else {
			st.alertMargin = margin
		}
	}

	if raw := os.Getenv("SCAN_SPORTS"); raw != "" {
		for _, key := range strings.Split(raw, ",") {
			if key = strings.TrimSpace(key); key != "" {
				st.cfg.Sports = append(st.cfg.Sports, key)
			}
		}
	}

	return st
}

// StartSurebetScanner schedules the periodic odds scan. Without an
// ODDS_API_KEY the scheduler is skipped and /api/surebets stays empty.
func StartSurebetScanner() *cron.Cron {
	apiKey := os.Getenv("ODDS_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  ODDS_API_KEY not set, surebet scanner disabled")
		return nil
	}

	st := loadScanSettings()
	scanner := surebet.NewScanner(surebet.NewOddsAPIClient(os.Getenv("ODDS_API_URL"), apiKey), st.cfg)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), st.interval)
		defer cancel()
		if err := services.RunScan(ctx, scanner, 2*st.interval, st.alertMargin); err != nil {
			log.Printf("❌ error running surebet scan: %v", err)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc("@every "+st.interval.String(), run); err != nil {
		log.Printf("❌ failed to schedule surebet scan: %v", err)
		return nil
	}
	c.Start()

	// First scan right away so the dashboard is not empty until the
	// first tick.
	go run()

	log.Printf("✅ surebet scanner scheduled every %s", st.interval)
	return c
}
