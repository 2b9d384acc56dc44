package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Avidasevi/surebetsistem/database"
	"github.com/Avidasevi/surebetsistem/models"
	"github.com/Avidasevi/surebetsistem/surebet"
)

const (
	surebetsCacheKey  = "surebets:latest"
	surebetsAlertChan = "surebets:alerts"
)

var (
	snapshotMu sync.RWMutex
	snapshot   []surebet.Surebet
)

// RunScan executes one full scan, caches the snapshot and raises alerts
// for opportunities at or above alertMargin that were not present in
// the previous snapshot. Cache and publish failures are logged and
// ignored; the scan result always lands in the in-process snapshot.
func RunScan(ctx context.Context, scanner *surebet.Scanner, cacheTTL time.Duration, alertMargin float64) error {
	found, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}

	snapshotMu.Lock()
	prev := snapshot
	snapshot = found
	snapshotMu.Unlock()

	if database.RDB != nil {
		payload, _ := json.Marshal(found)
		if err := database.RDB.Set(ctx, surebetsCacheKey, payload, cacheTTL).Err(); err != nil {
			log.Printf("⚠️ failed to cache surebets: %v", err)
		}
	}

	for _, sb := range newSurebets(prev, found) {
		if sb.MarginPercent >= alertMargin {
			raiseAlert(ctx, sb)
		}
	}

	log.Printf("✅ surebet scan done: %d opportunities", len(found))
	return nil
}

// newSurebets returns the opportunities in found whose ID was absent
// from prev. An arb that survives several scan cycles alerts once, when
// it first appears.
func newSurebets(prev, found []surebet.Surebet) []surebet.Surebet {
	seen := make(map[string]bool, len(prev))
	for _, sb := range prev {
		seen[sb.ID] = true
	}
	var fresh []surebet.Surebet
	for _, sb := range found {
		if !seen[sb.ID] {
			fresh = append(fresh, sb)
		}
	}
	return fresh
}

// LatestSurebets returns the most recent scan snapshot, preferring the
// shared Redis copy so every instance serves the same list.
func LatestSurebets(ctx context.Context) []surebet.Surebet {
	if database.RDB != nil {
		payload, err := database.RDB.Get(ctx, surebetsCacheKey).Bytes()
		if err == nil {
			var cached []surebet.Surebet
			if json.Unmarshal(payload, &cached) == nil {
				return cached
			}
		}
	}

	snapshotMu.RLock()
	defer snapshotMu.RUnlock()
	return snapshot
}

func raiseAlert(ctx context.Context, sb surebet.Surebet) {
	payload, _ := json.Marshal(sb)

	alerta := models.Alerta{
		Tipo:     "surebet",
		Titulo:   fmt.Sprintf("Surebet %.2f%%: %s x %s", sb.MarginPercent, sb.HomeTeam, sb.AwayTeam),
		Mensagem: fmt.Sprintf("%s, guaranteed margin %.2f%%", sb.Sport, sb.MarginPercent),
		Surebet:  payload,
	}
	if err := database.DB.Create(&alerta).Error; err != nil {
		log.Printf("⚠️ failed to save alerta: %v", err)
	}

	if database.RDB != nil {
		if err := database.RDB.Publish(ctx, surebetsAlertChan, payload).Err(); err != nil {
			log.Printf("⚠️ failed to publish alerta: %v", err)
		}
	}
}
