package services

import (
	"testing"

	"github.com/Avidasevi/surebetsistem/surebet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurebets_SkipsAlreadySeen(t *testing.T) {
	prev := []surebet.Surebet{
		{ID: "event-1", MarginPercent: 2.5},
		{ID: "event-2", MarginPercent: 1.2},
	}
	found := []surebet.Surebet{
		{ID: "event-1", MarginPercent: 2.7},
		{ID: "event-3", MarginPercent: 3.1},
	}

	fresh := newSurebets(prev, found)

	// event-1 already alerted on a previous cycle; only event-3 is new.
	require.Len(t, fresh, 1)
	assert.Equal(t, "event-3", fresh[0].ID)
}

func TestNewSurebets_EmptyPrevious(t *testing.T) {
	found := []surebet.Surebet{{ID: "event-1"}, {ID: "event-2"}}
	assert.Len(t, newSurebets(nil, found), 2)
}

func TestNewSurebets_NothingNew(t *testing.T) {
	prev := []surebet.Surebet{{ID: "event-1"}}
	assert.Empty(t, newSurebets(prev, []surebet.Surebet{{ID: "event-1"}}))
}
