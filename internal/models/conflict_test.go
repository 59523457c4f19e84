package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStrategy_Valid(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
		want     bool
	}{
		{"timestamp", StrategyTimestamp, true},
		{"server-wins", StrategyServerWins, true},
		{"client-wins", StrategyClientWins, true},
		{"manual", StrategyManual, true},
		{"empty", Strategy(""), false},
		{"unknown", Strategy("newest"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.strategy.Valid())
		})
	}
}

func TestConflict_ServerNewer(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		local  time.Time
		server time.Time
		want   bool
	}{
		{"server newer", base, base.Add(time.Hour), true},
		{"local newer", base.Add(time.Hour), base, false},
		{"equal timestamps", base, base, false},
		{"server at epoch", base, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Conflict{
				LocalTimestamp:  tt.local,
				ServerTimestamp: tt.server,
			}
			assert.Equal(t, tt.want, c.ServerNewer())
		})
	}
}
