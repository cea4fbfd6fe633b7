package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		now       time.Time
		want      ContestStatus
		wantDelta time.Duration
	}{
		{
			name:      "before start is upcoming",
			now:       start.Add(-90 * time.Minute),
			want:      StatusUpcoming,
			wantDelta: 90 * time.Minute,
		},
		{
			name:      "exactly at start is running",
			now:       start,
			want:      StatusRunning,
			wantDelta: 2 * time.Hour,
		},
		{
			name:      "between start and end is running",
			now:       start.Add(30 * time.Minute),
			want:      StatusRunning,
			wantDelta: 90 * time.Minute,
		},
		{
			name:      "exactly at end is ended",
			now:       end,
			want:      StatusEnded,
			wantDelta: 0,
		},
		{
			name:      "after end is ended",
			now:       end.Add(3 * time.Hour),
			want:      StatusEnded,
			wantDelta: 3 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, delta := Classify(start, end, tt.now)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"under a minute", 30 * time.Second, "< 1m"},
		{"minutes only", 45 * time.Minute, "45m"},
		{"hours only", 3 * time.Hour, "3h"},
		{"hours and minutes", 3*time.Hour + 45*time.Minute, "3h 45m"},
		{"days only", 48 * time.Hour, "2d"},
		{"days and hours", 51 * time.Hour, "2d 3h"},
		{"days cap at two units", 51*time.Hour + 20*time.Minute, "2d 3h"},
		{"zero", 0, "< 1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"codeforces", PlatformCodeforces, false},
		{"CodeChef", PlatformCodeChef, false},
		{"  atcoder  ", PlatformAtCoder, false},
		{"LEETCODE", PlatformLeetCode, false},
		{"topcoder", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPlatform)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStartOfDay(t *testing.T) {
	// 2025-01-01 20:00 UTC is already 2025-01-02 01:30 in IST.
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)

	today := StartOfDay(now, 0)
	assert.Equal(t, "2025-01-02 00:00", today.Format("2006-01-02 15:04"))
	assert.Equal(t, ReferenceLocation(), today.Location())

	tomorrow := StartOfDay(now, 1)
	assert.Equal(t, "2025-01-03 00:00", tomorrow.Format("2006-01-02 15:04"))
}

func TestLocalDate(t *testing.T) {
	// Same instant, IST date has already rolled over.
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02", LocalDate(now))
}
