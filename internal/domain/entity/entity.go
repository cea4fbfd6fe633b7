package entity

import (
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
)

// Contest is one cached contest row. Rows are created and updated only by
// the refresh engine, keyed by (platform, source_id).
type Contest struct {
	ID        int64           `json:"id" db:"id"`
	Platform  domain.Platform `json:"platform" db:"platform"`
	SourceID  int64           `json:"source_id" db:"source_id"`
	Name      string          `json:"name" db:"name"`
	StartTime time.Time       `json:"start_time" db:"start_time"`
	EndTime   time.Time       `json:"end_time" db:"end_time"`
	URL       string          `json:"url" db:"url"`
	FetchedAt time.Time       `json:"fetched_at" db:"fetched_at"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

// Duration is always derived from the stored instants so it cannot drift
// from them.
func (c *Contest) Duration() time.Duration {
	return c.EndTime.Sub(c.StartTime)
}

// ContestWithStatus annotates a contest with its live state relative to the
// instant the query ran.
type ContestWithStatus struct {
	Contest *Contest
	Status  domain.ContestStatus
	// Delta is time until start (upcoming), time until end (running) or
	// time since end (ended).
	Delta time.Duration
}

// GuildConfig holds per-guild announcement settings. One row per guild,
// created on first configuration.
type GuildConfig struct {
	ID                    int64     `json:"id" db:"id"`
	GuildID               string    `json:"guild_id" db:"guild_id"`
	AnnouncementChannelID string    `json:"announcement_channel_id" db:"announcement_channel_id"`
	AnnouncementTime      string    `json:"announcement_time" db:"announcement_time"` // HH:MM, reference timezone
	LastAnnouncedDate     string    `json:"last_announced_date" db:"last_announced_date"`
	CreatedAt             time.Time `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}
