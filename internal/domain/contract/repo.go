package contract

import (
	"context"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Contest() ContestRepo
	Guild() GuildRepo
}

// ContestRepo defines the contract for the contest cache repository
type ContestRepo interface {
	// Upsert inserts the contest or, when a row with the same
	// (platform, source_id) exists, updates it in place.
	Upsert(contest *entity.Contest) error

	// QueryWindow returns contests with start_time in [start, end),
	// ordered by start_time, platform, source_id ascending. platform ""
	// means no platform filter; limit 0 means no limit.
	QueryWindow(start, end time.Time, platform domain.Platform, limit int) ([]*entity.Contest, error)

	// DeleteEndedBefore prunes contests whose end_time precedes t.
	DeleteEndedBefore(t time.Time) (int64, error)

	// LatestFetchTime returns the newest fetched_at in the cache, the
	// zero time when the cache is empty.
	LatestFetchTime() (time.Time, error)
}

// GuildRepo defines the contract for the guild config repository
type GuildRepo interface {
	// GetByGuildID returns nil, nil when the guild has no config row.
	GetByGuildID(guildID string) (*entity.GuildConfig, error)

	// Ensure returns the guild's config row, creating it with defaults
	// when missing.
	Ensure(guildID string) (*entity.GuildConfig, error)

	SetAnnouncementChannel(guildID, channelID string) error
	SetAnnouncementTime(guildID, hhmm string) error

	// MarkAnnounced records that the daily announcement for date
	// (YYYY-MM-DD, reference timezone) was posted.
	MarkAnnounced(guildID, date string) error

	// GetConfigured returns every guild with an announcement channel set.
	GetConfigured() ([]*entity.GuildConfig, error)
}
