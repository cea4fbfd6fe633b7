package contract

import (
	"context"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

// ContestService is the query surface consumed by the command layer.
type ContestService interface {
	// ListContests returns contests starting within the next days days.
	// platform "" means all platforms; limit 0 means no limit.
	ListContests(days int, platform string, limit int) ([]*entity.Contest, error)

	// Today and Tomorrow are the single-day specializations, annotated
	// with each contest's live status.
	Today(platform string) ([]*entity.ContestWithStatus, error)
	Tomorrow(platform string) ([]*entity.ContestWithStatus, error)

	GetGuildConfig(guildID string) (*entity.GuildConfig, error)
	SetAnnouncementChannel(guildID, channelID string) error
	SetAnnouncementTime(guildID, hhmm string) error
}

// Refresher is the cache refresh surface exposed to the command layer.
type Refresher interface {
	// Refresh refetches the rolling window on demand. It reports per
	// platform and never fails as a whole just because one platform did.
	Refresh(ctx context.Context) (*RefreshResult, error)

	// CacheAge returns the age of the newest cached record, or false
	// when the cache is empty.
	CacheAge() (time.Duration, bool, error)
}

// RefreshResult summarizes one refresh pass.
type RefreshResult struct {
	Fetched int
	Pruned  int64
	Failed  []domain.Platform
}
