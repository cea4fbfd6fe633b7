package contract

import (
	"context"
	"errors"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

// ErrChannelInaccessible reports that an announcement channel was deleted or
// the bot lost permission to post there. The announcer treats it as final
// for the day instead of retrying every tick.
var ErrChannelInaccessible = errors.New("announcement channel inaccessible")

// Notifier defines the outbound message capability used by the announcement
// scheduler. The implementation owns all rendering; the scheduler only
// passes structured contest data.
// This allows mocking in tests while keeping the real implementation simple.
type Notifier interface {
	// PostDailyContests posts today's contest lineup to the channel.
	// A deleted channel or revoked permission is reported as
	// ErrChannelInaccessible (possibly wrapped).
	PostDailyContests(channelID string, contests []*entity.ContestWithStatus) error
}

// ContestSource defines the inbound fetch capability used by the refresh
// engine: one remote listing call per platform and window.
type ContestSource interface {
	// Fetch returns normalized contests for the platform with start_time
	// in [start, end). Remote identifiers and timestamps are already
	// translated to domain.Platform and UTC.
	Fetch(ctx context.Context, start, end time.Time, platform domain.Platform) ([]*entity.Contest, error)
}
