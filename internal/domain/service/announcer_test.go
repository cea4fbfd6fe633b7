package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func configuredGuild(lastAnnounced string) *entity.GuildConfig {
	return &entity.GuildConfig{
		GuildID:               "guild-1",
		AnnouncementChannelID: "channel-1",
		AnnouncementTime:      "09:00",
		LastAnnouncedDate:     lastAnnounced,
	}
}

func Test_announcer_checkGuilds_PostsWhenDue(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	a.now = fixedNow // 12:00 IST, past the 09:00 announcement time

	today := domain.LocalDate(fixedNow())
	dayStart := domain.StartOfDay(fixedNow(), 0)

	contest := &entity.Contest{
		Name:      "Daily Challenge",
		Platform:  domain.PlatformLeetCode,
		StartTime: fixedNow().Add(2 * time.Hour),
		EndTime:   fixedNow().Add(4 * time.Hour),
	}

	m.mockGuildRepo.EXPECT().GetConfigured().Return([]*entity.GuildConfig{configuredGuild("")}, nil)
	m.mockContestRepo.EXPECT().
		QueryWindow(dayStart, dayStart.AddDate(0, 0, 1), domain.Platform(""), 0).
		Return([]*entity.Contest{contest}, nil)
	m.mockNotifier.EXPECT().
		PostDailyContests("channel-1", gomock.Len(1)).
		Return(nil)
	m.mockGuildRepo.EXPECT().MarkAnnounced("guild-1", today).Return(nil)

	a.checkGuilds()
}

func Test_announcer_checkGuilds_AtMostOncePerDay(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	a.now = fixedNow

	today := domain.LocalDate(fixedNow())

	// Already announced today: many ticks after the configured time must
	// not post again. No notifier or contest expectations are set.
	m.mockGuildRepo.EXPECT().
		GetConfigured().
		Return([]*entity.GuildConfig{configuredGuild(today)}, nil).
		Times(3)

	for range 3 {
		a.checkGuilds()
	}
}

func Test_announcer_checkGuilds_NotDueYet(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	// 08:59 IST, one minute before the 09:00 announcement time.
	a.now = func() time.Time {
		return time.Date(2025, 1, 1, 8, 59, 0, 0, domain.ReferenceLocation())
	}

	m.mockGuildRepo.EXPECT().GetConfigured().Return([]*entity.GuildConfig{configuredGuild("")}, nil)

	a.checkGuilds()
}

func Test_announcer_checkGuilds_TransientFailureRetriesNextTick(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	a.now = fixedNow

	today := domain.LocalDate(fixedNow())
	dayStart := domain.StartOfDay(fixedNow(), 0)

	m.mockGuildRepo.EXPECT().
		GetConfigured().
		Return([]*entity.GuildConfig{configuredGuild("")}, nil).
		Times(2)
	m.mockContestRepo.EXPECT().
		QueryWindow(dayStart, dayStart.AddDate(0, 0, 1), domain.Platform(""), 0).
		Return(nil, nil).
		Times(2)

	// First tick fails transiently; the marker must stay unset so the
	// next tick retries.
	gomock.InOrder(
		m.mockNotifier.EXPECT().
			PostDailyContests("channel-1", gomock.Any()).
			Return(errors.New("discord 500")),
		m.mockNotifier.EXPECT().
			PostDailyContests("channel-1", gomock.Any()).
			Return(nil),
	)
	m.mockGuildRepo.EXPECT().MarkAnnounced("guild-1", today).Return(nil)

	a.checkGuilds()
	a.checkGuilds()
}

func Test_announcer_checkGuilds_InaccessibleChannelSkipsDay(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	a.now = fixedNow

	today := domain.LocalDate(fixedNow())
	dayStart := domain.StartOfDay(fixedNow(), 0)

	m.mockGuildRepo.EXPECT().GetConfigured().Return([]*entity.GuildConfig{configuredGuild("")}, nil)
	m.mockContestRepo.EXPECT().
		QueryWindow(dayStart, dayStart.AddDate(0, 0, 1), domain.Platform(""), 0).
		Return(nil, nil)

	// A deleted channel marks the day anyway: no retries until an admin
	// reconfigures.
	m.mockNotifier.EXPECT().
		PostDailyContests("channel-1", gomock.Any()).
		Return(fmt.Errorf("%w: unknown channel", contract.ErrChannelInaccessible))
	m.mockGuildRepo.EXPECT().MarkAnnounced("guild-1", today).Return(nil)

	a.checkGuilds()
}

func Test_announcer_checkGuilds_GuildFailureIsolated(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	a := newAnnouncer(m.mockDataManager, m.mockNotifier)
	a.now = fixedNow

	today := domain.LocalDate(fixedNow())
	dayStart := domain.StartOfDay(fixedNow(), 0)

	broken := configuredGuild("")
	broken.AnnouncementTime = "not-a-time"

	healthy := &entity.GuildConfig{
		GuildID:               "guild-2",
		AnnouncementChannelID: "channel-2",
		AnnouncementTime:      "09:00",
	}

	m.mockGuildRepo.EXPECT().
		GetConfigured().
		Return([]*entity.GuildConfig{broken, healthy}, nil)

	// The broken guild logs and is skipped; the healthy guild still posts.
	m.mockContestRepo.EXPECT().
		QueryWindow(dayStart, dayStart.AddDate(0, 0, 1), domain.Platform(""), 0).
		Return(nil, nil)
	m.mockNotifier.EXPECT().PostDailyContests("channel-2", gomock.Any()).Return(nil)
	m.mockGuildRepo.EXPECT().MarkAnnounced("guild-2", today).Return(nil)

	a.checkGuilds()
}

func Test_isDue(t *testing.T) {
	ist := domain.ReferenceLocation()

	tests := []struct {
		name   string
		config *entity.GuildConfig
		now    time.Time
		want   bool
	}{
		{
			name:   "exactly at announcement time",
			config: configuredGuild(""),
			now:    time.Date(2025, 1, 1, 9, 0, 0, 0, ist),
			want:   true,
		},
		{
			name:   "minute before",
			config: configuredGuild(""),
			now:    time.Date(2025, 1, 1, 8, 59, 0, 0, ist),
			want:   false,
		},
		{
			name:   "already announced today",
			config: configuredGuild("2025-01-01"),
			now:    time.Date(2025, 1, 1, 9, 30, 0, 0, ist),
			want:   false,
		},
		{
			name:   "announced yesterday",
			config: configuredGuild("2024-12-31"),
			now:    time.Date(2025, 1, 1, 9, 30, 0, 0, ist),
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := isDue(tt.config, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
