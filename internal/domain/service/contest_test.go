package service

import (
	"testing"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	// 2025-01-01 12:00 IST
	return time.Date(2025, 1, 1, 12, 0, 0, 0, domain.ReferenceLocation())
}

func Test_contestService_ListContests_Validation(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		platform string
		limit    int
		wantErr  error
	}{
		{"days too low", 0, "", 0, domain.ErrDaysOutOfRange},
		{"days too high", 31, "", 0, domain.ErrDaysOutOfRange},
		{"limit too high", 7, "", 26, domain.ErrLimitOutOfRange},
		{"negative limit", 7, "", -1, domain.ErrLimitOutOfRange},
		{"unknown platform", 7, "topcoder", 0, domain.ErrInvalidPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			// Validation rejects before any store access, so no
			// repository expectations are set.
			svc := newContest(m.mockDataManager)
			svc.now = fixedNow

			_, err := svc.ListContests(tt.days, tt.platform, tt.limit)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func Test_contestService_ListContests_Window(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newContest(m.mockDataManager)
	svc.now = fixedNow

	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, domain.ReferenceLocation())
	wantEnd := wantStart.AddDate(0, 0, 7)

	expected := []*entity.Contest{{Name: "Weekly Round", Platform: domain.PlatformCodeforces}}

	m.mockContestRepo.EXPECT().
		QueryWindow(wantStart, wantEnd, domain.Platform(""), 0).
		Return(expected, nil)

	got, err := svc.ListContests(7, "", 0)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func Test_contestService_ListContests_PlatformFilter(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newContest(m.mockDataManager)
	svc.now = fixedNow

	wantStart := time.Date(2025, 1, 1, 0, 0, 0, 0, domain.ReferenceLocation())

	m.mockContestRepo.EXPECT().
		QueryWindow(wantStart, wantStart.AddDate(0, 0, 3), domain.PlatformAtCoder, 5).
		Return(nil, nil)

	got, err := svc.ListContests(3, "AtCoder", 5)
	require.NoError(t, err)
	assert.Empty(t, got, "Empty window is a valid, non-error response")
}

func Test_contestService_Today(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newContest(m.mockDataManager)
	svc.now = fixedNow

	dayStart := time.Date(2025, 1, 1, 0, 0, 0, 0, domain.ReferenceLocation())

	running := &entity.Contest{
		Name:      "Morning Contest",
		Platform:  domain.PlatformCodeforces,
		StartTime: fixedNow().Add(-time.Hour),
		EndTime:   fixedNow().Add(time.Hour),
	}
	upcoming := &entity.Contest{
		Name:      "Evening Contest",
		Platform:  domain.PlatformLeetCode,
		StartTime: fixedNow().Add(6 * time.Hour),
		EndTime:   fixedNow().Add(8 * time.Hour),
	}

	m.mockContestRepo.EXPECT().
		QueryWindow(dayStart, dayStart.AddDate(0, 0, 1), domain.Platform(""), 0).
		Return([]*entity.Contest{running, upcoming}, nil)

	got, err := svc.Today("")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.StatusRunning, got[0].Status)
	assert.Equal(t, time.Hour, got[0].Delta)
	assert.Equal(t, domain.StatusUpcoming, got[1].Status)
	assert.Equal(t, 6*time.Hour, got[1].Delta)
}

func Test_contestService_Tomorrow(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	svc := newContest(m.mockDataManager)
	svc.now = fixedNow

	tomorrowStart := time.Date(2025, 1, 2, 0, 0, 0, 0, domain.ReferenceLocation())

	m.mockContestRepo.EXPECT().
		QueryWindow(tomorrowStart, tomorrowStart.AddDate(0, 0, 1), domain.PlatformCodeChef, 0).
		Return(nil, nil)

	got, err := svc.Tomorrow("codechef")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_contestService_SetAnnouncementTime(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		svc := newContest(m.mockDataManager)

		m.mockGuildRepo.EXPECT().Ensure("guild-1").Return(&entity.GuildConfig{GuildID: "guild-1"}, nil)
		m.mockGuildRepo.EXPECT().SetAnnouncementTime("guild-1", "18:30").Return(nil)

		require.NoError(t, svc.SetAnnouncementTime("guild-1", "18:30"))
	})

	t.Run("invalid format rejected before store access", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		svc := newContest(m.mockDataManager)

		for _, bad := range []string{"25:00", "12:60", "noon", "9", ""} {
			err := svc.SetAnnouncementTime("guild-1", bad)
			assert.ErrorIs(t, err, domain.ErrInvalidTime, "expected %q to be rejected", bad)
		}
	})
}
