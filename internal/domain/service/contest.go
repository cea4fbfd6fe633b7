package service

import (
	"fmt"
	"regexp"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

type contestService struct {
	dm contract.DataManager

	// now is swappable in tests
	now func() time.Time
}

func newContest(dm contract.DataManager) *contestService {
	return &contestService{
		dm:  dm,
		now: time.Now,
	}
}

// ListContests returns contests starting in [start of today, +days days) in
// the reference timezone. Validation happens before any store access.
func (s *contestService) ListContests(days int, platform string, limit int) ([]*entity.Contest, error) {
	canonical, err := validateQuery(days, platform, limit)
	if err != nil {
		return nil, err
	}

	start := domain.StartOfDay(s.now(), 0)
	end := start.AddDate(0, 0, days)

	return s.dm.Contest().QueryWindow(start, end, canonical, limit)
}

// Today returns today's contests annotated with their live status.
func (s *contestService) Today(platform string) ([]*entity.ContestWithStatus, error) {
	return s.singleDay(0, platform)
}

// Tomorrow returns tomorrow's contests annotated with their live status.
func (s *contestService) Tomorrow(platform string) ([]*entity.ContestWithStatus, error) {
	return s.singleDay(1, platform)
}

func (s *contestService) singleDay(offsetDays int, platform string) ([]*entity.ContestWithStatus, error) {
	canonical, err := validateQuery(1, platform, 0)
	if err != nil {
		return nil, err
	}

	now := s.now()
	start := domain.StartOfDay(now, offsetDays)
	end := start.AddDate(0, 0, 1)

	contests, err := s.dm.Contest().QueryWindow(start, end, canonical, 0)
	if err != nil {
		return nil, err
	}

	return AnnotateStatus(contests, now), nil
}

// AnnotateStatus classifies each contest against now. Statuses are computed
// at read time and never persisted.
func AnnotateStatus(contests []*entity.Contest, now time.Time) []*entity.ContestWithStatus {
	annotated := make([]*entity.ContestWithStatus, 0, len(contests))
	for _, contest := range contests {
		status, delta := domain.Classify(contest.StartTime, contest.EndTime, now)
		annotated = append(annotated, &entity.ContestWithStatus{
			Contest: contest,
			Status:  status,
			Delta:   delta,
		})
	}
	return annotated
}

func (s *contestService) GetGuildConfig(guildID string) (*entity.GuildConfig, error) {
	return s.dm.Guild().Ensure(guildID)
}

func (s *contestService) SetAnnouncementChannel(guildID, channelID string) error {
	if _, err := s.dm.Guild().Ensure(guildID); err != nil {
		return err
	}
	return s.dm.Guild().SetAnnouncementChannel(guildID, channelID)
}

var announcementTimeRe = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

func (s *contestService) SetAnnouncementTime(guildID, hhmm string) error {
	if !announcementTimeRe.MatchString(hhmm) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTime, hhmm)
	}

	if _, err := s.dm.Guild().Ensure(guildID); err != nil {
		return err
	}
	return s.dm.Guild().SetAnnouncementTime(guildID, hhmm)
}

// validateQuery rejects bad user input and resolves the platform filter.
// An empty platform string means no filter.
func validateQuery(days int, platform string, limit int) (domain.Platform, error) {
	if days < 1 || days > domain.MaxQueryDays {
		return "", fmt.Errorf("%w, got %d", domain.ErrDaysOutOfRange, days)
	}

	if limit < 0 || limit > domain.MaxQueryLimit {
		return "", fmt.Errorf("%w, got %d", domain.ErrLimitOutOfRange, limit)
	}

	if platform == "" {
		return "", nil
	}

	return domain.ParsePlatform(platform)
}
