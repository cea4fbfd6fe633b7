package service

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
	"github.com/sstlounge/contest-bot/internal/domain/entity"
)

// announcerTickInterval is how often configured guilds are checked against
// their announcement time-of-day.
const announcerTickInterval = time.Minute

// announcer posts each guild's daily contest lineup once the guild's
// configured time-of-day has passed. The per-guild last_announced_date
// marker is the sole de-duplication mechanism; it is written only after a
// successful post, so a transient failure gets retried on the next tick.
type announcer struct {
	dm       contract.DataManager
	notifier contract.Notifier

	stopChan chan struct{}
	running  bool

	now func() time.Time
}

func newAnnouncer(dm contract.DataManager, notifier contract.Notifier) *announcer {
	return &announcer{
		dm:       dm,
		notifier: notifier,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
}

func (a *announcer) Start() {
	if a.running {
		return
	}
	a.running = true
	log.Println("Announcer starting...")
	go a.mainLoop()
}

func (a *announcer) Stop() {
	if !a.running {
		return
	}
	log.Println("Announcer stopping...")
	close(a.stopChan)
	a.running = false
}

func (a *announcer) mainLoop() {
	ticker := time.NewTicker(announcerTickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkGuilds()
		case <-a.stopChan:
			return
		}
	}
}

// checkGuilds isolates every guild's failure: one broken guild never stops
// the rest, and nothing here can crash the loop.
func (a *announcer) checkGuilds() {
	configs, err := a.dm.Guild().GetConfigured()
	if err != nil {
		log.Printf("Error getting configured guilds: %v", err)
		return
	}

	now := a.now()
	for _, config := range configs {
		if err := a.announceIfDue(config, now); err != nil {
			log.Printf("Announcement failed for guild %s: %v", config.GuildID, err)
		}
	}
}

func (a *announcer) announceIfDue(config *entity.GuildConfig, now time.Time) error {
	due, err := isDue(config, now)
	if err != nil {
		return err
	}
	if !due {
		return nil
	}

	today := domain.LocalDate(now)

	contests, err := a.todaysContests(now)
	if err != nil {
		return fmt.Errorf("failed to query today's contests: %w", err)
	}

	if err := a.notifier.PostDailyContests(config.AnnouncementChannelID, contests); err != nil {
		if errors.Is(err, contract.ErrChannelInaccessible) {
			// A dead channel won't heal by the next tick. Mark the
			// day so the loop stays quiet until an admin
			// reconfigures the channel.
			log.Printf("Channel %s for guild %s is inaccessible, skipping for today",
				config.AnnouncementChannelID, config.GuildID)
			return a.dm.Guild().MarkAnnounced(config.GuildID, today)
		}
		return fmt.Errorf("failed to post announcement: %w", err)
	}

	if err := a.dm.Guild().MarkAnnounced(config.GuildID, today); err != nil {
		return fmt.Errorf("failed to mark announcement sent: %w", err)
	}

	log.Printf("Posted daily announcement for guild %s (%d contests)", config.GuildID, len(contests))
	return nil
}

func (a *announcer) todaysContests(now time.Time) ([]*entity.ContestWithStatus, error) {
	start := domain.StartOfDay(now, 0)
	end := start.AddDate(0, 0, 1)

	contests, err := a.dm.Contest().QueryWindow(start, end, "", 0)
	if err != nil {
		return nil, err
	}

	return AnnotateStatus(contests, now), nil
}

// isDue reports whether the guild's announcement time has passed today and
// today's announcement has not been posted yet.
func isDue(config *entity.GuildConfig, now time.Time) (bool, error) {
	hour, minute, err := parseTimeOfDay(config.AnnouncementTime)
	if err != nil {
		return false, fmt.Errorf("invalid announcement time %q: %w", config.AnnouncementTime, err)
	}

	local := now.In(domain.ReferenceLocation())
	if local.Hour() < hour || (local.Hour() == hour && local.Minute() < minute) {
		return false, nil
	}

	return config.LastAnnouncedDate != domain.LocalDate(now), nil
}

func parseTimeOfDay(hhmm string) (hour, minute int, err error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", hhmm)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour %q", parts[0])
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute %q", parts[1])
	}

	return hour, minute, nil
}
