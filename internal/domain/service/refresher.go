package service

import (
	"context"
	"log"
	"time"

	"github.com/sstlounge/contest-bot/internal/domain"
	"github.com/sstlounge/contest-bot/internal/domain/contract"
)

const (
	// maxCacheAge is the staleness bound: when the newest cached record
	// is older than this at startup, the refresher catches up immediately
	// instead of waiting for the next midnight tick.
	maxCacheAge = 24 * time.Hour

	// platformFetchTimeout bounds a single platform's fetch so one slow
	// remote cannot stall the whole refresh.
	platformFetchTimeout = 30 * time.Second
)

// refresher keeps the contest cache warm: one full refetch of the rolling
// window at midnight in the reference timezone, plus on-demand refreshes via
// the admin command. A manual refresh never reschedules the timer.
type refresher struct {
	dm     contract.DataManager
	source contract.ContestSource

	stopChan   chan struct{}
	cancelLoop context.CancelFunc
	running    bool

	now func() time.Time
}

func newRefresher(dm contract.DataManager, source contract.ContestSource) *refresher {
	return &refresher{
		dm:       dm,
		source:   source,
		stopChan: make(chan struct{}),
		now:      time.Now,
	}
}

func (r *refresher) Start() {
	if r.running {
		return
	}
	r.running = true

	ctx, cancel := context.WithCancel(context.Background())
	r.cancelLoop = cancel

	log.Println("Refresher starting...")
	go r.mainLoop(ctx)
}

func (r *refresher) Stop() {
	if !r.running {
		return
	}
	log.Println("Refresher stopping...")
	close(r.stopChan)
	// Cancel any in-flight fetch; an interrupted platform batch rolls
	// back instead of half-committing.
	r.cancelLoop()
	r.running = false
}

func (r *refresher) mainLoop(ctx context.Context) {
	if r.needsCatchUp() {
		log.Println("Contest cache is stale or empty, running catch-up refresh...")
		if _, err := r.Refresh(ctx); err != nil {
			log.Printf("Catch-up refresh failed: %v", err)
		}
	}

	for {
		next := domain.StartOfDay(r.now(), 1)
		log.Printf("Next scheduled refresh at %s", next.Format("2006-01-02 15:04:05 MST"))

		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			if _, err := r.Refresh(ctx); err != nil {
				log.Printf("Scheduled refresh failed: %v", err)
			}

		case <-r.stopChan:
			timer.Stop()
			return
		}
	}
}

// needsCatchUp reports whether the last successful refresh is older than one
// day, which happens when the process was down across a scheduled window.
func (r *refresher) needsCatchUp() bool {
	latest, err := r.dm.Contest().LatestFetchTime()
	if err != nil {
		log.Printf("Error checking cache age: %v", err)
		return true
	}
	if latest.IsZero() {
		return true
	}
	return r.now().Sub(latest) > maxCacheAge
}

// Refresh refetches [start of today, +30 days) for every platform. A failing
// platform is logged and skipped; its previously cached contests stay
// untouched, which beats losing all platforms over one bad remote.
func (r *refresher) Refresh(ctx context.Context) (*contract.RefreshResult, error) {
	start := domain.StartOfDay(r.now(), 0)
	end := start.AddDate(0, 0, domain.CacheWindowDays)

	result := &contract.RefreshResult{}

	for _, platform := range domain.Platforms {
		fetched, err := r.refreshPlatform(ctx, start, end, platform)
		if err != nil {
			log.Printf("Refresh failed for %s: %v", platform.DisplayName(), err)
			result.Failed = append(result.Failed, platform)
			continue
		}
		result.Fetched += fetched
	}

	if ctx.Err() != nil {
		return result, ctx.Err()
	}

	pruned, err := r.dm.Contest().DeleteEndedBefore(start)
	if err != nil {
		log.Printf("Failed to prune ended contests: %v", err)
	} else {
		result.Pruned = pruned
	}

	log.Printf("Refresh complete: %d contests cached, %d pruned, %d platforms failed",
		result.Fetched, result.Pruned, len(result.Failed))

	return result, nil
}

// refreshPlatform fetches one platform and lands its whole batch in a single
// transaction, so readers never observe a partially applied refresh.
func (r *refresher) refreshPlatform(ctx context.Context, start, end time.Time, platform domain.Platform) (int, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, platformFetchTimeout)
	defer cancel()

	contests, err := r.source.Fetch(fetchCtx, start, end, platform)
	if err != nil {
		return 0, err
	}

	err = r.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		for _, contest := range contests {
			if err := dm.Contest().Upsert(contest); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return len(contests), nil
}

func (r *refresher) CacheAge() (time.Duration, bool, error) {
	latest, err := r.dm.Contest().LatestFetchTime()
	if err != nil {
		return 0, false, err
	}
	if latest.IsZero() {
		return 0, false, nil
	}
	return r.now().Sub(latest), true, nil
}
