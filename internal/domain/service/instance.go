package service

import (
	"github.com/sstlounge/contest-bot/internal/domain/contract"
)

var (
	_ contract.ContestService = (*contestService)(nil)
	_ contract.Refresher      = (*refresher)(nil)
)

type Instance struct {
	Contest   *contestService
	Refresher *refresher
	Announcer *announcer
}

func NewInstance(dm contract.DataManager, source contract.ContestSource, notifier contract.Notifier) *Instance {
	return &Instance{
		Contest:   newContest(dm),
		Refresher: newRefresher(dm, source),
		Announcer: newAnnouncer(dm, notifier),
	}
}
