package service

import (
	"testing"

	"github.com/sstlounge/contest-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockContestRepo *mocks.MockContestRepo
	mockGuildRepo   *mocks.MockGuildRepo
	mockSource      *mocks.MockContestSource
	mockNotifier    *mocks.MockNotifier
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	contestRepo := mocks.NewMockContestRepo(ctrl)
	dm.EXPECT().Contest().Return(contestRepo).AnyTimes()

	guildRepo := mocks.NewMockGuildRepo(ctrl)
	dm.EXPECT().Guild().Return(guildRepo).AnyTimes()

	m = allMocks{
		mockDataManager: dm,
		mockContestRepo: contestRepo,
		mockGuildRepo:   guildRepo,
		mockSource:      mocks.NewMockContestSource(ctrl),
		mockNotifier:    mocks.NewMockNotifier(ctrl),
	}

	return
}
