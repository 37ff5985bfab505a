package service

import (
	"testing"

	"github.com/diegoclair/slack-reservation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockReservationRepo  *mocks.MockReservationRepo
	mockAdminRepo        *mocks.MockAdminRepo
	mockTypeRepo         *mocks.MockTypeRepo
	mockAnnouncementRepo *mocks.MockAnnouncementRepo
	mockSlackClient      *mocks.MockSlackClient
	mockScheduler        *mocks.MockAnnouncementScheduler
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	reservationRepo := mocks.NewMockReservationRepo(ctrl)
	dm.EXPECT().Reservation().Return(reservationRepo).AnyTimes()

	adminRepo := mocks.NewMockAdminRepo(ctrl)
	dm.EXPECT().Admin().Return(adminRepo).AnyTimes()

	typeRepo := mocks.NewMockTypeRepo(ctrl)
	dm.EXPECT().Type().Return(typeRepo).AnyTimes()

	announcementRepo := mocks.NewMockAnnouncementRepo(ctrl)
	dm.EXPECT().Announcement().Return(announcementRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	sched := mocks.NewMockAnnouncementScheduler(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockReservationRepo:  reservationRepo,
		mockAdminRepo:        adminRepo,
		mockTypeRepo:         typeRepo,
		mockAnnouncementRepo: announcementRepo,
		mockSlackClient:      slackClient,
		mockScheduler:        sched,
	}

	// validate service creation
	reservationService := newReservation(dm)
	require.NotNil(t, reservationService)

	return
}
