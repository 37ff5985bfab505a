package service

import (
	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
)

type Instance struct {
	Reservation  *reservationService
	Announcement *announcementService
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, sched contract.AnnouncementScheduler, postChannelID string) *Instance {
	return &Instance{
		Reservation:  newReservation(dm),
		Announcement: newAnnouncement(dm, slackClient, sched, postChannelID),
	}
}
