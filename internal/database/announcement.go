package database

import (
	"fmt"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

type announcementRepo struct {
	db dbConn
}

func newAnnouncementRepo(db dbConn) contract.AnnouncementRepo {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (cron, text, include_schedule, request_volunteers)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		announcement.Cron,
		announcement.Text,
		announcement.IncludeSchedule,
		announcement.RequestVolunteers,
	)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	announcement.ID = id
	return nil
}

func (r *announcementRepo) Delete(id int64) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM announcements WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete announcement: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return deleted, nil
}

func (r *announcementRepo) List() ([]*entity.Announcement, error) {
	query := `
		SELECT id, cron, text, include_schedule, request_volunteers, created_at
		FROM announcements
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []*entity.Announcement
	for rows.Next() {
		announcement := &entity.Announcement{}
		err := rows.Scan(
			&announcement.ID,
			&announcement.Cron,
			&announcement.Text,
			&announcement.IncludeSchedule,
			&announcement.RequestVolunteers,
			&announcement.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, announcement)
	}

	return announcements, nil
}
