package database

import (
	"fmt"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
)

type adminRepo struct {
	db dbConn
}

func newAdminRepo(db dbConn) contract.AdminRepo {
	return &adminRepo{db: db}
}

func (r *adminRepo) Add(slackName string) error {
	// INSERT OR IGNORE keeps re-granting an existing admin harmless.
	query := `INSERT OR IGNORE INTO admins (slack_name) VALUES (?)`

	if _, err := r.db.Exec(query, slackName); err != nil {
		return fmt.Errorf("failed to add admin: %w", err)
	}
	return nil
}

func (r *adminRepo) Remove(slackName string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM admins WHERE slack_name = ?`, slackName)
	if err != nil {
		return 0, fmt.Errorf("failed to remove admin: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return removed, nil
}

func (r *adminRepo) Exists(slackName string) (bool, error) {
	var count int64
	query := `SELECT COUNT(*) FROM admins WHERE slack_name = ?`

	if err := r.db.QueryRow(query, slackName).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check admin: %w", err)
	}
	return count > 0, nil
}

func (r *adminRepo) List() ([]string, error) {
	rows, err := r.db.Query(`SELECT slack_name FROM admins ORDER BY slack_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	var admins []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, name)
	}

	return admins, nil
}
