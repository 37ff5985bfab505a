package database

import (
	"fmt"

	"github.com/diegoclair/slack-reservation-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reservation-bot/internal/domain/entity"
)

type typeRepo struct {
	db dbConn
}

func newTypeRepo(db dbConn) contract.TypeRepo {
	return &typeRepo{db: db}
}

func (r *typeRepo) AddKnown(name string) error {
	query := `INSERT OR IGNORE INTO known_types (name) VALUES (?)`

	if _, err := r.db.Exec(query, name); err != nil {
		return fmt.Errorf("failed to add known type: %w", err)
	}
	return nil
}

func (r *typeRepo) ListKnown() ([]string, error) {
	rows, err := r.db.Query(`SELECT name FROM known_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list known types: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan known type: %w", err)
		}
		names = append(names, name)
	}

	return names, nil
}

func (r *typeRepo) AddExpected(expected *entity.ExpectedType) error {
	query := `
		INSERT INTO expected_types (name, message_if_none)
		VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET message_if_none = excluded.message_if_none
	`

	if _, err := r.db.Exec(query, expected.Name, expected.MessageIfNone); err != nil {
		return fmt.Errorf("failed to add expected type: %w", err)
	}
	return nil
}

func (r *typeRepo) ListExpected() ([]*entity.ExpectedType, error) {
	rows, err := r.db.Query(`SELECT name, message_if_none FROM expected_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expected types: %w", err)
	}
	defer rows.Close()

	var types []*entity.ExpectedType
	for rows.Next() {
		expected := &entity.ExpectedType{}
		if err := rows.Scan(&expected.Name, &expected.MessageIfNone); err != nil {
			return nil, fmt.Errorf("failed to scan expected type: %w", err)
		}
		types = append(types, expected)
	}

	return types, nil
}
