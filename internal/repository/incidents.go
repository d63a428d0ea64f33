package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
)

// AddIncident appends an incident to the end of the shift's incident
// sequence and bumps the shift's updated_at.
func (r *Repository) AddIncident(shiftID string, incident *domain.Incident) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO incidents (
			id, shift_id, position, type, description, incident_time,
			g4s_patrol_called, ambulance_called, gender, amount,
			special_tools_used, outcome, theft_prevented
		)
		VALUES (
			$1, $2,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM incidents WHERE shift_id = $2),
			$3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at
	`

	params := []any{
		incident.ID,
		shiftID,
		incident.Type,
		incident.Description,
		nullString(incident.IncidentTime),
		incident.G4SPatrolCalled,
		incident.AmbulanceCalled,
		nullString(string(incident.Gender)),
		nullString(incident.Amount),
		incident.SpecialToolsUsed,
		nullString(string(incident.Outcome)),
		incident.TheftPrevented,
	}
	if err := tx.QueryRowContext(ctx, query, params...).Scan(&incident.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE shifts SET updated_at = now() WHERE id = $1`, shiftID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) UpdateIncident(shiftID string, incident *domain.Incident) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE incidents
		SET
			description = $1,
			incident_time = $2,
			g4s_patrol_called = $3,
			ambulance_called = $4,
			gender = $5,
			amount = $6,
			special_tools_used = $7,
			outcome = $8,
			theft_prevented = $9
		WHERE id = $10 AND shift_id = $11
	`

	params := []any{
		incident.Description,
		nullString(incident.IncidentTime),
		incident.G4SPatrolCalled,
		incident.AmbulanceCalled,
		nullString(string(incident.Gender)),
		nullString(incident.Amount),
		incident.SpecialToolsUsed,
		nullString(string(incident.Outcome)),
		incident.TheftPrevented,
		incident.ID,
		shiftID,
	}
	result, err := tx.ExecContext(ctx, query, params...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.ExecContext(ctx, `UPDATE shifts SET updated_at = now() WHERE id = $1`, shiftID); err != nil {
		return err
	}

	return tx.Commit()
}

// RemoveIncident deletes an incident and closes the gap in the position
// sequence so stored order stays dense.
func (r *Repository) RemoveIncident(shiftID string, incidentID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var position int32
	query := `
		DELETE FROM incidents
		WHERE id = $1 AND shift_id = $2
		RETURNING position
	`
	if err := tx.QueryRowContext(ctx, query, incidentID, shiftID).Scan(&position); err != nil {
		return err
	}

	query = `
		UPDATE incidents
		SET position = position - 1
		WHERE shift_id = $1 AND position > $2
	`
	if _, err := tx.ExecContext(ctx, query, shiftID, position); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE shifts SET updated_at = now() WHERE id = $1`, shiftID); err != nil {
		return err
	}

	return tx.Commit()
}
