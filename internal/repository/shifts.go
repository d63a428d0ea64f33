package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
)

const shiftWithIncidentsColumns = `
	s.id,
	s.date::text,
	s.object_name,
	s.guard_name,
	s.start_time,
	s.end_time,
	s.created_at,
	s.updated_at,
	s.version,
	i.id,
	i.type,
	i.description,
	i.incident_time,
	i.g4s_patrol_called,
	i.ambulance_called,
	i.gender,
	i.amount,
	i.special_tools_used,
	i.outcome,
	i.theft_prevented,
	i.created_at
`

type shiftIncidentRow struct {
	ID         string
	Date       string
	ObjectName string
	GuardName  string
	StartTime  string
	EndTime    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int32

	IncidentID        sql.NullString
	IncidentType      sql.NullString
	Description       sql.NullString
	IncidentTime      sql.NullString
	G4SPatrolCalled   sql.NullBool
	AmbulanceCalled   sql.NullBool
	Gender            sql.NullString
	Amount            sql.NullString
	SpecialToolsUsed  sql.NullBool
	Outcome           sql.NullString
	TheftPrevented    sql.NullBool
	IncidentCreatedAt sql.NullTime
}

func (row *shiftIncidentRow) scanDst() []any {
	return []any{
		&row.ID,
		&row.Date,
		&row.ObjectName,
		&row.GuardName,
		&row.StartTime,
		&row.EndTime,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.Version,
		&row.IncidentID,
		&row.IncidentType,
		&row.Description,
		&row.IncidentTime,
		&row.G4SPatrolCalled,
		&row.AmbulanceCalled,
		&row.Gender,
		&row.Amount,
		&row.SpecialToolsUsed,
		&row.Outcome,
		&row.TheftPrevented,
		&row.IncidentCreatedAt,
	}
}

func (row *shiftIncidentRow) shift() *domain.Shift {
	return &domain.Shift{
		ID:         row.ID,
		Date:       row.Date,
		ObjectName: row.ObjectName,
		GuardName:  row.GuardName,
		StartTime:  row.StartTime,
		EndTime:    row.EndTime,
		Incidents:  make([]domain.Incident, 0),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		Version:    row.Version,
	}
}

func (row *shiftIncidentRow) incident() domain.Incident {
	return domain.Incident{
		ID:               row.IncidentID.String,
		Type:             domain.IncidentType(row.IncidentType.String),
		Description:      row.Description.String,
		IncidentTime:     row.IncidentTime.String,
		G4SPatrolCalled:  row.G4SPatrolCalled.Bool,
		AmbulanceCalled:  row.AmbulanceCalled.Bool,
		Gender:           domain.Gender(row.Gender.String),
		Amount:           row.Amount.String,
		SpecialToolsUsed: row.SpecialToolsUsed.Bool,
		Outcome:          domain.TheftOutcome(row.Outcome.String),
		TheftPrevented:   row.TheftPrevented.Bool,
		CreatedAt:        row.IncidentCreatedAt.Time,
	}
}

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + shiftWithIncidentsColumns + `
		FROM shifts s
		LEFT JOIN incidents i ON s.id = i.shift_id
		ORDER BY s.date, s.created_at, i.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// rows come back grouped per shift, so an ordered slice plus an index
	// map is enough to reassemble shifts with their incidents in stored order
	shifts := make([]*domain.Shift, 0)
	shiftsByID := make(map[string]*domain.Shift)

	for rows.Next() {
		var row shiftIncidentRow
		if err := rows.Scan(row.scanDst()...); err != nil {
			return nil, err
		}

		shift, exists := shiftsByID[row.ID]
		if !exists {
			shift = row.shift()
			shiftsByID[row.ID] = shift
			shifts = append(shifts, shift)
		}

		// a NULL incident id means the shift has no incidents
		if !row.IncidentID.Valid {
			continue
		}

		shift.Incidents = append(shift.Incidents, row.incident())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id string) (*domain.Shift, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT ` + shiftWithIncidentsColumns + `
		FROM shifts s
		LEFT JOIN incidents i ON s.id = i.shift_id
		WHERE s.id = $1
		ORDER BY i.position
	`

	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shift *domain.Shift

	for rows.Next() {
		var row shiftIncidentRow
		if err := rows.Scan(row.scanDst()...); err != nil {
			return nil, err
		}

		if shift == nil {
			shift = row.shift()
		}

		if !row.IncidentID.Valid {
			continue
		}

		shift.Incidents = append(shift.Incidents, row.incident())
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if shift == nil {
		return nil, sql.ErrNoRows
	}

	return shift, nil
}

func (r *Repository) CreateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (id, date, object_name, guard_name, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at, version
	`

	params := []any{shift.ID, shift.Date, shift.ObjectName, shift.GuardName, shift.StartTime, shift.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&shift.CreatedAt, &shift.UpdatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShift(shift *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE shifts
		SET
			object_name = $1,
			guard_name = $2,
			start_time = $3,
			end_time = $4,
			updated_at = now(),
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING updated_at, version
	`

	params := []any{shift.ObjectName, shift.GuardName, shift.StartTime, shift.EndTime, shift.ID, shift.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&shift.UpdatedAt, &shift.Version); err != nil {
		return err
	}

	return nil
}

// DeleteShift removes a shift; its incidents go with it through the
// ON DELETE CASCADE on incidents.shift_id.
func (r *Repository) DeleteShift(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shifts WHERE id = $1
	`

	result, err := r.dbpool.ExecContext(ctx, query, id)
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

	return nil
}
