package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/articard-dev/guard-journal/backend/internal/domain"
)

func (r *Repository) GetAllShiftTemplates() ([]*domain.ShiftTemplate, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, object_name, guard_name, start_time, end_time, created_at
		FROM shift_templates
		ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.ShiftTemplate, 0)

	for rows.Next() {
		template := &domain.ShiftTemplate{}

		dst := []any{
			&template.ID,
			&template.Name,
			&template.ObjectName,
			&template.GuardName,
			&template.StartTime,
			&template.EndTime,
			&template.CreatedAt,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) CreateShiftTemplate(template *domain.ShiftTemplate) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_templates (id, name, object_name, guard_name, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	params := []any{template.ID, template.Name, template.ObjectName, template.GuardName, template.StartTime, template.EndTime}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&template.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftTemplate(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shift_templates WHERE id = $1
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
