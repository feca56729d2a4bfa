package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/healthlogs"
)

// HealthLogsRepo guarda cada Kind en su propia tabla (weight_logs, body_condition_logs, vet_visit_logs).
type HealthLogsRepo struct {
	db *sql.DB
}

func NewHealthLogsRepo(db *sql.DB) *HealthLogsRepo {
	return &HealthLogsRepo{db: db}
}

type logTable struct {
	name  string
	value string // columna propia del Kind
}

var logTables = map[healthlogs.Kind]logTable{
	healthlogs.KindWeight:        {name: "weight_logs", value: "weight"},
	healthlogs.KindBodyCondition: {name: "body_condition_logs", value: "body_condition"},
	healthlogs.KindVetVisit:      {name: "vet_visit_logs", value: "notes"},
}

func tableFor(kind healthlogs.Kind) (logTable, error) {
	t, ok := logTables[kind]
	if !ok {
		return logTable{}, apperr.Validation("unknown log kind %q", kind)
	}
	return t, nil
}

func valueOf(e healthlogs.Entry) any {
	switch e.Kind {
	case healthlogs.KindWeight:
		return float64(e.Weight)
	case healthlogs.KindBodyCondition:
		return e.BodyCondition
	default:
		if e.Notes == nil {
			return sql.NullString{}
		}
		return sql.NullString{String: *e.Notes, Valid: true}
	}
}

func (r *HealthLogsRepo) Create(ctx context.Context, e healthlogs.Entry) error {
	t, err := tableFor(e.Kind)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, pet_id, %s, date, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, t.name, t.value),
		e.ID,
		e.PetID,
		valueOf(e),
		e.Date,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return mapErr(err, e.Kind.Label())
}

func (r *HealthLogsRepo) Update(ctx context.Context, e healthlogs.Entry) error {
	t, err := tableFor(e.Kind)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, date = $3, updated_at = $4
		WHERE id = $1
	`, t.name, t.value),
		e.ID,
		valueOf(e),
		e.Date,
		e.UpdatedAt,
	)
	if err != nil {
		return mapErr(err, e.Kind.Label())
	}
	return mustAffect(res, e.Kind.Label())
}

func (r *HealthLogsRepo) Delete(ctx context.Context, kind healthlogs.Kind, id string) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id)
	if err != nil {
		return mapErr(err, kind.Label())
	}
	return mustAffect(res, kind.Label())
}

// DeleteByPet borra los logs de las tres tablas en una transacción.
func (r *HealthLogsRepo) DeleteByPet(ctx context.Context, petID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, kind := range healthlogs.Kinds {
		t := logTables[kind]
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE pet_id = $1`, t.name), petID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *HealthLogsRepo) GetByID(ctx context.Context, kind healthlogs.Kind, id string) (healthlogs.Entry, error) {
	t, err := tableFor(kind)
	if err != nil {
		return healthlogs.Entry{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return healthlogs.Entry{}, apperr.NotFound(kind.Label())
	}

	row := r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, pet_id, %s, date, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, t.value, t.name), id)
	e, err := scanEntry(row, kind)
	if err != nil {
		return healthlogs.Entry{}, mapErr(err, kind.Label())
	}
	return e, nil
}

func (r *HealthLogsRepo) ListByPet(ctx context.Context, kind healthlogs.Kind, petID string) ([]healthlogs.Entry, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, pet_id, %s, date, created_at, updated_at
		FROM %s
		WHERE pet_id = $1
		ORDER BY date DESC, id ASC
	`, t.value, t.name), petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]healthlogs.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows, kind)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanEntry(s scanner, kind healthlogs.Kind) (healthlogs.Entry, error) {
	e := healthlogs.Entry{Kind: kind}
	var (
		weight float64
		notes  sql.NullString
		value  any
	)
	switch kind {
	case healthlogs.KindWeight:
		value = &weight
	case healthlogs.KindBodyCondition:
		value = &e.BodyCondition
	default:
		value = &notes
	}

	if err := s.Scan(&e.ID, &e.PetID, value, &e.Date, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return healthlogs.Entry{}, err
	}

	e.Weight = healthlogs.Weight(weight)
	if notes.Valid {
		n := notes.String
		e.Notes = &n
	}
	return e, nil
}
