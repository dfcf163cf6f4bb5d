package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
)

// createdAtLayout is fixed width so that text order in created_at is time order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Save stores a run and its outcomes in one transaction.
// An empty ID is filled with a new UUID.
func (s *runStore) Save(ctx context.Context, run *domain.AlignmentRun) error {
	if run == nil {
		return domain.ErrInvalidInput
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, alias_version)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			alias_version = excluded.alias_version
	`, run.ID, run.CreatedAt.UTC().Format(createdAtLayout), run.AliasVersion)
	if err != nil {
		return fmt.Errorf("saving run: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM outcomes WHERE run_id = ?", run.ID); err != nil {
		return fmt.Errorf("clearing outcomes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO outcomes (run_id, position, name, volume_raw, volume_value, resolved_id, status, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing outcome insert: %w", err)
	}
	defer stmt.Close()

	for i := range run.Outcomes {
		o := run.Outcomes[i]
		var value sql.NullFloat64
		if o.Volume.Numeric {
			value = sql.NullFloat64{Float64: o.Volume.Value, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, run.ID, i, o.Name, o.Volume.Raw, value,
			o.ResolvedID, o.Status.String(), o.Detail); err != nil {
			return fmt.Errorf("saving outcome %s: %w", o.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing run: %w", err)
	}
	return nil
}

// Get retrieves a run with its outcomes.
func (s *runStore) Get(ctx context.Context, id string) (*domain.AlignmentRun, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, created_at, alias_version FROM runs WHERE id = ?
	`, id)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	outcomes, err := s.outcomes(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Outcomes = outcomes

	return run, nil
}

// List returns runs newest first, each with its outcomes.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.AlignmentRun, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, created_at, alias_version
		FROM runs
		ORDER BY created_at DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}

	var runs []domain.AlignmentRun //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	rows.Close()

	// Outcomes are loaded after the cursor is closed; the store holds one connection.
	for i := range runs {
		outcomes, err := s.outcomes(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Outcomes = outcomes
	}

	return runs, nil
}

// Delete removes a run; outcomes go with it via ON DELETE CASCADE.
func (s *runStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *runStore) outcomes(ctx context.Context, runID string) ([]domain.OutcomeRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, volume_raw, volume_value, resolved_id, status, detail
		FROM outcomes
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []domain.OutcomeRecord{}
	for rows.Next() {
		var o domain.OutcomeRecord
		var value sql.NullFloat64
		var status string
		if err := rows.Scan(&o.Name, &o.Volume.Raw, &value, &o.ResolvedID, &status, &o.Detail); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}
		if value.Valid {
			o.Volume.Value = value.Float64
			o.Volume.Numeric = true
		}
		o.Status, err = domain.ParseStatusKind(status)
		if err != nil {
			return nil, fmt.Errorf("outcome %s: %w", o.Name, err)
		}
		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}
	return outcomes, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.AlignmentRun, error) {
	var run domain.AlignmentRun
	var createdAt string

	if err := row.Scan(&run.ID, &createdAt, &run.AliasVersion); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing run time %q: %w", createdAt, err)
	}
	run.CreatedAt = t

	return &run, nil
}
