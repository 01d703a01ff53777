package postgresql

import (
	"context"
	"fmt"

	"github.com/fc-hr/worklog-backend-go/internal/domain/worklog"
	"github.com/fc-hr/worklog-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// Partitions are regular tables named after the legacy convention
// (raw_log_DD_MM_YYYY / log_DD_MM_YYYY). The legacy display-style field names
// ("Employer ID", "Clock In") live on as snake_case columns; this file is the
// only place that mapping exists.
type worklogRepository struct {
	db *database.DB
}

func NewWorklogRepository(db *database.DB) worklog.WorklogRepository {
	return &worklogRepository{db: db}
}

// PartitionExists implements worklog.WorklogRepository.
func (r *worklogRepository) PartitionExists(ctx context.Context, partition string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM pg_tables
			WHERE schemaname = 'public' AND tablename = $1
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, partition).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check partition %s: %w", partition, err)
	}
	return exists, nil
}

// ListPartitions implements worklog.WorklogRepository.
func (r *worklogRepository) ListPartitions(ctx context.Context, prefix string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public' AND starts_with(tablename, $1)
	`

	rows, err := q.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list partitions with prefix %s: %w", prefix, err)
	}
	defer rows.Close()

	var partitions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan partition name: %w", err)
		}
		partitions = append(partitions, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read partition names: %w", err)
	}

	return partitions, nil
}

// GetRawPunches implements worklog.WorklogRepository.
func (r *worklogRepository) GetRawPunches(ctx context.Context, partition string) ([]worklog.RawPunch, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT employer_id, name, clock_in, clock_out, upload_date, source_file
		FROM %s
	`, pgx.Identifier{partition}.Sanitize())

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw partition %s: %w", partition, err)
	}
	defer rows.Close()

	var punches []worklog.RawPunch
	for rows.Next() {
		var p worklog.RawPunch
		if err := rows.Scan(&p.EmployeeID, &p.Name, &p.ClockIn, &p.ClockOut, &p.UploadDate, &p.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan raw punch from %s: %w", partition, err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read raw punches from %s: %w", partition, err)
	}

	return punches, nil
}

// GetDailySummaries implements worklog.WorklogRepository.
func (r *worklogRepository) GetDailySummaries(ctx context.Context, partition string) ([]worklog.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT employer_id, name, work_hours, completed, upload_date, source_file
		FROM %s
	`, pgx.Identifier{partition}.Sanitize())

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary partition %s: %w", partition, err)
	}
	defer rows.Close()

	var summaries []worklog.DailySummary
	for rows.Next() {
		var s worklog.DailySummary
		if err := rows.Scan(&s.EmployeeID, &s.Name, &s.WorkHours, &s.Completed, &s.UploadDate, &s.SourceFile); err != nil {
			return nil, fmt.Errorf("failed to scan summary from %s: %w", partition, err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summaries from %s: %w", partition, err)
	}

	return summaries, nil
}

// ReplaceDailySummaries implements worklog.WorklogRepository.
// Delete-all and bulk insert run in one transaction so a concurrent range
// query never observes a half-written partition.
func (r *worklogRepository) ReplaceDailySummaries(ctx context.Context, partition string, summaries []worklog.DailySummary) error {
	ident := pgx.Identifier{partition}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		createStmt := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				employer_id text NOT NULL,
				name        text NOT NULL DEFAULT '',
				work_hours  double precision NOT NULL,
				completed   boolean NOT NULL,
				upload_date timestamptz,
				source_file text NOT NULL DEFAULT ''
			)
		`, ident.Sanitize())

		if _, err := tx.Exec(ctx, createStmt); err != nil {
			return fmt.Errorf("failed to create summary partition %s: %w", partition, err)
		}

		if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", ident.Sanitize())); err != nil {
			return fmt.Errorf("failed to clear summary partition %s: %w", partition, err)
		}

		if len(summaries) == 0 {
			return nil
		}

		copyRows := make([][]interface{}, 0, len(summaries))
		for _, s := range summaries {
			copyRows = append(copyRows, []interface{}{
				s.EmployeeID, s.Name, s.WorkHours, s.Completed, s.UploadDate, s.SourceFile,
			})
		}

		_, err := tx.CopyFrom(
			ctx,
			ident,
			[]string{"employer_id", "name", "work_hours", "completed", "upload_date", "source_file"},
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return fmt.Errorf("failed to insert summaries into %s: %w", partition, err)
		}
		return nil
	})
}

// UpdateRawClock implements worklog.WorklogRepository.
func (r *worklogRepository) UpdateRawClock(ctx context.Context, partition, employeeID string, field worklog.ClockField, value string) (bool, error) {
	if field != worklog.ClockFieldIn && field != worklog.ClockFieldOut {
		return false, fmt.Errorf("unknown clock field %q", field)
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1 WHERE employer_id = $2
	`, pgx.Identifier{partition}.Sanitize(), pgx.Identifier{string(field)}.Sanitize())

	tag, err := q.Exec(ctx, query, value, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to update %s in %s: %w", field, partition, err)
	}
	return tag.RowsAffected() > 0, nil
}
