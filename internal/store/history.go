// Package store keeps a SQLite history of scenario runs.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rallyforge/benefits-engine/internal/domain"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrRunNotFound is returned by GetRun for an unknown run id.
var ErrRunNotFound = errors.New("run not found")

// History is a SQLite-backed log of scenario comparisons.
type History struct {
	db  *sql.DB
	now func() time.Time
}

// ScenarioSummary is the stored headline of one scenario in a run.
type ScenarioSummary struct {
	ScenarioID      string               `json:"scenario_id"`
	Name            string               `json:"name"`
	CombinedRating  int                  `json:"combined_rating"`
	Elected         domain.OffsetProgram `json:"elected"`
	TotalMonthlyPay decimal.Decimal      `json:"total_monthly_pay"`
	FirstYearIncome decimal.Decimal      `json:"first_year_income"`
	FinalBalance    decimal.Decimal      `json:"final_balance"`
	Depleted        bool                 `json:"depleted"`
}

// RunSummary describes one saved run.
type RunSummary struct {
	RunID            string            `json:"run_id"`
	Label            string            `json:"label"`
	GeneratedAt      time.Time         `json:"generated_at"`
	SavedAt          time.Time         `json:"saved_at"`
	ScenarioCount    int               `json:"scenario_count"`
	BestForIncome    string            `json:"best_for_income"`
	BestForLongevity string            `json:"best_for_longevity"`
	Scenarios        []ScenarioSummary `json:"scenarios"`
}

// Open opens or creates the history database at the given path.
// The special path ":memory:" keeps everything in memory.
func Open(dbPath string) (*History, error) {
	dsn := ":memory:"
	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
		dsn = dbPath + "?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db, now: time.Now}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun stores a comparison under label and returns the new run id.
func (h *History) SaveRun(ctx context.Context, label string, cmp *domain.ScenarioComparison) (string, error) {
	if cmp == nil {
		return "", errors.New("nothing to save")
	}
	payload, err := json.Marshal(cmp)
	if err != nil {
		return "", fmt.Errorf("encoding run: %w", err)
	}

	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	runID := uuid.NewString()
	_, err = tx.ExecContext(ctx, `INSERT INTO runs
		(run_id, label, generated_at, saved_at, scenario_count, best_for_income, best_for_longevity, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, label,
		cmp.GeneratedAt.UTC().Format(time.RFC3339Nano),
		h.now().UTC().Format(time.RFC3339Nano),
		len(cmp.Results), cmp.Analysis.BestForIncome, cmp.Analysis.BestForLongevity, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for i := range cmp.Results {
		r := &cmp.Results[i]
		depleted := 0
		if r.Drawdown.Depleted {
			depleted = 1
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO run_scenarios
			(run_id, position, scenario_id, name, combined_rating, elected_program,
			 total_monthly_pay, first_year_income, final_balance, depleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, r.RunID, r.Name, r.Rating.Combined, string(r.Offset.Elected),
			r.Offset.TotalMonthlyPay.String(), r.FirstYearIncome().String(), r.FinalBalance().String(), depleted,
		)
		if err != nil {
			return "", fmt.Errorf("inserting scenario %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// ListRuns returns up to limit runs, newest first. A limit of zero or less
// returns every run.
func (h *History) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `SELECT run_id, label, generated_at, saved_at, scenario_count,
		COALESCE(best_for_income, ''), COALESCE(best_for_longevity, '')
		FROM runs ORDER BY saved_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var generated, saved string
		if err := rows.Scan(&r.RunID, &r.Label, &generated, &saved, &r.ScenarioCount, &r.BestForIncome, &r.BestForLongevity); err != nil {
			return nil, err
		}
		r.GeneratedAt, _ = time.Parse(time.RFC3339Nano, generated)
		r.SavedAt, _ = time.Parse(time.RFC3339Nano, saved)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		scenarios, err := h.scenarios(ctx, runs[i].RunID)
		if err != nil {
			return nil, err
		}
		runs[i].Scenarios = scenarios
	}
	return runs, nil
}

func (h *History) scenarios(ctx context.Context, runID string) ([]ScenarioSummary, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT scenario_id, name, combined_rating, elected_program,
		total_monthly_pay, first_year_income, final_balance, depleted
		FROM run_scenarios WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []ScenarioSummary
	for rows.Next() {
		var s ScenarioSummary
		var elected, monthly, income, balance string
		var depleted int
		if err := rows.Scan(&s.ScenarioID, &s.Name, &s.CombinedRating, &elected, &monthly, &income, &balance, &depleted); err != nil {
			return nil, err
		}
		s.Elected = domain.OffsetProgram(elected)
		s.Depleted = depleted != 0
		if s.TotalMonthlyPay, err = decimal.NewFromString(monthly); err != nil {
			return nil, fmt.Errorf("run %s: total_monthly_pay: %w", runID, err)
		}
		if s.FirstYearIncome, err = decimal.NewFromString(income); err != nil {
			return nil, fmt.Errorf("run %s: first_year_income: %w", runID, err)
		}
		if s.FinalBalance, err = decimal.NewFromString(balance); err != nil {
			return nil, fmt.Errorf("run %s: final_balance: %w", runID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetRun loads the full comparison saved under runID.
func (h *History) GetRun(ctx context.Context, runID string) (*domain.ScenarioComparison, error) {
	var payload string
	err := h.db.QueryRowContext(ctx, "SELECT payload FROM runs WHERE run_id = ?", runID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	if err != nil {
		return nil, err
	}

	var cmp domain.ScenarioComparison
	if err := json.Unmarshal([]byte(payload), &cmp); err != nil {
		return nil, fmt.Errorf("decoding run %s: %w", runID, err)
	}
	return &cmp, nil
}

// DeleteRun removes a run and its scenario rows.
func (h *History) DeleteRun(ctx context.Context, runID string) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM run_scenarios WHERE run_id = ?", runID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE run_id = ?", runID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return tx.Commit()
}
