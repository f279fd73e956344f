package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id               TEXT PRIMARY KEY,
    label                TEXT NOT NULL,
    generated_at         TEXT NOT NULL,
    saved_at             TEXT NOT NULL,
    scenario_count       INTEGER NOT NULL,
    best_for_income      TEXT,
    best_for_longevity   TEXT,
    payload              TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_scenarios (
    run_id               TEXT NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    position             INTEGER NOT NULL,
    scenario_id          TEXT NOT NULL,
    name                 TEXT NOT NULL,
    combined_rating      INTEGER NOT NULL,
    elected_program      TEXT NOT NULL,
    total_monthly_pay    TEXT NOT NULL,
    first_year_income    TEXT NOT NULL,
    final_balance        TEXT NOT NULL,
    depleted             INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_runs_saved ON runs(saved_at);
`
