package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS settings (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    currency        TEXT NOT NULL,
    income          REAL NOT NULL DEFAULT 0,
    expenses        REAL NOT NULL DEFAULT 0,
    tax_rate        REAL NOT NULL DEFAULT 0,
    hours_per_day   REAL NOT NULL DEFAULT 0,
    days_per_week   REAL NOT NULL DEFAULT 0,
    hourly_rate     REAL NOT NULL DEFAULT 0,
    updated_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projects (
    id              INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    hours           REAL NOT NULL,
    price           REAL NOT NULL,
    status          TEXT NOT NULL DEFAULT 'pending',
    position        INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_position ON projects(position);
`
