package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// No migration mechanism: the schema is created on first run if absent.
// Double-booking the same doctor/date is intentionally not constrained.
const schema = `
CREATE TABLE IF NOT EXISTS patients (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	age             INTEGER NOT NULL,
	gender          TEXT NOT NULL,
	mobile          TEXT NOT NULL,
	address         TEXT,
	problem_details TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS patients_name_mobile_idx ON patients (name, mobile);

CREATE TABLE IF NOT EXISTS doctors (
	id              BIGSERIAL PRIMARY KEY,
	name            TEXT NOT NULL,
	qualification   TEXT NOT NULL,
	registration_no TEXT,
	timing          TEXT NOT NULL,
	mobile          TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS appointments (
	id               BIGSERIAL PRIMARY KEY,
	patient_id       BIGINT NOT NULL REFERENCES patients (id),
	doctor_id        BIGINT NOT NULL REFERENCES doctors (id),
	appointment_date TEXT NOT NULL,
	appointment_time TEXT NOT NULL,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS medicines (
	id           BIGSERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	manufacturer TEXT,
	stock        INTEGER NOT NULL CHECK (stock >= 0),
	price        NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS admins (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema bootstraps the database schema. Safe to run on every startup.
func EnsureSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
