package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the dashboard schema. Statements are idempotent so Run is safe
// on every start.
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL UNIQUE,
            password TEXT NOT NULL,
            created_at DATETIME DEFAULT CURRENT_TIMESTAMP
        );`,
		`CREATE TABLE IF NOT EXISTS students (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            reg_number TEXT NOT NULL,
            department TEXT,
            year TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS doctors (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            specialization TEXT,
            years_of_experience INTEGER DEFAULT 0,
            status TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS employees (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            position TEXT,
            department TEXT,
            joining_date TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS externaldoctors (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            specialization TEXT,
            hospital TEXT,
            contact_number TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS hospitals (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            address TEXT,
            type TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS labs (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            address TEXT,
            phone TEXT
        );`,
		`CREATE TABLE IF NOT EXISTS medicineinventory (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            quantity INTEGER NOT NULL CHECK (quantity >= 0)
        );`,
		`CREATE TABLE IF NOT EXISTS medicalslips (
            id TEXT PRIMARY KEY,
            patient_id TEXT NOT NULL,
            patient_name TEXT NOT NULL,
            patient_age TEXT,
            patient_type TEXT,
            doctor TEXT,
            diagnosis TEXT,
            medication TEXT,
            treatment TEXT,
            test TEXT,
            date TEXT NOT NULL,
            valid_till TEXT NOT NULL,
            prescribed_medicine TEXT,
            prescribed_medicine_id TEXT,
            prescribed_medicine_quantity INTEGER DEFAULT 0,
            created_at TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_medicalslips_date ON medicalslips(date);`,
		`CREATE INDEX IF NOT EXISTS idx_medicineinventory_name ON medicineinventory(name);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
