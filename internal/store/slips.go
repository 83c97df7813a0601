package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

const slipColumns = `id, patient_id, patient_name, patient_age, patient_type, doctor,
	diagnosis, medication, treatment, test, date, valid_till,
	prescribed_medicine, prescribed_medicine_id, prescribed_medicine_quantity, created_at`

// ListSlips returns every slip in insertion order, which is the order the
// catalog projection paginates over.
func (s *Store) ListSlips(ctx context.Context) ([]domain.MedicalSlip, error) {
	slips := []domain.MedicalSlip{}
	err := sqlx.SelectContext(ctx, s.ext, &slips,
		`SELECT `+slipColumns+` FROM medicalslips ORDER BY rowid`)
	return slips, err
}

func (s *Store) GetSlip(ctx context.Context, id string) (*domain.MedicalSlip, error) {
	var slip domain.MedicalSlip
	err := sqlx.GetContext(ctx, s.ext, &slip,
		`SELECT `+slipColumns+` FROM medicalslips WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

// Insert persists a slip, stamping the server-side creation time. Satisfies
// the issuance workflow's slip store.
func (s *Store) Insert(ctx context.Context, slip *domain.MedicalSlip) error {
	if slip.CreatedAt == "" {
		slip.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO medicalslips (`+slipColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		slip.ID, slip.PatientID, slip.PatientName, slip.PatientAge, slip.PatientType, slip.Doctor,
		slip.Diagnosis, slip.Medication, slip.Treatment, slip.Test, slip.Date, slip.ValidTill,
		slip.PrescribedMedicine, slip.PrescribedMedicineID, slip.PrescribedMedicineQuantity, slip.CreatedAt)
	return err
}

func (s *Store) DeleteSlip(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM medicalslips WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
