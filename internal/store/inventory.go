package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

func (s *Store) ListMedicines(ctx context.Context) ([]domain.MedicineStock, error) {
	medicines := []domain.MedicineStock{}
	err := sqlx.SelectContext(ctx, s.ext, &medicines,
		`SELECT id, name, quantity FROM medicineinventory ORDER BY rowid`)
	return medicines, err
}

func (s *Store) CreateMedicine(ctx context.Context, m *domain.MedicineStock) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO medicineinventory (id, name, quantity) VALUES (?, ?, ?)`,
		m.ID, m.Name, m.Quantity)
	return err
}

func (s *Store) UpdateMedicine(ctx context.Context, m *domain.MedicineStock) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE medicineinventory SET name = ?, quantity = ? WHERE id = ?`,
		m.Name, m.Quantity, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMedicine(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM medicineinventory WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// LookupByName resolves a medicine by exact name; ok is false when the name
// is unknown. Satisfies the issuance workflow's stock lookup.
func (s *Store) LookupByName(ctx context.Context, name string) (*domain.MedicineStock, bool, error) {
	var m domain.MedicineStock
	err := sqlx.GetContext(ctx, s.ext, &m,
		`SELECT id, name, quantity FROM medicineinventory WHERE name = ? ORDER BY rowid LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &m, true, nil
}

// DecrementQuantity is a compare-and-swap on the previously read quantity:
// a concurrent issuance against the same medicine makes the condition miss
// and the call fail with ErrQuantityConflict instead of clobbering the row.
func (s *Store) DecrementQuantity(ctx context.Context, id string, prevQuantity, newQuantity int) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE medicineinventory SET quantity = ? WHERE id = ? AND quantity = ?`,
		newQuantity, id, prevQuantity)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrQuantityConflict
	}
	return nil
}
