package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/database"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Run(db))
	return New(db)
}

func TestUserRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	u := &domain.User{Name: "Staff", Email: "staff@uaar.edu.pk", Password: "hashed"}
	require.NoError(t, s.CreateUser(ctx, u))
	require.NotEmpty(t, u.ID)

	got, err := s.UserByEmail(ctx, "staff@uaar.edu.pk")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "Staff", got.Name)

	_, err = s.UserByEmail(ctx, "nobody@uaar.edu.pk")
	assert.ErrorIs(t, err, ErrNotFound)

	// Unique email
	dup := &domain.User{Name: "Other", Email: "staff@uaar.edu.pk", Password: "hashed"}
	assert.Error(t, s.CreateUser(ctx, dup))

	require.NoError(t, s.UpdateUserPassword(ctx, u.ID, "rehashed"))
	got, err = s.UserByEmail(ctx, "staff@uaar.edu.pk")
	require.NoError(t, err)
	assert.Equal(t, "rehashed", got.Password)
}

func TestStudentCRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	st := &domain.Student{Name: "John Doe", RegNumber: "S2023-001", Department: "CS", Year: "2nd Year"}
	require.NoError(t, s.CreateStudent(ctx, st))

	list, err := s.ListStudents(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "S2023-001", list[0].RegNumber)

	st.Department = "Mathematics"
	require.NoError(t, s.UpdateStudent(ctx, st))
	list, _ = s.ListStudents(ctx)
	assert.Equal(t, "Mathematics", list[0].Department)

	assert.ErrorIs(t, s.UpdateStudent(ctx, &domain.Student{ID: "missing", Name: "x"}), ErrNotFound)
	assert.ErrorIs(t, s.DeleteStudent(ctx, "missing"), ErrNotFound)

	require.NoError(t, s.DeleteStudent(ctx, st.ID))
	list, _ = s.ListStudents(ctx)
	assert.Empty(t, list)
}

func TestInventoryLookupAndConditionalDecrement(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	m := &domain.MedicineStock{Name: "Paracetamol", Quantity: 10}
	require.NoError(t, s.CreateMedicine(ctx, m))

	got, ok, err := s.LookupByName(ctx, "Paracetamol")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 10, got.Quantity)

	_, ok, err = s.LookupByName(ctx, "Ibuprofen")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DecrementQuantity(ctx, m.ID, 10, 4))

	// Stale previous quantity: the compare-and-swap must miss.
	err = s.DecrementQuantity(ctx, m.ID, 10, 2)
	assert.ErrorIs(t, err, ErrQuantityConflict)

	got, _, _ = s.LookupByName(ctx, "Paracetamol")
	assert.Equal(t, 4, got.Quantity)
}

func TestSlipInsertListDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := &domain.MedicalSlip{
		ID: "slip-1", PatientID: "S2023-001", PatientName: "John Doe",
		Date: "2024-05-10", ValidTill: "2024-06-10",
	}
	second := &domain.MedicalSlip{
		ID: "slip-2", PatientID: "E-014", PatientName: "Jane Smith",
		Date: "2024-05-11", ValidTill: "2024-06-11",
	}
	require.NoError(t, s.Insert(ctx, first))
	require.NoError(t, s.Insert(ctx, second))
	assert.NotEmpty(t, first.CreatedAt)

	list, err := s.ListSlips(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Insertion order preserved.
	assert.Equal(t, "slip-1", list[0].ID)
	assert.Equal(t, "slip-2", list[1].ID)

	got, err := s.GetSlip(ctx, "slip-2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.PatientName)

	_, err = s.GetSlip(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.DeleteSlip(ctx, "slip-1"))
	assert.ErrorIs(t, s.DeleteSlip(ctx, "slip-1"), ErrNotFound)
	list, _ = s.ListSlips(ctx)
	require.Len(t, list, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("abort")
	err := s.WithTx(ctx, func(tx *Store) error {
		if err := tx.CreateMedicine(ctx, &domain.MedicineStock{Name: "Aspirin", Quantity: 3}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, ok, lookupErr := s.LookupByName(ctx, "Aspirin")
	require.NoError(t, lookupErr)
	assert.False(t, ok, "insert inside a failed transaction must not persist")
}

func TestWithTxCommits(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.WithTx(ctx, func(tx *Store) error {
		return tx.CreateMedicine(ctx, &domain.MedicineStock{Name: "Aspirin", Quantity: 3})
	}))

	got, ok, err := s.LookupByName(ctx, "Aspirin")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, got.Quantity)
}
