package slip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

type memStocks struct {
	byName     map[string]*domain.MedicineStock
	decrements int
	lookupErr  error
	decErr     error
}

func (m *memStocks) LookupByName(_ context.Context, name string) (*domain.MedicineStock, bool, error) {
	if m.lookupErr != nil {
		return nil, false, m.lookupErr
	}
	s, ok := m.byName[name]
	return s, ok, nil
}

func (m *memStocks) DecrementQuantity(_ context.Context, id string, prevQuantity, newQuantity int) error {
	if m.decErr != nil {
		return m.decErr
	}
	for _, s := range m.byName {
		if s.ID == id && s.Quantity == prevQuantity {
			s.Quantity = newQuantity
			m.decrements++
			return nil
		}
	}
	return errors.New("conditional update matched no row")
}

type memSlips struct {
	inserted  []*domain.MedicalSlip
	insertErr error
}

func (m *memSlips) Insert(_ context.Context, s *domain.MedicalSlip) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, s)
	return nil
}

func newTestWorkflow(stocks *memStocks, slips *memSlips) *Workflow {
	w := NewWorkflow(stocks, slips)
	w.Now = func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC) }
	return w
}

func validDraft() Draft {
	return Draft{
		PatientID:   "S2023-001",
		PatientName: "John Doe",
		PatientType: domain.PatientTypeStudent,
		Doctor:      "Dr. Smith",
		Diagnosis:   "Seasonal flu",
		Date:        "2024-05-10",
	}
}

func TestIssueRequiresPatientIdentity(t *testing.T) {
	cases := map[string]Draft{
		"missing id":     {PatientName: "John Doe"},
		"missing name":   {PatientID: "S2023-001"},
		"blank id":       {PatientID: "   ", PatientName: "John Doe"},
		"blank name":     {PatientID: "S2023-001", PatientName: " "},
		"both missing":   {},
		"only diagnosis": {Diagnosis: "flu"},
	}
	for name, draft := range cases {
		t.Run(name, func(t *testing.T) {
			stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
			slips := &memSlips{}
			_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
			assert.Empty(t, slips.inserted)
			assert.Zero(t, stocks.decrements)
		})
	}
}

func TestIssueWithoutMedicineNeverTouchesStock(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{
		"Paracetamol": {ID: "m1", Name: "Paracetamol", Quantity: 10},
	}}
	slips := &memSlips{}

	id, err := newTestWorkflow(stocks, slips).Issue(context.Background(), validDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, slips.inserted, 1)
	assert.Zero(t, stocks.decrements)
	assert.Equal(t, 10, stocks.byName["Paracetamol"].Quantity)
}

func TestIssueDecrementsStockExactly(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{
		"Paracetamol": {ID: "m1", Name: "Paracetamol", Quantity: 10},
	}}
	slips := &memSlips{}

	draft := validDraft()
	draft.PrescribedMedicine = "Paracetamol"
	draft.PrescribedMedicineQuantity = 10

	id, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 0, stocks.byName["Paracetamol"].Quantity)

	require.Len(t, slips.inserted, 1)
	got := slips.inserted[0]
	assert.Equal(t, "m1", got.PrescribedMedicineID)
	assert.Equal(t, "Paracetamol", got.PrescribedMedicine)
	assert.Equal(t, 10, got.PrescribedMedicineQuantity)
}

func TestIssueInsufficientStock(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{
		"Paracetamol": {ID: "m1", Name: "Paracetamol", Quantity: 5},
	}}
	slips := &memSlips{}

	draft := validDraft()
	draft.PrescribedMedicine = "Paracetamol"
	draft.PrescribedMedicineQuantity = 6

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 5, stocks.byName["Paracetamol"].Quantity)
	assert.Zero(t, stocks.decrements)
	assert.Empty(t, slips.inserted)
}

func TestIssueRejectsNegativeQuantity(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{
		"Paracetamol": {ID: "m1", Name: "Paracetamol", Quantity: 5},
	}}
	slips := &memSlips{}

	draft := validDraft()
	draft.PrescribedMedicine = "Paracetamol"
	draft.PrescribedMedicineQuantity = -3

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 5, stocks.byName["Paracetamol"].Quantity)
	assert.Empty(t, slips.inserted)
}

func TestIssueUnknownMedicineSkipsAdjustment(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
	slips := &memSlips{}

	draft := validDraft()
	draft.PrescribedMedicine = "Ibuprofen"
	draft.PrescribedMedicineQuantity = 3

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	require.NoError(t, err)
	require.Len(t, slips.inserted, 1)
	assert.Empty(t, slips.inserted[0].PrescribedMedicineID)
	assert.Equal(t, "Ibuprofen", slips.inserted[0].PrescribedMedicine)
}

func TestIssueDefaultsDateToToday(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
	slips := &memSlips{}

	draft := validDraft()
	draft.Date = ""

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	require.NoError(t, err)
	require.Len(t, slips.inserted, 1)
	assert.Equal(t, "2024-05-10", slips.inserted[0].Date)
	assert.Equal(t, "2024-06-10", slips.inserted[0].ValidTill)
}

func TestIssueComputesValidTill(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
	slips := &memSlips{}

	draft := validDraft()
	draft.Date = "2024-01-15"

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	require.NoError(t, err)
	require.Len(t, slips.inserted, 1)
	assert.Equal(t, "2024-02-15", slips.inserted[0].ValidTill)
}

func TestIssueRejectsMalformedDate(t *testing.T) {
	stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
	slips := &memSlips{}

	draft := validDraft()
	draft.Date = "15/01/2024"

	_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
	assert.Error(t, err)
	assert.Empty(t, slips.inserted)
}

func TestIssuePropagatesStoreFailures(t *testing.T) {
	boom := errors.New("backend unavailable")

	t.Run("lookup", func(t *testing.T) {
		stocks := &memStocks{lookupErr: boom}
		slips := &memSlips{}
		draft := validDraft()
		draft.PrescribedMedicine = "Paracetamol"
		_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, slips.inserted)
	})

	t.Run("decrement", func(t *testing.T) {
		stocks := &memStocks{
			byName: map[string]*domain.MedicineStock{"Paracetamol": {ID: "m1", Name: "Paracetamol", Quantity: 5}},
			decErr: boom,
		}
		slips := &memSlips{}
		draft := validDraft()
		draft.PrescribedMedicine = "Paracetamol"
		draft.PrescribedMedicineQuantity = 2
		_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), draft)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, slips.inserted)
	})

	t.Run("insert", func(t *testing.T) {
		stocks := &memStocks{byName: map[string]*domain.MedicineStock{}}
		slips := &memSlips{insertErr: boom}
		_, err := newTestWorkflow(stocks, slips).Issue(context.Background(), validDraft())
		assert.ErrorIs(t, err, boom)
	})
}

func TestAddCalendarMonth(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2024-01-15", "2024-02-15"},
		{"2024-01-31", "2024-03-02"}, // AddDate normalization on overflow
		{"2023-01-31", "2023-03-03"},
		{"2024-12-05", "2025-01-05"},
		{"2024-02-29", "2024-03-29"},
	}
	for _, tc := range cases {
		got, err := AddCalendarMonth(tc.date)
		require.NoError(t, err, tc.date)
		assert.Equal(t, tc.want, got, tc.date)
	}

	_, err := AddCalendarMonth("not-a-date")
	assert.Error(t, err)
}
