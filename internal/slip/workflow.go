package slip

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

// DateLayout is the calendar-date form used on slips (date, validTill).
const DateLayout = "2006-01-02"

var (
	// ErrMissingRequiredField means the draft lacks a patient ID or name.
	ErrMissingRequiredField = errors.New("patient id and patient name are required")
	// ErrInsufficientStock means the prescribed quantity exceeds what the
	// named medicine has in inventory.
	ErrInsufficientStock = errors.New("insufficient stock for prescribed medicine")
	// ErrInvalidQuantity means the prescribed quantity is negative, which
	// would inflate stock through the decrement arithmetic.
	ErrInvalidQuantity = errors.New("prescribed medicine quantity must not be negative")
)

// Draft carries everything the staff member filled in. Only the patient ID
// and name are required; any other field may be blank and is rendered as
// "N/A" downstream. A blank Date means today.
type Draft struct {
	PatientID                  string `json:"patientId"`
	PatientName                string `json:"patientName"`
	PatientAge                 string `json:"patientAge"`
	PatientType                string `json:"patientType"`
	Doctor                     string `json:"doctor"`
	Diagnosis                  string `json:"diagnosis"`
	Medication                 string `json:"medication"`
	Treatment                  string `json:"treatment"`
	Test                       string `json:"test"`
	Date                       string `json:"date"`
	PrescribedMedicine         string `json:"prescribedMedicine"`
	PrescribedMedicineQuantity int    `json:"prescribedMedicineQuantity"`
}

// StockStore reads and adjusts medicine inventory.
type StockStore interface {
	// LookupByName resolves a medicine by exact name. ok is false when no
	// such medicine exists; that is not an error.
	LookupByName(ctx context.Context, name string) (stock *domain.MedicineStock, ok bool, err error)
	// DecrementQuantity sets the stock to newQuantity, conditional on the
	// quantity still being prevQuantity. A concurrent change must fail the
	// call rather than apply an unconditional write.
	DecrementQuantity(ctx context.Context, id string, prevQuantity, newQuantity int) error
}

// SlipStore persists issued slips.
type SlipStore interface {
	Insert(ctx context.Context, s *domain.MedicalSlip) error
}

// Workflow turns a draft into a persisted slip, decrementing inventory for
// the prescribed medicine on the way. Run Issue inside one store transaction
// so the decrement and the slip insert commit or roll back together.
type Workflow struct {
	stocks StockStore
	slips  SlipStore

	// Now supplies the issuance clock; tests override it.
	Now func() time.Time
}

func NewWorkflow(stocks StockStore, slips SlipStore) *Workflow {
	return &Workflow{stocks: stocks, slips: slips, Now: time.Now}
}

// Issue validates the draft, computes the validity window, adjusts stock if
// a medicine was prescribed and persists the slip. On any failure nothing is
// persisted: validation and the stock check both happen before the first
// write, and the conditional decrement precedes the insert.
func (w *Workflow) Issue(ctx context.Context, d Draft) (string, error) {
	if strings.TrimSpace(d.PatientID) == "" || strings.TrimSpace(d.PatientName) == "" {
		return "", ErrMissingRequiredField
	}
	if d.PrescribedMedicineQuantity < 0 {
		return "", ErrInvalidQuantity
	}

	date := strings.TrimSpace(d.Date)
	if date == "" {
		date = w.Now().Format(DateLayout)
	}
	validTill, err := AddCalendarMonth(date)
	if err != nil {
		return "", fmt.Errorf("invalid slip date %q: %w", date, err)
	}

	record := &domain.MedicalSlip{
		ID:                         uuid.NewString(),
		PatientID:                  d.PatientID,
		PatientName:                d.PatientName,
		PatientAge:                 d.PatientAge,
		PatientType:                d.PatientType,
		Doctor:                     d.Doctor,
		Diagnosis:                  d.Diagnosis,
		Medication:                 d.Medication,
		Treatment:                  d.Treatment,
		Test:                       d.Test,
		Date:                       date,
		ValidTill:                  validTill,
		PrescribedMedicine:         strings.TrimSpace(d.PrescribedMedicine),
		PrescribedMedicineQuantity: d.PrescribedMedicineQuantity,
	}

	if record.PrescribedMedicine != "" {
		stock, ok, err := w.stocks.LookupByName(ctx, record.PrescribedMedicine)
		if err != nil {
			return "", fmt.Errorf("look up stock for %q: %w", record.PrescribedMedicine, err)
		}
		// An unknown medicine name does not block issuance; the slip is
		// created and no stock is touched.
		if ok {
			newQuantity := stock.Quantity - record.PrescribedMedicineQuantity
			if newQuantity < 0 {
				return "", ErrInsufficientStock
			}
			if err := w.stocks.DecrementQuantity(ctx, stock.ID, stock.Quantity, newQuantity); err != nil {
				return "", fmt.Errorf("decrement stock for %q: %w", record.PrescribedMedicine, err)
			}
			record.PrescribedMedicineID = stock.ID
		}
	}

	if err := w.slips.Insert(ctx, record); err != nil {
		return "", fmt.Errorf("persist slip: %w", err)
	}
	return record.ID, nil
}

// AddCalendarMonth advances a YYYY-MM-DD date by one calendar month using
// Go's normalization: 2024-01-15 becomes 2024-02-15, 2024-01-31 overflows to
// 2024-03-02.
func AddCalendarMonth(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 1, 0).Format(DateLayout), nil
}
