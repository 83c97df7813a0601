package domain

// Patient types accepted on a medical slip.
const (
	PatientTypeStudent  = "student"
	PatientTypeEmployee = "employee"
	PatientTypeExternal = "external"
)

// MedicalSlip is an issued prescription record. Slips are created once by the
// issuance workflow and never edited afterwards; deletion is the only other
// write. Dates are calendar dates in YYYY-MM-DD form, matching what the
// print layout and the catalog's today-filter compare against.
//
// PrescribedMedicine is the display name the staff member picked;
// PrescribedMedicineID is the inventory record it resolved to at issuance
// time, so renaming a medicine later does not orphan the linkage. Both are
// empty when the slip dispensed nothing.
type MedicalSlip struct {
	ID                         string `db:"id" json:"id"`
	PatientID                  string `db:"patient_id" json:"patientId"`
	PatientName                string `db:"patient_name" json:"patientName"`
	PatientAge                 string `db:"patient_age" json:"patientAge"`
	PatientType                string `db:"patient_type" json:"patientType"`
	Doctor                     string `db:"doctor" json:"doctor"`
	Diagnosis                  string `db:"diagnosis" json:"diagnosis"`
	Medication                 string `db:"medication" json:"medication"`
	Treatment                  string `db:"treatment" json:"treatment"`
	Test                       string `db:"test" json:"test"`
	Date                       string `db:"date" json:"date"`
	ValidTill                  string `db:"valid_till" json:"validTill"`
	PrescribedMedicine         string `db:"prescribed_medicine" json:"prescribedMedicine"`
	PrescribedMedicineID       string `db:"prescribed_medicine_id" json:"prescribedMedicineId,omitempty"`
	PrescribedMedicineQuantity int    `db:"prescribed_medicine_quantity" json:"prescribedMedicineQuantity"`
	CreatedAt                  string `db:"created_at" json:"createdAt"`
}
