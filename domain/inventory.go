package domain

// MedicineStock is one inventory line. Quantity never goes below zero; the
// only writers are the inventory screen and the slip issuance workflow.
type MedicineStock struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Quantity int    `db:"quantity" json:"quantity"`
}
