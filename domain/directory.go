package domain

// Directory records managed through the generic list screens. Each maps to
// one collection and carries exactly the fields the dashboard shows.

type Student struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	RegNumber  string `db:"reg_number" json:"regNumber"`
	Department string `db:"department" json:"department"`
	Year       string `db:"year" json:"year"`
}

type Doctor struct {
	ID                string `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	Specialization    string `db:"specialization" json:"specialization"`
	YearsOfExperience int    `db:"years_of_experience" json:"yearsOfExperience"`
	Status            string `db:"status" json:"status"`
}

type Employee struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Position    string `db:"position" json:"position"`
	Department  string `db:"department" json:"department"`
	JoiningDate string `db:"joining_date" json:"joiningDate"`
}

type ExternalDoctor struct {
	ID             string `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Specialization string `db:"specialization" json:"specialization"`
	Hospital       string `db:"hospital" json:"hospital"`
	ContactNumber  string `db:"contact_number" json:"contactNumber"`
}

type Hospital struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
	Type    string `db:"type" json:"type"`
}

type Lab struct {
	ID      string `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Address string `db:"address" json:"address"`
	Phone   string `db:"phone" json:"phone"`
}
