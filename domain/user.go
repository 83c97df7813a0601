package domain

// User is a staff account that can sign in to the dashboard.
type User struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Password  string `db:"password" json:"password,omitempty"`
	CreatedAt string `db:"created_at" json:"createdAt,omitempty"`
}
