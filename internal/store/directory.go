package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

// Directory collections: one table per list screen, full-fetch reads, no
// server-side filtering (the screens filter client-side).

func checkAffected(res sql.Result) error {
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Students

func (s *Store) ListStudents(ctx context.Context) ([]domain.Student, error) {
	records := []domain.Student{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, reg_number, department, year FROM students ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateStudent(ctx context.Context, r *domain.Student) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO students (id, name, reg_number, department, year) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.RegNumber, r.Department, r.Year)
	return err
}

func (s *Store) UpdateStudent(ctx context.Context, r *domain.Student) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE students SET name = ?, reg_number = ?, department = ?, year = ? WHERE id = ?`,
		r.Name, r.RegNumber, r.Department, r.Year, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteStudent(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Doctors

func (s *Store) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	records := []domain.Doctor{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, specialization, years_of_experience, status FROM doctors ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateDoctor(ctx context.Context, r *domain.Doctor) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO doctors (id, name, specialization, years_of_experience, status) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Specialization, r.YearsOfExperience, r.Status)
	return err
}

func (s *Store) UpdateDoctor(ctx context.Context, r *domain.Doctor) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE doctors SET name = ?, specialization = ?, years_of_experience = ?, status = ? WHERE id = ?`,
		r.Name, r.Specialization, r.YearsOfExperience, r.Status, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteDoctor(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM doctors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Employees

func (s *Store) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	records := []domain.Employee{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, position, department, joining_date FROM employees ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateEmployee(ctx context.Context, r *domain.Employee) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO employees (id, name, position, department, joining_date) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Position, r.Department, r.JoiningDate)
	return err
}

func (s *Store) UpdateEmployee(ctx context.Context, r *domain.Employee) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE employees SET name = ?, position = ?, department = ?, joining_date = ? WHERE id = ?`,
		r.Name, r.Position, r.Department, r.JoiningDate, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// External doctors

func (s *Store) ListExternalDoctors(ctx context.Context) ([]domain.ExternalDoctor, error) {
	records := []domain.ExternalDoctor{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, specialization, hospital, contact_number FROM externaldoctors ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateExternalDoctor(ctx context.Context, r *domain.ExternalDoctor) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO externaldoctors (id, name, specialization, hospital, contact_number) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.Name, r.Specialization, r.Hospital, r.ContactNumber)
	return err
}

func (s *Store) UpdateExternalDoctor(ctx context.Context, r *domain.ExternalDoctor) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE externaldoctors SET name = ?, specialization = ?, hospital = ?, contact_number = ? WHERE id = ?`,
		r.Name, r.Specialization, r.Hospital, r.ContactNumber, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteExternalDoctor(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM externaldoctors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Hospitals

func (s *Store) ListHospitals(ctx context.Context) ([]domain.Hospital, error) {
	records := []domain.Hospital{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, address, type FROM hospitals ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateHospital(ctx context.Context, r *domain.Hospital) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO hospitals (id, name, address, type) VALUES (?, ?, ?, ?)`,
		r.ID, r.Name, r.Address, r.Type)
	return err
}

func (s *Store) UpdateHospital(ctx context.Context, r *domain.Hospital) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE hospitals SET name = ?, address = ?, type = ? WHERE id = ?`,
		r.Name, r.Address, r.Type, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteHospital(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM hospitals WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// Labs

func (s *Store) ListLabs(ctx context.Context) ([]domain.Lab, error) {
	records := []domain.Lab{}
	err := sqlx.SelectContext(ctx, s.ext, &records,
		`SELECT id, name, address, phone FROM labs ORDER BY rowid`)
	return records, err
}

func (s *Store) CreateLab(ctx context.Context, r *domain.Lab) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.ext.ExecContext(ctx,
		`INSERT INTO labs (id, name, address, phone) VALUES (?, ?, ?, ?)`,
		r.ID, r.Name, r.Address, r.Phone)
	return err
}

func (s *Store) UpdateLab(ctx context.Context, r *domain.Lab) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE labs SET name = ?, address = ?, phone = ? WHERE id = ?`,
		r.Name, r.Address, r.Phone, r.ID)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *Store) DeleteLab(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx, `DELETE FROM labs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}
