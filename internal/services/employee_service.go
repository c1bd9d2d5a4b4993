package services

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/isdelr/staffdesk-be/internal/models"
)

var (
	// ErrEmployeeNotFound reports a lookup, update, or delete against a
	// record that does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrEmployeeEmailTaken reports a create or update that would duplicate
	// another employee's email.
	ErrEmployeeEmailTaken = errors.New("employee with this email already exists")
)

// EmployeeServiceProvider defines the interface for employee record services.
type EmployeeServiceProvider interface {
	GetAllEmployees() ([]models.Employee, error)
	SearchEmployees(department, position string) ([]models.Employee, error)
	GetEmployeeByID(id string) (models.Employee, error)
	CreateEmployee(e models.Employee) (models.Employee, error)
	UpdateEmployee(id string, upd models.EmployeeUpdate) error
	DeleteEmployee(id string) error
}

// EmployeeService provides business logic for employee records.
type EmployeeService struct {
	db *sql.DB
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(db *sql.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

const employeeColumns = "id, first_name, last_name, email, position, salary, date_of_joining, department, created_at, updated_at"

// newEmployeeID returns a fresh 24-hex-character opaque identifier, the
// public ID format the API validates against.
func newEmployeeID() string {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return hex.EncodeToString(buf)
}

func scanEmployee(row interface{ Scan(...any) error }) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.Position,
		&e.Salary, &e.DateOfJoining, &e.Department, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// GetAllEmployees returns every employee record.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	rows, err := s.db.Query("SELECT " + employeeColumns + " FROM employees ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// SearchEmployees finds employees whose department and/or position contain
// the given terms, case-insensitively. Empty terms are ignored; at least one
// must be supplied by the caller.
func (s *EmployeeService) SearchEmployees(department, position string) ([]models.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees"
	var conds []string
	var args []any
	if department != "" {
		conds = append(conds, "LOWER(department) LIKE '%' || LOWER(?) || '%'")
		args = append(args, department)
	}
	if position != "" {
		conds = append(conds, "LOWER(position) LIKE '%' || LOWER(?) || '%'")
		args = append(args, position)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetEmployeeByID retrieves a single employee record.
func (s *EmployeeService) GetEmployeeByID(id string) (models.Employee, error) {
	row := s.db.QueryRow("SELECT "+employeeColumns+" FROM employees WHERE id = ?", id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, err
	}
	return e, nil
}

// CreateEmployee inserts a new record, assigning it a fresh ID.
func (s *EmployeeService) CreateEmployee(e models.Employee) (models.Employee, error) {
	var count int
	row := s.db.QueryRow("SELECT COUNT(*) FROM employees WHERE email = ?", e.Email)
	if err := row.Scan(&count); err != nil {
		return models.Employee{}, fmt.Errorf("check existing employee: %w", err)
	}
	if count > 0 {
		return models.Employee{}, ErrEmployeeEmailTaken
	}

	now := time.Now().UTC()
	e.ID = newEmployeeID()
	e.CreatedAt = now
	e.UpdatedAt = now

	stmt, err := s.db.Prepare("INSERT INTO employees(" + employeeColumns + ") VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Employee{}, err
	}
	defer stmt.Close()

	_, err = stmt.Exec(e.ID, e.FirstName, e.LastName, e.Email, e.Position,
		e.Salary, e.DateOfJoining, e.Department, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return models.Employee{}, err
	}
	return e, nil
}

// UpdateEmployee applies a partial update to an existing record. Only the
// supplied fields change; updated_at is always refreshed.
func (s *EmployeeService) UpdateEmployee(id string, upd models.EmployeeUpdate) error {
	if _, err := s.GetEmployeeByID(id); err != nil {
		return err
	}

	if upd.Email != nil {
		var count int
		row := s.db.QueryRow("SELECT COUNT(*) FROM employees WHERE email = ? AND id != ?", *upd.Email, id)
		if err := row.Scan(&count); err != nil {
			return fmt.Errorf("check existing employee: %w", err)
		}
		if count > 0 {
			return ErrEmployeeEmailTaken
		}
	}

	var sets []string
	var args []any
	set := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}
	if upd.FirstName != nil {
		set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		set("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		set("email", *upd.Email)
	}
	if upd.Position != nil {
		set("position", *upd.Position)
	}
	if upd.Salary != nil {
		set("salary", *upd.Salary)
	}
	if upd.DateOfJoining != nil {
		set("date_of_joining", *upd.DateOfJoining)
	}
	if upd.Department != nil {
		set("department", *upd.Department)
	}
	set("updated_at", time.Now().UTC())

	query := "UPDATE employees SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	_, err := s.db.Exec(query, args...)
	return err
}

// DeleteEmployee removes a record permanently.
func (s *EmployeeService) DeleteEmployee(id string) error {
	res, err := s.db.Exec("DELETE FROM employees WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
