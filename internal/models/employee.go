package models

import "time"

// Employee represents a single employee record.
type Employee struct {
	ID            string    `json:"employee_id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Position      string    `json:"position"`
	Salary        float64   `json:"salary"`
	DateOfJoining string    `json:"date_of_joining"` // ISO-8601 calendar date
	Department    string    `json:"department"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EmployeeUpdate carries a partial update: nil fields are left untouched.
type EmployeeUpdate struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Position      *string
	Salary        *float64
	DateOfJoining *string
	Department    *string
}
