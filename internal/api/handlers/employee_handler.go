package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/staffdesk-be/internal/models"
	"github.com/isdelr/staffdesk-be/internal/respond"
	"github.com/isdelr/staffdesk-be/internal/services"
	"github.com/isdelr/staffdesk-be/internal/validate"
	"github.com/rs/zerolog/log"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service services.EmployeeServiceProvider
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service services.EmployeeServiceProvider) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// GetAll returns every employee record.
func (h *EmployeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list employees")
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Employees fetched successfully",
		"count":   len(employees),
		"data":    employees,
	})
}

// Search finds employees by department and/or position, case-insensitively.
func (h *EmployeeHandler) Search(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	position := r.URL.Query().Get("position")

	if department == "" && position == "" {
		respond.Fail(w, http.StatusBadRequest, "Please provide at least one search parameter: department or position")
		return
	}

	employees, err := h.service.SearchEmployees(department, position)
	if err != nil {
		log.Error().Err(err).Msg("Employee search failed")
		respond.Fail(w, http.StatusInternalServerError, "Search failed")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Search completed successfully",
		"count":   len(employees),
		"data":    employees,
	})
}

// Create adds a new employee record from the validated payload.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	values := validate.ValuesFrom(r.Context())

	employee := models.Employee{
		FirstName:     values.String("first_name"),
		LastName:      values.String("last_name"),
		Email:         values.String("email"),
		Position:      values.String("position"),
		Salary:        values.Float("salary"),
		DateOfJoining: values.String("date_of_joining"),
		Department:    values.String("department"),
	}

	created, err := h.service.CreateEmployee(employee)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeEmailTaken) {
			respond.Fail(w, http.StatusBadRequest, "Employee with this email already exists")
			return
		}
		log.Error().Err(err).Str("email", employee.Email).Msg("Failed to create employee")
		respond.Fail(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"status":      true,
		"message":     "Employee created successfully.",
		"employee_id": created.ID,
	})
}

// Get returns a single employee record by its path ID.
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := validate.ValuesFrom(r.Context()).String("eid")

	employee, err := h.service.GetEmployeeByID(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respond.Fail(w, http.StatusNotFound, "Employee not found for id: "+id)
			return
		}
		log.Error().Err(err).Str("employee_id", id).Msg("Failed to get employee")
		respond.Fail(w, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"employee_id":     employee.ID,
		"first_name":      employee.FirstName,
		"last_name":       employee.LastName,
		"email":           employee.Email,
		"position":        employee.Position,
		"salary":          employee.Salary,
		"date_of_joining": employee.DateOfJoining,
		"department":      employee.Department,
	})
}

// Update applies a partial update to an employee record. Only fields present
// in the validated payload change.
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	values := validate.ValuesFrom(r.Context())
	id := values.String("eid")

	var upd models.EmployeeUpdate
	strField := func(field string) *string {
		if !values.Has(field) {
			return nil
		}
		s := values.String(field)
		return &s
	}
	upd.FirstName = strField("first_name")
	upd.LastName = strField("last_name")
	upd.Email = strField("email")
	upd.Position = strField("position")
	upd.DateOfJoining = strField("date_of_joining")
	upd.Department = strField("department")
	if values.Has("salary") {
		salary := values.Float("salary")
		upd.Salary = &salary
	}

	if err := h.service.UpdateEmployee(id, upd); err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			respond.Fail(w, http.StatusNotFound, "Employee not found for id: "+id)
		case errors.Is(err, services.ErrEmployeeEmailTaken):
			respond.Fail(w, http.StatusBadRequest, "Employee with this email already exists")
		default:
			log.Error().Err(err).Str("employee_id", id).Msg("Failed to update employee")
			respond.Fail(w, http.StatusInternalServerError, "Failed to update employee")
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Employee details updated successfully.",
	})
}

// Delete removes an employee record identified by the eid query parameter.
// Success returns 200 with a body; a bare 204 cannot carry the uniform
// status payload.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := validate.ValuesFrom(r.Context()).String("eid")

	if err := h.service.DeleteEmployee(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respond.Fail(w, http.StatusNotFound, "Employee not found for id: "+id)
			return
		}
		log.Error().Err(err).Str("employee_id", id).Msg("Failed to delete employee")
		respond.Fail(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"status":  true,
		"message": "Employee deleted successfully.",
	})
}
