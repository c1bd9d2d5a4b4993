package validate

import "regexp"

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// UserSignup covers the signup form.
var UserSignup = []Rule{
	{Field: "username", In: Body, Constraints: []Constraint{
		Required("Username is required"),
		Length(3, 50, "Username must be between 3 and 50 characters"),
		Pattern(usernameRe, "Username can only contain letters, numbers, and underscores"),
	}},
	{Field: "email", In: Body, Constraints: []Constraint{
		Required("Email is required"),
		Email("Please provide a valid email address"),
	}, Transform: NormalizeEmail},
	{Field: "password", In: Body, Constraints: []Constraint{
		Required("Password is required"),
		MinLength(8, "Password must be at least 8 characters long"),
		LetterAndDigit("Password must contain at least one letter and one number"),
	}},
}

// UserLogin covers the login form. Password only needs presence here; its
// shape was enforced at signup.
var UserLogin = []Rule{
	{Field: "email", In: Body, Constraints: []Constraint{
		Required("Email is required"),
		Email("Please provide a valid email address"),
	}, Transform: NormalizeEmail},
	{Field: "password", In: Body, Constraints: []Constraint{
		Required("Password is required"),
	}},
}

// EmployeeCreate covers the full employee record.
var EmployeeCreate = []Rule{
	{Field: "first_name", In: Body, Constraints: []Constraint{
		Required("First name is required"),
		Length(2, 50, "First name must be between 2 and 50 characters"),
		Pattern(nameRe, "First name can only contain letters and spaces"),
	}},
	{Field: "last_name", In: Body, Constraints: []Constraint{
		Required("Last name is required"),
		Length(2, 50, "Last name must be between 2 and 50 characters"),
		Pattern(nameRe, "Last name can only contain letters and spaces"),
	}},
	{Field: "email", In: Body, Constraints: []Constraint{
		Required("Email is required"),
		Email("Please provide a valid email address"),
	}, Transform: NormalizeEmail},
	{Field: "position", In: Body, Constraints: []Constraint{
		Required("Position is required"),
		Length(2, 100, "Position must be between 2 and 100 characters"),
	}},
	{Field: "salary", In: Body, Constraints: []Constraint{
		Required("Salary is required"),
		Numeric("Salary must be a number"),
		NonNegative("Salary must be a positive number"),
	}},
	{Field: "date_of_joining", In: Body, Constraints: []Constraint{
		Required("Date of joining is required"),
		ISODate("Date of joining must be a valid date (YYYY-MM-DD format)"),
	}},
	{Field: "department", In: Body, Constraints: []Constraint{
		Required("Department is required"),
		Length(2, 100, "Department must be between 2 and 100 characters"),
	}},
}

// EmployeeUpdate applies the same field constraints as EmployeeCreate, but
// every field may be omitted.
var EmployeeUpdate = optionalized(EmployeeCreate)

// EmployeeIDParam validates the eid path segment.
var EmployeeIDParam = []Rule{
	{Field: "eid", In: Param, Constraints: []Constraint{
		HexID("Invalid employee ID format"),
	}},
}

// EmployeeIDQuery validates the eid query parameter.
var EmployeeIDQuery = []Rule{
	{Field: "eid", In: Query, Constraints: []Constraint{
		Required("Employee ID is required"),
		HexID("Invalid employee ID format"),
	}},
}

// optionalized copies a rule table, marking every field optional and
// dropping presence constraints. Supplied fields still face the remaining
// constraints.
func optionalized(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		copied := rule
		copied.Optional = true
		copied.Constraints = nil
		for _, c := range rule.Constraints {
			if !c.required {
				copied.Constraints = append(copied.Constraints, c)
			}
		}
		out = append(out, copied)
	}
	return out
}
