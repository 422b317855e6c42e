package users

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MGTheTrain/kudos/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Department a user belongs to
type Department string

// Departments
const (
	DepartmentMarketing   Department = "MARKETING"
	DepartmentSales       Department = "SALES"
	DepartmentEngineering Department = "ENGINEERING"
	DepartmentHR          Department = "HR"
)

// DefaultDepartment is assigned to newly registered users
const DefaultDepartment = DepartmentMarketing

// Departments lists all departments in display order
var Departments = []Department{
	DepartmentMarketing,
	DepartmentSales,
	DepartmentEngineering,
	DepartmentHR,
}

// Valid reports whether d is a known department
func (d Department) Valid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// Label returns the department in title case for rendering
func (d Department) Label() string {
	if d == DepartmentHR {
		return "HR"
	}
	s := strings.ToLower(string(d))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func departmentNames() []string {
	names := make([]string, len(Departments))
	for i, d := range Departments {
		names[i] = string(d)
	}
	return names
}

// Profile holds the public part of a user
type Profile struct {
	FirstName      string     `validate:"required,min=1,max=100"`
	LastName       string     `validate:"required,min=1,max=100"`
	Department     Department `validate:"required,department"`
	ProfilePicture string     `validate:"omitempty,url"`
}

// FullName joins first and last name
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Initials returns the uppercase initials used when no profile picture is set
func (p Profile) Initials() string {
	var b strings.Builder
	for _, part := range []string{p.FirstName, p.LastName} {
		if r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part)); r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// User entity
type User struct {
	ID        string `validate:"required,uuid4"`
	Email     string `validate:"required,email,max=255"`
	Password  string `validate:"required"`
	Profile   Profile
	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	return validators.ValidateStruct(u, customValidations())
}

// Validate for validating a Profile on its own, e.g. before an update
func (p *Profile) Validate() error {
	return validators.ValidateStruct(p, customValidations())
}

func customValidations() map[string]validator.Func {
	return map[string]validator.Func{
		"department": validators.OneOf(departmentNames()...),
	}
}

// ValidateEmail applies the rule User.Validate uses for the Email field
func ValidateEmail(email string) error {
	if err := validator.New().Var(email, "required,email,max=255"); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}
	return nil
}

// NormalizeEmail lower-cases and trims an email so lookups are case-insensitive
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
