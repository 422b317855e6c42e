package web

import (
	"github.com/MGTheTrain/kudos/internal/pkg/validators"
)

// Login form modes
const (
	ActionLogin    = "login"
	ActionRegister = "register"
)

// Form errors shown above the login form
const (
	invalidFormData  = "Invalid Form Data"
	incorrectLogin   = "Incorrect login"
	emailTaken       = "User already exists with that email"
	registrationFail = "Something went wrong trying to create a new user."
	invalidEmail     = "Please enter a valid email address"
)

// LoginFields are the values echoed back into the login form
type LoginFields struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginFormState is everything the login page renders
type LoginFormState struct {
	Action    string
	Fields    LoginFields
	Errors    validators.FieldErrors
	FormError string
}

// NewLoginFormState returns an empty form in the given mode; anything but register means login
func NewLoginFormState(action string) LoginFormState {
	if action != ActionRegister {
		action = ActionLogin
	}
	return LoginFormState{
		Action: action,
		Errors: validators.FieldErrors{},
	}
}

// Merge overlays the non-empty values of partial onto s
func (s LoginFormState) Merge(partial LoginFormState) LoginFormState {
	if partial.Action != "" {
		s.Action = partial.Action
	}
	if partial.Fields.Email != "" {
		s.Fields.Email = partial.Fields.Email
	}
	if partial.Fields.Password != "" {
		s.Fields.Password = partial.Fields.Password
	}
	if partial.Fields.FirstName != "" {
		s.Fields.FirstName = partial.Fields.FirstName
	}
	if partial.Fields.LastName != "" {
		s.Fields.LastName = partial.Fields.LastName
	}
	if len(partial.Errors) > 0 {
		merged := validators.FieldErrors{}
		for field, msg := range s.Errors {
			merged[field] = msg
		}
		for field, msg := range partial.Errors {
			merged.Add(field, msg)
		}
		s.Errors = merged
	}
	if partial.FormError != "" {
		s.FormError = partial.FormError
	}
	return s
}

// Toggle switches between login and register, dropping errors but keeping the typed values
func (s LoginFormState) Toggle() LoginFormState {
	if s.Action == ActionRegister {
		s.Action = ActionLogin
	} else {
		s.Action = ActionRegister
	}
	s.Errors = validators.FieldErrors{}
	s.FormError = ""
	return s
}

// IsRegister reports whether the form is in register mode
func (s LoginFormState) IsRegister() bool {
	return s.Action == ActionRegister
}

// ToggleAction is the mode the toggle button switches to
func (s LoginFormState) ToggleAction() string {
	return s.Toggle().Action
}

// ProfileFields are the values echoed back into the profile form
type ProfileFields struct {
	FirstName  string
	LastName   string
	Department string
}
