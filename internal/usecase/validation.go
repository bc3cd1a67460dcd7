package usecase

import (
	"strings"

	domainErrors "github.com/polkiloo/usersapi/internal/domain/errors"
	"github.com/polkiloo/usersapi/internal/domain/model"
)

const (
	defaultFirstName = "John"
	defaultLastName  = "Doe"
)

// Validator checks creation input and applies whitelisted patch operations.
type Validator struct {
	rules Rules
}

// NewValidator constructs Validator using rules.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// ValidLogin reports whether login is non-blank and matches the login pattern.
func (v *Validator) ValidLogin(login string) bool {
	if strings.TrimSpace(login) == "" {
		return false
	}
	return v.rules.LoginPattern.MatchString(login)
}

// Creation turns client input into a user ready for insertion.
// Blank names fall back to defaults instead of failing.
func (v *Validator) Creation(input model.NewUser) (model.User, error) {
	login := deref(input.Login)
	if !v.ValidLogin(login) {
		return model.User{}, domainErrors.NewValidationError("login", "Login is required")
	}

	firstName := deref(input.FirstName)
	if isBlank(firstName) {
		firstName = defaultFirstName
	}
	lastName := deref(input.LastName)
	if isBlank(lastName) {
		lastName = defaultLastName
	}

	return model.User{
		Login:     login,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// ApplyPatch applies ops in order to a copy of user. The first invalid field aborts
// the whole batch and user is returned untouched alongside the error.
func (v *Validator) ApplyPatch(user model.User, ops []model.PatchOperation) (model.User, error) {
	if len(ops) == 0 {
		return user, domainErrors.ErrMalformedRequest
	}

	patched := user.Clone()
	for _, op := range ops {
		if op.Op != model.PatchOpReplace {
			continue
		}
		value := deref(op.Value)
		switch op.Path {
		case model.PatchPathLogin:
			if !v.ValidLogin(value) {
				return user, domainErrors.NewValidationError("login", "Invalid login")
			}
			patched.Login = value
		case model.PatchPathFirstName:
			if isBlank(value) {
				return user, domainErrors.NewValidationError("firstName", "First name is required")
			}
			patched.FirstName = value
		case model.PatchPathLastName:
			if isBlank(value) {
				return user, domainErrors.NewValidationError("lastName", "Last name is required")
			}
			patched.LastName = value
		}
	}
	return patched, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
