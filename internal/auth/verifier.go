package auth

import (
	"fmt"
	"strings"

	app_errors "docurag/backend/internal/errors"
	"docurag/backend/internal/model"
)

// Verifier is the stub auth collaborator. There is no real credential
// store: a single configured admin pair yields the admin role, any other
// non-blank pair yields the user role.
type Verifier struct {
	adminEmail    string
	adminPassword string
}

func NewVerifier(adminEmail, adminPassword string) *Verifier {
	return &Verifier{adminEmail: adminEmail, adminPassword: adminPassword}
}

// SignIn maps credentials to a role. Blank email or password (after
// trimming) is a validation failure and leaves the caller's role untouched.
func (v *Verifier) SignIn(email, password string) (model.Role, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password must not be blank", app_errors.ErrValidation)
	}
	if strings.EqualFold(email, v.adminEmail) && password == v.adminPassword {
		return model.RoleAdmin, nil
	}
	return model.RoleUser, nil
}

// Skip is the anonymous path: the caller continues as a guest.
func (v *Verifier) Skip() model.Role {
	return model.RoleGuest
}
