package auth_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docurag/backend/internal/auth"
	app_errors "docurag/backend/internal/errors"
	"docurag/backend/internal/model"
)

func TestQuotaFor(t *testing.T) {
	assert.Equal(t, 1, auth.QuotaFor(model.RoleGuest))
	assert.Equal(t, 5, auth.QuotaFor(model.RoleUser))
	assert.Greater(t, auth.QuotaFor(model.RoleAdmin), 1000)

	// An unknown role falls back to the most restrictive quota.
	assert.Equal(t, 1, auth.QuotaFor(model.Role("intruder")))
}

// TestAdmit verifies the admission boundary exactly: for every role the
// gate admits quotaFor(role) files and rejects the one after, never fewer,
// never more.
func TestAdmit(t *testing.T) {
	for _, role := range []model.Role{model.RoleGuest, model.RoleUser} {
		t.Run(string(role), func(t *testing.T) {
			quota := auth.QuotaFor(role)
			for pending := 0; pending < quota; pending++ {
				assert.NoError(t, auth.Admit(pending, role), "file %d should be admitted", pending+1)
			}
			err := auth.Admit(quota, role)
			require.Error(t, err)
			assert.ErrorIs(t, err, app_errors.ErrQuotaExceeded)
		})
	}

	t.Run("admin is effectively unbounded", func(t *testing.T) {
		assert.NoError(t, auth.Admit(500, model.RoleAdmin))
	})
}

// A guest's second file is rejected even while the first is still pending,
// and the rejection message carries the role and the numeric limit.
func TestAdmit_GuestSecondFile(t *testing.T) {
	require.NoError(t, auth.Admit(0, model.RoleGuest))

	err := auth.Admit(1, model.RoleGuest)
	require.Error(t, err)
	assert.ErrorIs(t, err, app_errors.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "GUEST")
	assert.Contains(t, err.Error(), "1 file")
}

func TestVerifier_SignIn(t *testing.T) {
	v := auth.NewVerifier("admin@example.com", "adminpass")

	tests := []struct {
		name     string
		email    string
		password string
		want     model.Role
		wantErr  error
	}{
		{"admin pair", "admin@example.com", "adminpass", model.RoleAdmin, nil},
		{"admin email is case insensitive", "Admin@Example.com", "adminpass", model.RoleAdmin, nil},
		{"admin email with wrong password is a plain user", "admin@example.com", "nope", model.RoleUser, nil},
		{"any other non-blank pair", "someone@example.com", "hunter2", model.RoleUser, nil},
		{"blank email", "   ", "hunter2", "", app_errors.ErrValidation},
		{"blank password", "someone@example.com", "", "", app_errors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := v.SignIn(tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), fmt.Sprintf("expected %v, got %v", tt.wantErr, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestVerifier_Skip(t *testing.T) {
	v := auth.NewVerifier("admin@example.com", "adminpass")
	assert.Equal(t, model.RoleGuest, v.Skip())
}
