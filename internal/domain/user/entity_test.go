//go:build unit

package user_test

import (
	"testing"

	"tour-booking-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain address", input: "ivan@example.com", want: "ivan@example.com"},
		{name: "whitespace trimmed", input: "  ivan@example.com ", want: "ivan@example.com"},
		{name: "plus tag", input: "ivan+tours@example.com", want: "ivan+tours@example.com"},
		{name: "missing at", input: "ivan.example.com", wantErr: true},
		{name: "missing tld", input: "ivan@example", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := user.NewEmail(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long enough secret")
	require.NoError(t, err)
	assert.Equal(t, "long enough secret", p.Value())
}

func TestNewUser(t *testing.T) {
	name, err := user.NewName("Ivan Petrov")
	require.NoError(t, err)
	email, err := user.NewEmail("ivan@example.com")
	require.NoError(t, err)

	u := user.NewUser(name, email, nil, "hashed", user.RoleCustomer)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", u.ID().String())
	assert.Equal(t, "Ivan Petrov", u.Name().Value())
	assert.True(t, u.IsActive())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, user.StatusActive, u.Status())
}

func TestRoleAndStatus(t *testing.T) {
	for _, s := range []string{"customer", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.True(t, r.IsValid())
	}
	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	_, err = user.NewStatus("suspended")
	assert.ErrorIs(t, err, user.ErrInvalidStatus)
}
