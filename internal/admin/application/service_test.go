package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	s := NewAdminApplicationService()
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "sa9r", "sa9r2024"))

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "sa9r", "wrong"},
		{"wrong username", "admin", "sa9r2024"},
		{"both wrong", "admin", "wrong"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, s.Login(ctx, tc.username, tc.password), ErrInvalidCredentials)
		})
	}
}

func TestVerifyAlwaysSucceeds(t *testing.T) {
	s := NewAdminApplicationService()
	require.NoError(t, s.Verify(context.Background()))
}
