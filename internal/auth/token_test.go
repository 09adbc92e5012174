package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueParse(t *testing.T) {
	tok, err := Issue("user-1", "sess-1", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := Parse(tok, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "sess-1", claims.ID)
}

func TestParseRejects(t *testing.T) {
	tok, err := Issue("user-1", "sess-1", "secret", time.Hour)
	require.NoError(t, err)
	expired, err := Issue("user-1", "sess-1", "secret", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: tok, secret: "other"},
		{name: "expired", token: expired, secret: "secret"},
		{name: "garbage", token: "not.a.token", secret: "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.token, tt.secret)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
