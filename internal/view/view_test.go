package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	require.Equal(t, Auth, NewController(false).State())
	require.Equal(t, Dashboard, NewController(true).State())
}

func TestLoginLogout(t *testing.T) {
	c := NewController(false)
	c.Login()
	require.Equal(t, Dashboard, c.State())

	require.NoError(t, c.Navigate(History))
	c.Login()
	require.Equal(t, History, c.State())

	c.Logout()
	require.Equal(t, Auth, c.State())
}

func TestNavigate(t *testing.T) {
	c := NewController(true)
	for _, to := range []State{Withdraw, History, Dashboard, History, Withdraw, Withdraw} {
		require.NoError(t, c.Navigate(to))
		require.Equal(t, to, c.State())
	}

	require.ErrorIs(t, c.Navigate(Auth), ErrUnknownScreen)
	require.ErrorIs(t, c.Navigate("settings"), ErrUnknownScreen)
	require.Equal(t, Withdraw, c.State())
}

func TestNavigateRequiresLogin(t *testing.T) {
	c := NewController(false)
	require.ErrorIs(t, c.Navigate(Dashboard), ErrNotAuthenticated)
	require.Equal(t, Auth, c.State())
}

func TestParseAndTitle(t *testing.T) {
	s, err := Parse("withdraw")
	require.NoError(t, err)
	require.Equal(t, Withdraw, s)
	require.Equal(t, "Cashout", s.Title())

	_, err = Parse("nope")
	require.ErrorIs(t, err, ErrUnknownScreen)
}
