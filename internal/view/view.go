// Package view decides which top level screen the client renders.
package view

import (
	"errors"
	"fmt"
)

// State is a top level screen.
type State string

const (
	Auth      State = "auth"
	Dashboard State = "dashboard"
	Withdraw  State = "withdraw"
	History   State = "history"
)

var (
	ErrNotAuthenticated = errors.New("sign in first")
	ErrUnknownScreen    = errors.New("unknown screen")
)

// Destinations are the screens reachable from the navigation bar.
var Destinations = []State{Dashboard, Withdraw, History}

var titles = map[State]string{
	Auth:      "Sign In",
	Dashboard: "Dashboard",
	Withdraw:  "Cashout",
	History:   "History",
}

// Title is the header shown for s.
func (s State) Title() string { return titles[s] }

// Parse validates a screen name.
func Parse(name string) (State, error) {
	s := State(name)
	if _, ok := titles[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownScreen, name)
	}
	return s, nil
}

// Controller is the screen state machine. It is not safe for concurrent
// use; the owner serializes access.
type Controller struct {
	state State
}

// NewController starts on the dashboard when a session user exists and on
// the auth screen otherwise.
func NewController(signedIn bool) *Controller {
	if signedIn {
		return &Controller{state: Dashboard}
	}
	return &Controller{state: Auth}
}

// State returns the current screen.
func (c *Controller) State() State { return c.state }

// Login moves auth to dashboard. Other states are kept.
func (c *Controller) Login() {
	if c.state == Auth {
		c.state = Dashboard
	}
}

// Logout returns to the auth screen from anywhere.
func (c *Controller) Logout() {
	c.state = Auth
}

// Navigate moves freely among the shell screens.
func (c *Controller) Navigate(to State) error {
	if c.state == Auth {
		return ErrNotAuthenticated
	}
	switch to {
	case Dashboard, Withdraw, History:
		c.state = to
		return nil
	case Auth:
		return fmt.Errorf("%w: use logout to leave the shell", ErrUnknownScreen)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownScreen, to)
	}
}
