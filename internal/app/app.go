// Package app owns the lifecycle of the single active session: the signed
// in user, the ledger that belongs to it and the screen being shown.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"earnplay/internal/auth"
	"earnplay/internal/domain"
	"earnplay/internal/ledger"
	"earnplay/internal/session"
	"earnplay/internal/view"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrStaleSession = errors.New("token belongs to another session")
)

// Settings tune new sessions.
type Settings struct {
	SignupBonus     int64         // Coins granted on login
	RestoredBalance int64         // Coins of a session restored at startup
	TokenSecret     string        // Session token signing secret
	TokenTTL        time.Duration // Session token lifetime
}

// Session is the context of one signed in user. It is created at login or
// restore and destroyed at logout.
type Session struct {
	ID        string
	User      domain.User
	Ledger    *ledger.Ledger
	Token     string
	StartedAt time.Time
}

// App is safe for concurrent use.
type App struct {
	store    *session.Store
	gateway  ledger.Gateway
	settings Settings

	mu      sync.Mutex
	current *Session
	view    *view.Controller
}

// New creates an App with no session.
func New(store *session.Store, gw ledger.Gateway, settings Settings) *App {
	return &App{
		store:    store,
		gateway:  gw,
		settings: settings,
		view:     view.NewController(false),
	}
}

// Open restores the persisted user, if any. It never fails: an unusable
// record leaves the app signed out.
func (a *App) Open(ctx context.Context) (*Session, bool) {
	u, ok := a.store.Restore(ctx)
	if !ok {
		return nil, false
	}
	s, err := a.start(u, a.settings.RestoredBalance)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": u.ID, "error": err.Error()}).Error("Failed to restore session")
		return nil, false
	}
	logrus.WithFields(logrus.Fields{"user_id": u.ID, "session_id": s.ID}).Info("Session restored")
	return s, true
}

// Login persists u and starts a fresh session with the signup bonus,
// replacing any active one.
func (a *App) Login(ctx context.Context, u domain.User) (*Session, error) {
	if err := a.store.Login(ctx, u); err != nil {
		return nil, err
	}
	s, err := a.start(u, a.settings.SignupBonus)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{"user_id": u.ID, "session_id": s.ID}).Info("User signed in")
	return s, nil
}

func (a *App) start(u domain.User, opening int64) (*Session, error) {
	id := uuid.NewString()
	token, err := auth.Issue(u.ID, id, a.settings.TokenSecret, a.settings.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	s := &Session{
		ID:        id,
		User:      u,
		Ledger:    ledger.New(opening, a.gateway),
		Token:     token,
		StartedAt: time.Now(),
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = s
	a.view.Login()
	return s, nil
}

// Logout destroys the active session and removes the persisted record.
// The in-memory session is gone even when the record cannot be removed.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	prev := a.current
	a.current = nil
	a.view.Logout()
	a.mu.Unlock()

	if err := a.store.Logout(ctx); err != nil {
		return fmt.Errorf("remove session record: %w", err)
	}
	if prev != nil {
		logrus.WithFields(logrus.Fields{"user_id": prev.User.ID, "session_id": prev.ID}).Info("User signed out")
	}
	return nil
}

// Current returns the active session.
func (a *App) Current() (*Session, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current, a.current != nil
}

// Authorize resolves a session token to the active session.
func (a *App) Authorize(token string) (*Session, error) {
	claims, err := auth.Parse(token, a.settings.TokenSecret)
	if err != nil {
		return nil, err
	}
	s, ok := a.Current()
	if !ok {
		return nil, ErrNoSession
	}
	if claims.ID != s.ID || claims.UserID != s.User.ID {
		return nil, ErrStaleSession
	}
	return s, nil
}

// Screen returns the screen to render. Without a session it is always auth.
func (a *App) Screen() view.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return view.Auth
	}
	return a.view.State()
}

// Navigate switches between the shell screens.
func (a *App) Navigate(to view.State) (view.State, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return view.Auth, view.ErrNotAuthenticated
	}
	if err := a.view.Navigate(to); err != nil {
		return a.view.State(), err
	}
	return a.view.State(), nil
}
