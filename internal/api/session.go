package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"earnplay/internal/app"        // Session lifecycle
	"earnplay/internal/domain"     // Domain models
	"earnplay/internal/middleware" // Session from context
	"earnplay/internal/view"       // Screens

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// NavigateRequest selects a shell screen
type NavigateRequest struct {
	Screen string `json:"screen" binding:"required"` // dashboard, withdraw or history
}

// ScreenResponse describes the screen the client should render
type ScreenResponse struct {
	Screen       view.State   `json:"screen"`       // Current screen
	Title        string       `json:"title"`        // Header title
	Destinations []view.State `json:"destinations"` // Navigation bar entries
}

// SessionResponse is returned by login and restore
type SessionResponse struct {
	Token   string         `json:"token"`   // Bearer token for the session
	User    domain.User    `json:"user"`    // Signed in user
	Balance int64          `json:"balance"` // Coin balance
	View    ScreenResponse `json:"view"`    // Screen to render
}

func screenResponse(s view.State) ScreenResponse {
	resp := ScreenResponse{Screen: s, Title: s.Title()}
	if s != view.Auth {
		resp.Destinations = view.Destinations // Navigation only inside the shell
	}
	return resp
}

// LoginHandler signs a user in and starts a session
func LoginHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.User // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		s, err := a.Login(c.Request.Context(), req) // Persist the user and open a session
		if errors.Is(err, domain.ErrIncompleteUser) {
			// If the user record is not fully formed, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": req.ID,      // User ID
				"error":   err.Error(), // Error message
			}).Error("Login failed") // Log login failure
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
			return
		}
		// Return the session
		c.JSON(http.StatusCreated, SessionResponse{
			Token:   s.Token,
			User:    s.User,
			Balance: s.Ledger.Balance(),
			View:    screenResponse(a.Screen()),
		})
	}
}

// RestoreHandler returns the active session, if any
func RestoreHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := a.Current() // Get the active session
		if !ok {
			// If nobody is signed in, return not found
			c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
			return
		}
		c.JSON(http.StatusOK, SessionResponse{
			Token:   s.Token,
			User:    s.User,
			Balance: s.Ledger.Balance(),
			View:    screenResponse(a.Screen()),
		})
	}
}

// LogoutHandler destroys the active session
func LogoutHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := a.Logout(c.Request.Context()); err != nil {
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Logout could not remove the session record")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Signed out", "view": screenResponse(view.Auth)})
	}
}

// ScreenHandler returns the screen to render
func ScreenHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, screenResponse(a.Screen()))
	}
}

// NavigateHandler moves between the shell screens
func NavigateHandler(a *app.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentSession(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req NavigateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		to, err := view.Parse(req.Screen) // Validate the screen name
		if err == nil {
			to, err = a.Navigate(to)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "view": screenResponse(a.Screen())})
			return
		}
		c.JSON(http.StatusOK, screenResponse(to))
	}
}
