package api

import (
	"encoding/json" // Raw amount field
	"errors"        // Error matching
	"fmt"           // Error wrapping
	"net/http"      // HTTP status codes
	"strconv"       // String conversion
	"time"          // Clock for the weekly chart

	"earnplay/internal/domain"     // Domain models
	"earnplay/internal/ledger"     // Ledger operations
	"earnplay/internal/middleware" // Session from context
	"earnplay/internal/money"      // Coin conversion

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Decimal amounts
	"github.com/sirupsen/logrus"    // Logging library
)

// WithdrawRequest represents a withdrawal request
type WithdrawRequest struct {
	Amount  json.RawMessage          `json:"amount"`                    // Currency units as a number or a string, at most 2 decimals
	Method  domain.PaymentMethodType `json:"method" binding:"required"` // Payment method type
	Details string                   `json:"details"`                   // Destination details (email, IBAN, phone...)
}

// SettleRequest resolves a pending withdrawal
type SettleRequest struct {
	Status domain.Status `json:"status" binding:"required"` // completed or failed
}

// WalletResponse describes the balance
type WalletResponse struct {
	Balance           int64           `json:"balance"`            // Coins
	Currency          decimal.Decimal `json:"currency"`           // Currency equivalent
	Display           string          `json:"display"`            // Formatted currency equivalent
	CoinsPerUnit      int64           `json:"coins_per_unit"`     // Conversion factor
	WithdrawalPending bool            `json:"withdrawal_pending"` // A withdrawal is being submitted
}

func walletResponse(l *ledger.Ledger) WalletResponse {
	snap := l.Snapshot() // Balance and in-flight flag from one read
	return WalletResponse{
		Balance:           snap.Balance,
		Currency:          money.FromCoins(snap.Balance),
		Display:           money.Format(money.FromCoins(snap.Balance)),
		CoinsPerUnit:      money.CoinsPerUnit,
		WithdrawalPending: snap.Pending,
	}
}

// amountText returns the amount as typed, whether it was sent as a JSON
// number or a JSON string
func amountText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// parseAmount validates a user entered amount, reporting failures as ledger rejections
func parseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	amt, err := money.ParseAmount(amountText(raw))
	switch {
	case errors.Is(err, money.ErrPrecision):
		return decimal.Zero, ledger.ErrPrecision
	case err != nil:
		return decimal.Zero, fmt.Errorf("%w (%v)", ledger.ErrBadAmount, err)
	}
	return amt, nil
}

// WalletHandler returns the balance of the active session
func WalletHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, walletResponse(s.Ledger))
	}
}

// ActivitiesHandler lists the earning activities
func ActivitiesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"activities": domain.Activities()})
	}
}

// PaymentMethodsHandler lists the withdrawal destinations
func PaymentMethodsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"payment_methods": domain.PaymentMethods()})
	}
}

// CompleteActivityHandler credits the reward of a completed activity
func CompleteActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		activity, found := domain.FindActivity(c.Param("id")) // Look the activity up
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		tx, err := s.Ledger.Credit(activity.Reward, activity.Description()) // Credit the reward
		if err != nil {
			respondError(c, err, "Failed to credit reward")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"transaction": tx, "wallet": walletResponse(s.Ledger)})
	}
}

// WeeklyActivityHandler returns coins earned per day over the last week
func WeeklyActivityHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"days": s.Ledger.WeeklyActivity(time.Now())})
	}
}

// WithdrawHandler requests a payout of part of the balance
func WithdrawHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req WithdrawRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		amt, err := parseAmount(req.Amount) // Trim and validate the typed amount
		if err != nil {
			respondError(c, err, "Invalid amount")
			return
		}
		// Blocks for the gateway round trip
		tx, err := s.Ledger.Debit(c.Request.Context(), ledger.Withdrawal{
			Amount:  amt,
			Method:  req.Method,
			Details: req.Details,
		})
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": s.User.ID,    // User ID
				"method":  req.Method,   // Payment method
				"amount":  amt.String(), // Requested amount
				"error":   err.Error(),  // Rejection
			}).Info("Withdrawal rejected")
			respondError(c, err, "Withdrawal failed")
			return
		}
		c.JSON(http.StatusCreated, gin.H{"transaction": tx, "wallet": walletResponse(s.Ledger)})
	}
}

// SettleHandler resolves a pending withdrawal as completed or failed
func SettleHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req SettleRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		tx, err := s.Ledger.Settle(c.Param("id"), req.Status)
		if err != nil {
			respondError(c, err, "Settlement failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": tx, "wallet": walletResponse(s.Ledger)})
	}
}

// TransactionHistoryHandler returns the transactions of the active session, newest first
func TransactionHistoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := middleware.CurrentSession(c) // Get session from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page := 1                          // Default page
		pageSize := ledger.DefaultPageSize // Default page size
		// If page exists in query
		if p := c.Query("page"); p != "" {
			// Convert page to integer
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// If page_size exists in query
		if ps := c.Query("page_size"); ps != "" {
			// Convert page_size to integer
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= ledger.MaxPageSize {
				pageSize = v // Set page size if valid
			}
		}
		kind := domain.TransactionType(c.Query("type")) // Optional type filter
		if kind != "" && kind != domain.TypeEarning && kind != domain.TypeWithdrawal {
			c.JSON(http.StatusBadRequest, gin.H{"error": "type must be earning or withdrawal"})
			return
		}
		c.JSON(http.StatusOK, s.Ledger.History(page, pageSize, kind)) // Return transaction history
	}
}
