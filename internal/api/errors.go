package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"earnplay/internal/ledger" // Ledger rejections

	"github.com/gin-gonic/gin" // Gin web framework
)

// rejectionStatus maps a ledger rejection to an HTTP status code
func rejectionStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInsufficient):
		return http.StatusUnprocessableEntity // Valid request the balance cannot cover
	case errors.Is(err, ledger.ErrInProgress):
		return http.StatusConflict // Another withdrawal is outstanding
	case errors.Is(err, ledger.ErrGatewayFailed):
		return http.StatusBadGateway // Payout gateway refused or failed
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound // Unknown transaction
	case errors.Is(err, ledger.ErrNotPending):
		return http.StatusConflict // Transaction already settled
	default:
		return http.StatusBadRequest // Validation failure
	}
}

// respondError writes a ledger rejection with its reason code, or a generic
// internal error for anything else
func respondError(c *gin.Context, err error, fallback string) {
	var rej *ledger.Rejection
	if errors.As(err, &rej) {
		c.JSON(rejectionStatus(err), gin.H{"error": err.Error(), "code": rej.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
