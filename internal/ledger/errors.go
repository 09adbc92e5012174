package ledger

// Rejection is a refused ledger operation. Code is a stable reason code
// that callers can surface to the user; the ledger is never mutated by an
// operation that returns a Rejection.
type Rejection struct {
	Code    string
	Message string
}

func (r *Rejection) Error() string { return r.Message }

var (
	ErrBadAmount         = &Rejection{Code: "bad_amount", Message: "amount must be > 0"}
	ErrPrecision         = &Rejection{Code: "precision", Message: "amount has more than two decimal places"}
	ErrUnknownMethod     = &Rejection{Code: "unknown_method", Message: "unknown payment method"}
	ErrBelowMinimum      = &Rejection{Code: "below_minimum", Message: "amount is below the payment method minimum"}
	ErrInsufficient      = &Rejection{Code: "insufficient_balance", Message: "insufficient balance"}
	ErrDetailsRequired   = &Rejection{Code: "details_required", Message: "payout details are required"}
	ErrInProgress        = &Rejection{Code: "withdrawal_in_progress", Message: "another withdrawal is still being processed"}
	ErrGatewayFailed     = &Rejection{Code: "gateway_failed", Message: "payout could not be submitted"}
	ErrNotFound          = &Rejection{Code: "not_found", Message: "transaction not found"}
	ErrNotPending        = &Rejection{Code: "not_pending", Message: "transaction is not a pending withdrawal"}
	ErrInvalidSettlement = &Rejection{Code: "invalid_status", Message: "settlement status must be completed or failed"}
)
