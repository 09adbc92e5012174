package domain

import "github.com/shopspring/decimal"

// PaymentMethodType tags a withdrawal destination
type PaymentMethodType string

const (
	MethodPayPal     PaymentMethodType = "PayPal"
	MethodStripe     PaymentMethodType = "Visa/Mastercard"
	MethodMBWay      PaymentMethodType = "MB WAY"
	MethodMultibanco PaymentMethodType = "Multibanco"
	MethodGiftCard   PaymentMethodType = "Gift Card"
)

// PaymentMethod is a withdrawal destination with its minimum amount in currency units
type PaymentMethod struct {
	Type         PaymentMethodType `json:"type"`         // Method tag
	Label        string            `json:"label"`        // Display label
	Minimum      decimal.Decimal   `json:"minimum"`      // Minimum withdrawal
	DetailsLabel string            `json:"detailsLabel"` // What the destination details field holds
}

var paymentMethods = []PaymentMethod{
	{Type: MethodPayPal, Label: "PayPal", Minimum: decimal.RequireFromString("2.00"), DetailsLabel: "PayPal Email"},
	{Type: MethodStripe, Label: "Visa / MC", Minimum: decimal.RequireFromString("5.00"), DetailsLabel: "Card Number (Demo)"},
	{Type: MethodMBWay, Label: "MB WAY", Minimum: decimal.RequireFromString("1.00"), DetailsLabel: "Phone Number"},
	{Type: MethodMultibanco, Label: "Multibanco", Minimum: decimal.RequireFromString("10.00"), DetailsLabel: "IBAN (for payout)"},
	{Type: MethodGiftCard, Label: "Gift Card", Minimum: decimal.RequireFromString("5.00"), DetailsLabel: "Email for Code Delivery"},
}

// PaymentMethods returns a copy of the payment method catalog
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

// FindPaymentMethod looks a method up by its type tag
func FindPaymentMethod(t PaymentMethodType) (PaymentMethod, bool) {
	for _, m := range paymentMethods {
		if m.Type == t {
			return m, true
		}
	}
	return PaymentMethod{}, false
}
