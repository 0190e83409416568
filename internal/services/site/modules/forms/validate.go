package forms

import (
	"fmt"
	"math"
	"net/mail"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Field error keys resolved through the chrome catalog.
const (
	errRequired = "forms.error.required"
	errEmail    = "forms.error.email"
	errAmount   = "forms.error.amount"
	errPayment  = "forms.error.payment"
)

// PaymentMethods are the accepted donation payment method values.
var PaymentMethods = []string{"credit_card", "paypal", "crypto"}

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// ContactInput is a submitted contact form.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DonationInput is a submitted donate form.
type DonationInput struct {
	Name          string
	Email         string
	Amount        string
	PaymentMethod string
}

// Values returns the form values for re-rendering.
func (in ContactInput) Values() map[string]string {
	return map[string]string{
		"name":    in.Name,
		"email":   in.Email,
		"subject": in.Subject,
		"message": in.Message,
	}
}

// Values returns the form values for re-rendering.
func (in DonationInput) Values() map[string]string {
	return map[string]string{
		"name":          in.Name,
		"email":         in.Email,
		"amount":        in.Amount,
		"paymentMethod": in.PaymentMethod,
	}
}

// ValidateContact returns field name to error key for invalid fields.
func ValidateContact(in ContactInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = errRequired
	}
	if key := validateEmail(in.Email); key != "" {
		errs["email"] = key
	}
	if strings.TrimSpace(in.Message) == "" {
		errs["message"] = errRequired
	}
	return errs
}

// ValidateDonation returns field name to error key for invalid fields.
func ValidateDonation(in DonationInput) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		errs["name"] = errRequired
	}
	if key := validateEmail(in.Email); key != "" {
		errs["email"] = key
	}
	if strings.TrimSpace(in.Amount) == "" {
		errs["amount"] = errRequired
	} else if _, err := ParseAmountCents(in.Amount); err != nil {
		errs["amount"] = errAmount
	}
	method := strings.TrimSpace(in.PaymentMethod)
	switch {
	case method == "":
		errs["paymentMethod"] = errRequired
	case !slices.Contains(PaymentMethods, method):
		errs["paymentMethod"] = errPayment
	}
	return errs
}

func validateEmail(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return errRequired
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return errEmail
	}
	return ""
}

// ParseAmountCents parses a positive amount such as "12" or "12.50".
func ParseAmountCents(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if !amountPattern.MatchString(value) {
		return 0, fmt.Errorf("amount %q is not a decimal number", value)
	}
	whole, fraction, _ := strings.Cut(value, ".")
	for len(fraction) < 2 {
		fraction += "0"
	}
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	if dollars > (math.MaxInt64-99)/100 {
		return 0, fmt.Errorf("amount %q is too large", value)
	}
	cents, err := strconv.ParseInt(fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse amount: %w", err)
	}
	total := dollars*100 + cents
	if total <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}
	return total, nil
}
