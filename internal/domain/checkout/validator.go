// internal/domain/checkout/validator.go
package checkout

import (
	"regexp"
	"strings"
)

// Form represents the guest checkout form as submitted by the UI
type Form struct {
	Email          string        `json:"email"`
	FullName       string        `json:"full_name"`
	Phone          string        `json:"phone"`
	Address        string        `json:"address"`
	City           string        `json:"city"`
	PostalCode     string        `json:"postal_code"`
	Region         string        `json:"region"`
	Country        string        `json:"country"`
	ShippingMethod string        `json:"shipping_method"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	PromoCode      string        `json:"promo_code"`
	Notes          string        `json:"notes"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateForm checks the form against the submission rules. Every rule
// runs independently; the result maps field name to a human-readable
// message and an empty map means the form may be submitted.
func ValidateForm(form *Form, hasBankTransferProof, hasCODProof, advanceRequired bool) map[string]string {
	errors := make(map[string]string)

	required := map[string]string{
		"fullName": form.FullName,
		"phone":    form.Phone,
		"address":  form.Address,
		"city":     form.City,
		"country":  form.Country,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errors[field] = "This field is required"
		}
	}

	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		errors["email"] = "Please enter a valid email address"
	}

	if form.PaymentMethod == PaymentOnline && !hasBankTransferProof {
		errors["bankTransferProof"] = "Please upload a screenshot of your JazzCash transfer or bank transfer receipt."
	}

	if advanceRequired && !hasCODProof {
		errors["codDeliveryProof"] = "Please upload a screenshot of your Rs 250 delivery charges payment."
	}

	return errors
}
