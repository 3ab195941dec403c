package booking

import (
	"fmt"
	"net/mail"
	"strings"
)

func validate(request Request) error {
	if strings.TrimSpace(request.PlanId) == "" {
		return fmt.Errorf("%w: planId is required", ErrInvalidBooking)
	}
	if strings.TrimSpace(request.FullName) == "" {
		return fmt.Errorf("%w: fullName is required", ErrInvalidBooking)
	}
	if err := validateEmail(request.Email); err != nil {
		return err
	}
	return validatePhone(request.Phone)
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidBooking)
	}
	address, err := mail.ParseAddress(email)
	if err != nil || address.Address != email {
		return fmt.Errorf("%w: email %q is not a valid address", ErrInvalidBooking, email)
	}
	return nil
}

// validatePhone accepts digits with an optional leading plus and the usual separators.
// Between 7 and 15 digits are required.
func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidBooking)
	}
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return fmt.Errorf("%w: phone contains %q", ErrInvalidBooking, r)
		}
	}
	if digits < 7 || digits > 15 {
		return fmt.Errorf("%w: phone must have between 7 and 15 digits", ErrInvalidBooking)
	}
	return nil
}
