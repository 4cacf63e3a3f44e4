package booking

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"salonbook/backend/internal/domain"
)

const phoneDigits = 10

// validateContact checks the customer fields in a fixed order: presence,
// then name shape, then phone shape.
func validateContact(name, phone string) error {
	if name == "" || phone == "" {
		return validationError(ReasonMissingField)
	}
	if !validName(name) {
		return validationError(ReasonInvalidName)
	}
	if !validPhone(phone) {
		return validationError(ReasonInvalidPhone)
	}
	return nil
}

// validName accepts more than three characters, all of them letters. Spaces
// and hyphens are rejected, matching the front desk's rule.
func validName(name string) bool {
	if utf8.RuneCountInString(name) <= 3 {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func validPhone(phone string) bool {
	if len(phone) != phoneDigits {
		return false
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return false
		}
	}
	return true
}

// ParseSlot turns the textual date and time of a booking form into values.
// Blank input is a missing field; anything unparseable is invalid.
func ParseSlot(date, timeOfDay string) (domain.Date, domain.TimeOfDay, error) {
	date = strings.TrimSpace(date)
	timeOfDay = strings.TrimSpace(timeOfDay)
	if date == "" || timeOfDay == "" {
		return domain.Date{}, domain.TimeOfDay{}, validationError(ReasonMissingField)
	}
	d, err := domain.ParseDate(date)
	if err != nil {
		return domain.Date{}, domain.TimeOfDay{}, validationError(ReasonInvalidDate)
	}
	t, err := domain.ParseTimeOfDay(timeOfDay)
	if err != nil {
		return domain.Date{}, domain.TimeOfDay{}, validationError(ReasonInvalidTime)
	}
	return d, t, nil
}

func parseCategory(raw string) (domain.Category, error) {
	c, err := domain.ParseCategory(raw)
	if err != nil {
		return "", validationError(ReasonInvalidCategory)
	}
	return c, nil
}
