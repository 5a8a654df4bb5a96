package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _'\-áéíóúñÁÉÍÓÚÑ]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	// Loose international phone shape: optional +, digits with common
	// separators. Digit count is checked separately.
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 ().-]*$`)

	payMethods = map[string]bool{
		"cash": true, "card": true, "transfer": true, "nequi": true, "daviplata": true,
	}
	ticketCategories = map[string]bool{
		"technical": true, "order": true, "payment": true, "general": true,
	}
	ticketPriorities = map[string]bool{"low": true, "medium": true, "high": true}
)

// Phone accepts a loose international pattern with at least 10 digits.
func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 20 || !rePhone.MatchString(s) {
		return "", false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return s, digits >= 10
}

// Address requires non-empty text with a sane upper bound.
func Address(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 200 {
		return "", false
	}
	return s, true
}

// PaymentMethod checks membership in the accepted enum.
func PaymentMethod(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, payMethods[s]
}

// Rating bounds a review rating to 1..5.
func Rating(n int) bool { return n >= 1 && n <= 5 }

// Comment enforces the 10-500 character review comment window.
func Comment(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 10 || len(s) > 500 {
		return "", false
	}
	return s, true
}

func TicketCategory(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, ticketCategories[s]
}

func TicketPriority(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	return s, ticketPriorities[s]
}

// Subject bounds a ticket subject.
func Subject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 120 {
		return "", false
	}
	return s, true
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and max length
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// Qty parses a quantity, clamping to a sane window to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// ID validates a simple resource identifier (product/category/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 40 {
		return "", false
	}
	return s, true
}

// Password enforces length plus character-class requirements for signup.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 64 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
