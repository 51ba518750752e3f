// Package impl contains the application-specific business rules implementations.
package impl

import (
	"crypto/rand"
	"math/big"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/view"
)

const otpLength = 6

// isDigits reports whether s consists of exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// generateOTP draws a uniformly random numeric code.
func generateOTP() (string, error) {
	const digits = "0123456789"
	code := make([]byte, otpLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[n.Int64()]
	}

	return string(code), nil
}

// deliveryRange selects orders delivered on day; a nil day selects everything.
func deliveryRange(day *time.Time, loc *time.Location) entity.TimeRange {
	if day == nil {
		return entity.TimeRange{}
	}

	return view.DayRange(*day, loc)
}

func userIDs(orders []*entity.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.UserID]; ok || o.UserID == "" {
			continue
		}
		seen[o.UserID] = struct{}{}
		ids = append(ids, o.UserID)
	}

	return ids
}
