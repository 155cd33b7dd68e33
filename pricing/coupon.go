// Package pricing holds the coupon rules applied at checkout.
package pricing

import (
	"errors"
	"time"

	"tastekart/models"
)

var (
	// ErrCouponInvalid covers both unknown and expired codes; the two are
	// collapsed into one user-facing message on purpose.
	ErrCouponInvalid = errors.New("invalid or expired coupon code")
	ErrBelowMinimum  = errors.New("order subtotal is below the coupon's minimum order value")
)

// Check validates a coupon against the cart subtotal at the given time
// and returns the discount percentage. A coupon is valid until the end
// of its expiry date: it fails only when that date is strictly before
// today. Coupons are reusable and never consumed.
func Check(coupon *models.Coupon, subtotal float64, now time.Time) (float64, error) {
	if coupon == nil {
		return 0, ErrCouponInvalid
	}
	if dateOnly(coupon.ExpiryDate).Before(dateOnly(now)) {
		return 0, ErrCouponInvalid
	}
	if subtotal < coupon.MinOrderValue {
		return 0, ErrBelowMinimum
	}
	return coupon.Discount, nil
}

// Apply returns the amount due after discounting the subtotal.
func Apply(subtotal, discountPct float64) float64 {
	return subtotal - subtotal*(discountPct/100)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
