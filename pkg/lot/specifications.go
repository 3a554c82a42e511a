package lot

import (
	"fmt"
	"time"
)

// Expired is satisfied by lots whose expiration date is today or earlier.
type Expired struct{}

func (Expired) Validate(l Lot) bool {
	now := time.Now()
	return !truncateDay(l.ExpirationDate.In(now.Location())).After(truncateDay(now))
}

func (Expired) MessageWhenExpectingFalse(l Lot) string {
	return fmt.Sprintf("Lot %s is expired and cannot be used", l.Number)
}

// Interdicted is satisfied by lots blocked from use.
type Interdicted struct{}

func (Interdicted) Validate(l Lot) bool {
	return l.Interdicted
}

func (Interdicted) MessageWhenExpectingTrue(l Lot) string {
	return fmt.Sprintf("Lot %s is not interdicted", l.Number)
}

func (Interdicted) MessageWhenExpectingFalse(l Lot) string {
	return fmt.Sprintf("Lot %s is interdicted and needs to be replaced", l.Number)
}

// AvailableOnStock is satisfied by lots with a positive quantity.
type AvailableOnStock struct{}

func (AvailableOnStock) Validate(l Lot) bool {
	return l.AvailableQuantity > 0
}

func (AvailableOnStock) MessageWhenExpectingTrue(l Lot) string {
	return fmt.Sprintf("Lot %s is not available on stock. Current quantity: %d", l.Number, l.AvailableQuantity)
}

func (AvailableOnStock) MessageWhenExpectingFalse(l Lot) string {
	return fmt.Sprintf("Lot %s is available on stock", l.Number)
}

// truncateDay drops the time of day in the location of t.
func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
