package specification_test

import (
	"time"

	"github.com/dmitrymomot/speckit/pkg/lot"
)

func expiredLot(number string, opts ...lot.Option) lot.Lot {
	return lot.New(number, append([]lot.Option{lot.WithExpiration(time.Now().AddDate(0, 0, -1))}, opts...)...)
}

func freshLot(number string, opts ...lot.Option) lot.Lot {
	return lot.New(number, append([]lot.Option{lot.WithExpiration(time.Now().AddDate(0, 1, 0))}, opts...)...)
}

func expiredMessage(l lot.Lot) string {
	return lot.Expired{}.MessageWhenExpectingFalse(l)
}

func interdictedMessage(l lot.Lot) string {
	return lot.Interdicted{}.MessageWhenExpectingFalse(l)
}

func notOnStockMessage(l lot.Lot) string {
	return lot.AvailableOnStock{}.MessageWhenExpectingTrue(l)
}

// silent has no message capability.
type silent struct{}

func (silent) Validate(lot.Lot) bool { return false }
