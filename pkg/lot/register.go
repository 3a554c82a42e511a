package lot

import "github.com/dmitrymomot/speckit/pkg/ruleset"

// Specification names used in ruleset documents.
const (
	NameExpired          = "expired"
	NameInterdicted      = "interdicted"
	NameAvailableOnStock = "available_on_stock"
)

// Register adds the lot specifications to r.
func Register(r *ruleset.Registry[Lot]) error {
	if err := r.Register(NameExpired, Expired{}); err != nil {
		return err
	}
	if err := r.Register(NameInterdicted, Interdicted{}); err != nil {
		return err
	}
	return r.Register(NameAvailableOnStock, AvailableOnStock{})
}

// NewRegistry returns a registry holding the lot specifications.
func NewRegistry() *ruleset.Registry[Lot] {
	r := ruleset.NewRegistry[Lot]()
	if err := Register(r); err != nil {
		panic(err)
	}
	return r
}
