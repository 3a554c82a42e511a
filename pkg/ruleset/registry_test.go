package ruleset_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/speckit/pkg/lot"
	"github.com/dmitrymomot/speckit/pkg/ruleset"
	"github.com/dmitrymomot/speckit/pkg/specification"
)

func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		r := ruleset.NewRegistry[lot.Lot]()
		require.NoError(t, r.Register("expired", lot.Expired{}))

		spec, ok := r.Lookup("expired")
		require.True(t, ok)
		assert.Equal(t, lot.Expired{}, spec)

		_, ok = r.Lookup("missing")
		assert.False(t, ok)
	})

	t.Run("rejects invalid registrations", func(t *testing.T) {
		r := ruleset.NewRegistry[lot.Lot]()
		assert.ErrorIs(t, r.Register("", lot.Expired{}), ruleset.ErrEmptyName)
		assert.ErrorIs(t, r.Register("nil", nil), ruleset.ErrNilSpecification)
		assert.ErrorIs(t, r.Register("typed-nil", (*lot.Expired)(nil)), ruleset.ErrNilSpecification)
		assert.Empty(t, r.Names())

		require.NoError(t, r.Register("expired", lot.Expired{}))
		assert.ErrorIs(t, r.Register("expired", lot.Interdicted{}), ruleset.ErrDuplicateSpecification)
	})

	t.Run("must register panics on error", func(t *testing.T) {
		r := ruleset.NewRegistry[lot.Lot]()
		r.MustRegister("expired", lot.Expired{})
		assert.Panics(t, func() { r.MustRegister("expired", lot.Expired{}) })
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := ruleset.NewRegistry[lot.Lot]()
		r.MustRegister("b", lot.Interdicted{})
		r.MustRegister("a", lot.Expired{})
		assert.Equal(t, []string{"a", "b"}, r.Names())
	})

	t.Run("name of failure type", func(t *testing.T) {
		r := lot.NewRegistry()

		name, ok := r.NameOf(specification.TypeOf(lot.Interdicted{}))
		require.True(t, ok)
		assert.Equal(t, lot.NameInterdicted, name)

		_, ok = r.NameOf(nil)
		assert.False(t, ok)

		_, ok = ruleset.NewRegistry[lot.Lot]().NameOf(specification.TypeOf(lot.Expired{}))
		assert.False(t, ok)
	})

	t.Run("concurrent access", func(t *testing.T) {
		r := ruleset.NewRegistry[lot.Lot]()
		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = r.Register(fmt.Sprintf("spec-%d", i), lot.Expired{})
				_, _ = r.Lookup("spec-0")
				_ = r.Names()
			}()
		}
		wg.Wait()
		assert.Len(t, r.Names(), 20)
	})
}
