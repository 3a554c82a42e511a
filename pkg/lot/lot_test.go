package lot_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/speckit/pkg/lot"
)

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		l := lot.New("L-1")
		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.Equal(t, "L-1", l.Number)
		assert.False(t, l.Interdicted)
		assert.Zero(t, l.AvailableQuantity)
		assert.True(t, l.ExpirationDate.After(time.Now()))
	})

	t.Run("options", func(t *testing.T) {
		id := uuid.New()
		exp := time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC)
		l := lot.New("L-1", lot.WithID(id), lot.WithExpiration(exp), lot.WithQuantity(7), lot.WithInterdiction())
		assert.Equal(t, id, l.ID)
		assert.Equal(t, exp, l.ExpirationDate)
		assert.Equal(t, 7, l.AvailableQuantity)
		assert.True(t, l.Interdicted)
	})

	t.Run("equality uses the id", func(t *testing.T) {
		a := lot.New("L-1")
		b := a
		b.AvailableQuantity = 10
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(lot.New("L-1")))
	})
}

func TestExpired(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{name: "yesterday", exp: now.AddDate(0, 0, -1), want: true},
		{name: "today", exp: now, want: true},
		{name: "later today", exp: time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location()), want: true},
		{name: "tomorrow", exp: now.AddDate(0, 0, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lot.New("L-1", lot.WithExpiration(tt.exp))
			assert.Equal(t, tt.want, lot.Expired{}.Validate(l))
		})
	}

	assert.Equal(t, "Lot L-1 is expired and cannot be used", lot.Expired{}.MessageWhenExpectingFalse(lot.New("L-1")))
}

func TestInterdicted(t *testing.T) {
	assert.True(t, lot.Interdicted{}.Validate(lot.New("L-1", lot.WithInterdiction())))
	assert.False(t, lot.Interdicted{}.Validate(lot.New("L-1")))
	assert.Equal(t, "Lot L-1 is not interdicted", lot.Interdicted{}.MessageWhenExpectingTrue(lot.New("L-1")))
	assert.Equal(t, "Lot L-1 is interdicted and needs to be replaced", lot.Interdicted{}.MessageWhenExpectingFalse(lot.New("L-1")))
}

func TestAvailableOnStock(t *testing.T) {
	assert.True(t, lot.AvailableOnStock{}.Validate(lot.New("L-1", lot.WithQuantity(1))))
	assert.False(t, lot.AvailableOnStock{}.Validate(lot.New("L-1")))
	assert.Equal(t, "Lot L-1 is not available on stock. Current quantity: 0", lot.AvailableOnStock{}.MessageWhenExpectingTrue(lot.New("L-1")))
	assert.Equal(t, "Lot L-1 is available on stock", lot.AvailableOnStock{}.MessageWhenExpectingFalse(lot.New("L-1")))
}

func TestRegister(t *testing.T) {
	r := lot.NewRegistry()
	assert.Equal(t, []string{lot.NameAvailableOnStock, lot.NameExpired, lot.NameInterdicted}, r.Names())

	spec, ok := r.Lookup(lot.NameExpired)
	require.True(t, ok)
	assert.IsType(t, lot.Expired{}, spec)

	assert.Error(t, lot.Register(r), "registering twice must fail")
}

func TestDecode(t *testing.T) {
	t.Run("decodes yaml", func(t *testing.T) {
		data := []byte(`
lots:
  - id: 6f1c3c8e-3c4a-4f43-9a8e-2d8f0f6e7b11
    number: L-1
    interdicted: true
    expiration_date: 2030-05-01
    available_quantity: 3
  - number: L-2
`)
		lots, err := lot.Decode(data)
		require.NoError(t, err)
		require.Len(t, lots, 2)

		assert.Equal(t, uuid.MustParse("6f1c3c8e-3c4a-4f43-9a8e-2d8f0f6e7b11"), lots[0].ID)
		assert.Equal(t, "L-1", lots[0].Number)
		assert.True(t, lots[0].Interdicted)
		assert.Equal(t, 3, lots[0].AvailableQuantity)
		assert.Equal(t, 2030, lots[0].ExpirationDate.Year())
		assert.Equal(t, time.May, lots[0].ExpirationDate.Month())
		assert.Equal(t, "L-2", lots[1].Number)
		assert.NotEqual(t, uuid.Nil, lots[1].ID)
	})

	t.Run("decodes json", func(t *testing.T) {
		lots, err := lot.Decode([]byte(`{"lots": [{"number": "L-1", "available_quantity": 2}]}`))
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, 2, lots[0].AvailableQuantity)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := lot.Decode([]byte("lots: [unterminated"))
		assert.ErrorIs(t, err, lot.ErrDecodingLots)
	})
}
