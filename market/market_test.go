package market

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadInstruments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []Instrument
	}{
		{"empty", nil},
		{"blank symbol", []Instrument{{Symbol: " ", Price: 10}}},
		{"zero price", []Instrument{{Symbol: "AAPL", Price: 0}}},
		{"negative price", []Instrument{{Symbol: "AAPL", Price: -1}}},
		{"duplicate", []Instrument{{Symbol: "AAPL", Price: 1}, {Symbol: "aapl", Price: 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.in)
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	t.Parallel()

	_, err := New(DefaultInstruments(), WithFloor(0))
	assert.Error(t, err)

	_, err = New(DefaultInstruments(), WithMaxDelta(-1))
	assert.Error(t, err)
}

func TestPriceLookup(t *testing.T) {
	t.Parallel()

	m, err := New(DefaultInstruments(), WithSeed(1))
	require.NoError(t, err)

	p, err := m.Price("AAPL")
	require.NoError(t, err)
	assert.Equal(t, 150.0, p)

	p, err = m.Price(" goog ")
	require.NoError(t, err)
	assert.Equal(t, 2800.0, p)

	_, err = m.Price("MSFT")
	assert.ErrorIs(t, err, ErrUnknownSymbol)

	assert.True(t, m.Has("tsla"))
	assert.False(t, m.Has("MSFT"))
}

func TestListSortedBySymbol(t *testing.T) {
	t.Parallel()

	m, err := New(DefaultInstruments(), WithSeed(1))
	require.NoError(t, err)

	got := m.List()
	require.Len(t, got, 5)
	assert.Equal(t, 5, m.Len())

	want := []string{"AAPL", "AMZN", "GOOG", "NFLX", "TSLA"}
	for i, in := range got {
		assert.Equal(t, want[i], in.Symbol)
	}
}

func TestTickStaysWithinRange(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 200; seed++ {
		m, err := New([]Instrument{{Symbol: "AAPL", Price: 150}}, WithSeed(seed))
		require.NoError(t, err)

		m.Tick()

		p, err := m.Price("AAPL")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 145.0)
		assert.LessOrEqual(t, p, 155.0)
	}
}

func TestTickIsDeterministicForSeed(t *testing.T) {
	t.Parallel()

	m, err := New(DefaultInstruments(), WithSeed(42))
	require.NoError(t, err)
	m.Tick()

	// Replay the same source in sorted symbol order.
	r := rand.New(rand.NewSource(42))
	seeds := map[string]float64{"AAPL": 150, "AMZN": 3300, "GOOG": 2800, "NFLX": 500, "TSLA": 700}
	for _, sym := range []string{"AAPL", "AMZN", "GOOG", "NFLX", "TSLA"} {
		want := seeds[sym] + (r.Float64()-0.5)*10

		got, err := m.Price(sym)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9, sym)
	}
}

func TestTickClampsToFloor(t *testing.T) {
	t.Parallel()

	m, err := New([]Instrument{{Symbol: "PENNY", Price: 1.5}}, WithSeed(7))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		m.Tick()
		p, err := m.Price("PENNY")
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, DefaultFloor)
	}
}

func TestTickZeroDeltaIsStable(t *testing.T) {
	t.Parallel()

	m, err := New(DefaultInstruments(), WithSeed(3), WithMaxDelta(0))
	require.NoError(t, err)
	m.Tick()
	m.Tick()

	for _, in := range m.List() {
		for _, d := range DefaultInstruments() {
			if d.Symbol == in.Symbol {
				assert.Equal(t, d.Price, in.Price)
			}
		}
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, clamp(-3, 1))
	assert.Equal(t, 1.0, clamp(0.5, 1))
	assert.Equal(t, 2.5, clamp(2.5, 1))
}

func TestNormalizeSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AAPL", NormalizeSymbol("  aapl\n"))
	assert.Equal(t, "", NormalizeSymbol("   "))
}
