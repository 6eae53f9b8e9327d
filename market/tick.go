package market

// Tick moves every price by an independent uniform delta in
// [-maxDelta, +maxDelta) and clamps the result to the floor.
func (m *Market) Tick() {
	for _, sym := range m.symbols {
		m.prices[sym] = m.step(m.prices[sym])
	}
}

func (m *Market) step(price float64) float64 {
	delta := (m.rng.Float64() - 0.5) * 2 * m.maxDelta
	return clamp(price+delta, m.floor)
}

func clamp(price, floor float64) float64 {
	if price < floor {
		return floor
	}
	return price
}
