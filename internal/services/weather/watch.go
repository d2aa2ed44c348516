package weather

// cityWatch is the trigger for forecast fetches: it fires whenever the
// resolved city differs from the one it last saw. Every firing or reset bumps
// the generation, and a forecast result is only applied while the generation
// it was issued under is still current.
type cityWatch struct {
	city  string
	armed bool
	gen   uint64
}

func (w *cityWatch) Observe(city string) (gen uint64, changed bool) {
	if w.armed && w.city == city {
		return w.gen, false
	}
	w.city = city
	w.armed = true
	w.gen++
	return w.gen, true
}

// Reset forgets the city, so the next Observe fires even for the same one.
func (w *cityWatch) Reset() {
	w.city = ""
	w.armed = false
	w.gen++
}

func (w *cityWatch) Current(gen uint64) bool {
	return w.gen == gen
}
