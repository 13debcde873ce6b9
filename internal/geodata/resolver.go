// Package geodata turns free-text place names into approximate map
// coordinates. Resolution never fails: unknown places fall back to a widely
// jittered national centroid so every row still lands inside the country's
// bounding region.
package geodata

import (
	"math/rand"
	"strings"
)

// Normalize canonicalizes a place name for table lookup.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Jitter half-widths in degrees per resolution tier. Municipality hits get a
// tiny offset so repeated rows don't stack on one pixel; department hits are
// spread across the department's area; the national fallback covers most of
// the country.
const (
	municipalityJitter = 0.005
	departmentJitter   = 0.25
	nationalJitter     = 2.0
)

// RandSource yields values in [0,1). It exists so tests can substitute a
// fixed source and assert exact base coordinates.
type RandSource interface {
	Float64() float64
}

type Resolver struct {
	rnd RandSource
}

// New returns a Resolver backed by math/rand. Coordinates are intentionally
// not reproducible across calls.
func New() *Resolver {
	return &Resolver{rnd: rand.New(rand.NewSource(rand.Int63()))}
}

// NewWithSource returns a Resolver using the given source.
func NewWithSource(rnd RandSource) *Resolver {
	return &Resolver{rnd: rnd}
}

// Resolve maps a municipality/department pair to jittered coordinates.
// Lookup order: exact municipality, exact department, national fallback.
func (r *Resolver) Resolve(municipality, department string) (lat, lng float64) {
	if base, ok := coordinates[Normalize(municipality)]; ok {
		return r.jitter(base[0], base[1], municipalityJitter)
	}
	if base, ok := coordinates[Normalize(department)]; ok {
		return r.jitter(base[0], base[1], departmentJitter)
	}
	return r.jitter(nationalLat, nationalLng, nationalJitter)
}

func (r *Resolver) jitter(lat, lng, halfWidth float64) (float64, float64) {
	return lat + (r.rnd.Float64()-0.5)*2*halfWidth,
		lng + (r.rnd.Float64()-0.5)*2*halfWidth
}
