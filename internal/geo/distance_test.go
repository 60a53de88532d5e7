package geo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	kualaLumpur = Point{Latitude: 3.1390, Longitude: 101.6869}
	singapore   = Point{Latitude: 1.3521, Longitude: 103.8198}
)

func TestDistanceKM_KnownCityPair(t *testing.T) {
	// KL to Singapore is roughly 316km great-circle.
	got := DistanceKM(kualaLumpur, singapore)
	assert.InDelta(t, 316, got, 5)
}

func TestDistanceKM_SamePointIsZero(t *testing.T) {
	assert.InDelta(t, 0, DistanceKM(kualaLumpur, kualaLumpur), 1e-9)
}

func TestDistanceKM_Symmetric(t *testing.T) {
	assert.InDelta(t, DistanceKM(kualaLumpur, singapore), DistanceKM(singapore, kualaLumpur), 1e-9)
}

type failingProvider struct{}

func (failingProvider) Current(context.Context) (Point, error) {
	return Point{}, errors.New("permission denied")
}

func TestResolve_FallsBackOnProviderFailure(t *testing.T) {
	got := Resolve(context.Background(), failingProvider{}, kualaLumpur)
	assert.Equal(t, kualaLumpur, got)
}

func TestResolve_NilProviderUsesFallback(t *testing.T) {
	got := Resolve(context.Background(), nil, kualaLumpur)
	assert.Equal(t, kualaLumpur, got)
}

func TestResolve_UsesProviderWhenAvailable(t *testing.T) {
	got := Resolve(context.Background(), StaticProvider{Point: singapore}, kualaLumpur)
	assert.Equal(t, singapore, got)
}

func TestRawLabel(t *testing.T) {
	assert.Equal(t, "3.1390, 101.6869", RawLabel(kualaLumpur))
}
