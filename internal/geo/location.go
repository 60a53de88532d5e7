package geo

import (
	"context"
	"fmt"
)

// Provider supplies the device's current coordinates. Implementations may fail
// when the user denies the permission or the fix is unavailable.
type Provider interface {
	Current(ctx context.Context) (Point, error)
}

// StaticProvider always returns a fixed point. It backs both the configured
// default location and tests.
type StaticProvider struct {
	Point Point
}

// Current returns the fixed point.
func (p StaticProvider) Current(_ context.Context) (Point, error) {
	return p.Point, nil
}

// Resolve asks the provider for the current location and falls back to the
// configured default when it fails, so a denied permission never blocks a
// location-biased search.
func Resolve(ctx context.Context, provider Provider, fallback Point) Point {
	if provider == nil {
		return fallback
	}
	point, err := provider.Current(ctx)
	if err != nil {
		return fallback
	}
	return point
}

// RawLabel renders a point as plain coordinates, the degraded display used
// when reverse geocoding fails.
func RawLabel(p Point) string {
	return fmt.Sprintf("%.4f, %.4f", p.Latitude, p.Longitude)
}
