package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillIDs(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	skills, err := parseSkillIDs([]string{a.String(), " " + b.String() + " "})
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, a, skills[0].ID)
	assert.Equal(t, b, skills[1].ID)
}

func TestParseSkillIDs_InvalidID(t *testing.T) {
	_, err := parseSkillIDs([]string{"not-a-uuid"})
	assert.Error(t, err)
}

func TestParseSkillIDs_Empty(t *testing.T) {
	skills, err := parseSkillIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestResolveSearchLocation_CoordinateFlags(t *testing.T) {
	searchLat, searchLng, searchRadius = 3.14, 101.69, 10
	searchLocation = ""
	t.Cleanup(resetSearchFlags)

	loc, err := resolveSearchLocation(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, loc)
	assert.InDelta(t, 3.14, loc.Latitude, 1e-9)
	assert.InDelta(t, 101.69, loc.Longitude, 1e-9)
	assert.InDelta(t, 10, loc.RadiusKM, 1e-9)
}

func TestResolveSearchLocation_NoFlagsMeansNoFilter(t *testing.T) {
	resetSearchFlags()

	loc, err := resolveSearchLocation(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestResolveSearchLocation_FreeTextNeedsGeocoder(t *testing.T) {
	searchLocation = "Kuala Lumpur"
	t.Cleanup(resetSearchFlags)

	_, err := resolveSearchLocation(context.Background(), "")
	assert.Error(t, err)
}

func resetSearchFlags() {
	searchLocation = ""
	searchLat, searchLng = 0, 0
	searchRadius = 25
}
