package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

func TestDistance_UnderOneKilometer(t *testing.T) {
	assert.Equal(t, "500m away", Distance(ptr(0.5)))
	assert.Equal(t, "50m away", Distance(ptr(0.05)))
}

func TestDistance_KilometersOneDecimal(t *testing.T) {
	assert.Equal(t, "12.3km away", Distance(ptr(12.34)))
	assert.Equal(t, "1.0km away", Distance(ptr(1.0)))
}

func TestDistance_UnknownIsEmpty(t *testing.T) {
	assert.Equal(t, "", Distance(nil))
}
