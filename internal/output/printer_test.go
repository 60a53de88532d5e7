package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danialhaz/gigmate/internal/format"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"rainbow", ColorAuto, true},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestResolveColors_NoColorEnvWins(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColors(ColorAuto))
	assert.True(t, ResolveColors(ColorAlways), "explicit always overrides environment")
}

func TestResolveColors_Never(t *testing.T) {
	assert.False(t, ResolveColors(ColorNever))
}

func TestPrinter_PlainMessagesWithoutColors(t *testing.T) {
	var out, errBuf bytes.Buffer
	p := NewPrinterWithWriters(&out, &errBuf, false)

	p.Success("applied to %s", "Event Crew")
	p.Error("request failed")

	assert.Equal(t, "[OK] applied to Event Crew\n", out.String())
	assert.Equal(t, "[ERROR] request failed\n", errBuf.String())
}

func TestPrinter_TierBadgePlainWhenColorsOff(t *testing.T) {
	p := NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	assert.Equal(t, "Excellent", p.TierBadge(format.TierExcellent))
	assert.Equal(t, "Low", p.TierBadge(format.TierLow))
}

func TestPrinter_BoldAndDimPassThroughWhenColorsOff(t *testing.T) {
	p := NewPrinterWithWriters(&bytes.Buffer{}, &bytes.Buffer{}, false)
	assert.Equal(t, "hello", p.Bold("hello"))
	assert.Equal(t, "hello", p.Dim("hello"))
}
