package stick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLand(t *testing.T) {
	platforms := []Platform{{X: 50, W: 50}, {X: 140, W: 20}}

	tests := []struct {
		name    string
		length  float64
		want    int
		perfect bool
	}{
		{"perfect window left edge", 45, 1, true},
		{"perfect at midpoint", 50, 1, true},
		{"perfect window right edge", 55, 1, true},
		{"inside but off center", 41, 1, false},
		{"just short of platform", 39.5, NoPlatform, false},
		{"exactly on left edge", 40, NoPlatform, false},
		{"exactly on right edge", 60, NoPlatform, false},
		{"far overshoot", 400, NoPlatform, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stick := Stick{X: 100, Length: tc.length, Rotation: 90}
			got, err := Land(stick, platforms, 10)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Platform)
			assert.Equal(t, tc.perfect, got.Perfect)
		})
	}
}

func TestLandIsPure(t *testing.T) {
	platforms := []Platform{{X: 140, W: 20}}
	stick := Stick{X: 100, Length: 45, Rotation: 90}

	first, err := Land(stick, platforms, 10)
	require.NoError(t, err)
	second, err := Land(stick, platforms, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []Platform{{X: 140, W: 20}}, platforms)
}

func TestLandRequiresFlatStick(t *testing.T) {
	for _, rotation := range []float64{0, 45, 89.999, 90.001, 180} {
		_, err := Land(Stick{X: 100, Length: 45, Rotation: rotation}, []Platform{{X: 140, W: 20}}, 10)
		assert.ErrorIs(t, err, ErrInvariantViolation, "rotation %v", rotation)
	}
}
