package simulated

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

func TestFetchStaysInRanges(t *testing.T) {
	source := NewSource()

	for i := 0; i < 200; i++ {
		reading, err := source.Fetch(context.Background(), surfreport.Spot{ID: "malibu"})
		require.NoError(t, err)

		require.GreaterOrEqual(t, reading.WaveHeight, 2.0)
		require.LessOrEqual(t, reading.WaveHeight, 12.0)
		require.GreaterOrEqual(t, reading.WavePeriod, 8.0)
		require.LessOrEqual(t, reading.WavePeriod, 18.0)
		require.GreaterOrEqual(t, reading.WindSpeed, 5.0)
		require.LessOrEqual(t, reading.WindSpeed, 25.0)
		require.GreaterOrEqual(t, reading.Temperature, 15.0)
		require.LessOrEqual(t, reading.Temperature, 30.0)
		require.GreaterOrEqual(t, reading.TideHeight, -0.5)
		require.LessOrEqual(t, reading.TideHeight, 2.5)

		require.Equal(t, reading.WaveHeight, reading.SwellHeight)
		require.Equal(t, reading.WavePeriod, reading.SwellPeriod)
		require.Contains(t, compassPoints, reading.WaveDirection)
		require.Contains(t, compassPoints, reading.WindDirection)
	}
}

func TestFetchEdgesOfRandomRange(t *testing.T) {
	source := &Source{randFloat: func() float64 { return 0 }}
	reading, err := source.Fetch(context.Background(), surfreport.Spot{})
	require.NoError(t, err)
	require.Equal(t, 2.0, reading.WaveHeight)
	require.Equal(t, "N", reading.WaveDirection)

	source = &Source{randFloat: func() float64 { return 0.999999 }}
	reading, err = source.Fetch(context.Background(), surfreport.Spot{})
	require.NoError(t, err)
	require.Equal(t, 12.0, reading.WaveHeight)
	require.Equal(t, "NW", reading.WindDirection)
}
