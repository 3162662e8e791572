package surf

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jacob-Northcote/WaveView/internal/domain/conditions"
	"github.com/Jacob-Northcote/WaveView/internal/domain/surfreport"
)

type fakeSource struct {
	reading conditions.Reading
	err     error
	calls   int
}

func (f *fakeSource) Fetch(ctx context.Context, spot surfreport.Spot) (conditions.Reading, error) {
	f.calls++
	if f.err != nil {
		return conditions.Reading{}, f.err
	}
	return f.reading, nil
}

func TestFallbackPrefersPrimary(t *testing.T) {
	primary := &fakeSource{reading: conditions.Reading{WaveHeight: 5}}
	backup := &fakeSource{reading: conditions.Reading{WaveHeight: 9}}
	source := NewFallbackSource(primary, backup, discardLogger())

	reading, err := source.Fetch(context.Background(), surfreport.Spot{ID: "malibu"})
	require.NoError(t, err)
	require.Equal(t, 5.0, reading.WaveHeight)
	require.Zero(t, backup.calls)
}

func TestFallbackUsesBackupOnError(t *testing.T) {
	primary := &fakeSource{err: errors.New("quota exceeded")}
	backup := &fakeSource{reading: conditions.Reading{WaveHeight: 9}}
	source := NewFallbackSource(primary, backup, discardLogger())

	reading, err := source.Fetch(context.Background(), surfreport.Spot{ID: "malibu"})
	require.NoError(t, err)
	require.Equal(t, 9.0, reading.WaveHeight)
	require.Equal(t, 1, primary.calls)
	require.Equal(t, 1, backup.calls)
}

func TestFallbackPropagatesBackupError(t *testing.T) {
	primary := &fakeSource{err: errors.New("down")}
	backup := &fakeSource{err: errors.New("also down")}
	source := NewFallbackSource(primary, backup, discardLogger())

	_, err := source.Fetch(context.Background(), surfreport.Spot{ID: "malibu"})
	require.Error(t, err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
