package seismic

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhbaharuddin/seis2d/internal/segy"
	"github.com/mhbaharuddin/seis2d/internal/testutil"
)

func TestLoadLineMissingPath(t *testing.T) {
	t.Parallel()

	_, err := LoadLine(filepath.Join(t.TempDir(), "missing.sgy"), DefaultFieldConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadLineShapeInvariants(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(6, 10))
	line, err := LoadLine(path, DefaultFieldConfig())
	require.NoError(t, err)

	meta := line.Metadata
	assert.Equal(t, 6, meta.TraceCount)
	assert.Equal(t, 10, meta.SampleCount)

	assert.Len(t, line.Samples, meta.TraceCount)
	for _, trace := range line.Samples {
		assert.Len(t, trace, meta.SampleCount)
	}
	assert.Len(t, line.TimesMS, meta.SampleCount)
	assert.Len(t, line.Distance, meta.TraceCount)
	assert.Len(t, line.X, meta.TraceCount)
	assert.Len(t, line.Y, meta.TraceCount)
	assert.Len(t, line.CDP, meta.TraceCount)

	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "line", meta.Name)
	assert.Equal(t, path, meta.Path)
	assert.Equal(t, "SourceX", meta.XField)
	assert.Equal(t, "SourceY", meta.YField)
	assert.Equal(t, "CDP", meta.CDPField)
	assert.Equal(t, "SourceGroupScalar", meta.ScalarField)
	assert.Equal(t, "ms", meta.SampleUnits)
}

func TestLoadLineTimeAxis(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(2, 5)
	spec.IntervalMicros = 2000
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	line, err := LoadLine(path, DefaultFieldConfig())
	require.NoError(t, err)

	// Strictly increasing from 0 with constant step interval/1000 ms.
	assert.Equal(t, 2000.0, line.Metadata.SampleIntervalMicros)
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, line.TimesMS)
}

func TestLoadLineDefaultInterval(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(2, 3)
	spec.IntervalMicros = 0
	spec.TraceInterval = 0
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	line, err := LoadLine(path, DefaultFieldConfig())
	require.NoError(t, err)

	// A file recording no interval falls back to 1000 us (1 ms steps).
	assert.Equal(t, DefaultSampleIntervalMicros, line.Metadata.SampleIntervalMicros)
	assert.Equal(t, []float64{0, 1, 2}, line.TimesMS)
}

func TestLoadLineGeometry(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(4, 2))
	line, err := LoadLine(path, DefaultFieldConfig())
	require.NoError(t, err)

	// SimpleLine puts traces on a 3-4-5 diagonal with zero scalars.
	assert.Equal(t, []float64{0, 3, 6, 9}, line.X)
	assert.Equal(t, []float64{0, 4, 8, 12}, line.Y)
	assert.InDeltaSlice(t, []float64{0, 5, 10, 15}, line.Distance, 1e-12)
	assert.Equal(t, []float64{100, 101, 102, 103}, line.CDP)
}

func TestLoadLineScalarScaling(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(3, 2)
	for i := range spec.Traces {
		spec.Traces[i].Header[segy.SourceX] = 1000
		spec.Traces[i].Header[segy.SourceY] = 2000
	}
	spec.Traces[0].Header[segy.SourceGroupScalar] = 0
	spec.Traces[1].Header[segy.SourceGroupScalar] = 100
	spec.Traces[2].Header[segy.SourceGroupScalar] = -100
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	line, err := LoadLine(path, DefaultFieldConfig())
	require.NoError(t, err)

	assert.Equal(t, []float64{1000, 10, 100000}, line.X)
	assert.Equal(t, []float64{2000, 20, 200000}, line.Y)
}

func TestLoadLineAdjustments(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(1, 2)
	spec.Traces[0].Header[segy.SourceX] = 1000
	spec.Traces[0].Header[segy.SourceY] = 500
	spec.Traces[0].Header[segy.SourceGroupScalar] = 100
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	cfg := DefaultFieldConfig()
	override := 2.0
	cfg.ScalarOverride = &override
	cfg.XOffset = 1
	cfg.YOffset = -1

	line, err := LoadLine(path, cfg)
	require.NoError(t, err)

	// Scalar first, then override, then offset.
	assert.Equal(t, []float64{21}, line.X) // 1000/100*2 + 1
	assert.Equal(t, []float64{9}, line.Y)  // 500/100*2 - 1

	require.NotNil(t, line.Metadata.ScalarOverride)
	assert.Equal(t, 2.0, *line.Metadata.ScalarOverride)
	assert.Equal(t, 1.0, line.Metadata.XOffset)
	assert.Equal(t, -1.0, line.Metadata.YOffset)
}

func TestLoadLineNoScalarField(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(2, 2)
	for i := range spec.Traces {
		spec.Traces[i].Header[segy.SourceGroupScalar] = 100 // would divide if configured
	}
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	cfg := DefaultFieldConfig()
	cfg.ScalarField = nil

	line, err := LoadLine(path, cfg)
	require.NoError(t, err)

	// No scalar field configured: raw values pass through.
	assert.Equal(t, []float64{0, 3}, line.X)
	assert.Empty(t, line.Metadata.ScalarField)
}

func TestLoadLineSynthesizedCDP(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(5, 2))

	t.Run("nil cdp field", func(t *testing.T) {
		cfg := DefaultFieldConfig()
		cfg.CDPField = nil

		line, err := LoadLine(path, cfg)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2, 3, 4}, line.CDP)
		assert.Empty(t, line.Metadata.CDPField)
	})

	t.Run("unknown cdp field", func(t *testing.T) {
		cfg := DefaultFieldConfig()
		unknown := 9999
		cfg.CDPField = &unknown

		line, err := LoadLine(path, cfg)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2, 3, 4}, line.CDP)
	})
}

func TestLoadLineUnknownCoordinateFields(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(3, 2))

	cfg := DefaultFieldConfig()
	cfg.XField = 9999

	line, err := LoadLine(path, cfg)
	require.NoError(t, err)

	// Absent fields are recoverable: zeros substituted.
	assert.Equal(t, []float64{0, 0, 0}, line.X)
	assert.Equal(t, "9999", line.Metadata.XField)
}

func TestLoadLineDeterministic(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(4, 6))
	cfg := DefaultFieldConfig()

	a, err := LoadLine(path, cfg)
	require.NoError(t, err)
	b, err := LoadLine(path, cfg)
	require.NoError(t, err)

	// IDs are per-load; everything else must match exactly.
	a.Metadata.ID = ""
	b.Metadata.ID = ""
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("repeated load differs (-first +second):\n%s", diff)
	}
}

func TestLoadMany(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	dirC := t.TempDir()

	// Two distinct files share the stem "a".
	p1 := testutil.WriteSegy(t, dirA, "a.sgy", testutil.SimpleLine(2, 2))
	p2 := testutil.WriteSegy(t, dirB, "a.sgy", testutil.SimpleLine(3, 2))
	p3 := testutil.WriteSegy(t, dirC, "b.sgy", testutil.SimpleLine(4, 2))

	lines, failures := LoadMany([]string{p1, p2, p3}, DefaultFieldConfig())
	require.Empty(t, failures)
	require.Len(t, lines, 3)

	assert.Contains(t, lines, "a")
	assert.Contains(t, lines, "a_2")
	assert.Contains(t, lines, "b")

	// The final chosen name is recorded back into the metadata.
	assert.Equal(t, "a_2", lines["a_2"].Metadata.Name)
	assert.Equal(t, 2, lines["a"].Metadata.TraceCount)
	assert.Equal(t, 3, lines["a_2"].Metadata.TraceCount)
}

func TestLoadManyCollectsFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := testutil.WriteSegy(t, dir, "good.sgy", testutil.SimpleLine(2, 2))
	missing := filepath.Join(dir, "missing.sgy")

	lines, failures := LoadMany([]string{good, missing}, DefaultFieldConfig())

	require.Len(t, lines, 1)
	assert.Contains(t, lines, "good")

	require.Len(t, failures, 1)
	assert.Equal(t, missing, failures[0].Path)
	assert.True(t, errors.Is(failures[0], fs.ErrNotExist))
}

func TestUniqueName(t *testing.T) {
	t.Parallel()

	lines := map[string]*Line{
		"a":   nil,
		"a_2": nil,
	}
	assert.Equal(t, "a_3", uniqueName(lines, "a"))
	assert.Equal(t, "fresh", uniqueName(lines, "fresh"))
}
