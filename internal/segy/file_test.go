package segy

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhbaharuddin/seis2d/internal/testutil"
)

func TestOpenMissingPath(t *testing.T) {
	t.Parallel()

	_, err := Open(filepath.Join(t.TempDir(), "nope.sgy"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOpenStructuralFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("too short for headers", func(t *testing.T) {
		path := filepath.Join(dir, "short.sgy")
		require.NoError(t, os.WriteFile(path, make([]byte, 100), 0644))

		_, err := Open(path)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
	})

	t.Run("zero samples per trace", func(t *testing.T) {
		path := testutil.WriteSegy(t, dir, "zerosamples.sgy", testutil.SegySpec{Samples: 0})

		_, err := Open(path)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
	})

	t.Run("unsupported format code", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		path := testutil.WriteSegy(t, dir, "fmt.sgy", spec)

		// Corrupt the format code in place (value 4 is fixed-gain, unsupported).
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		data[3225-3201+3200+1] = 4
		data[3225-3201+3200] = 0
		require.NoError(t, os.WriteFile(path, data, 0644))

		_, err = Open(path)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
	})

	t.Run("trailing partial trace", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		path := testutil.WriteSegy(t, dir, "partial.sgy", spec)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0644))

		_, err = Open(path)
		var derr *DecodeError
		require.ErrorAs(t, err, &derr)
	})
}

func TestOpenGeometry(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(5, 8))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 5, f.TraceCount())
	assert.Equal(t, 8, f.SampleCount())
	assert.Equal(t, FormatFloat32, f.Format())
	assert.Equal(t, path, f.Path())
}

func TestSampleIntervalResolution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("trace header preferred", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		spec.IntervalMicros = 2000
		spec.TraceInterval = 500
		path := testutil.WriteSegy(t, dir, "trace.sgy", spec)

		f, err := Open(path)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, 500.0, f.SampleIntervalMicros())
	})

	t.Run("binary header fallback", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		spec.IntervalMicros = 2000
		spec.TraceInterval = 0
		path := testutil.WriteSegy(t, dir, "bin.sgy", spec)

		f, err := Open(path)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, 2000.0, f.SampleIntervalMicros())
	})

	t.Run("nothing recorded", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		spec.IntervalMicros = 0
		spec.TraceInterval = 0
		path := testutil.WriteSegy(t, dir, "none.sgy", spec)

		f, err := Open(path)
		require.NoError(t, err)
		defer f.Close()
		// Zero here; the line assembler owns the 1000 us default.
		assert.Equal(t, 0.0, f.SampleIntervalMicros())
	})
}

func TestReadAllSamples(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(3, 4))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	grid, err := f.ReadAllSamples()
	require.NoError(t, err)
	require.Len(t, grid, 3)
	for i, row := range grid {
		require.Len(t, row, 4)
		for s, v := range row {
			assert.Equal(t, float32(i*4+s), v, "trace %d sample %d", i, s)
		}
	}
}

func TestReadAllSamplesFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	values := []float32{-12, 0, 7, 100}

	for _, format := range []int{1, 2, 3, 5, 6, 8} {
		format := format
		t.Run(formatName(format), func(t *testing.T) {
			spec := testutil.SegySpec{
				Samples:        len(values),
				IntervalMicros: 1000,
				Format:         format,
				Traces:         []testutil.Trace{{Samples: values}},
			}
			path := testutil.WriteSegy(t, dir, formatName(format)+".sgy", spec)

			f, err := Open(path)
			require.NoError(t, err)
			defer f.Close()

			grid, err := f.ReadAllSamples()
			require.NoError(t, err)
			require.Len(t, grid, 1)
			for s, want := range values {
				assert.InDelta(t, want, grid[0][s], 1e-3, "sample %d", s)
			}
		})
	}
}

func TestReadAttribute(t *testing.T) {
	t.Parallel()

	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(4, 2))
	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	t.Run("four byte field", func(t *testing.T) {
		x, err := f.ReadAttribute(SourceX)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 3, 6, 9}, x)
	})

	t.Run("two byte field", func(t *testing.T) {
		scalars, err := f.ReadAttribute(SourceGroupScalar)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0, 0, 0}, scalars)
	})

	t.Run("negative values", func(t *testing.T) {
		spec := testutil.SimpleLine(1, 2)
		spec.Traces[0].Header[SourceGroupScalar] = -100
		spec.Traces[0].Header[SourceX] = -250
		negPath := testutil.WriteSegy(t, t.TempDir(), "neg.sgy", spec)

		nf, err := Open(negPath)
		require.NoError(t, err)
		defer nf.Close()

		scalars, err := nf.ReadAttribute(SourceGroupScalar)
		require.NoError(t, err)
		assert.Equal(t, []float64{-100}, scalars)

		x, err := nf.ReadAttribute(SourceX)
		require.NoError(t, err)
		assert.Equal(t, []float64{-250}, x)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := f.ReadAttribute(9999)
		assert.ErrorIs(t, err, ErrFieldNotFound)
	})
}

func TestTextHeaderRead(t *testing.T) {
	t.Parallel()

	spec := testutil.SimpleLine(1, 2)
	spec.Text = "C 1 CLIENT ACME"
	path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	text, err := f.TextHeader()
	require.NoError(t, err)
	assert.Contains(t, text, "C 1 CLIENT ACME")
}

func TestBinaryHeaderSummary(t *testing.T) {
	t.Parallel()

	t.Run("interval recorded", func(t *testing.T) {
		path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", testutil.SimpleLine(3, 4))
		f, err := Open(path)
		require.NoError(t, err)
		defer f.Close()

		summary := f.BinaryHeaderSummary()
		assert.Equal(t, 3, summary["Traces"])
		assert.Equal(t, 4, summary["Samples"])
		assert.Equal(t, FormatFloat32, summary["Format"])
		assert.Equal(t, 2000, summary["Interval"])
	})

	t.Run("zeroed fields omitted", func(t *testing.T) {
		spec := testutil.SimpleLine(2, 4)
		spec.IntervalMicros = 0
		path := testutil.WriteSegy(t, t.TempDir(), "line.sgy", spec)
		f, err := Open(path)
		require.NoError(t, err)
		defer f.Close()

		summary := f.BinaryHeaderSummary()
		_, ok := summary["Interval"]
		assert.False(t, ok)
		assert.Equal(t, 2, summary["Traces"])
	})
}
