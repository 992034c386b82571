package transform

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const moved = "translate(394px, 884px) rotate(16135.3deg) scale(10.8593, 8.4758)"

func TestParse(t *testing.T) {
	assert.Equal(t, map[string][]float64{
		"translate": {394, 884},
		"rotate":    {16135.3},
		"scale":     {10.8593, 8.4758},
	}, Parse(moved))

	assert.Equal(t, map[string][]float64{
		"translateX": {50},
		"skew":       {45, 30},
	}, Parse("translateX(50px) skew(45deg, 30deg)"))

	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("none"))
}

func TestParse_InvalidBecomesSentinel(t *testing.T) {
	assert.Equal(t, []float64{Invalid, 2}, Parse("scale(invalid, 2)")["scale"])
	assert.Equal(t, []float64{-12.5, Invalid}, Parse("translate(-12.5%, )")["translate"])
}

func TestParse_LastOccurrenceWins(t *testing.T) {
	assert.Equal(t, []float64{3}, Parse("rotate(1deg) rotate(3deg)")["rotate"])
}

func TestGet(t *testing.T) {
	args, ok := Get(moved, "translate")
	require.True(t, ok)
	assert.Equal(t, []float64{394, 884}, args)

	args, ok = Get(moved, "rotate")
	require.True(t, ok)
	assert.Equal(t, []float64{16135.3}, args)

	_, ok = Get(moved, "skew")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name   string
		fn     string
		values []*float64
		want   string
	}{
		{
			name:   "first argument only",
			fn:     "translate",
			values: []*float64{Value(500), nil},
			want:   "translate(500px, 884px) rotate(16135.3deg) scale(10.8593, 8.4758)",
		},
		{
			name:   "both scale arguments",
			fn:     "scale",
			values: Values(15.5, 12.3),
			want:   "translate(394px, 884px) rotate(16135.3deg) scale(15.5, 12.3)",
		},
		{
			name:   "rotation keeps unit",
			fn:     "rotate",
			values: Values(45),
			want:   "translate(394px, 884px) rotate(45deg) scale(10.8593, 8.4758)",
		},
		{
			name:   "missing values keep the rest",
			fn:     "translate",
			values: Values(100),
			want:   "translate(100px, 884px) rotate(16135.3deg) scale(10.8593, 8.4758)",
		},
		{
			name:   "extra values ignored",
			fn:     "rotate",
			values: Values(-90, 1, 2),
			want:   "translate(394px, 884px) rotate(-90deg) scale(10.8593, 8.4758)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Set(moved, tt.fn, tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSet_OnlyFirstOccurrence(t *testing.T) {
	got, err := Set("rotate(1deg) rotate(3deg)", "rotate", Values(10))
	require.NoError(t, err)
	assert.Equal(t, "rotate(10deg) rotate(3deg)", got)
}

func TestSet_NotFound(t *testing.T) {
	_, err := Set(moved, "skew", Values(45))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "skew", nf.Name)
	assert.Equal(t, "element 'skew' not found in transform string", err.Error())

	// Часть имени другой функции не считается вхождением.
	_, err = Set("translateX(5px)", "X", Values(1))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSet_RoundTrip(t *testing.T) {
	inputs := []string{
		moved,
		"scale(2,3)",
		"translate(1px,2px)   scale( 0.5 , 0.25 )",
	}
	normalize := func(s string) string { return strings.Join(strings.Fields(s), "") }

	for _, in := range inputs {
		args, ok := Get(in, "scale")
		require.True(t, ok, in)

		out, err := Set(in, "scale", Values(args[0], args[1]))
		require.NoError(t, err)
		assert.Equal(t, normalize(in), normalize(out))
	}
}

func TestUniformScale(t *testing.T) {
	got, err := UniformScale("translate(10px, 20px) scale(1.5, 2.25)")
	require.NoError(t, err)
	assert.Equal(t, "translate(10px, 20px) scale(2.25, 2.25)", got)

	got, err = UniformScale("scale(3)")
	require.NoError(t, err)
	assert.Equal(t, "scale(3)", got)

	_, err = UniformScale("translate(10px, 20px)")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{
		0:        "0",
		10:       "10",
		0.5:      "0.5",
		-1.25:    "-1.25",
		1e-6:     "0.000001",
		1e-7:     "1e-7",
		-2.5e-8:  "-2.5e-8",
		1e21:     "1e+21",
		1.5e100:  "1.5e+100",
		1.23e-15: "1.23e-15",
	}
	for v, want := range tests {
		assert.Equal(t, want, formatNumber(v), "%v", v)
	}
}

func TestSet_TinyValueKeepsUnit(t *testing.T) {
	got, err := Set("translate(1px, 2px) scale(1, 1)", "translate", Values(1e-7))
	require.NoError(t, err)
	assert.Equal(t, "translate(1e-7px, 2px) scale(1, 1)", got)
}
