package heightmap_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbasin/heightmap"
)

const sample = `
	2199943210
	3987894921
	9856789892
	8767896789
	9899965678
`

//----------------------------------------------------------------------------//
// Parse / Read Tests
//----------------------------------------------------------------------------//

// TestParse_Sample checks dimensions and a few corner heights of the 5×10 sample.
func TestParse_Sample(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	require.Equal(t, 10, g.Width())
	require.Equal(t, 5, g.Height())
	require.Equal(t, 50, g.Len())

	assert.Equal(t, 2, g.At(heightmap.Point{Row: 0, Col: 0}))
	assert.Equal(t, 0, g.At(heightmap.Point{Row: 0, Col: 9}))
	assert.Equal(t, 9, g.At(heightmap.Point{Row: 4, Col: 0}))
	assert.Equal(t, 8, g.At(heightmap.Point{Row: 4, Col: 9}))
}

// TestParse_SkipsBlankAndTrims verifies blank lines vanish and whitespace is trimmed.
func TestParse_SkipsBlankAndTrims(t *testing.T) {
	g, err := heightmap.Parse("\n\n  12 \n\t\n34\t\r\n\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Rows())
}

// TestParse_Errors covers malformed and structurally invalid inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", heightmap.ErrEmptyGrid},
		{"OnlyBlank", "\n  \n\t\n", heightmap.ErrEmptyGrid},
		{"Letter", "123\n1a3\n", heightmap.ErrInvalidDigit},
		{"Sign", "-12\n", heightmap.ErrInvalidDigit},
		{"InnerSpace", "1 2\n", heightmap.ErrInvalidDigit},
		{"Jagged", "123\n12\n", heightmap.ErrNonRectangular},
		{"JaggedLonger", "12\n123\n", heightmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := heightmap.Parse(tc.text)
			require.Nil(t, g)
			require.True(t, errors.Is(err, tc.err), "got %v; want %v", err, tc.err)
		})
	}
}

// TestParse_ErrorPosition verifies the reported line and column are 1-based
// and count skipped blank lines.
func TestParse_ErrorPosition(t *testing.T) {
	_, err := heightmap.Parse("12\n\n3x\n")
	require.ErrorIs(t, err, heightmap.ErrInvalidDigit)
	assert.Contains(t, err.Error(), "line 3, column 2")
	assert.Contains(t, err.Error(), `'x'`)
}

// TestParse_ErrorColumnCountsIndent checks columns are measured on the raw
// line, so trimmed leading whitespace still counts.
func TestParse_ErrorColumnCountsIndent(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"Spaces", "12\n  3x\n", "line 2, column 4"},
		{"Tab", "\t1y\n", "line 1, column 3"},
		{"NoIndent", "1z\n", "line 1, column 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightmap.Parse(tc.text)
			require.ErrorIs(t, err, heightmap.ErrInvalidDigit)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

// TestParse_WideRows accepts rows longer than bufio's default 64 KiB token.
func TestParse_WideRows(t *testing.T) {
	const width = 70000
	row := strings.Repeat("1", width)
	g, err := heightmap.Parse(row + "\n" + row + "\n")
	require.NoError(t, err)
	assert.Equal(t, width, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 1, g.At(heightmap.Point{Row: 1, Col: width - 1}))
}

// TestRead_MatchesParse ensures both entry points agree.
func TestRead_MatchesParse(t *testing.T) {
	a, err := heightmap.Parse(sample)
	require.NoError(t, err)
	b, err := heightmap.Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, a.Rows(), b.Rows())
	assert.Equal(t, a.String(), b.String())
}

//----------------------------------------------------------------------------//
// New Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies New rejects empty, ragged and out-of-range inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, heightmap.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, heightmap.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, heightmap.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, heightmap.ErrHeightRange},
		{"TooHigh", [][]int{{10}}, heightmap.ErrHeightRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := heightmap.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures the grid is not affected by later writes to the input
// and that Rows hands out a copy.
func TestNew_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := heightmap.New(in)
	require.NoError(t, err)

	in[0][0] = 9
	assert.Equal(t, 1, g.At(heightmap.Point{}))

	rows := g.Rows()
	rows[1][1] = 0
	assert.Equal(t, 4, g.At(heightmap.Point{Row: 1, Col: 1}))
}

//----------------------------------------------------------------------------//
// Geometry Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := heightmap.New([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, p := range []heightmap.Point{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []heightmap.Point{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
	assert.Panics(t, func() { g.At(heightmap.Point{Row: 2}) })
}

// TestIndexRoundTrip checks Index and Point are inverse.
func TestIndexRoundTrip(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		require.Equal(t, i, g.Index(g.Point(i)))
	}
	assert.Equal(t, heightmap.Point{Row: 1, Col: 3}, g.Point(13))
}

// TestNeighbors covers corners, edges, interior and a single cell.
func TestNeighbors(t *testing.T) {
	g, err := heightmap.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)

	cases := []struct {
		name string
		p    heightmap.Point
		want []heightmap.Point
	}{
		{"TopLeft", heightmap.Point{0, 0}, []heightmap.Point{{1, 0}, {0, 1}}},
		{"TopEdge", heightmap.Point{0, 1}, []heightmap.Point{{1, 1}, {0, 0}, {0, 2}}},
		{"Center", heightmap.Point{1, 1}, []heightmap.Point{{0, 1}, {2, 1}, {1, 0}, {1, 2}}},
		{"BottomRight", heightmap.Point{2, 2}, []heightmap.Point{{1, 2}, {2, 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.Neighbors(nil, tc.p))
		})
	}

	one, err := heightmap.New([][]int{{5}})
	require.NoError(t, err)
	assert.Empty(t, one.Neighbors(nil, heightmap.Point{}))
}

// TestCountHeightAndBoundary checks boundary helpers.
func TestCountHeightAndBoundary(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, 15, g.CountHeight(heightmap.Boundary))
	assert.True(t, g.IsBoundary(heightmap.Point{Row: 0, Col: 2}))
	assert.False(t, g.IsBoundary(heightmap.Point{Row: 0, Col: 0}))
	assert.Equal(t, heightmap.Cell{Point: heightmap.Point{Row: 0, Col: 1}, Height: 1},
		g.Cell(heightmap.Point{Row: 0, Col: 1}))
}

// TestString renders the parsed text back.
func TestString(t *testing.T) {
	g, err := heightmap.Parse("01\n23\n")
	require.NoError(t, err)
	assert.Equal(t, "01\n23", g.String())
}
