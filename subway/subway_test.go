// SPDX-License-Identifier: MIT

package subway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metropath/subway"
)

func TestNewDistance(t *testing.T) {
	d, err := subway.NewDistance(7)
	require.NoError(t, err)
	assert.Equal(t, 7, d.Value())

	for _, v := range []int{0, -1, -100} {
		_, err = subway.NewDistance(v)
		assert.ErrorIs(t, err, subway.ErrInvalidDistance, "NewDistance(%d)", v)
	}
}

func TestDistance_Add(t *testing.T) {
	sum := subway.MustDistance(3).Add(subway.MustDistance(2))
	assert.Equal(t, 5, sum.Value())
}

func TestMustDistance_Panics(t *testing.T) {
	assert.Panics(t, func() { subway.MustDistance(0) })
}

func TestNewFare(t *testing.T) {
	f, err := subway.NewFare(0)
	require.NoError(t, err)
	assert.Equal(t, subway.ZeroFare, f)

	_, err = subway.NewFare(-1)
	assert.ErrorIs(t, err, subway.ErrInvalidFare)
}

func TestFare_AddMax(t *testing.T) {
	a, b := subway.MustFare(200), subway.MustFare(1000)
	assert.Equal(t, 1200, a.Add(b).Amount())
	assert.Equal(t, 1000, a.Max(b).Amount())
	assert.Equal(t, 1000, b.Max(a).Amount())
}

func TestStation_Equal(t *testing.T) {
	a := subway.NewStation(1, "강남역")
	same := subway.NewStation(1, "renamed")
	other := subway.NewStation(2, "양재역")

	assert.True(t, a.Equal(same))
	assert.False(t, a.Equal(other))
	assert.False(t, a.Equal(nil))

	var nilStation *subway.Station
	assert.True(t, nilStation.Equal(nil))
}

func TestLine_AddSection_Rejects(t *testing.T) {
	line := subway.NewLine("2호선", subway.ZeroFare)
	a := subway.NewStation(1, "A")

	_, err := line.AddSection(a, nil, subway.MustDistance(1))
	assert.ErrorIs(t, err, subway.ErrInvalidSection)

	_, err = line.AddSection(a, subway.NewStation(1, "A again"), subway.MustDistance(1))
	assert.ErrorIs(t, err, subway.ErrInvalidSection)

	_, err = line.AddSection(a, subway.NewStation(2, "B"), subway.Distance{})
	assert.ErrorIs(t, err, subway.ErrInvalidDistance)

	assert.Equal(t, 0, line.SectionCount())
}

func TestSection_BackReference(t *testing.T) {
	line := subway.NewLine("3호선", subway.MustFare(200))
	s, err := line.AddSection(subway.NewStation(1, "A"), subway.NewStation(2, "B"), subway.MustDistance(3))
	require.NoError(t, err)

	assert.Same(t, line, s.Line())
	assert.Equal(t, int64(1), s.Up().ID())
	assert.Equal(t, int64(2), s.Down().ID())
	assert.Equal(t, 3, s.Distance().Value())
}

func sectionPairs(line *subway.Line) [][2]int64 {
	var out [][2]int64
	for s := range line.Sections() {
		out = append(out, [2]int64{s.Up().ID(), s.Down().ID()})
	}

	return out
}

func TestLine_Sections_ChainOrder(t *testing.T) {
	a, b, c, d := subway.NewStation(1, "A"), subway.NewStation(2, "B"), subway.NewStation(3, "C"), subway.NewStation(4, "D")
	line := subway.NewLine("L", subway.ZeroFare)

	// Stored out of order: C-D, A-B, B-C.
	_, _ = line.AddSection(c, d, subway.MustDistance(1))
	_, _ = line.AddSection(a, b, subway.MustDistance(1))
	_, _ = line.AddSection(b, c, subway.MustDistance(1))

	assert.Equal(t, [][2]int64{{1, 2}, {2, 3}, {3, 4}}, sectionPairs(line))
}

func TestLine_Sections_FallbackToStorageOrder(t *testing.T) {
	a, b, c := subway.NewStation(1, "A"), subway.NewStation(2, "B"), subway.NewStation(3, "C")
	line := subway.NewLine("Y", subway.ZeroFare)

	// Branching: A-B and A-C share the same up station.
	_, _ = line.AddSection(a, b, subway.MustDistance(1))
	_, _ = line.AddSection(a, c, subway.MustDistance(1))

	assert.Equal(t, [][2]int64{{1, 2}, {1, 3}}, sectionPairs(line))
}

func TestLine_Sections_EarlyBreak(t *testing.T) {
	line := subway.NewLine("L", subway.ZeroFare)
	_, _ = line.AddSection(subway.NewStation(1, "A"), subway.NewStation(2, "B"), subway.MustDistance(1))
	_, _ = line.AddSection(subway.NewStation(2, "B"), subway.NewStation(3, "C"), subway.MustDistance(1))

	count := 0
	for range line.Sections() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRiderContext(t *testing.T) {
	rider, err := subway.AuthenticatedAge(22)
	require.NoError(t, err)

	auth, ok := rider.(subway.Authenticated)
	require.True(t, ok)
	assert.Equal(t, 22, auth.Member.Age())

	_, err = subway.AuthenticatedAge(-3)
	assert.ErrorIs(t, err, subway.ErrInvalidAge)

	var anon subway.RiderContext = subway.Anonymous{}
	_, isAuth := anon.(subway.Authenticated)
	assert.False(t, isAuth)
}
