// SPDX-License-Identifier: MIT

package pathfinder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/internal/testnet"
	"github.com/katalvlaran/metropath/pathfinder"
	"github.com/katalvlaran/metropath/subway"
)

func lineNames(lines []*subway.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Name()
	}

	return out
}

func TestFind_GangnamToYangjae(t *testing.T) {
	net := builder.Build(testnet.New().Lines())

	path, err := pathfinder.Find(net, testnet.Gangnam, testnet.Yangjae)
	require.NoError(t, err)

	assert.Equal(t, []int64{testnet.Gangnam, testnet.Yangjae}, path.StationIDs())
	assert.Equal(t, 10, path.Distance.Value())
	assert.Equal(t, []string{"신분당선"}, lineNames(path.Lines))
}

func TestFind_GangnamToNambu(t *testing.T) {
	net := builder.Build(testnet.New().Lines())

	path, err := pathfinder.Find(net, testnet.Gangnam, testnet.Nambu)
	require.NoError(t, err)

	assert.Equal(t, []int64{testnet.Gangnam, testnet.Gyodae, testnet.Nambu}, path.StationIDs())
	assert.Equal(t, 8, path.Distance.Value())
	assert.Equal(t, []string{"이호선", "삼호선"}, lineNames(path.Lines))
}

func TestFind_Reverse(t *testing.T) {
	net := builder.Build(testnet.New().Lines())

	path, err := pathfinder.Find(net, testnet.Nambu, testnet.Gangnam)
	require.NoError(t, err)
	assert.Equal(t, []int64{testnet.Nambu, testnet.Gyodae, testnet.Gangnam}, path.StationIDs())
	assert.Equal(t, 8, path.Distance.Value())
}

func TestFind_SameStation(t *testing.T) {
	net := builder.Build(testnet.New().Lines())
	_, err := pathfinder.Find(net, testnet.Gangnam, testnet.Gangnam)
	assert.ErrorIs(t, err, pathfinder.ErrSameStation)
}

func TestFind_UnknownStation(t *testing.T) {
	net := builder.Build(testnet.New().Lines())

	_, err := pathfinder.Find(net, testnet.Isolated, testnet.Gangnam)
	assert.ErrorIs(t, err, pathfinder.ErrUnknownStation)

	_, err = pathfinder.Find(net, testnet.Gangnam, 12345)
	assert.ErrorIs(t, err, pathfinder.ErrUnknownStation)
}

func TestFind_EmptyNetwork(t *testing.T) {
	_, err := pathfinder.Find(builder.Build(nil), testnet.Gangnam, testnet.Yangjae)
	assert.ErrorIs(t, err, pathfinder.ErrUnknownStation)
}

func TestFind_NoPath(t *testing.T) {
	fx := testnet.New()
	island := subway.NewLine("섬선", subway.ZeroFare)
	_, err := island.AddSection(subway.NewStation(50, "X"), subway.NewStation(51, "Y"), subway.MustDistance(1))
	require.NoError(t, err)

	net := builder.Build(append(fx.Lines(), island))
	_, err = pathfinder.Find(net, testnet.Gangnam, 51)
	assert.ErrorIs(t, err, pathfinder.ErrNoPath)
}

// A cheaper parallel section on another line must win and be the line reported.
func TestFind_ParallelSectionAttribution(t *testing.T) {
	a, b := subway.NewStation(1, "A"), subway.NewStation(2, "B")
	express := subway.NewLine("express", subway.MustFare(900))
	local := subway.NewLine("local", subway.ZeroFare)
	_, _ = local.AddSection(a, b, subway.MustDistance(6))
	_, _ = express.AddSection(b, a, subway.MustDistance(4))

	path, err := pathfinder.Find(builder.Build([]*subway.Line{local, express}), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, path.Distance.Value())
	assert.Equal(t, []string{"express"}, lineNames(path.Lines))
}

// Equal-distance alternatives: the result must not change between runs.
func TestFind_DeterministicTie(t *testing.T) {
	a, b, c, d := subway.NewStation(1, "A"), subway.NewStation(2, "B"), subway.NewStation(3, "C"), subway.NewStation(4, "D")
	upper := subway.NewLine("upper", subway.ZeroFare)
	lower := subway.NewLine("lower", subway.ZeroFare)
	_, _ = upper.AddSection(a, b, subway.MustDistance(2))
	_, _ = upper.AddSection(b, d, subway.MustDistance(2))
	_, _ = lower.AddSection(a, c, subway.MustDistance(2))
	_, _ = lower.AddSection(c, d, subway.MustDistance(2))
	lines := []*subway.Line{upper, lower}

	first, err := pathfinder.Find(builder.Build(lines), 1, 4)
	require.NoError(t, err)
	for i := 0; i < 25; i++ {
		again, err := pathfinder.Find(builder.Build(lines), 1, 4)
		require.NoError(t, err)
		require.Equal(t, first.StationIDs(), again.StationIDs(), "run %d", i)
	}
	assert.Equal(t, []int64{1, 2, 4}, first.StationIDs())
}

// On a random chain the path must visit every station in order.
func TestFind_LongChain(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	line := subway.NewLine("chain", subway.ZeroFare)
	prev := subway.NewStation(0, "S0")
	want := 0
	for i := int64(1); i <= 30; i++ {
		next := subway.NewStation(i, "S")
		d := 1 + r.Intn(9)
		want += d
		_, err := line.AddSection(prev, next, subway.MustDistance(d))
		require.NoError(t, err)
		prev = next
	}

	path, err := pathfinder.Find(builder.Build([]*subway.Line{line}), 30, 0)
	require.NoError(t, err)
	assert.Len(t, path.Stations, 31)
	assert.Equal(t, want, path.Distance.Value())
}
