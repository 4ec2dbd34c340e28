package hac

import (
	"bytes"
	"log/slog"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.CrossCheck)
	assert.Equal(t, 1000, cfg.WarnPoints)
	assert.NotNil(t, cfg.Logger)
}

func TestConfigValidation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WarnPoints = -1

	_, err := Cluster(nil, cfg)
	assert.Error(t, err)
	_, err = ClusterPoints(pointsXY(), cfg)
	assert.Error(t, err)
}

func TestCluster_ZeroValueConfig(t *testing.T) {
	result, err := Cluster([]Series{seriesNewestFirst("A", 100, 9, 0)}, Config{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Points.Len())
	assert.Empty(t, result.Linkage)
}

func TestCluster_DropsUnusableSeries(t *testing.T) {
	series := []Series{
		seriesNewestFirst("A", 100, 9, 0),                // (1,1)
		seriesNewestFirst("Zero", 0, 0, 0),               // peak 0
		seriesNewestFirst("B", 1000, 500, 90, 80, 10, 0), // (2,2)
		seriesNewestFirst("NoOnePercent", 100, 60, 40, 9, 3),
		seriesNewestFirst("C", 1000, 500, 500, 500, 500, 500, 500, 500, 500, 500, 5), // (10,0)
	}

	result, err := Cluster(series, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, result.Points.Labels())
	assert.Equal(t, []string{"Zero", "NoOnePercent"}, result.Dropped)
	require.Len(t, result.Linkage, 2)
	for _, mg := range result.Linkage {
		assert.Less(t, mg.Left, 5)
		assert.Less(t, mg.Right, 5)
	}
	assert.Equal(t, Merge{Left: 0, Right: 1, Distance: Euclidean(Point{X: 1, Y: 1}, Point{X: 2, Y: 2}), Size: 2}, result.Linkage[0])
	assert.Equal(t, 3, result.Linkage[1].Size)
}

func TestCluster_AllDropped(t *testing.T) {
	result, err := Cluster([]Series{seriesNewestFirst("Zero", 0, 0)}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Points.Len())
	assert.Empty(t, result.Linkage)
	assert.Equal(t, []string{"Zero"}, result.Dropped)
}

func TestCluster_CrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := DefaultConfig()
	cfg.CrossCheck = true
	for _, m := range []int{0, 1, 2, 3, 10, 40} {
		_, err := ClusterPoints(randomPoints(rng, m, 8), cfg)
		assert.NoError(t, err, "m=%d", m)
	}
}

func TestCrossCheck_DetectsMismatch(t *testing.T) {
	idx := NewDistanceIndex(pointsXY([2]int{0, 0}, [2]int{1, 0}, [2]int{10, 0}))
	bogus := Linkage{
		{Left: 0, Right: 1, Distance: 1, Size: 2},
		{Left: 2, Right: 3, Distance: 10, Size: 3},
	}
	assert.ErrorIs(t, crossCheck(idx, bogus), ErrCrossCheck)

	malformed := Linkage{{Left: 0, Right: 1, Distance: 1, Size: 9}}
	err := crossCheck(idx, malformed)
	assert.ErrorIs(t, err, ErrCrossCheck)
	assert.ErrorIs(t, err, ErrMalformedLinkage)
}

func TestCluster_Logging(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg.WarnPoints = 1

	_, err := Cluster([]Series{
		seriesNewestFirst("A", 100, 9, 0),
		seriesNewestFirst("Zero", 0, 0),
		seriesNewestFirst("B", 1000, 500, 90, 80, 10, 0),
	}, cfg)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "series dropped")
	assert.Contains(t, out, "series=Zero")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "msg=merge")
	assert.Equal(t, 1, strings.Count(out, "clustering complete"))
}
