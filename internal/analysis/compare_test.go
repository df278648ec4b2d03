package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Compare(context.Background(), CompareRequest{
		VehicleIDs: []string{"ev-a", "pet-a", "missing", "cng-b"},
		Usage:      midUsage(),
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(got.Results))
	for _, r := range got.Results {
		ids = append(ids, r.Vehicle.ID)
		assert.Len(t, r.Timeline, 13, "timeline spans years*12 months plus month 0")
	}
	assert.Equal(t, []string{"cng-b", "pet-a", "ev-a"}, ids)
	assert.Equal(t, []Skipped{{VehicleID: "missing", Reason: "vehicle not found: missing"}}, got.Skipped)

	require.Len(t, got.Breakeven, 2)
	vsCNG := got.Breakeven[0]
	assert.Equal(t, "ev-a", vsCNG.EVID)
	assert.Equal(t, "Volta Spark", vsCNG.EV)
	assert.Equal(t, "cng-b", vsCNG.ICEID)
	assert.Equal(t, "Beta Gas", vsCNG.ICE)
	require.True(t, vsCNG.Result.WillBreakeven)
	assert.Equal(t, int64(80000), *vsCNG.Result.BreakevenKm)

	vsPetrol := got.Breakeven[1]
	assert.Equal(t, "pet-a", vsPetrol.ICEID)
	require.True(t, vsPetrol.Result.WillBreakeven)
	assert.Equal(t, int64(60000), *vsPetrol.Result.BreakevenKm)
}

func TestCompare_SkipsUnevaluable(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Compare(context.Background(), CompareRequest{
		VehicleIDs: []string{"bad", "pet-a"},
		Usage:      midUsage(),
	})
	require.NoError(t, err)
	require.Len(t, got.Results, 1)
	require.Len(t, got.Skipped, 1)
	assert.Equal(t, "bad", got.Skipped[0].VehicleID)
	assert.Empty(t, got.Breakeven)
}

func TestCompare_NoElectricMeansNoBreakeven(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Compare(context.Background(), CompareRequest{
		VehicleIDs: []string{"pet-a", "die-c"},
		Usage:      midUsage(),
	})
	require.NoError(t, err)
	assert.NotNil(t, got.Breakeven)
	assert.Empty(t, got.Breakeven)
}

func TestCompare_VehicleCount(t *testing.T) {
	svc := newTestService(t)

	for _, ids := range [][]string{
		{"pet-a"},
		{"pet-a", "pet-b", "cng-b", "cng-b2", "die-c"},
	} {
		_, err := svc.Compare(context.Background(), CompareRequest{VehicleIDs: ids})
		require.ErrorIs(t, err, ErrInvalidRequest)
	}
}
