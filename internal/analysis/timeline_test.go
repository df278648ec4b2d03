package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimelines(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Timelines(context.Background(), TimelinesRequest{
		VehicleIDs: []string{"ev-a", "pet-a", "ghost"},
		State:      "Mid",
		DailyKm:    100,
		Months:     24,
	})
	require.NoError(t, err)

	require.Len(t, got.Timelines, 2)
	assert.Equal(t, "ev-a", got.Timelines[0].Vehicle.ID)
	assert.Len(t, got.Timelines[0].Timeline, 25)
	assert.Equal(t, int64(8000), got.Timelines[0].Timeline[0].CumulativeKg)
	assert.Equal(t, int64(5000), got.Timelines[1].Timeline[0].CumulativeKg)
	assert.Equal(t, 24, got.Months)
	require.Len(t, got.Skipped, 1)

	require.Len(t, got.Crossovers, 1)
	assert.Equal(t, "ev-a", got.Crossovers[0].EVID)
	assert.Equal(t, "pet-a", got.Crossovers[0].ICEID)
	require.NotNil(t, got.Crossovers[0].Month)
	assert.Equal(t, 20, *got.Crossovers[0].Month)
}

func TestTimelines_NoCrossoverWithinHorizon(t *testing.T) {
	svc := newTestService(t)

	got, err := svc.Timelines(context.Background(), TimelinesRequest{
		VehicleIDs: []string{"ev-a", "pet-a"},
		State:      "Mid",
		DailyKm:    100,
		Months:     12,
	})
	require.NoError(t, err)
	require.Len(t, got.Crossovers, 1)
	assert.Nil(t, got.Crossovers[0].Month)
}

func TestTimelines_DefaultsAndValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	got, err := svc.Timelines(ctx, TimelinesRequest{VehicleIDs: []string{"pet-a"}})
	require.NoError(t, err)
	assert.Equal(t, testDefaults.TimelineMonths, got.Months)
	assert.Len(t, got.Timelines[0].Timeline, testDefaults.TimelineMonths+1)
	assert.Empty(t, got.Crossovers)

	_, err = svc.Timelines(ctx, TimelinesRequest{})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Timelines(ctx, TimelinesRequest{VehicleIDs: []string{"pet-a"}, Months: -1})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestTimelines_GridImprovementHelpsElectric(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	static, err := svc.Timelines(ctx, TimelinesRequest{VehicleIDs: []string{"ev-a"}, State: "Mid", Months: 60})
	require.NoError(t, err)
	improving, err := svc.Timelines(ctx, TimelinesRequest{
		VehicleIDs: []string{"ev-a"}, State: "Mid", Months: 60, GridImprovementRate: 0.05,
	})
	require.NoError(t, err)

	last := len(static.Timelines[0].Timeline) - 1
	assert.Less(t,
		improving.Timelines[0].Timeline[last].CumulativeKg,
		static.Timelines[0].Timeline[last].CumulativeKg)
}
