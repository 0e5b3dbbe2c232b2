package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAvailableRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)

	_, err := svc.IsAvailable(context.Background(), "villa-1", day(15), day(10), "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.IsAvailable(context.Background(), "villa-1", day(10), day(10), "")
	require.ErrorAs(t, err, &verr)
}

func TestIsAvailableIgnoresCancelled(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()

	b := mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	available, err := svc.IsAvailable(ctx, "villa-1", day(12), day(14), "")
	require.NoError(t, err)
	assert.False(t, available)

	require.NoError(t, svc.CancelBooking(ctx, guest, b.ID))
	available, err = svc.IsAvailable(ctx, "villa-1", day(12), day(14), "")
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsAvailableExcludesOwnBooking(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()

	b := mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	available, err := svc.IsAvailable(ctx, "villa-1", day(10), day(15), b.ID)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestFilterAvailableProperties(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()

	mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	free, err := svc.FilterAvailableProperties(ctx, []string{"villa-1", "cabin-1"}, day(12), day(14))
	require.NoError(t, err)
	assert.Equal(t, []string{"cabin-1"}, free)

	// An unknown property has no reservations and passes the filter; the
	// existence check belongs to creation.
	free, err = svc.FilterAvailableProperties(ctx, []string{"cabin-1", "ghost-1"}, day(12), day(14))
	require.NoError(t, err)
	assert.Equal(t, []string{"cabin-1", "ghost-1"}, free)
}
