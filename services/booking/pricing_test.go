package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayPrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		start time.Time
		end   time.Time
		want  float64
	}{
		{"three nights", 100, day(10), day(13), 300},
		{"single night", 80, day(10), day(11), 80},
		{"partial day rounds up", 100, day(10), day(11).Add(6 * time.Hour), 200},
		{"degenerate span charges one night", 100, day(10), day(10), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StayPrice(tc.rate, tc.start, tc.end))
		})
	}
}

func TestPlatformFee(t *testing.T) {
	assert.InDelta(t, 14.0, Policy{}.PlatformFee(100), 1e-9)
	assert.InDelta(t, 20.0, Policy{PlatformFeeRate: 0.2}.PlatformFee(100), 1e-9)
}

func TestRevenueSummaryScoping(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()

	b := mustCreate(t, svc, guest,
		reservationInput("villa-1", day(10), day(15)), // host-1, 500
		reservationInput("cabin-1", day(10), day(12))) // host-2, 160
	require.NoError(t, svc.OnPaymentCompleted(ctx, b.ID))

	// A host always sees their own revenue, whatever scope they ask for.
	sum, err := svc.RevenueSummary(ctx, hostOne, "host-2")
	require.NoError(t, err)
	assert.Equal(t, "host-1", sum.HostID)
	assert.Equal(t, 500.0, sum.Gross)
	assert.InDelta(t, 70.0, sum.PlatformFee, 1e-9)
	assert.InDelta(t, 430.0, sum.Net, 1e-9)
	assert.Equal(t, 1, sum.Completed)

	// An admin may scope to any host or take the platform-wide figure.
	sum, err = svc.RevenueSummary(ctx, adminUser, "host-2")
	require.NoError(t, err)
	assert.Equal(t, 160.0, sum.Gross)

	sum, err = svc.RevenueSummary(ctx, adminUser, "")
	require.NoError(t, err)
	assert.Equal(t, 660.0, sum.Gross)
	assert.Equal(t, 2, sum.Completed)

	// A guest sees nothing.
	_, err = svc.RevenueSummary(ctx, guest, "")
	var ferr *ForbiddenError
	require.ErrorAs(t, err, &ferr)
}

func TestRevenueSummaryExcludesNonCompleted(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()

	mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	sum, err := svc.RevenueSummary(ctx, adminUser, "")
	require.NoError(t, err)
	assert.Zero(t, sum.Gross)
	assert.Zero(t, sum.Completed)
}
