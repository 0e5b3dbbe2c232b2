package booking

import (
	"context"
	"testing"

	"roamstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnPaymentCompleted(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()
	b := mustCreate(t, svc, guest,
		reservationInput("villa-1", day(10), day(15)),
		reservationInput("cabin-1", day(10), day(12)))

	require.NoError(t, svc.OnPaymentCompleted(ctx, b.ID))

	got, err := svc.Repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	for _, res := range got.Properties {
		assert.Equal(t, models.StatusCompleted, res.Status)
		assert.Equal(t, models.PaymentPaid, res.PaymentStatus)
	}
}

func TestOnPaymentCompletedSkipsCancelledLineItems(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()
	b := mustCreate(t, svc, guest,
		reservationInput("villa-1", day(10), day(15)),
		reservationInput("cabin-1", day(10), day(12)))
	require.NoError(t, svc.CancelReservation(ctx, guest, b.ID, "cabin-1"))

	require.NoError(t, svc.OnPaymentCompleted(ctx, b.ID))

	got, err := svc.Repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got.FindReservation("villa-1").Status)
	assert.Equal(t, models.StatusCancelled, got.FindReservation("cabin-1").Status)
}

func TestOnPaymentFailed(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()
	b := mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	require.NoError(t, svc.OnPaymentFailed(ctx, b.ID))

	got, err := svc.Repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	res := got.Properties[0]
	assert.Equal(t, models.StatusCancelled, res.Status)
	assert.Equal(t, models.PaymentFailed, res.PaymentStatus)
	assert.Equal(t, "Cancelled after payment failure", res.CancellationReason)
}

func TestPaymentCallbacksOnMissingBooking(t *testing.T) {
	svc, _ := newTestService(testNow)
	ctx := context.Background()

	var nerr *NotFoundError
	require.ErrorAs(t, svc.OnPaymentCompleted(ctx, "missing"), &nerr)
	require.ErrorAs(t, svc.OnPaymentFailed(ctx, "missing"), &nerr)
}

func TestComputeDueSumsPendingOnly(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()
	b := mustCreate(t, svc, guest,
		reservationInput("villa-1", day(10), day(15)), // 500
		reservationInput("cabin-1", day(10), day(12))) // 160

	due, err := svc.ComputeDue(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 660.0, due)

	require.NoError(t, svc.CancelReservation(ctx, guest, b.ID, "cabin-1"))
	due, err = svc.ComputeDue(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, due)
}
