package payment

import (
	"context"
	"testing"

	"roamstay/models"
	"roamstay/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPaymentRepo struct {
	payments map[string]*models.Payment
}

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{payments: make(map[string]*models.Payment)}
}

func (m *memPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	cp := *payment
	m.payments[payment.ID] = &cp
	return nil
}

func (m *memPaymentRepo) GetByID(ctx context.Context, id string) (*models.Payment, error) {
	p, ok := m.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memPaymentRepo) GetByBooking(ctx context.Context, bookingID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.payments {
		if p.BookingID == bookingID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memPaymentRepo) SetStatus(ctx context.Context, id, status string) error {
	if p, ok := m.payments[id]; ok {
		p.Status = status
	}
	return nil
}

func (m *memPaymentRepo) Summary(ctx context.Context) (*models.PaymentSummary, error) {
	sum := &models.PaymentSummary{}
	for _, p := range m.payments {
		sum.TotalPayments++
		sum.TotalAmount += p.Amount
		switch p.Status {
		case models.PaymentRecordCompleted:
			sum.CompletedPayments++
			sum.CompletedAmount += p.Amount
		case models.PaymentRecordPending:
			sum.PendingPayments++
			sum.PendingAmount += p.Amount
		case models.PaymentRecordFailed:
			sum.FailedPayments++
		}
	}
	return sum, nil
}

// stubBookingService records which callback fired and quotes a fixed due.
type stubBookingService struct {
	booking.BookingService
	due       float64
	completed []string
	failed    []string
}

func (s *stubBookingService) ComputeDue(ctx context.Context, bookingID string) (float64, error) {
	return s.due, nil
}

func (s *stubBookingService) OnPaymentCompleted(ctx context.Context, bookingID string) error {
	s.completed = append(s.completed, bookingID)
	return nil
}

func (s *stubBookingService) OnPaymentFailed(ctx context.Context, bookingID string) error {
	s.failed = append(s.failed, bookingID)
	return nil
}

func TestInitiateQuotesPendingTotal(t *testing.T) {
	engine := &stubBookingService{due: 660}
	svc := &DefaultPaymentService{Repo: newMemPaymentRepo(), BookingSvc: engine}

	p, err := svc.Initiate(context.Background(),
		models.Caller{ID: "guest-1", Role: models.RoleGuest}, "booking-1", models.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, 660.0, p.Amount)
	assert.Equal(t, models.PaymentRecordPending, p.Status)
	assert.Equal(t, "booking-1", p.BookingID)
}

func TestRecordOutcomeDrivesBookingEngine(t *testing.T) {
	engine := &stubBookingService{due: 100}
	repo := newMemPaymentRepo()
	svc := &DefaultPaymentService{Repo: repo, BookingSvc: engine}
	ctx := context.Background()
	caller := models.Caller{ID: "guest-1", Role: models.RoleGuest}

	p, err := svc.Initiate(ctx, caller, "booking-1", models.PaymentMethodCard)
	require.NoError(t, err)

	got, err := svc.RecordOutcome(ctx, p.ID, models.PaymentRecordCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRecordCompleted, got.Status)
	assert.Equal(t, []string{"booking-1"}, engine.completed)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRecordCompleted, stored.Status)
}

func TestRecordOutcomeFailure(t *testing.T) {
	engine := &stubBookingService{due: 100}
	svc := &DefaultPaymentService{Repo: newMemPaymentRepo(), BookingSvc: engine}
	ctx := context.Background()

	p, err := svc.Initiate(ctx, models.Caller{ID: "guest-1"}, "booking-1", models.PaymentMethodPaypal)
	require.NoError(t, err)

	_, err = svc.RecordOutcome(ctx, p.ID, models.PaymentRecordFailed)
	require.NoError(t, err)
	assert.Equal(t, []string{"booking-1"}, engine.failed)
}

func TestRecordOutcomeRejectsUnknownVerdict(t *testing.T) {
	engine := &stubBookingService{}
	repo := newMemPaymentRepo()
	svc := &DefaultPaymentService{Repo: repo, BookingSvc: engine}
	ctx := context.Background()

	p, err := svc.Initiate(ctx, models.Caller{ID: "guest-1"}, "booking-1", models.PaymentMethodCard)
	require.NoError(t, err)

	_, err = svc.RecordOutcome(ctx, p.ID, "charged-back")
	assert.ErrorIs(t, err, ErrUnknownOutcome)

	stored, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentRecordPending, stored.Status, "an unknown verdict must not change the record")
}

func TestGetByBookingScopedToCaller(t *testing.T) {
	engine := &stubBookingService{due: 100}
	repo := newMemPaymentRepo()
	svc := &DefaultPaymentService{Repo: repo, BookingSvc: engine}
	ctx := context.Background()

	_, err := svc.Initiate(ctx, models.Caller{ID: "guest-1", Role: models.RoleGuest}, "booking-1", models.PaymentMethodCard)
	require.NoError(t, err)
	_, err = svc.Initiate(ctx, models.Caller{ID: "guest-2", Role: models.RoleGuest}, "booking-1", models.PaymentMethodCard)
	require.NoError(t, err)

	// A guest sees only the attempts they initiated.
	mine, err := svc.GetByBooking(ctx, models.Caller{ID: "guest-1", Role: models.RoleGuest}, "booking-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "guest-1", mine[0].UserID)

	// A stranger sees nothing.
	none, err := svc.GetByBooking(ctx, models.Caller{ID: "guest-3", Role: models.RoleGuest}, "booking-1")
	require.NoError(t, err)
	assert.Empty(t, none)

	// An admin sees every attempt.
	all, err := svc.GetByBooking(ctx, models.Caller{ID: "admin-1", Role: models.RoleAdmin}, "booking-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSummaryAdminOnly(t *testing.T) {
	svc := &DefaultPaymentService{Repo: newMemPaymentRepo(), BookingSvc: &stubBookingService{}}

	_, err := svc.Summary(context.Background(), models.Caller{ID: "guest-1", Role: models.RoleGuest})
	assert.Error(t, err)

	sum, err := svc.Summary(context.Background(), models.Caller{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Zero(t, sum.TotalPayments)
}
