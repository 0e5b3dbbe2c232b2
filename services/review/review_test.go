package review

import (
	"context"
	"testing"

	bookingRepo "roamstay/database/repository/booking"
	propertyRepo "roamstay/database/repository/property"
	"roamstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingRepo serves a single booking; the review service only reads.
type stubBookingRepo struct {
	bookingRepo.BookingRepository
	booking *models.Booking
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if s.booking != nil && s.booking.ID == id {
		return s.booking, nil
	}
	return nil, nil
}

type memReviewRepo struct {
	reviews []models.Review
}

func (m *memReviewRepo) Create(ctx context.Context, review *models.Review) error {
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *memReviewRepo) GetByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range m.reviews {
		if r.PropertyID == propertyID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memReviewRepo) ExistsForBooking(ctx context.Context, userID, bookingID, propertyID string) (bool, error) {
	for _, r := range m.reviews {
		if r.UserID == userID && r.BookingID == bookingID && r.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memReviewRepo) AverageRating(ctx context.Context, propertyID string) (float64, error) {
	var sum, n int
	for _, r := range m.reviews {
		if r.PropertyID == propertyID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

type stubPropertyRepo struct {
	propertyRepo.PropertyRepository
	lastRating float64
}

func (s *stubPropertyRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	s.lastRating = rating
	return nil
}

func newTestService(booking *models.Booking) (*DefaultReviewService, *memReviewRepo, *stubPropertyRepo) {
	reviews := &memReviewRepo{}
	props := &stubPropertyRepo{}
	svc := &DefaultReviewService{
		Repo:         reviews,
		BookingRepo:  &stubBookingRepo{booking: booking},
		PropertyRepo: props,
	}
	return svc, reviews, props
}

func completedBooking() *models.Booking {
	return &models.Booking{
		ID:     "booking-1",
		UserID: "guest-1",
		Properties: []models.Reservation{
			{PropertyID: "villa-1", HostID: "host-1", Status: models.StatusCompleted},
			{PropertyID: "cabin-1", HostID: "host-2", Status: models.StatusPending},
		},
	}
}

func TestCreateReviewRequiresCompletedStay(t *testing.T) {
	svc, _, props := newTestService(completedBooking())
	ctx := context.Background()
	caller := models.Caller{ID: "guest-1", Role: models.RoleGuest}

	review, err := svc.Create(ctx, caller, models.ReviewInput{
		PropertyID: "villa-1", BookingID: "booking-1", Rating: 4, Comment: "lovely",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, 4.0, props.lastRating)

	// The pending line item is not reviewable.
	_, err = svc.Create(ctx, caller, models.ReviewInput{
		PropertyID: "cabin-1", BookingID: "booking-1", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrStayNotCompleted)
}

func TestCreateReviewRejectsForeignBooking(t *testing.T) {
	svc, _, _ := newTestService(completedBooking())

	_, err := svc.Create(context.Background(),
		models.Caller{ID: "guest-2", Role: models.RoleGuest},
		models.ReviewInput{PropertyID: "villa-1", BookingID: "booking-1", Rating: 5})
	assert.ErrorIs(t, err, ErrStayNotCompleted)
}

func TestCreateReviewRejectsUnknownBooking(t *testing.T) {
	svc, _, _ := newTestService(nil)

	_, err := svc.Create(context.Background(),
		models.Caller{ID: "guest-1", Role: models.RoleGuest},
		models.ReviewInput{PropertyID: "villa-1", BookingID: "missing", Rating: 5})
	assert.ErrorIs(t, err, ErrStayNotCompleted)
}

func TestCreateReviewOncePerStay(t *testing.T) {
	svc, reviews, _ := newTestService(completedBooking())
	ctx := context.Background()
	caller := models.Caller{ID: "guest-1", Role: models.RoleGuest}
	input := models.ReviewInput{PropertyID: "villa-1", BookingID: "booking-1", Rating: 4}

	_, err := svc.Create(ctx, caller, input)
	require.NoError(t, err)

	_, err = svc.Create(ctx, caller, input)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Len(t, reviews.reviews, 1)
}

func TestAverageRatingTracksReviews(t *testing.T) {
	svc, _, props := newTestService(completedBooking())
	ctx := context.Background()
	caller := models.Caller{ID: "guest-1", Role: models.RoleGuest}

	_, err := svc.Create(ctx, caller, models.ReviewInput{
		PropertyID: "villa-1", BookingID: "booking-1", Rating: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, props.lastRating)
}
