package review

import (
	"context"
	"errors"
	"time"

	bookingRepo "roamstay/database/repository/booking"
	propertyRepo "roamstay/database/repository/property"
	reviewRepo "roamstay/database/repository/review"
	"roamstay/models"
	"roamstay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrStayNotCompleted = errors.New("a review requires a completed stay on this property")
	ErrAlreadyReviewed  = errors.New("this stay has already been reviewed")
)

// ReviewService gates reviews on completed stays and keeps the property's
// aggregate rating fresh.
type ReviewService interface {
	Create(ctx context.Context, caller models.Caller, input models.ReviewInput) (*models.Review, error)
	GetByProperty(ctx context.Context, propertyID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo         reviewRepo.ReviewRepository
	BookingRepo  bookingRepo.BookingRepository
	PropertyRepo propertyRepo.PropertyRepository
}

// Create files a review. The referenced booking must belong to the caller
// and its line item for the property must be completed; anything else is
// rejected here, not in the booking engine.
func (s *DefaultReviewService) Create(ctx context.Context, caller models.Caller, input models.ReviewInput) (*models.Review, error) {
	booking, err := s.BookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.UserID != caller.ID {
		return nil, ErrStayNotCompleted
	}
	res := booking.FindReservation(input.PropertyID)
	if res == nil || res.Status != models.StatusCompleted {
		return nil, ErrStayNotCompleted
	}

	exists, err := s.Repo.ExistsForBooking(ctx, caller.ID, input.BookingID, input.PropertyID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		UserID:     caller.ID,
		PropertyID: input.PropertyID,
		BookingID:  input.BookingID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, review); err != nil {
		return nil, err
	}

	// Refresh the listing's aggregate rating; non-fatal on failure.
	if avg, err := s.Repo.AverageRating(ctx, input.PropertyID); err == nil {
		if err := s.PropertyRepo.UpdateRating(ctx, input.PropertyID, avg); err != nil {
			utils.GetLogger().Warn("failed to refresh property rating",
				zap.String("propertyID", input.PropertyID), zap.Error(err))
		}
	}
	return review, nil
}

func (s *DefaultReviewService) GetByProperty(ctx context.Context, propertyID string) ([]models.Review, error) {
	return s.Repo.GetByProperty(ctx, propertyID)
}
