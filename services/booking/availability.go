package booking

import (
	"context"
	"fmt"
	"time"

	"roamstay/utils"

	"go.uber.org/zap"
)

// IsAvailable decides whether the property is free over [start, end),
// ignoring cancelled reservations and, when excludeBookingID is set, the
// caller's own booking. Read-only; the authoritative check happens again at
// commit time inside the creation transaction.
func (s *DefaultBookingService) IsAvailable(ctx context.Context, propertyID string, start, end time.Time, excludeBookingID string) (bool, error) {
	if !end.After(start) {
		return false, &ValidationError{Field: "endDate", Reason: "end date must be after the start date"}
	}
	count, err := s.Repo.CountOverlapping(ctx, propertyID, start, end, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("availability check failed: %w", err)
	}
	return count == 0, nil
}

// FilterAvailableProperties returns the subset of candidate properties free
// over [start, end). Order of the input is preserved.
func (s *DefaultBookingService) FilterAvailableProperties(ctx context.Context, propertyIDs []string, start, end time.Time) ([]string, error) {
	logger := utils.GetLogger()
	var free []string
	for _, id := range propertyIDs {
		available, err := s.IsAvailable(ctx, id, start, end, "")
		if err != nil {
			logger.Error("bulk availability check failed",
				zap.String("propertyID", id), zap.Error(err))
			return nil, err
		}
		if available {
			free = append(free, id)
		}
	}
	return free, nil
}
