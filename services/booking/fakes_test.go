package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "roamstay/database/repository/booking"
	"roamstay/models"
)

// fakeBookingRepo is an in-memory BookingRepository that mirrors the storage
// semantics the engine relies on: half-open overlap counting, transactional
// re-validation on insert and guarded status updates.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	// setStatusErr, when set for a booking ID, makes bulk status updates on
	// that booking fail. Used to exercise per-booking error isolation.
	setStatusErr map[string]error

	// afterCount runs after an advisory CountOverlapping returns, letting a
	// test interleave a concurrent writer between the read and the write.
	afterCount func()
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings:     make(map[string]*models.Booking),
		setStatusErr: make(map[string]error),
	}
}

func cloneBooking(b *models.Booking) *models.Booking {
	cp := *b
	cp.Properties = make([]models.Reservation, len(b.Properties))
	copy(cp.Properties, b.Properties)
	return &cp
}

func (f *fakeBookingRepo) countOverlappingLocked(propertyID string, start, end time.Time, excludeBookingID string) int64 {
	var n int64
	for id, b := range f.bookings {
		if excludeBookingID != "" && id == excludeBookingID {
			continue
		}
		for _, res := range b.Properties {
			if res.PropertyID != propertyID || res.Status == models.StatusCancelled {
				continue
			}
			if res.Overlaps(start, end) {
				n++
			}
		}
	}
	return n
}

func (f *fakeBookingRepo) CreateWithOverlapCheck(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, res := range booking.Properties {
		if f.countOverlappingLocked(res.PropertyID, res.StartDate, res.EndDate, booking.ID) > 0 {
			return bookingRepo.ErrOverlapDetected
		}
	}
	f.bookings[booking.ID] = cloneBooking(booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	return cloneBooking(b), nil
}

func (f *fakeBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *cloneBooking(b))
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *cloneBooking(b))
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByHost(ctx context.Context, hostID string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		for _, res := range b.Properties {
			if res.HostID == hostID {
				out = append(out, *cloneBooking(b))
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetInRange(ctx context.Context, start, end time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		for _, res := range b.Properties {
			if res.Overlaps(start, end) {
				out = append(out, *cloneBooking(b))
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.bookings, id)
	return nil
}

func (f *fakeBookingRepo) CountOverlapping(ctx context.Context, propertyID string, start, end time.Time, excludeBookingID string) (int64, error) {
	f.mu.Lock()
	n := f.countOverlappingLocked(propertyID, start, end, excludeBookingID)
	f.mu.Unlock()
	if f.afterCount != nil {
		f.afterCount()
	}
	return n, nil
}

// insert bypasses the overlap check, standing in for a writer that committed
// on another connection.
func (f *fakeBookingRepo) insert(booking *models.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings[booking.ID] = cloneBooking(booking)
}

// UpdateReservationDates applies the move and re-counts overlaps for the new
// interval, rolling back on conflict, matching the Mongo transaction.
func (f *fakeBookingRepo) UpdateReservationDates(ctx context.Context, bookingID, propertyID string, start, end time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil
	}
	for i := range b.Properties {
		res := &b.Properties[i]
		if res.PropertyID != propertyID {
			continue
		}
		prevStart, prevEnd := res.StartDate, res.EndDate
		res.StartDate, res.EndDate = start, end
		if f.countOverlappingLocked(propertyID, start, end, bookingID) > 0 {
			res.StartDate, res.EndDate = prevStart, prevEnd
			return bookingRepo.ErrOverlapDetected
		}
		break
	}
	return nil
}

func statusIn(status string, from []string) bool {
	for _, s := range from {
		if s == status {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) SetReservationStatus(ctx context.Context, bookingID, propertyID string, from []string, to, reason string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return 0, nil
	}
	for i := range b.Properties {
		res := &b.Properties[i]
		if res.PropertyID != propertyID || !statusIn(res.Status, from) {
			continue
		}
		res.Status = to
		if reason != "" {
			res.CancellationReason = reason
		}
		return 1, nil
	}
	return 0, nil
}

func (f *fakeBookingRepo) SetAllReservationStatuses(ctx context.Context, bookingID string, from []string, to, reason string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.setStatusErr[bookingID]; err != nil {
		return 0, err
	}
	b, ok := f.bookings[bookingID]
	if !ok {
		return 0, nil
	}
	var moved int64
	for i := range b.Properties {
		res := &b.Properties[i]
		if !statusIn(res.Status, from) {
			continue
		}
		res.Status = to
		if reason != "" {
			res.CancellationReason = reason
		}
		moved++
	}
	return moved, nil
}

func (f *fakeBookingRepo) SetAllPaymentStatuses(ctx context.Context, bookingID, paymentStatus string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[bookingID]
	if !ok {
		return nil
	}
	for i := range b.Properties {
		b.Properties[i].PaymentStatus = paymentStatus
	}
	return nil
}

func (f *fakeBookingRepo) FindStalePending(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.CreatedAt.Before(cutoff) {
			continue
		}
		for _, res := range b.Properties {
			if res.Status == models.StatusPending {
				out = append(out, *cloneBooking(b))
				break
			}
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) HostRevenue(ctx context.Context, hostID string) (float64, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var gross float64
	var completed int
	for _, b := range f.bookings {
		for _, res := range b.Properties {
			if res.Status != models.StatusCompleted {
				continue
			}
			if hostID != "" && res.HostID != hostID {
				continue
			}
			gross += res.TotalPrice
			completed++
		}
	}
	return gross, completed, nil
}

// fakePropertyRepo resolves listings from a fixed map.
type fakePropertyRepo struct {
	refs map[string]models.PropertyRef
}

func newFakePropertyRepo(refs ...models.PropertyRef) *fakePropertyRepo {
	m := make(map[string]models.PropertyRef, len(refs))
	for _, r := range refs {
		m[r.ID] = r
	}
	return &fakePropertyRepo{refs: m}
}

func (f *fakePropertyRepo) Create(ctx context.Context, property *models.Property) error { return nil }

func (f *fakePropertyRepo) GetByID(ctx context.Context, id string) (*models.Property, error) {
	ref, ok := f.refs[id]
	if !ok {
		return nil, nil
	}
	return &models.Property{ID: ref.ID, HostID: ref.HostID, PricePerNight: ref.PricePerNight}, nil
}

func (f *fakePropertyRepo) GetAll(ctx context.Context) ([]models.Property, error) { return nil, nil }

func (f *fakePropertyRepo) GetByHost(ctx context.Context, hostID string) ([]models.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) Update(ctx context.Context, property *models.Property) error { return nil }
func (f *fakePropertyRepo) Delete(ctx context.Context, id string) error                 { return nil }

func (f *fakePropertyRepo) Resolve(ctx context.Context, id string) (*models.PropertyRef, error) {
	ref, ok := f.refs[id]
	if !ok {
		return nil, nil
	}
	return &ref, nil
}

func (f *fakePropertyRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	return nil
}

// fakeUserRepo serves the read-side user expansion.
type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error       { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error               { return nil }
func (f *fakeUserRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error { return nil }

// newTestService wires a service over fresh fakes with a frozen clock.
func newTestService(now time.Time, refs ...models.PropertyRef) (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{
		Repo:         repo,
		PropertyRepo: newFakePropertyRepo(refs...),
		UserRepo:     &fakeUserRepo{users: map[string]models.User{}},
		Policy:       Policy{StaleAfterHours: 3, MaxCompanions: 10, PlatformFeeRate: 0.14},
		Now:          func() time.Time { return now },
	}
	return svc, repo
}
