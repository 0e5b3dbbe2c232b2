package booking

import (
	"context"
	"testing"

	"roamstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBookingVisibility(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()
	b := mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	tests := []struct {
		name    string
		caller  models.Caller
		allowed bool
	}{
		{"owner", guest, true},
		{"admin", adminUser, true},
		{"host with line item", hostOne, true},
		{"unrelated guest", models.Caller{ID: "guest-2", Role: models.RoleGuest}, false},
		{"unrelated host", models.Caller{ID: "host-2", Role: models.RoleHost}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view, err := svc.GetBooking(ctx, tc.caller, b.ID)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, b.ID, view.ID)
			} else {
				var ferr *ForbiddenError
				require.ErrorAs(t, err, &ferr)
			}
		})
	}
}

func TestGetBookingExpandsReferences(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	svc.UserRepo = &fakeUserRepo{users: map[string]models.User{
		"guest-1": {ID: "guest-1", Name: "Ada", Email: "ada@example.com"},
		"host-1":  {ID: "host-1", Name: "Bo", Email: "bo@example.com"},
	}}
	ctx := context.Background()
	b := mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	view, err := svc.GetBooking(ctx, guest, b.ID)
	require.NoError(t, err)
	require.NotNil(t, view.User)
	assert.Equal(t, "Ada", view.User.Name)
	require.Len(t, view.Properties, 1)
	require.NotNil(t, view.Properties[0].Host)
	assert.Equal(t, "Bo", view.Properties[0].Host.Name)
	require.NotNil(t, view.Properties[0].Property)
	assert.Equal(t, "villa-1", view.Properties[0].Property.ID)
}

func TestListBookingsScoping(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()

	mustCreate(t, svc, guest,
		reservationInput("villa-1", day(10), day(15)),
		reservationInput("cabin-1", day(10), day(12)))
	mustCreate(t, svc, models.Caller{ID: "guest-2", Role: models.RoleGuest},
		reservationInput("cabin-1", day(20), day(25)))

	all, err := svc.ListBookings(ctx, adminUser)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// host-1 sees one booking, trimmed to their villa line item.
	mine, err := svc.ListBookings(ctx, hostOne)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Len(t, mine[0].Properties, 1)
	assert.Equal(t, "villa-1", mine[0].Properties[0].PropertyID)

	_, err = svc.ListBookings(ctx, guest)
	var ferr *ForbiddenError
	require.ErrorAs(t, err, &ferr)
}

func TestListBookingsInRangeAdminOnly(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef)
	ctx := context.Background()

	mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))

	_, err := svc.ListBookingsInRange(ctx, hostOne, day(1), day(30))
	var ferr *ForbiddenError
	require.ErrorAs(t, err, &ferr)

	_, err = svc.ListBookingsInRange(ctx, adminUser, day(30), day(1))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	hits, err := svc.ListBookingsInRange(ctx, adminUser, day(12), day(13))
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	hits, err = svc.ListBookingsInRange(ctx, adminUser, day(15), day(20))
	require.NoError(t, err)
	assert.Empty(t, hits, "half-open window starting at the stay's end misses it")
}

func TestListUserBookings(t *testing.T) {
	svc, _ := newTestService(testNow, villaRef, cabinRef)
	ctx := context.Background()

	mustCreate(t, svc, guest, reservationInput("villa-1", day(10), day(15)))
	mustCreate(t, svc, models.Caller{ID: "guest-2", Role: models.RoleGuest},
		reservationInput("cabin-1", day(10), day(15)))

	mine, err := svc.ListUserBookings(ctx, guest)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "guest-1", mine[0].UserID)
}
