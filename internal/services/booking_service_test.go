package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

type fakeBookingRepo struct {
	bookings map[string]*db_models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*db_models.Booking)}
}

func (f *fakeBookingRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, b := range f.bookings {
		if b.AccountID.String() == accountID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByIDForAccount(ctx context.Context, id, accountID string) (*db_models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok || b.AccountID.String() != accountID {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) error {
	if err := booking.BeforeCreate(nil); err != nil {
		return err
	}
	f.bookings[booking.ID.String()] = booking
	return nil
}

func (f *fakeBookingRepo) Update(ctx context.Context, booking *db_models.Booking) error {
	f.bookings[booking.ID.String()] = booking
	return nil
}

type fakeHotelRepo struct {
	hotel *db_models.Hotel
}

func (f *fakeHotelRepo) List(ctx context.Context, destinationName string) ([]db_models.Hotel, error) {
	if f.hotel == nil {
		return nil, nil
	}
	return []db_models.Hotel{*f.hotel}, nil
}

func (f *fakeHotelRepo) GetByID(ctx context.Context, id string) (*db_models.Hotel, error) {
	if f.hotel != nil && f.hotel.ID.String() == id {
		return f.hotel, nil
	}
	return nil, nil
}

func (f *fakeHotelRepo) Insert(ctx context.Context, hotel *db_models.Hotel) error { return nil }
func (f *fakeHotelRepo) Update(ctx context.Context, hotel *db_models.Hotel) error { return nil }
func (f *fakeHotelRepo) Delete(ctx context.Context, id string) error              { return nil }

type fakeFlightRepo struct {
	flight *db_models.Flight
}

func (f *fakeFlightRepo) List(ctx context.Context, source, destination string, date *time.Time) ([]db_models.Flight, error) {
	return nil, nil
}

func (f *fakeFlightRepo) GetByID(ctx context.Context, id string) (*db_models.Flight, error) {
	if f.flight != nil && f.flight.ID.String() == id {
		return f.flight, nil
	}
	return nil, nil
}

func (f *fakeFlightRepo) Insert(ctx context.Context, flight *db_models.Flight) error { return nil }
func (f *fakeFlightRepo) Update(ctx context.Context, flight *db_models.Flight) error { return nil }
func (f *fakeFlightRepo) Delete(ctx context.Context, id string) error                { return nil }

type fakeActivityRepo struct {
	activity *db_models.Activity
}

func (f *fakeActivityRepo) List(ctx context.Context, destinationName string) ([]db_models.Activity, error) {
	return nil, nil
}

func (f *fakeActivityRepo) GetByID(ctx context.Context, id string) (*db_models.Activity, error) {
	if f.activity != nil && f.activity.ID.String() == id {
		return f.activity, nil
	}
	return nil, nil
}

func (f *fakeActivityRepo) Insert(ctx context.Context, activity *db_models.Activity) error { return nil }
func (f *fakeActivityRepo) Update(ctx context.Context, activity *db_models.Activity) error { return nil }
func (f *fakeActivityRepo) Delete(ctx context.Context, id string) error                    { return nil }

func newTestBookingService() (BookingServiceInterface, *fakeHotelRepo, *fakeFlightRepo, *fakeActivityRepo) {
	hotels := &fakeHotelRepo{}
	flights := &fakeFlightRepo{}
	activities := &fakeActivityRepo{}
	svc := NewBookingService(newFakeBookingRepo(), hotels, flights, activities)
	return svc, hotels, flights, activities
}

func TestCreateHotelBookingPricesByNight(t *testing.T) {
	svc, hotels, _, _ := newTestBookingService()
	hotels.hotel = &db_models.Hotel{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		Name:          "Goa Comfort Inn",
		PricePerNight: 2500,
	}

	booking, err := svc.Create(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeHotel,
		HotelID:     hotels.hotel.ID.String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-04",
	})
	require.NoError(t, err)

	assert.InDelta(t, 7500, booking.TotalPrice, 0.001)
	assert.Equal(t, db_models.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.HotelID)
	assert.Equal(t, hotels.hotel.ID, *booking.HotelID)
}

func TestCreateHotelBookingSameDayCountsOneNight(t *testing.T) {
	svc, hotels, _, _ := newTestBookingService()
	hotels.hotel = &db_models.Hotel{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		PricePerNight: 3000,
	}

	booking, err := svc.Create(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeHotel,
		HotelID:     hotels.hotel.ID.String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-01",
	})
	require.NoError(t, err)
	assert.InDelta(t, 3000, booking.TotalPrice, 0.001)
}

func TestCreateFlightBookingUsesTicketPrice(t *testing.T) {
	svc, _, flights, _ := newTestBookingService()
	flights.flight = &db_models.Flight{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		Price:     5200,
	}

	booking, err := svc.Create(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeFlight,
		FlightID:    flights.flight.ID.String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-01",
	})
	require.NoError(t, err)
	assert.InDelta(t, 5200, booking.TotalPrice, 0.001)
}

func TestCreateBookingUnknownTargetIsNotFound(t *testing.T) {
	svc, _, _, _ := newTestBookingService()

	_, err := svc.Create(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeHotel,
		HotelID:     uuid.New().String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-02",
	})
	assert.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestCreateBookingRejectsReversedDates(t *testing.T) {
	svc, hotels, _, _ := newTestBookingService()
	hotels.hotel = &db_models.Hotel{BaseModel: db_models.BaseModel{ID: uuid.New()}, PricePerNight: 1000}

	_, err := svc.Create(context.Background(), uuid.New().String(), request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeHotel,
		HotelID:     hotels.hotel.ID.String(),
		StartDate:   "2026-10-05",
		EndDate:     "2026-10-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestCancelBooking(t *testing.T) {
	hotels := &fakeHotelRepo{hotel: &db_models.Hotel{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		PricePerNight: 1000,
	}}
	svc := NewBookingService(newFakeBookingRepo(), hotels, &fakeFlightRepo{}, &fakeActivityRepo{})
	accountID := uuid.New().String()

	booking, err := svc.Create(context.Background(), accountID, request_models.CreateBookingRequest{
		BookingType: db_models.BookingTypeHotel,
		HotelID:     hotels.hotel.ID.String(),
		StartDate:   "2026-10-01",
		EndDate:     "2026-10-02",
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), accountID, booking.ID.String())
	require.NoError(t, err)
	assert.Equal(t, db_models.BookingStatusCancelled, cancelled.Status)

	_, err = svc.Cancel(context.Background(), uuid.New().String(), booking.ID.String())
	assert.ErrorIs(t, err, utils.ErrBookingNotFound)
}
