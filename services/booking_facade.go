package services

import (
	"context"

	"campusrent/builders"
	"campusrent/commands"
	"campusrent/constants"
	"campusrent/dto"
	apperrors "campusrent/errors"
	"campusrent/models"
	"campusrent/services/logger"
	"campusrent/validator"
)

// BookingFacade hides pricing, payment, persistence and notification behind the
// booking operations the controllers need.
type BookingFacade struct {
	catalog  *CatalogService
	bookings BookingStore
	payments PaymentProcessor
	notifier Notifier
	clock    Clock
	logger   logger.Logger
}

func NewBookingFacade(catalog *CatalogService, bookings BookingStore, payments PaymentProcessor,
	notifier Notifier, clock Clock, log logger.Logger) *BookingFacade {
	if payments == nil {
		payments = MockPayment{}
	}
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &BookingFacade{
		catalog:  catalog,
		bookings: bookings,
		payments: payments,
		notifier: notifier,
		clock:    clock,
		logger:   log,
	}
}

// Quote prices a request against the current listing without storing anything.
func (f *BookingFacade) Quote(ctx context.Context, req dto.BookingRequest) (dto.QuoteResponse, error) {
	listing, quote, err := f.price(ctx, req)
	if err != nil {
		return dto.QuoteResponse{}, err
	}
	return dto.QuoteResponse{
		Quote:     quote,
		StartDate: quote.StartDate.Format(constants.DateLayout),
		EndDate:   quote.EndDate.Format(constants.DateLayout),
		ItemName:  listing.DisplayName(),
	}, nil
}

func (f *BookingFacade) price(ctx context.Context, req dto.BookingRequest) (models.Listing, dto.Quote, error) {
	if err := validator.ValidateBookingRequest(&req); err != nil {
		return nil, dto.Quote{}, err
	}
	listing, err := f.catalog.Listing(ctx, req.BookingType, req.ItemID)
	if err != nil {
		return nil, dto.Quote{}, err
	}
	if !listing.Available() {
		return nil, dto.Quote{}, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation,
			"listing is not available", apperrors.ErrListingNotAvailable)
	}
	quote, err := QuoteListing(listing, req)
	if err != nil {
		return nil, dto.Quote{}, err
	}
	if quote.StartDate.Before(DateOnly(f.clock.Now())) {
		return nil, dto.Quote{}, apperrors.NewValidationError("start date must not be in the past")
	}
	return listing, quote, nil
}

// CreateBooking prices the request, takes the (mocked) payment and stores the
// booking with a snapshot of the listing as it is right now.
func (f *BookingFacade) CreateBooking(ctx context.Context, userID string, req dto.BookingRequest) (*models.Booking, error) {
	if userID == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeUnauthorized, "login required", nil)
	}
	listing, quote, err := f.price(ctx, req)
	if err != nil {
		return nil, err
	}

	method := req.PaymentMethod
	if method == "" {
		method = constants.PaymentMethodCard
	}
	booking := builders.NewBookingBuilder().
		WithUser(userID).
		FromListing(listing).
		WithQuote(quote).
		WithPaymentMethod(method).
		WithStatus(constants.BookingStatusPending).
		Build()

	if err := f.payments.Process(ctx, booking); err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Confirm(booking); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, err.Error(), err)
	}
	booking.CreatedAt = f.clock.Now().UTC()

	if err := commands.NewCreateBookingCommand(booking, f.bookings).Execute(ctx); err != nil {
		return nil, wrapStoreError("save booking", err)
	}

	f.logger.Info("booking %s created for %s %s by %s, total %.2f",
		booking.ID, booking.BookingType, booking.ItemID, userID, booking.TotalAmount)
	f.notifier.Notify(EventBookingConfirmed, *booking)
	return booking, nil
}

// UserBookings returns the user's bookings split around today.
func (f *BookingFacade) UserBookings(ctx context.Context, userID string) (dto.BookingBuckets, error) {
	bookings, err := f.bookings.FindByUser(ctx, userID)
	if err != nil {
		return ClassifyBookings(nil, f.clock.Now()), wrapStoreError("load bookings", err)
	}
	return ClassifyBookings(bookings, f.clock.Now()), nil
}

func (f *BookingFacade) CancelBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := f.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := f.transition(ctx, booking, models.BookingState.Cancel); err != nil {
		return nil, err
	}
	f.notifier.Notify(EventBookingCancelled, *booking)
	return booking, nil
}

func (f *BookingFacade) CompleteBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := f.ownedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := f.transition(ctx, booking, models.BookingState.Complete); err != nil {
		return nil, err
	}
	f.notifier.Notify(EventBookingCompleted, *booking)
	return booking, nil
}

// CompleteElapsed completes every confirmed booking whose end date has passed.
// It returns how many bookings it moved.
func (f *BookingFacade) CompleteElapsed(ctx context.Context) (int, error) {
	confirmed, err := f.bookings.FindByStatus(ctx, constants.BookingStatusConfirmed)
	if err != nil {
		return 0, wrapStoreError("load confirmed bookings", err)
	}
	now := f.clock.Now()
	done := 0
	for i := range confirmed {
		booking := confirmed[i]
		if !IsElapsed(booking, now) {
			continue
		}
		if err := f.transition(ctx, &booking, models.BookingState.Complete); err != nil {
			if apperrors.IsInvalidOperation(err) {
				continue
			}
			return done, err
		}
		done++
		f.notifier.Notify(EventBookingCompleted, booking)
	}
	if done > 0 {
		f.logger.Info("completed %d elapsed bookings", done)
	}
	return done, nil
}

// ownedBooking hides other users' bookings behind NotFound.
func (f *BookingFacade) ownedBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := f.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, wrapStoreError("load booking", err)
	}
	if booking.UserID != userID && booking.OwnerID != userID {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBNotFound, "booking not found", apperrors.ErrBookingNotFound)
	}
	return booking, nil
}

// transition applies a state change and persists it only if nobody changed the
// status in between.
func (f *BookingFacade) transition(ctx context.Context, booking *models.Booking,
	move func(models.BookingState, *models.Booking) error) error {
	from := booking.Status
	if err := move(models.GetBookingState(from), booking); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation, err.Error(), err)
	}

	cmd := commands.NewUpdateBookingStatusCommand(booking.ID, from, booking.Status, f.bookings)
	if err := cmd.Execute(ctx); err != nil {
		booking.Status = from
		return wrapStoreError("update booking", err)
	}
	if !cmd.Applied {
		booking.Status = from
		return apperrors.NewAppError(apperrors.ErrCodeInvalidOperation,
			"booking status changed concurrently, reload and retry", nil)
	}
	f.logger.Info("booking %s %s -> %s", booking.ID, from, booking.Status)
	return nil
}
