package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/carhub/internal/helpers"
	"github.com/joshua-takyi/carhub/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
}

func NewBookingService(bookingRepo models.BookingRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
	}
}

// Book reserves a listing for the requester. The listing claim is a single
// conditional write at the store, so of N concurrent attempts exactly one
// wins and the rest fail with ErrListingBooked. If the booking record
// itself cannot be inserted after a successful claim, the claim is rolled
// back so the listing is not stranded in booked with no booking.
func (bs *BookingService) Book(ctx context.Context, listingID string, requester *helpers.Claims) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return nil, fmt.Errorf("invalid listing ID format")
	}

	if err := bs.bookingRepo.ClaimListing(ctx, oid); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ListingID: oid,
		UserEmail: requester.Email,
		Reference: uuid.New().String(),
		Status:    models.BookingBooked,
		CreatedAt: time.Now(),
	}

	created, err := bs.bookingRepo.CreateBooking(ctx, booking)
	if err != nil {
		if releaseErr := bs.bookingRepo.ReleaseListing(ctx, oid); releaseErr != nil {
			return nil, fmt.Errorf("booking insert failed and listing release failed: %v: %w", releaseErr, err)
		}
		return nil, err
	}

	return created, nil
}

// MyBookings is ownership-scoped the same way listings are.
func (bs *BookingService) MyBookings(ctx context.Context, userEmail string, requester *helpers.Claims) ([]*models.Booking, error) {
	if userEmail != requester.Email {
		return nil, models.ErrForbidden
	}
	return bs.bookingRepo.BookingsByUser(ctx, userEmail)
}
