package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/carhub/internal/helpers"
	"github.com/joshua-takyi/carhub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultRecentLimit = 6

type ListingService struct {
	listingRepo models.ListingRepo
	cld         *cloudinary.Cloudinary
}

func NewListingService(listingRepo models.ListingRepo, cld *cloudinary.Cloudinary) *ListingService {
	return &ListingService{
		listingRepo: listingRepo,
		cld:         cld,
	}
}

func (ls *ListingService) CreateListing(ctx context.Context, listing *models.Listing, owner *helpers.Claims) (*models.Listing, error) {
	listing.ProviderEmail = owner.Email
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.Status = models.ListingAvailable

	if err := models.Validate.Struct(listing); err != nil {
		return nil, fmt.Errorf("invalid listing data provided: %v", err)
	}

	// Push a local image up to Cloudinary when one is supplied and we have
	// a client; already-hosted URLs pass through untouched.
	if ls.cld != nil && listing.ImageURL != "" && !helpers.IsHostedURL(listing.ImageURL) {
		url, err := helpers.UploadImage(ctx, ls.cld, listing.ImageURL, helpers.ListingFolder)
		if err != nil {
			return nil, err
		}
		listing.ImageURL = url
	}

	return ls.listingRepo.CreateListing(ctx, listing)
}

func (ls *ListingService) RecentListings(ctx context.Context, limit int64) ([]*models.Listing, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return ls.listingRepo.ListRecent(ctx, limit)
}

func (ls *ListingService) SearchListings(ctx context.Context, query string) ([]*models.Listing, error) {
	return ls.listingRepo.SearchListings(ctx, query)
}

// ListByOwner is ownership-scoped: the requester may only read their own
// listings, a valid token for someone else is not enough.
func (ls *ListingService) ListByOwner(ctx context.Context, ownerEmail string, requester *helpers.Claims) ([]*models.Listing, error) {
	if ownerEmail != requester.Email {
		return nil, models.ErrForbidden
	}
	return ls.listingRepo.ListByOwner(ctx, ownerEmail)
}

// UpdateListing merges the patch into a listing the requester owns. The
// booking status can only move through the booking engine, so the patch is
// stripped of status and the other fields a client must not rewrite.
func (ls *ListingService) UpdateListing(ctx context.Context, id string, patch map[string]interface{}, requester *helpers.Claims) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid listing ID format")
	}

	sanitized := bson.M{}
	for key, value := range patch {
		switch key {
		case "status", "_id", "id", "providerEmail", "provider_email", "createdAt", "created_at":
			continue
		}
		sanitized[key] = value
	}
	sanitized["updatedAt"] = time.Now()

	return ls.listingRepo.UpdateListing(ctx, oid, requester.Email, sanitized)
}

func (ls *ListingService) DeleteListing(ctx context.Context, id string, requester *helpers.Claims) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("invalid listing ID format")
	}
	return ls.listingRepo.DeleteListing(ctx, oid, requester.Email)
}
