package services

import (
	"context"
	"testing"
	"time"

	"github.com/joshua-takyi/carhub/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateListingStampsOwnerAndStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewListingService(store, nil)

	created, err := svc.CreateListing(context.Background(), &models.Listing{
		Name: "Toyota Corolla",
		// any status a client sends is overwritten
		Status: models.ListingBooked,
	}, claimsFor("owner@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", created.ProviderEmail)
	assert.Equal(t, models.ListingAvailable, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateListingRejectsMissingName(t *testing.T) {
	store := newFakeStore()
	svc := NewListingService(store, nil)

	_, err := svc.CreateListing(context.Background(), &models.Listing{}, claimsFor("owner@example.com"))
	assert.Error(t, err)
}

func TestRecentListingsBoundAndOrder(t *testing.T) {
	store := newFakeStore()
	base := time.Now()
	for i := 0; i < 10; i++ {
		store.addListing(&models.Listing{
			Name:      "Car",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := NewListingService(store, nil)

	recent, err := svc.RecentListings(context.Background(), 0) // 0 falls back to the default of 6
	require.NoError(t, err)
	require.Len(t, recent, DefaultRecentLimit)

	for i := 1; i < len(recent); i++ {
		assert.True(t, recent[i-1].CreatedAt.After(recent[i].CreatedAt), "expected newest first")
	}
}

func TestSearchContainment(t *testing.T) {
	store := newFakeStore()
	store.addListing(&models.Listing{Name: "Toyota Corolla"})
	store.addListing(&models.Listing{Name: "Honda Civic"})
	svc := NewListingService(store, nil)

	hits, err := svc.SearchListings(context.Background(), "toy")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Toyota Corolla", hits[0].Name)

	// empty query matches everything
	all, err := svc.SearchListings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListByOwnerRejectsOtherIdentity(t *testing.T) {
	store := newFakeStore()
	store.addListing(&models.Listing{Name: "Car", ProviderEmail: "b@example.com"})
	svc := NewListingService(store, nil)

	_, err := svc.ListByOwner(context.Background(), "b@example.com", claimsFor("a@example.com"))
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateListingStripsProtectedFields(t *testing.T) {
	store := newFakeStore()
	id := store.addListing(&models.Listing{Name: "Car", ProviderEmail: "owner@example.com"})
	svc := NewListingService(store, nil)

	matched, err := svc.UpdateListing(context.Background(), id.Hex(), map[string]interface{}{
		"pricePerDay":   120.0,
		"status":        "booked",
		"providerEmail": "attacker@example.com",
		"_id":           "ffffffffffffffffffffffff",
	}, claimsFor("owner@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	require.NotNil(t, store.lastPatch)
	assert.Contains(t, store.lastPatch, "pricePerDay")
	assert.Contains(t, store.lastPatch, "updatedAt")
	assert.NotContains(t, store.lastPatch, "status")
	assert.NotContains(t, store.lastPatch, "providerEmail")
	assert.NotContains(t, store.lastPatch, "_id")
}

func TestUpdateListingForeignOwnerIsNoop(t *testing.T) {
	store := newFakeStore()
	id := store.addListing(&models.Listing{Name: "Car", ProviderEmail: "owner@example.com"})
	svc := NewListingService(store, nil)

	matched, err := svc.UpdateListing(context.Background(), id.Hex(), map[string]interface{}{
		"pricePerDay": 99.0,
	}, claimsFor("someone-else@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestDeleteListingForeignOwnerIsNoop(t *testing.T) {
	store := newFakeStore()
	id := store.addListing(&models.Listing{Name: "Car", ProviderEmail: "owner@example.com"})
	svc := NewListingService(store, nil)

	deleted, err := svc.DeleteListing(context.Background(), id.Hex(), claimsFor("someone-else@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
	assert.Contains(t, store.listings, id)

	deleted, err = svc.DeleteListing(context.Background(), id.Hex(), claimsFor("owner@example.com"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.NotContains(t, store.listings, id)
}
