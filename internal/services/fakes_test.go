package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/joshua-takyi/carhub/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore implements the repo interfaces in memory. A single mutex gives
// it the same atomicity contract the Mongo CAS provides, so the booking
// race can be exercised with real goroutines.
type fakeStore struct {
	mu       sync.Mutex
	listings map[primitive.ObjectID]*models.Listing
	bookings []*models.Booking
	users    map[string]*models.User

	failBookingInsert bool
	lastPatch         bson.M
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		listings: map[primitive.ObjectID]*models.Listing{},
		users:    map[string]*models.User{},
	}
}

func (f *fakeStore) addListing(listing *models.Listing) primitive.ObjectID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if listing.ID.IsZero() {
		listing.ID = primitive.NewObjectID()
	}
	if listing.Status == "" {
		listing.Status = models.ListingAvailable
	}
	f.listings[listing.ID] = listing
	return listing.ID
}

func (f *fakeStore) CreateListing(ctx context.Context, listing *models.Listing) (*models.Listing, error) {
	f.addListing(listing)
	return listing, nil
}

func (f *fakeStore) ListRecent(ctx context.Context, limit int64) ([]*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]*models.Listing, 0, len(f.listings))
	for _, l := range f.listings {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeStore) SearchListings(ctx context.Context, query string) ([]*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Listing{}
	for _, l := range f.listings {
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(query)) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Listing{}
	for _, l := range f.listings {
		if l.ProviderEmail == ownerEmail {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateListing(ctx context.Context, id primitive.ObjectID, ownerEmail string, patch bson.M) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPatch = patch
	l, ok := f.listings[id]
	if !ok || l.ProviderEmail != ownerEmail {
		return 0, nil
	}
	return 1, nil
}

func (f *fakeStore) DeleteListing(ctx context.Context, id primitive.ObjectID, ownerEmail string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[id]
	if !ok || l.ProviderEmail != ownerEmail {
		return 0, nil
	}
	delete(f.listings, id)
	return 1, nil
}

func (f *fakeStore) ClaimListing(ctx context.Context, listingID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.listings[listingID]
	if !ok {
		return models.ErrListingNotFound
	}
	if l.Status != models.ListingAvailable {
		return models.ErrListingBooked
	}
	l.Status = models.ListingBooked
	return nil
}

func (f *fakeStore) ReleaseListing(ctx context.Context, listingID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if l, ok := f.listings[listingID]; ok {
		l.Status = models.ListingAvailable
	}
	return nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failBookingInsert {
		return nil, models.ErrStoreUnavailable
	}
	booking.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

func (f *fakeStore) BookingsByUser(ctx context.Context, userEmail string) ([]*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.Booking{}
	for _, b := range f.bookings {
		if b.UserEmail == userEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[email], nil
}

func (f *fakeStore) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return nil, models.ErrUserExists
	}
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []*models.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
