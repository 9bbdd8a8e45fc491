package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

func newReviewFixture() (*ReviewService, *fakeReviewRepo, *fakeBookingRepo, *fakeTourRepo, uuid.UUID) {
	tourID := uuid.New()
	tours := &fakeTourRepo{tours: []domain.Tour{
		{ID: tourID, Title: "Bali Highlights", Availability: true},
	}}
	reviews := &fakeReviewRepo{}
	bookings := &fakeBookingRepo{}

	svc := NewReviewService(reviews, bookings, tours, &fakeHotelRepo{}, &fakeCarRepo{}, &fakeActivityRepo{})
	return svc, reviews, bookings, tours, tourID
}

func TestReviewCreateValidatesRatingAndTitle(t *testing.T) {
	svc, _, _, _, tourID := newReviewFixture()
	userID := uuid.New()

	if _, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 0}); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for rating 0, got %v", err)
	}
	if _, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 6}); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for rating 6, got %v", err)
	}
	if _, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 4, Comment: "Great trip"}); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for comment without title, got %v", err)
	}
}

func TestReviewCreateRejectsTickets(t *testing.T) {
	svc, _, _, _, _ := newReviewFixture()

	if _, _, err := svc.Create(context.Background(), uuid.New(), domain.ContentTickets, uuid.New(), ReviewCreateInput{Rating: 5}); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for a ticket review, got %v", err)
	}
}

func TestReviewCreateFoldsAggregateIntoCatalog(t *testing.T) {
	svc, _, _, tours, tourID := newReviewFixture()

	_, agg, err := svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: 5, Title: "Perfect"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if agg.TotalReviews != 1 || agg.AverageRating != 5 {
		t.Fatalf("unexpected aggregate after first review: %+v", agg)
	}

	_, agg, err = svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: 3, Title: "Okay"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if agg.TotalReviews != 2 || agg.AverageRating != 4 {
		t.Fatalf("unexpected aggregate after second review: %+v", agg)
	}
	if tours.ratings[tourID] != 4 {
		t.Fatalf("expected catalog rating 4, got %v", tours.ratings[tourID])
	}
}

func TestReviewCreateDuplicateRejected(t *testing.T) {
	svc, _, _, _, tourID := newReviewFixture()
	userID := uuid.New()

	if _, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 4, Title: "Nice"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 2, Title: "Changed my mind"}); !errors.Is(err, ErrReviewAlreadyExist) {
		t.Fatalf("expected ErrReviewAlreadyExist, got %v", err)
	}
}

func TestReviewVerifiedBadgeFromConfirmedBooking(t *testing.T) {
	svc, _, bookings, _, tourID := newReviewFixture()
	userID := uuid.New()
	bookings.bookings = append(bookings.bookings, domain.Booking{
		ID:       uuid.New(),
		UserID:   userID,
		ItemType: domain.ContentTours,
		ItemID:   tourID,
		Status:   domain.BookingStatusConfirmed,
	})

	review, _, err := svc.Create(context.Background(), userID, domain.ContentTours, tourID, ReviewCreateInput{Rating: 5, Title: "Verified stay"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !review.IsVerified {
		t.Fatalf("expected verified badge for a confirmed booking")
	}

	other, _, err := svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: 4, Title: "Walk-in"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if other.IsVerified {
		t.Fatalf("expected no badge without a confirmed booking")
	}
}

func TestReviewListFiltersByMinRating(t *testing.T) {
	svc, _, _, _, tourID := newReviewFixture()

	for _, rating := range []int{2, 4, 5} {
		if _, _, err := svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: rating, Title: "r"}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	min := 4
	reviews, agg, err := svc.ListForItem(context.Background(), domain.ContentTours, tourID, domain.ReviewListFilter{MinRating: &min})
	if err != nil {
		t.Fatalf("ListForItem returned error: %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews at min rating 4, got %d", len(reviews))
	}
	if agg.TotalReviews != 3 {
		t.Fatalf("aggregate must cover all live reviews, got %d", agg.TotalReviews)
	}

	bad := 9
	if _, _, err := svc.ListForItem(context.Background(), domain.ContentTours, tourID, domain.ReviewListFilter{MinRating: &bad}); !errors.Is(err, ErrReviewValidation) {
		t.Fatalf("expected ErrReviewValidation for min rating 9, got %v", err)
	}
}

func TestReviewDeletePermissionsAndReaggregation(t *testing.T) {
	svc, _, _, tours, tourID := newReviewFixture()
	author := uuid.New()

	review, _, err := svc.Create(context.Background(), author, domain.ContentTours, tourID, ReviewCreateInput{Rating: 5, Title: "Perfect"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, _, err := svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: 3, Title: "Okay"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), review.ID, uuid.New(), false); !errors.Is(err, ErrReviewForbidden) {
		t.Fatalf("expected ErrReviewForbidden for a stranger, got %v", err)
	}
	if err := svc.Delete(context.Background(), review.ID, author, false); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if tours.ratings[tourID] != 3 {
		t.Fatalf("expected rating to re-aggregate to 3, got %v", tours.ratings[tourID])
	}
	if err := svc.Delete(context.Background(), review.ID, author, false); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound for a deleted review, got %v", err)
	}
}

func TestReviewMarkHelpful(t *testing.T) {
	svc, reviews, _, _, tourID := newReviewFixture()

	review, _, err := svc.Create(context.Background(), uuid.New(), domain.ContentTours, tourID, ReviewCreateInput{Rating: 4, Title: "Nice"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.MarkHelpful(context.Background(), review.ID); err != nil {
		t.Fatalf("MarkHelpful returned error: %v", err)
	}
	stored, _ := reviews.GetByID(context.Background(), review.ID)
	if stored.Helpful != 1 {
		t.Fatalf("expected helpful count 1, got %d", stored.Helpful)
	}
	if err := svc.MarkHelpful(context.Background(), uuid.New()); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}
