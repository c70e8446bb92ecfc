package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tripline/internal/models/db_models"
	"tripline/pkg/memcache"
	"tripline/pkg/utils"
)

func newShareFixture(owner uuid.UUID, itinerary *db_models.Itinerary) (ShareServiceInterface, *mockItineraryRepo) {
	repo := &mockItineraryRepo{
		getByIDWithPinsFn: func(ctx context.Context, id string) (*db_models.Itinerary, error) {
			if itinerary != nil && id == itinerary.ID.String() {
				return itinerary, nil
			}
			return nil, nil
		},
	}
	svc := NewShareService(repo, NewItineraryService(repo), memcache.NewShareLinks(), nil, "https://tripline.app")
	return svc, repo
}

func privateItinerary(owner uuid.UUID) *db_models.Itinerary {
	return &db_models.Itinerary{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		OwnerID:   owner,
		Title:     "Tokyo long weekend",
		Pins: []db_models.Pin{
			{Latitude: 35.65, Longitude: 139.74, Title: "Tokyo Tower"},
		},
	}
}

func TestShareItinerary_MintsResolvableLink(t *testing.T) {
	owner := uuid.New()
	itinerary := privateItinerary(owner)

	marked := false
	svc, repo := newShareFixture(owner, itinerary)
	repo.setPublicFn = func(ctx context.Context, id uuid.UUID) error {
		if id != itinerary.ID {
			t.Fatalf("wrong itinerary marked public: %s", id)
		}
		marked = true
		return nil
	}

	out, err := svc.ShareItinerary(context.Background(), owner, itinerary.ID.String(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !marked {
		t.Fatal("itinerary must be marked public")
	}
	if !strings.HasPrefix(out.ShareURL, "https://tripline.app/share/") {
		t.Fatalf("share url wrong: %q", out.ShareURL)
	}

	token := strings.TrimPrefix(out.ShareURL, "https://tripline.app/share/")
	resolved, err := svc.ResolveShareToken(context.Background(), token)
	if err != nil {
		t.Fatalf("minted token must resolve: %v", err)
	}
	if resolved.Title != itinerary.Title || len(resolved.Pins) != 1 {
		t.Fatalf("resolved itinerary wrong: %+v", resolved)
	}
}

func TestShareItinerary_Errors(t *testing.T) {
	owner := uuid.New()
	itinerary := privateItinerary(owner)
	svc, _ := newShareFixture(owner, itinerary)

	if _, err := svc.ShareItinerary(context.Background(), uuid.New(), itinerary.ID.String(), ""); !errors.Is(err, utils.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := svc.ShareItinerary(context.Background(), owner, uuid.NewString(), ""); !errors.Is(err, utils.ErrItineraryNotFound) {
		t.Fatalf("expected ErrItineraryNotFound, got %v", err)
	}
}

func TestResolveShareToken_Unknown(t *testing.T) {
	svc, _ := newShareFixture(uuid.New(), nil)

	if _, err := svc.ResolveShareToken(context.Background(), "deadbeef"); !errors.Is(err, utils.ErrShareTokenNotFound) {
		t.Fatalf("expected ErrShareTokenNotFound, got %v", err)
	}
}
