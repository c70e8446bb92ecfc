package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tripline/internal/models/db_models"
	"tripline/internal/models/request_models"
	"tripline/pkg/utils"
)

type mockItineraryRepo struct {
	createWithPinsFn  func(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error
	getByIDWithPinsFn func(ctx context.Context, id string) (*db_models.Itinerary, error)
	listByOwnerFn     func(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Itinerary, error)
	setPublicFn       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockItineraryRepo) CreateWithPins(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error {
	if m.createWithPinsFn != nil {
		return m.createWithPinsFn(ctx, itinerary, pins)
	}
	return nil
}

func (m *mockItineraryRepo) GetByIDWithPins(ctx context.Context, id string) (*db_models.Itinerary, error) {
	if m.getByIDWithPinsFn != nil {
		return m.getByIDWithPinsFn(ctx, id)
	}
	return nil, nil
}

func (m *mockItineraryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]db_models.Itinerary, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID, limit)
	}
	return nil, nil
}

func (m *mockItineraryRepo) SetPublic(ctx context.Context, id uuid.UUID) error {
	if m.setPublicFn != nil {
		return m.setPublicFn(ctx, id)
	}
	return nil
}

func f64(v float64) *float64 { return &v }

func validCreateRequest() request_models.CreateItineraryRequest {
	return request_models.CreateItineraryRequest{
		Title: "Tokyo long weekend",
		Pins: []request_models.PinInput{
			{Latitude: f64(35.6586), Longitude: f64(139.7454), Title: "Tokyo Tower", Type: "attraction"},
			{Latitude: f64(35.7148), Longitude: f64(139.7967), Title: "Senso-ji"},
			{Latitude: f64(35.6654), Longitude: f64(139.7707), Title: "Tsukiji brunch", Type: "FOOD"},
		},
	}
}

func TestValidateCreateItinerary(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(r *request_models.CreateItineraryRequest)
		wantErr error
	}{
		{"valid", func(r *request_models.CreateItineraryRequest) {}, nil},
		{"empty title", func(r *request_models.CreateItineraryRequest) { r.Title = "" }, utils.ErrInvalidTitle},
		{"whitespace title", func(r *request_models.CreateItineraryRequest) { r.Title = "   " }, utils.ErrInvalidTitle},
		{"no pins", func(r *request_models.CreateItineraryRequest) { r.Pins = nil }, utils.ErrNoPins},
		{"missing latitude", func(r *request_models.CreateItineraryRequest) { r.Pins[1].Latitude = nil }, utils.ErrInvalidCoordinates},
		{"latitude out of range", func(r *request_models.CreateItineraryRequest) { r.Pins[0].Latitude = f64(95) }, utils.ErrInvalidCoordinates},
		{"longitude out of range", func(r *request_models.CreateItineraryRequest) { r.Pins[0].Longitude = f64(-181) }, utils.ErrInvalidCoordinates},
		{"empty pin title", func(r *request_models.CreateItineraryRequest) { r.Pins[2].Title = "  " }, utils.ErrInvalidPinTitle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)
			if err := ValidateCreateItinerary(&req); !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCreateItinerary_RejectsBeforeAnyWrite(t *testing.T) {
	called := false
	repo := &mockItineraryRepo{
		createWithPinsFn: func(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error {
			called = true
			return nil
		},
	}
	svc := NewItineraryService(repo)

	req := validCreateRequest()
	req.Title = "   "

	_, err := svc.CreateItinerary(context.Background(), uuid.New(), req)
	if !errors.Is(err, utils.ErrInvalidTitle) {
		t.Fatalf("expected ErrInvalidTitle, got %v", err)
	}
	if called {
		t.Fatal("repository must not be touched when validation fails")
	}
}

func TestCreateItinerary_DefaultsOrderIndexToPosition(t *testing.T) {
	var captured []db_models.Pin
	owner := uuid.New()
	repo := &mockItineraryRepo{
		createWithPinsFn: func(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error {
			itinerary.ID = uuid.New()
			for i := range pins {
				pins[i].ID = uuid.New()
				pins[i].ItineraryID = itinerary.ID
				pins[i].OwnerID = itinerary.OwnerID
			}
			itinerary.Pins = pins
			captured = pins
			return nil
		},
	}
	svc := NewItineraryService(repo)

	req := validCreateRequest()
	explicit := 7
	req.Pins[1].OrderIndex = &explicit

	out, err := svc.CreateItinerary(context.Background(), owner, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(captured) != len(req.Pins) {
		t.Fatalf("persisted %d pins, want %d", len(captured), len(req.Pins))
	}
	if captured[0].OrderIndex != 0 || captured[2].OrderIndex != 2 {
		t.Fatalf("defaulted order indexes wrong: %d, %d", captured[0].OrderIndex, captured[2].OrderIndex)
	}
	if captured[1].OrderIndex != 7 {
		t.Fatalf("explicit order index not honored: %d", captured[1].OrderIndex)
	}
	if captured[0].OwnerID != owner {
		t.Fatalf("owner not denormalized onto pin")
	}

	// Returned pins stay in submission order.
	if out.Pins[1].Title != "Senso-ji" {
		t.Fatalf("pins reordered in create response: %+v", out.Pins)
	}
}

func TestCreateItinerary_NormalizesTypesAndIcons(t *testing.T) {
	var captured []db_models.Pin
	repo := &mockItineraryRepo{
		createWithPinsFn: func(ctx context.Context, itinerary *db_models.Itinerary, pins []db_models.Pin) error {
			captured = pins
			return nil
		},
	}
	svc := NewItineraryService(repo)

	req := validCreateRequest()
	req.Pins[0].Type = "rickshaw"
	req.Pins[1].Type = "HOTEL"
	req.Pins[2].Icon = "RICKSHAW"

	if _, err := svc.CreateItinerary(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if captured[0].Type != db_models.PinTypeCustom || captured[0].Icon != db_models.PinIconPin {
		t.Fatalf("unknown type not normalized: %s/%s", captured[0].Type, captured[0].Icon)
	}
	if captured[1].Type != db_models.PinTypeHotel || captured[1].Icon != db_models.PinIconHotel {
		t.Fatalf("type without icon not normalized: %s/%s", captured[1].Type, captured[1].Icon)
	}
	if captured[2].Icon != db_models.PinIconPin {
		t.Fatalf("rickshaw icon not collapsed to pin: %s", captured[2].Icon)
	}
}

func TestGetItineraryByID_Shaping(t *testing.T) {
	owner := uuid.New()
	itineraryID := uuid.New()
	repo := &mockItineraryRepo{
		getByIDWithPinsFn: func(ctx context.Context, id string) (*db_models.Itinerary, error) {
			return &db_models.Itinerary{
				BaseModel: db_models.BaseModel{ID: itineraryID},
				OwnerID:   owner,
				Title:     "Tokyo long weekend",
				Pins: []db_models.Pin{
					{BaseModel: db_models.BaseModel{ID: uuid.New()}, Latitude: 35.71, Longitude: 139.79, Title: "Senso-ji", OrderIndex: 1, Type: db_models.PinTypeAttraction, Icon: db_models.PinIconAttraction},
					{BaseModel: db_models.BaseModel{ID: uuid.New()}, Latitude: 35.65, Longitude: 139.74, Title: "Tokyo Tower", OrderIndex: 0, Type: db_models.PinTypeAttraction, Icon: db_models.PinIconAttraction},
					{BaseModel: db_models.BaseModel{ID: uuid.New()}, Latitude: 35.66, Longitude: 139.77, Title: "Tsukiji brunch", OrderIndex: 2, Type: db_models.PinTypeFood, Icon: db_models.PinIconFood},
				},
			}, nil
		},
	}
	svc := NewItineraryService(repo)

	out, err := svc.GetItineraryByID(context.Background(), itineraryID.String(), owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Pins) != 3 {
		t.Fatalf("expected 3 pins, got %d", len(out.Pins))
	}
	if out.Pins[0].Title != "Tokyo Tower" || out.Pins[1].Title != "Senso-ji" || out.Pins[2].Title != "Tsukiji brunch" {
		t.Fatalf("pins not ordered by order index: %+v", out.Pins)
	}
	// lngLat is [longitude, latitude].
	if out.Pins[0].LngLat != [2]float64{139.74, 35.65} {
		t.Fatalf("lngLat wrong: %v", out.Pins[0].LngLat)
	}
	if out.Pins[0].Meta == nil {
		t.Fatal("meta must be an empty object, not null")
	}
	if out.Pins[0].Description != "" {
		t.Fatalf("missing description must default to empty string")
	}
}

func TestGetItineraryByID_Errors(t *testing.T) {
	owner := uuid.New()

	t.Run("not found", func(t *testing.T) {
		repo := &mockItineraryRepo{}
		svc := NewItineraryService(repo)
		if _, err := svc.GetItineraryByID(context.Background(), uuid.NewString(), owner); !errors.Is(err, utils.ErrItineraryNotFound) {
			t.Fatalf("expected ErrItineraryNotFound, got %v", err)
		}
	})

	t.Run("malformed id never reaches the database", func(t *testing.T) {
		repo := &mockItineraryRepo{
			getByIDWithPinsFn: func(ctx context.Context, id string) (*db_models.Itinerary, error) {
				t.Fatal("repository must not be queried with a non-uuid id")
				return nil, nil
			},
		}
		svc := NewItineraryService(repo)
		if _, err := svc.GetItineraryByID(context.Background(), "not-a-uuid", owner); !errors.Is(err, utils.ErrItineraryNotFound) {
			t.Fatalf("expected ErrItineraryNotFound, got %v", err)
		}
	})

	t.Run("wrong owner is forbidden even when public", func(t *testing.T) {
		repo := &mockItineraryRepo{
			getByIDWithPinsFn: func(ctx context.Context, id string) (*db_models.Itinerary, error) {
				return &db_models.Itinerary{OwnerID: uuid.New(), IsPublic: true}, nil
			},
		}
		svc := NewItineraryService(repo)
		if _, err := svc.GetItineraryByID(context.Background(), uuid.NewString(), owner); !errors.Is(err, utils.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("repo failure is opaque", func(t *testing.T) {
		repo := &mockItineraryRepo{
			getByIDWithPinsFn: func(ctx context.Context, id string) (*db_models.Itinerary, error) {
				return nil, errors.New("pq: connection refused")
			},
		}
		svc := NewItineraryService(repo)
		if _, err := svc.GetItineraryByID(context.Background(), uuid.NewString(), owner); !errors.Is(err, utils.ErrDatabaseError) {
			t.Fatalf("expected ErrDatabaseError, got %v", err)
		}
	})
}
