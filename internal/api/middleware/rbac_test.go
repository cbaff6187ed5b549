package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bookinghub/booking-api/internal/core/domain"
)

func runRequire(op domain.Operation, identity *domain.Identity) error {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		SetIdentity(c, identity)
	}
	handler := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	return Require(op)(handler)(c)
}

func TestRequire(t *testing.T) {
	client := &domain.Identity{ID: "c1", Role: domain.RoleClient}
	provider := &domain.Identity{ID: "p1", Role: domain.RoleProvider}
	admin := &domain.Identity{ID: "a1", Role: domain.RoleAdmin}

	cases := []struct {
		name     string
		op       domain.Operation
		identity *domain.Identity
		allowed  bool
	}{
		{"anonymous rejected", domain.OpCreateBooking, nil, false},
		{"client books", domain.OpCreateBooking, client, true},
		{"provider cannot book", domain.OpCreateBooking, provider, false},
		{"admin publishes service", domain.OpCreateService, admin, true},
		{"provider cannot publish service", domain.OpCreateService, provider, false},
		{"client cannot publish service", domain.OpCreateService, client, false},
		{"provider transitions", domain.OpUpdateBookingStatus, provider, true},
		{"client cannot transition", domain.OpUpdateBookingStatus, client, false},
		{"client reviews", domain.OpCreateReview, client, true},
		{"provider cannot review", domain.OpCreateReview, provider, false},
		{"admin lists bookings", domain.OpListBookings, admin, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := runRequire(tc.op, tc.identity)
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestIdentityHelpers(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if got := Identity(c); got != nil {
		t.Fatalf("expected nil identity, got %+v", got)
	}

	want := &domain.Identity{ID: "c1", Role: domain.RoleClient}
	SetIdentity(c, want)
	if got := Identity(c); got != want {
		t.Fatalf("expected stored identity, got %+v", got)
	}
}
