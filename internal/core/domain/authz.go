package domain

// Operation identifies an action subject to the authorization policy.
type Operation string

const (
	OpCreateService       Operation = "create_service"
	OpCreateBooking       Operation = "create_booking"
	OpUpdateBookingStatus Operation = "update_booking_status"
	OpListBookings        Operation = "list_bookings"
	OpCreateReview        Operation = "create_review"
	OpListReviews         Operation = "list_reviews"
	OpReadProfile         Operation = "read_profile"
)

// policy is the fixed role table: which roles may attempt each operation.
// Ownership constraints are enforced separately in Authorize because they
// need the resource, not just the role.
var policy = map[Operation][]Role{
	OpCreateService:       {RoleAdmin},
	OpCreateBooking:       {RoleClient},
	OpUpdateBookingStatus: {RoleProvider, RoleAdmin},
	OpListBookings:        {RoleClient, RoleProvider, RoleAdmin},
	OpCreateReview:        {RoleClient},
	OpListReviews:         {RoleClient, RoleProvider, RoleAdmin},
	OpReadProfile:         {RoleClient, RoleProvider, RoleAdmin},
}

// Authorize is the single decision point for role and ownership checks.
// booking carries the resource under mutation for the operations that have
// an ownership constraint; pass nil for the rest.
//
// The two failure modes are deliberately distinct: a nil identity means the
// caller was never authenticated (ErrUnauthorized), a role mismatch on a
// privileged operation also surfaces as ErrUnauthorized to match the outward
// API contract, and a failed ownership check on an existing resource is
// ErrForbidden.
func Authorize(identity *Identity, op Operation, booking *Booking) error {
	if identity == nil {
		return ErrUnauthorized
	}

	allowed := false
	for _, r := range policy[op] {
		if identity.Role == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrUnauthorized
	}

	switch op {
	case OpUpdateBookingStatus:
		// Only the booking's own provider may drive a transition; ADMIN
		// bypasses ownership.
		if identity.Role != RoleAdmin && booking != nil && booking.ProviderID != identity.ID {
			return ErrForbidden
		}
	case OpCreateReview:
		if booking != nil && booking.ClientID != identity.ID {
			return ErrForbidden
		}
	}

	return nil
}
