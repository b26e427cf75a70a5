package models

import "time"

// Session is the client's cached snapshot of the authenticated user. Only the
// allow-listed subset of the auth response is ever kept here; whatever else
// the backend returns is dropped at login time.
type Session struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	PhNumber  string    `json:"phNumber,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasDeliveryDetails reports whether the snapshot carries everything the
// checkout address gate requires.
func (s *Session) HasDeliveryDetails() bool {
	return s.Address != "" && s.PhNumber != "" && s.City != ""
}

// AuthUser is the backend's auth response shape. It is a superset of Session;
// fields like Role never survive into the persisted snapshot.
type AuthUser struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Address   string    `json:"address,omitempty"`
	PhNumber  string    `json:"phNumber,omitempty"`
	City      string    `json:"city,omitempty"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ProfileUpdate carries a partial overwrite of the session snapshot. Empty
// fields are left untouched by the merge.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Address  string `json:"address,omitempty"`
	PhNumber string `json:"phNumber,omitempty"`
	City     string `json:"city,omitempty"`
}

// AddressForm is the checkout address step's submission.
type AddressForm struct {
	Address  string `json:"address" validate:"required"`
	PhNumber string `json:"phNumber" validate:"required"`
	City     string `json:"city" validate:"required"`
}
