package user

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrForbidden = errors.New("user lacks required capability")
)

// Role is the marketplace role a user signed up with.
type Role string

const (
	RoleBuyer       Role = "buyer"
	RoleSeller      Role = "seller"
	RoleTransporter Role = "transporter"
	RoleAdmin       Role = "admin"
)

// Capability is a single permitted marketplace action.
type Capability string

const (
	CapabilityBuy       Capability = "buy"
	CapabilitySell      Capability = "sell"
	CapabilityTransport Capability = "transport"
)

// User is a marketplace participant. Accounts are provisioned by the auth provider;
// this service only reads them.
type User struct {
	ID           uuid.UUID
	Role         Role
	Email        string
	DisplayName  string
	Capabilities []Capability
	CreatedAt    time.Time
}

// Can reports whether the user may perform the action. Admins may do anything.
func (u *User) Can(c Capability) bool {
	if u.Role == RoleAdmin {
		return true
	}

	return slices.Contains(u.Capabilities, c)
}

// Name returns the display name, falling back to the email address.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}

	return u.Email
}

func (u *User) clone() *User {
	c := *u
	c.Capabilities = slices.Clone(u.Capabilities)

	return &c
}
