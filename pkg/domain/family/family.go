// Package family models sharing groups, their memberships and invitations.
package family

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/google/uuid"
)

// Role is a member's permission level inside a family.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

var (
	ErrEmptyFamilyName  = fmt.Errorf("%w: family name must not be empty", domain.ErrValidation)
	ErrInvalidRole      = fmt.Errorf("%w: role must be owner, admin or member", domain.ErrValidation)
	ErrFamilyNotFound   = fmt.Errorf("%w: family not found", domain.ErrNotFound)
	ErrMemberNotFound   = fmt.Errorf("%w: member not found", domain.ErrNotFound)
	ErrNoFamilySelected = fmt.Errorf("%w: no family selected", domain.ErrValidation)
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// CanManage reports whether the role may manage members and invitations.
func (r Role) CanManage() bool {
	return r == RoleOwner || r == RoleAdmin
}

// ParseRole converts s into a Role. An empty string yields RoleMember.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleMember, nil
	}
	r := Role(strings.ToLower(s))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Family is a named sharing group.
type Family struct {
	ID        uuid.UUID
	Name      string
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFamily validates name and returns a family created by creator.
func NewFamily(name string, creator uuid.UUID, now time.Time) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFamilyName
	}
	return &Family{
		ID:        uuid.New(),
		Name:      name,
		CreatedBy: creator,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Renamed returns a copy of f with the new name.
func (f *Family) Renamed(name string, now time.Time) (*Family, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyFamilyName
	}
	out := *f
	out.Name = name
	out.UpdatedAt = now
	return &out, nil
}

// Member is one user's membership in a family. Email is a read projection
// filled from the user directory and is not persisted with the membership.
type Member struct {
	ID       uuid.UUID
	FamilyID uuid.UUID
	UserID   uuid.UUID
	Role     Role
	JoinedAt time.Time
	Email    string
}

// NewMember returns a membership for userID in familyID.
func NewMember(familyID, userID uuid.UUID, role Role, now time.Time) (*Member, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	return &Member{
		ID:       uuid.New(),
		FamilyID: familyID,
		UserID:   userID,
		Role:     role,
		JoinedAt: now,
	}, nil
}

// FindByUser returns the membership of userID, or nil.
func FindByUser(members []*Member, userID uuid.UUID) *Member {
	for _, m := range members {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}

// FindByID returns the membership with id, or nil.
func FindByID(members []*Member, id uuid.UUID) *Member {
	for _, m := range members {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// FindByEmail matches case-insensitively on the projected email.
func FindByEmail(members []*Member, email string) *Member {
	for _, m := range members {
		if m.Email != "" && strings.EqualFold(m.Email, email) {
			return m
		}
	}
	return nil
}

// CountOwners returns how many members hold the owner role.
func CountOwners(members []*Member) int {
	n := 0
	for _, m := range members {
		if m.Role == RoleOwner {
			n++
		}
	}
	return n
}
