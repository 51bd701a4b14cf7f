package family

import (
	"time"

	"github.com/amirasaad/networth/pkg/domain/family"
)

//revive:disable

type FamilyInput struct {
	Name string `json:"name" validate:"required,max=100"`
}

type InviteInput struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=owner admin member"`
}

type RoleInput struct {
	Role string `json:"role" validate:"required,oneof=owner admin member"`
}

type FamilyDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type MemberDTO struct {
	ID       string      `json:"id"`
	FamilyID string      `json:"familyId"`
	UserID   string      `json:"userId"`
	Email    string      `json:"email"`
	Role     family.Role `json:"role"`
	JoinedAt time.Time   `json:"joinedAt"`
}

type InvitationDTO struct {
	ID           string        `json:"id"`
	FamilyID     string        `json:"familyId"`
	FamilyName   string        `json:"familyName,omitempty"`
	InvitedBy    string        `json:"invitedBy"`
	InviteeEmail string        `json:"inviteeEmail"`
	Role         family.Role   `json:"role"`
	Status       family.Status `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	ExpiresAt    time.Time     `json:"expiresAt"`
}

func toFamilyDTO(f *family.Family) FamilyDTO {
	return FamilyDTO{
		ID:        f.ID.String(),
		Name:      f.Name,
		CreatedBy: f.CreatedBy.String(),
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toMemberDTO(m *family.Member) MemberDTO {
	return MemberDTO{
		ID:       m.ID.String(),
		FamilyID: m.FamilyID.String(),
		UserID:   m.UserID.String(),
		Email:    m.Email,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

func toInvitationDTO(i *family.Invitation) InvitationDTO {
	return InvitationDTO{
		ID:           i.ID.String(),
		FamilyID:     i.FamilyID.String(),
		FamilyName:   i.FamilyName,
		InvitedBy:    i.InvitedBy.String(),
		InviteeEmail: i.InviteeEmail,
		Role:         i.Role,
		Status:       i.Status,
		CreatedAt:    i.CreatedAt,
		ExpiresAt:    i.ExpiresAt,
	}
}

func mapSlice[T, D any](in []T, fn func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
