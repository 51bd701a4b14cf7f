package family

import (
	"github.com/amirasaad/networth/pkg/domain/family"
	"github.com/amirasaad/networth/pkg/dto"
)

func familyToDTO(f *family.Family) *dto.FamilyCreate {
	return &dto.FamilyCreate{
		ID:        f.ID,
		Name:      f.Name,
		CreatedBy: f.CreatedBy,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func familyFromDTO(r *dto.FamilyRead) *family.Family {
	return &family.Family{
		ID:        r.ID,
		Name:      r.Name,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func memberToDTO(m *family.Member) *dto.MemberCreate {
	return &dto.MemberCreate{
		ID:       m.ID,
		FamilyID: m.FamilyID,
		UserID:   m.UserID,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func memberFromDTO(r *dto.MemberRead) *family.Member {
	return &family.Member{
		ID:       r.ID,
		FamilyID: r.FamilyID,
		UserID:   r.UserID,
		Role:     family.Role(r.Role),
		JoinedAt: r.JoinedAt,
	}
}

func invitationToDTO(i *family.Invitation) *dto.InvitationCreate {
	return &dto.InvitationCreate{
		ID:           i.ID,
		FamilyID:     i.FamilyID,
		InvitedBy:    i.InvitedBy,
		InviteeEmail: i.InviteeEmail,
		Status:       string(i.Status),
		Role:         string(i.Role),
		CreatedAt:    i.CreatedAt,
		ExpiresAt:    i.ExpiresAt,
	}
}

func invitationFromDTO(r *dto.InvitationRead) *family.Invitation {
	return &family.Invitation{
		ID:           r.ID,
		FamilyID:     r.FamilyID,
		InvitedBy:    r.InvitedBy,
		InviteeEmail: r.InviteeEmail,
		InviteeID:    r.InviteeID,
		Status:       family.Status(r.Status),
		Role:         family.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		ExpiresAt:    r.ExpiresAt,
		RespondedAt:  r.RespondedAt,
	}
}

func responseDTO(i *family.Invitation) *dto.InvitationUpdate {
	u := &dto.InvitationUpdate{Status: string(i.Status)}
	if i.InviteeID != nil {
		u.InviteeID = *i.InviteeID
	}
	if i.RespondedAt != nil {
		u.RespondedAt = *i.RespondedAt
	}
	return u
}
