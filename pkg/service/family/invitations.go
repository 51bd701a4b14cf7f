package family

import (
	"context"
	"errors"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/family"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/google/uuid"
)

// ListInvitations reloads the selected family's pending, unexpired invitations.
func (d *Directory) ListInvitations(ctx context.Context) ([]*family.Invitation, error) {
	f, err := d.requireSelection()
	if err != nil {
		return nil, err
	}
	r, err := reposFrom(d.svc.uow)
	if err != nil {
		return nil, err
	}
	invs, err := r.loadInvitations(ctx, f.ID, d.svc.now())
	if err != nil {
		d.logger.Error("failed to list invitations", "familyID", f.ID, "error", err)
		return nil, err
	}
	d.invitations = invs
	return d.Invitations(), nil
}

// Invite offers role in the selected family to email. An empty role means member.
func (d *Directory) Invite(ctx context.Context, email, role string) (*family.Invitation, error) {
	f, err := d.requireSelection()
	if err != nil {
		return nil, err
	}
	parsed, err := family.ParseRole(role)
	if err != nil {
		return nil, err
	}
	now := d.svc.now()
	inv, err := family.NewInvitation(f.ID, d.sess.UserID, email, parsed, now, d.svc.invitationTTL)
	if err != nil {
		return nil, err
	}
	log := d.logger.With("op", "Invite", "familyID", f.ID)
	log.Debug("Invite called", "role", parsed)

	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, f.ID)
		if err != nil {
			return err
		}
		if err := family.CheckInvite(family.FindByUser(members, d.sess.UserID), parsed); err != nil {
			return err
		}
		if family.FindByEmail(members, inv.InviteeEmail) != nil {
			return family.ErrAlreadyMember
		}
		pending, err := r.loadInvitations(ctx, f.ID, now)
		if err != nil {
			return err
		}
		for _, p := range pending {
			if p.AddressedTo(inv.InviteeEmail) {
				return family.ErrAlreadyInvited
			}
		}
		return r.invitations.Create(ctx, invitationToDTO(inv))
	})
	if err != nil {
		log.Error("failed to invite", "error", err)
		return nil, err
	}

	d.invitations = append([]*family.Invitation{inv}, d.invitations...)
	log.Info("invitation created", "invitationID", inv.ID)
	d.emit(ctx, events.InvitationChanged{
		Meta:         events.NewMeta(d.sess.UserID),
		Kind:         events.EventTypeInvitationCreated,
		InvitationID: inv.ID,
		FamilyID:     f.ID,
		InviteeEmail: inv.InviteeEmail,
	})
	return inv, nil
}

// CancelInvitation deletes a pending invitation of the selected family. The
// inviter and the family's owners and admins may cancel.
func (d *Directory) CancelInvitation(ctx context.Context, invitationID uuid.UUID) error {
	f, err := d.requireSelection()
	if err != nil {
		return err
	}
	log := d.logger.With("op", "CancelInvitation", "familyID", f.ID, "invitationID", invitationID)
	var cancelled *family.Invitation
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		row, err := r.invitations.Get(ctx, invitationID)
		if err != nil {
			return mapNotFound(err, family.ErrInvitationNotFound)
		}
		inv := invitationFromDTO(row)
		if inv.FamilyID != f.ID {
			return family.ErrInvitationNotFound
		}
		members, err := r.loadMembers(ctx, f.ID)
		if err != nil {
			return err
		}
		if err := family.CheckCancel(family.FindByUser(members, d.sess.UserID), d.sess.UserID, inv); err != nil {
			return err
		}
		cancelled = inv
		return r.invitations.Delete(ctx, invitationID)
	})
	if err != nil {
		log.Error("failed to cancel invitation", "error", err)
		return err
	}

	kept := make([]*family.Invitation, 0, len(d.invitations))
	for _, inv := range d.invitations {
		if inv.ID != invitationID {
			kept = append(kept, inv)
		}
	}
	d.invitations = kept
	log.Info("invitation cancelled")
	d.emit(ctx, events.InvitationChanged{
		Meta:         events.NewMeta(d.sess.UserID),
		Kind:         events.EventTypeInvitationCancelled,
		InvitationID: invitationID,
		FamilyID:     f.ID,
		InviteeEmail: cancelled.InviteeEmail,
	})
	return nil
}

// PendingInvitations lists the active invitations addressed to the caller's
// email, each carrying its family's name.
func (d *Directory) PendingInvitations(ctx context.Context) ([]*family.Invitation, error) {
	log := d.logger.With("op", "PendingInvitations")
	r, err := reposFrom(d.svc.uow)
	if err != nil {
		return nil, err
	}
	rows, err := r.invitations.ListByEmail(ctx, d.sess.Email, string(family.StatusPending))
	if err != nil {
		log.Error("failed to list invitations", "error", err)
		return nil, err
	}
	invs := make([]*family.Invitation, 0, len(rows))
	for _, row := range rows {
		invs = append(invs, invitationFromDTO(row))
	}
	invs = family.ActiveOnly(invs, d.svc.now())

	names := make(map[uuid.UUID]string)
	for _, inv := range invs {
		name, ok := names[inv.FamilyID]
		if !ok {
			fam, err := r.families.Get(ctx, inv.FamilyID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
			case err != nil:
				log.Error("failed to load family", "familyID", inv.FamilyID, "error", err)
				return nil, err
			default:
				name = fam.Name
			}
			names[inv.FamilyID] = name
		}
		inv.FamilyName = name
	}
	return invs, nil
}

// AcceptInvitation joins the caller to the invitation's family with the
// offered role. The status change and the membership are written together.
func (d *Directory) AcceptInvitation(ctx context.Context, invitationID uuid.UUID) (*family.Member, error) {
	log := d.logger.With("op", "AcceptInvitation", "invitationID", invitationID)
	now := d.svc.now()
	var (
		inv    *family.Invitation
		joined *family.Member
		fam    *family.Family
	)
	err := d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		row, err := r.invitations.Get(ctx, invitationID)
		if err != nil {
			return mapNotFound(err, family.ErrInvitationNotFound)
		}
		inv = invitationFromDTO(row)
		if err := inv.Accept(d.sess.UserID, d.sess.Email, now); err != nil {
			return err
		}
		famRow, err := r.families.Get(ctx, inv.FamilyID)
		if err != nil {
			return mapNotFound(err, family.ErrFamilyNotFound)
		}
		fam = familyFromDTO(famRow)
		members, err := r.members.ListByFamily(ctx, inv.FamilyID)
		if err != nil {
			return err
		}
		for _, m := range members {
			if m.UserID == d.sess.UserID {
				return family.ErrAlreadyMember
			}
		}
		if joined, err = family.NewMember(inv.FamilyID, d.sess.UserID, inv.Role, now); err != nil {
			return err
		}
		if err := mapNotFound(r.invitations.Respond(ctx, inv.ID, responseDTO(inv)), family.ErrInvitationNotFound); err != nil {
			return err
		}
		return r.members.Create(ctx, memberToDTO(joined))
	})
	if err != nil {
		log.Error("failed to accept invitation", "error", err)
		return nil, err
	}

	joined.Email = d.sess.Email
	if d.find(fam.ID) == nil {
		d.families = append(d.families, fam)
	}
	log.Info("invitation accepted", "familyID", fam.ID)
	d.emit(ctx, events.InvitationChanged{
		Meta:         events.NewMeta(d.sess.UserID),
		Kind:         events.EventTypeInvitationAccepted,
		InvitationID: inv.ID,
		FamilyID:     inv.FamilyID,
		InviteeEmail: inv.InviteeEmail,
	})
	return joined, nil
}

// RejectInvitation declines an invitation addressed to the caller.
func (d *Directory) RejectInvitation(ctx context.Context, invitationID uuid.UUID) error {
	log := d.logger.With("op", "RejectInvitation", "invitationID", invitationID)
	var inv *family.Invitation
	err := d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		row, err := r.invitations.Get(ctx, invitationID)
		if err != nil {
			return mapNotFound(err, family.ErrInvitationNotFound)
		}
		inv = invitationFromDTO(row)
		if err := inv.Reject(d.sess.UserID, d.sess.Email, d.svc.now()); err != nil {
			return err
		}
		return mapNotFound(r.invitations.Respond(ctx, inv.ID, responseDTO(inv)), family.ErrInvitationNotFound)
	})
	if err != nil {
		log.Error("failed to reject invitation", "error", err)
		return err
	}

	log.Info("invitation rejected", "familyID", inv.FamilyID)
	d.emit(ctx, events.InvitationChanged{
		Meta:         events.NewMeta(d.sess.UserID),
		Kind:         events.EventTypeInvitationRejected,
		InvitationID: inv.ID,
		FamilyID:     inv.FamilyID,
		InviteeEmail: inv.InviteeEmail,
	})
	return nil
}
