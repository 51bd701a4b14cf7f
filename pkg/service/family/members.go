package family

import (
	"context"

	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/family"
	"github.com/amirasaad/networth/pkg/repository"
	"github.com/google/uuid"
)

// ListMembers reloads the selected family's members.
func (d *Directory) ListMembers(ctx context.Context) ([]*family.Member, error) {
	f, err := d.requireSelection()
	if err != nil {
		return nil, err
	}
	r, err := reposFrom(d.svc.uow)
	if err != nil {
		return nil, err
	}
	members, err := r.loadMembers(ctx, f.ID)
	if err != nil {
		d.logger.Error("failed to list members", "familyID", f.ID, "error", err)
		return nil, err
	}
	d.members = members
	return d.Members(), nil
}

// RemoveMember deletes another member's membership of the selected family.
// Owners cannot be removed and nobody can remove themselves.
func (d *Directory) RemoveMember(ctx context.Context, memberID uuid.UUID) error {
	f, err := d.requireSelection()
	if err != nil {
		return err
	}
	log := d.logger.With("op", "RemoveMember", "familyID", f.ID, "memberID", memberID)
	var removed *family.Member
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, f.ID)
		if err != nil {
			return err
		}
		actor := family.FindByUser(members, d.sess.UserID)
		target := family.FindByID(members, memberID)
		if actor == nil {
			return family.ErrNotAMember
		}
		if target == nil {
			return family.ErrMemberNotFound
		}
		if err := family.CheckRemove(actor, target); err != nil {
			return err
		}
		removed = target
		return r.members.Delete(ctx, memberID)
	})
	if err != nil {
		log.Error("failed to remove member", "error", err)
		return err
	}

	d.members = without(d.members, memberID)
	log.Info("member removed")
	d.emit(ctx, events.MembershipChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeMemberRemoved,
		FamilyID: f.ID,
		MemberID: memberID,
		Role:     string(removed.Role),
	})
	return nil
}

// UpdateMemberRole moves a member of the selected family to role.
func (d *Directory) UpdateMemberRole(ctx context.Context, memberID uuid.UUID, role string) (*family.Member, error) {
	f, err := d.requireSelection()
	if err != nil {
		return nil, err
	}
	if role == "" {
		return nil, family.ErrInvalidRole
	}
	parsed, err := family.ParseRole(role)
	if err != nil {
		return nil, err
	}
	log := d.logger.With("op", "UpdateMemberRole", "familyID", f.ID, "memberID", memberID)
	var updated *family.Member
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, f.ID)
		if err != nil {
			return err
		}
		actor := family.FindByUser(members, d.sess.UserID)
		target := family.FindByID(members, memberID)
		if actor == nil {
			return family.ErrNotAMember
		}
		if target == nil {
			return family.ErrMemberNotFound
		}
		if err := family.CheckRoleChange(actor, target, parsed, members); err != nil {
			return err
		}
		if err := mapNotFound(r.members.UpdateRole(ctx, memberID, string(parsed)), family.ErrMemberNotFound); err != nil {
			return err
		}
		changed := *target
		changed.Role = parsed
		updated = &changed
		return nil
	})
	if err != nil {
		log.Error("failed to update member role", "error", err)
		return nil, err
	}

	for i, m := range d.members {
		if m.ID == memberID {
			d.members[i] = updated
		}
	}
	log.Info("member role updated", "role", parsed)
	d.emit(ctx, events.MembershipChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeMemberRoleChanged,
		FamilyID: f.ID,
		MemberID: memberID,
		Role:     string(parsed),
	})
	return updated, nil
}

// LeaveFamily removes the caller's own membership of the selected family.
// When the caller is the last member the family is deleted as well.
func (d *Directory) LeaveFamily(ctx context.Context) error {
	f, err := d.requireSelection()
	if err != nil {
		return err
	}
	log := d.logger.With("op", "LeaveFamily", "familyID", f.ID)
	var (
		self *family.Member
		last bool
	)
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, f.ID)
		if err != nil {
			return err
		}
		self = family.FindByUser(members, d.sess.UserID)
		if last, err = family.CheckLeave(self, members); err != nil {
			return err
		}
		if last {
			return r.deleteFamily(ctx, f.ID)
		}
		return r.members.Delete(ctx, self.ID)
	})
	if err != nil {
		log.Error("failed to leave family", "error", err)
		return err
	}

	d.drop(f.ID)
	log.Info("left family", "familyDeleted", last)
	d.emit(ctx, events.MembershipChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeMemberLeft,
		FamilyID: f.ID,
		MemberID: self.ID,
		Role:     string(self.Role),
	})
	if last {
		d.emit(ctx, events.FamilyChanged{
			Meta:     events.NewMeta(d.sess.UserID),
			Kind:     events.EventTypeFamilyDeleted,
			FamilyID: f.ID,
			Name:     f.Name,
		})
	}
	return nil
}

func without(members []*family.Member, id uuid.UUID) []*family.Member {
	kept := make([]*family.Member, 0, len(members))
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	return kept
}
