package family

import (
	"fmt"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/google/uuid"
)

var (
	ErrNotAMember            = fmt.Errorf("%w: caller is not a member of this family", domain.ErrForbidden)
	ErrInsufficientRole      = fmt.Errorf("%w: owner or admin role required", domain.ErrForbidden)
	ErrOwnerRequired         = fmt.Errorf("%w: owner role required", domain.ErrForbidden)
	ErrCannotRemoveOwner     = fmt.Errorf("%w: an owner cannot be removed", domain.ErrForbidden)
	ErrCannotRemoveSelf      = fmt.Errorf("%w: use leave to remove your own membership", domain.ErrForbidden)
	ErrAdminCannotTouchOwner = fmt.Errorf("%w: only an owner may change an owner or grant ownership", domain.ErrForbidden)
	ErrLastOwner             = fmt.Errorf("%w: a family must keep at least one owner", domain.ErrForbidden)
	ErrOwnerMustTransfer     = fmt.Errorf("%w: owner must transfer role before leaving", domain.ErrForbidden)
	ErrCannotCancel          = fmt.Errorf("%w: only the inviter or an owner or admin may cancel", domain.ErrForbidden)
)

// CheckManage requires actor to be an owner or admin.
func CheckManage(actor *Member) error {
	if actor == nil {
		return ErrNotAMember
	}
	if !actor.Role.CanManage() {
		return ErrInsufficientRole
	}
	return nil
}

// CheckOwner requires actor to be an owner.
func CheckOwner(actor *Member) error {
	if actor == nil {
		return ErrNotAMember
	}
	if actor.Role != RoleOwner {
		return ErrOwnerRequired
	}
	return nil
}

// CheckInvite validates that actor may offer role to a new member.
// Admins may invite members and admins; only owners may invite owners.
func CheckInvite(actor *Member, role Role) error {
	if err := CheckManage(actor); err != nil {
		return err
	}
	if role == RoleOwner && actor.Role != RoleOwner {
		return ErrAdminCannotTouchOwner
	}
	return nil
}

// CheckRemove validates that actor may remove target.
func CheckRemove(actor, target *Member) error {
	if err := CheckManage(actor); err != nil {
		return err
	}
	if target.ID == actor.ID {
		return ErrCannotRemoveSelf
	}
	if target.Role == RoleOwner {
		return ErrCannotRemoveOwner
	}
	return nil
}

// CheckRoleChange validates moving target to role within members.
func CheckRoleChange(actor, target *Member, role Role, members []*Member) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	if err := CheckManage(actor); err != nil {
		return err
	}
	if actor.Role != RoleOwner && (target.Role == RoleOwner || role == RoleOwner) {
		return ErrAdminCannotTouchOwner
	}
	if target.Role == RoleOwner && role != RoleOwner && CountOwners(members) <= 1 {
		return ErrLastOwner
	}
	return nil
}

// CheckLeave validates that self may leave. It reports whether self is the
// last member, in which case the family must be deleted with the membership.
func CheckLeave(self *Member, members []*Member) (last bool, err error) {
	if self == nil {
		return false, ErrNotAMember
	}
	if len(members) <= 1 {
		return true, nil
	}
	if self.Role == RoleOwner && CountOwners(members) <= 1 {
		return false, ErrOwnerMustTransfer
	}
	return false, nil
}

// CheckCancel validates that userID (holding membership actor, possibly nil)
// may cancel inv.
func CheckCancel(actor *Member, userID uuid.UUID, inv *Invitation) error {
	if inv.Status != StatusPending {
		return ErrInvitationNotPending
	}
	if inv.InvitedBy == userID {
		return nil
	}
	if actor != nil && actor.Role.CanManage() {
		return nil
	}
	return ErrCannotCancel
}
