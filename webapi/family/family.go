// Package family serves families, memberships and invitations.
package family

import (
	"github.com/amirasaad/networth/pkg/config"
	"github.com/amirasaad/networth/pkg/middleware"
	familysvc "github.com/amirasaad/networth/pkg/service/family"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/amirasaad/networth/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers the family endpoints. A :id segment under /families selects
// that family before the handler runs.
func Routes(app *fiber.App, svc *familysvc.Service, jwt *config.Jwt) {
	protected := middleware.JwtProtected(jwt)

	app.Get("/families", protected, common.WithSession(ListFamilies(svc)))
	app.Post("/families", protected, common.WithSession(CreateFamily(svc)))
	app.Patch("/families/:id", protected, common.WithSession(UpdateFamily(svc)))
	app.Delete("/families/:id", protected, common.WithSession(DeleteFamily(svc)))

	app.Get("/families/:id/members", protected, common.WithSession(selected(svc, ListMembers)))
	app.Patch("/families/:id/members/:memberId", protected, common.WithSession(selected(svc, UpdateMemberRole)))
	app.Delete("/families/:id/members/:memberId", protected, common.WithSession(selected(svc, RemoveMember)))
	app.Post("/families/:id/leave", protected, common.WithSession(selected(svc, Leave)))

	app.Get("/families/:id/invitations", protected, common.WithSession(selected(svc, ListInvitations)))
	app.Post("/families/:id/invitations", protected, common.WithSession(selected(svc, Invite)))
	app.Delete(
		"/families/:id/invitations/:invitationId",
		protected,
		common.WithSession(selected(svc, CancelInvitation)),
	)

	app.Get("/invitations", protected, common.WithSession(PendingInvitations(svc)))
	app.Post("/invitations/:id/accept", protected, common.WithSession(AcceptInvitation(svc)))
	app.Post("/invitations/:id/reject", protected, common.WithSession(RejectInvitation(svc)))
}

type directoryHandler func(c *fiber.Ctx, d *familysvc.Directory) error

func open(c *fiber.Ctx, svc *familysvc.Service, sess session.Session) (*familysvc.Directory, error) {
	d, err := svc.Open(c.UserContext(), sess)
	if err != nil {
		return nil, common.ProblemDetailsJSON(c, "Failed to load families", err)
	}
	return d, nil
}

// selected opens the caller's directory and selects the family named by :id.
func selected(svc *familysvc.Service, next directoryHandler) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		if err := d.SelectFamily(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to select family", err)
		}
		return next(c, d)
	}
}

func ListFamilies(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Families", mapSlice(d.Families(), toFamilyDTO))
	}
}

func CreateFamily(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		input, err := common.BindAndValidate[FamilyInput](c)
		if input == nil {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		f, err := d.CreateFamily(c.UserContext(), input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create family", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Family created", toFamilyDTO(f))
	}
}

func UpdateFamily(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		input, err := common.BindAndValidate[FamilyInput](c)
		if input == nil {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		f, err := d.UpdateFamily(c.UserContext(), id, input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to update family", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Family updated", toFamilyDTO(f))
	}
}

func DeleteFamily(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		if err := d.DeleteFamily(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to delete family", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ListMembers(c *fiber.Ctx, d *familysvc.Directory) error {
	members, err := d.ListMembers(c.UserContext())
	if err != nil {
		return common.ProblemDetailsJSON(c, "Failed to list members", err)
	}
	return common.SuccessResponseJSON(c, fiber.StatusOK, "Members", mapSlice(members, toMemberDTO))
}

func UpdateMemberRole(c *fiber.Ctx, d *familysvc.Directory) error {
	memberID, ok, err := common.ParseID(c, "memberId")
	if !ok {
		return err
	}
	input, err := common.BindAndValidate[RoleInput](c)
	if input == nil {
		return err
	}
	m, err := d.UpdateMemberRole(c.UserContext(), memberID, input.Role)
	if err != nil {
		return common.ProblemDetailsJSON(c, "Failed to update role", err)
	}
	return common.SuccessResponseJSON(c, fiber.StatusOK, "Role updated", toMemberDTO(m))
}

func RemoveMember(c *fiber.Ctx, d *familysvc.Directory) error {
	memberID, ok, err := common.ParseID(c, "memberId")
	if !ok {
		return err
	}
	if err := d.RemoveMember(c.UserContext(), memberID); err != nil {
		return common.ProblemDetailsJSON(c, "Failed to remove member", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func Leave(c *fiber.Ctx, d *familysvc.Directory) error {
	if err := d.LeaveFamily(c.UserContext()); err != nil {
		return common.ProblemDetailsJSON(c, "Failed to leave family", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ListInvitations(c *fiber.Ctx, d *familysvc.Directory) error {
	invs, err := d.ListInvitations(c.UserContext())
	if err != nil {
		return common.ProblemDetailsJSON(c, "Failed to list invitations", err)
	}
	return common.SuccessResponseJSON(c, fiber.StatusOK, "Invitations", mapSlice(invs, toInvitationDTO))
}

func Invite(c *fiber.Ctx, d *familysvc.Directory) error {
	input, err := common.BindAndValidate[InviteInput](c)
	if input == nil {
		return err
	}
	inv, err := d.Invite(c.UserContext(), input.Email, input.Role)
	if err != nil {
		return common.ProblemDetailsJSON(c, "Failed to invite", err)
	}
	return common.SuccessResponseJSON(c, fiber.StatusCreated, "Invitation sent", toInvitationDTO(inv))
}

func CancelInvitation(c *fiber.Ctx, d *familysvc.Directory) error {
	invitationID, ok, err := common.ParseID(c, "invitationId")
	if !ok {
		return err
	}
	if err := d.CancelInvitation(c.UserContext(), invitationID); err != nil {
		return common.ProblemDetailsJSON(c, "Failed to cancel invitation", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func PendingInvitations(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		invs, err := d.PendingInvitations(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list invitations", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invitations", mapSlice(invs, toInvitationDTO))
	}
}

func AcceptInvitation(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		m, err := d.AcceptInvitation(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to accept invitation", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invitation accepted", toMemberDTO(m))
	}
}

func RejectInvitation(svc *familysvc.Service) func(*fiber.Ctx, session.Session) error {
	return func(c *fiber.Ctx, sess session.Session) error {
		id, ok, err := common.ParseID(c, "id")
		if !ok {
			return err
		}
		d, err := open(c, svc, sess)
		if d == nil {
			return err
		}
		if err := d.RejectInvitation(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Failed to reject invitation", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
