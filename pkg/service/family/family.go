// Package family implements the family directory and the invitation workflow.
//
// A Directory is opened per session. Every mutation re-reads the memberships
// it authorizes against inside the same transaction that performs the write,
// and the Directory's in-memory view changes only after that transaction commits.
package family

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/domain"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/family"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/amirasaad/networth/pkg/repository"
	repofamily "github.com/amirasaad/networth/pkg/repository/family"
	repoinvitation "github.com/amirasaad/networth/pkg/repository/invitation"
	repomember "github.com/amirasaad/networth/pkg/repository/member"
	repouser "github.com/amirasaad/networth/pkg/repository/user"
	"github.com/amirasaad/networth/pkg/session"
	"github.com/google/uuid"
)

// Service opens directories.
type Service struct {
	uow           repository.UnitOfWork
	bus           eventbus.Bus
	logger        *slog.Logger
	invitationTTL time.Duration
	now           func() time.Time
}

// New creates a family Service. A non-positive invitationTTL selects
// family.DefaultInvitationTTL.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
	invitationTTL time.Duration,
) *Service {
	if invitationTTL <= 0 {
		invitationTTL = family.DefaultInvitationTTL
	}
	return &Service{
		uow:           uow,
		bus:           bus,
		logger:        logger.With("service", "family"),
		invitationTTL: invitationTTL,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Directory is one session's view of its families. It is not safe for
// concurrent use.
type Directory struct {
	svc         *Service
	sess        session.Session
	families    []*family.Family
	current     *family.Family
	members     []*family.Member
	invitations []*family.Invitation
	logger      *slog.Logger
}

// Open loads the families the session's user belongs to. No family is selected.
func (s *Service) Open(ctx context.Context, sess session.Session) (*Directory, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}
	d := &Directory{
		svc:    s,
		sess:   sess,
		logger: s.logger.With("userID", sess.UserID),
	}
	if _, err := d.ListFamilies(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

type repos struct {
	families    repofamily.Repository
	members     repomember.Repository
	invitations repoinvitation.Repository
	users       repouser.Repository
}

func reposFrom(uow repository.UnitOfWork) (*repos, error) {
	families, err := repository.Get[repofamily.Repository](uow)
	if err != nil {
		return nil, err
	}
	members, err := repository.Get[repomember.Repository](uow)
	if err != nil {
		return nil, err
	}
	invitations, err := repository.Get[repoinvitation.Repository](uow)
	if err != nil {
		return nil, err
	}
	users, err := repository.Get[repouser.Repository](uow)
	if err != nil {
		return nil, err
	}
	return &repos{families: families, members: members, invitations: invitations, users: users}, nil
}

// loadMembers reads a family's memberships and projects each user's email.
func (r *repos) loadMembers(ctx context.Context, familyID uuid.UUID) ([]*family.Member, error) {
	rows, err := r.members.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, err
	}
	members := make([]*family.Member, 0, len(rows))
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		members = append(members, memberFromDTO(row))
		ids = append(ids, row.UserID)
	}
	emails, err := r.users.EmailsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		m.Email = emails[m.UserID]
	}
	return members, nil
}

// loadInvitations reads a family's pending invitations that have not expired.
func (r *repos) loadInvitations(
	ctx context.Context,
	familyID uuid.UUID,
	now time.Time,
) ([]*family.Invitation, error) {
	rows, err := r.invitations.ListByFamily(ctx, familyID, string(family.StatusPending))
	if err != nil {
		return nil, err
	}
	invs := make([]*family.Invitation, 0, len(rows))
	for _, row := range rows {
		invs = append(invs, invitationFromDTO(row))
	}
	return family.ActiveOnly(invs, now), nil
}

// ListFamilies reloads every family the user holds a membership in. The
// selection is dropped when its family is no longer listed.
func (d *Directory) ListFamilies(ctx context.Context) ([]*family.Family, error) {
	log := d.logger.With("op", "ListFamilies")
	repo, err := repository.Get[repofamily.Repository](d.svc.uow)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ListByUser(ctx, d.sess.UserID)
	if err != nil {
		log.Error("failed to list families", "error", err)
		return nil, err
	}
	families := make([]*family.Family, 0, len(rows))
	for _, row := range rows {
		families = append(families, familyFromDTO(row))
	}
	d.families = families
	if d.current != nil && d.find(d.current.ID) == nil {
		d.clearSelection()
	}
	return d.Families(), nil
}

// SelectFamily makes id the current family and loads its members and
// invitations. Families the user does not belong to are not found.
func (d *Directory) SelectFamily(ctx context.Context, id uuid.UUID) error {
	log := d.logger.With("op", "SelectFamily", "familyID", id)
	f := d.find(id)
	if f == nil {
		return family.ErrFamilyNotFound
	}
	r, err := reposFrom(d.svc.uow)
	if err != nil {
		return err
	}
	members, err := r.loadMembers(ctx, id)
	if err != nil {
		log.Error("failed to load members", "error", err)
		return err
	}
	invitations, err := r.loadInvitations(ctx, id, d.svc.now())
	if err != nil {
		log.Error("failed to load invitations", "error", err)
		return err
	}
	d.current = f
	d.members = members
	d.invitations = invitations
	log.Debug("family selected", "members", len(members), "invitations", len(invitations))
	return nil
}

// CreateFamily creates a family with the caller as its owner and selects it.
// The family and the owner membership are written in one transaction.
func (d *Directory) CreateFamily(ctx context.Context, name string) (*family.Family, error) {
	log := d.logger.With("op", "CreateFamily")
	log.Debug("CreateFamily called")
	now := d.svc.now()

	f, err := family.NewFamily(name, d.sess.UserID, now)
	if err != nil {
		return nil, err
	}
	owner, err := family.NewMember(f.ID, d.sess.UserID, family.RoleOwner, now)
	if err != nil {
		return nil, err
	}
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		if err := r.families.Create(ctx, familyToDTO(f)); err != nil {
			return err
		}
		return r.members.Create(ctx, memberToDTO(owner))
	})
	if err != nil {
		log.Error("failed to create family", "error", err)
		return nil, err
	}

	owner.Email = d.sess.Email
	d.families = append(d.families, f)
	d.current = f
	d.members = []*family.Member{owner}
	d.invitations = []*family.Invitation{}
	log.Info("family created", "familyID", f.ID)

	d.emit(ctx, events.FamilyChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeFamilyCreated,
		FamilyID: f.ID,
		Name:     f.Name,
	})
	return f, nil
}

// UpdateFamily renames family id. Owners and admins only.
func (d *Directory) UpdateFamily(ctx context.Context, id uuid.UUID, name string) (*family.Family, error) {
	log := d.logger.With("op", "UpdateFamily", "familyID", id)
	f := d.find(id)
	if f == nil {
		return nil, family.ErrFamilyNotFound
	}
	renamed, err := f.Renamed(name, d.svc.now())
	if err != nil {
		return nil, err
	}
	err = d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, id)
		if err != nil {
			return err
		}
		if err := family.CheckManage(family.FindByUser(members, d.sess.UserID)); err != nil {
			return err
		}
		return mapNotFound(r.families.Rename(ctx, id, renamed.Name, renamed.UpdatedAt), family.ErrFamilyNotFound)
	})
	if err != nil {
		log.Error("failed to rename family", "error", err)
		return nil, err
	}

	d.replace(renamed)
	log.Info("family renamed")
	d.emit(ctx, events.FamilyChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeFamilyUpdated,
		FamilyID: id,
		Name:     renamed.Name,
	})
	return renamed, nil
}

// DeleteFamily removes family id with its memberships and invitations.
// Owners only.
func (d *Directory) DeleteFamily(ctx context.Context, id uuid.UUID) error {
	log := d.logger.With("op", "DeleteFamily", "familyID", id)
	f := d.find(id)
	if f == nil {
		return family.ErrFamilyNotFound
	}
	err := d.svc.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := reposFrom(uow)
		if err != nil {
			return err
		}
		members, err := r.loadMembers(ctx, id)
		if err != nil {
			return err
		}
		if err := family.CheckOwner(family.FindByUser(members, d.sess.UserID)); err != nil {
			return err
		}
		return r.deleteFamily(ctx, id)
	})
	if err != nil {
		log.Error("failed to delete family", "error", err)
		return err
	}

	d.drop(id)
	log.Info("family deleted")
	d.emit(ctx, events.FamilyChanged{
		Meta:     events.NewMeta(d.sess.UserID),
		Kind:     events.EventTypeFamilyDeleted,
		FamilyID: id,
		Name:     f.Name,
	})
	return nil
}

func (r *repos) deleteFamily(ctx context.Context, id uuid.UUID) error {
	if err := r.invitations.DeleteByFamily(ctx, id); err != nil {
		return err
	}
	if err := r.members.DeleteByFamily(ctx, id); err != nil {
		return err
	}
	return r.families.Delete(ctx, id)
}

// Families returns a copy of the loaded families.
func (d *Directory) Families() []*family.Family {
	return append([]*family.Family(nil), d.families...)
}

// Current returns the selected family, or nil.
func (d *Directory) Current() *family.Family { return d.current }

// Members returns the selected family's members as last loaded.
func (d *Directory) Members() []*family.Member {
	return append([]*family.Member(nil), d.members...)
}

// Invitations returns the selected family's active invitations as last loaded.
func (d *Directory) Invitations() []*family.Invitation {
	return append([]*family.Invitation(nil), d.invitations...)
}

// Session returns the session the directory was opened for.
func (d *Directory) Session() session.Session { return d.sess }

func (d *Directory) requireSelection() (*family.Family, error) {
	if d.current == nil {
		return nil, family.ErrNoFamilySelected
	}
	return d.current, nil
}

func (d *Directory) find(id uuid.UUID) *family.Family {
	for _, f := range d.families {
		if f.ID == id {
			return f
		}
	}
	return nil
}

func (d *Directory) replace(f *family.Family) {
	for i, existing := range d.families {
		if existing.ID == f.ID {
			d.families[i] = f
		}
	}
	if d.current != nil && d.current.ID == f.ID {
		d.current = f
	}
}

func (d *Directory) drop(id uuid.UUID) {
	kept := make([]*family.Family, 0, len(d.families))
	for _, f := range d.families {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	d.families = kept
	if d.current != nil && d.current.ID == id {
		d.clearSelection()
	}
}

func (d *Directory) clearSelection() {
	d.current = nil
	d.members = nil
	d.invitations = nil
}

func (d *Directory) emit(ctx context.Context, e events.Event) {
	if d.svc.bus == nil {
		return
	}
	if err := d.svc.bus.Emit(ctx, e); err != nil {
		d.logger.Warn("failed to emit event", "type", e.Type(), "error", err)
	}
}

// mapNotFound replaces a storage not-found with the caller's specific error.
func mapNotFound(err, notFound error) error {
	if err != nil && errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	return err
}
