// Package snapshot records and reads a user's net-worth history.
package snapshot

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/networth/pkg/domain/account"
	"github.com/amirasaad/networth/pkg/domain/category"
	"github.com/amirasaad/networth/pkg/domain/events"
	"github.com/amirasaad/networth/pkg/domain/snapshot"
	"github.com/amirasaad/networth/pkg/dto"
	"github.com/amirasaad/networth/pkg/eventbus"
	"github.com/amirasaad/networth/pkg/repository"
	reposnapshot "github.com/amirasaad/networth/pkg/repository/snapshot"
	"github.com/amirasaad/networth/pkg/session"
)

// Service opens snapshot recorders.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
	now    func() time.Time
}

// New creates a snapshot Service.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		bus:    bus,
		logger: logger.With("service", "snapshot"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Recorder holds one session's snapshot history in insertion order.
type Recorder struct {
	svc     *Service
	sess    session.Session
	history []*snapshot.Snapshot
	logger  *slog.Logger
}

// Open loads the session user's history.
func (s *Service) Open(ctx context.Context, sess session.Session) (*Recorder, error) {
	if !sess.Valid() {
		return nil, session.ErrNoSession
	}
	log := s.logger.With("userID", sess.UserID)
	repo, err := repository.Get[reposnapshot.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	rows, err := repo.ListByUser(ctx, sess.UserID)
	if err != nil {
		log.Error("failed to load snapshots", "error", err)
		return nil, err
	}
	history := make([]*snapshot.Snapshot, 0, len(rows))
	for _, row := range rows {
		history = append(history, fromReadDTO(row))
	}
	log.Debug("snapshot history loaded", "count", len(history))
	return &Recorder{svc: s, sess: sess, history: history, logger: log}, nil
}

// TakeSnapshot captures the current totals of l dated today. Snapshots taken
// on the same day are all kept.
func (r *Recorder) TakeSnapshot(ctx context.Context, l *account.Ledger) (*snapshot.Snapshot, error) {
	log := r.logger.With("op", "TakeSnapshot")
	log.Debug("TakeSnapshot called", "accounts", l.Len())

	snap, err := snapshot.Capture(r.sess.UserID, l, r.svc.now())
	if err != nil {
		return nil, err
	}
	repo, err := repository.Get[reposnapshot.Repository](r.svc.uow)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, toCreateDTO(snap)); err != nil {
		log.Error("failed to persist snapshot", "error", err)
		return nil, err
	}
	r.history = append(r.history, snap)
	log.Info("snapshot taken", "snapshotID", snap.ID, "netWorth", snap.NetWorth.String())

	if r.svc.bus != nil {
		if err := r.svc.bus.Emit(ctx, events.SnapshotTaken{
			Meta:       events.NewMeta(r.sess.UserID),
			SnapshotID: snap.ID,
			NetWorth:   snap.NetWorth,
		}); err != nil {
			log.Warn("failed to emit event", "error", err)
		}
	}
	return snap, nil
}

// History returns the snapshots sorted by date ascending.
func (r *Recorder) History() []*snapshot.Snapshot {
	out := append([]*snapshot.Snapshot(nil), r.history...)
	snapshot.SortByDate(out)
	return out
}

// Trend builds the chart series from the history.
func (r *Recorder) Trend() snapshot.Trend {
	return snapshot.BuildTrend(r.history)
}

func toCreateDTO(s *snapshot.Snapshot) *dto.SnapshotCreate {
	breakdown := make([]dto.BreakdownEntry, 0, len(s.Breakdown))
	for _, e := range s.Breakdown {
		breakdown = append(breakdown, dto.BreakdownEntry{Category: e.Category.String(), Amount: e.Amount})
	}
	return &dto.SnapshotCreate{
		ID:               s.ID,
		UserID:           s.UserID,
		Date:             s.Date,
		TotalAssets:      s.TotalAssets,
		TotalLiabilities: s.TotalLiabilities,
		NetWorth:         s.NetWorth,
		Breakdown:        breakdown,
		CreatedAt:        s.CreatedAt,
	}
}

func fromReadDTO(r *dto.SnapshotRead) *snapshot.Snapshot {
	breakdown := make([]snapshot.Entry, 0, len(r.Breakdown))
	for _, e := range r.Breakdown {
		breakdown = append(breakdown, snapshot.Entry{Category: category.Key(e.Category), Amount: e.Amount})
	}
	return &snapshot.Snapshot{
		ID:               r.ID,
		UserID:           r.UserID,
		Date:             snapshot.Day(r.Date),
		TotalAssets:      r.TotalAssets,
		TotalLiabilities: r.TotalLiabilities,
		NetWorth:         r.NetWorth,
		Breakdown:        breakdown,
		CreatedAt:        r.CreatedAt,
	}
}
