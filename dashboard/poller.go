// Package dashboard keeps the admin and agent overview figures warm. A
// poller re-fetches the backing collections on a fixed interval, recomputes
// the derived stats wholesale and swaps an atomic snapshot that the HTTP
// handlers read. When no fetch has ever succeeded the handlers serve fixed
// placeholder figures instead of an error, so the dashboards stay usable in
// environments where the backing services are down.
package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"trips/clients"
	"trips/entity"
	"trips/log"
	"trips/stats"
)

const DefaultInterval = 5 * time.Second

type UserLister interface {
	List(ctx context.Context, name, role string) ([]entity.User, error)
}

type PackageLister interface {
	List(ctx context.Context) ([]entity.TravelPackage, error)
}

type BookingLister interface {
	ListAll(ctx context.Context) ([]entity.Booking, error)
}

type snapshot struct {
	admin     entity.AdminStats
	packages  []entity.TravelPackage
	bookings  []entity.Booking
	fetchedAt time.Time
}

type Poller struct {
	users        UserLister
	packages     PackageLister
	bookings     BookingLister
	serviceToken string
	interval     time.Duration

	current atomic.Pointer[snapshot]
	kick    chan struct{}
}

func NewPoller(users UserLister, packages PackageLister, bookings BookingLister, serviceToken string, interval time.Duration) *Poller {
	return &Poller{
		users:        users,
		packages:     packages,
		bookings:     bookings,
		serviceToken: serviceToken,
		interval:     interval,
		kick:         make(chan struct{}, 1),
	}
}

// Run refreshes once immediately, then on every interval tick or kick until
// ctx is canceled. A failed refresh keeps the previous snapshot.
func (p *Poller) Run(ctx context.Context) error {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-p.kick:
		}

		p.refresh(ctx)
	}
}

// Kick requests an immediate refresh without waiting for the next tick.
func (p *Poller) Kick() {
	select {
	case p.kick <- struct{}{}:
	default:
	}
}

func (p *Poller) refresh(ctx context.Context) {
	ctx = clients.WithToken(ctx, p.serviceToken)

	var (
		users    []entity.User
		packages []entity.TravelPackage
		bookings []entity.Booking
	)

	// Independent fetches, in parallel for latency only.
	g, fetchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = p.users.List(fetchCtx, "", "")
		return err
	})
	g.Go(func() error {
		var err error
		packages, err = p.packages.List(fetchCtx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = p.bookings.ListAll(fetchCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		log.FromContext(ctx).WithError(err).Warn("dashboard refresh failed, keeping previous figures")
		return
	}

	now := time.Now().UTC()
	p.current.Store(&snapshot{
		admin:     stats.Overview(users, packages, bookings, now),
		packages:  packages,
		bookings:  bookings,
		fetchedAt: now,
	})
}

// AdminStats returns the latest snapshot, or the placeholder figures when no
// fetch has succeeded yet.
func (p *Poller) AdminStats() entity.AdminStats {
	snap := p.current.Load()
	if snap == nil {
		return FallbackAdminStats(time.Now().UTC())
	}

	return snap.admin
}

// AgentStats scopes the latest snapshot to the agent's packages, or returns
// the placeholder figures when no fetch has succeeded yet.
func (p *Poller) AgentStats(agentID string) entity.AgentStats {
	snap := p.current.Load()
	if snap == nil {
		return FallbackAgentStats(time.Now().UTC())
	}

	return stats.AgentOverview(agentID, snap.packages, snap.bookings, time.Now().UTC())
}
