package pages

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/view"
)

// Dashboard holds the aggregate snapshot.
type Dashboard struct {
	stats    DashboardService
	users    UserService
	notifier Notifier
	assets   view.Assets
	now      func() time.Time

	mu       sync.Mutex
	snapshot *models.DashboardStats
	stale    bool
	loading  bool
	err      string
	gen      uint64
	epoch    uint64
}

func NewDashboard(stats DashboardService, users UserService, opts Options) *Dashboard {
	return &Dashboard{
		stats:    stats,
		users:    users,
		notifier: opts.notifier(),
		assets:   opts.Assets,
		now:      time.Now,
	}
}

// Load refetches the snapshot. A stale response is dropped.
func (d *Dashboard) Load(ctx context.Context) error {
	d.mu.Lock()
	d.gen++
	gen, epoch := d.gen, d.epoch
	d.loading = true
	d.mu.Unlock()

	stats, err := d.stats.GetDashboardStats(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		log.Printf("[Pages] dashboard: dropped stale response")
		return nil
	}
	d.loading = false
	if err != nil {
		d.err = apperrors.Message(err)
		return err
	}
	d.snapshot = stats
	d.stale = epoch != d.epoch
	d.err = ""
	return nil
}

// Ensure loads on first use and after Invalidate.
func (d *Dashboard) Ensure(ctx context.Context) error {
	d.mu.Lock()
	loaded := d.snapshot != nil && !d.stale
	d.mu.Unlock()
	if loaded {
		return nil
	}
	return d.Load(ctx)
}

// Invalidate marks the snapshot stale after a change made on another page.
// The current snapshot is served until the next Ensure refetches.
func (d *Dashboard) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stale = true
	d.epoch++
}

// Snapshot returns a copy of the current stats, or nil before the first load.
func (d *Dashboard) Snapshot() *models.DashboardStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.snapshot == nil {
		return nil
	}
	cp := *d.snapshot
	cp.TenLastUsers = append([]models.User(nil), d.snapshot.TenLastUsers...)
	cp.TenLastOrders = append([]models.Order(nil), d.snapshot.TenLastOrders...)
	return &cp
}

// SetUserVerified changes verification on the server, flips the user in the
// recent-users list and moves one user between the active and inactive
// counters. The counters move only when the listed user actually changed.
func (d *Dashboard) SetUserVerified(ctx context.Context, id string, verified bool) error {
	if err := d.users.SetUserVerified(ctx, id, verified); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.snapshot == nil {
		return nil
	}
	for i := range d.snapshot.TenLastUsers {
		u := &d.snapshot.TenLastUsers[i]
		if u.ID != id || u.IsVerified == verified {
			continue
		}
		u.IsVerified = verified
		shiftUsers(&d.snapshot.UsersDetails, verified)
		shiftUsers(&d.snapshot.UsersDetailsLength, verified)
	}
	return nil
}

func shiftUsers(b *models.UserBreakdown, verified bool) {
	if verified {
		b.Active++
		b.Inactive--
	} else {
		b.Active--
		b.Inactive++
	}
}

// DeleteUser removes a user and refetches the snapshot.
func (d *Dashboard) DeleteUser(ctx context.Context, id string) error {
	if err := d.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	d.notifier.Audit(ctx, "Foydalanuvchi o'chirildi", id)
	return d.Load(ctx)
}

// DashboardView is what the dashboard renders.
type DashboardView struct {
	Stats   *view.Dashboard `json:"stats"`
	Loading bool            `json:"loading"`
	Error   *string         `json:"error"`
}

func (d *Dashboard) View() DashboardView {
	snapshot := d.Snapshot()

	d.mu.Lock()
	loading, errMsg := d.loading, d.err
	d.mu.Unlock()

	v := DashboardView{Loading: loading}
	if snapshot != nil {
		stats := view.BuildDashboard(*snapshot, d.now(), d.assets)
		v.Stats = &stats
	}
	if errMsg != "" {
		v.Error = &errMsg
	}
	return v
}
