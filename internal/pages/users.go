package pages

import (
	"context"
	"log"

	"github.com/example/shafran-admin/internal/apperrors"
	"github.com/example/shafran-admin/internal/models"
	"github.com/example/shafran-admin/internal/utils"
	"github.com/example/shafran-admin/internal/view"
)

// Users is the user list page.
type Users struct {
	svc      UserService
	notifier Notifier
	list     *collection[models.User]
}

func NewUsers(svc UserService, opts Options) *Users {
	return &Users{
		svc:      svc,
		notifier: opts.notifier(),
		list:     newCollection("users", svc.ListUsers, view.UserSpec(opts.Collator), view.DefaultUserQuery()),
	}
}

func (u *Users) Load(ctx context.Context) error   { return u.list.load(ctx) }
func (u *Users) Ensure(ctx context.Context) error { return u.list.ensure(ctx) }
func (u *Users) Search(term string)               { u.list.search(term) }
func (u *Users) Sort(key string) view.Sort        { return u.list.sort(key) }

// SetFilter selects verified, unverified or all users.
func (u *Users) SetFilter(value string) error {
	if !view.ValidUserFilter(value) {
		return apperrors.NewValidationError("filter", "Unknown filter %q", value)
	}
	u.list.setFilter(value)
	return nil
}

func (u *Users) View(pg utils.Pagination) ViewModel[view.UserRow] {
	return derive(u.list, pg, view.UserRows)
}

// Invalidate marks the list stale after a user changed on the dashboard.
func (u *Users) Invalidate() { u.list.invalidate() }

// SetVerified changes verification on the server and patches the record in
// place. Nothing changes locally when the call fails.
func (u *Users) SetVerified(ctx context.Context, id string, verified bool) error {
	if err := u.svc.SetUserVerified(ctx, id, verified); err != nil {
		return err
	}
	u.list.patch(func(items []models.User) {
		for i := range items {
			if items[i].ID == id {
				items[i].IsVerified = verified
			}
		}
	})
	log.Printf("[Pages] user %s verified=%t", id, verified)
	return nil
}

// Delete removes a user and refetches the list.
func (u *Users) Delete(ctx context.Context, id string) error {
	if err := u.svc.DeleteUser(ctx, id); err != nil {
		return err
	}
	u.notifier.Audit(ctx, "Foydalanuvchi o'chirildi", id)
	return u.list.load(ctx)
}
