package view

import (
	"github.com/example/shafran-admin/internal/models"
)

// User sort keys.
const (
	UserSortName      = "name"
	UserSortPhone     = "phone"
	UserSortCreatedAt = "createdAt"
	UserSortStatus    = "status"
)

// DefaultUserQuery lists the newest users first.
func DefaultUserQuery() Query {
	return Query{Filter: FilterAll, Sort: Sort{Key: UserSortCreatedAt, Direction: Desc}}
}

var verificationRank = map[bool]int{true: 1, false: 2}

// UserSpec hides unknown users, searches names and phone, filters by verification.
func UserSpec(coll *Collator) Spec[models.User] {
	if coll == nil {
		coll = DefaultCollator()
	}
	return Spec[models.User]{
		Visible: func(u models.User) bool { return !u.Unknown() },
		Fields: func(u models.User) []string {
			return []string{u.Name, u.Surname, u.Name + " " + u.Surname, u.Phone}
		},
		Filter: func(u models.User, value string) bool {
			switch value {
			case UserVerified:
				return u.IsVerified
			case UserUnverified:
				return !u.IsVerified
			default:
				return false
			}
		},
		Comparators: map[string]Comparator[models.User]{
			UserSortName: func(a, b models.User) int {
				return coll.Compare(a.Name+" "+a.Surname, b.Name+" "+b.Surname)
			},
			UserSortStatus: Ranked(verificationRank, func(u models.User) bool { return u.IsVerified }),
			UserSortCreatedAt: func(a, b models.User) int {
				return a.CreatedAt.Compare(b.CreatedAt)
			},
		},
		Field: func(u models.User, key string) string {
			if key == UserSortPhone {
				return u.Phone
			}
			return ""
		},
		Collator: coll,
	}
}

// ValidUserFilter reports whether value is a user filter.
func ValidUserFilter(value string) bool {
	switch value {
	case "", FilterAll, UserVerified, UserUnverified:
		return true
	}
	return false
}

// UserRow is the presentation form of a user.
type UserRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsVerified bool   `json:"isVerified"`
	Status     Badge  `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// NewUserRow derives the row of u.
func NewUserRow(u models.User) UserRow {
	name := u.Name + " " + u.Surname
	if u.Unknown() {
		name = UnknownUserLabel
	}
	return UserRow{
		ID:         u.ID,
		Name:       name,
		Phone:      FormatPhone(u.Phone),
		IsVerified: u.IsVerified,
		Status:     VerificationBadge(u.IsVerified),
		CreatedAt:  FormatDate(u.CreatedAt),
	}
}

// UserRows maps users to rows.
func UserRows(users []models.User) []UserRow {
	rows := make([]UserRow, len(users))
	for i, u := range users {
		rows[i] = NewUserRow(u)
	}
	return rows
}
