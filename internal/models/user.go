package models

import "time"

// UnknownName marks a user whose identity has not been collected yet.
const UnknownName = "None"

// User is a shop customer.
type User struct {
	ID         string    `json:"_id"`
	Name       string    `json:"name"`
	Surname    string    `json:"surname"`
	Phone      string    `json:"phone"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Unknown reports whether the user is the "identity not yet collected" sentinel.
func (u User) Unknown() bool {
	return u.Name == UnknownName && u.Surname == UnknownName
}
