package domain

import "time"

type User struct {
	Id        UserId    `json:"id"`
	Username  string    `json:"username"`
	Email     Email     `json:"email"`
	PassHash  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
