package model

import "time"

type User struct {
	Id           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Bio          string    `db:"bio" json:"bio"`
	Photo        string    `db:"photo" json:"photo"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
