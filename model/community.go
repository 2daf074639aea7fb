package model

import "time"

type Community struct {
	Id          int64     `db:"id" json:"id"`
	CreatorId   int64     `db:"creator_id" json:"creatorId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

type CommunityWithFollowStatus struct {
	*Community
	IsFollowed bool `db:"is_followed" json:"isFollowed"`
}
