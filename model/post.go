package model

import "time"

type Post struct {
	Id          int64     `db:"id" json:"id"`
	AuthorId    int64     `db:"author_id" json:"authorId"`
	CommunityId int64     `db:"community_id" json:"communityId"`
	Title       string    `db:"title" json:"title"`
	Content     string    `db:"content" json:"content"`
	Score       int64     `db:"score" json:"score"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
