package model

import "time"

// Comment forms a forest per post: ParentId is nil for top-level comments and
// parent edges never cycle (enforced at creation).
type Comment struct {
	Id        int64     `db:"id" json:"id"`
	PostId    int64     `db:"post_id" json:"postId"`
	AuthorId  int64     `db:"author_id" json:"authorId"`
	ParentId  *int64    `db:"parent_id" json:"parentId"`
	Content   string    `db:"content" json:"content"`
	Score     int64     `db:"score" json:"score"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
