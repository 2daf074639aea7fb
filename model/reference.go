package model

import "time"

// TargetKind discriminates which table a polymorphic reference's TargetId
// belongs to. The store has no structural foreign key for these; validated
// writes and the cascade paths uphold referential integrity instead.
type TargetKind string

const (
	TargetPost      TargetKind = "POST"
	TargetComment   TargetKind = "COMMENT"
	TargetUser      TargetKind = "USER"
	TargetCommunity TargetKind = "COMMUNITY"
)

// Vote is unique per (SubjectId, TargetId, TargetKind). Kind is POST or COMMENT.
type Vote struct {
	SubjectId  int64      `db:"subject_id" json:"subjectId"`
	TargetId   int64      `db:"target_id" json:"targetId"`
	TargetKind TargetKind `db:"target_kind" json:"targetKind"`
	Value      int8       `db:"value" json:"value"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// Follow is unique per (SubjectId, TargetId, TargetKind). Kind is USER or COMMUNITY.
type Follow struct {
	SubjectId  int64      `db:"subject_id" json:"subjectId"`
	TargetId   int64      `db:"target_id" json:"targetId"`
	TargetKind TargetKind `db:"target_kind" json:"targetKind"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}
