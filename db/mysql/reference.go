package mysql

import (
	"context"

	"github.com/Araryarch/senopost-be/model"
	"github.com/upper/db/v4"
)

// VoteDB and FollowDB persist the two polymorphic reference kinds. Both tables
// carry a unique key on (subject_id, target_id, target_kind); nothing at the
// storage layer ties target_id to the table named by target_kind, so callers
// must validate targets on write and clean up on cascade.

type VoteDB struct {
	sess db.Session
}

func getVoteDB(sess db.Session) *VoteDB {
	return &VoteDB{sess}
}

func (vdb *VoteDB) CreateVote(ctx context.Context, vote *model.Vote) error {
	_, err := vdb.sess.SQL().
		InsertInto("vote").
		Columns("subject_id", "target_id", "target_kind", "value").
		Values(vote.SubjectId, vote.TargetId, vote.TargetKind, vote.Value).
		ExecContext(ctx)
	return err
}

func (vdb *VoteDB) GetVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (*model.Vote, error) {
	var vote model.Vote
	if err := vdb.sess.SQL().
		Select("*").
		From("vote").
		Where("subject_id = ? AND target_id = ? AND target_kind = ?", subjectId, targetId, kind).
		IteratorContext(ctx).
		One(&vote); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (vdb *VoteDB) DeleteVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error) {
	res, err := vdb.sess.SQL().
		DeleteFrom("vote").
		Where("subject_id = ? AND target_id = ? AND target_kind = ?", subjectId, targetId, kind).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (vdb *VoteDB) DeleteVotesBySubject(ctx context.Context, subjectId int64) error {
	_, err := vdb.sess.SQL().
		DeleteFrom("vote").
		Where("subject_id = ?", subjectId).
		ExecContext(ctx)
	return err
}

func (vdb *VoteDB) DeleteVotesByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error {
	if len(targetIds) == 0 {
		return nil
	}
	_, err := vdb.sess.SQL().
		DeleteFrom("vote").
		Where("target_kind = ? AND target_id IN ?", kind, targetIds).
		ExecContext(ctx)
	return err
}

type FollowDB struct {
	sess db.Session
}

func getFollowDB(sess db.Session) *FollowDB {
	return &FollowDB{sess}
}

func (fdb *FollowDB) CreateFollow(ctx context.Context, follow *model.Follow) error {
	_, err := fdb.sess.SQL().
		InsertInto("follow").
		Columns("subject_id", "target_id", "target_kind").
		Values(follow.SubjectId, follow.TargetId, follow.TargetKind).
		ExecContext(ctx)
	return err
}

func (fdb *FollowDB) GetFollowsBySubject(ctx context.Context, subjectId int64, kind model.TargetKind) ([]*model.Follow, error) {
	var follows []*model.Follow
	if err := fdb.sess.SQL().
		Select("*").
		From("follow").
		Where("subject_id = ? AND target_kind = ?", subjectId, kind).
		IteratorContext(ctx).
		All(&follows); err != nil {
		return nil, err
	}
	return follows, nil
}

func (fdb *FollowDB) DeleteFollow(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error) {
	res, err := fdb.sess.SQL().
		DeleteFrom("follow").
		Where("subject_id = ? AND target_id = ? AND target_kind = ?", subjectId, targetId, kind).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (fdb *FollowDB) DeleteFollowsBySubject(ctx context.Context, subjectId int64) error {
	_, err := fdb.sess.SQL().
		DeleteFrom("follow").
		Where("subject_id = ?", subjectId).
		ExecContext(ctx)
	return err
}

func (fdb *FollowDB) DeleteFollowsByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error {
	if len(targetIds) == 0 {
		return nil
	}
	_, err := fdb.sess.SQL().
		DeleteFrom("follow").
		Where("target_kind = ? AND target_id IN ?", kind, targetIds).
		ExecContext(ctx)
	return err
}
