package controllers

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/pkg/errors"
)

// ReferenceController is the write path for the polymorphic references. The
// storage layer cannot tie target_id to the table named by target_kind, so
// every record goes through an existence check against the matching gateway,
// in the same transaction as the insert.
type ReferenceController struct {
	db appDb.Database
}

func NewReferenceController(database appDb.Database) *ReferenceController {
	return &ReferenceController{db: database}
}

func (rc *ReferenceController) RecordVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind, value int8) (*model.Vote, error) {
	if kind != model.TargetPost && kind != model.TargetComment {
		return nil, errors.Errorf("votes cannot target kind %v", kind)
	}
	vote := &model.Vote{
		SubjectId:  subjectId,
		TargetId:   targetId,
		TargetKind: kind,
		Value:      value,
	}
	err := rc.db.Tx(ctx, func(tx appDb.Database) error {
		exists, err := targetExists(ctx, tx, targetId, kind)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if err := tx.CreateVote(ctx, vote); err != nil {
			if appDb.IsDupKeyErr(err) {
				return ErrConflict
			}
			return errors.Wrap(err, "inserting vote")
		}
		return adjustScore(ctx, tx, targetId, kind, int64(value))
	}, nil)
	if err != nil {
		return nil, err
	}
	return vote, nil
}

func (rc *ReferenceController) RemoveVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) error {
	if kind != model.TargetPost && kind != model.TargetComment {
		return errors.Errorf("votes cannot target kind %v", kind)
	}
	return rc.db.Tx(ctx, func(tx appDb.Database) error {
		vote, err := tx.GetVote(ctx, subjectId, targetId, kind)
		if err != nil {
			return errors.Wrap(err, "fetching vote for removal")
		}
		if vote == nil {
			return ErrNotFound
		}
		if _, err := tx.DeleteVote(ctx, subjectId, targetId, kind); err != nil {
			return errors.Wrap(err, "deleting vote")
		}
		return adjustScore(ctx, tx, targetId, kind, -int64(vote.Value))
	}, nil)
}

func (rc *ReferenceController) RecordFollow(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (*model.Follow, error) {
	if kind != model.TargetUser && kind != model.TargetCommunity {
		return nil, errors.Errorf("follows cannot target kind %v", kind)
	}
	follow := &model.Follow{
		SubjectId:  subjectId,
		TargetId:   targetId,
		TargetKind: kind,
	}
	err := rc.db.Tx(ctx, func(tx appDb.Database) error {
		exists, err := targetExists(ctx, tx, targetId, kind)
		if err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		if err := tx.CreateFollow(ctx, follow); err != nil {
			if appDb.IsDupKeyErr(err) {
				return ErrConflict
			}
			return errors.Wrap(err, "inserting follow")
		}
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return follow, nil
}

func (rc *ReferenceController) RemoveFollow(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) error {
	if kind != model.TargetUser && kind != model.TargetCommunity {
		return errors.Errorf("follows cannot target kind %v", kind)
	}
	affected, err := rc.db.DeleteFollow(ctx, subjectId, targetId, kind)
	if err != nil {
		return errors.Wrap(err, "deleting follow")
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func targetExists(ctx context.Context, tx appDb.Database, targetId int64, kind model.TargetKind) (bool, error) {
	switch kind {
	case model.TargetPost:
		post, err := tx.GetPostById(ctx, targetId)
		return post != nil, errors.Wrap(err, "checking post target")
	case model.TargetComment:
		comment, err := tx.GetCommentById(ctx, targetId)
		return comment != nil, errors.Wrap(err, "checking comment target")
	case model.TargetUser:
		user, err := tx.GetUserById(ctx, targetId)
		return user != nil, errors.Wrap(err, "checking user target")
	case model.TargetCommunity:
		communities, err := tx.GetCommunitiesByIds(ctx, []int64{targetId})
		return len(communities) > 0, errors.Wrap(err, "checking community target")
	}
	return false, errors.Errorf("unknown target kind %v", kind)
}

func adjustScore(ctx context.Context, tx appDb.Database, targetId int64, kind model.TargetKind, delta int64) error {
	switch kind {
	case model.TargetPost:
		return errors.Wrap(tx.AdjustPostScore(ctx, targetId, delta), "adjusting post score")
	case model.TargetComment:
		return errors.Wrap(tx.AdjustCommentScore(ctx, targetId, delta), "adjusting comment score")
	}
	return nil
}
