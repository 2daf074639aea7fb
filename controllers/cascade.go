package controllers

import (
	"context"
	"database/sql"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CascadeController removes a root entity together with every record whose
// existence depends on it, as one atomic unit. Dependency sets are resolved
// inside the same transaction that issues the deletes, and every deletion
// stage is a single bulk statement so transaction duration stays bounded.
type CascadeController struct {
	db appDb.Database
}

func NewCascadeController(database appDb.Database) *CascadeController {
	return &CascadeController{db: database}
}

// Repeatable read is the isolation floor the cascade needs: the sets resolved
// early in the transaction must still describe the rows the later bulk
// deletes remove.
var cascadeTxOptions = &sql.TxOptions{Isolation: sql.LevelRepeatableRead}

// DeleteComment removes the comment, its entire reply subtree, and every vote
// targeting a comment in that set. Fails with ErrNotFound if the root comment
// does not exist; no rows are touched in that case.
func (cc *CascadeController) DeleteComment(ctx context.Context, commentId int64) error {
	return cc.withConflictRetry(ctx, "comment", commentId, cc.deleteCommentOnce)
}

// DeleteUser removes the user and everything they own: their votes and
// follows, their posts with all comments and votes under them, their comments
// elsewhere with the reply subtrees and votes on those, their communities with
// the follows pointing at them, and follows pointing at the user.
func (cc *CascadeController) DeleteUser(ctx context.Context, userId int64) error {
	return cc.withConflictRetry(ctx, "user", userId, cc.deleteUserOnce)
}

// withConflictRetry runs the whole cascade again, exactly once, when the
// transaction loses to a concurrent writer. The rerun resolves its dependency
// sets from scratch, so it never deletes from a stale view.
func (cc *CascadeController) withConflictRetry(ctx context.Context, entity string, id int64, op func(context.Context, int64) error) error {
	err := op(ctx, id)
	if err == nil || !appDb.IsTxConflictErr(err) {
		return err
	}
	logrus.WithFields(logrus.Fields{"entity": entity, "id": id}).
		Warn("cascade lost to a concurrent transaction, retrying")
	if err = op(ctx, id); err != nil && appDb.IsTxConflictErr(err) {
		return ErrTxConflict
	}
	return err
}

func (cc *CascadeController) deleteCommentOnce(ctx context.Context, commentId int64) error {
	comment, err := cc.db.GetCommentById(ctx, commentId)
	if err != nil {
		return errors.Wrap(err, "fetching comment for delete")
	}
	if comment == nil {
		return ErrNotFound
	}

	return cc.db.Tx(ctx, func(tx appDb.Database) error {
		descendants, err := ResolveDescendants(ctx, tx, []int64{commentId})
		if err != nil {
			return err
		}
		doomed := append([]int64{commentId}, descendants...)
		if err := tx.DeleteVotesByTargets(ctx, model.TargetComment, doomed); err != nil {
			return errors.Wrap(err, "deleting votes on comment subtree")
		}
		return errors.Wrap(tx.DeleteCommentsByIds(ctx, doomed), "deleting comment subtree")
	}, cascadeTxOptions)
}

func (cc *CascadeController) deleteUserOnce(ctx context.Context, userId int64) error {
	user, err := cc.db.GetUserById(ctx, userId)
	if err != nil {
		return errors.Wrap(err, "fetching user for delete")
	}
	if user == nil {
		return ErrNotFound
	}

	return cc.db.Tx(ctx, func(tx appDb.Database) error {
		// References the user is the subject of.
		if err := tx.DeleteVotesBySubject(ctx, userId); err != nil {
			return errors.Wrap(err, "deleting votes by user")
		}
		if err := tx.DeleteFollowsBySubject(ctx, userId); err != nil {
			return errors.Wrap(err, "deleting follows by user")
		}

		// Content the user owns and everything hanging off it.
		postIds, err := tx.GetPostIdsByAuthor(ctx, userId)
		if err != nil {
			return errors.Wrap(err, "collecting user's posts")
		}
		onOwnPosts, err := tx.GetCommentIdsByPosts(ctx, postIds)
		if err != nil {
			return errors.Wrap(err, "collecting comments on user's posts")
		}
		authored, err := tx.GetCommentIdsByAuthor(ctx, userId)
		if err != nil {
			return errors.Wrap(err, "collecting user's comments")
		}
		// Replies beneath the user's comments on other authors' posts would
		// otherwise survive with dangling parent ids.
		replies, err := ResolveDescendants(ctx, tx, authored)
		if err != nil {
			return err
		}
		doomedComments := dedupeIds(onOwnPosts, authored, replies)

		if err := tx.DeleteVotesByTargets(ctx, model.TargetPost, postIds); err != nil {
			return errors.Wrap(err, "deleting votes on user's posts")
		}
		if err := tx.DeleteVotesByTargets(ctx, model.TargetComment, doomedComments); err != nil {
			return errors.Wrap(err, "deleting votes on removed comments")
		}
		if err := tx.DeleteCommentsByPosts(ctx, postIds); err != nil {
			return errors.Wrap(err, "deleting comments on user's posts")
		}
		if err := tx.DeleteCommentsByIds(ctx, dedupeIds(authored, replies)); err != nil {
			return errors.Wrap(err, "deleting user's comments and their replies")
		}
		if err := tx.DeletePostsByAuthor(ctx, userId); err != nil {
			return errors.Wrap(err, "deleting user's posts")
		}

		// Communities the user created, and follows pointing at them.
		communityIds, err := tx.GetCommunityIdsByCreator(ctx, userId)
		if err != nil {
			return errors.Wrap(err, "collecting user's communities")
		}
		if err := tx.DeleteFollowsByTargets(ctx, model.TargetCommunity, communityIds); err != nil {
			return errors.Wrap(err, "deleting follows of user's communities")
		}
		if err := tx.DeleteCommunitiesByCreator(ctx, userId); err != nil {
			return errors.Wrap(err, "deleting user's communities")
		}

		if err := tx.DeleteFollowsByTargets(ctx, model.TargetUser, []int64{userId}); err != nil {
			return errors.Wrap(err, "deleting follows of user")
		}
		return errors.Wrap(tx.DeleteUser(ctx, userId), "deleting user")
	}, cascadeTxOptions)
}
