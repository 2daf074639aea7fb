package mysql

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/upper/db/v4"
)

type CommentDB struct {
	sess db.Session
}

func getCommentDB(sess db.Session) *CommentDB {
	return &CommentDB{sess}
}

func (cdb *CommentDB) CreateComment(ctx context.Context, req *appDb.CreateComment) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("comment").
		Columns("post_id", "author_id", "parent_id", "content").
		Values(req.PostId, req.AuthorId, req.ParentId, req.Content).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (cdb *CommentDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	var comment model.Comment
	if err := cdb.sess.SQL().
		Select("*").
		From("comment").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&comment); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (cdb *CommentDB) GetCommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := cdb.sess.SQL().
		Select("*").
		From("comment").
		Where("post_id = ?", postId).
		OrderBy("created_at").
		IteratorContext(ctx).
		All(&comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetCommentIdsByParents fetches one level of the reply forest: ids of every
// comment whose parent is in parentIds. One query per frontier, not per node.
func (cdb *CommentDB) GetCommentIdsByParents(ctx context.Context, parentIds []int64) ([]int64, error) {
	if len(parentIds) == 0 {
		return nil, nil
	}
	var rows []idRow
	if err := cdb.sess.SQL().
		Select("id").
		From("comment").
		Where("parent_id IN ?", parentIds).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	return idsFromRows(rows), nil
}

func (cdb *CommentDB) GetCommentIdsByPosts(ctx context.Context, postIds []int64) ([]int64, error) {
	if len(postIds) == 0 {
		return nil, nil
	}
	var rows []idRow
	if err := cdb.sess.SQL().
		Select("id").
		From("comment").
		Where("post_id IN ?", postIds).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	return idsFromRows(rows), nil
}

func (cdb *CommentDB) GetCommentIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error) {
	var rows []idRow
	if err := cdb.sess.SQL().
		Select("id").
		From("comment").
		Where("author_id = ?", authorId).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	return idsFromRows(rows), nil
}

func (cdb *CommentDB) DeleteCommentsByIds(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := cdb.sess.SQL().
		DeleteFrom("comment").
		Where("id IN ?", ids).
		ExecContext(ctx)
	return err
}

func (cdb *CommentDB) DeleteCommentsByPosts(ctx context.Context, postIds []int64) error {
	if len(postIds) == 0 {
		return nil
	}
	_, err := cdb.sess.SQL().
		DeleteFrom("comment").
		Where("post_id IN ?", postIds).
		ExecContext(ctx)
	return err
}

func (cdb *CommentDB) AdjustCommentScore(ctx context.Context, id int64, delta int64) error {
	_, err := cdb.sess.SQL().
		Update("comment").
		Set("score = score + ?", delta).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
