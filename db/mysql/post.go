package mysql

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/upper/db/v4"
)

type PostDB struct {
	sess db.Session
}

func getPostDB(sess db.Session) *PostDB {
	return &PostDB{sess}
}

func (pdb *PostDB) CreatePost(ctx context.Context, req *appDb.CreatePost) (int64, error) {
	res, err := pdb.sess.SQL().
		InsertInto("post").
		Columns("author_id", "community_id", "title", "content").
		Values(req.AuthorId, req.CommunityId, req.Title, req.Content).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (pdb *PostDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := pdb.sess.SQL().
		Select("*").
		From("post").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&post); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (pdb *PostDB) GetPosts(ctx context.Context, query *appDb.PostsListQuery) ([]*model.Post, error) {
	sel := pdb.sess.SQL().
		Select("*").
		From("post").
		Where("1 = 1")
	if query.CommunityIds != nil {
		sel = sel.And("community_id IN ?", query.CommunityIds)
	}
	if query.OrderByScore {
		if query.MaxScore != nil {
			sel = sel.And("(score < ? OR (score = ? AND id < ?))",
				*query.MaxScore, *query.MaxScore, query.LastId)
		}
		sel = sel.OrderBy("score DESC", "id DESC")
	} else {
		if query.Before != nil {
			sel = sel.And("(created_at < ? OR (created_at = ? AND id < ?))",
				*query.Before, *query.Before, query.LastId)
		}
		sel = sel.OrderBy("created_at DESC", "id DESC")
	}

	var posts []*model.Post
	if err := sel.
		Limit(int(query.Limit)).
		IteratorContext(ctx).
		All(&posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (pdb *PostDB) GetPostIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error) {
	var rows []idRow
	if err := pdb.sess.SQL().
		Select("id").
		From("post").
		Where("author_id = ?", authorId).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	return idsFromRows(rows), nil
}

func (pdb *PostDB) DeletePostsByAuthor(ctx context.Context, authorId int64) error {
	_, err := pdb.sess.SQL().
		DeleteFrom("post").
		Where("author_id = ?", authorId).
		ExecContext(ctx)
	return err
}

func (pdb *PostDB) AdjustPostScore(ctx context.Context, id int64, delta int64) error {
	_, err := pdb.sess.SQL().
		Update("post").
		Set("score = score + ?", delta).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
