package mysql

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/upper/db/v4"
)

type CommunityDB struct {
	sess db.Session
}

func getCommunityDB(sess db.Session) *CommunityDB {
	return &CommunityDB{sess}
}

func (cdb *CommunityDB) CreateCommunity(ctx context.Context, req *appDb.CreateCommunity) (int64, error) {
	res, err := cdb.sess.SQL().
		InsertInto("community").
		Columns("creator_id", "name", "description").
		Values(req.CreatorId, req.Name, req.Description).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetCommunitiesByIds gets communities. nil ids gets all communities
func (cdb *CommunityDB) GetCommunitiesByIds(ctx context.Context, ids []int64) ([]*model.Community, error) {
	var where []interface{}
	if ids != nil {
		where = []interface{}{"id IN ?", ids}
	}
	var communities []*model.Community
	if err := cdb.sess.SQL().
		Select("*").
		From("community").
		Where(where...).
		IteratorContext(ctx).
		All(&communities); err != nil {
		return nil, err
	}
	return communities, nil
}

func (cdb *CommunityDB) GetCommunityIdsByCreator(ctx context.Context, creatorId int64) ([]int64, error) {
	var rows []idRow
	if err := cdb.sess.SQL().
		Select("id").
		From("community").
		Where("creator_id = ?", creatorId).
		IteratorContext(ctx).
		All(&rows); err != nil {
		return nil, err
	}
	return idsFromRows(rows), nil
}

func (cdb *CommunityDB) DeleteCommunitiesByCreator(ctx context.Context, creatorId int64) error {
	_, err := cdb.sess.SQL().
		DeleteFrom("community").
		Where("creator_id = ?", creatorId).
		ExecContext(ctx)
	return err
}
