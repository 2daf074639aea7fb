package app

import (
	"context"
	"time"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
)

type MostRecentCursor struct {
	Communities  []int64    `json:"communities,omitempty"`
	FollowedOnly bool       `json:"followedOnly,omitempty"`
	LastDate     *time.Time `json:"lastDate,omitempty"`
	LastId       int64      `json:"lastId,omitempty"`
}

func (mrc *MostRecentCursor) Posts(ctx context.Context, database appDb.Database, subjectId int64, opts *PostCursorOpts) (posts []*model.Post, cursor interface{}, err error) {
	communities, err := resolveFeedCommunities(ctx, database, subjectId, mrc.Communities, mrc.FollowedOnly)
	if err != nil {
		return nil, nil, err
	}
	if communities != nil && len(communities) == 0 {
		// followed-only with nothing followed
		return []*model.Post{}, nil, nil
	}

	posts, err = database.GetPosts(ctx, &appDb.PostsListQuery{
		CommunityIds: communities,
		Before:       mrc.LastDate,
		LastId:       mrc.LastId,
		Limit:        opts.Limit,
	})
	if err != nil {
		return nil, nil, err
	}
	return posts, mrc.buildCursorForNextPage(posts, communities), nil
}

func (mrc *MostRecentCursor) buildCursorForNextPage(previousPosts []*model.Post, communities []int64) interface{} {
	if len(previousPosts) == 0 {
		return nil
	}
	last := previousPosts[len(previousPosts)-1]
	return &MostRecentCursor{
		Communities: communities,
		LastDate:    &last.CreatedAt,
		LastId:      last.Id,
	}
}
