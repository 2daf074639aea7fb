package app

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
)

type MostPopularCursor struct {
	Communities  []int64 `json:"communities,omitempty"`
	FollowedOnly bool    `json:"followedOnly,omitempty"`
	LastScore    *int64  `json:"lastScore,omitempty"`
	LastId       int64   `json:"lastId,omitempty"`
}

func (mpc *MostPopularCursor) Posts(ctx context.Context, database appDb.Database, subjectId int64, opts *PostCursorOpts) (posts []*model.Post, cursor interface{}, err error) {
	communities, err := resolveFeedCommunities(ctx, database, subjectId, mpc.Communities, mpc.FollowedOnly)
	if err != nil {
		return nil, nil, err
	}
	if communities != nil && len(communities) == 0 {
		return []*model.Post{}, nil, nil
	}

	posts, err = database.GetPosts(ctx, &appDb.PostsListQuery{
		CommunityIds: communities,
		MaxScore:     mpc.LastScore,
		LastId:       mpc.LastId,
		Limit:        opts.Limit,
		OrderByScore: true,
	})
	if err != nil {
		return nil, nil, err
	}
	return posts, mpc.buildCursorForNextPage(posts, communities), nil
}

func (mpc *MostPopularCursor) buildCursorForNextPage(previousPosts []*model.Post, communities []int64) interface{} {
	if len(previousPosts) == 0 {
		return nil
	}
	last := previousPosts[len(previousPosts)-1]
	return &MostPopularCursor{
		Communities: communities,
		LastScore:   &last.Score,
		LastId:      last.Id,
	}
}
