package app

import (
	"context"
	"errors"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
)

var ErrFollowedOnlyAnonymous = errors.New("must be logged in for a followed-only feed")

// resolveFeedCommunities narrows a cursor's community scope: an explicit id
// set wins, a followed-only cursor pulls the subject's followed communities,
// otherwise the feed spans every community.
func resolveFeedCommunities(ctx context.Context, database appDb.Database, subjectId int64, communities []int64, followedOnly bool) ([]int64, error) {
	if communities != nil || !followedOnly {
		return communities, nil
	}
	if subjectId == 0 {
		return nil, ErrFollowedOnlyAnonymous
	}
	follows, err := database.GetFollowsBySubject(ctx, subjectId, model.TargetCommunity)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(follows))
	for i, follow := range follows {
		ids[i] = follow.TargetId
	}
	return ids, nil
}
