package controllers

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/pkg/errors"
)

// ResolveDescendants computes the strict descendants of the given comments by
// level-wise frontier expansion: one bulk parent_id query per tree level, so
// round-trips are bounded by tree depth rather than tree size and arbitrarily
// deep trees never touch the call stack. Roots with no children yield an
// empty result; whether the roots themselves exist is the caller's concern.
func ResolveDescendants(ctx context.Context, commentDB appDb.CommentDatabase, rootIds []int64) ([]int64, error) {
	var descendants []int64
	frontier := rootIds
	for len(frontier) > 0 {
		children, err := commentDB.GetCommentIdsByParents(ctx, frontier)
		if err != nil {
			return nil, errors.Wrap(err, "expanding comment frontier")
		}
		descendants = append(descendants, children...)
		frontier = children
	}
	return descendants, nil
}

func dedupeIds(idSets ...[]int64) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, set := range idSets {
		for _, id := range set {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
