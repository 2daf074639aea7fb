package controllers

import (
	"context"
	"database/sql"
	"sort"
	"time"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
)

// memDB is an in-memory Database used to exercise the controllers without a
// MySQL instance. Tx takes a snapshot and restores it when fn fails, so the
// rollback behavior the cascade relies on is real. failOn injects an error on
// the next call of the named gateway method; txConflicts makes the next Tx
// calls fail with a conflict before running fn.
type memDB struct {
	users       map[int64]*model.User
	posts       map[int64]*model.Post
	comments    map[int64]*model.Comment
	communities map[int64]*model.Community
	votes       map[refKey]*model.Vote
	follows     map[refKey]*model.Follow
	nextId      int64

	failOn      map[string]error
	txConflicts int
}

type refKey struct {
	subjectId int64
	targetId  int64
	kind      model.TargetKind
}

func newMemDB() *memDB {
	return &memDB{
		users:       map[int64]*model.User{},
		posts:       map[int64]*model.Post{},
		comments:    map[int64]*model.Comment{},
		communities: map[int64]*model.Community{},
		votes:       map[refKey]*model.Vote{},
		follows:     map[refKey]*model.Follow{},
		failOn:      map[string]error{},
	}
}

func (m *memDB) fail(method string) error {
	if err, ok := m.failOn[method]; ok {
		delete(m.failOn, method)
		return err
	}
	return nil
}

func (m *memDB) allocId() int64 {
	m.nextId++
	return m.nextId
}

type memSnapshot struct {
	users       map[int64]*model.User
	posts       map[int64]*model.Post
	comments    map[int64]*model.Comment
	communities map[int64]*model.Community
	votes       map[refKey]*model.Vote
	follows     map[refKey]*model.Follow
	nextId      int64
}

func (m *memDB) snapshot() *memSnapshot {
	snap := &memSnapshot{
		users:       map[int64]*model.User{},
		posts:       map[int64]*model.Post{},
		comments:    map[int64]*model.Comment{},
		communities: map[int64]*model.Community{},
		votes:       map[refKey]*model.Vote{},
		follows:     map[refKey]*model.Follow{},
		nextId:      m.nextId,
	}
	for id, user := range m.users {
		cp := *user
		snap.users[id] = &cp
	}
	for id, post := range m.posts {
		cp := *post
		snap.posts[id] = &cp
	}
	for id, comment := range m.comments {
		cp := *comment
		snap.comments[id] = &cp
	}
	for id, community := range m.communities {
		cp := *community
		snap.communities[id] = &cp
	}
	for key, vote := range m.votes {
		cp := *vote
		snap.votes[key] = &cp
	}
	for key, follow := range m.follows {
		cp := *follow
		snap.follows[key] = &cp
	}
	return snap
}

func (m *memDB) restore(snap *memSnapshot) {
	m.users = snap.users
	m.posts = snap.posts
	m.comments = snap.comments
	m.communities = snap.communities
	m.votes = snap.votes
	m.follows = snap.follows
	m.nextId = snap.nextId
}

func (m *memDB) Tx(ctx context.Context, fn func(tx appDb.Database) error, opts *sql.TxOptions) error {
	if m.txConflicts > 0 {
		m.txConflicts--
		return appDb.ErrTxConflict
	}
	snap := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memDB) Close() error { return nil }

// UserDatabase

func (m *memDB) CreateUser(ctx context.Context, req *appDb.CreateUser) (int64, error) {
	if err := m.fail("CreateUser"); err != nil {
		return 0, err
	}
	id := m.allocId()
	m.users[id] = &model.User{
		Id:           id,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Bio:          req.Bio,
		Photo:        req.Photo,
		CreatedAt:    time.Now(),
	}
	return id, nil
}

func (m *memDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	if err := m.fail("GetUserById"); err != nil {
		return nil, err
	}
	return m.users[id], nil
}

func (m *memDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (m *memDB) UpdateUser(ctx context.Context, id int64, req *appDb.UpdateUser) error {
	user, ok := m.users[id]
	if !ok {
		return nil
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Photo != nil {
		user.Photo = *req.Photo
	}
	return nil
}

func (m *memDB) DeleteUser(ctx context.Context, id int64) error {
	if err := m.fail("DeleteUser"); err != nil {
		return err
	}
	delete(m.users, id)
	return nil
}

// PostDatabase

func (m *memDB) CreatePost(ctx context.Context, req *appDb.CreatePost) (int64, error) {
	id := m.allocId()
	m.posts[id] = &model.Post{
		Id:          id,
		AuthorId:    req.AuthorId,
		CommunityId: req.CommunityId,
		Title:       req.Title,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}
	return id, nil
}

func (m *memDB) GetPostById(ctx context.Context, id int64) (*model.Post, error) {
	if err := m.fail("GetPostById"); err != nil {
		return nil, err
	}
	return m.posts[id], nil
}

func (m *memDB) GetPosts(ctx context.Context, query *appDb.PostsListQuery) ([]*model.Post, error) {
	inScope := func(post *model.Post) bool {
		if query.CommunityIds == nil {
			return true
		}
		for _, id := range query.CommunityIds {
			if post.CommunityId == id {
				return true
			}
		}
		return false
	}
	var posts []*model.Post
	for _, post := range m.posts {
		if !inScope(post) {
			continue
		}
		if query.OrderByScore && query.MaxScore != nil &&
			!(post.Score < *query.MaxScore || (post.Score == *query.MaxScore && post.Id < query.LastId)) {
			continue
		}
		if !query.OrderByScore && query.Before != nil &&
			!(post.CreatedAt.Before(*query.Before) || (post.CreatedAt.Equal(*query.Before) && post.Id < query.LastId)) {
			continue
		}
		posts = append(posts, post)
	}
	sort.Slice(posts, func(i, j int) bool {
		if query.OrderByScore {
			if posts[i].Score != posts[j].Score {
				return posts[i].Score > posts[j].Score
			}
		} else if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].Id > posts[j].Id
	})
	if int(query.Limit) < len(posts) {
		posts = posts[:query.Limit]
	}
	return posts, nil
}

func (m *memDB) GetPostIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error) {
	if err := m.fail("GetPostIdsByAuthor"); err != nil {
		return nil, err
	}
	var ids []int64
	for id, post := range m.posts {
		if post.AuthorId == authorId {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memDB) DeletePostsByAuthor(ctx context.Context, authorId int64) error {
	if err := m.fail("DeletePostsByAuthor"); err != nil {
		return err
	}
	for id, post := range m.posts {
		if post.AuthorId == authorId {
			delete(m.posts, id)
		}
	}
	return nil
}

func (m *memDB) AdjustPostScore(ctx context.Context, id int64, delta int64) error {
	if post, ok := m.posts[id]; ok {
		post.Score += delta
	}
	return nil
}

// CommentDatabase

func (m *memDB) CreateComment(ctx context.Context, req *appDb.CreateComment) (int64, error) {
	id := m.allocId()
	m.comments[id] = &model.Comment{
		Id:        id,
		PostId:    req.PostId,
		AuthorId:  req.AuthorId,
		ParentId:  req.ParentId,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	return id, nil
}

func (m *memDB) GetCommentById(ctx context.Context, id int64) (*model.Comment, error) {
	if err := m.fail("GetCommentById"); err != nil {
		return nil, err
	}
	return m.comments[id], nil
}

func (m *memDB) GetCommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error) {
	var comments []*model.Comment
	for _, comment := range m.comments {
		if comment.PostId == postId {
			comments = append(comments, comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Id < comments[j].Id })
	return comments, nil
}

func (m *memDB) GetCommentIdsByParents(ctx context.Context, parentIds []int64) ([]int64, error) {
	if err := m.fail("GetCommentIdsByParents"); err != nil {
		return nil, err
	}
	parents := map[int64]struct{}{}
	for _, id := range parentIds {
		parents[id] = struct{}{}
	}
	var ids []int64
	for id, comment := range m.comments {
		if comment.ParentId == nil {
			continue
		}
		if _, ok := parents[*comment.ParentId]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memDB) GetCommentIdsByPosts(ctx context.Context, postIds []int64) ([]int64, error) {
	if err := m.fail("GetCommentIdsByPosts"); err != nil {
		return nil, err
	}
	posts := map[int64]struct{}{}
	for _, id := range postIds {
		posts[id] = struct{}{}
	}
	var ids []int64
	for id, comment := range m.comments {
		if _, ok := posts[comment.PostId]; ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memDB) GetCommentIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error) {
	if err := m.fail("GetCommentIdsByAuthor"); err != nil {
		return nil, err
	}
	var ids []int64
	for id, comment := range m.comments {
		if comment.AuthorId == authorId {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memDB) DeleteCommentsByIds(ctx context.Context, ids []int64) error {
	if err := m.fail("DeleteCommentsByIds"); err != nil {
		return err
	}
	for _, id := range ids {
		delete(m.comments, id)
	}
	return nil
}

func (m *memDB) DeleteCommentsByPosts(ctx context.Context, postIds []int64) error {
	if err := m.fail("DeleteCommentsByPosts"); err != nil {
		return err
	}
	posts := map[int64]struct{}{}
	for _, id := range postIds {
		posts[id] = struct{}{}
	}
	for id, comment := range m.comments {
		if _, ok := posts[comment.PostId]; ok {
			delete(m.comments, id)
		}
	}
	return nil
}

func (m *memDB) AdjustCommentScore(ctx context.Context, id int64, delta int64) error {
	if comment, ok := m.comments[id]; ok {
		comment.Score += delta
	}
	return nil
}

// CommunityDatabase

func (m *memDB) CreateCommunity(ctx context.Context, req *appDb.CreateCommunity) (int64, error) {
	id := m.allocId()
	m.communities[id] = &model.Community{
		Id:          id,
		CreatorId:   req.CreatorId,
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}
	return id, nil
}

func (m *memDB) GetCommunitiesByIds(ctx context.Context, ids []int64) ([]*model.Community, error) {
	if err := m.fail("GetCommunitiesByIds"); err != nil {
		return nil, err
	}
	var communities []*model.Community
	if ids == nil {
		for _, community := range m.communities {
			communities = append(communities, community)
		}
		return communities, nil
	}
	for _, id := range ids {
		if community, ok := m.communities[id]; ok {
			communities = append(communities, community)
		}
	}
	return communities, nil
}

func (m *memDB) GetCommunityIdsByCreator(ctx context.Context, creatorId int64) ([]int64, error) {
	if err := m.fail("GetCommunityIdsByCreator"); err != nil {
		return nil, err
	}
	var ids []int64
	for id, community := range m.communities {
		if community.CreatorId == creatorId {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memDB) DeleteCommunitiesByCreator(ctx context.Context, creatorId int64) error {
	if err := m.fail("DeleteCommunitiesByCreator"); err != nil {
		return err
	}
	for id, community := range m.communities {
		if community.CreatorId == creatorId {
			delete(m.communities, id)
		}
	}
	return nil
}

// VoteDatabase

func (m *memDB) CreateVote(ctx context.Context, vote *model.Vote) error {
	if err := m.fail("CreateVote"); err != nil {
		return err
	}
	key := refKey{vote.SubjectId, vote.TargetId, vote.TargetKind}
	if _, ok := m.votes[key]; ok {
		return appDb.ErrDupKey
	}
	stored := *vote
	stored.CreatedAt = time.Now()
	m.votes[key] = &stored
	return nil
}

func (m *memDB) GetVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (*model.Vote, error) {
	return m.votes[refKey{subjectId, targetId, kind}], nil
}

func (m *memDB) DeleteVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error) {
	key := refKey{subjectId, targetId, kind}
	if _, ok := m.votes[key]; !ok {
		return 0, nil
	}
	delete(m.votes, key)
	return 1, nil
}

func (m *memDB) DeleteVotesBySubject(ctx context.Context, subjectId int64) error {
	if err := m.fail("DeleteVotesBySubject"); err != nil {
		return err
	}
	for key := range m.votes {
		if key.subjectId == subjectId {
			delete(m.votes, key)
		}
	}
	return nil
}

func (m *memDB) DeleteVotesByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error {
	if err := m.fail("DeleteVotesByTargets"); err != nil {
		return err
	}
	targets := map[int64]struct{}{}
	for _, id := range targetIds {
		targets[id] = struct{}{}
	}
	for key := range m.votes {
		if key.kind != kind {
			continue
		}
		if _, ok := targets[key.targetId]; ok {
			delete(m.votes, key)
		}
	}
	return nil
}

// FollowDatabase

func (m *memDB) CreateFollow(ctx context.Context, follow *model.Follow) error {
	if err := m.fail("CreateFollow"); err != nil {
		return err
	}
	key := refKey{follow.SubjectId, follow.TargetId, follow.TargetKind}
	if _, ok := m.follows[key]; ok {
		return appDb.ErrDupKey
	}
	stored := *follow
	stored.CreatedAt = time.Now()
	m.follows[key] = &stored
	return nil
}

func (m *memDB) GetFollowsBySubject(ctx context.Context, subjectId int64, kind model.TargetKind) ([]*model.Follow, error) {
	var follows []*model.Follow
	for key, follow := range m.follows {
		if key.subjectId == subjectId && key.kind == kind {
			follows = append(follows, follow)
		}
	}
	return follows, nil
}

func (m *memDB) DeleteFollow(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error) {
	key := refKey{subjectId, targetId, kind}
	if _, ok := m.follows[key]; !ok {
		return 0, nil
	}
	delete(m.follows, key)
	return 1, nil
}

func (m *memDB) DeleteFollowsBySubject(ctx context.Context, subjectId int64) error {
	if err := m.fail("DeleteFollowsBySubject"); err != nil {
		return err
	}
	for key := range m.follows {
		if key.subjectId == subjectId {
			delete(m.follows, key)
		}
	}
	return nil
}

func (m *memDB) DeleteFollowsByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error {
	if err := m.fail("DeleteFollowsByTargets"); err != nil {
		return err
	}
	targets := map[int64]struct{}{}
	for _, id := range targetIds {
		targets[id] = struct{}{}
	}
	for key := range m.follows {
		if key.kind != kind {
			continue
		}
		if _, ok := targets[key.targetId]; ok {
			delete(m.follows, key)
		}
	}
	return nil
}

var _ appDb.Database = (*memDB)(nil)
