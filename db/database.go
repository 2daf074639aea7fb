package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/Araryarch/senopost-be/model"

	_ "github.com/go-sql-driver/mysql"
)

type Database interface {
	UserDatabase
	PostDatabase
	CommentDatabase
	CommunityDatabase
	VoteDatabase
	FollowDatabase

	// Tx runs fn inside a single transaction; the Database handed to fn is
	// bound to that transaction and only valid for the duration of fn. A nil
	// opts defaults to the driver's isolation level.
	Tx(ctx context.Context, fn func(tx Database) error, opts *sql.TxOptions) error
	Close() error
}

type CreateUser struct {
	Email        string
	Username     string
	PasswordHash string
	Bio          string
	Photo        string
}

type UpdateUser struct {
	Bio   *string
	Photo *string
}

type CreateCommunity struct {
	CreatorId   int64
	Name        string
	Description string
}

type CreatePost struct {
	AuthorId    int64
	CommunityId int64
	Title       string
	Content     string
}

type CreateComment struct {
	PostId   int64
	AuthorId int64
	ParentId *int64
	Content  string
}

// PostsListQuery pages posts by creation time or score, optionally scoped to
// a community id set. Nil CommunityIds means all communities.
type PostsListQuery struct {
	CommunityIds []int64
	Before       *time.Time
	MaxScore     *int64
	LastId       int64
	Limit        int16
	OrderByScore bool
}

type UserDatabase interface {
	CreateUser(ctx context.Context, req *CreateUser) (userId int64, err error)
	GetUserById(ctx context.Context, id int64) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, req *UpdateUser) error
	DeleteUser(ctx context.Context, id int64) error
}

type PostDatabase interface {
	CreatePost(ctx context.Context, req *CreatePost) (postId int64, err error)
	GetPostById(ctx context.Context, id int64) (*model.Post, error)
	GetPosts(ctx context.Context, query *PostsListQuery) ([]*model.Post, error)
	GetPostIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error)
	DeletePostsByAuthor(ctx context.Context, authorId int64) error
	AdjustPostScore(ctx context.Context, id int64, delta int64) error
}

type CommentDatabase interface {
	CreateComment(ctx context.Context, req *CreateComment) (commentId int64, err error)
	GetCommentById(ctx context.Context, id int64) (*model.Comment, error)
	GetCommentsByPost(ctx context.Context, postId int64) ([]*model.Comment, error)
	GetCommentIdsByParents(ctx context.Context, parentIds []int64) ([]int64, error)
	GetCommentIdsByPosts(ctx context.Context, postIds []int64) ([]int64, error)
	GetCommentIdsByAuthor(ctx context.Context, authorId int64) ([]int64, error)
	DeleteCommentsByIds(ctx context.Context, ids []int64) error
	DeleteCommentsByPosts(ctx context.Context, postIds []int64) error
	AdjustCommentScore(ctx context.Context, id int64, delta int64) error
}

type CommunityDatabase interface {
	CreateCommunity(ctx context.Context, req *CreateCommunity) (communityId int64, err error)
	// GetCommunitiesByIds gets communities. nil ids gets all communities
	GetCommunitiesByIds(ctx context.Context, ids []int64) ([]*model.Community, error)
	GetCommunityIdsByCreator(ctx context.Context, creatorId int64) ([]int64, error)
	DeleteCommunitiesByCreator(ctx context.Context, creatorId int64) error
}

type VoteDatabase interface {
	// CreateVote fails with ErrDupKey if the (subject, target, kind) tuple
	// already exists.
	CreateVote(ctx context.Context, vote *model.Vote) error
	GetVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (*model.Vote, error)
	// DeleteVote reports the number of rows removed (0 or 1).
	DeleteVote(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error)
	DeleteVotesBySubject(ctx context.Context, subjectId int64) error
	// DeleteVotesByTargets is idempotent; an empty or already-absent id set is
	// not an error.
	DeleteVotesByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error
}

type FollowDatabase interface {
	CreateFollow(ctx context.Context, follow *model.Follow) error
	GetFollowsBySubject(ctx context.Context, subjectId int64, kind model.TargetKind) ([]*model.Follow, error)
	DeleteFollow(ctx context.Context, subjectId, targetId int64, kind model.TargetKind) (int64, error)
	DeleteFollowsBySubject(ctx context.Context, subjectId int64) error
	DeleteFollowsByTargets(ctx context.Context, kind model.TargetKind, targetIds []int64) error
}
