package mysql

import (
	"context"
	"database/sql"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/mysql"
)

type MySQLDB struct {
	*UserDB
	*PostDB
	*CommentDB
	*CommunityDB
	*VoteDB
	*FollowDB
	sess  db.Session
	sqlDB *sql.DB
}

func GetDatabase(dsn string) (appDb.Database, error) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxIdleTime(0)

	sess, err := mysql.New(sqlDB)
	if err != nil {
		return nil, err
	}

	msdb := fromSession(sess)
	msdb.sqlDB = sqlDB
	return msdb, nil
}

func fromSession(sess db.Session) *MySQLDB {
	return &MySQLDB{
		UserDB:      getUserDB(sess),
		PostDB:      getPostDB(sess),
		CommentDB:   getCommentDB(sess),
		CommunityDB: getCommunityDB(sess),
		VoteDB:      getVoteDB(sess),
		FollowDB:    getFollowDB(sess),
		sess:        sess,
	}
}

// Tx hands fn a Database bound to a single transaction session. Every gateway
// call made through it shares that transaction until fn returns.
func (msdb *MySQLDB) Tx(ctx context.Context, fn func(tx appDb.Database) error, opts *sql.TxOptions) error {
	return msdb.sess.TxContext(ctx, func(sess db.Session) error {
		return fn(fromSession(sess))
	}, opts)
}

func (msdb *MySQLDB) Close() error {
	return msdb.sess.Close()
}
