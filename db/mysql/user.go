package mysql

import (
	"context"

	appDb "github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/model"
	"github.com/upper/db/v4"
)

type UserDB struct {
	sess db.Session
}

func getUserDB(sess db.Session) *UserDB {
	return &UserDB{sess}
}

func (udb *UserDB) CreateUser(ctx context.Context, req *appDb.CreateUser) (int64, error) {
	res, err := udb.sess.SQL().
		InsertInto("person").
		Columns("email", "username", "password_hash", "bio", "photo").
		Values(req.Email, req.Username, req.PasswordHash, req.Bio, req.Photo).
		ExecContext(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (udb *UserDB) GetUserById(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("person").
		Where("id = ?", id).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (udb *UserDB) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := udb.sess.SQL().
		Select("*").
		From("person").
		Where("email = ?", email).
		IteratorContext(ctx).
		One(&user); err != nil {
		if err == db.ErrNoMoreRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (udb *UserDB) UpdateUser(ctx context.Context, id int64, req *appDb.UpdateUser) error {
	sets := map[string]interface{}{}
	if req.Bio != nil {
		sets["bio"] = *req.Bio
	}
	if req.Photo != nil {
		sets["photo"] = *req.Photo
	}
	if len(sets) == 0 {
		return nil
	}
	_, err := udb.sess.SQL().
		Update("person").
		Set(sets).
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}

func (udb *UserDB) DeleteUser(ctx context.Context, id int64) error {
	_, err := udb.sess.SQL().
		DeleteFrom("person").
		Where("id = ?", id).
		ExecContext(ctx)
	return err
}
