package routes

import (
	"net/http"

	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/controllers"
	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/middleware"
	"github.com/Araryarch/senopost-be/model"
	"github.com/Araryarch/senopost-be/util"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type userRoutes struct {
	db      db.Database
	cascade *controllers.CascadeController
	auth    *config.AuthConfig
}

func AddUserRoutes(group *gin.RouterGroup, database db.Database, cascade *controllers.CascadeController, authCfg *config.AuthConfig) {
	routes := userRoutes{db: database, cascade: cascade, auth: authCfg}
	users := group.Group("/users")
	users.PUT("", util.HandlerWrapper(routes.createUser, &util.HandlerOpts{}))
	users.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))
	users.GET("/:id", util.HandlerWrapper(routes.getUserById, &util.HandlerOpts{}))
	users.GET("/:id/followed", util.HandlerWrapper(routes.getFollowedCommunities, &util.HandlerOpts{}))

	authed := users.Group("", middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}))
	authed.PATCH("/:id", util.HandlerWrapper(routes.updateUser, &util.HandlerOpts{}))
	authed.DELETE("/:id", util.HandlerWrapper(routes.deleteUser, &util.HandlerOpts{}))
}

type createUserReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
	Photo    string `json:"photo"`
}

func (ur *userRoutes) createUser(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createUserReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.Email == "" || req.Username == "" || len(req.Password) < 8 {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "email, username, and a password of at least 8 characters are required",
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	id, err := ur.db.CreateUser(c, &db.CreateUser{
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		Bio:          req.Bio,
		Photo:        req.Photo,
	})
	if err != nil {
		if db.IsDupKeyErr(err) {
			return nil, &util.HTTPError{Status: http.StatusConflict, Message: "email or username already taken"}
		}
		return nil, util.BuildDbHTTPErr(err)
	}

	token, err := middleware.GenerateToken(id, ur.auth.JWTSecret, ur.auth.TokenTTL)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"id":    id,
		"token": token,
	}, nil
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (ur *userRoutes) login(c *gin.Context) (interface{}, *util.HTTPError) {
	var req loginReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	user, err := ur.db.GetUserByEmail(c, req.Email)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, &util.HTTPError{Status: http.StatusUnauthorized, Message: "invalid credentials"}
	}

	token, err := middleware.GenerateToken(user.Id, ur.auth.JWTSecret, ur.auth.TokenTTL)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"user":  user,
		"token": token,
	}, nil
}

func (ur *userRoutes) getUserById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	user, err := ur.db.GetUserById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if user == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "user not found"}
	}
	return user, nil
}

func (ur *userRoutes) getFollowedCommunities(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	follows, err := ur.db.GetFollowsBySubject(c, id, model.TargetCommunity)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if len(follows) == 0 {
		return []*model.Community{}, nil
	}
	ids := make([]int64, len(follows))
	for i, follow := range follows {
		ids[i] = follow.TargetId
	}
	communities, err := ur.db.GetCommunitiesByIds(c, ids)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return communities, nil
}

type updateUserReq struct {
	Bio   *string `json:"bio"`
	Photo *string `json:"photo"`
}

func (ur *userRoutes) updateUser(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	if middleware.MustGetUser(c).Id != id {
		return nil, &util.HTTPError{Status: http.StatusForbidden, Message: "cannot modify another user"}
	}
	var req updateUserReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if err := ur.db.UpdateUser(c, id, &db.UpdateUser{Bio: req.Bio, Photo: req.Photo}); err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return nil, nil
}

func (ur *userRoutes) deleteUser(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	if middleware.MustGetUser(c).Id != id {
		return nil, &util.HTTPError{Status: http.StatusForbidden, Message: "cannot delete another user"}
	}
	if err := ur.cascade.DeleteUser(c, id); err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return nil, nil
}
