package routes

import (
	"errors"
	"net/http"

	"github.com/Araryarch/senopost-be/app"
	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/middleware"
	"github.com/Araryarch/senopost-be/util"
	"github.com/gin-gonic/gin"
)

type feedRoutes struct {
	db db.Database
}

func AddFeedRoutes(group *gin.RouterGroup, database db.Database, authCfg *config.AuthConfig) {
	routes := feedRoutes{db: database}
	feeds := group.Group("/feeds",
		middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{SessionNotRequired: true}))
	feeds.POST("", util.HandlerWrapper(routes.getFeed, &util.HandlerOpts{}))
}

type getFeedReq struct {
	OrderBy      app.PostCursorType     `json:"orderBy"`
	FollowedOnly bool                   `json:"followedOnly"`
	Cursor       *app.TaggedUnionCursor `json:"cursor"`
}

func (fr *feedRoutes) getFeed(c *gin.Context) (interface{}, *util.HTTPError) {
	var req getFeedReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}

	var cursor app.PostCursor
	if req.Cursor != nil {
		cursor = req.Cursor
	} else {
		switch req.OrderBy {
		case app.PostCursorTypeMostRecent, "":
			cursor = &app.MostRecentCursor{FollowedOnly: req.FollowedOnly}
		case app.PostCursorTypeMostPopular:
			cursor = &app.MostPopularCursor{FollowedOnly: req.FollowedOnly}
		default:
			return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "unsupported feed ordering"}
		}
	}

	posts, nextCursor, err := cursor.Posts(c, fr.db, middleware.GetUserIdMaybe(c), &app.PostCursorOpts{Limit: 20})
	if err != nil {
		if errors.Is(err, app.ErrFollowedOnlyAnonymous) {
			return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: err.Error()}
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"posts":  posts,
		"cursor": nextCursor,
	}, nil
}
