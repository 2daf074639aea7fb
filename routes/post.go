package routes

import (
	"net/http"

	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/middleware"
	"github.com/Araryarch/senopost-be/util"
	"github.com/gin-gonic/gin"
)

type postRoutes struct {
	db db.Database
}

func AddPostRoutes(group *gin.RouterGroup, database db.Database, authCfg *config.AuthConfig) {
	routes := postRoutes{db: database}
	posts := group.Group("/posts")
	posts.GET("/:id", util.HandlerWrapper(routes.getPostById, &util.HandlerOpts{}))
	posts.GET("/:id/comments", util.HandlerWrapper(routes.getPostComments, &util.HandlerOpts{}))
	posts.PUT("",
		middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}),
		util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
}

type createPostReq struct {
	CommunityId int64  `json:"communityId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
}

func (pr *postRoutes) createPost(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createPostReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.Title == "" {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "title is required"}
	}
	communities, err := pr.db.GetCommunitiesByIds(c, []int64{req.CommunityId})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if len(communities) == 0 {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "community not found"}
	}

	id, err := pr.db.CreatePost(c, &db.CreatePost{
		AuthorId:    middleware.MustGetUser(c).Id,
		CommunityId: req.CommunityId,
		Title:       req.Title,
		Content:     req.Content,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"id": id,
	}, nil
}

func (pr *postRoutes) getPostById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	post, err := pr.db.GetPostById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "post not found"}
	}
	return post, nil
}

func (pr *postRoutes) getPostComments(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	post, err := pr.db.GetPostById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "post not found"}
	}
	comments, err := pr.db.GetCommentsByPost(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return comments, nil
}
