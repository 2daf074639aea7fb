package routes

import (
	"net/http"

	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/controllers"
	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/middleware"
	"github.com/Araryarch/senopost-be/util"
	"github.com/gin-gonic/gin"
)

type commentRoutes struct {
	db      db.Database
	cascade *controllers.CascadeController
}

func AddCommentRoutes(group *gin.RouterGroup, database db.Database, cascade *controllers.CascadeController, authCfg *config.AuthConfig) {
	routes := commentRoutes{db: database, cascade: cascade}
	comments := group.Group("/comments")
	comments.GET("/:id", util.HandlerWrapper(routes.getCommentById, &util.HandlerOpts{}))

	authed := comments.Group("", middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}))
	authed.PUT("", util.HandlerWrapper(routes.createComment, &util.HandlerOpts{}))
	authed.DELETE("/:id", util.HandlerWrapper(routes.deleteComment, &util.HandlerOpts{}))
}

type createCommentReq struct {
	PostId   int64  `json:"postId"`
	ParentId *int64 `json:"parentId"`
	Content  string `json:"content"`
}

func (cr *commentRoutes) createComment(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createCommentReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.Content == "" {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "content is required"}
	}

	post, err := cr.db.GetPostById(c, req.PostId)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "post not found"}
	}
	if req.ParentId != nil {
		parent, err := cr.db.GetCommentById(c, *req.ParentId)
		if err != nil {
			return nil, util.BuildDbHTTPErr(err)
		}
		if parent == nil || parent.PostId != req.PostId {
			return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "parent comment not found on post"}
		}
	}

	id, err := cr.db.CreateComment(c, &db.CreateComment{
		PostId:   req.PostId,
		AuthorId: middleware.MustGetUser(c).Id,
		ParentId: req.ParentId,
		Content:  req.Content,
	})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"id": id,
	}, nil
}

func (cr *commentRoutes) getCommentById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	comment, err := cr.db.GetCommentById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "comment not found"}
	}
	return comment, nil
}

func (cr *commentRoutes) deleteComment(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	comment, err := cr.db.GetCommentById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if comment == nil {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "comment not found"}
	}
	if comment.AuthorId != middleware.MustGetUser(c).Id {
		return nil, &util.HTTPError{Status: http.StatusForbidden, Message: "cannot delete another user's comment"}
	}
	if err := cr.cascade.DeleteComment(c, id); err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return nil, nil
}
