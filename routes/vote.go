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
)

type voteRoutes struct {
	controller *controllers.ReferenceController
}

func AddVoteRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.ReferenceController, authCfg *config.AuthConfig) {
	routes := voteRoutes{controller: controller}
	votes := group.Group("/votes", middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}))
	votes.PUT("", util.HandlerWrapper(routes.recordVote, &util.HandlerOpts{}))
	votes.DELETE("", util.HandlerWrapper(routes.removeVote, &util.HandlerOpts{}))
}

type recordVoteReq struct {
	TargetId   int64            `json:"targetId"`
	TargetKind model.TargetKind `json:"targetKind"`
	Value      int8             `json:"value"`
}

func (vr *voteRoutes) recordVote(c *gin.Context) (interface{}, *util.HTTPError) {
	var req recordVoteReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.TargetKind != model.TargetPost && req.TargetKind != model.TargetComment {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "targetKind must be POST or COMMENT"}
	}
	if req.Value != 1 && req.Value != -1 {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "value must be 1 or -1"}
	}

	vote, err := vr.controller.RecordVote(c, middleware.MustGetUser(c).Id, req.TargetId, req.TargetKind, req.Value)
	if err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return vote, nil
}

func (vr *voteRoutes) removeVote(c *gin.Context) (interface{}, *util.HTTPError) {
	targetId, httpErr := util.ParseId(c.Query("targetId"))
	if httpErr != nil {
		return nil, httpErr
	}
	kind := model.TargetKind(c.Query("targetKind"))
	if kind != model.TargetPost && kind != model.TargetComment {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "targetKind must be POST or COMMENT"}
	}

	if err := vr.controller.RemoveVote(c, middleware.MustGetUser(c).Id, targetId, kind); err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return nil, nil
}
