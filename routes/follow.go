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

type followRoutes struct {
	controller *controllers.ReferenceController
}

func AddFollowRoutes(group *gin.RouterGroup, database db.Database, controller *controllers.ReferenceController, authCfg *config.AuthConfig) {
	routes := followRoutes{controller: controller}
	follows := group.Group("/follows", middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}))
	follows.PUT("", util.HandlerWrapper(routes.recordFollow, &util.HandlerOpts{}))
	follows.DELETE("", util.HandlerWrapper(routes.removeFollow, &util.HandlerOpts{}))
}

type recordFollowReq struct {
	TargetId   int64            `json:"targetId"`
	TargetKind model.TargetKind `json:"targetKind"`
}

func (fr *followRoutes) recordFollow(c *gin.Context) (interface{}, *util.HTTPError) {
	var req recordFollowReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if req.TargetKind != model.TargetUser && req.TargetKind != model.TargetCommunity {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "targetKind must be USER or COMMUNITY"}
	}
	subjectId := middleware.MustGetUser(c).Id
	if req.TargetKind == model.TargetUser && req.TargetId == subjectId {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "cannot follow yourself"}
	}

	follow, err := fr.controller.RecordFollow(c, subjectId, req.TargetId, req.TargetKind)
	if err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return follow, nil
}

func (fr *followRoutes) removeFollow(c *gin.Context) (interface{}, *util.HTTPError) {
	targetId, httpErr := util.ParseId(c.Query("targetId"))
	if httpErr != nil {
		return nil, httpErr
	}
	kind := model.TargetKind(c.Query("targetKind"))
	if kind != model.TargetUser && kind != model.TargetCommunity {
		return nil, &util.HTTPError{Status: http.StatusBadRequest, Message: "targetKind must be USER or COMMUNITY"}
	}

	if err := fr.controller.RemoveFollow(c, middleware.MustGetUser(c).Id, targetId, kind); err != nil {
		return nil, buildErrHTTPErr(err)
	}
	return nil, nil
}
