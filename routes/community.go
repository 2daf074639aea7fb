package routes

import (
	"net/http"

	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/db"
	"github.com/Araryarch/senopost-be/middleware"
	"github.com/Araryarch/senopost-be/util"
	"github.com/gin-gonic/gin"
)

type communityRoutes struct {
	db db.Database
}

func AddCommunityRoutes(group *gin.RouterGroup, database db.Database, authCfg *config.AuthConfig) {
	routes := communityRoutes{db: database}
	communities := group.Group("/communities")
	communities.GET("", util.HandlerWrapper(routes.getCommunities, &util.HandlerOpts{}))
	communities.GET("/:id", util.HandlerWrapper(routes.getCommunityById, &util.HandlerOpts{}))
	communities.PUT("",
		middleware.Auth(database, authCfg.JWTSecret, &middleware.AuthConfig{}),
		util.HandlerWrapper(routes.createCommunity, &util.HandlerOpts{}))
}

type createCommunityReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (cr *communityRoutes) createCommunity(c *gin.Context) (interface{}, *util.HTTPError) {
	var req createCommunityReq
	if err := c.BindJSON(&req); err != nil {
		return nil, util.BuildJSONBindHTTPErr(err)
	}
	if len(req.Name) < 3 {
		return nil, &util.HTTPError{
			Status:  http.StatusBadRequest,
			Message: "community name must be at least 3 characters",
		}
	}
	id, err := cr.db.CreateCommunity(c, &db.CreateCommunity{
		CreatorId:   middleware.MustGetUser(c).Id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if db.IsDupKeyErr(err) {
			return nil, &util.HTTPError{Status: http.StatusConflict, Message: "community name already taken"}
		}
		return nil, util.BuildDbHTTPErr(err)
	}
	return gin.H{
		"id": id,
	}, nil
}

func (cr *communityRoutes) getCommunities(c *gin.Context) (interface{}, *util.HTTPError) {
	communities, err := cr.db.GetCommunitiesByIds(c, nil)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	return communities, nil
}

func (cr *communityRoutes) getCommunityById(c *gin.Context) (interface{}, *util.HTTPError) {
	id, httpErr := util.ParseId(c.Param("id"))
	if httpErr != nil {
		return nil, httpErr
	}
	communities, err := cr.db.GetCommunitiesByIds(c, []int64{id})
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if len(communities) == 0 {
		return nil, &util.HTTPError{Status: http.StatusNotFound, Message: "community not found"}
	}
	return communities[0], nil
}
