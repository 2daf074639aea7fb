package main

import (
	"fmt"
	"time"

	"github.com/Araryarch/senopost-be/config"
	"github.com/Araryarch/senopost-be/controllers"
	"github.com/Araryarch/senopost-be/db/mysql"
	"github.com/Araryarch/senopost-be/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	database, err := mysql.GetDatabase(cfg.Database.DSN())
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	defer database.Close()

	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	cascadeController := controllers.NewCascadeController(database)
	referenceController := controllers.NewReferenceController(database)

	routes.AddHealthCheckRoutes(&r.RouterGroup)
	routes.AddUserRoutes(&r.RouterGroup, database, cascadeController, cfg.Auth)
	routes.AddCommunityRoutes(&r.RouterGroup, database, cfg.Auth)
	routes.AddPostRoutes(&r.RouterGroup, database, cfg.Auth)
	routes.AddCommentRoutes(&r.RouterGroup, database, cascadeController, cfg.Auth)
	routes.AddVoteRoutes(&r.RouterGroup, database, referenceController, cfg.Auth)
	routes.AddFollowRoutes(&r.RouterGroup, database, referenceController, cfg.Auth)
	routes.AddFeedRoutes(&r.RouterGroup, database, cfg.Auth)

	logrus.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(fmt.Sprintf(":%v", cfg.Server.Port)); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
