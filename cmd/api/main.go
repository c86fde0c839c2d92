package main

import (
	"time"

	"ClipFlow.com/cmd/api/router"
	interactiondb "ClipFlow.com/cmd/interaction/dal/db"
	relationdb "ClipFlow.com/cmd/relation/dal/db"
	userdb "ClipFlow.com/cmd/user/dal/db"
	userredis "ClipFlow.com/cmd/user/infras/redis"
	videodb "ClipFlow.com/cmd/video/dal/db"
	"ClipFlow.com/config"
	"ClipFlow.com/pkg/constants"
	"ClipFlow.com/pkg/database"
	"ClipFlow.com/pkg/jwt"
	"ClipFlow.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
	"github.com/sirupsen/logrus"
)

func Init() {
	config.Init()

	conn, err := database.Open()
	if err != nil {
		logrus.Fatalf("database init failed: %v", err)
	}
	userdb.Init(conn)
	videodb.Init(conn)
	interactiondb.Init(conn)
	relationdb.Init(conn)

	if err := oss.Init(); err != nil {
		logrus.Fatalf("object storage init failed: %v", err)
	}
	if err := userredis.Init(); err != nil {
		logrus.Fatalf("redis init failed: %v", err)
	}
	if err := jwt.Init(); err != nil {
		logrus.Fatalf("jwt init failed: %v", err)
	}
}

func main() {
	Init()

	h := server.Default(
		server.WithHostPorts(config.ConfigInfo.Server.Addr),
		// leave headroom above the 50MB video cap for multipart framing
		server.WithMaxRequestBodySize(constants.MaxVideoSize+constants.MaxThumbnailSize+(1<<20)),
	)
	h.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	router.Register(h)

	logrus.Infof("starting server on %s", config.ConfigInfo.Server.Addr)
	h.Spin()
}
