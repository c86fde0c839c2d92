package router

import (
	interaction "ClipFlow.com/cmd/api/handlers/interaction"
	relation "ClipFlow.com/cmd/api/handlers/relation"
	user "ClipFlow.com/cmd/api/handlers/user"
	video "ClipFlow.com/cmd/api/handlers/video"
	"ClipFlow.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register wires the HTTP surface. Public reads need no token; every
// mutation except registration/login runs behind the jwt middleware.
func Register(h *server.Hertz) {
	h.POST("/register", user.Register)
	h.POST("/login", jwt.AuthMiddleware.LoginHandler)

	h.GET("/videos", video.List)
	h.GET("/videos/trending", video.Trending)
	h.GET("/videos/search", video.Search)
	h.GET("/videos/:id", video.Detail)
	h.GET("/videos/:id/comments", interaction.ListComments)
	h.GET("/users/:id", user.GetProfile)
	h.GET("/users/:id/videos", video.UserVideos)
	h.GET("/categories", video.Categories)

	auth := h.Group("/", jwt.AuthMiddleware.MiddlewareFunc())
	auth.POST("/logout", user.Logout)
	auth.GET("/me", user.Me)
	auth.POST("/videos", video.Publish)
	auth.POST("/videos/:id/like", interaction.LikeAction)
	auth.POST("/videos/:id/share", video.Share)
	auth.DELETE("/videos/:id", video.Delete)
	auth.POST("/videos/:id/comments", interaction.CreateComment)
	auth.POST("/users/:id/follow", relation.FollowAction)
	auth.PUT("/profile", user.UpdateProfile)
}
