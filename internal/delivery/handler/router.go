package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes wires the versioned API surface. requireAuth is applied
// per route; list and profile reads stay public.
func RegisterRoutes(e *echo.Echo, auth *AuthHandler, users *UserHandler, posts *PostHandler, requireAuth echo.MiddlewareFunc) {
	api := e.Group("/api/v1")

	a := api.Group("/auth")
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)
	a.GET("/profile", auth.Profile, requireAuth)

	p := api.Group("/posts")
	p.GET("", posts.List)
	p.POST("", posts.Create, requireAuth)
	p.GET("/my-posts", posts.MyPosts, requireAuth)
	p.PUT("/like", posts.Like, requireAuth)
	p.PUT("/unlike", posts.Unlike, requireAuth)
	p.PUT("/comment", posts.Comment, requireAuth)
	p.DELETE("/comment/:postId/:commentId", posts.DeleteComment, requireAuth)
	p.DELETE("/delete-post/:postId", posts.Delete, requireAuth)

	u := api.Group("/users")
	u.GET("/allusers", users.List)
	u.GET("/:id", users.Profile)
	u.PUT("/follow", users.Follow, requireAuth)
	u.PUT("/unfollow", users.Unfollow, requireAuth)
	u.PUT("/update", users.Update, requireAuth)
}
