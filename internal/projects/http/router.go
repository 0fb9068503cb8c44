package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. Mutating
// routes additionally run the guard middlewares.
func (h *Handler) Register(rg *gin.RouterGroup, guards ...gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/board", h.board)
	rg.GET("/stream", h.stream)
	rg.GET("/:id", h.get)

	mutate := rg.Group("", guards...)
	mutate.POST("", h.create)
	mutate.PATCH("/:id/status", h.move)
}
