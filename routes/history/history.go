package history

import (
	"github.com/gin-gonic/gin"

	"pdfchat/controllers"
	"pdfchat/pkg/store"
)

// Register mounts the sidebar history endpoints.
func Register(r *gin.Engine, st store.SessionStore) {
	r.GET("/history", controllers.ListHistory(st))
	r.GET("/history/:id", controllers.GetHistory(st))
	r.PUT("/history/:id", controllers.RenameHistory(st))
}
