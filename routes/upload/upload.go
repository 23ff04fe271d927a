package upload

import (
	"github.com/gin-gonic/gin"

	"pdfchat/controllers"
	"pdfchat/middleware"
	"pdfchat/pkg/services"
)

// Register mounts the PDF upload endpoint with basic rate limiting.
func Register(r *gin.Engine, ai services.Collaborator, uploadDir string) {
	r.POST("/upload", middleware.RateLimit(), controllers.Upload(ai, uploadDir))
}
