package chat

import (
	"time"

	"github.com/gin-gonic/gin"

	"pdfchat/controllers"
	"pdfchat/middleware"
	"pdfchat/pkg/cache"
	"pdfchat/pkg/services"
	"pdfchat/pkg/store"
)

// Register mounts the ask endpoint with basic rate limiting.
func Register(r *gin.Engine, st store.SessionStore, ai services.Collaborator, answers *cache.AnswerCache, answerTTL time.Duration) {
	r.POST("/ask", middleware.RateLimit(), controllers.Ask(st, ai, answers, answerTTL))
}
