package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"pdfchat/pkg/cache"
	"pdfchat/pkg/config"
	"pdfchat/pkg/services"
	"pdfchat/pkg/store"

	chatRoutes "pdfchat/routes/chat"
	historyRoutes "pdfchat/routes/history"
	uploadRoutes "pdfchat/routes/upload"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "relay server active"})
	})

	st := store.NewGormStore(db)
	ai := services.NewAIService(config.AIServiceURL, time.Duration(config.AITimeoutSeconds)*time.Second)
	answers := cache.New(config.AnswerCacheMaxItems)
	answerTTL := time.Duration(config.AnswerCacheTTLSeconds) * time.Second

	chatRoutes.Register(r, st, ai, answers, answerTTL)
	historyRoutes.Register(r, st)
	uploadRoutes.Register(r, ai, config.UploadDir)
}
