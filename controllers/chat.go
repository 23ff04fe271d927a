package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pdfchat/models"
	"pdfchat/pkg/cache"
	"pdfchat/pkg/services"
	"pdfchat/pkg/store"
	"pdfchat/pkg/utils"
)

// storeTimeout bounds individual store calls so a stuck database cannot hang
// a request forever.
const storeTimeout = 10 * time.Second

type askRequest struct {
	Question  string  `json:"question"`
	SessionID *string `json:"sessionId"`
}

type targetKind int

const (
	newSession targetKind = iota
	existingSession
)

// askTarget is the explicit create-vs-append decision, resolved up front so
// both paths are visible and testable instead of hiding behind a nil check.
type askTarget struct {
	kind      targetKind
	sessionID string
}

func resolveTarget(sessionID *string) askTarget {
	if sessionID != nil && strings.TrimSpace(*sessionID) != "" {
		return askTarget{kind: existingSession, sessionID: strings.TrimSpace(*sessionID)}
	}
	return askTarget{kind: newSession}
}

// Ask answers a question through the collaborator and records the exchange.
// The collaborator sees only the question text; thread continuity lives in
// the session store.
func Ask(st store.SessionStore, ai services.Collaborator, answers *cache.AnswerCache, answerTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body askRequest
		if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Question) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "question is required"})
			return
		}
		question := strings.TrimSpace(body.Question)
		target := resolveTarget(body.SessionID)

		// answer cache first; identical questions get identical answers
		answer, cached := answers.Get(question)
		if !cached {
			var err error
			answer, err = ai.Ask(c.Request.Context(), question)
			if err != nil {
				log.Printf("[chat] collaborator ask failed: %v", err)
				c.JSON(http.StatusBadGateway, gin.H{"msg": "AI service is offline or busy"})
				return
			}
			answers.Set(question, answer, answerTTL)
		}

		now := time.Now()
		exchange := []models.Message{
			{Role: models.RoleUser, Text: question, Timestamp: now},
			{Role: models.RoleBot, Text: answer, Timestamp: now},
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()

		var sess *models.ChatSession
		var err error
		switch target.kind {
		case existingSession:
			sess, err = st.AppendMessages(ctx, target.sessionID, exchange)
		case newSession:
			sess, err = st.CreateSession(ctx, utils.DeriveTitle(question), exchange)
		}
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "session not found"})
			return
		}
		if err != nil {
			log.Printf("[chat] store failure: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to save chat"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"answer":    answer,
			"sessionId": sess.ID,
		})
	}
}
