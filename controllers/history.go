package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pdfchat/pkg/store"
)

// ListHistory returns session summaries for the sidebar, newest first.
func ListHistory(st store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		summaries, err := st.ListSessions(ctx)
		if err != nil {
			log.Printf("[history] list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch history"})
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// GetHistory returns one full session with its transcript.
func GetHistory(st store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		sess, err := st.GetSession(ctx, c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "session not found"})
			return
		}
		if err != nil {
			log.Printf("[history] get failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to fetch session"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}

// RenameHistory updates a session's title from the inline sidebar edit.
func RenameHistory(st store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Title string `json:"title"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "title is required"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		sess, err := st.RenameSession(ctx, c.Param("id"), body.Title)
		switch {
		case errors.Is(err, store.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "title must not be empty"})
			return
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "session not found"})
			return
		case err != nil:
			log.Printf("[history] rename failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to rename session"})
			return
		}
		c.JSON(http.StatusOK, sess)
	}
}
