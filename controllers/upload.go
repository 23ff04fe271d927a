package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pdfchat/pkg/services"
)

// Upload saves the multipart file where the AI engine can read it, forwards
// {filename, absolute path} to the engine, and returns the engine's ack
// verbatim. On engine failure the saved file is removed so no partial state
// is left behind.
func Upload(ai services.Collaborator, uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "no file uploaded"})
			return
		}

		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			log.Printf("[upload] mkdir %s: %v", uploadDir, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to store file"})
			return
		}

		// timestamp+uuid name so concurrent uploads of the same file cannot collide
		dst := filepath.Join(uploadDir, fmt.Sprintf("%d_%s%s",
			time.Now().Unix(), uuid.NewString(), filepath.Ext(file.Filename)))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			log.Printf("[upload] save %s: %v", dst, err)
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to store file"})
			return
		}

		absPath, err := filepath.Abs(dst)
		if err != nil {
			absPath = dst
		}
		log.Printf("[upload] received %s, stored at %s", file.Filename, absPath)

		ack, err := ai.ProcessPDF(c.Request.Context(), file.Filename, absPath)
		if err != nil {
			log.Printf("[upload] collaborator failed: %v", err)
			if rmErr := os.Remove(dst); rmErr != nil {
				log.Printf("[upload] cleanup %s: %v", dst, rmErr)
			}
			c.JSON(http.StatusBadGateway, gin.H{"msg": "failed to process PDF with AI"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "File processed successfully",
			"data":    ack,
		})
	}
}
