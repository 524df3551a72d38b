package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dethrtrns/techwondoe-test-task/internal/logger"
	"github.com/dethrtrns/techwondoe-test-task/internal/middleware"
	"github.com/dethrtrns/techwondoe-test-task/internal/service"
)

// ExportHandler serves the users table as a CSV download.
type ExportHandler struct {
	users service.UserService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(users service.UserService) *ExportHandler {
	return &ExportHandler{users: users}
}

// TimeFormat is how the export renders creation timestamps.
const TimeFormat = time.RFC3339

var csvHeader = []string{"id", "name", "email", "role", "avatar", "status", "created_at"}

// DownloadCSV handles GET /api/export
func (h *ExportHandler) DownloadCSV(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		logger.WithRequestID(middleware.GetRequestID(c)).Error("Export users failed",
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export users"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="users.csv"`)
	c.Status(http.StatusOK)

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return
	}
	for _, u := range users {
		record := []string{u.ID, u.Name, u.Email, u.Role, u.Avatar, u.Status, u.CreatedAt.Format(TimeFormat)}
		if err := writer.Write(record); err != nil {
			return
		}
	}
}
