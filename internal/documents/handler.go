package documents

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"audit-backend/internal/extract"
	"audit-backend/internal/shared/server/respond"
	"audit-backend/internal/shared/telemetry"
	"audit-backend/internal/shared/util"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler extracts text from uploaded procedure documents. Nothing is
// persisted; the dashboard sends the returned content back with its
// extraction request.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents/extract-text", h.extractText)
}

func (h *Handler) extractText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required")
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	content, err := extract.TextFromBytes(c.Request.Context(), data, mimeType, fileName)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	telemetry.Info("document.text_extracted", map[string]any{
		"file_name":  fileName,
		"mime_type":  mimeType,
		"size_bytes": len(data),
	})

	respond.OK(c, gin.H{
		"fileName":  fileName,
		"mimeType":  mimeType,
		"sizeBytes": len(data),
		"content":   content,
	})
}
