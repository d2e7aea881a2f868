package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/costeam/cos-backend/internal/upload"
	"github.com/costeam/cos-backend/pkg/response"
)

type UploadHandler struct {
	store  upload.ObjectStore
	logger *zap.Logger
}

func NewUploadHandler(store upload.ObjectStore, log *zap.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: log,
	}
}

func (h *UploadHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("File")
	if err != nil {
		response.Fail(c, "File is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Fail(c, err.Error())
		return
	}
	defer file.Close()

	key := fmt.Sprintf("fileupload/%d-%s", time.Now().UnixMilli(), fileHeader.Filename)

	url, err := h.store.Upload(c.Request.Context(), key, file)
	if err != nil {
		h.logger.Error("object store upload failure", zap.String("key", key), zap.Error(err))
		response.Fail(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"photoUrl": url,
	})
}
