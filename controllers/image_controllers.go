package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type ImageController struct {
	store *services.ImageStore
}

func NewImageController(store *services.ImageStore) *ImageController {
	return &ImageController{store: store}
}

// ServeImage -> GET /uploads/:filename
func (ic *ImageController) ServeImage(c *gin.Context) {
	p, ok := ic.store.Resolve(c.Param("filename"))
	if !ok {
		utils.RespondError(c, http.StatusNotFound, errors.New("image not found"))
		return
	}
	c.Header("Content-Disposition", "inline")
	c.File(p)
}
