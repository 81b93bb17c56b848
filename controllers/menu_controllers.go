package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type MenuController struct {
	svc            *services.MenuService
	maxUploadBytes int64
}

func NewMenuController(svc *services.MenuService, maxUploadBytes int64) *MenuController {
	return &MenuController{svc: svc, maxUploadBytes: maxUploadBytes}
}

// GetAllMenuItems serves both /api/food-items and /api/food-items/menu.
// Optional query: ?category=<name>
func (mc *MenuController) GetAllMenuItems(c *gin.Context) {
	items, err := mc.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateMenuItem expects multipart form fields name, category, price and image.
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, mc.maxUploadBytes+(1<<20))
	if err := c.Request.ParseMultipartForm(mc.maxUploadBytes); err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("error processing form"))
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid price"))
		return
	}

	in := services.CreateMenuItemInput{
		Name:     c.PostForm("name"),
		Category: c.PostForm("category"),
		Price:    price,
	}
	if file, err := c.FormFile("image"); err == nil {
		in.Image = file
	}

	item, err := mc.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (mc *MenuController) GetMenuItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := mc.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, ErrItemNotFound)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem: 200 deleted, 404 unknown id, 400 when the delete itself fails.
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := mc.svc.Delete(c.Request.Context(), id)
	if err != nil {
		utils.ErrorLogger.WithError(err).WithField("menu_item_id", id).Error("delete menu item")
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("failed to delete item: %v", err))
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, ErrItemNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": id})
}
