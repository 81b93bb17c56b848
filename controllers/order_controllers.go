package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// GetAllOrders -> newest first, with items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetPendingOrders(c *gin.Context) {
	orders, err := oc.svc.ListPending(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := oc.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateOrder -> status 'pending', total computed from the items
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var body services.OrderInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.svc.Create(c.Request.Context(), body)
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// UpdateOrder replaces customer details and the full item list.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var body services.OrderInput
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.svc.Update(c.Request.Context(), id, body)
	if err != nil {
		respondServiceError(c, err, ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) MarkPaymentDone(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := oc.svc.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, ErrOrderNotFound)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder only removes pending orders. A paid order is kept and the
// request answers 409 Conflict instead of a silent 200, so the counter can
// tell nothing was deleted.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := oc.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, ErrOrderNotFound)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", gin.H{"id": id})
}

func (oc *OrderController) GetReceipt(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pdf, err := oc.svc.Receipt(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, ErrOrderNotFound)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"receipt-%d.pdf\"", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
