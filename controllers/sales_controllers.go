package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/foodpoint-pos/services"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type SalesController struct {
	svc *services.SalesService
}

func NewSalesController(svc *services.SalesService) *SalesController {
	return &SalesController{svc: svc}
}

func (sc *SalesController) GetTodaySales(c *gin.Context) {
	total, err := sc.svc.Today(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, total)
}

func (sc *SalesController) GetMonthlySales(c *gin.Context) {
	total, err := sc.svc.Monthly(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, total)
}

func (sc *SalesController) GetTotalSales(c *gin.Context) {
	total, err := sc.svc.Total(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, total)
}

// GetRecentSales -> last 50, newest first
func (sc *SalesController) GetRecentSales(c *gin.Context) {
	sc.listSales(c, services.RecentSalesLimit)
}

// GetAllSales -> last 100, newest first
func (sc *SalesController) GetAllSales(c *gin.Context) {
	sc.listSales(c, services.AllSalesLimit)
}

func (sc *SalesController) listSales(c *gin.Context, limit int) {
	sales, err := sc.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, sales)
}

func (sc *SalesController) GetWeeklyTrend(c *gin.Context) {
	rows, err := sc.svc.WeeklyTrend(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (sc *SalesController) GetWeeklyTrendChart(c *gin.Context) {
	png, err := sc.svc.TrendChart(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// RecordSale stores {"amount": n}. Missing or non-positive amounts are ignored with 204.
func (sc *SalesController) RecordSale(c *gin.Context) {
	var body struct {
		Amount *float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	sale, err := sc.svc.Record(c.Request.Context(), body.Amount)
	if err != nil {
		respondServiceError(c, err, nil)
		return
	}
	if sale == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusCreated, sale)
}
