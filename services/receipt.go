package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/yeremiapane/foodpoint-pos/models"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

// Receipt renders an order as an A5 PDF.
func (s *OrderService) Receipt(ctx context.Context, id uint) ([]byte, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return renderReceipt(s.cfg.RestaurantName, order)
}

func renderReceipt(restaurant string, order models.Order) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(restaurant), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, "Receipt "+order.ReceiptNumber(), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, order.CreatedAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	info := [][2]string{
		{"Customer", order.CustomerName},
		{"Phone", order.CustomerPhone},
		{"Payment", order.PaymentMethod},
		{"Status", string(order.Status)},
	}
	for _, row := range info {
		if row[1] == "" {
			continue
		}
		pdf.CellFormat(30, 5, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(64, 6, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(14, 6, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, it := range order.OrderItems {
		pdf.CellFormat(64, 6, tr(it.ItemName), "", 0, "L", false, 0, "")
		pdf.CellFormat(14, 6, strconv.Itoa(it.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, utils.FormatCurrency(it.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, utils.FormatCurrency(it.Subtotal()), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(103, 7, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, utils.FormatCurrency(order.TotalAmount), "T", 1, "R", false, 0, "")

	if order.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.MultiCell(0, 4, tr("Notes: "+order.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt for order %d: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}
