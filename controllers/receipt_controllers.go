package controllers

import (
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chetegamis/pizzeria-app/store"
	"github.com/chetegamis/pizzeria-app/utils"
)

type ReceiptController struct {
	Store store.Store
}

func NewReceiptController(s store.Store) *ReceiptController {
	return &ReceiptController{Store: s}
}

type receiptLine struct {
	Name      string
	Size      string
	Quantity  int
	UnitPrice string
	Subtotal  string
}

// GetReceipt -> GET /orders/:order_id/receipt
// Renders the printable order document the till sends to the kitchen
// printer.
func (rc *ReceiptController) GetReceipt(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := rc.Store.FindOrderByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, "order not found")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	lines := make([]receiptLine, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = receiptLine{
			Name:      line.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: utils.FormatCurrency(line.UnitPrice),
			Subtotal:  utils.FormatCurrency(line.UnitPrice * float64(line.Quantity)),
		}
	}

	c.HTML(http.StatusOK, "receipt", gin.H{
		"OrderNumber":   order.OrderNumber,
		"Date":          order.CreatedAt.Format("02/01/2006"),
		"Time":          order.CreatedAt.Format("15:04"),
		"Name":          order.Name,
		"Phone":         order.Phone,
		"Address":       order.Address,
		"ReferenceNote": order.ReferenceNote,
		"EmployeeName":  order.EmployeeName,
		"Lines":         lines,
		"Total":         utils.FormatCurrency(order.Total),
	})
}

const receiptHTML = `<html>
  <head>
    <title>Orden CHETEGAMIS</title>
    <style>
      body { font-family: Arial, sans-serif; margin: 20px; }
      .header { text-align: center; margin-bottom: 30px; }
      .customer-info { margin-bottom: 30px; }
      .lines { margin-bottom: 30px; }
      .total { font-size: 18px; font-weight: bold; text-align: right; }
      table { width: 100%; border-collapse: collapse; }
      th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
      th { background-color: #f2f2f2; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>🍕 CHETEGAMIS 🍕</h1>
      <p>La mejor pizza de la ciudad</p>
      <p>Orden: {{.OrderNumber}}</p>
      <p>Fecha: {{.Date}} &mdash; Hora: {{.Time}}</p>
      <p>Le atendió: {{.EmployeeName}}</p>
    </div>

    <div class="customer-info">
      <h2>Información del Cliente</h2>
      <p><strong>Nombre:</strong> {{.Name}}</p>
      <p><strong>Teléfono:</strong> {{.Phone}}</p>
      <p><strong>Dirección:</strong> {{.Address}}</p>
      <p><strong>Referencia:</strong> {{.ReferenceNote}}</p>
    </div>

    <div class="lines">
      <h2>Items del Pedido</h2>
      <table>
        <thead>
          <tr>
            <th>Item</th>
            <th>Tamaño</th>
            <th>Cantidad</th>
            <th>Precio Unitario</th>
            <th>Subtotal</th>
          </tr>
        </thead>
        <tbody>
          {{range .Lines}}
          <tr>
            <td>{{.Name}}</td>
            <td>{{.Size}}</td>
            <td>{{.Quantity}}</td>
            <td>{{.UnitPrice}}</td>
            <td>{{.Subtotal}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="total">Total: {{.Total}}</div>

    <script>window.print();</script>
  </body>
</html>`

// ReceiptTemplate returns the print document template; the router installs
// it on the engine at startup.
func ReceiptTemplate() *template.Template {
	return template.Must(template.New("receipt").Parse(receiptHTML))
}
