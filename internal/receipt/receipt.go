// Package receipt renders a finished order as a fixed-width printable
// document.
package receipt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Keoroanthony/go-pos/internal/models"
)

const (
	Width      = 48
	Title      = "POS System Trial"
	TimeLayout = "Jan 2, 2006, 03:04:05 PM"
	nameWidth  = 20
)

var footer = []string{
	"Thank you for shopping with us!",
	"Please keep this receipt for your records.",
}

var tmpl = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"center": center,
	"rule":   func(ch string) string { return strings.Repeat(ch, Width) },
	"row":    row,
	"money":  money,
}).Parse(`{{center .Title}}
{{center .Date}}
{{center (printf "Order No: %s" .Order.Number)}}
{{rule "-"}}
{{row "Item" "Qty" "Price" "Total"}}
{{rule "-"}}
{{range .Order.Items}}{{row .Product.Name (printf "%d" .Quantity) (money .Product.Price) (money .Subtotal)}}
{{end}}{{rule "-"}}
{{row "TOTAL" "" "" (money .Order.Total)}}
{{rule "-"}}
Customer: {{.Order.Name}}
Contact: {{.Order.Contact}}
Payment Method: {{.Order.PaymentMethod}}
{{rule "="}}
{{range .Footer}}{{center .}}
{{end}}`))

type view struct {
	Title  string
	Date   string
	Order  models.Order
	Footer []string
}

// Write renders order to w.
func Write(w io.Writer, order models.Order) error {
	v := view{
		Title:  Title,
		Date:   order.CreatedAt.Format(TimeLayout),
		Order:  order,
		Footer: footer,
	}
	if err := tmpl.Execute(w, v); err != nil {
		return fmt.Errorf("failed to render receipt %s: %w", order.Number, err)
	}
	return nil
}

// Render returns the receipt for order as a string.
func Render(order models.Order) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func money(amount int) string {
	return fmt.Sprintf("Rs. %d", amount)
}

func row(name, qty, price, total string) string {
	if len([]rune(name)) > nameWidth {
		name = string([]rune(name)[:nameWidth-1]) + "~"
	}
	return fmt.Sprintf("%-*s %4s %10s %11s", nameWidth, name, qty, price, total)
}

func center(s string) string {
	n := len([]rune(s))
	if n >= Width {
		return s
	}
	return strings.Repeat(" ", (Width-n)/2) + s
}
