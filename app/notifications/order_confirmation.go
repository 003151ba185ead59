// Package notifications holds the storefront's outbound notifications:
// the customer invoice email and the back-office payment alert.
package notifications

import (
	"fmt"
	"strings"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/pkg/notification"
)

// OrderConfirmation is the invoice email sent to the customer after a
// payment verifies.
type OrderConfirmation struct {
	Order models.Order
}

func (n *OrderConfirmation) Via() []string { return []string{"mail"} }

func (n *OrderConfirmation) ToMail() notification.MailData {
	return notification.MailData{
		To:      n.Order.Delivery.Email,
		Subject: fmt.Sprintf("Your Golden Aura order #%d is confirmed", n.Order.ID),
		Body:    invoiceHTML(n.Order),
	}
}

// invoiceHTML renders the order as a simple inline-styled invoice table.
func invoiceHTML(o models.Order) string {
	var b strings.Builder

	b.WriteString(`<div style="font-family:Georgia,serif;max-width:600px;margin:0 auto">`)
	b.WriteString(`<h2 style="color:#b8860b">Golden Aura</h2>`)
	fmt.Fprintf(&b, `<p>Hi %s,</p>`, o.Delivery.Name)
	fmt.Fprintf(&b, `<p>Thank you for your order. Payment received (ref %s).</p>`, o.RazorpayPaymentID)

	b.WriteString(`<table style="width:100%;border-collapse:collapse">`)
	b.WriteString(`<tr style="border-bottom:1px solid #ddd;text-align:left">`)
	b.WriteString(`<th style="padding:8px">Item</th><th style="padding:8px">Qty</th><th style="padding:8px">Price</th><th style="padding:8px">Total</th></tr>`)
	for _, it := range o.Items {
		fmt.Fprintf(&b,
			`<tr style="border-bottom:1px solid #eee"><td style="padding:8px">%s</td><td style="padding:8px">%d</td><td style="padding:8px">₹%.2f</td><td style="padding:8px">₹%.2f</td></tr>`,
			it.Title, it.Quantity, it.Price, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(&b,
		`<tr><td colspan="3" style="padding:8px;text-align:right"><strong>Grand total</strong></td><td style="padding:8px"><strong>₹%.2f</strong></td></tr>`,
		o.Amount)
	b.WriteString(`</table>`)

	fmt.Fprintf(&b, `<p>Shipping to:<br>%s<br>%s — %s<br>%s</p>`,
		o.Delivery.Name, o.Delivery.Address, o.Delivery.Pincode, o.Delivery.Phone)
	b.WriteString(`<p style="color:#888;font-size:12px">Order #`)
	fmt.Fprintf(&b, `%d · %s</p>`, o.ID, o.RazorpayOrderID)
	b.WriteString(`</div>`)

	return b.String()
}
