package notifications

import (
	"fmt"

	"github.com/shashiranjanraj/goldenaura/pkg/notification"
)

// PaymentAlert pings the back-office Slack channel when a payment
// callback fails signature verification. Carries only the gateway
// order id; the submitted signature never leaves the process.
type PaymentAlert struct {
	GatewayOrderID string
}

func (n *PaymentAlert) Via() []string { return []string{"slack"} }

func (n *PaymentAlert) ToSlack() notification.SlackData {
	return notification.SlackData{
		Text: ":rotating_light: Payment verification failed",
		Attachments: []notification.SlackAttachment{
			{
				Color:  "danger",
				Title:  "Signature mismatch",
				Text:   fmt.Sprintf("Gateway order %s rejected, possible forged callback", n.GatewayOrderID),
				Footer: "Golden Aura",
			},
		},
	}
}
