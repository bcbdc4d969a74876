package notifier

import (
	"context"
	"fmt"

	"github.com/Keoroanthony/go-pos/internal/logger"
	"github.com/Keoroanthony/go-pos/internal/models"
)

// Notifier tells the customer their payment went through.
type Notifier interface {
	NotifyPayment(ctx context.Context, order models.Order) error
}

func ConfirmationMessage(order models.Order) string {
	return fmt.Sprintf("Thank you %s! Your payment of Rs. %d via %s has been received.",
		order.Name, order.Total, order.PaymentMethod)
}

// LogNotifier writes the confirmation to the service log.
type LogNotifier struct {
	log *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyPayment(_ context.Context, order models.Order) error {
	n.log.Info("payment_confirmed", order.Number, ConfirmationMessage(order), map[string]any{
		"contact": order.Contact,
		"total":   order.Total,
	})
	return nil
}
