package worker

import (
	"testing"

	"github.com/wellkart/wellkart/internal/models"
)

func TestOrderNotifyReceiverPrefersPayloadEmail(t *testing.T) {
	order := &models.Order{Email: "snapshot@example.com"}
	if got := orderNotifyReceiver(order, "  payload@example.com "); got != "payload@example.com" {
		t.Fatalf("expected payload email, got %q", got)
	}
}

func TestOrderNotifyReceiverFallsBackToOrderSnapshot(t *testing.T) {
	order := &models.Order{Email: " snapshot@example.com "}
	if got := orderNotifyReceiver(order, ""); got != "snapshot@example.com" {
		t.Fatalf("expected snapshot email, got %q", got)
	}
}

func TestOrderNotifyReceiverNilOrder(t *testing.T) {
	if got := orderNotifyReceiver(nil, ""); got != "" {
		t.Fatalf("expected empty receiver, got %q", got)
	}
}
