package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t,
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
	)
	return NewOrderService(repository.NewOrderRepository(db), nil), db
}

var orderTestInvoiceSeq int

func seedOrder(t *testing.T, db *gorm.DB, orderStatus, paymentStatus string) *models.Order {
	t.Helper()
	orderTestInvoiceSeq++
	order := &models.Order{
		InvoiceNo:     fmt.Sprintf("WK:9%03d", orderTestInvoiceSeq),
		UserID:        1,
		Email:         "asha@example.com",
		FullName:      "Asha Nair",
		MobileNumber:  "9800012345",
		CartID:        1,
		AddressID:     1,
		OrderStatus:   orderStatus,
		PaymentMethod: constants.PaymentMethodCOD,
		PaymentStatus: paymentStatus,
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestOrderStatusTransitions(t *testing.T) {
	svc, db := setupOrderServiceTest(t)

	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{constants.OrderStatusPlaced, constants.OrderStatusConfirmed, true},
		{constants.OrderStatusPlaced, constants.OrderStatusCanceled, true},
		{constants.OrderStatusPlaced, constants.OrderStatusShipped, false},
		{constants.OrderStatusPlaced, constants.OrderStatusDelivered, false},
		{constants.OrderStatusConfirmed, constants.OrderStatusShipped, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusCanceled, true},
		{constants.OrderStatusConfirmed, constants.OrderStatusDelivered, false},
		{constants.OrderStatusShipped, constants.OrderStatusDelivered, true},
		{constants.OrderStatusShipped, constants.OrderStatusCanceled, false},
		{constants.OrderStatusDelivered, constants.OrderStatusCanceled, false},
		{constants.OrderStatusCanceled, constants.OrderStatusConfirmed, false},
	}
	for _, tc := range cases {
		order := seedOrder(t, db, tc.from, constants.PaymentStatusPaid)
		updated, err := svc.UpdateStatus(order.ID, tc.to)
		if tc.allowed {
			if err != nil {
				t.Fatalf("%s -> %s should be allowed, got %v", tc.from, tc.to, err)
			}
			if updated.OrderStatus != tc.to {
				t.Fatalf("%s -> %s: status want %s, got %s", tc.from, tc.to, tc.to, updated.OrderStatus)
			}
			continue
		}
		if !errors.Is(err, ErrOrderStatusInvalid) {
			t.Fatalf("%s -> %s should be rejected, got %v", tc.from, tc.to, err)
		}
	}
}

func TestOrderDeliveredMarksCODPaid(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	order := seedOrder(t, db, constants.OrderStatusShipped, constants.PaymentStatusUnPaid)

	updated, err := svc.UpdateStatus(order.ID, constants.OrderStatusDelivered)
	if err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if updated.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("payment status want Paid, got %s", updated.PaymentStatus)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.OrderStatus != constants.OrderStatusDelivered || reloaded.PaymentStatus != constants.PaymentStatusPaid {
		t.Fatalf("persisted want Delivered/Paid, got %s/%s", reloaded.OrderStatus, reloaded.PaymentStatus)
	}
}

func TestOrderGetByInvoiceNo(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	seeded := seedOrder(t, db, constants.OrderStatusPlaced, constants.PaymentStatusUnPaid)

	order, err := svc.GetByInvoiceNo(seeded.InvoiceNo)
	if err != nil {
		t.Fatalf("get by invoice no failed: %v", err)
	}
	if order.ID != seeded.ID || order.UserID != seeded.UserID {
		t.Fatalf("order want id=%d user=%d, got id=%d user=%d", seeded.ID, seeded.UserID, order.ID, order.UserID)
	}
}

func TestOrderGetNotFound(t *testing.T) {
	svc, _ := setupOrderServiceTest(t)
	if _, err := svc.Get(999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.GetByInvoiceNo("WK:0"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(999, constants.OrderStatusConfirmed); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestOrderListFilters(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	seedOrder(t, db, constants.OrderStatusPlaced, constants.PaymentStatusUnPaid)
	delivered := seedOrder(t, db, constants.OrderStatusDelivered, constants.PaymentStatusPaid)

	orders, total, err := svc.List(repository.OrderListFilter{OrderStatus: constants.OrderStatusDelivered})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(orders) != 1 {
		t.Fatalf("filtered list want 1 order, got total=%d len=%d", total, len(orders))
	}
	if orders[0].ID != delivered.ID {
		t.Fatalf("filtered order want id=%d, got id=%d", delivered.ID, orders[0].ID)
	}
}
