package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/wellkart/wellkart/internal/logger"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/provider"
	"github.com/wellkart/wellkart/internal/queue"
	"github.com/wellkart/wellkart/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedNotify, c.handleOrderPlacedNotify)
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
}

func (c *Consumer) handleOrderPlacedNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_placed_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPlacedNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_placed_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_placed_notify_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_placed_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver := orderNotifyReceiver(order, payload.Email)
	if receiver == "" {
		logger.Debugw("worker_order_placed_notify_skip_empty_receiver", "order_id", order.ID, "invoice_no", order.InvoiceNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_placed_notify_skip_email_service_nil", "order_id", order.ID)
		return nil
	}
	input := service.OrderEmailInput{
		InvoiceNo: order.InvoiceNo,
		Status:    order.OrderStatus,
		Amount:    order.TotalAmount,
	}
	if err := c.EmailService.SendOrderPlacedEmail(receiver, input, ""); err != nil {
		return c.normalizeEmailError(err, "worker_order_placed_notify_send_failed", order, receiver)
	}
	logger.Infow("worker_order_placed_notify_sent", "order_id", order.ID, "invoice_no", order.InvoiceNo)
	return nil
}

func (c *Consumer) handleOrderStatusNotify(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_notify_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver := orderNotifyReceiver(order, "")
	if receiver == "" {
		logger.Debugw("worker_order_status_notify_skip_empty_receiver", "order_id", order.ID, "invoice_no", order.InvoiceNo)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_status_notify_skip_email_service_nil", "order_id", order.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.OrderStatus
	}
	input := service.OrderEmailInput{
		InvoiceNo: order.InvoiceNo,
		Status:    status,
		Amount:    order.TotalAmount,
	}
	if err := c.EmailService.SendOrderStatusEmail(receiver, input, ""); err != nil {
		return c.normalizeEmailError(err, "worker_order_status_notify_send_failed", order, receiver)
	}
	logger.Infow("worker_order_status_notify_sent", "order_id", order.ID, "invoice_no", order.InvoiceNo, "status", status)
	return nil
}

// normalizeEmailError 区分不可重试的邮件错误，避免队列反复重投
func (c *Consumer) normalizeEmailError(err error, event string, order *models.Order, receiver string) error {
	switch {
	case errors.Is(err, service.ErrEmailServiceDisabled),
		errors.Is(err, service.ErrEmailServiceNotConfigured):
		logger.Debugw(event, "order_id", order.ID, "reason", "email_disabled")
		return nil
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrEmailRecipientRejected):
		logger.Warnw(event, "order_id", order.ID, "receiver", receiver, "error", err)
		return nil
	default:
		logger.Warnw(event, "order_id", order.ID, "receiver", receiver, "error", err)
		return err
	}
}

// orderNotifyReceiver 解析通知收件人，优先取任务载荷携带的邮箱，其次取订单快照
func orderNotifyReceiver(order *models.Order, payloadEmail string) string {
	if email := strings.TrimSpace(payloadEmail); email != "" {
		return email
	}
	if order == nil {
		return ""
	}
	return strings.TrimSpace(order.Email)
}
