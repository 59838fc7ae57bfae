package service

import (
	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/logger"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/queue"
	"github.com/wellkart/wellkart/internal/repository"
)

// OrderService 订单查询与状态管理服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{orderRepo: orderRepo, queueClient: queueClient}
}

// 订单状态流转表：当前状态允许进入的下一批状态
var orderStatusTransitions = map[string][]string{
	constants.OrderStatusPlaced:    {constants.OrderStatusConfirmed, constants.OrderStatusCanceled},
	constants.OrderStatusConfirmed: {constants.OrderStatusShipped, constants.OrderStatusCanceled},
	constants.OrderStatusShipped:   {constants.OrderStatusDelivered},
	constants.OrderStatusDelivered: {},
	constants.OrderStatusCanceled:  {},
}

// Get 获取订单详情
func (s *OrderService) Get(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// GetByInvoiceNo 根据发票编号获取订单
func (s *OrderService) GetByInvoiceNo(invoiceNo string) (*models.Order, error) {
	order, err := s.orderRepo.GetByInvoiceNo(invoiceNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List 获取订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// UpdateStatus 更新订单状态，仅允许流转表内的迁移
func (s *OrderService) UpdateStatus(id uint, target string) (*models.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	allowed, ok := orderStatusTransitions[order.OrderStatus]
	if !ok {
		return nil, ErrOrderStatusInvalid
	}
	permitted := false
	for _, status := range allowed {
		if status == target {
			permitted = true
			break
		}
	}
	if !permitted {
		return nil, ErrOrderStatusInvalid
	}

	if err := s.orderRepo.UpdateStatus(order.ID, target); err != nil {
		return nil, err
	}
	logger.Infow("order_status_updated",
		"order_id", order.ID,
		"from", order.OrderStatus,
		"to", target,
	)
	order.OrderStatus = target

	// 货到付款在妥投时标记已支付
	if target == constants.OrderStatusDelivered && order.PaymentStatus == constants.PaymentStatusUnPaid {
		if err := s.orderRepo.UpdatePaymentStatus(order.ID, constants.PaymentStatusPaid); err != nil {
			return nil, err
		}
		order.PaymentStatus = constants.PaymentStatusPaid
	}

	if s.queueClient.Enabled() {
		payload := queue.OrderStatusNotifyPayload{OrderID: order.ID, Status: target}
		if err := s.queueClient.EnqueueOrderStatusNotify(payload); err != nil {
			logger.Warnw("order_status_notify_enqueue_failed",
				"order_id", order.ID,
				"status", target,
				"error", err,
			)
		}
	}
	return order, nil
}
