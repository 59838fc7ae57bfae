package service

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/wellkart/wellkart/internal/config"
	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/logger"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/queue"
	"github.com/wellkart/wellkart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CheckoutService 结账服务：开始结账与提交订单两步编排。
type CheckoutService struct {
	cfg          *config.Config
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	addressRepo  repository.AddressRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	sequenceRepo repository.InvoiceSequenceRepository
	couponSvc    *CouponService
	tokenSvc     *CheckoutTokenService
	userAuthSvc  *UserAuthService
	queueClient  *queue.Client
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(
	cfg *config.Config,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	sequenceRepo repository.InvoiceSequenceRepository,
	couponSvc *CouponService,
	tokenSvc *CheckoutTokenService,
	userAuthSvc *UserAuthService,
	queueClient *queue.Client,
) *CheckoutService {
	return &CheckoutService{
		cfg:          cfg,
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		addressRepo:  addressRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		sequenceRepo: sequenceRepo,
		couponSvc:    couponSvc,
		tokenSvc:     tokenSvc,
		userAuthSvc:  userAuthSvc,
		queueClient:  queueClient,
	}
}

// CheckoutItemInput 结账商品项输入
type CheckoutItemInput struct {
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
}

// ContactInput 结账联系信息输入
type ContactInput struct {
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	Apartment     string `json:"apartment"`
	Landmark      string `json:"landmark"`
	City          string `json:"city"`
	State         string `json:"state"`
	PinCode       string `json:"pin_code"`
	MobileNumber  string `json:"mobile_number"`
	TypeOfAddress string `json:"type_of_address"`
}

// BeginCheckoutInput 开始结账输入
type BeginCheckoutInput struct {
	Contact ContactInput
	Items   []CheckoutItemInput
}

// BeginCheckoutResult 开始结账结果
type BeginCheckoutResult struct {
	CartID         uint      `json:"cart_id"`
	AddressID      uint      `json:"address_id"`
	Token          string    `json:"-"`
	TokenExpiresAt time.Time `json:"token_expires_at"`
}

// BeginCheckout 开始结账：校验必填信息，落库未归属的购物车与地址，签发续接令牌。
// 已注册邮箱直接拒绝，且拒绝发生在任何写入之前。
func (s *CheckoutService) BeginCheckout(input BeginCheckoutInput) (*BeginCheckoutResult, error) {
	if err := validateContact(input.Contact); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrCheckoutCartEmpty
	}

	email, err := normalizeEmail(input.Contact.Email)
	if err != nil {
		return nil, &CheckoutFieldError{Step: constants.CheckoutStepInformation, Field: "email"}
	}

	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	cart, err := s.buildCart(input.Items)
	if err != nil {
		return nil, err
	}
	address := buildAddress(input.Contact, email)

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.cartRepo.WithTx(tx).Create(cart); err != nil {
			return err
		}
		return s.addressRepo.WithTx(tx).Create(address)
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokenSvc.Generate(cart.ID, address.ID)
	if err != nil {
		return nil, err
	}

	logger.Infow("checkout_begun",
		"cart_id", cart.ID,
		"address_id", address.ID,
		"token_expires_at", expiresAt,
	)
	return &BeginCheckoutResult{
		CartID:         cart.ID,
		AddressID:      address.ID,
		Token:          token,
		TokenExpiresAt: expiresAt,
	}, nil
}

// PlaceOrderInput 提交订单输入
type PlaceOrderInput struct {
	Token      string
	Contact    ContactInput
	Items      []CheckoutItemInput
	CouponCode string
	RememberMe bool
	ClientIP   string
}

// PlaceOrderResult 提交订单结果
type PlaceOrderResult struct {
	Order            *models.Order `json:"order"`
	SessionToken     string        `json:"-"`
	SessionExpiresAt time.Time     `json:"session_expires_at"`
}

// PlaceOrder 提交订单：校验续接令牌，物化游客账号并签发会话，认领购物车与地址，
// 分配发票编号后创建订单。
func (s *CheckoutService) PlaceOrder(input PlaceOrderInput) (*PlaceOrderResult, error) {
	claims, err := s.tokenSvc.Parse(input.Token)
	if err != nil {
		return nil, err
	}

	email, err := normalizeEmail(input.Contact.Email)
	if err != nil {
		return nil, &CheckoutFieldError{Step: constants.CheckoutStepInformation, Field: "email"}
	}

	user, err := s.materializeGuestUser(email, input.Contact)
	if err != nil {
		return nil, err
	}

	sessionToken, sessionExpiresAt, err := s.userAuthSvc.GenerateSessionJWT(user, input.RememberMe)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.claimCart(tx, claims.CartID, user.ID, input.Items)
		if err != nil {
			return err
		}
		address, err := s.claimAddress(tx, claims.AddressID, user.ID, input.Contact, email)
		if err != nil {
			return err
		}

		subtotal := cartSubtotal(cart)
		discount := models.NewMoneyFromDecimal(decimal.Zero)
		var couponID *uint
		if strings.TrimSpace(input.CouponCode) != "" {
			productIDs, categoryIDs := cartScope(cart)
			quote, err := s.couponSvc.redeemTx(tx, CouponCheckInput{
				Code:        input.CouponCode,
				CartTotal:   subtotal,
				ProductIDs:  productIDs,
				CategoryIDs: categoryIDs,
			}, user.ID, 0)
			if err != nil {
				return err
			}
			discount = quote.DiscountAmount
			id := quote.Coupon.ID
			couponID = &id
		}

		seq, err := s.sequenceRepo.WithTx(tx).Next(s.sequenceName())
		if err != nil {
			return err
		}

		total := subtotal.Decimal.Sub(discount.Decimal)
		if total.IsNegative() {
			total = decimal.Zero
		}

		order = &models.Order{
			InvoiceNo:      s.formatInvoiceNo(seq),
			UserID:         user.ID,
			Email:          email,
			FullName:       fullName(input.Contact),
			MobileNumber:   strings.TrimSpace(input.Contact.MobileNumber),
			CartID:         cart.ID,
			AddressID:      address.ID,
			SubtotalAmount: subtotal,
			DiscountAmount: discount,
			TotalAmount:    models.NewMoneyFromDecimal(total),
			CouponID:       couponID,
			OrderStatus:    constants.OrderStatusPlaced,
			PaymentMethod:  constants.PaymentMethodCOD,
			PaymentStatus:  constants.PaymentStatusUnPaid,
			ClientIP:       input.ClientIP,
		}
		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err != nil {
		return nil, err
	}

	s.enqueuePlacedNotify(order)

	logger.Infow("order_placed",
		"order_id", order.ID,
		"invoice_no", order.InvoiceNo,
		"user_id", user.ID,
		"total_amount", order.TotalAmount.String(),
	)
	return &PlaceOrderResult{
		Order:            order,
		SessionToken:     sessionToken,
		SessionExpiresAt: sessionExpiresAt,
	}, nil
}

// materializeGuestUser 物化游客账号。已注册邮箱拒绝合并；
// 唯一索引冲突视为并发注册，同样按已存在处理。
func (s *CheckoutService) materializeGuestUser(email string, contact ContactInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	user := &models.User{
		Email:        email,
		PasswordHash: "",
		FullName:     fullName(contact),
		MobileNumber: strings.TrimSpace(contact.MobileNumber),
		Status:       constants.UserStatusActive,
	}
	if err := s.userRepo.Create(user); err != nil {
		// 复查以区分唯一索引冲突与其他写入失败
		dup, checkErr := s.userRepo.GetByEmail(email)
		if checkErr == nil && dup != nil {
			return nil, ErrAccountExists
		}
		return nil, err
	}
	return user, nil
}

// claimCart 认领令牌中的购物车，不存在时根据提交的商品项重建
func (s *CheckoutService) claimCart(tx *gorm.DB, cartID, userID uint, items []CheckoutItemInput) (*models.Cart, error) {
	repo := s.cartRepo.WithTx(tx)
	cart, err := repo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		if err := repo.AssignUser(cart.ID, userID); err != nil {
			return nil, err
		}
		cart.UserID = userID
		return cart, nil
	}

	if len(items) == 0 {
		return nil, ErrCheckoutCartEmpty
	}
	rebuilt, err := s.buildCart(items)
	if err != nil {
		return nil, err
	}
	rebuilt.UserID = userID
	if err := repo.Create(rebuilt); err != nil {
		return nil, err
	}
	return rebuilt, nil
}

// claimAddress 认领令牌中的地址，不存在时根据联系信息重建
func (s *CheckoutService) claimAddress(tx *gorm.DB, addressID, userID uint, contact ContactInput, email string) (*models.Address, error) {
	repo := s.addressRepo.WithTx(tx)
	address, err := repo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address != nil {
		if err := repo.AssignUser(address.ID, userID); err != nil {
			return nil, err
		}
		address.UserID = userID
		return address, nil
	}

	if err := validateContact(contact); err != nil {
		return nil, err
	}
	rebuilt := buildAddress(contact, email)
	rebuilt.UserID = userID
	if err := repo.Create(rebuilt); err != nil {
		return nil, err
	}
	return rebuilt, nil
}

// buildCart 构建购物车，单价缺失时回退到商品当前售价
func (s *CheckoutService) buildCart(items []CheckoutItemInput) (*models.Cart, error) {
	cart := &models.Cart{}
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrCheckoutCartEmpty
		}
		price := item.Price
		if price.Decimal.LessThanOrEqual(decimal.Zero) {
			product, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, ErrProductNotFound
			}
			price = product.Price
		}
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	return cart, nil
}

func (s *CheckoutService) enqueuePlacedNotify(order *models.Order) {
	if s.queueClient == nil || !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueOrderPlacedNotify(queue.OrderPlacedNotifyPayload{
		OrderID:   order.ID,
		InvoiceNo: order.InvoiceNo,
		Email:     order.Email,
	})
	if err != nil {
		logger.Warnw("order_placed_notify_enqueue_failed",
			"order_id", order.ID,
			"error", err,
		)
	}
}

func (s *CheckoutService) sequenceName() string {
	return constants.InvoiceSequenceName
}

func (s *CheckoutService) formatInvoiceNo(seq int64) string {
	prefix := strings.TrimSpace(s.cfg.Invoice.Prefix)
	if prefix == "" {
		prefix = constants.InvoicePrefix
	}
	return prefix + ":" + strconv.FormatInt(seq, 10)
}

func validateContact(contact ContactInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"email", contact.Email},
		{"first_name", contact.FirstName},
		{"last_name", contact.LastName},
		{"address", contact.Address},
		{"city", contact.City},
		{"state", contact.State},
		{"pin_code", contact.PinCode},
		{"mobile_number", contact.MobileNumber},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return &CheckoutFieldError{Step: constants.CheckoutStepInformation, Field: field.name}
		}
	}
	return nil
}

func buildAddress(contact ContactInput, email string) *models.Address {
	typeOfAddress := strings.TrimSpace(contact.TypeOfAddress)
	if typeOfAddress == "" {
		typeOfAddress = constants.AddressTypeHome
	}
	return &models.Address{
		FirstName:     strings.TrimSpace(contact.FirstName),
		LastName:      strings.TrimSpace(contact.LastName),
		Address:       strings.TrimSpace(contact.Address),
		Apartment:     strings.TrimSpace(contact.Apartment),
		Landmark:      strings.TrimSpace(contact.Landmark),
		City:          strings.TrimSpace(contact.City),
		State:         strings.TrimSpace(contact.State),
		PinCode:       strings.TrimSpace(contact.PinCode),
		Email:         email,
		MobileNumber:  strings.TrimSpace(contact.MobileNumber),
		TypeOfAddress: typeOfAddress,
	}
}

func fullName(contact ContactInput) string {
	return strings.TrimSpace(strings.TrimSpace(contact.FirstName) + " " + strings.TrimSpace(contact.LastName))
}

func cartSubtotal(cart *models.Cart) models.Money {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return models.NewMoneyFromDecimal(total)
}

func cartScope(cart *models.Cart) (productIDs, categoryIDs []uint) {
	seenCategory := make(map[uint]struct{})
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
		if item.Product != nil && item.Product.CategoryID > 0 {
			if _, ok := seenCategory[item.Product.CategoryID]; !ok {
				seenCategory[item.Product.CategoryID] = struct{}{}
				categoryIDs = append(categoryIDs, item.Product.CategoryID)
			}
		}
	}
	return productIDs, categoryIDs
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", ErrCheckoutFieldMissing
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", err
	}
	return trimmed, nil
}
