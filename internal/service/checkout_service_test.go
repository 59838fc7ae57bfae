package service

import (
	"errors"
	"testing"

	"github.com/wellkart/wellkart/internal/config"
	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/repository"

	"gorm.io/gorm"
)

type checkoutTestEnv struct {
	svc      *CheckoutService
	tokenSvc *CheckoutTokenService
	userAuth *UserAuthService
	db       *gorm.DB
}

func setupCheckoutServiceTest(t *testing.T) *checkoutTestEnv {
	t.Helper()
	db := openTestDB(t,
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Address{},
		&models.Order{},
		&models.Coupon{},
		&models.CouponUsage{},
		&models.InvoiceSequence{},
	)
	bindGlobalDB(t, db)

	if err := models.InitInvoiceSequence(constants.InvoiceSequenceName, constants.InvoiceSequenceSeed, constants.InvoicePrefix); err != nil {
		t.Fatalf("init invoice sequence failed: %v", err)
	}

	cfg := &config.Config{}
	cfg.Checkout.TokenSecret = "checkout-secret"
	cfg.Checkout.TokenExpireHours = 24
	cfg.UserJWT.SecretKey = "user-secret"
	cfg.UserJWT.ExpireHours = 24

	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	sequenceRepo := repository.NewInvoiceSequenceRepository(db)
	couponSvc := NewCouponService(repository.NewCouponRepository(db), repository.NewCouponUsageRepository(db))
	tokenSvc := NewCheckoutTokenService(cfg)
	userAuthSvc := NewUserAuthService(cfg, userRepo)

	svc := NewCheckoutService(cfg, userRepo, cartRepo, addressRepo, orderRepo, productRepo,
		sequenceRepo, couponSvc, tokenSvc, userAuthSvc, nil)
	return &checkoutTestEnv{svc: svc, tokenSvc: tokenSvc, userAuth: userAuthSvc, db: db}
}

func testContact(email string) ContactInput {
	return ContactInput{
		Email:        email,
		FirstName:    "Asha",
		LastName:     "Nair",
		Address:      "12 MG Road",
		City:         "Kochi",
		State:        "Kerala",
		PinCode:      "682001",
		MobileNumber: "9800012345",
	}
}

func testItems() []CheckoutItemInput {
	return []CheckoutItemInput{
		{ProductID: 1, Quantity: 2, Price: money(250)},
		{ProductID: 2, Quantity: 1, Price: money(499)},
	}
}

func (env *checkoutTestEnv) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := env.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestBeginCheckoutMissingField(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	contact := testContact("asha@example.com")
	contact.City = "  "
	_, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: contact, Items: testItems()})
	if !errors.Is(err, ErrCheckoutFieldMissing) {
		t.Fatalf("want ErrCheckoutFieldMissing, got %v", err)
	}
	var fieldErr *CheckoutFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("want CheckoutFieldError, got %T", err)
	}
	if fieldErr.Field != "city" || fieldErr.Step != constants.CheckoutStepInformation {
		t.Fatalf("want field=city step=Information, got field=%s step=%s", fieldErr.Field, fieldErr.Step)
	}
}

func TestBeginCheckoutInvalidEmail(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	_, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("not-an-email"), Items: testItems()})
	var fieldErr *CheckoutFieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "email" {
		t.Fatalf("want CheckoutFieldError on email, got %v", err)
	}
}

func TestBeginCheckoutEmptyCart(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	_, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com")})
	if !errors.Is(err, ErrCheckoutCartEmpty) {
		t.Fatalf("want ErrCheckoutCartEmpty, got %v", err)
	}
}

func TestBeginCheckoutRejectsRegisteredEmailBeforeWrite(t *testing.T) {
	env := setupCheckoutServiceTest(t)
	if err := env.db.Create(&models.User{Email: "asha@example.com", PasswordHash: "x"}).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	// 邮箱大小写与空白不影响判定
	_, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("  Asha@Example.com "), Items: testItems()})
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}
	if n := env.count(t, &models.Cart{}); n != 0 {
		t.Fatalf("carts want 0 after rejection, got %d", n)
	}
	if n := env.count(t, &models.Address{}); n != 0 {
		t.Fatalf("addresses want 0 after rejection, got %d", n)
	}
}

func TestBeginCheckoutIssuesResumableToken(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	result, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("Asha@Example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("token should not be empty")
	}

	claims, err := env.tokenSvc.Parse(result.Token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.CartID != result.CartID || claims.AddressID != result.AddressID {
		t.Fatalf("token ids want cart=%d address=%d, got cart=%d address=%d",
			result.CartID, result.AddressID, claims.CartID, claims.AddressID)
	}

	var cart models.Cart
	if err := env.db.Preload("Items").First(&cart, result.CartID).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if cart.UserID != 0 || len(cart.Items) != 2 {
		t.Fatalf("cart want unclaimed with 2 items, got user=%d items=%d", cart.UserID, len(cart.Items))
	}

	var address models.Address
	if err := env.db.First(&address, result.AddressID).Error; err != nil {
		t.Fatalf("load address failed: %v", err)
	}
	if address.UserID != 0 || address.Email != "asha@example.com" {
		t.Fatalf("address want unclaimed with normalized email, got user=%d email=%s", address.UserID, address.Email)
	}
	if address.TypeOfAddress != constants.AddressTypeHome {
		t.Fatalf("address type want Home default, got %s", address.TypeOfAddress)
	}
}

func TestPlaceOrderAssignsSequentialInvoices(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	first, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	result, err := env.svc.PlaceOrder(PlaceOrderInput{
		Token:   first.Token,
		Contact: testContact("asha@example.com"),
		Items:   testItems(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	order := result.Order
	if order.InvoiceNo != "WK:1001" {
		t.Fatalf("first invoice want WK:1001, got %s", order.InvoiceNo)
	}
	if order.OrderStatus != constants.OrderStatusPlaced {
		t.Fatalf("order status want OrderPlaced, got %s", order.OrderStatus)
	}
	if order.PaymentMethod != constants.PaymentMethodCOD || order.PaymentStatus != constants.PaymentStatusUnPaid {
		t.Fatalf("payment want COD/UnPaid, got %s/%s", order.PaymentMethod, order.PaymentStatus)
	}
	if order.SubtotalAmount.String() != "999.00" || order.TotalAmount.String() != "999.00" {
		t.Fatalf("amounts want 999.00/999.00, got %s/%s", order.SubtotalAmount.String(), order.TotalAmount.String())
	}
	if result.SessionToken == "" {
		t.Fatalf("session token should not be empty")
	}

	// 游客账号已物化且购物车与地址归属到该账号
	var user models.User
	if err := env.db.Where("email = ?", "asha@example.com").First(&user).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if !user.IsGuest() {
		t.Fatalf("materialized user should have no password")
	}
	var cart models.Cart
	if err := env.db.First(&cart, order.CartID).Error; err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if cart.UserID != user.ID {
		t.Fatalf("cart want claimed by user %d, got %d", user.ID, cart.UserID)
	}
	var address models.Address
	if err := env.db.First(&address, order.AddressID).Error; err != nil {
		t.Fatalf("load address failed: %v", err)
	}
	if address.UserID != user.ID {
		t.Fatalf("address want claimed by user %d, got %d", user.ID, address.UserID)
	}

	// 会话令牌应可按用户密钥解析
	claims, err := env.userAuth.ParseUserJWT(result.SessionToken)
	if err != nil {
		t.Fatalf("parse session token failed: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("session user want %d, got %d", user.ID, claims.UserID)
	}

	second, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("ravi@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("second begin failed: %v", err)
	}
	nextResult, err := env.svc.PlaceOrder(PlaceOrderInput{
		Token:   second.Token,
		Contact: testContact("ravi@example.com"),
		Items:   testItems(),
	})
	if err != nil {
		t.Fatalf("second place order failed: %v", err)
	}
	if nextResult.Order.InvoiceNo != "WK:1002" {
		t.Fatalf("second invoice want WK:1002, got %s", nextResult.Order.InvoiceNo)
	}
}

func TestPlaceOrderAppliesCoupon(t *testing.T) {
	env := setupCheckoutServiceTest(t)
	coupon := &models.Coupon{
		Code:              "WELCOME10",
		DiscountType:      constants.CouponTypePercentage,
		DiscountValue:     money(10),
		MinPurchaseAmount: money(499),
		MaxDiscountAmount: money(200),
		UsageLimit:        500,
		Status:            constants.CouponStatusActive,
	}
	if err := env.db.Create(coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	begin, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	result, err := env.svc.PlaceOrder(PlaceOrderInput{
		Token:      begin.Token,
		Contact:    testContact("asha@example.com"),
		Items:      testItems(),
		CouponCode: "WELCOME10",
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}

	order := result.Order
	if order.DiscountAmount.String() != "99.90" {
		t.Fatalf("discount want 99.90, got %s", order.DiscountAmount.String())
	}
	if order.TotalAmount.String() != "899.10" {
		t.Fatalf("total want 899.10, got %s", order.TotalAmount.String())
	}
	if order.CouponID == nil || *order.CouponID != coupon.ID {
		t.Fatalf("order should reference coupon %d", coupon.ID)
	}

	var reloaded models.Coupon
	if err := env.db.First(&reloaded, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if reloaded.UsedCount != 1 {
		t.Fatalf("coupon used count want 1, got %d", reloaded.UsedCount)
	}
	var usageCount int64
	if err := env.db.Model(&models.CouponUsage{}).Where("coupon_id = ?", coupon.ID).Count(&usageCount).Error; err != nil {
		t.Fatalf("count usages failed: %v", err)
	}
	if usageCount != 1 {
		t.Fatalf("usage rows want 1, got %d", usageCount)
	}
}

func TestPlaceOrderCouponFailureAbortsOrder(t *testing.T) {
	env := setupCheckoutServiceTest(t)
	coupon := &models.Coupon{
		Code:              "BIGSPEND",
		DiscountType:      constants.CouponTypeFixed,
		DiscountValue:     money(500),
		MinPurchaseAmount: money(5000),
		Status:            constants.CouponStatusActive,
	}
	if err := env.db.Create(coupon).Error; err != nil {
		t.Fatalf("seed coupon failed: %v", err)
	}

	begin, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	_, err = env.svc.PlaceOrder(PlaceOrderInput{
		Token:      begin.Token,
		Contact:    testContact("asha@example.com"),
		Items:      testItems(),
		CouponCode: "BIGSPEND",
	})
	if !errors.Is(err, ErrCouponMinAmount) {
		t.Fatalf("want ErrCouponMinAmount, got %v", err)
	}
	if n := env.count(t, &models.Order{}); n != 0 {
		t.Fatalf("orders want 0 after rollback, got %d", n)
	}
	if n := env.count(t, &models.CouponUsage{}); n != 0 {
		t.Fatalf("usage rows want 0 after rollback, got %d", n)
	}
}

func TestPlaceOrderRejectsRegisteredEmail(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	begin, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	// 开始结账与提交订单之间该邮箱完成了注册
	if err := env.db.Create(&models.User{Email: "asha@example.com", PasswordHash: "x"}).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	_, err = env.svc.PlaceOrder(PlaceOrderInput{
		Token:   begin.Token,
		Contact: testContact("asha@example.com"),
		Items:   testItems(),
	})
	if !errors.Is(err, ErrAccountExists) {
		t.Fatalf("want ErrAccountExists, got %v", err)
	}
}

func TestPlaceOrderBadToken(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	_, err := env.svc.PlaceOrder(PlaceOrderInput{
		Token:   "garbage",
		Contact: testContact("asha@example.com"),
		Items:   testItems(),
	})
	if !errors.Is(err, ErrCheckoutTokenInvalid) {
		t.Fatalf("want ErrCheckoutTokenInvalid, got %v", err)
	}
}

func TestPlaceOrderRebuildsMissingCart(t *testing.T) {
	env := setupCheckoutServiceTest(t)

	begin, err := env.svc.BeginCheckout(BeginCheckoutInput{Contact: testContact("asha@example.com"), Items: testItems()})
	if err != nil {
		t.Fatalf("begin checkout failed: %v", err)
	}
	// 购物车在提交订单前被清理
	if err := env.db.Delete(&models.Cart{}, begin.CartID).Error; err != nil {
		t.Fatalf("delete cart failed: %v", err)
	}

	result, err := env.svc.PlaceOrder(PlaceOrderInput{
		Token:   begin.Token,
		Contact: testContact("asha@example.com"),
		Items:   testItems(),
	})
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if result.Order.CartID == begin.CartID {
		t.Fatalf("order should reference a rebuilt cart")
	}
	if result.Order.SubtotalAmount.String() != "999.00" {
		t.Fatalf("rebuilt subtotal want 999.00, got %s", result.Order.SubtotalAmount.String())
	}
}
