package constants

// 订单状态常量
const (
	OrderStatusPlaced    = "OrderPlaced"
	OrderStatusConfirmed = "Confirmed"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCanceled  = "Canceled"
)

// 支付状态常量
const (
	PaymentStatusUnPaid = "UnPaid"
	PaymentStatusPaid   = "Paid"
)

// 支付方式常量
const (
	PaymentMethodCOD = "COD"
)

// 优惠券折扣类型常量
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// 优惠券状态常量
const (
	CouponStatusActive   = "Active"
	CouponStatusUnActive = "UnActive"
)

// 地址类型常量
const (
	AddressTypeHome = "Home"
	AddressTypeWork = "Work"
)

// 结账步骤常量
const (
	CheckoutStepInformation = "Information"
	CheckoutStepPayment     = "Payment"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 发票编号常量
const (
	InvoicePrefix       = "WK"
	InvoiceSequenceName = "invoice_no"
	InvoiceSequenceSeed = 1000
)

// 会话有效期常量（小时）
const (
	SessionExpireHours         = 24 * 7
	SessionExpireHoursRemember = 24 * 30
	CheckoutTokenExpireHours   = 24
)

// 队列常量
const (
	QueueDefault          = "default"
	TaskOrderPlacedNotify = "order:placed_notify"
	TaskOrderStatusNotify = "order:status_notify"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "wk"
)

// 币种常量
const (
	SiteCurrencyDefault = "INR"
)

// 站点语言常量
const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleEnUS, LocaleZhCN}
