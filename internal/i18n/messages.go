package i18n

import "github.com/wellkart/wellkart/internal/constants"

// messages 各语言消息表
var messages = map[string]map[string]string{
	constants.LocaleEnUS: {
		"success":        "success",
		"error.invalid_request": "Invalid request",
		"error.unauthorized":    "Unauthorized",
		"error.forbidden":       "Forbidden",
		"error.not_found":       "Not found",
		"error.internal":        "Internal server error",
		"error.rate_limited":    "Too many requests, please try again later",
		"error.rate_limit_unavailable": "Service temporarily unavailable, please try again later",
		"error.login_too_many":         "Too many login attempts, please try again in %d seconds",
		"error.checkout_too_many":      "Too many checkout attempts, please try again in %d seconds",

		"error.user_id_invalid":       "Invalid user id",
		"error.user_id_type_invalid":  "Invalid user id type",
		"error.admin_id_invalid":      "Invalid admin id",
		"error.admin_id_type_invalid": "Invalid admin id type",

		"error.bad_request":                 "Invalid request",
		"error.config_fetch_failed":         "Failed to fetch data",
		"error.save_failed":                 "Failed to save data",
		"error.admin_username_invalid":      "Invalid admin username",
		"error.admin_username_exists":       "Admin username already exists",
		"error.admin_create_failed":         "Failed to create admin",
		"error.admin_update_failed":         "Failed to update admin",
		"error.admin_delete_failed":         "Failed to delete admin",
		"error.admin_delete_self_forbidden": "You cannot delete your own account",
		"error.admin_delete_protected":      "This admin account cannot be deleted",
		"error.admin_delete_last_forbidden": "At least one admin account must remain",

		"error.password_weak":            "Password does not meet the security policy",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a number",
		"error.password_require_special": "Password must contain a special character",

		"error.coupon_code_required":  "Coupon code is required",
		"error.coupon_not_found":      "Coupon not found",
		"error.coupon_not_active":     "Coupon is not active",
		"error.coupon_out_of_window":  "Coupon is not valid at this time",
		"error.coupon_usage_limit":    "Coupon usage limit reached",
		"error.coupon_min_amount":     "Minimum purchase amount of %s is required to use this coupon",
		"error.coupon_product_scope":  "Coupon is not applicable to the products in your cart",
		"error.coupon_category_scope": "Coupon is not applicable to the categories in your cart",
		"error.coupon_code_exists":    "Coupon code already exists",
		"error.coupon_type_invalid":   "Invalid coupon discount type",
		"error.coupon_status_invalid": "Invalid coupon status",
		"error.coupon_value_invalid":  "Invalid coupon discount value",
		"error.coupon_window_invalid": "Coupon validity window is invalid",

		"error.checkout_field_missing": "Please fill in all required fields in the %s step",
		"error.checkout_cart_empty":    "Your cart is empty",
		"error.checkout_token_invalid": "Checkout session is invalid, please start again",
		"error.checkout_token_expired": "Checkout session has expired, please start again",
		"error.account_exists":         "An account with this email already exists, please log in",

		"error.order_not_found":      "Order not found",
		"error.order_status_invalid": "Invalid order status",

		"error.product_not_found":    "Product not found",
		"error.product_slug_exists":  "Product slug already exists",
		"error.category_not_found":   "Category not found",
		"error.category_slug_exists": "Category slug already exists",
		"error.category_in_use":      "Category still has products",
		"error.post_not_found":       "Post not found",
		"error.post_slug_exists":     "Post slug already exists",
		"error.review_not_found":     "Review not found",
		"error.review_rating_invalid": "Rating must be between 1 and 5",

		"error.user_not_found":    "User not found",
		"error.login_invalid":     "Invalid username or password",
		"error.account_disabled":  "Account is disabled",
		"error.token_invalid":     "Invalid or expired token",
		"error.token_revoked":     "Session has been revoked, please log in again",
		"error.user_disabled":     "Account is disabled",
		"error.params_invalid":    "Invalid parameters",

		"error.jwt_secret_missing":  "Authentication is not configured",
		"error.auth_header_missing": "Authorization header is missing",
		"error.auth_header_invalid": "Authorization header is invalid",

		"order.status.orderplaced": "Order Placed",
		"order.status.confirmed":   "Confirmed",
		"order.status.shipped":     "Shipped",
		"order.status.delivered":   "Delivered",
		"order.status.canceled":    "Canceled",

		"email.order_placed.subject": "Your order %s has been placed",
		"email.order_placed.body":    "Thank you for your order!\n\nOrder number: %s\nTotal amount: %s %s\nPayment method: Cash on Delivery\n\nWe will notify you when your order status changes.",
		"email.order_status.subject": "Order update: %s",
		"email.order_status.body":    "Your order %s is now %s.\nTotal amount: %s %s\n\nThank you for shopping with us.",
	},
	constants.LocaleZhCN: {
		"success":        "成功",
		"error.invalid_request": "请求参数错误",
		"error.unauthorized":    "未登录或登录已过期",
		"error.forbidden":       "没有权限",
		"error.not_found":       "资源不存在",
		"error.internal":        "服务器内部错误",
		"error.rate_limited":    "请求过于频繁，请稍后再试",
		"error.rate_limit_unavailable": "服务暂时不可用，请稍后再试",
		"error.login_too_many":         "登录尝试过于频繁，请 %d 秒后再试",
		"error.checkout_too_many":      "下单过于频繁，请 %d 秒后再试",

		"error.user_id_invalid":       "用户ID无效",
		"error.user_id_type_invalid":  "用户ID类型无效",
		"error.admin_id_invalid":      "管理员ID无效",
		"error.admin_id_type_invalid": "管理员ID类型无效",

		"error.bad_request":                 "请求参数错误",
		"error.config_fetch_failed":         "数据获取失败",
		"error.save_failed":                 "数据保存失败",
		"error.admin_username_invalid":      "管理员用户名无效",
		"error.admin_username_exists":       "管理员用户名已存在",
		"error.admin_create_failed":         "管理员创建失败",
		"error.admin_update_failed":         "管理员更新失败",
		"error.admin_delete_failed":         "管理员删除失败",
		"error.admin_delete_self_forbidden": "不能删除自己的账号",
		"error.admin_delete_protected":      "该管理员账号受保护，不能删除",
		"error.admin_delete_last_forbidden": "至少保留一个管理员账号",

		"error.password_weak":            "密码不符合安全策略",
		"error.password_min_length":      "密码长度至少为 %d 位",
		"error.password_require_upper":   "密码必须包含大写字母",
		"error.password_require_lower":   "密码必须包含小写字母",
		"error.password_require_number":  "密码必须包含数字",
		"error.password_require_special": "密码必须包含特殊字符",

		"error.coupon_code_required":  "请输入优惠码",
		"error.coupon_not_found":      "优惠券不存在",
		"error.coupon_not_active":     "优惠券未启用",
		"error.coupon_out_of_window":  "优惠券不在有效期内",
		"error.coupon_usage_limit":    "优惠券已达使用上限",
		"error.coupon_min_amount":     "订单金额满 %s 才能使用该优惠券",
		"error.coupon_product_scope":  "优惠券不适用于购物车中的商品",
		"error.coupon_category_scope": "优惠券不适用于购物车中的商品分类",
		"error.coupon_code_exists":    "优惠码已存在",
		"error.coupon_type_invalid":   "优惠券折扣类型无效",
		"error.coupon_status_invalid": "优惠券状态无效",
		"error.coupon_value_invalid":  "优惠券折扣数值无效",
		"error.coupon_window_invalid": "优惠券有效期设置无效",

		"error.checkout_field_missing": "请填写 %s 步骤中的所有必填信息",
		"error.checkout_cart_empty":    "购物车为空",
		"error.checkout_token_invalid": "结账会话无效，请重新开始结账",
		"error.checkout_token_expired": "结账会话已过期，请重新开始结账",
		"error.account_exists":         "该邮箱已注册，请登录后下单",

		"error.order_not_found":      "订单不存在",
		"error.order_status_invalid": "订单状态无效",

		"error.product_not_found":    "商品不存在",
		"error.product_slug_exists":  "商品标识已存在",
		"error.category_not_found":   "分类不存在",
		"error.category_slug_exists": "分类标识已存在",
		"error.category_in_use":      "分类下仍有商品",
		"error.post_not_found":       "文章不存在",
		"error.post_slug_exists":     "文章标识已存在",
		"error.review_not_found":     "评价不存在",
		"error.review_rating_invalid": "评分必须在 1 到 5 之间",

		"error.user_not_found":    "用户不存在",
		"error.login_invalid":     "账号或密码错误",
		"error.account_disabled":  "账号已被禁用",
		"error.token_invalid":     "登录凭证无效或已过期",
		"error.token_revoked":     "登录状态已失效，请重新登录",
		"error.user_disabled":     "账号已被禁用",

		"error.jwt_secret_missing":  "鉴权服务未配置",
		"error.auth_header_missing": "缺少 Authorization 请求头",
		"error.auth_header_invalid": "Authorization 请求头格式错误",
		"error.params_invalid":    "参数无效",

		"order.status.orderplaced": "已下单",
		"order.status.confirmed":   "已确认",
		"order.status.shipped":     "已发货",
		"order.status.delivered":   "已送达",
		"order.status.canceled":    "已取消",

		"email.order_placed.subject": "您的订单 %s 已提交",
		"email.order_placed.body":    "感谢您的订购！\n\n订单编号：%s\n订单金额：%s %s\n支付方式：货到付款\n\n订单状态变化时我们会再次通知您。",
		"email.order_status.subject": "订单状态更新：%s",
		"email.order_status.body":    "您的订单 %s 当前状态为：%s。\n订单金额：%s %s\n\n感谢您的惠顾。",
	},
}
