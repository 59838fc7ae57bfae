package main

import (
	"strings"
	"time"

	"github.com/wellkart/wellkart/internal/config"
	"github.com/wellkart/wellkart/internal/constants"
	"github.com/wellkart/wellkart/internal/logger"
	"github.com/wellkart/wellkart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化发票序号计数器
	prefix := strings.TrimSpace(cfg.Invoice.Prefix)
	if prefix == "" {
		prefix = constants.InvoicePrefix
	}
	seed := cfg.Invoice.Seed
	if seed <= 0 {
		seed = constants.InvoiceSequenceSeed
	}
	if err := models.InitInvoiceSequence(constants.InvoiceSequenceName, seed, prefix); err != nil {
		stdLog.Fatalf("Failed to init invoice sequence: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Slug: "skincare", Name: "Skincare", Description: "Face and body care essentials", SortOrder: 30},
		{Slug: "haircare", Name: "Haircare", Description: "Oils, shampoos and conditioners", SortOrder: 20},
		{Slug: "wellness", Name: "Wellness", Description: "Daily wellness and nutrition", SortOrder: 10},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"skincare", "haircare", "wellness"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			CategoryID:  categoryIDs["skincare"],
			Slug:        "saffron-face-serum",
			Name:        "Saffron Face Serum",
			SubTitle:    "Brightening night repair serum",
			Description: "A lightweight serum with saffron and vitamin E for daily glow.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(899)),
			ComparePrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(1199)),
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=800"}),
			Tags:        models.StringArray([]string{"serum", "brightening"}),
			Benefits:    models.StringArray([]string{"Evens skin tone", "Reduces dark spots"}),
			Ingredients: models.StringArray([]string{"Saffron extract", "Vitamin E", "Jojoba oil"}),
			Stock:       120,
			IsActive:    true,
			SortOrder:   100,
		},
		{
			CategoryID:  categoryIDs["haircare"],
			Slug:        "bhringraj-hair-oil",
			Name:        "Bhringraj Hair Oil",
			SubTitle:    "Classic scalp nourishing oil",
			Description: "Cold-pressed bhringraj and coconut oil blend for stronger roots.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(449)),
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1608248543803-ba4f8c70ae0b?w=800"}),
			Tags:        models.StringArray([]string{"hair oil", "ayurvedic"}),
			Benefits:    models.StringArray([]string{"Reduces hair fall", "Strengthens roots"}),
			Ingredients: models.StringArray([]string{"Bhringraj", "Coconut oil", "Amla"}),
			Stock:       200,
			IsActive:    true,
			SortOrder:   90,
		},
		{
			CategoryID:  categoryIDs["wellness"],
			Slug:        "ashwagandha-capsules",
			Name:        "Ashwagandha Capsules",
			SubTitle:    "60 veg capsules",
			Description: "Stress support capsules made from KSM-66 ashwagandha root extract.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(599)),
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=800"}),
			Tags:        models.StringArray([]string{"supplement", "stress relief"}),
			Benefits:    models.StringArray([]string{"Supports restful sleep", "Helps manage stress"}),
			Ingredients: models.StringArray([]string{"Ashwagandha root extract"}),
			Stock:       80,
			IsActive:    true,
			SortOrder:   80,
		},
		{
			CategoryID:  categoryIDs["skincare"],
			Slug:        "rose-water-toner",
			Name:        "Rose Water Toner",
			SubTitle:    "Steam-distilled rose mist",
			Description: "Pure rose water toner to refresh and hydrate all skin types.",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(299)),
			Images:      models.StringArray([]string{"https://images.unsplash.com/photo-1556228578-8c89e6adf883?w=800"}),
			Tags:        models.StringArray([]string{"toner", "hydrating"}),
			Benefits:    models.StringArray([]string{"Tightens pores", "Soothes skin"}),
			Ingredients: models.StringArray([]string{"Rose hydrosol"}),
			Stock:       0,
			IsActive:    true,
			SortOrder:   70,
		},
	}
	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	// 添加文章
	now := time.Now()
	posts := []models.Post{
		{
			Slug:        "winter-skincare-routine",
			Title:       "A Simple Winter Skincare Routine",
			Summary:     "Five steps to keep your skin hydrated through the cold months.",
			Content:     "## Keep it simple\n\nCleanse, tone, treat, moisturize and protect...",
			Author:      "WellKart Team",
			Tags:        models.StringArray([]string{"skincare", "guide"}),
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Slug:        "ashwagandha-explained",
			Title:       "Ashwagandha, Explained",
			Summary:     "What the research says about the most popular adaptogen.",
			Content:     "## An ancient root\n\nAshwagandha has been used for centuries...",
			Author:      "WellKart Team",
			Tags:        models.StringArray([]string{"wellness", "supplements"}),
			IsPublished: true,
			PublishedAt: &now,
		},
		{
			Slug:        "upcoming-launches",
			Title:       "Upcoming Launches",
			Summary:     "A sneak peek at what we are working on.",
			Content:     "Draft notes for the next product drop.",
			Author:      "WellKart Team",
			Tags:        models.StringArray([]string{"news"}),
			IsPublished: false,
		},
	}
	for _, post := range posts {
		var existing models.Post
		if err := models.DB.Where("slug = ?", post.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&post).Error; err != nil {
				stdLog.Printf("Failed to create post %s: %v", post.Slug, err)
			} else {
				stdLog.Printf("Created post: %s", post.Slug)
			}
		} else {
			stdLog.Printf("Post already exists: %s", post.Slug)
		}
	}

	// 添加优惠码
	validUntil := now.AddDate(0, 3, 0)
	coupons := []models.Coupon{
		{
			Code:              "WELCOME10",
			DiscountType:      constants.CouponTypePercentage,
			DiscountValue:     models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
			MinPurchaseAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(499)),
			MaxDiscountAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(200)),
			UsageLimit:        500,
			Status:            constants.CouponStatusActive,
			ValidFrom:         &now,
			ValidUntil:        &validUntil,
		},
		{
			Code:              "FLAT100",
			DiscountType:      constants.CouponTypeFixed,
			DiscountValue:     models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
			MinPurchaseAmount: models.NewMoneyFromDecimal(decimal.NewFromInt(999)),
			Status:            constants.CouponStatusActive,
			ValidFrom:         &now,
			ValidUntil:        &validUntil,
		},
	}
	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	stdLog.Printf("Seed completed")
}
