package provider

import (
	"github.com/wellkart/wellkart/internal/authz"
	"github.com/wellkart/wellkart/internal/cache"
	"github.com/wellkart/wellkart/internal/config"
	"github.com/wellkart/wellkart/internal/logger"
	"github.com/wellkart/wellkart/internal/models"
	"github.com/wellkart/wellkart/internal/queue"
	"github.com/wellkart/wellkart/internal/repository"
	"github.com/wellkart/wellkart/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo           repository.AdminRepository
	UserRepo            repository.UserRepository
	ProductRepo         repository.ProductRepository
	CategoryRepo        repository.CategoryRepository
	PostRepo            repository.PostRepository
	ReviewRepo          repository.ReviewRepository
	CouponRepo          repository.CouponRepository
	CouponUsageRepo     repository.CouponUsageRepository
	CartRepo            repository.CartRepository
	AddressRepo         repository.AddressRepository
	OrderRepo           repository.OrderRepository
	InvoiceSequenceRepo repository.InvoiceSequenceRepository

	// Services
	AuthzService         *authz.Service
	AuthService          *service.AuthService
	UserAuthService      *service.UserAuthService
	EmailService         *service.EmailService
	ProductService       *service.ProductService
	CategoryService      *service.CategoryService
	PostService          *service.PostService
	ReviewService        *service.ReviewService
	CouponService        *service.CouponService
	CouponAdminService   *service.CouponAdminService
	CheckoutTokenService *service.CheckoutTokenService
	CheckoutService      *service.CheckoutService
	OrderService         *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.CouponUsageRepo = repository.NewCouponUsageRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.InvoiceSequenceRepo = repository.NewInvoiceSequenceRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.ProductRepo)
	c.PostService = service.NewPostService(c.PostRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.CouponUsageRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.CheckoutTokenService = service.NewCheckoutTokenService(c.Config)
	c.CheckoutService = service.NewCheckoutService(
		c.Config,
		c.UserRepo,
		c.CartRepo,
		c.AddressRepo,
		c.OrderRepo,
		c.ProductRepo,
		c.InvoiceSequenceRepo,
		c.CouponService,
		c.CheckoutTokenService,
		c.UserAuthService,
		c.QueueClient,
	)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
}
