package infra

import (
	"errors"
	"fmt"

	"github.com/go-redis/redis/v9"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-search/docs" // swagger spec
	"github.com/umalmyha/customer-search/internal/config"
	"github.com/umalmyha/customer-search/internal/fetcher"
	"github.com/umalmyha/customer-search/internal/handlers"
	"github.com/umalmyha/customer-search/internal/middleware"
	"github.com/umalmyha/customer-search/internal/render"
	"github.com/umalmyha/customer-search/internal/repository"
	"github.com/umalmyha/customer-search/internal/search"
	"github.com/umalmyha/customer-search/internal/searchcfg"
	"github.com/umalmyha/customer-search/internal/service"
	"github.com/umalmyha/customer-search/internal/session"
	"github.com/umalmyha/customer-search/internal/validation"
)

// SearchRouter builds customer search web application.
// Redis client is required only when form state is kept in redis.
func SearchRouter(cfg config.SearchCfg, redisClient *redis.Client) (*echo.Echo, error) {
	v, trans, err := validation.English()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator - %w", err)
	}
	e := newEcho(validation.Echo(v, trans))

	// Search configuration
	searchCfg := searchcfg.Default()
	if err := searchcfg.Validate(v, searchCfg); err != nil {
		return nil, err
	}

	renderer, err := render.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// Session state
	var formStore session.Store
	switch cfg.SessionCfg.Store {
	case config.SessionStoreRedis:
		if redisClient == nil {
			return nil, errors.New("redis session store requires redis client")
		}
		formStore = session.NewRedisStore(redisClient, cfg.SessionCfg.TimeToLive)
	default:
		formStore = session.NewMemoryStore(cfg.SessionCfg.TimeToLive)
	}

	// Services
	customerFetcher := fetcher.NewRestyCustomerFetcher(cfg.CustomersAPICfg.BaseURL, cfg.CustomersAPICfg.Timeout)
	customerSvc := service.NewCustomerSearchService(customerFetcher)
	registry := search.NewRegistry(customerSvc, cfg.SessionCfg.TimeToLive)

	// Handlers
	pageHandler := handlers.NewSearchPageHandler(searchCfg, registry, formStore)
	customerHandler := handlers.NewCustomerHTTPHandler(customerSvc)

	// Middleware
	sessionMw := middleware.Session(cfg.SessionCfg.CookieName, cfg.SessionCfg.TimeToLive)

	// page routes
	e.GET("/", pageHandler.Page, sessionMw)
	e.POST("/search", pageHandler.Search, sessionMw)
	e.POST("/clear", pageHandler.Clear, sessionMw)

	// customers v1
	customersAPIV1 := e.Group("/api/v1/customers")
	customersAPIV1.GET("/search", customerHandler.Search)
	customersAPIV1.GET("/:id", customerHandler.Get)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}

// DirectoryRouter builds customers directory API over repository
func DirectoryRouter(customerRepo repository.CustomerRepository) (*echo.Echo, error) {
	v, trans, err := validation.English()
	if err != nil {
		return nil, fmt.Errorf("failed to build validator - %w", err)
	}
	e := newEcho(validation.Echo(v, trans))

	directorySvc := service.NewCustomerDirectoryService(customerRepo)
	directoryHandler := handlers.NewDirectoryHTTPHandler(directorySvc)

	customers := e.Group("/customers")
	customers.GET("", directoryHandler.GetAll)
	customers.GET("/:id", directoryHandler.Get)

	return e, nil
}

func newEcho(v echo.Validator) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = v
	e.HTTPErrorHandler = middleware.ErrorHandler(e)

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())

	return e
}
