package router

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"diskrelay/internal/presentation"
	"diskrelay/internal/presentation/handler"
	"diskrelay/internal/presentation/middleware"
	"diskrelay/web"
)

type Config struct {
	BodyLimit string
	RateLimit float64
	// AdminWallets enables the wallet guard on admin routes when non-empty.
	AdminWallets []common.Address
}

type Handlers struct {
	ApproveProvider *handler.ApproveProviderHandler
	Upload          *handler.UploadHandler
	RentalRoles     *handler.RentalRolesHandler
	Content         *handler.ContentHandler
	UploadReceipt   *handler.UploadReceiptHandler
}

func New(cfg Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept,
			presentation.AuthKey, presentation.SignatureKey,
		},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	// Configuration errors win over the wallet guard, so a relay without a
	// key answers NO_ADMIN_KEY whether or not the guard is on.
	guard := func(action string, ready echo.MiddlewareFunc) []echo.MiddlewareFunc {
		if len(cfg.AdminWallets) == 0 {
			return nil
		}

		return []echo.MiddlewareFunc{ready, middleware.WalletAuth(action, cfg.AdminWallets)}
	}

	e.GET("/", handler.HandleRoot)
	e.GET("/health", handler.HandleHealth)
	e.GET("/app", func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, web.Index)
	})

	e.POST("/admin/approve-provider", h.ApproveProvider.Handle, guard(presentation.ActionApproveProvider, h.ApproveProvider.RequireReady)...)
	e.POST("/set-rental-roles", h.RentalRoles.Handle, guard(presentation.ActionSetRentalRoles, h.RentalRoles.RequireReady)...)
	e.POST("/upload", h.Upload.Handle)
	e.GET("/content/:"+presentation.CidParam, h.Content.Handle)
	e.GET("/uploads/:"+presentation.CidParam, h.UploadReceipt.Handle)

	return e
}
