package httpserver

import (
	"errors"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"shopsmart/internal/catalog"
	"shopsmart/internal/domain"
	listsvc "shopsmart/internal/service/list"
)

type catalogService interface {
	List(query, category string) []domain.Product
	Groups(query, category string) []catalog.Group
	Categories() []string
}

type listService interface {
	Snapshot() domain.ListSnapshot
	Subscribe(fn func(domain.ListSnapshot)) (cancel func())
	Add(productID string) (domain.ListSnapshot, error)
	Decrement(productID string) (domain.ListSnapshot, error)
	Remove(productID string) (domain.ListSnapshot, error)
	SetQuantity(productID string, quantity int) (domain.ListSnapshot, error)
	MarkPurchased(productID string) (domain.ListSnapshot, error)
	MarkPending(productID string) (domain.ListSnapshot, error)
	Clear() domain.ListSnapshot
	AddCustom(name string, quantity int) (domain.Product, domain.ListSnapshot, error)
	Update(in listsvc.UpdateInput) (domain.ListSnapshot, error)
}

// Deps carries the services the router dispatches to.
type Deps struct {
	CatalogSvc  catalogService
	ListSvc     listService
	Metrics     http.Handler
	CORSOrigins []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.CatalogSvc == nil {
		return nil, errors.New("catalog service required")
	}
	if deps.ListSvc == nil {
		return nil, errors.New("list service required")
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics))
	}

	catalogGroup := router.Group("/catalog")
	catalogGroup.GET("", catalogListHandler(deps.CatalogSvc))
	catalogGroup.GET("/categories", categoriesHandler(deps.CatalogSvc))
	catalogGroup.GET("/groups", catalogGroupsHandler(deps.CatalogSvc))

	listGroup := router.Group("/list")
	listGroup.GET("", listHandler(deps.ListSvc))
	listGroup.POST("", listUpdateHandler(deps.ListSvc))
	listGroup.DELETE("", listClearHandler(deps.ListSvc))
	listGroup.GET("/events", listEventsHandler(deps.ListSvc))
	listGroup.POST("/custom", customProductHandler(deps.ListSvc))
	listGroup.PUT("/items/:productId", setQuantityHandler(deps.ListSvc))
	listGroup.DELETE("/items/:productId", itemHandler(deps.ListSvc.Remove))
	listGroup.POST("/items/:productId/add", itemHandler(deps.ListSvc.Add))
	listGroup.POST("/items/:productId/decrement", itemHandler(deps.ListSvc.Decrement))
	listGroup.POST("/items/:productId/purchase", itemHandler(deps.ListSvc.MarkPurchased))
	listGroup.POST("/items/:productId/unpurchase", itemHandler(deps.ListSvc.MarkPending))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Cache-Control"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
