package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"shopsmart/internal/catalog"
	"shopsmart/internal/domain"
	listsvc "shopsmart/internal/service/list"
)

type productList struct {
	Count   int              `json:"count"`
	Results []domain.Product `json:"results"`
}

type groupList struct {
	Count   int             `json:"count"`
	Results []catalog.Group `json:"results"`
}

type categoryList struct {
	Results []string `json:"results"`
}

type customProductResponse struct {
	Product domain.Product      `json:"product"`
	List    domain.ListSnapshot `json:"list"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func toProductList(products []domain.Product) productList {
	if products == nil {
		products = []domain.Product{}
	}
	return productList{Count: len(products), Results: products}
}

func toGroupList(groups []catalog.Group) groupList {
	if groups == nil {
		groups = []catalog.Group{}
	}
	return groupList{Count: len(groups), Results: groups}
}

// toListResponse keeps both sides as JSON arrays even when empty.
func toListResponse(snap domain.ListSnapshot) domain.ListSnapshot {
	if snap.Pending == nil {
		snap.Pending = []domain.ListItem{}
	}
	if snap.Purchased == nil {
		snap.Purchased = []domain.ListItem{}
	}
	return snap
}

func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
		message = "product not found"
	case errors.Is(err, listsvc.ErrActionsRequired),
		errors.Is(err, listsvc.ErrProductRequired),
		errors.Is(err, listsvc.ErrNameRequired),
		errors.Is(err, listsvc.ErrQuantityInvalid),
		errors.Is(err, listsvc.ErrQuantityRequired),
		errors.Is(err, listsvc.ErrUnsupportedAction):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, errorResponse{StatusCode: status, Message: message})
}

func writeBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{StatusCode: http.StatusBadRequest, Message: message})
}
