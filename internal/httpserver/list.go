package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopsmart/internal/domain"
	listsvc "shopsmart/internal/service/list"
)

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

type customProductRequest struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

func listHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toListResponse(svc.Snapshot()))
	}
}

func listUpdateHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in listsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeBadRequest(c, "invalid request body")
			return
		}
		snap, err := svc.Update(in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toListResponse(snap))
	}
}

func listClearHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toListResponse(svc.Clear()))
	}
}

func customProductHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBadRequest(c, "invalid request body")
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		p, snap, err := svc.AddCustom(req.Name, quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, customProductResponse{Product: p, List: toListResponse(snap)})
	}
}

func setQuantityHandler(svc listService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
			writeBadRequest(c, "quantity required")
			return
		}
		snap, err := svc.SetQuantity(c.Param("productId"), *req.Quantity)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toListResponse(snap))
	}
}

func itemHandler(op func(productID string) (domain.ListSnapshot, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := op(c.Param("productId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toListResponse(snap))
	}
}
