package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func catalogListHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, category := catalogQuery(c)
		c.JSON(http.StatusOK, toProductList(svc.List(query, category)))
	}
}

func catalogGroupsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		query, category := catalogQuery(c)
		c.JSON(http.StatusOK, toGroupList(svc.Groups(query, category)))
	}
}

func categoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := svc.Categories()
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categoryList{Results: categories})
	}
}

func catalogQuery(c *gin.Context) (query, category string) {
	return c.Query("q"), strings.TrimSpace(c.Query("category"))
}
