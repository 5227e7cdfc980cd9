package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"shopsmart/internal/cart"
	"shopsmart/internal/domain"
	catalogsvc "shopsmart/internal/service/catalog"
	listsvc "shopsmart/internal/service/list"
)

var testProducts = []domain.Product{
	{ID: "milk", Name: "Milk", Icon: "drop.fill", Description: "Fresh milk", Category: "Dairy"},
	{ID: "kefir", Name: "Kefir", Icon: "drop.fill", Description: "Cultured milk", Category: "Dairy"},
	{ID: "bread", Name: "Bread", Icon: "rectangle.fill", Description: "Wheat loaf", Category: "Bakery"},
}

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	catalog := catalogsvc.New(testProducts)
	list := listsvc.New(cart.New(), catalog, logDiscard(), nil)
	router, err := buildRouter(logDiscard(), nil, Deps{CatalogSvc: catalog, ListSvc: list})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) domain.ListSnapshot {
	t.Helper()
	var snap domain.ListSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v (%s)", err, rec.Body.String())
	}
	return snap
}

func TestBuildRouter_RequiresServices(t *testing.T) {
	gin.SetMode(gin.TestMode)
	if _, err := buildRouter(logDiscard(), nil, Deps{}); err == nil {
		t.Fatalf("expected error without services")
	}
}

func TestHealthAndReady(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = do(router, http.MethodGet, "/readyz", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"builtin"`) {
		t.Fatalf("unexpected ready response %d %s", rec.Code, rec.Body.String())
	}
}

func TestCatalogList_Filters(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/catalog?q=MILK", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var resp productList
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// "Kefir" matches on its description.
	if resp.Count != 2 || resp.Results[0].ID != "milk" || resp.Results[1].ID != "kefir" {
		t.Fatalf("unexpected results %+v", resp)
	}

	rec = do(router, http.MethodGet, "/catalog?category=Bakery", "")
	resp = productList{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Count != 1 || resp.Results[0].ID != "bread" {
		t.Fatalf("unexpected results %+v", resp)
	}

	rec = do(router, http.MethodGet, "/catalog?q=caviar", "")
	if !strings.Contains(rec.Body.String(), `"results":[]`) {
		t.Fatalf("expected empty results array, got %s", rec.Body.String())
	}
}

func TestCatalogGroupsAndCategories(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/catalog/groups", "")
	var groups groupList
	if err := json.Unmarshal(rec.Body.Bytes(), &groups); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if groups.Count != 2 || groups.Results[0].Category != "Bakery" || groups.Results[1].Category != "Dairy" {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if len(groups.Results[1].Products) != 2 {
		t.Fatalf("expected 2 dairy products, got %d", len(groups.Results[1].Products))
	}

	rec = do(router, http.MethodGet, "/catalog/categories", "")
	var cats categoryList
	if err := json.Unmarshal(rec.Body.Bytes(), &cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cats.Results) != 2 || cats.Results[0] != "Bakery" || cats.Results[1] != "Dairy" {
		t.Fatalf("unexpected categories %v", cats.Results)
	}
}

func TestList_EmptyShape(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodGet, "/list", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"pending":[]`) || !strings.Contains(body, `"purchased":[]`) || !strings.Contains(body, `"totalCount":0`) {
		t.Fatalf("unexpected empty list body %s", body)
	}
}

func TestListItems_Flow(t *testing.T) {
	router := newTestRouter(t)

	do(router, http.MethodPost, "/list/items/milk/add", "")
	rec := do(router, http.MethodPost, "/list/items/milk/add", "")
	snap := decodeSnapshot(t, rec)
	if snap.TotalCount != 2 || snap.Pending[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot after add %+v", snap)
	}

	rec = do(router, http.MethodPost, "/list/items/milk/purchase", "")
	snap = decodeSnapshot(t, rec)
	if len(snap.Pending) != 0 || len(snap.Purchased) != 1 || snap.Purchased[0].Quantity != 2 {
		t.Fatalf("unexpected snapshot after purchase %+v", snap)
	}

	rec = do(router, http.MethodPost, "/list/items/milk/unpurchase", "")
	snap = decodeSnapshot(t, rec)
	if len(snap.Pending) != 1 || len(snap.Purchased) != 0 {
		t.Fatalf("unexpected snapshot after unpurchase %+v", snap)
	}

	rec = do(router, http.MethodPut, "/list/items/milk", `{"quantity":5}`)
	snap = decodeSnapshot(t, rec)
	if snap.TotalCount != 5 {
		t.Fatalf("expected total 5, got %d", snap.TotalCount)
	}

	rec = do(router, http.MethodPost, "/list/items/milk/decrement", "")
	snap = decodeSnapshot(t, rec)
	if snap.TotalCount != 4 {
		t.Fatalf("expected total 4, got %d", snap.TotalCount)
	}

	rec = do(router, http.MethodDelete, "/list/items/milk", "")
	snap = decodeSnapshot(t, rec)
	if snap.TotalCount != 0 || len(snap.Pending) != 0 {
		t.Fatalf("expected empty list, got %+v", snap)
	}
}

func TestSetQuantity_Validation(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodPut, "/list/items/milk", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	do(router, http.MethodPost, "/list/items/bread/add", "")
	rec = do(router, http.MethodPut, "/list/items/bread", `{"quantity":0}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if snap := decodeSnapshot(t, rec); snap.TotalCount != 0 {
		t.Fatalf("expected quantity 0 to remove, got %+v", snap)
	}
}

func TestListItems_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodPost, "/list/items/caviar/add", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound || resp.Message == "" {
		t.Fatalf("unexpected error body %+v", resp)
	}
}

func TestCustomProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := do(router, http.MethodPost, "/list/custom", `{"name":"  Birthday candles ","quantity":3}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp customProductResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Product.Custom || resp.Product.Name != "Birthday candles" || resp.Product.ID == "" {
		t.Fatalf("unexpected product %+v", resp.Product)
	}
	if resp.List.TotalCount != 3 {
		t.Fatalf("expected total 3, got %d", resp.List.TotalCount)
	}

	rec = do(router, http.MethodPost, "/list/items/"+resp.Product.ID+"/purchase", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected custom product to be addressable, got %d", rec.Code)
	}

	rec = do(router, http.MethodPost, "/list/custom", `{"name":"   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for blank name, got %d", rec.Code)
	}
	rec = do(router, http.MethodPost, "/list/custom", `{"name":"Tea","quantity":0}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for zero quantity, got %d", rec.Code)
	}
}

func TestListUpdate_Batch(t *testing.T) {
	router := newTestRouter(t)

	body := `{"actions":[
		{"action":"add","productId":"milk"},
		{"action":"setQuantity","productId":"bread","quantity":2},
		{"action":"markPurchased","productId":"bread"},
		{"action":"addCustomProduct","name":"Napkins","quantity":1}
	]}`
	rec := do(router, http.MethodPost, "/list", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	snap := decodeSnapshot(t, rec)
	if snap.TotalCount != 4 || len(snap.Pending) != 2 || len(snap.Purchased) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	// Pending side sorts by name.
	if snap.Pending[0].Product.Name != "Milk" || snap.Pending[1].Product.Name != "Napkins" {
		t.Fatalf("unexpected pending order %+v", snap.Pending)
	}

	rec = do(router, http.MethodDelete, "/list", "")
	if snap := decodeSnapshot(t, rec); snap.TotalCount != 0 {
		t.Fatalf("expected cleared list, got %+v", snap)
	}
}

func TestListUpdate_RejectsBadBatch(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
		code int
	}{
		{"malformed", `{"actions":`, http.StatusBadRequest},
		{"empty", `{"actions":[]}`, http.StatusBadRequest},
		{"unknown action", `{"actions":[{"action":"teleport","productId":"milk"}]}`, http.StatusBadRequest},
		{"missing product id", `{"actions":[{"action":"add"}]}`, http.StatusBadRequest},
		{"missing quantity", `{"actions":[{"action":"setQuantity","productId":"milk"}]}`, http.StatusBadRequest},
		{"unknown product", `{"actions":[{"action":"add","productId":"milk"},{"action":"add","productId":"caviar"}]}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(router, http.MethodPost, "/list", tc.body)
			if rec.Code != tc.code {
				t.Fatalf("expected status %d, got %d (%s)", tc.code, rec.Code, rec.Body.String())
			}
		})
	}

	snap := decodeSnapshot(t, do(router, http.MethodGet, "/list", ""))
	if snap.TotalCount != 0 {
		t.Fatalf("expected rejected batches to leave the list untouched, got %+v", snap)
	}
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := catalogsvc.New(testProducts)
	router, err := buildRouter(logDiscard(), nil, Deps{
		CatalogSvc:  catalog,
		ListSvc:     listsvc.New(cart.New(), catalog, nil, nil),
		CORSOrigins: []string{"http://localhost:3000"},
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for unknown origin, got %d", rec.Code)
	}
}

func TestMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog := catalogsvc.New(testProducts)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "shopsmart_list_total_count 0\n")
	})
	router, err := buildRouter(logDiscard(), nil, Deps{
		CatalogSvc: catalog,
		ListSvc:    listsvc.New(cart.New(), catalog, nil, nil),
		Metrics:    metrics,
	})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	rec := do(router, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "shopsmart_list_total_count") {
		t.Fatalf("unexpected metrics response %d %s", rec.Code, rec.Body.String())
	}
}
