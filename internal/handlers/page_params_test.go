package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hellofixo/fixit-admin/internal/dto"
	"github.com/hellofixo/fixit-admin/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestListPageServesPageAndTotal(t *testing.T) {
	st := newFakeStore()
	st.rows["wallets"] = []models.Wallet{
		{ID: "w1", MobileNumber: "9000000001", Balance: 150, CreatedAt: time.Now()},
		{ID: "w2", MobileNumber: "9000000002", Balance: 0, CreatedAt: time.Now()},
	}
	st.totals["wallets"] = 42

	r := gin.New()
	r.GET("/wallets", func(c *gin.Context) {
		listPage[models.Wallet](c, st, "wallets", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/wallets?page=3&limit=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.Page[models.Wallet]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}

	if resp.Page != 3 || resp.Limit != 2 {
		t.Fatalf("page/limit = %d/%d, want 3/2", resp.Page, resp.Limit)
	}
	if resp.Total != 42 {
		t.Fatalf("total = %d, want 42", resp.Total)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("rows = %d, want 2", len(resp.Data))
	}

	// page 3, size 2 → offset 4, exact count requested
	if st.lastListParams.Offset != 4 || st.lastListParams.Limit != 2 || !st.lastListParams.Count {
		t.Fatalf("list params = %+v", st.lastListParams)
	}
	if st.lastListParams.OrderBy != "created_at" || !st.lastListParams.Desc {
		t.Fatalf("expected recency ordering, got %+v", st.lastListParams)
	}
}

func TestListPageEmptyIsNotAnError(t *testing.T) {
	st := newFakeStore()

	r := gin.New()
	r.GET("/cities", func(c *gin.Context) {
		listPage[models.ServiceableCity](c, st, "serviceable_cities", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp dto.Page[models.ServiceableCity]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Fatalf("empty page must be [], got %v", resp.Data)
	}
}

func TestListPageSurfacesStoreFailure(t *testing.T) {
	st := newFakeStore()
	st.err = errors.New("connection refused")

	r := gin.New()
	r.GET("/profiles", func(c *gin.Context) {
		listPage[models.Profile](c, st, "profiles", nil)
	})

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "connection refused" {
		t.Fatalf("upstream message not relayed verbatim: %v", resp)
	}
}
