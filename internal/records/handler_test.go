package records

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRecordsRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestPutRecordStoresObject(t *testing.T) {
	store := NewMemoryStore()
	router := newRecordsRouter(store)

	body := bytes.NewBufferString(`{"subject":"Math","score":18,"maxScore":20}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/s1/records/Academic", body)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	recs, err := store.List(context.Background(), "s1", Academic)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 1 || recs[0]["subject"] != "Math" {
		t.Fatalf("unexpected stored records: %v", recs)
	}
}

func TestPutRecordRejectsNonObject(t *testing.T) {
	router := newRecordsRouter(NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/students/s1/records/journal", bytes.NewBufferString(`["sad"]`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestUnknownCollectionIsNotFound(t *testing.T) {
	router := newRecordsRouter(NewMemoryStore())

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/students/s1/records/gallery", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "not_found" {
		t.Fatalf("unexpected code %q", payload.Error.Code)
	}
}

func TestListRecords(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Put(context.Background(), "s1", Goals, Record{"title": "Read 10 books"})
	router := newRecordsRouter(store)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/students/s1/records/goals", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var recs []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(recs) != 1 || recs[0]["title"] != "Read 10 books" {
		t.Fatalf("unexpected records: %v", recs)
	}
}
