package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/info-graph/info-graph-task/controllers"
	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/repository"
	"github.com/info-graph/info-graph-task/services"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Restaurant{}, &entity.MenuItem{}, &entity.MaintenanceHistory{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)

	restCtrl := controllers.NewRestaurantController(
		services.NewRestaurantService(restRepo),
		services.NewStatusService(restRepo),
	)
	menuCtrl := controllers.NewMenuItemController(
		services.NewMenuItemService(menuRepo, restRepo),
	)

	r := gin.New()
	api := r.Group("/api")
	rest := api.Group("/restaurants")
	{
		rest.GET("", restCtrl.List)
		rest.POST("", restCtrl.Create)
		rest.GET("/:id", restCtrl.Get)
		rest.GET("/:id/with-relations", restCtrl.GetWithRelations)
		rest.GET("/:id/status", restCtrl.StatusReport)
		rest.PUT("/:id", restCtrl.Update)
		rest.DELETE("/:id", restCtrl.Delete)
	}
	menu := api.Group("/menu-items")
	{
		menu.POST("", menuCtrl.Create)
		menu.GET("/restaurant/:restaurantId", menuCtrl.ListByRestaurant)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	return env
}

func validRestaurantBody() gin.H {
	return gin.H{
		"name":        "Grand Central Diner",
		"phone":       "212-555-0142",
		"streetName":  "89 E 42nd St",
		"openingTime": "08:00",
		"closingTime": "22:00",
		"landmarks":   []string{"Grand Central Terminal"},
	}
}

func TestCreateAndGetRestaurant(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/restaurants", validRestaurantBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatal("expected success envelope")
	}
	var created entity.Restaurant
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	w = doJSON(t, r, http.MethodGet, "/api/restaurants/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	env = decodeEnvelope(t, w)
	var got entity.Restaurant
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if got.Name != "Grand Central Diner" || got.OpeningTime != "08:00" {
		t.Errorf("unexpected restaurant %+v", got)
	}
}

func TestGetRestaurantNotFound(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/restaurants/99", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Success || env.Message != "Restaurant not found" {
		t.Errorf("unexpected envelope %+v", env)
	}
}

func TestCreateRestaurantBadHours(t *testing.T) {
	r, _ := setupRouter(t)

	body := validRestaurantBody()
	body["openingTime"] = "late morning"
	w := doJSON(t, r, http.MethodPost, "/api/restaurants", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCreateMenuItemMissingParent(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/menu-items", gin.H{
		"name":               "Orphan",
		"serving_start_time": "11:00",
		"serving_end_time":   "14:00",
		"price":              9.5,
		"restaurant_id":      42,
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected item persisted, count = %d", count)
	}
}

func TestDeleteRestaurantCascades(t *testing.T) {
	r, db := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/restaurants", validRestaurantBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	item := entity.MenuItem{
		Name: "Lunch", ServingStartTime: "11:00", ServingEndTime: "14:00",
		Price: 10, RestaurantID: 1,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/restaurants/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Message != "Restaurant deleted successfully" {
		t.Errorf("unexpected message %q", env.Message)
	}

	w = doJSON(t, r, http.MethodGet, "/api/menu-items/restaurant/1", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("menu lookup after delete = %d", w.Code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/restaurants", validRestaurantBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/restaurants/1/status", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status endpoint = %d, body %s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	var report services.StatusReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.Label == "" || report.Severity == "" {
		t.Errorf("incomplete report %+v", report)
	}
	if report.RestaurantID != 1 {
		t.Errorf("restaurant_id = %d", report.RestaurantID)
	}
}

func TestListEnvelopeHasCount(t *testing.T) {
	r, _ := setupRouter(t)

	doJSON(t, r, http.MethodPost, "/api/restaurants", validRestaurantBody())
	w := doJSON(t, r, http.MethodGet, "/api/restaurants", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if env.Count == nil || *env.Count != 1 {
		t.Errorf("expected count 1, got %v", env.Count)
	}
}
