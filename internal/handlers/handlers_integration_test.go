package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/database"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/handlers"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/repositories"
	"github.com/HrEnZnAeTkTo/EventTrade/internal/services"
)

var dbSeq int64

// newTestApp builds the full HTTP stack over a private in-memory SQLite
// database, mirroring the wiring in main. No broker is attached; event
// publishing is a no-op in tests.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	tentRepo := repositories.NewGORMTentRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	requestRepo := repositories.NewGORMInventoryRequestRepository(db)
	messageRepo := repositories.NewGORMMessageRepository(db)

	authService := services.NewAuthService(userRepo, "test-secret")
	productService := services.NewProductService(productRepo)
	tentService := services.NewTentService(tentRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, tentRepo, nil)
	inventoryService := services.NewInventoryService(requestRepo, productRepo, nil)
	messageService := services.NewMessageService(messageRepo)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewProductHandler(productService, authService).RegisterRoutes(api)
	handlers.NewTentHandler(tentService, authService).RegisterRoutes(api)
	handlers.NewOrderHandler(orderService, authService).RegisterRoutes(api)
	handlers.NewInventoryHandler(inventoryService, authService).RegisterRoutes(api)
	handlers.NewMessageHandler(messageService, authService).RegisterRoutes(api)
	handlers.NewPaymentHandler(orderService).RegisterRoutes(api)

	return app, db
}

type fixtures struct {
	admin    models.User
	courier  models.User
	lemonade models.Product // stock 10
	skewers  models.Product // stock 2
	tentA    models.Tent
	tentC    models.Tent // no orders, safe to delete
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	f := fixtures{
		admin:    models.User{Username: "admin", Email: "admin@festival.local", PasswordHash: string(hash), Role: models.RoleAdmin},
		courier:  models.User{Username: "courier1", Email: "courier1@festival.local", PasswordHash: string(hash), Role: models.RoleCourier},
		lemonade: models.Product{Name: "Lemonade", Price: decimal.RequireFromString("500.00"), StockQuantity: 10, IsActive: true},
		skewers:  models.Product{Name: "Skewers", Price: decimal.RequireFromString("600.00"), StockQuantity: 2, IsActive: true},
		tentA:    models.Tent{TentNumber: "A-01", Zone: "A", Capacity: 4, IsActive: true},
		tentC:    models.Tent{TentNumber: "C-01", Zone: "C", Capacity: 4, IsActive: true},
	}
	for _, m := range []interface{}{&f.admin, &f.courier, &f.lemonade, &f.skewers, &f.tentA, &f.tentC} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("failed to seed fixture: %v", err)
		}
	}
	return f
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": "admin123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Token string `json:"token"`
	}
	decodeJSON(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	return body.Token
}

type orderResponse struct {
	Order      models.Order `json:"order"`
	PaymentURL string       `json:"payment_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func TestPlaceOrder_DecrementsStock(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 3}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body orderResponse
	decodeJSON(t, resp, &body)
	assert.True(t, body.Order.TotalAmount.Equal(decimal.RequireFromString("1500.00")),
		"total should be 1500.00, got %s", body.Order.TotalAmount)
	assert.Equal(t, models.OrderStatusNew, body.Order.Status)
	assert.Equal(t, models.PaymentStatusPending, body.Order.PaymentStatus)
	assert.Len(t, body.Order.Items, 1)
	assert.True(t, body.Order.Items[0].UnitPrice.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, fmt.Sprintf("/api/payment/%d", body.Order.ID), body.PaymentURL)

	var product models.Product
	assert.NoError(t, db.First(&product, f.lemonade.ID).Error)
	assert.Equal(t, 7, product.StockQuantity)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.skewers.ID, "quantity": 5}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorResponse
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Error, "Insufficient stock")

	// Nothing written, stock untouched.
	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(0), orderCount)
	var product models.Product
	assert.NoError(t, db.First(&product, f.skewers.ID).Error)
	assert.Equal(t, 2, product.StockQuantity)
}

func TestPlaceOrder_AggregatesAllLineFailures(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items": []fiber.Map{
			{"product_id": f.lemonade.ID, "quantity": 3},
			{"product_id": f.skewers.ID, "quantity": 5},
			{"product_id": 9999, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorResponse
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Error, "Insufficient stock")
	assert.Contains(t, body.Error, "not found or inactive")

	// The valid line must not have been applied either.
	var product models.Product
	assert.NoError(t, db.First(&product, f.lemonade.ID).Error)
	assert.Equal(t, 10, product.StockQuantity)
}

func TestPlaceOrder_UnknownTent(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "Z-99",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPlaceOrder_SequentialExhaustion(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	place := func() *http.Response {
		return doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
			"tent_number": "A-01",
			"items":       []fiber.Map{{"product_id": f.skewers.ID, "quantity": 1}},
		})
	}

	assert.Equal(t, http.StatusCreated, place().StatusCode)
	assert.Equal(t, http.StatusCreated, place().StatusCode)
	assert.Equal(t, http.StatusBadRequest, place().StatusCode)

	var product models.Product
	assert.NoError(t, db.First(&product, f.skewers.ID).Error)
	assert.Equal(t, 0, product.StockQuantity)
}

func TestInventoryRequest_Lifecycle(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	courierToken := login(t, app, "courier1")
	adminToken := login(t, app, "admin")

	// Submission leaves stock alone.
	resp := doJSON(t, app, http.MethodPost, "/api/inventory-requests", courierToken, fiber.Map{
		"product_id":         f.lemonade.ID,
		"requested_quantity": 50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var request models.InventoryRequest
	decodeJSON(t, resp, &request)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	var product models.Product
	assert.NoError(t, db.First(&product, f.lemonade.ID).Error)
	assert.Equal(t, 10, product.StockQuantity)

	// Couriers cannot review the queue.
	resp = doJSON(t, app, http.MethodGet, "/api/inventory-requests", courierToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory-requests", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var queue []models.InventoryRequest
	decodeJSON(t, resp, &queue)
	assert.Len(t, queue, 1)

	// Approval with an adjusted quantity adds that quantity to stock.
	resp = doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/inventory-requests/%d/approve", request.ID), adminToken,
		fiber.Map{"approved_quantity": 40})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var approveBody struct {
		Message string                  `json:"message"`
		Request models.InventoryRequest `json:"request"`
	}
	decodeJSON(t, resp, &approveBody)
	assert.Equal(t, models.RequestStatusApproved, approveBody.Request.Status)
	assert.Equal(t, 40, *approveBody.Request.ApprovedQuantity)

	assert.NoError(t, db.First(&product, f.lemonade.ID).Error)
	assert.Equal(t, 50, product.StockQuantity)

	// A second approval must not add stock again.
	resp = doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/inventory-requests/%d/approve", request.ID), adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.NoError(t, db.First(&product, f.lemonade.ID).Error)
	assert.Equal(t, 50, product.StockQuantity)

	// Rejection decides without touching stock.
	resp = doJSON(t, app, http.MethodPost, "/api/inventory-requests", courierToken, fiber.Map{
		"product_id":         f.skewers.ID,
		"requested_quantity": 30,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var second models.InventoryRequest
	decodeJSON(t, resp, &second)

	resp = doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/inventory-requests/%d/reject", second.ID), adminToken,
		fiber.Map{"reason": "Supplier out"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var rejectBody struct {
		Request models.InventoryRequest `json:"request"`
	}
	decodeJSON(t, resp, &rejectBody)
	assert.Equal(t, models.RequestStatusRejected, rejectBody.Request.Status)
	assert.Equal(t, "Supplier out", rejectBody.Request.Notes)
	var skewersProduct models.Product
	assert.NoError(t, db.First(&skewersProduct, f.skewers.ID).Error)
	assert.Equal(t, 2, skewersProduct.StockQuantity)
}

func TestOrderStatus_CourierClaim(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	courierToken := login(t, app, "courier1")
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed orderResponse
	decodeJSON(t, resp, &placed)

	// Taking an order into delivery assigns the courier in the same write.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/status", placed.Order.ID), courierToken,
		fiber.Map{"status": "in_delivery"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var claimed models.Order
	decodeJSON(t, resp, &claimed)
	assert.Equal(t, models.OrderStatusInDelivery, claimed.Status)
	if assert.NotNil(t, claimed.CourierID) {
		assert.Equal(t, f.courier.ID, *claimed.CourierID)
	}

	// Couriers may not set any other status.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/status", placed.Order.ID), courierToken,
		fiber.Map{"status": "delivered"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admins can; the earlier claim survives.
	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/status", placed.Order.ID), adminToken,
		fiber.Map{"status": "delivered"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var delivered models.Order
	decodeJSON(t, resp, &delivered)
	assert.Equal(t, models.OrderStatusDelivered, delivered.Status)
	if assert.NotNil(t, delivered.CourierID) {
		assert.Equal(t, f.courier.ID, *delivered.CourierID)
	}
}

func TestOrderStatus_UnknownStatusRejected(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed orderResponse
	decodeJSON(t, resp, &placed)

	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/orders/%d/status", placed.Order.ID), adminToken,
		fiber.Map{"status": "teleported"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPriceSnapshot_SurvivesCatalogEdit(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 3}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed orderResponse
	decodeJSON(t, resp, &placed)

	resp = doJSON(t, app, http.MethodPut,
		fmt.Sprintf("/api/products/%d", f.lemonade.ID), adminToken, fiber.Map{
			"name":           "Lemonade",
			"price":          "999.00",
			"stock_quantity": 7,
		})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/orders", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var orders []models.Order
	decodeJSON(t, resp, &orders)
	assert.Len(t, orders, 1)
	assert.True(t, orders[0].TotalAmount.Equal(decimal.RequireFromString("1500.00")))
	assert.Len(t, orders[0].Items, 1)
	assert.True(t, orders[0].Items[0].UnitPrice.Equal(decimal.RequireFromString("500.00")),
		"line item must keep the price at order time, got %s", orders[0].Items[0].UnitPrice)
}

func TestProductCatalog_PublicVsPrivileged(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPatch,
		fmt.Sprintf("/api/products/%d/toggle", f.skewers.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The public view hides the deactivated product.
	resp = doJSON(t, app, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var public []models.Product
	decodeJSON(t, resp, &public)
	assert.Len(t, public, 1)
	assert.Equal(t, "Lemonade", public[0].Name)

	// An admin token reveals everything.
	resp = doJSON(t, app, http.MethodGet, "/api/products", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var all []models.Product
	decodeJSON(t, resp, &all)
	assert.Len(t, all, 2)
}

func TestTentDelete_BlockedByOrders(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/tents/%d", f.tentA.ID), adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var tentCount int64
	db.Model(&models.Tent{}).Count(&tentCount)
	assert.Equal(t, int64(2), tentCount)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/tents/%d", f.tentC.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	db.Model(&models.Tent{}).Count(&tentCount)
	assert.Equal(t, int64(1), tentCount)
}

func TestTentCreate_RejectsDuplicateNumber(t *testing.T) {
	app, db := newTestApp(t)
	seedFixtures(t, db)
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/tents", adminToken, fiber.Map{
		"tent_number": "A-01",
		"zone":        "A",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body errorResponse
	decodeJSON(t, resp, &body)
	assert.Contains(t, body.Error, "already exists")
}

func TestAuthAndCapabilities(t *testing.T) {
	app, db := newTestApp(t)
	seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodGet, "/api/orders", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	courierToken := login(t, app, "courier1")
	resp = doJSON(t, app, http.MethodPost, "/api/products", courierToken, fiber.Map{
		"name":  "Contraband",
		"price": "1.00",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMessages_SoftDelete(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)
	courierToken := login(t, app, "courier1")
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/messages", courierToken, fiber.Map{
		"message": "Running low on lemonade in zone A",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var sent models.Message
	decodeJSON(t, resp, &sent)
	assert.Equal(t, f.courier.ID, sent.SenderID)
	assert.Nil(t, sent.ReceiverID)

	// A broadcast is visible to everyone.
	resp = doJSON(t, app, http.MethodGet, "/api/messages", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var visible []models.Message
	decodeJSON(t, resp, &visible)
	assert.Len(t, visible, 1)

	// Moderation soft-deletes: the row stays, flagged with who and when.
	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/messages/%d", sent.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Message
	assert.NoError(t, db.First(&stored, sent.ID).Error)
	assert.True(t, stored.IsDeleted)
	if assert.NotNil(t, stored.DeletedBy) {
		assert.Equal(t, f.admin.ID, *stored.DeletedBy)
	}
	assert.NotNil(t, stored.DeletedAt)

	resp = doJSON(t, app, http.MethodGet, "/api/messages", courierToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var remaining []models.Message
	decodeJSON(t, resp, &remaining)
	assert.Len(t, remaining, 0)
}

func TestMessages_OnlyOwnerOrModeratorDeletes(t *testing.T) {
	app, db := newTestApp(t)
	seedFixtures(t, db)
	courierToken := login(t, app, "courier1")
	adminToken := login(t, app, "admin")

	resp := doJSON(t, app, http.MethodPost, "/api/messages", adminToken, fiber.Map{
		"message": "Shift change at 18:00",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var sent models.Message
	decodeJSON(t, resp, &sent)

	resp = doJSON(t, app, http.MethodDelete,
		fmt.Sprintf("/api/messages/%d", sent.ID), courierToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var stored models.Message
	assert.NoError(t, db.First(&stored, sent.ID).Error)
	assert.False(t, stored.IsDeleted)
}

func TestPaymentStub_MarksOrderPaid(t *testing.T) {
	app, db := newTestApp(t)
	f := seedFixtures(t, db)

	resp := doJSON(t, app, http.MethodPost, "/api/orders", "", fiber.Map{
		"tent_number": "A-01",
		"items":       []fiber.Map{{"product_id": f.lemonade.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var placed orderResponse
	decodeJSON(t, resp, &placed)

	resp = doJSON(t, app, http.MethodGet, placed.PaymentURL, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, placed.PaymentURL+"/success", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var order models.Order
	assert.NoError(t, db.First(&order, placed.Order.ID).Error)
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
}

func TestRegister_RequiresUserManagement(t *testing.T) {
	app, db := newTestApp(t)
	seedFixtures(t, db)
	courierToken := login(t, app, "courier1")
	adminToken := login(t, app, "admin")

	newUser := fiber.Map{
		"username": "operator1",
		"email":    "operator1@festival.local",
		"password": "secret123",
		"role":     "operator",
	}

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", courierToken, newUser)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", adminToken, newUser)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.User
	assert.NoError(t, db.Where("username = ?", "operator1").First(&created).Error)
	assert.Equal(t, models.RoleOperator, created.Role)

	// Duplicates are rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/auth/register", adminToken, newUser)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
