package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/controllers"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/models"
)

// Routes are mounted under an actor prefix so one router can play the
// owner (user 1), another customer (user 2) and a staff member.
func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	orderCtrl := controllers.NewOrderController(db)

	owner := router.Group("/owner", asUser(1, "customer"))
	owner.POST("/orders", orderCtrl.CreateOrder)
	owner.GET("/orders/my", orderCtrl.GetMyOrders)
	owner.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	owner.POST("/orders/:order_id/cancel", orderCtrl.CancelOrder)
	owner.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	other := router.Group("/other", asUser(2, "customer"))
	other.GET("/orders", orderCtrl.GetAllOrders)
	other.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	other.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

	staff := router.Group("/staff", asUser(5, "staff"))
	staff.GET("/orders", orderCtrl.GetAllOrders)
	staff.PUT("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	staff.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)

	return router
}

func TestCreateOrderSnapshotTotal(t *testing.T) {
	db := setupTestDB("orderctrl_create")
	router := setupOrderRouter(db)

	item := models.MenuItem{Name: "Pasta", Price: 12.50, Category: "Mains", Available: true}
	db.Create(&item)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": item.ID, "qty": 2, "price": 12.50},
			{"item_id": item.ID, "qty": 1, "price": 3.25, "name": "Side"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 28.25, data["total"])
	assert.Equal(t, "placed", data["status"])

	items := data["items"].([]interface{})
	assert.Len(t, items, 2)
	// Name omitted on the first line: filled in from the catalog.
	assert.Equal(t, "Pasta", items[0].(map[string]interface{})["name"])
	assert.Equal(t, "Side", items[1].(map[string]interface{})["name"])
}

func TestOrderSnapshotImmuneToCatalogEdits(t *testing.T) {
	db := setupTestDB("orderctrl_snapshot")
	router := setupOrderRouter(db)

	item := models.MenuItem{Name: "Pasta", Price: 12.50, Category: "Mains", Available: true}
	db.Create(&item)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": item.ID, "qty": 2},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Raise the catalog price after the order was placed.
	db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Update("price", 99.0)

	w = doJSON(t, router, "GET", "/owner/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := parseBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, 25.0, data["total"])
	orderItems := data["items"].([]interface{})
	assert.Equal(t, 12.5, orderItems[0].(map[string]interface{})["price"])
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupTestDB("orderctrl_validation")
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": 1, "qty": 0, "price": 5.0},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": 1, "qty": 1, "price": -5.0, "name": "Soup"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderStatusAndDeleteGating(t *testing.T) {
	db := setupTestDB("orderctrl_gating")
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": 1, "qty": 1, "price": 10.0, "name": "Burger"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Owner cannot delete a placed order.
	w = doJSON(t, router, "DELETE", "/owner/orders/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// A plain customer cannot set status at all.
	w = doJSON(t, router, "PUT", "/other/orders/1/status", map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Unknown status values are a validation failure, not a transition one.
	w = doJSON(t, router, "PUT", "/staff/orders/1/status", map[string]string{"status": "delivered"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation", parseBody(t, w)["data"].(map[string]interface{})["kind"])

	w = doJSON(t, router, "PUT", "/staff/orders/1/status", map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Terminal status is locked.
	w = doJSON(t, router, "PUT", "/staff/orders/1/status", map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_transition", parseBody(t, w)["data"].(map[string]interface{})["kind"])

	// Completed: now the owner may delete.
	w = doJSON(t, router, "DELETE", "/owner/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "PUT", "/staff/orders/1/status", map[string]string{"status": "preparing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelOrder(t *testing.T) {
	db := setupTestDB("orderctrl_cancel")
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": 1, "qty": 1, "price": 7.0, "name": "Salad"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/owner/orders/1/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", parseBody(t, w)["data"].(map[string]interface{})["status"])

	// Cancelling twice hits the terminal lock.
	w = doJSON(t, router, "POST", "/owner/orders/1/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Cancelled is terminal, so the owner may delete.
	w = doJSON(t, router, "DELETE", "/owner/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderOwnership(t *testing.T) {
	db := setupTestDB("orderctrl_ownership")
	router := setupOrderRouter(db)

	w := doJSON(t, router, "POST", "/owner/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"item_id": 1, "qty": 1, "price": 4.0, "name": "Tea"},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Another customer can neither read the order nor list all orders.
	w = doJSON(t, router, "GET", "/other/orders/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "GET", "/other/orders", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Staff can do both.
	w = doJSON(t, router, "GET", "/staff/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 1)

	w = doJSON(t, router, "GET", "/owner/orders/my", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, parseBody(t, w)["data"].([]interface{}), 1)
}
