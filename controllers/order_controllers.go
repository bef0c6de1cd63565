package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/lifecycle"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/models"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/policy"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

// CreateOrder places an order for the caller. Item name and price are
// snapshotted into the order rows: later catalog edits never touch an
// existing order, and the total is fixed here as the exact sum of
// qty*price.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	type itemReq struct {
		ItemID uint     `json:"item_id"`
		Name   string   `json:"name"`
		Qty    int      `json:"qty"`
		Price  *float64 `json:"price"`
	}
	var body struct {
		Items []itemReq `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}
	if len(body.Items) == 0 {
		utils.RespondError(c, utils.ValidationError("items required"))
		return
	}

	order := models.Order{
		UserID: actorID,
		Status: string(lifecycle.OrderPlaced),
	}

	var total float64
	for i, it := range body.Items {
		if it.Qty < 1 {
			utils.RespondError(c, utils.ValidationError("item %d: qty must be >= 1", i))
			return
		}

		name := it.Name
		price := it.Price
		if name == "" || price == nil {
			// Fill the snapshot from the catalog when the client did not
			// send the fields itself.
			var menuItem models.MenuItem
			if err := oc.DB.First(&menuItem, it.ItemID).Error; err != nil {
				utils.RespondError(c, utils.ValidationError("item %d: unknown menu item %d", i, it.ItemID))
				return
			}
			if name == "" {
				name = menuItem.Name
			}
			if price == nil {
				price = &menuItem.Price
			}
		}
		if *price < 0 {
			utils.RespondError(c, utils.ValidationError("item %d: price must be >= 0", i))
			return
		}

		total += float64(it.Qty) * *price
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: it.ItemID,
			Name:       name,
			Quantity:   it.Qty,
			Price:      *price,
		})
	}
	order.Total = total

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d placed by user %d (total=%.2f)", order.ID, actorID, order.Total)

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetMyOrders -> the caller's orders, newest first.
func (oc *OrderController) GetMyOrders(c *gin.Context) {
	actorID, _, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Where("user_id = ?", actorID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "My orders", orders)
}

// GetAllOrders -> staff/admin listing, newest first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	_, actorRole, ok := currentActor(c)
	if !ok || !actorRole.Elevated() {
		utils.RespondError(c, utils.ForbiddenError("staff or admin access required"))
		return
	}

	var orders []models.Order
	if err := oc.DB.Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// GetOrderByID -> owner or staff/admin.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("order not found"))
		return
	}

	if !policy.CanAct(actorRole, actorID, order.UserID, policy.ActionRead) {
		utils.RespondError(c, utils.ForbiddenError("not your order"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus moves an order through the transition table. Staff and
// admin only; the table is the sole judge of which moves are legal.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok || !policy.CanAct(actorRole, actorID, 0, policy.ActionSetStatus) {
		utils.RespondError(c, utils.ForbiddenError("staff or admin access required"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid order id"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	newStatus, ok := lifecycle.ParseOrderStatus(input.Status)
	if !ok {
		utils.RespondError(c, utils.ValidationError("unknown order status '%s'", input.Status))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("order not found"))
		return
	}

	from, _ := lifecycle.ParseOrderStatus(order.Status)
	if err := lifecycle.CanTransitionOrder(from, newStatus); err != nil {
		utils.RespondError(c, err)
		return
	}

	order.Status = string(newStatus)
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %d moved %s -> %s by user %d", order.ID, from, newStatus, actorID)

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// CancelOrder lets the owner (or staff/admin) cancel a non-terminal order.
// It goes through the same transition table as any other status change.
func (oc *OrderController) CancelOrder(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.Preload("Items").First(&order, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("order not found"))
		return
	}

	if !policy.CanAct(actorRole, actorID, order.UserID, policy.ActionCancel) {
		utils.RespondError(c, utils.ForbiddenError("not your order"))
		return
	}

	from, _ := lifecycle.ParseOrderStatus(order.Status)
	if err := lifecycle.CanTransitionOrder(from, lifecycle.OrderCancelled); err != nil {
		utils.RespondError(c, err)
		return
	}

	order.Status = string(lifecycle.OrderCancelled)
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order cancelled", order)
}

// DeleteOrder removes an order. Owners may only delete completed or
// cancelled orders; staff/admin may delete regardless of status.
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	actorID, actorRole, ok := currentActor(c)
	if !ok {
		utils.RespondError(c, utils.ForbiddenError("no actor in context"))
		return
	}

	id, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid order id"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("order not found"))
		return
	}

	status, _ := lifecycle.ParseOrderStatus(order.Status)
	if !policy.CanDelete(policy.EntityOrder, actorRole, actorID, order.UserID, status.Terminal()) {
		utils.RespondError(c, utils.ForbiddenError("order can only be deleted by its owner once completed or cancelled"))
		return
	}

	tx := oc.DB.Begin()
	if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, err)
		return
	}
	if err := tx.Delete(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
