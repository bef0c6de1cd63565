package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/models"
	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetAllItems is public: anyone can browse the menu.
func (mc *MenuController) GetAllItems(c *gin.Context) {
	var items []models.MenuItem
	if err := mc.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of menu items", items)
}

type menuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Available   *bool    `json:"available"`
}

func (r *menuItemRequest) validate() error {
	if r.Name == "" {
		return utils.ValidationError("name is required")
	}
	if r.Price == nil {
		return utils.ValidationError("price is required")
	}
	if *r.Price < 0 {
		return utils.ValidationError("price must be >= 0")
	}
	return nil
}

// CreateItem -> staff/admin only (route-guarded).
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}
	if err := req.validate(); err != nil {
		utils.RespondError(c, err)
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    "General",
		Available:   true,
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateItem -> staff/admin only (route-guarded). Absent fields keep their
// current value.
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("menu item not found"))
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("%s", err.Error()))
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(c, utils.ValidationError("price must be >= 0"))
			return
		}
		item.Price = *req.Price
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteItem -> staff/admin only (route-guarded). Existing order snapshots
// keep their copied name/price regardless.
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		utils.RespondError(c, utils.ValidationError("invalid menu item id"))
		return
	}

	var item models.MenuItem
	if err := mc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("menu item not found"))
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"item_id": id})
}
