// controllers/menu_item_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/resp"
	"github.com/info-graph/info-graph-task/services"
)

type MenuItemController struct {
	Service *services.MenuItemService
}

func NewMenuItemController(s *services.MenuItemService) *MenuItemController {
	return &MenuItemController{Service: s}
}

type MenuItemRequest struct {
	Name             string   `json:"name" binding:"required"`
	ServingStartTime string   `json:"serving_start_time" binding:"required"`
	ServingEndTime   string   `json:"serving_end_time" binding:"required"`
	Price            *float64 `json:"price" binding:"required"`
	Description      string   `json:"description"`
	RestaurantID     uint     `json:"restaurant_id" binding:"required"`
}

func (req *MenuItemRequest) toEntity() *entity.MenuItem {
	return &entity.MenuItem{
		Name:             req.Name,
		ServingStartTime: req.ServingStartTime,
		ServingEndTime:   req.ServingEndTime,
		Price:            *req.Price,
		Description:      req.Description,
		RestaurantID:     req.RestaurantID,
	}
}

// parentRef narrows the preloaded parent to the id/name pair the client
// expects on detail responses.
type parentRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type menuItemDetail struct {
	entity.MenuItem
	Restaurant *parentRef `json:"restaurant,omitempty"`
}

func toMenuItemDetail(item *entity.MenuItem) menuItemDetail {
	detail := menuItemDetail{MenuItem: *item}
	if item.Restaurant != nil {
		detail.Restaurant = &parentRef{ID: item.Restaurant.ID, Name: item.Restaurant.Name}
	}
	return detail
}

func (ctl *MenuItemController) List(c *gin.Context) {
	items, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err, "Failed to fetch menu items.")
		return
	}
	resp.List(c, len(items), items)
}

func (ctl *MenuItemController) ListByRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("restaurantId"))
	items, err := ctl.Service.ListByRestaurant(uint(restID))
	if err != nil {
		resp.Error(c, err, "Failed to fetch menu items by restaurant.")
		return
	}
	resp.List(c, len(items), items)
}

func (ctl *MenuItemController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err, "Failed to fetch menu item.")
		return
	}
	resp.OK(c, toMenuItemDetail(item))
}

func (ctl *MenuItemController) Create(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := req.toEntity()
	if err := ctl.Service.Create(item); err != nil {
		resp.Error(c, err, "Failed to create menu item.")
		return
	}
	resp.Created(c, item)
}

func (ctl *MenuItemController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := req.toEntity()
	if err := ctl.Service.Update(uint(id), item); err != nil {
		resp.Error(c, err, "Failed to update menu item.")
		return
	}
	resp.OK(c, item)
}

func (ctl *MenuItemController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err, "Failed to delete menu item.")
		return
	}
	resp.Deleted(c, "Menu item deleted successfully")
}
