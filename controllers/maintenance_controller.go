// controllers/maintenance_controller.go
package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/resp"
	"github.com/info-graph/info-graph-task/services"
)

type MaintenanceController struct {
	Service *services.MaintenanceService
}

func NewMaintenanceController(s *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Service: s}
}

type MaintenanceRequest struct {
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate" binding:"required"`
	ImpactLevel  string   `json:"impactLevel" binding:"required"`
	Cost         *float64 `json:"cost" binding:"required"`
	Comments     string   `json:"comments"`
	RestaurantID uint     `json:"restaurant_id" binding:"required"`
}

func (req *MaintenanceRequest) toEntity() *entity.MaintenanceHistory {
	return &entity.MaintenanceHistory{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ImpactLevel:  entity.ImpactLevel(req.ImpactLevel),
		Cost:         *req.Cost,
		Comments:     req.Comments,
		RestaurantID: req.RestaurantID,
	}
}

type maintenanceDetail struct {
	entity.MaintenanceHistory
	Restaurant *parentRef `json:"restaurant,omitempty"`
}

func toMaintenanceDetail(record *entity.MaintenanceHistory) maintenanceDetail {
	detail := maintenanceDetail{MaintenanceHistory: *record}
	if record.Restaurant != nil {
		detail.Restaurant = &parentRef{ID: record.Restaurant.ID, Name: record.Restaurant.Name}
	}
	return detail
}

func (ctl *MaintenanceController) List(c *gin.Context) {
	records, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err, "Failed to fetch maintenance records.")
		return
	}
	resp.List(c, len(records), records)
}

func (ctl *MaintenanceController) ListByRestaurant(c *gin.Context) {
	restID, _ := strconv.Atoi(c.Param("restaurantId"))
	records, err := ctl.Service.ListByRestaurant(uint(restID))
	if err != nil {
		resp.Error(c, err, "Failed to fetch maintenance records by restaurant.")
		return
	}
	resp.List(c, len(records), records)
}

func (ctl *MaintenanceController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	record, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err, "Failed to fetch maintenance record.")
		return
	}
	resp.OK(c, toMaintenanceDetail(record))
}

func (ctl *MaintenanceController) Create(c *gin.Context) {
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	record := req.toEntity()
	if err := ctl.Service.Create(record); err != nil {
		resp.Error(c, err, "Failed to create maintenance record.")
		return
	}
	resp.Created(c, record)
}

func (ctl *MaintenanceController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req MaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	record := req.toEntity()
	if err := ctl.Service.Update(uint(id), record); err != nil {
		resp.Error(c, err, "Failed to update maintenance record.")
		return
	}
	resp.OK(c, record)
}

func (ctl *MaintenanceController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err, "Failed to delete maintenance record.")
		return
	}
	resp.Deleted(c, "Maintenance record deleted successfully")
}
