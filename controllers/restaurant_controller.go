// controllers/restaurant_controller.go
package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/entity"
	"github.com/info-graph/info-graph-task/pkg/resp"
	"github.com/info-graph/info-graph-task/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
	Status  *services.StatusService
}

func NewRestaurantController(s *services.RestaurantService, status *services.StatusService) *RestaurantController {
	return &RestaurantController{Service: s, Status: status}
}

// RestaurantRequest is the whitelisted create/update payload.
type RestaurantRequest struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	StreetName  string   `json:"streetName" binding:"required"`
	OpeningTime string   `json:"openingTime" binding:"required"`
	ClosingTime string   `json:"closingTime" binding:"required"`
	Landmarks   []string `json:"landmarks"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

func (req *RestaurantRequest) toEntity() *entity.Restaurant {
	landmarks := req.Landmarks
	if landmarks == nil {
		landmarks = []string{}
	}
	return &entity.Restaurant{
		Name:        req.Name,
		Phone:       req.Phone,
		StreetName:  req.StreetName,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		Landmarks:   landmarks,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}
}

func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List()
	if err != nil {
		resp.Error(c, err, "Failed to fetch restaurants.")
		return
	}
	resp.List(c, len(rests), rests)
}

func (ctl *RestaurantController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err, "Failed to fetch restaurant.")
		return
	}
	resp.OK(c, rest)
}

func (ctl *RestaurantController) GetWithRelations(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := ctl.Service.GetWithRelations(uint(id))
	if err != nil {
		resp.Error(c, err, "Failed to fetch restaurant with relations.")
		return
	}
	resp.OK(c, rest)
}

func (ctl *RestaurantController) Create(c *gin.Context) {
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest := req.toEntity()
	if err := ctl.Service.Create(rest); err != nil {
		resp.Error(c, err, "Failed to create restaurant.")
		return
	}
	resp.Created(c, rest)
}

func (ctl *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest := req.toEntity()
	if err := ctl.Service.Update(uint(id), rest); err != nil {
		resp.Error(c, err, "Failed to update restaurant.")
		return
	}
	resp.OK(c, rest)
}

func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		resp.Error(c, err, "Failed to delete restaurant.")
		return
	}
	resp.Deleted(c, "Restaurant deleted successfully")
}

// StatusReport serves the availability engine's snapshot for one
// restaurant at the current wall-clock time.
func (ctl *RestaurantController) StatusReport(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	report, err := ctl.Status.Report(uint(id), time.Now())
	if err != nil {
		resp.Error(c, err, "Failed to compute restaurant status.")
		return
	}
	resp.OK(c, report)
}
