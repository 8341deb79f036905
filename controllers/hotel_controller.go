package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"enstay-backend/services"
	"enstay-backend/utils"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// GetHotels handles GET /api/hotels?search=... and tolerates being hit
// on every keystroke; an empty query lists everything.
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.HotelSvc.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load hotels")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotelRooms handles GET /api/hotels/:id/rooms.
func (hc *HotelController) GetHotelRooms(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel id")
		return
	}
	rooms, err := hc.HotelSvc.RoomsByHotel(uint(id))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rooms")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
