package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linkme-app/linkme-backend/internal/usecase/nearby"
)

const defaultRadiusMeters = 1000

type NearbyHandler struct {
	nearbyUseCase *nearby.NearbyUseCase
}

func NewNearbyHandler(nearbyUseCase *nearby.NearbyUseCase) *NearbyHandler {
	return &NearbyHandler{
		nearbyUseCase: nearbyUseCase,
	}
}

// GetNearby handles GET /nearby
// @Summary Find nearby users
// @Description List users within a radius of the given point, closest first
// @Tags nearby
// @Security BearerAuth
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters (default 1000)"
// @Success 200 {array} domain.NearbyMatch
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /nearby [get]
func (h *NearbyHandler) GetNearby(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lat"})
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lng"})
		return
	}

	radius := float64(defaultRadiusMeters)
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid radius"})
			return
		}
	}

	matches, err := h.nearbyUseCase.SearchNearby(c.Request.Context(), userID, lat, lng, radius)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
