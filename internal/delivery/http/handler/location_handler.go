package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkme-app/linkme-backend/internal/usecase/location"
)

type LocationHandler struct {
	locationUseCase *location.LocationUseCase
}

func NewLocationHandler(locationUseCase *location.LocationUseCase) *LocationHandler {
	return &LocationHandler{
		locationUseCase: locationUseCase,
	}
}

// UpdateMyLocation handles PUT /location/me
// @Summary Update my location
// @Description Report the current user's position
// @Tags location
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body location.UpdateLocationRequest true "Coordinates"
// @Success 200 {object} domain.Location
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /location/me [put]
func (h *LocationHandler) UpdateMyLocation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req location.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	loc, err := h.locationUseCase.Update(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, loc)
}
