package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkme-app/linkme-backend/internal/usecase/explore"
)

type ExploreHandler struct {
	exploreUseCase *explore.ExploreUseCase
}

func NewExploreHandler(exploreUseCase *explore.ExploreUseCase) *ExploreHandler {
	return &ExploreHandler{
		exploreUseCase: exploreUseCase,
	}
}

// Explore handles POST /explore
// @Summary Discover nearby places
// @Description Ask for venue suggestions around a point for a free-form query
// @Tags explore
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body explore.ExploreRequest true "Query and position"
// @Success 200 {object} explore.ExploreResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /explore [post]
func (h *ExploreHandler) Explore(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req explore.ExploreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	resp, err := h.exploreUseCase.Explore(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
