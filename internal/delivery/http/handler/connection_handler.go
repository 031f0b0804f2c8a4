package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkme-app/linkme-backend/internal/usecase/connection"
)

type ConnectionHandler struct {
	connectionUseCase *connection.ConnectionUseCase
}

func NewConnectionHandler(connectionUseCase *connection.ConnectionUseCase) *ConnectionHandler {
	return &ConnectionHandler{
		connectionUseCase: connectionUseCase,
	}
}

// CreateConnection handles POST /connections
// @Summary Send connection request
// @Description Open a pending connection request to another user
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body connection.CreateConnectionRequest true "Request data"
// @Success 201 {object} domain.Connection
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /connections [post]
func (h *ConnectionHandler) CreateConnection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req connection.CreateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	conn, err := h.connectionUseCase.CreateRequest(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, conn)
}

// ListConnections handles GET /connections
// @Summary List my connections
// @Description List every connection the current user participates in
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Success 200 {array} connection.ConnectionView
// @Failure 401 {object} ErrorResponse
// @Router /connections [get]
func (h *ConnectionHandler) ListConnections(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	views, err := h.connectionUseCase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// RespondRequest is the accept/reject decision for a pending connection.
type RespondRequest struct {
	Accept bool `json:"accept"`
}

// RespondToConnection handles POST /connections/:id/respond
// @Summary Respond to a connection request
// @Description Accept or reject a pending request; only the recipient may respond
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body RespondRequest true "Decision"
// @Success 200 {object} domain.Connection
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /connections/{id}/respond [post]
func (h *ConnectionHandler) RespondToConnection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	conn, err := h.connectionUseCase.Respond(c.Request.Context(), userID, c.Param("id"), req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, conn)
}

// SendMessageRequest carries one chat message.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,max=2000"`
}

// SendMessage handles POST /connections/:id/messages
// @Summary Send a message
// @Description Append a message to an accepted connection
// @Tags connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /connections/{id}/messages [post]
func (h *ConnectionHandler) SendMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	msg, err := h.connectionUseCase.SendMessage(c.Request.Context(), userID, c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /connections/:id/messages
// @Summary List messages
// @Description List the conversation on a connection, oldest first
// @Tags connections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Connection ID"
// @Success 200 {array} domain.Message
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /connections/{id}/messages [get]
func (h *ConnectionHandler) ListMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	msgs, err := h.connectionUseCase.ListMessages(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, msgs)
}
