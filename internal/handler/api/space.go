package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "parkspace/internal/handler/dto/request"
	resdto "parkspace/internal/handler/dto/response"
	"parkspace/internal/handler/httperr"
	"parkspace/internal/handler/middleware"
	"parkspace/internal/usecase/commands"
	"parkspace/internal/usecase/queries"
	"parkspace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceHandler struct {
	spaceCommands commands.SpaceCommands
	spaceQueries  queries.SpaceQueries
}

func NewSpaceHandler(spaceCommands commands.SpaceCommands, spaceQueries queries.SpaceQueries) *SpaceHandler {
	return &SpaceHandler{
		spaceCommands: spaceCommands,
		spaceQueries:  spaceQueries,
	}
}

// @Summary List spaces
// @Description List active parking spaces
// @Tags spaces
// @Produce json
// @Param limit query int false "Max items" default(50)
// @Success 200 {array} resdto.SpaceListResponse
// @Router /spaces [get]
func (h *SpaceHandler) ListSpaces(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.spaceQueries.ListActive(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.SpaceListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSpaceListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary List my spaces
// @Description List the authenticated host's spaces, active or not
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SpaceListResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /me/spaces [get]
func (h *SpaceHandler) ListMySpaces(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	items, err := h.spaceQueries.ListByHost(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, shared.ErrPermissionDenied) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]*resdto.SpaceListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromSpaceListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get space
// @Tags spaces
// @Produce json
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.SpaceDetailResponse
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [get]
func (h *SpaceHandler) GetSpace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	// Unauthenticated viewers get the public projection.
	actor, _ := middleware.GetActor(c)

	view, err := h.spaceQueries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceDetailView(view))
}

// @Summary Create space
// @Description Register a parking space with its availability rules and products
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpaceRequest true "Space request"
// @Success 201 {object} resdto.SpaceDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spaces [post]
func (h *SpaceHandler) CreateSpace(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.spaceCommands.CreateSpace(c.Request.Context(), req, actor)
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSpaceDetailView(view))
}

// @Summary Update space
// @Description Update space attributes, replacing rules and reconciling products
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body reqdto.UpdateSpaceRequest true "Space request"
// @Success 200 {object} resdto.SpaceDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [put]
func (h *SpaceHandler) UpdateSpace(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	var req reqdto.UpdateSpaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.spaceCommands.UpdateSpace(c.Request.Context(), id, req, actor)
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpaceDetailView(view))
}

// @Summary Deactivate space
// @Description Take a space off the market and cancel every active reservation on it
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} resdto.DeactivateSpaceResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spaces/{id} [delete]
func (h *SpaceHandler) DeactivateSpace(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID format"})
		return
	}

	result, err := h.spaceCommands.DeactivateSpace(c.Request.Context(), id, actor)
	if err != nil {
		respondSpaceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.DeactivateSpaceResponse{CanceledReservations: result.CanceledReservations})
}

func respondSpaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSpaceNotFound), errors.Is(err, shared.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Space not found"})
	case errors.Is(err, shared.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space data"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
