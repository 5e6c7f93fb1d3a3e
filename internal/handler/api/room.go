package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "roombook/internal/handler/dto/request"
	resdto "roombook/internal/handler/dto/response"
	"roombook/internal/handler/httperr"
	"roombook/internal/infra/storage"
	"roombook/internal/usecase/commands"
	"roombook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds       commands.RoomCommands
	q          queries.RoomQueries
	imageStore *storage.ImageStore
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, imageStore *storage.ImageStore) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, imageStore: imageStore}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}

	result := make([]*resdto.RoomResponse, len(rooms))
	for i, r := range rooms {
		result[i] = resdto.FromRoomView(r)
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := parseRoomID(c)
	if err != nil {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room (admin)
// @Description Create a room from a multipart form, optionally with an image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param name formData string true "Room name"
// @Param capacity formData int true "Capacity"
// @Param features formData string false "Comma-delimited features"
// @Param image formData file false "Room image"
// @Success 201 {object} map[string]int64
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	var form reqdto.RoomForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	image, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), commands.CreateRoomParams{
		Name:     form.Name,
		Capacity: form.Capacity,
		Features: form.FeatureList(),
		Image:    image,
	})
	if err != nil {
		// The row never landed, so the freshly written file is an orphan.
		h.discardImage(image)
		abortRoomError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Update room (admin)
// @Description Update room fields; a new image replaces the stored one
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Param name formData string true "Room name"
// @Param capacity formData int true "Capacity"
// @Param features formData string false "Comma-delimited features"
// @Param image formData file false "Room image"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *RoomHandler) Update(c *gin.Context) {
	id, err := parseRoomID(c)
	if err != nil {
		return
	}

	var form reqdto.RoomForm
	if bindErr := c.ShouldBind(&form); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	image, ok := h.saveUploadedImage(c)
	if !ok {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), id, commands.UpdateRoomParams{
		Name:     form.Name,
		Capacity: form.Capacity,
		Features: form.FeatureList(),
		Image:    image,
	}); err != nil {
		h.discardImage(image)
		abortRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete room (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Room ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	id, err := parseRoomID(c)
	if err != nil {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortRoomError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// saveUploadedImage stores the optional "image" form file and returns its
// generated name. A false return means the request was already aborted.
func (h *RoomHandler) saveUploadedImage(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image upload", nil)
		return nil, false
	}

	name, err := h.imageStore.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedImageType) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported image type", nil)
		} else {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to store image", nil)
		}
		return nil, false
	}
	return &name, true
}

func (h *RoomHandler) discardImage(image *string) {
	if image == nil {
		return
	}
	_ = h.imageStore.Delete(*image)
}

func parseRoomID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID", nil)
		return 0, err
	}
	return id, nil
}

func abortRoomError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
