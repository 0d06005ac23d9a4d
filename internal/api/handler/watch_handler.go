package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-system/internal/core/ports"
)

// RefreshQueue schedules a background refresh of one parcel.
type RefreshQueue interface {
	Enqueue(ctx context.Context, trackingNumber string) error
}

// WatchHandler handles HTTP requests for watch operations.
type WatchHandler struct {
	service ports.WatchService
	queue   RefreshQueue
}

func NewWatchHandler(service ports.WatchService, queue RefreshQueue) *WatchHandler {
	return &WatchHandler{service: service, queue: queue}
}

// Create handles POST /v1/watches.
//
// @Summary      Watch a parcel
// @Description  Registers a tracking number for periodic refresh. The first refresh is queued immediately.
// @Tags         watches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addWatchRequest  true  "Watch details"
// @Success      201   {object}  watchResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/watches [post]
func (h *WatchHandler) Create(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req addWatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	w, err := h.service.Add(c.Request().Context(), ports.AddWatchInput{
		TrackingNumber: req.TrackingNumber,
		Label:          req.Label,
		Caller:         caller,
	})
	if err != nil {
		return respondError(c, err)
	}

	// A watch that misses its initial refresh is picked up by the next sweep.
	_ = h.queue.Enqueue(c.Request().Context(), w.TrackingNumber)

	return c.JSON(http.StatusCreated, toWatchResponse(w))
}

// List handles GET /v1/watches.
//
// @Summary      List watches
// @Description  Clients see their own watches, admins see all of them.
// @Tags         watches
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listWatchesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/watches [get]
func (h *WatchHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	watches, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return respondError(c, err)
	}

	resp := listWatchesResponse{Watches: make([]watchResponse, 0, len(watches))}
	for _, w := range watches {
		resp.Watches = append(resp.Watches, toWatchResponse(w))
	}
	resp.Total = len(resp.Watches)

	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/watches/:id.
//
// @Summary      Get a watch
// @Tags         watches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Watch id"
// @Success      200  {object}  watchResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/watches/{id} [get]
func (h *WatchHandler) Get(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	w, err := h.service.Get(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toWatchResponse(w))
}

// Snapshot handles GET /v1/watches/:id/snapshot.
//
// @Summary      Latest stored snapshot of a watched parcel
// @Tags         watches
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Watch id"
// @Success      200  {object}  trackingResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/watches/{id}/snapshot [get]
func (h *WatchHandler) Snapshot(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	snap, err := h.service.Snapshot(c.Request().Context(), c.Param("id"), caller)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toSnapshotResponse(snap))
}

// Delete handles DELETE /v1/watches/:id.
//
// @Summary      Stop watching a parcel
// @Tags         watches
// @Security     BearerAuth
// @Param        id   path  string  true  "Watch id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/watches/{id} [delete]
func (h *WatchHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), c.Param("id"), caller); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
