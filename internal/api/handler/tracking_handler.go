package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-system/internal/core/ports"
)

// TrackingHandler handles live parcel lookups.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Get handles GET /v1/trackings/:tracking_number.
//
// @Summary      Track a parcel
// @Description  Fetches the parcel from La Poste and returns its delivery phase and key events.
// @Tags         trackings
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "La Poste tracking number (e.g. 6A12345678912)"
// @Success      200              {object}  trackingResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /v1/trackings/{tracking_number} [get]
func (h *TrackingHandler) Get(c echo.Context) error {
	res, err := h.service.Track(c.Request().Context(), c.Param("tracking_number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, toTrackingResponse(res))
}

// Batch handles POST /v1/trackings/batch.
//
// @Summary      Track several parcels
// @Description  Looks up to 50 parcels concurrently. Each item carries its own result or error.
// @Tags         trackings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      batchTrackingRequest  true  "Tracking numbers"
// @Success      200   {object}  batchTrackingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/trackings/batch [post]
func (h *TrackingHandler) Batch(c echo.Context) error {
	var req batchTrackingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	items := h.service.TrackBatch(c.Request().Context(), req.TrackingNumbers)

	resp := batchTrackingResponse{Items: make([]batchItemResponse, 0, len(items))}
	for _, item := range items {
		out := batchItemResponse{Input: item.Input}
		if item.Err != nil {
			resp.Failed++
			if _, msg, ok := StatusFor(item.Err); ok {
				out.Error = msg
			} else {
				out.Error = "internal error"
			}
		} else {
			resp.Succeeded++
			tr := toTrackingResponse(item.Result)
			out.Tracking = &tr
		}
		resp.Items = append(resp.Items, out)
	}

	return c.JSON(http.StatusOK, resp)
}
