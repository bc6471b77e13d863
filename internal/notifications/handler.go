package notifications

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewNotificationsHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{InterfaceService}
}

func (h *Handler) GetWatermark(e echo.Context) error {
	return e.JSON(http.StatusOK, WatermarkResponse{LastCheck: h.InterfaceService.LastCheck()})
}

func (h *Handler) CheckNow(e echo.Context) error {
	h.InterfaceService.CheckNotifications(e.Request().Context())
	return e.JSON(http.StatusOK, WatermarkResponse{LastCheck: h.InterfaceService.LastCheck()})
}

func (h *Handler) Reset(e echo.Context) error {
	h.InterfaceService.Reset()
	return e.JSON(http.StatusOK, WatermarkResponse{LastCheck: h.InterfaceService.LastCheck()})
}
