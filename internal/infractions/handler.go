package infractions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"simai/internal/page"
)

type Handler struct {
	InterfaceService InterfaceService
	Page             *page.Page
}

func NewInfractionsHandler(InterfaceService InterfaceService, p *page.Page) *Handler {
	return &Handler{InterfaceService, p}
}

func (h *Handler) GetPainel(e echo.Context) error {
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}

func (h *Handler) LoadInfractions(e echo.Context) error {
	h.InterfaceService.LoadInfractions(e.Request().Context())
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}

func (h *Handler) SimulateInfraction(e echo.Context) error {
	h.InterfaceService.SimulateInfraction(e.Request().Context())
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}

func (h *Handler) SimulateFailure(e echo.Context) error {
	h.InterfaceService.SimulateFailure(e.Request().Context())
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}

// Enviar fills the form fields from the body and submits them, as typing
// into the form and pressing the button does.
func (h *Handler) Enviar(e echo.Context) error {
	var request page.Form
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	h.Page.SetForm(request)
	h.InterfaceService.Enviar(e.Request().Context())
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}

// SetSearch updates the search field. The list is filtered with it on the
// next load.
func (h *Handler) SetSearch(e echo.Context) error {
	var request SearchRequest
	if err := e.Bind(&request); err != nil {
		return e.JSON(http.StatusBadRequest, err.Error())
	}

	h.Page.SetSearch(request.Placa)
	return e.JSON(http.StatusOK, h.Page.Snapshot())
}
