package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"simai/infra"
	_midlleware "simai/infra/middleware"
	"simai/pkg/ticker"
)

func StartAPI(ctx context.Context, container *infra.ContainerDI) {
	e := echo.New()
	e.HideBanner = true

	go container.Hub.Run(ctx)

	feed := ticker.NewRepeater("infracoes", container.Config.PollInterval, true, container.ServiceInfractions.LoadInfractions)
	poller := ticker.NewRepeater("notificacoes", container.Config.NotificationInterval, false, container.ServiceNotifications.CheckNotifications)
	feed.Start(ctx)
	poller.Start(ctx)

	go func() {
		<-ctx.Done()
		feed.Stop()
		poller.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Printf("[API] erro ao encerrar servidor: %v", err)
		}
	}()

	e.Use(middleware.Recover())
	e.Use(_midlleware.CountRequests)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowMethods: middleware.DefaultCORSConfig.AllowMethods,
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/ws", container.WsHandler.HandleWs)

	e.GET("/painel", container.HandlerInfractions.GetPainel)
	e.PUT("/painel/busca", container.HandlerInfractions.SetSearch)
	e.POST("/painel/infracoes/carregar", container.HandlerInfractions.LoadInfractions)
	e.POST("/painel/simular", container.HandlerInfractions.SimulateInfraction)
	e.POST("/painel/falha", container.HandlerInfractions.SimulateFailure)
	e.POST("/painel/enviar", container.HandlerInfractions.Enviar)

	e.GET("/painel/notificacoes", container.HandlerNotifications.GetWatermark)
	e.POST("/painel/notificacoes/verificar", container.HandlerNotifications.CheckNow)
	e.POST("/painel/notificacoes/reset", container.HandlerNotifications.Reset)

	log.Printf("[API] %s escutando em %s, serviço em %s", container.Config.ServerName, container.Config.ServerPort, container.Config.ApiBaseURL)
	if err := e.Start(container.Config.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
