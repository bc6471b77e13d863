package infra

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"

	"simai/internal/infractions"
	"simai/internal/notifications"
	"simai/internal/page"
	"simai/internal/ws"
	"simai/pkg"
	"simai/pkg/simai"
)

type ContainerDI struct {
	Config                  Config
	Client                  *simai.Client
	Redis                   *redis.Client
	Page                    *page.Page
	View                    *page.View
	Hub                     *ws.Hub
	Alerter                 notifications.Alerter
	RepositoryInfractions   *infractions.Repository
	ServiceInfractions      *infractions.Service
	HandlerInfractions      *infractions.Handler
	RepositoryNotifications *notifications.Repository
	ServiceNotifications    *notifications.Service
	HandlerNotifications    *notifications.Handler
	WsHandler               *ws.Handler
}

func NewContainerDI(ctx context.Context, config Config) *ContainerDI {
	container := &ContainerDI{Config: config}
	container.buildPkg(ctx)
	container.buildRepository()
	container.buildService()
	container.buildHandler()
	return container
}

func (c *ContainerDI) buildPkg(ctx context.Context) {
	c.Client = simai.NewClient(c.Config.ApiBaseURL, c.Config.HttpTimeout)

	c.Page = page.New(c.Config.SearchPlate)
	c.View = page.NewView(os.Stdout)
	c.Page.Subscribe(c.View.Render)

	c.Hub = ws.NewHub(c.Page)
	c.Page.Subscribe(c.Hub.PublishSnapshot)

	alerters := notifications.MultiAlerter{
		notifications.NewTerminalAlerter(os.Stdout),
		c.Hub,
	}
	if c.Config.RedisUrl != "" {
		rdb, err := pkg.NewRedis(ctx, c.Config.RedisUrl)
		if err != nil {
			log.Printf("[REDIS] %v; alertas não serão publicados", err)
		} else {
			c.Redis = rdb
			alerters = append(alerters, notifications.NewRedisPublisher(rdb, c.Config.RedisAlertChannel))
		}
	}
	c.Alerter = alerters
}

func (c *ContainerDI) buildRepository() {
	c.RepositoryInfractions = infractions.NewInfractionsRepository(c.Client)
	c.RepositoryNotifications = notifications.NewNotificationsRepository(c.Client)
}

func (c *ContainerDI) buildService() {
	c.ServiceInfractions = infractions.NewInfractionsService(c.RepositoryInfractions, c.Page)
	c.ServiceNotifications = notifications.NewNotificationsService(c.RepositoryNotifications, c.Alerter)
}

func (c *ContainerDI) buildHandler() {
	c.HandlerInfractions = infractions.NewInfractionsHandler(c.ServiceInfractions, c.Page)
	c.HandlerNotifications = notifications.NewNotificationsHandler(c.ServiceNotifications)
	c.WsHandler = ws.NewWsHandler(c.Hub)
}

// Close releases connections opened by the container.
func (c *ContainerDI) Close() {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("[REDIS] erro ao fechar conexão: %v", err)
		}
	}
}
