package di

import (
	"go.uber.org/zap"

	"shopping-backend/application/ports"
	"shopping-backend/application/services"
	"shopping-backend/infrastructure/config"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	ItemRepo    ports.ItemRepository
	Publisher   ports.NotificationPublisher
	PhotoStore  ports.PhotoStore
	ItemService *services.ItemService
}
