package usecase

import (
	"sync"
	"sync/atomic"

	"github.com/DRSN-tech/inventory/pkg/logger"
)

// RegistryProvider выдает единственный реестр в пределах своей области видимости
// (процесса или теста). Реестр создается лениво при первом обращении.
type RegistryProvider struct {
	once        sync.Once
	initialized atomic.Bool
	registry    *InventoryRegistry
	logger      logger.Logger
}

func NewRegistryProvider(logger logger.Logger) *RegistryProvider {
	return &RegistryProvider{logger: logger}
}

// Instance возвращает один и тот же реестр при каждом вызове.
func (p *RegistryProvider) Instance() *InventoryRegistry {
	p.once.Do(func() {
		p.registry = NewInventoryRegistry(p.logger)
		p.initialized.Store(true)
		p.logger.Debugf("inventory registry initialized")
	})

	return p.registry
}

// Initialized сообщает, создавался ли уже реестр.
func (p *RegistryProvider) Initialized() bool {
	return p.initialized.Load()
}
