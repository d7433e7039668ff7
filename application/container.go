package application

import (
	"go.uber.org/dig"
)

// RegisterProviders registers the deployer with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(NewDeployer)
}
