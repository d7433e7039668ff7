package preflight

import (
	"go.uber.org/dig"

	"gitship/domain"
)

// RegisterProviders registers the preflight checker with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewChecker); err != nil {
		return err
	}
	return container.Provide(func(impl *Checker) domain.EnvironmentChecker {
		return impl
	})
}
