package shell

import (
	"go.uber.org/dig"

	"gitship/domain"
)

// RegisterProviders registers the shell runner with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewRunner); err != nil {
		return err
	}
	return container.Provide(func(impl *Runner) domain.Runner {
		return impl
	})
}
