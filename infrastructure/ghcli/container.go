package ghcli

import (
	"go.uber.org/dig"

	"gitship/domain"
)

// RegisterProviders registers the gh CLI wrapper with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(New); err != nil {
		return err
	}
	return container.Provide(func(impl *CLI) domain.TokenSource {
		return impl
	})
}
