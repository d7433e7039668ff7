package gitcmd

import (
	"go.uber.org/dig"

	"gitship/domain"
)

// RegisterProviders registers the git pusher with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewPusher); err != nil {
		return err
	}
	return container.Provide(func(impl *Pusher) domain.Pusher {
		return impl
	})
}
