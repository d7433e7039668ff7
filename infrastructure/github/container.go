package github

import (
	"go.uber.org/dig"

	"gitship/domain"
)

// RegisterProviders registers the API client factory with the DIG
// container. A factory (not an instance) is provided because the token
// only exists after preflight has passed.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() domain.APIFactory {
		return NewClient
	})
}
