package cmd

import (
	"go.uber.org/dig"

	"gitship/application"
	"gitship/domain"
	"gitship/infrastructure/ghcli"
	"gitship/infrastructure/gitcmd"
	"gitship/infrastructure/github"
	"gitship/infrastructure/preflight"
	"gitship/infrastructure/shell"
)

// buildContainer wires every layer into a DIG container.
func buildContainer() *dig.Container {
	container := dig.New()

	registrars := []func(*dig.Container) error{
		shell.RegisterProviders,
		ghcli.RegisterProviders,
		preflight.RegisterProviders,
		gitcmd.RegisterProviders,
		github.RegisterProviders,
		application.RegisterProviders,
	}
	for _, register := range registrars {
		if err := register(container); err != nil {
			panic(err)
		}
	}

	return container
}

// injectDeployer resolves the fully wired deployer.
func injectDeployer() *application.Deployer {
	var deployer *application.Deployer
	if err := buildContainer().Invoke(func(d *application.Deployer) {
		deployer = d
	}); err != nil {
		panic(err)
	}
	return deployer
}

// injectChecker resolves the environment checker on its own, for the
// standalone check command.
func injectChecker() domain.EnvironmentChecker {
	var checker domain.EnvironmentChecker
	if err := buildContainer().Invoke(func(c domain.EnvironmentChecker) {
		checker = c
	}); err != nil {
		panic(err)
	}
	return checker
}
