package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewFetchCommand); err != nil {
		return err
	}
	if err := container.Provide(NewSubmodulesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewManifestCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *FetchCommand) Fetch {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *SubmodulesCommand) Submodules {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ManifestCommand) Manifest {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
