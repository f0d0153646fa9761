package controllers

import (
	"github.com/rios0rios0/tarfetch/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewFetchController); err != nil {
		return err
	}
	if err := container.Provide(NewManifestController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The fetch controller is the root command and is not listed.
func NewControllers(
	manifestController *ManifestController,
) *[]entities.Controller {
	return &[]entities.Controller{
		manifestController,
	}
}
