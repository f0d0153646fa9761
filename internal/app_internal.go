package internal

import "github.com/rios0rios0/tarfetch/internal/domain/entities"

// AppInternal holds the subcommand controllers mounted under the root command.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
