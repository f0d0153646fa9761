package main

import (
	"github.com/rios0rios0/tarfetch/internal"
	"github.com/rios0rios0/tarfetch/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectFetchController() *controllers.FetchController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var fetchController *controllers.FetchController
	if err := container.Invoke(func(fc *controllers.FetchController) {
		fetchController = fc
	}); err != nil {
		panic(err)
	}

	return fetchController
}
