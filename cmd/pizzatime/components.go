package main

import (
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/pizzatime/orderform/configuration"
	"github.com/pizzatime/orderform/logger"
	"github.com/pizzatime/orderform/order"
)

type dependencies struct {
	dig.In

	Config     *configuration.Configuration
	Logger     *logger.Logger
	Form       *order.Form
	FormParams *ParametersForm
}

// provide registers all components of the application in the container.
func provide(container *dig.Container, config *configuration.Configuration, loggerParams *logger.Config, formParams *ParametersForm) error {
	if err := container.Provide(func() *configuration.Configuration { return config }); err != nil {
		return err
	}

	if err := container.Provide(func() *ParametersForm { return formParams }); err != nil {
		return err
	}

	if err := container.Provide(func() (*logger.Logger, error) {
		return logger.NewRootLogger(*loggerParams)
	}); err != nil {
		return err
	}

	if err := container.Provide(newCatalog); err != nil {
		return err
	}

	return container.Provide(order.NewForm)
}

// newCatalog creates the catalog from the configured toppings or falls back to the default toppings.
func newCatalog(config *configuration.Configuration, log *logger.Logger) (*order.Catalog, error) {
	if !config.Exists(ConfigurationKeyCatalogToppings) {
		return order.DefaultCatalog(), nil
	}

	var toppings []order.Topping
	if err := config.UnmarshalKey(ConfigurationKeyCatalogToppings, &toppings); err != nil {
		return nil, err
	}

	if len(toppings) == 0 {
		return nil, ierrors.Errorf("config key %s must contain at least one topping", ConfigurationKeyCatalogToppings)
	}

	catalog := order.NewCatalog(toppings...)
	if catalog.Size() != len(toppings) {
		log.Warnf("ignored %d toppings with duplicate IDs", len(toppings)-catalog.Size())
	}

	return catalog, nil
}
