package main

// ParametersForm contains the definition of the parameters used by the order form.
type ParametersForm struct {
	// Events are applied to the form before the events given on the command line.
	Events []string `usage:"events that are applied before the ones given as arguments"`
	// PrintEncoded prints the serialized form of the selected toppings.
	PrintEncoded bool `default:"false" usage:"print the hex encoded list of selected toppings"`
}

const (
	// ConfigurationKeyCatalogToppings is the key of the list of toppings the form offers.
	ConfigurationKeyCatalogToppings = "catalog.toppings"

	// EnvironmentPrefix is the prefix of environment variables that override configuration values.
	EnvironmentPrefix = "PIZZATIME"
)
