// pizzatime fills out a pizza order form from a sequence of events and prints the result.
//
// Usage:
//
//	pizzatime [flags] -- <event>...
//
// Events are "size=<Small|Medium|Large>", "size=", "+<topping>", "-<topping>", "~<topping>", "sodas=<n>" and
// "sodas=". Use "--" in front of the events so that unchecking a topping is not mistaken for a flag.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/dig"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/pizzatime/orderform/configuration"
	"github.com/pizzatime/orderform/logger"
	"github.com/pizzatime/orderform/order"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := configuration.NewUnsortedFlagSet("pizzatime", flag.ContinueOnError)
	configFilePath := flagSet.String("config", "", "path to a JSON or YAML config file")

	config := configuration.New(flagSet)

	loggerParams := logger.DefaultCfg
	config.BindParameters("logger", &loggerParams)

	formParams := &ParametersForm{}
	config.BindParameters("form", formParams)

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if err := loadConfiguration(config, *configFilePath); err != nil {
		return err
	}

	container := dig.New(dig.DeferAcyclicVerification())
	if err := provide(container, config, &loggerParams, formParams); err != nil {
		return ierrors.Wrap(err, "failed to provide components")
	}

	return container.Invoke(func(deps dependencies) error {
		defer func() { _ = deps.Logger.Sync() }()

		return fillOut(deps, append(lo.CopySlice(deps.FormParams.Events), flagSet.Args()...), out)
	})
}

// loadConfiguration merges the config file, the environment and the command line flags (in increasing priority).
func loadConfiguration(config *configuration.Configuration, configFilePath string) error {
	if configFilePath != "" {
		if err := config.LoadFile(configFilePath); err != nil {
			return err
		}
	}

	// load the flag defaults first, environment variables are only accepted for known keys
	if err := config.LoadFlagSet(); err != nil {
		return ierrors.Wrap(err, "failed to load flags")
	}

	if err := config.LoadEnvironmentVars(EnvironmentPrefix); err != nil {
		return ierrors.Wrap(err, "failed to load environment variables")
	}

	// load the flags again to overwrite env vars that were also set via command line
	if err := config.LoadFlagSet(); err != nil {
		return ierrors.Wrap(err, "failed to load flags")
	}

	return config.UpdateBoundParameters()
}

func fillOut(deps dependencies, rawEvents []string, out io.Writer) error {
	events := make([]order.Event, 0, len(rawEvents))
	for _, rawEvent := range rawEvents {
		event, err := order.ParseEvent(rawEvent)
		if err != nil {
			return err
		}

		events = append(events, event)
	}

	if err := deps.Form.ApplyAll(events...); err != nil {
		return err
	}

	deps.Logger.Infof("applied %d events", len(events))

	if err := deps.Form.Render(out); err != nil {
		return err
	}

	if !deps.FormParams.PrintEncoded {
		return nil
	}

	toppings, set := deps.Form.Selection().Toppings()
	if !set {
		_, err := fmt.Fprintln(out, "\nencoded toppings: -")

		return err
	}

	encoded, err := toppings.Encode()
	if err != nil {
		return ierrors.Wrap(err, "failed to encode toppings")
	}

	_, err = fmt.Fprintf(out, "\nencoded toppings: %s\n", hex.EncodeToString(encoded))

	return err
}
