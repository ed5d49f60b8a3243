package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/pizzatime/orderform/configuration"
)

func writeFile(t *testing.T, name string, content string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))

	return filePath
}

func TestFetchFlagset(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("A", "123", "test")
	require.NoError(t, testFlagSet.Set("A", "321"))

	config := configuration.New(testFlagSet)
	require.NoError(t, config.LoadFlagSet())

	require.EqualValues(t, "321", config.String("A"))
	require.EqualValues(t, "321", config.String("a"))
}

func TestFetchEnvVars(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("B", "322", "test")

	t.Setenv("TEST_B", "321")
	t.Setenv("TEST_C", "321")

	config := configuration.New(testFlagSet)
	require.NoError(t, config.LoadFlagSet())
	require.NoError(t, config.LoadEnvironmentVars("TEST"))

	require.EqualValues(t, "321", config.String("B"))

	_, exists := config.All()["c"]
	require.False(t, exists, "expected read config value to not exist")
}

func TestFetchJSONFile(t *testing.T) {
	filePath := writeFile(t, "config.json", `{"Form": {"Events": ["+1", "size=Large"]}, "C": 321}`)

	config := configuration.New(flag.NewFlagSet("", flag.ContinueOnError))
	require.NoError(t, config.LoadFile(filePath))

	require.EqualValues(t, 321, config.Int("C"))
	require.Equal(t, []string{"+1", "size=Large"}, config.Strings("form.events"))
}

func TestFetchYAMLFile(t *testing.T) {
	filePath := writeFile(t, "config.yaml", `
catalog:
  toppings:
    - ID: 7
      Label: Olives
    - id: 8
      label: Anchovies
`)

	config := configuration.New(flag.NewFlagSet("", flag.ContinueOnError))
	require.NoError(t, config.LoadFile(filePath))

	var toppings []struct {
		ID    uint32 `json:"id"`
		Label string `json:"label"`
	}
	require.NoError(t, config.UnmarshalKey("catalog.toppings", &toppings))
	require.Len(t, toppings, 2)
	require.EqualValues(t, 7, toppings[0].ID)
	require.Equal(t, "Olives", toppings[0].Label)
	require.EqualValues(t, 8, toppings[1].ID)
	require.Equal(t, "Anchovies", toppings[1].Label)
}

func TestLoadFileErrors(t *testing.T) {
	config := configuration.New(flag.NewFlagSet("", flag.ContinueOnError))

	require.Error(t, config.LoadFile(filepath.Join(t.TempDir(), "missing.json")))
	require.ErrorIs(t, config.LoadFile(writeFile(t, "config.toml", "a = 1")), configuration.ErrUnknownConfigFormat)
}

func TestFlagsOverrideFile(t *testing.T) {
	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	testFlagSet.String("logger.level", "info", "test")
	testFlagSet.String("logger.encoding", "console", "test")
	require.NoError(t, testFlagSet.Parse([]string{"--logger.level=debug"}))

	config := configuration.New(testFlagSet)
	require.NoError(t, config.LoadFile(writeFile(t, "config.json", `{"logger": {"level": "warn", "encoding": "json"}}`)))
	require.NoError(t, config.LoadFlagSet())

	require.Equal(t, "debug", config.String("logger.level"), "explicitly set flags should win")
	require.Equal(t, "json", config.String("logger.encoding"), "flag defaults should not override the file")
}

func TestBindParameters(t *testing.T) {
	parameters := struct {
		Level       string   `default:"info" usage:"the level"`
		Count       int      `shorthand:"c" default:"13" usage:"a count"`
		Sodas       uint8    `default:"2" usage:"sodas"`
		Verbose     bool     `usage:"verbose"`
		OutputPaths []string `default:"stdout,stderr" usage:"paths"`
		Nested      struct {
			MaxSize int `name:"maximumSize" default:"100" usage:"size"`
		}
	}{}

	testFlagSet := flag.NewFlagSet("", flag.ContinueOnError)
	config := configuration.New(testFlagSet)
	config.BindParameters("test", &parameters)

	require.Equal(t, "info", parameters.Level)
	require.Equal(t, 13, parameters.Count)
	require.Equal(t, []string{"stdout", "stderr"}, parameters.OutputPaths)
	require.NotNil(t, testFlagSet.Lookup("test.nested.maximumSize"))

	require.NoError(t, testFlagSet.Parse([]string{"-c", "5"}))
	t.Setenv("TEST_TEST_LEVEL", "debug")

	require.NoError(t, config.LoadFlagSet())
	require.NoError(t, config.LoadEnvironmentVars("TEST"))
	require.NoError(t, config.Set("test.nested.maximumSize", 250))
	require.NoError(t, config.Set("test.sodas", "4"))

	require.NoError(t, config.UpdateBoundParameters())

	require.Equal(t, "debug", parameters.Level)
	require.Equal(t, 5, parameters.Count)
	require.Equal(t, uint8(4), parameters.Sodas)
	require.False(t, parameters.Verbose)
	require.Equal(t, 250, parameters.Nested.MaxSize)
}
