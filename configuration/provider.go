package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// lowerPosflag implements a pflag command line provider that lower-cases all keys.
type lowerPosflag struct {
	delim   string
	flagSet *flag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a commandline flags provider that returns a nested map[string]interface{} of the
// flags where the nesting hierarchy of keys is defined by delim.
//
// Flags that were not set explicitly only contribute their default value if the key does not exist in ko yet.
func lowerPosflagProvider(flagSet *flag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *flag.Flag) {
		// If no value was explicitly set in the command line,
		// check if the default value should be used.
		if !f.Changed && p.ko != nil && p.ko.Exists(strings.ToLower(f.Name)) {
			return
		}

		var v interface{}
		switch f.Value.Type() {
		case "int":
			i, _ := p.flagSet.GetInt(f.Name)
			v = int64(i)
		case "uint8":
			i, _ := p.flagSet.GetUint8(f.Name)
			v = int64(i)
		case "bool":
			v, _ = p.flagSet.GetBool(f.Name)
		case "stringSlice":
			v, _ = p.flagSet.GetStringSlice(f.Name)
		default:
			v = f.Value.String()
		}

		mp[strings.ToLower(f.Name)] = v
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}
