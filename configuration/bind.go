package configuration

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/ierrors"
)

// BoundParameter stores the pointer that was bound using the BindParameters function.
type BoundParameter struct {
	boundPointer interface{}
}

// BindParameters defines a flag for every field of the given struct and remembers the field so that
// UpdateBoundParameters can write the merged configuration back into it.
//
// The parameter names are determined by the names of the fields in the struct but they can be overridden by providing a
// name tag. The default value is determined by the value of the field in the struct but it can be overridden by
// providing a default tag. The usage information is determined by the usage tag of the field.
//
// Nested structs translate to parameter names in the following way: namespace.level1.parameterName
func (c *Configuration) BindParameters(namespace string, pointerToStruct interface{}) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}

		shortHand := typeField.Tag.Get("shorthand")
		usage := typeField.Tag.Get("usage")
		tagDefaultValue, hasTagDefault := typeField.Tag.Lookup("default")

		switch defaultValue := valueField.Interface().(type) {
		case bool:
			if hasTagDefault {
				defaultValue = cast.ToBool(tagDefaultValue)
			}

			c.flagSet.BoolVarP(valueField.Addr().Interface().(*bool), name, shortHand, defaultValue, usage)
		case int:
			if hasTagDefault {
				defaultValue = cast.ToInt(tagDefaultValue)
			}

			c.flagSet.IntVarP(valueField.Addr().Interface().(*int), name, shortHand, defaultValue, usage)
		case uint8:
			if hasTagDefault {
				defaultValue = cast.ToUint8(tagDefaultValue)
			}

			c.flagSet.Uint8VarP(valueField.Addr().Interface().(*uint8), name, shortHand, defaultValue, usage)
		case string:
			if hasTagDefault {
				defaultValue = tagDefaultValue
			}

			c.flagSet.StringVarP(valueField.Addr().Interface().(*string), name, shortHand, defaultValue, usage)
		case []string:
			if hasTagDefault {
				defaultValue = strings.Split(tagDefaultValue, ",")
			}

			c.flagSet.StringSliceVarP(valueField.Addr().Interface().(*[]string), name, shortHand, defaultValue, usage)
		default:
			if valueField.Kind() != reflect.Struct {
				panic(fmt.Sprintf("unsupported parameter type %s for %s", valueField.Type(), name))
			}

			c.BindParameters(name, valueField.Addr().Interface())

			continue
		}

		c.boundParameters[strings.ToLower(name)] = &BoundParameter{
			boundPointer: valueField.Addr().Interface(),
		}
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() error {
	for parameterName, boundParameter := range c.boundParameters {
		if !c.Exists(parameterName) {
			continue
		}

		value := c.Get(parameterName)

		var err error
		switch boundPointer := boundParameter.boundPointer.(type) {
		case *bool:
			*boundPointer, err = cast.ToBoolE(value)
		case *int:
			*boundPointer, err = cast.ToIntE(value)
		case *uint8:
			*boundPointer, err = cast.ToUint8E(value)
		case *string:
			*boundPointer, err = cast.ToStringE(value)
		case *[]string:
			*boundPointer, err = cast.ToStringSliceE(value)
		}

		if err != nil {
			return ierrors.Wrapf(err, "invalid value for parameter %s", parameterName)
		}
	}

	return nil
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
