package dateconv

import (
	"fmt"
	"reflect"
)

// To converts value to the kind represented by T, null yields zero T
func To[T any](c *Converter, value any) (T, error) {
	var zero T
	target, err := kindFor[T](typeName(value))
	if err != nil {
		return zero, err
	}
	converted, err := c.Convert(value, target)
	if err != nil || converted == nil {
		return zero, err
	}
	return converted.(T), nil
}

// Parse parses text with pattern into the kind represented by T, null yields zero T
func Parse[T any](c *Converter, text string, pattern string) (T, error) {
	var zero T
	target, err := kindFor[T]("string")
	if err != nil {
		return zero, err
	}
	converted, err := c.ConvertString(text, target, pattern)
	if err != nil || converted == nil {
		return zero, err
	}
	return converted.(T), nil
}

func kindFor[T any](source string) (Kind, error) {
	rType := reflect.TypeFor[T]()
	target, ok := KindForType(rType)
	if !ok {
		return KindInvalid, unsupported(source, KindInvalid, fmt.Sprintf("type %v is not registered", rType))
	}
	return target, nil
}
