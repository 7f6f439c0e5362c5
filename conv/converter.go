package conv

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/viant/dateconv"
	"github.com/viant/dateconv/pattern"
	"github.com/viant/tagly/format"
)

// Options contains configuration for the converter
type Options struct {
	// Pattern is used to parse string sources, empty pattern uses the loose parser
	Pattern string
	// TagName is the struct tag name to look for field names
	TagName string
	// CaseSensitive controls whether field/key matching is case sensitive
	CaseSensitive bool
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		TagName:       "json",
		CaseSensitive: false,
	}
}

// Converter writes converted date values into typed destinations
type Converter struct {
	engine        *dateconv.Converter
	options       Options
	structCache   sync.Map // map[reflect.Type]*structInfo
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

// ConversionFunc defines a custom conversion function
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// NewConverter creates a converter, nil engine uses dateconv.New()
func NewConverter(engine *dateconv.Converter, options Options) *Converter {
	if engine == nil {
		engine = dateconv.New()
	}
	if options.TagName == "" {
		options.TagName = DefaultOptions().TagName
	}
	return &Converter{
		engine:  engine,
		options: options,
	}
}

// RegisterConversion registers a custom conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Convert converts the source value to the destination pointer.
// Destination element type selects the target kind, *T of a kind type is optional and null yields nil.
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src != nil {
		if fn, ok := c.customConvMap.Load(typeKey{reflect.TypeOf(src), destValue.Elem().Type()}); ok {
			return fn.(ConversionFunc)(src, dest, c.options)
		}
	}
	return c.convertValue(destValue.Elem(), src, field{pattern: c.options.Pattern})
}

// field carries per destination parsing settings
type field struct {
	pattern string
	dialect pattern.Dialect
}

func (c *Converter) convertValue(dest reflect.Value, src interface{}, meta field) error {
	destType := dest.Type()
	if kind, ok := dateconv.KindForType(destType); ok {
		return c.convertKind(dest, kind, src, meta)
	}
	switch destType.Kind() {
	case reflect.Ptr:
		return c.convertToPointer(dest, src, meta)
	case reflect.Slice:
		return c.convertToSlice(dest, src, meta)
	case reflect.String:
		return c.convertToString(dest, src, meta)
	case reflect.Struct:
		return c.convertToStruct(dest, src)
	case reflect.Interface:
		if src != nil {
			dest.Set(reflect.ValueOf(src))
		}
		return nil
	}
	return fmt.Errorf("unsupported conversion: %T to %v", src, destType)
}

func (c *Converter) convertKind(dest reflect.Value, kind dateconv.Kind, src interface{}, meta field) error {
	result, err := c.resolve(kind, src, meta)
	if err != nil {
		return err
	}
	if result == nil {
		dest.Set(reflect.Zero(dest.Type()))
		return nil
	}
	dest.Set(reflect.ValueOf(result))
	return nil
}

func (c *Converter) resolve(kind dateconv.Kind, src interface{}, meta field) (interface{}, error) {
	engine := c.engine
	if meta.dialect != c.engine.Dialect() && meta.dialect != pattern.DialectAuto {
		engine = engine.Derive(dateconv.WithDialect(meta.dialect))
	}
	switch actual := src.(type) {
	case string:
		return engine.ConvertString(actual, kind, meta.pattern)
	case *string:
		if actual == nil {
			return nil, nil
		}
		return engine.ConvertString(*actual, kind, meta.pattern)
	case []byte:
		return engine.ConvertString(string(actual), kind, meta.pattern)
	case int:
		return engine.Convert(dateconv.UnixMillis(actual), kind)
	case int64:
		return engine.Convert(dateconv.UnixMillis(actual), kind)
	case uint64:
		return engine.Convert(dateconv.UnixMillis(actual), kind)
	}
	return engine.Convert(src, kind)
}

// convertToPointer handles optional kinds, null source leaves destination nil
func (c *Converter) convertToPointer(dest reflect.Value, src interface{}, meta field) error {
	elemType := dest.Type().Elem()
	if kind, ok := dateconv.KindForType(elemType); ok {
		result, err := c.resolve(kind, src, meta)
		if err != nil {
			return err
		}
		if result == nil {
			dest.Set(reflect.Zero(dest.Type()))
			return nil
		}
		ptr := reflect.New(elemType)
		ptr.Elem().Set(reflect.ValueOf(result))
		dest.Set(ptr)
		return nil
	}
	if src == nil {
		dest.Set(reflect.Zero(dest.Type()))
		return nil
	}
	ptr := reflect.New(elemType)
	if err := c.convertValue(ptr.Elem(), src, meta); err != nil {
		return err
	}
	dest.Set(ptr)
	return nil
}

func (c *Converter) convertToSlice(dest reflect.Value, src interface{}, meta field) error {
	destType := dest.Type()
	if src == nil {
		dest.Set(reflect.Zero(destType))
		return nil
	}
	srcValue := reflect.ValueOf(src)
	if srcValue.Kind() != reflect.Slice && srcValue.Kind() != reflect.Array {
		// Convert single value to slice with one element
		sliceValue := reflect.MakeSlice(destType, 1, 1)
		if err := c.convertValue(sliceValue.Index(0), src, meta); err != nil {
			return err
		}
		dest.Set(sliceValue)
		return nil
	}
	length := srcValue.Len()
	sliceValue := reflect.MakeSlice(destType, length, length)
	for i := 0; i < length; i++ {
		if err := c.convertValue(sliceValue.Index(i), srcValue.Index(i).Interface(), meta); err != nil {
			return fmt.Errorf("error converting slice element %d: %w", i, err)
		}
	}
	dest.Set(sliceValue)
	return nil
}

func (c *Converter) convertToString(dest reflect.Value, src interface{}, meta field) error {
	switch actual := src.(type) {
	case nil:
		dest.SetString("")
		return nil
	case string:
		dest.SetString(actual)
		return nil
	}
	text, err := dateconv.Format(src)
	if err != nil {
		return err
	}
	dest.SetString(text)
	return nil
}

func (c *Converter) convertToStruct(dest reflect.Value, src interface{}) error {
	if src == nil {
		return nil
	}
	srcValue := reflect.ValueOf(src)
	if srcValue.Kind() == reflect.Ptr {
		if srcValue.IsNil() {
			return nil
		}
		srcValue = srcValue.Elem()
	}
	if srcValue.Kind() != reflect.Map || srcValue.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported conversion: %T to %v", src, dest.Type())
	}
	info := c.getStructInfo(dest.Type())
	iter := srcValue.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		target := info.lookup(key, c.options.CaseSensitive)
		if target == nil {
			continue
		}
		if err := c.convertValue(dest.FieldByIndex(target.index), iter.Value().Interface(), target.field); err != nil {
			return fmt.Errorf("error converting field %v: %w", target.name, err)
		}
	}
	return nil
}

type fieldInfo struct {
	name  string
	index []int
	field
}

type structInfo struct {
	fields  []*fieldInfo
	byName  map[string]*fieldInfo
	byLower map[string]*fieldInfo
}

func (s *structInfo) lookup(name string, caseSensitive bool) *fieldInfo {
	if ret, ok := s.byName[name]; ok {
		return ret
	}
	if caseSensitive {
		return nil
	}
	return s.byLower[strings.ToLower(name)]
}

func (c *Converter) getStructInfo(t reflect.Type) *structInfo {
	if cached, ok := c.structCache.Load(t); ok {
		return cached.(*structInfo)
	}
	info := &structInfo{byName: map[string]*fieldInfo{}, byLower: map[string]*fieldInfo{}}
	c.buildStructInfo(t, info, nil)
	actual, _ := c.structCache.LoadOrStore(t, info)
	return actual.(*structInfo)
}

func (c *Converter) buildStructInfo(t reflect.Type, info *structInfo, index []int) {
	for i := 0; i < t.NumField(); i++ {
		structField := t.Field(i)
		fieldIndex := append(append([]int{}, index...), i)
		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			if _, ok := dateconv.KindForType(structField.Type); !ok {
				c.buildStructInfo(structField.Type, info, fieldIndex)
				continue
			}
		}
		if !structField.IsExported() {
			continue
		}
		name := structField.Name
		if tagValue := structField.Tag.Get(c.options.TagName); tagValue != "" {
			tagName := strings.Split(tagValue, ",")[0]
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		meta := field{pattern: c.options.Pattern}
		if tag, err := format.Parse(structField.Tag); err == nil && tag != nil {
			if tag.Ignore {
				continue
			}
			switch {
			case tag.DateFormat != "":
				meta = field{pattern: tag.DateFormat, dialect: pattern.DialectISO}
			case tag.TimeLayout != "":
				meta = field{pattern: tag.TimeLayout, dialect: pattern.DialectGo}
			}
		}
		ret := &fieldInfo{name: name, index: fieldIndex, field: meta}
		info.fields = append(info.fields, ret)
		info.byName[name] = ret
		info.byLower[strings.ToLower(name)] = ret
	}
}
