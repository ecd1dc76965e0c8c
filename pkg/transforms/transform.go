package transforms

import (
	"reflect"
)

// TransformDefinition fills in fields on values of Type whose fields equal every Match
// entry. Fields already carrying a value are left alone.
type TransformDefinition struct {
	Type  string
	Match map[string]string
	Data  map[string]interface{}
}

func (t *TransformDefinition) Transform(inputValue reflect.Value) {
	if !inputValue.IsValid() || inputValue.Type().String() != t.Type {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || field.Kind() != reflect.String || field.String() != value {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || !field.CanSet() || !field.IsZero() {
			continue
		}

		data := reflect.ValueOf(value)
		if data.Type().AssignableTo(field.Type()) {
			field.Set(data)
		}
	}
}

// Transform applies every registered definition to input and everything reachable from
// it. Only values reached through a pointer or slice can be changed.
func Transform(input interface{}) {
	walk(reflect.ValueOf(input))
}

func walk(value reflect.Value) {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !value.IsNil() {
			walk(value.Elem())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			walk(value.Index(i))
		}
	case reflect.Struct:
		if value.CanSet() {
			for _, transformDef := range transforms {
				transformDef.Transform(value)
			}
		}

		for i := 0; i < value.NumField(); i++ {
			if value.Type().Field(i).IsExported() {
				walk(value.Field(i))
			}
		}
	}
}
