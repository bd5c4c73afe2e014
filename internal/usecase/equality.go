package usecase

import "reflect"

// EqualDocuments сравнивает два документа по значению: карты без учёта
// порядка ключей, последовательности поэлементно, числа независимо от
// конкретного числового типа. Используется мутациями для пропуска
// холостых обновлений.
func EqualDocuments(a, b any) bool {
	return equalValues(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equalValues(av, bv reflect.Value) bool {
	av = indirect(av)
	bv = indirect(bv)

	if !av.IsValid() || !bv.IsValid() {
		return av.IsValid() == bv.IsValid()
	}

	if isNumeric(av) && isNumeric(bv) {
		return toFloat(av) == toFloat(bv)
	}

	if av.Kind() != bv.Kind() {
		return false
	}

	switch av.Kind() {
	case reflect.String:
		return av.String() == bv.String()

	case reflect.Bool:
		return av.Bool() == bv.Bool()

	case reflect.Slice, reflect.Array:
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !equalValues(av.Index(i), bv.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if av.Len() != bv.Len() {
			return false
		}
		for _, key := range av.MapKeys() {
			bval := bv.MapIndex(key)
			if !bval.IsValid() {
				return false
			}
			if !equalValues(av.MapIndex(key), bval) {
				return false
			}
		}
		return true

	case reflect.Struct:
		if av.Type() != bv.Type() {
			return false
		}
		for i := 0; i < av.NumField(); i++ {
			if !av.Type().Field(i).IsExported() {
				continue
			}
			if !equalValues(av.Field(i), bv.Field(i)) {
				return false
			}
		}
		return true

	default:
		return reflect.DeepEqual(av.Interface(), bv.Interface())
	}
}

// indirect раскрывает указатели и интерфейсы до значения;
// nil даёт невалидный reflect.Value.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

func isNumeric(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
