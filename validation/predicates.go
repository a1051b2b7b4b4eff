package validation

import "reflect"

// IsText reports whether v would pass the TextValidator type gate.
func IsText(v any) bool {
	return classify(v).kind == textValue
}

// IsNumber reports whether v would pass the NumberValidator type gate.
func IsNumber(v any) bool {
	return classify(v).kind == numberValue
}

// IsObject reports whether v is a non-nil map or struct, or a non-nil
// pointer to one. Numeric structs such as decimal.Decimal are not objects.
func IsObject(v any) bool {
	if v == nil || IsNumber(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}
