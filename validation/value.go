package validation

import (
	"encoding/json"
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

type valueKind uint8

const (
	illTyped valueKind = iota
	textValue
	numberValue
)

// input is the held value, classified once at construction.
type input struct {
	kind  valueKind
	text  string
	num   number
	falsy bool
}

// number keeps finite values as exact decimals. NaN and infinities only
// exist as floats.
type number struct {
	dec    decimal.Decimal
	float  float64
	finite bool
}

func finiteNumber(d decimal.Decimal) number {
	return number{dec: d, float: d.InexactFloat64(), finite: true}
}

func floatNumber(f float64, bits int) number {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return number{float: f}
	}
	if bits == 32 {
		return finiteNumber(decimal.NewFromFloat32(float32(f)))
	}
	return finiteNumber(decimal.NewFromFloat(f))
}

// greaterThan reports whether n > bound. Comparisons involving NaN are false.
func (n number) greaterThan(bound float64) bool {
	if !n.finite || math.IsNaN(bound) || math.IsInf(bound, 0) {
		return n.float > bound
	}
	return n.dec.GreaterThan(decimal.NewFromFloat(bound))
}

func (n number) isInteger() bool {
	return n.finite && n.dec.IsInteger()
}

func (n number) isZeroOrNaN() bool {
	if !n.finite {
		return math.IsNaN(n.float)
	}
	return n.dec.IsZero()
}

func numberInput(n number) input {
	return input{kind: numberValue, num: n, falsy: n.isZeroOrNaN()}
}

func classify(v any) input {
	switch x := v.(type) {
	case nil:
		return input{kind: illTyped, falsy: true}
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return input{kind: illTyped, falsy: x == ""}
		}
		return numberInput(finiteNumber(d))
	case decimal.Decimal:
		return numberInput(finiteNumber(x))
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		s := rv.String()
		return input{kind: textValue, text: s, falsy: s == ""}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numberInput(finiteNumber(decimal.NewFromInt(rv.Int())))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numberInput(finiteNumber(decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)))
	case reflect.Float32:
		return numberInput(floatNumber(rv.Float(), 32))
	case reflect.Float64:
		return numberInput(floatNumber(rv.Float(), 64))
	case reflect.Bool:
		return input{kind: illTyped, falsy: !rv.Bool()}
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return input{kind: illTyped, falsy: rv.IsNil()}
	default:
		return input{kind: illTyped}
	}
}
