package validation

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNumberValidatorNoConstraintsReturnsNil(t *testing.T) {
	if res := NewNumber(5).Validate(); res != nil {
		t.Errorf("expected nil result, got %v", res.Errors)
	}
	// the nil sentinel is still usable
	res := NewNumber(5).Validate()
	if !res.Valid() || res.Err() != nil {
		t.Error("nil result must be valid")
	}
}

func TestNumberValidatorNumberCheck(t *testing.T) {
	res := NewNumber("5").Number().Validate()
	if res == nil {
		t.Fatal("expected a result")
	}
	want := []Violation{{Kind: KindBase, Reference: RefNumberType, Message: "value must be a number"}}
	if !reflect.DeepEqual(res.Errors, want) {
		t.Errorf("got %v, want %v", res.Errors, want)
	}

	for _, in := range []any{5, int8(-1), uint64(math.MaxUint64), 2.5, float32(1.5), json.Number("12.5"), decimal.RequireFromString("3.14"), math.NaN(), math.Inf(1)} {
		if res := NewNumber(in).Number().Validate(); res != nil {
			t.Errorf("NewNumber(%#v).Number() should pass, got %v", in, res.Errors)
		}
	}

	for _, in := range []any{nil, "5", true, []int{1}, json.Number("abc"), complex(1, 2)} {
		if res := NewNumber(in).Number().Validate(); !res.Has(KindBase) {
			t.Errorf("NewNumber(%#v).Number() should fail", in)
		}
	}
}

// Min fires when the value is greater than the bound. This is the observed
// behavior and is pinned here as known-suspicious.
func TestNumberValidatorMinInvertedDirection(t *testing.T) {
	tests := []struct {
		name  string
		value any
		min   float64
		fail  bool
	}{
		{"value above bound fires", 10, 5, true},
		{"value below bound passes", 3, 5, false},
		{"value equal to bound passes", 5, 5, false},
		{"fraction above bound fires", 5.5, 5, true},
		{"large uint above bound fires", uint64(math.MaxUint64), 1e18, true},
		{"NaN never fires", math.NaN(), 0, false},
		{"+Inf fires", math.Inf(1), 1e300, true},
		{"NaN bound never fires", 10, math.NaN(), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := NewNumber(tc.value).Min(tc.min).Validate()
			if tc.fail != res.Has(KindMin) {
				t.Fatalf("Min(%v) on %v: fail=%v, got %v", tc.min, tc.value, tc.fail, res)
			}
		})
	}

	res := NewNumber(234.5).Min(234).Validate()
	want := Violation{Kind: KindMin, Reference: RefNumberMin, Message: "value must be at least 234"}
	if res.Errors[0] != want {
		t.Errorf("got %+v, want %+v", res.Errors[0], want)
	}
}

// Max reports under the min-family reference name. Pinned as known-suspicious.
func TestNumberValidatorMaxReusesMinReference(t *testing.T) {
	res := NewNumber(11).Max(10).Validate()
	if res == nil {
		t.Fatal("expected a max violation")
	}
	want := Violation{Kind: KindMax, Reference: RefNumberMin, Message: "value must be > to 10"}
	if res.Errors[0] != want {
		t.Errorf("got %+v, want %+v", res.Errors[0], want)
	}

	if res := NewNumber(10).Max(10).Validate(); res != nil {
		t.Errorf("equal to max should pass, got %v", res.Errors)
	}
	if res := NewNumber(-1).Max(0.5).Validate(); res != nil {
		t.Errorf("below max should pass, got %v", res.Errors)
	}
}

func TestNumberValidatorBoundFormatting(t *testing.T) {
	tests := []struct {
		bound float64
		want  string
	}{
		{1000000, "value must be > to 1000000"},
		{2.5, "value must be > to 2.5"},
		{-3, "value must be > to -3"},
	}
	for _, tc := range tests {
		res := NewNumber(1e9).Max(tc.bound).Validate()
		if res.Errors[0].Message != tc.want {
			t.Errorf("Max(%v): got %q, want %q", tc.bound, res.Errors[0].Message, tc.want)
		}
	}
}

func TestNumberValidatorGatedOnType(t *testing.T) {
	if res := NewNumber("abc").Min(1).Max(0).Integer().Decimal().Validate(); res != nil {
		t.Errorf("range checks must be no-ops on non-numbers, got %v", res.Errors)
	}
}

func TestNumberValidatorRequired(t *testing.T) {
	tests := []struct {
		name  string
		value any
		fail  bool
	}{
		{"zero int", 0, true},
		{"zero float", 0.0, true},
		{"NaN", math.NaN(), true},
		{"nil", nil, true},
		{"empty string", "", true},
		{"false", false, true},
		{"nil pointer", (*int)(nil), true},
		{"positive", 1, false},
		{"negative", -0.1, false},
		{"non-empty string", "x", false},
		{"decimal zero", decimal.Zero, true},
		{"json zero", json.Number("0.00"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := NewNumber(tc.value).Required().Validate()
			if tc.fail != res.Has(KindRequired) {
				t.Fatalf("Required() on %#v: fail=%v, got %v", tc.value, tc.fail, res)
			}
			if tc.fail && res.Errors[0].Reference != RefNumberRequired {
				t.Errorf("unexpected reference %s", res.Errors[0].Reference)
			}
		})
	}
}

func TestNumberValidatorRequiredRunsAfterFailedType(t *testing.T) {
	res := NewNumber(nil).Number().Min(234).Required().Validate()
	want := []Kind{KindBase, KindRequired}
	if !reflect.DeepEqual(kinds(res), want) {
		t.Errorf("got %v, want %v", kinds(res), want)
	}

	res = NewNumber(map[string]string{"dsa": "sd"}).Number().Min(234).Required().Validate()
	if !reflect.DeepEqual(kinds(res), []Kind{KindBase}) {
		t.Errorf("non-empty map is truthy, got %v", kinds(res))
	}
}

func TestNumberValidatorNumberNotDeduplicated(t *testing.T) {
	res := NewNumber("x").Number().Number().Validate()
	if len(res.Errors) != 2 {
		t.Errorf("expected two base violations, got %v", res.Errors)
	}
}

func TestNumberValidatorIntegerAndDecimal(t *testing.T) {
	tests := []struct {
		name        string
		value       any
		integerFail bool
		decimalFail bool
	}{
		{"int", 4, false, true},
		{"whole float", 4.0, false, true},
		{"fraction", 4.25, true, false},
		{"json fraction", json.Number("1.10"), true, false},
		{"decimal whole", decimal.RequireFromString("10.000"), false, true},
		{"NaN", math.NaN(), true, false},
		{"-Inf", math.Inf(-1), true, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := NewNumber(tc.value).Integer().Validate()
			if tc.integerFail != res.Has(KindInteger) {
				t.Errorf("Integer(): fail=%v, got %v", tc.integerFail, res)
			}
			res = NewNumber(tc.value).Decimal().Validate()
			if tc.decimalFail != res.Has(KindDecimal) {
				t.Errorf("Decimal(): fail=%v, got %v", tc.decimalFail, res)
			}
		})
	}

	res := NewNumber(1.5).Integer().Validate()
	want := Violation{Kind: KindInteger, Reference: RefNumberInteger, Message: "value must be an integer"}
	if res.Errors[0] != want {
		t.Errorf("got %+v, want %+v", res.Errors[0], want)
	}
	res = NewNumber(2).Decimal().Validate()
	want = Violation{Kind: KindDecimal, Reference: RefNumberDecimal, Message: "value must be a decimal"}
	if res.Errors[0] != want {
		t.Errorf("got %+v, want %+v", res.Errors[0], want)
	}
}

func TestNumberValidatorChaining(t *testing.T) {
	v := NewNumber(3)
	if v.Number().Min(10).Max(1).Integer().Decimal().Required() != v {
		t.Error("expected chaining to return same validator")
	}
}

func TestNumberValidatorValidateIdempotent(t *testing.T) {
	v := NewNumber("5").Number().Required()
	if !reflect.DeepEqual(v.Validate(), v.Validate()) {
		t.Error("expected equal results")
	}

	clean := NewNumber(1).Number()
	if clean.Validate() != nil || clean.Validate() != nil {
		t.Error("expected nil on every call")
	}
}
