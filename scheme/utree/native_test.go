// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"jsouthworth.net/go/try"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		val  interface{}
		str  string
	}{
		{"nil", Nothing, nil, "nil"},
		{"nil *UTree", Nothing, (*UTree)(nil), "nil"},
		{"*UTree", Int, IntValue(5), "5"},
		{"bool", Bool, true, "true"},
		{"int", Int, int(-1), "-1"},
		{"int8", Int, int8(-8), "-8"},
		{"int16", Int, int16(16), "16"},
		{"int32", Int, int32(32), "32"},
		{"int64", Int, int64(math.MinInt64), "-9223372036854775808"},
		{"uint", Int, uint(7), "7"},
		{"uint8", Int, uint8(8), "8"},
		{"uint16", Int, uint16(16), "16"},
		{"uint32", Int, uint32(math.MaxUint32), "4294967295"},
		{"uint64", Int, uint64(math.MaxInt64), "9223372036854775807"},
		{"float32", Double, float32(0.5), "0.5"},
		{"float64", Double, 123.456, "123.456"},
		{"string", Text, "Chuckie", `"Chuckie"`},
		{"[]byte", Text, []byte("Mah Doggie"), `"Mah Doggie"`},
		{"[]interface{}", List, []interface{}{123, "Chuckie",
			[]interface{}{123.456, "Mah Doggie"}},
			`(123,"Chuckie",(123.456,"Mah Doggie"))`},
		{"[]interface{}{}", List, []interface{}{}, "()"},
		{"[]string", List, []string{"a", "b"}, `("a","b")`},
		{"[2]int", List, [2]int{1, 2}, "(1,2)"},
		{"[][]float64", List, [][]float64{{1.5}, {}}, "((1.5),())"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			v, err := From(test.val)
			if err != nil {
				t.Fatal(err)
			}
			assert(v.Kind() == test.kind, func() {
				t.Fatalf("expected %v, got %v", test.kind, v.Kind())
			})
			assert(v.String() == test.str, func() {
				t.Fatalf("expected %s, got %s", test.str, v)
			})
		})
	}
}

func TestFromCopies(t *testing.T) {
	src := ints(1, 2)
	v, _ := From(src)
	src.PushBack(IntValue(3))
	assert(v.Equal(ints(1, 2)), func() {
		t.Fatalf("From shares storage with its source: %v", v)
	})
	b := []byte("abc")
	v, _ = From(b)
	b[0] = 'x'
	assert(v.Equal(TextValue("abc")), func() {
		t.Fatalf("From shares the byte slice: %v", v)
	})
}

func TestFromInvalid(t *testing.T) {
	cases := []struct {
		name string
		val  interface{}
	}{
		{"uint64 overflow", uint64(math.MaxUint64)},
		{"map", map[string]interface{}{}},
		{"struct", struct{}{}},
		{"complex", complex(1, 2)},
		{"pointer", new(int)},
		{"nested", []interface{}{1, map[int]int{}}},
		{"func", func() {}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := From(test.val)
			assert(errors.Is(err, ErrInvalidArgument), func() {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			})
		})
	}
}

func TestMustFrom(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		v := MustFrom([]interface{}{1, "two", 3.0})
		assert(v.Equal(ListValue(IntValue(1), TextValue("two"),
			DoubleValue(3.0))), func() { t.Fatalf("got %v", v) })
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := try.Apply(MustFrom, complex(1, 2))
		if err == nil {
			t.Fatal("conversion should have failed")
		}
	})
}

func TestToNative(t *testing.T) {
	cases := []struct {
		name string
		val  *UTree
		exp  interface{}
	}{
		{"nothing", New(), nil},
		{"bool", BoolValue(true), true},
		{"int", IntValue(123), int64(123)},
		{"double", DoubleValue(123.456), 123.456},
		{"text", TextValue("Chuckie"), "Chuckie"},
		{"list", ListValue(IntValue(123), TextValue("Chuckie"),
			ListValue(DoubleValue(123.456), New())),
			[]interface{}{int64(123), "Chuckie",
				[]interface{}{123.456, nil}}},
		{"empty list", ListValue(), []interface{}{}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			got := test.val.ToNative()
			if !reflect.DeepEqual(got, test.exp) {
				t.Fatalf("expected %#v, got %#v", test.exp, got)
			}
			back, err := From(got)
			if err != nil {
				t.Fatal(err)
			}
			assert(back.Equal(test.val), func() {
				t.Fatalf("expected %v after From, got %v", test.val, back)
			})
		})
	}
}
