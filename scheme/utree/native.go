// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"math"
	"reflect"
)

// From turns a native go value into a UTree. nil becomes Nothing, bool
// becomes Bool, every integer type becomes Int as long as the value fits
// in an int64, float32 and float64 become Double, string and []byte
// become Text, and any other slice or array becomes a List of its
// converted elements. A *UTree is copied. All other types fail with
// ErrInvalidArgument.
func From(data interface{}) (*UTree, error) {
	switch d := data.(type) {
	case nil:
		return New(), nil
	case *UTree:
		return d.Copy(), nil
	case bool:
		return BoolValue(d), nil
	case int:
		return IntValue(int64(d)), nil
	case int8:
		return IntValue(int64(d)), nil
	case int16:
		return IntValue(int64(d)), nil
	case int32:
		return IntValue(int64(d)), nil
	case int64:
		return IntValue(d), nil
	case uint8:
		return IntValue(int64(d)), nil
	case uint16:
		return IntValue(int64(d)), nil
	case uint32:
		return IntValue(int64(d)), nil
	case uint:
		return fromUint(uint64(d))
	case uint64:
		return fromUint(d)
	case float32:
		return DoubleValue(float64(d)), nil
	case float64:
		return DoubleValue(d), nil
	case string:
		return TextValue(d), nil
	case []byte:
		return TextBytes(d), nil
	case []interface{}:
		out := ListValue()
		for _, elem := range d {
			v, err := From(elem)
			if err != nil {
				return nil, err
			}
			out.list.pushBack(*v)
		}
		return out, nil
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := ListValue()
		for i := 0; i < rv.Len(); i++ {
			v, err := From(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out.list.pushBack(*v)
		}
		return out, nil
	}
	return nil, errInvalid("From", "cannot create a utree from %T", data)
}

func fromUint(u uint64) (*UTree, error) {
	if u > math.MaxInt64 {
		return nil, errInvalid("From", "%d overflows int64", u)
	}
	return IntValue(int64(u)), nil
}

// MustFrom is like From but panics if the value cannot be converted.
func MustFrom(data interface{}) *UTree {
	t, err := From(data)
	if err != nil {
		panic(err)
	}
	return t
}

// ToNative converts t to a go native value: nil, bool, int64, float64,
// string or, for a List, a []interface{} of converted elements.
func (t *UTree) ToNative() interface{} {
	if t.Kind() != List {
		return t.payload()
	}
	out := make([]interface{}, 0, t.list.len)
	for n := t.list.first(); n != &t.list.root; n = n.next {
		out = append(out, n.value.ToNative())
	}
	return out
}
