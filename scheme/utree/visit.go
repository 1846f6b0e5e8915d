// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"fmt"
	"reflect"

	"jsouthworth.net/go/dyn"
)

// Visitor has one handler per kind. Visit calls exactly the handler
// matching the kind of a UTree with its payload.
type Visitor[R any] interface {
	Nothing() R
	Bool(bool) R
	Int(int64) R
	Double(float64) R
	Text(string) R
	List(Seq) R
}

// Visit dispatches t to the handler of v matching its kind. A List is
// passed as a Seq over all of its elements.
func Visit[R any](t *UTree, v Visitor[R]) R {
	switch k := t.Kind(); k {
	case Nothing:
		return v.Nothing()
	case Bool:
		return v.Bool(t.boolean())
	case Int:
		return v.Int(t.integer())
	case Double:
		return v.Double(t.double())
	case Text:
		return v.Text(t.str())
	case List:
		return v.List(t.seq())
	default:
		panic(fmt.Errorf("utree: Visit unhandled kind %v", k))
	}
}

func (t *UTree) seq() Seq {
	return Seq{
		First: Iterator{list: t.list, node: t.list.first()},
		Last:  Iterator{list: t.list, node: &t.list.root},
	}
}

var (
	utreeType     = reflect.TypeOf((*UTree)(nil))
	interfaceType = reflect.TypeOf((*interface{})(nil)).Elem()
)

// Perform matches the kind of t with a behavior to perform on it. Think
// of this as a switch on the kind without a Visitor. It takes a list of
// func(v vT) oT functions and applies the first one whose argument type
// accepts the payload; the result of that function is returned, or nil
// if no function matched.
//
// Payloads are passed as bool, int64, float64, string or Seq. If vT is
// *UTree the function matches every kind and receives t itself. If vT is
// interface{} it matches every kind, Nothing included, which is passed
// as nil.
func (t *UTree) Perform(fns ...interface{}) interface{} {
	arg := t.payload()
	vty := reflect.TypeOf(arg)
	for _, fn := range fns {
		fnty := reflect.TypeOf(fn)
		if fnty == nil || fnty.Kind() != reflect.Func || fnty.NumIn() != 1 {
			continue
		}
		inputType := fnty.In(0)
		switch {
		case inputType == utreeType:
			return dyn.Apply(fn, t)
		case vty == nil:
			if inputType == interfaceType {
				return dyn.Apply(fn, arg)
			}
		case vty.AssignableTo(inputType):
			return dyn.Apply(fn, arg)
		}
	}
	return nil
}

func (t *UTree) payload() interface{} {
	switch t.Kind() {
	case Bool:
		return t.boolean()
	case Int:
		return t.integer()
	case Double:
		return t.double()
	case Text:
		return t.str()
	case List:
		return t.seq()
	default:
		return nil
	}
}
