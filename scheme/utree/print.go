// Copyright (c) 2026, The Spirit Authors.
// All rights reserved.
//
// SPDX-License-Identifier: MPL-2.0

package utree

import (
	"bytes"
	"io"
	"strconv"
)

// Fprint writes t to w on a single line. Nothing prints as nil, booleans
// as true or false, numbers in their shortest decimal form, text inside
// double quotes and lists inside parentheses with comma separated
// elements, for example
//
//     (123,"Chuckie",(123.456,"Mah Doggie"))
//
// Text is written as is, without escaping.
func Fprint(w io.Writer, t *UTree) error {
	var buf bytes.Buffer
	Visit[struct{}](t, printer{buf: &buf})
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns the Fprint form of t.
func (t *UTree) String() string {
	var buf bytes.Buffer
	Visit[struct{}](t, printer{buf: &buf})
	return buf.String()
}

type printer struct {
	buf *bytes.Buffer
}

func (p printer) Nothing() struct{} {
	p.buf.WriteString("nil")
	return struct{}{}
}

func (p printer) Bool(b bool) struct{} {
	p.buf.WriteString(strconv.FormatBool(b))
	return struct{}{}
}

func (p printer) Int(i int64) struct{} {
	p.buf.WriteString(strconv.FormatInt(i, 10))
	return struct{}{}
}

func (p printer) Double(f float64) struct{} {
	p.buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return struct{}{}
}

func (p printer) Text(s string) struct{} {
	p.buf.WriteByte('"')
	p.buf.WriteString(s)
	p.buf.WriteByte('"')
	return struct{}{}
}

func (p printer) List(s Seq) struct{} {
	p.buf.WriteByte('(')
	first := true
	s.Each(func(elem *UTree) bool {
		if !first {
			p.buf.WriteByte(',')
		}
		first = false
		Visit[struct{}](elem, p)
		return true
	})
	p.buf.WriteByte(')')
	return struct{}{}
}
