// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"strconv"
)

// ValueKind identifies the type of a content-stream operand.
type ValueKind int

const (
	Null ValueKind = iota
	Integer
	Real
	Name
	String
	Array
)

// A Value is a single operand of a content-stream operation. Accessors
// return zero results when the Value has a different Kind, so operator
// handlers can read operands without error checking.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	arr  []Value
}

func intValue(n int64) Value      { return Value{kind: Integer, num: float64(n)} }
func realValue(f float64) Value   { return Value{kind: Real, num: f} }
func nameValue(s string) Value    { return Value{kind: Name, str: s} }
func stringValue(s string) Value  { return Value{kind: String, str: s} }
func arrayValue(vs []Value) Value { return Value{kind: Array, arr: vs} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Int64() int64 {
	if v.kind == Integer || v.kind == Real {
		return int64(v.num)
	}
	return 0
}

func (v Value) Float64() float64 {
	if v.kind == Integer || v.kind == Real {
		return v.num
	}
	return 0
}

// Name returns the name constant without the leading slash.
func (v Value) Name() string {
	if v.kind == Name {
		return v.str
	}
	return ""
}

// RawString returns the raw (undecoded) bytes of a string operand.
func (v Value) RawString() string {
	if v.kind == String {
		return v.str
	}
	return ""
}

func (v Value) Len() int {
	if v.kind == Array {
		return len(v.arr)
	}
	return 0
}

func (v Value) Index(i int) Value {
	if v.kind != Array || i < 0 || i >= len(v.arr) {
		return Value{}
	}
	return v.arr[i]
}

// An Operation is one decoded content-stream operator with its operands in
// source order.
type Operation struct {
	Op   string
	Args []Value
}

// parseContent tokenizes a decoded content stream into operations. Operands
// accumulate on a stack until an operator token flushes them. Dictionaries
// and inline image data carry no text and are skipped. Malformed input never
// fails; unrecognized bytes are dropped so that a damaged page degrades to
// fewer operations rather than an error.
func parseContent(data []byte) []Operation {
	p := &contentParser{data: data}
	var ops []Operation
	var stack []Value

	for {
		tok, ok := p.next()
		if !ok {
			break
		}
		if tok.operator == "" {
			stack = append(stack, tok.value)
			continue
		}
		if tok.operator == "BI" {
			// Inline image: skip everything through the EI terminator.
			p.skipInlineImage()
			stack = stack[:0]
			continue
		}
		args := make([]Value, len(stack))
		copy(args, stack)
		ops = append(ops, Operation{Op: tok.operator, Args: args})
		stack = stack[:0]
	}
	return ops
}

type contentToken struct {
	operator string // empty for operand tokens
	value    Value
}

type contentParser struct {
	data []byte
	pos  int
}

func (p *contentParser) next() (contentToken, bool) {
	p.skipSpace()
	if p.pos >= len(p.data) {
		return contentToken{}, false
	}
	c := p.data[p.pos]
	switch {
	case c == '(':
		return contentToken{value: stringValue(p.readLiteralString())}, true
	case c == '<':
		if p.pos+1 < len(p.data) && p.data[p.pos+1] == '<' {
			p.skipDict()
			return p.next()
		}
		return contentToken{value: stringValue(p.readHexString())}, true
	case c == '/':
		return contentToken{value: nameValue(p.readName())}, true
	case c == '[':
		p.pos++
		return contentToken{value: arrayValue(p.readArray())}, true
	case c == ']' || c == '>' || c == '{' || c == '}':
		// stray delimiter
		p.pos++
		return p.next()
	case c == '+' || c == '-' || c == '.' || isDigit(c):
		return contentToken{value: p.readNumber()}, true
	case c == '\'' || c == '"':
		p.pos++
		return contentToken{operator: string(c)}, true
	default:
		op := p.readOperator()
		if op == "" {
			p.pos++
			return p.next()
		}
		return contentToken{operator: op}, true
	}
}

func (p *contentParser) skipSpace() {
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isSpace(c) {
			p.pos++
			continue
		}
		if c == '%' {
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
			continue
		}
		break
	}
}

// readLiteralString consumes a parenthesized string, handling nested
// parentheses, two-character escapes and octal escapes.
func (p *contentParser) readLiteralString() string {
	p.pos++ // '('
	var b []byte
	depth := 1
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		switch c {
		case '\\':
			p.pos++
			if p.pos >= len(p.data) {
				return string(b)
			}
			e := p.data[p.pos]
			switch e {
			case 'n':
				b = append(b, '\n')
			case 'r':
				b = append(b, '\r')
			case 't':
				b = append(b, '\t')
			case 'b':
				b = append(b, '\b')
			case 'f':
				b = append(b, '\f')
			case '(', ')', '\\':
				b = append(b, e)
			case '\n':
				// escaped newline continues the string
			case '\r':
				if p.pos+1 < len(p.data) && p.data[p.pos+1] == '\n' {
					p.pos++
				}
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && p.pos+1 < len(p.data); k++ {
						nx := p.data[p.pos+1]
						if nx < '0' || nx > '7' {
							break
						}
						p.pos++
						val = val*8 + int(nx-'0')
					}
					b = append(b, byte(val))
				} else {
					b = append(b, e)
				}
			}
			p.pos++
		case '(':
			depth++
			b = append(b, c)
			p.pos++
		case ')':
			depth--
			p.pos++
			if depth == 0 {
				return string(b)
			}
			b = append(b, c)
		default:
			b = append(b, c)
			p.pos++
		}
	}
	return string(b)
}

func (p *contentParser) readHexString() string {
	p.pos++ // '<'
	var b []byte
	var hi byte
	haveHi := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		p.pos++
		if c == '>' {
			break
		}
		d, ok := hexDigit(c)
		if !ok {
			continue
		}
		if haveHi {
			b = append(b, hi<<4|d)
			haveHi = false
		} else {
			hi, haveHi = d, true
		}
	}
	if haveHi {
		// odd digit count: final digit is the high nibble
		b = append(b, hi<<4)
	}
	return string(b)
}

func (p *contentParser) readName() string {
	p.pos++ // '/'
	var b []byte
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		if c == '#' && p.pos+2 < len(p.data) {
			h1, ok1 := hexDigit(p.data[p.pos+1])
			h2, ok2 := hexDigit(p.data[p.pos+2])
			if ok1 && ok2 {
				b = append(b, h1<<4|h2)
				p.pos += 3
				continue
			}
		}
		b = append(b, c)
		p.pos++
	}
	return string(b)
}

func (p *contentParser) readArray() []Value {
	var arr []Value
	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return arr
		}
		if p.data[p.pos] == ']' {
			p.pos++
			return arr
		}
		tok, ok := p.next()
		if !ok {
			return arr
		}
		// operators inside an array are malformed; drop them
		if tok.operator == "" {
			arr = append(arr, tok.value)
		}
	}
}

func (p *contentParser) readNumber() Value {
	start := p.pos
	if c := p.data[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	real := false
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isDigit(c) {
			p.pos++
			continue
		}
		if c == '.' && !real {
			real = true
			p.pos++
			continue
		}
		break
	}
	text := string(p.data[start:p.pos])
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Value{}
	}
	if real {
		return realValue(f)
	}
	return intValue(int64(f))
}

func (p *contentParser) readOperator() string {
	start := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isSpace(c) || isDelimiter(c) {
			break
		}
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// skipDict consumes a << ... >> dictionary, including nested dictionaries
// and any strings inside, without producing operands.
func (p *contentParser) skipDict() {
	p.pos += 2 // '<<'
	depth := 1
	for p.pos < len(p.data) && depth > 0 {
		c := p.data[p.pos]
		switch {
		case c == '(':
			p.readLiteralString()
		case c == '%':
			for p.pos < len(p.data) && p.data[p.pos] != '\n' && p.data[p.pos] != '\r' {
				p.pos++
			}
		case c == '<' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '<':
			depth++
			p.pos += 2
		case c == '>' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '>':
			depth--
			p.pos += 2
		default:
			p.pos++
		}
	}
}

// skipInlineImage advances past the binary payload of a BI ... ID ... EI
// sequence by scanning for a whitespace-delimited EI marker.
func (p *contentParser) skipInlineImage() {
	for p.pos+1 < len(p.data) {
		if p.data[p.pos] == 'E' && p.data[p.pos+1] == 'I' &&
			(p.pos == 0 || isSpace(p.data[p.pos-1])) &&
			(p.pos+2 >= len(p.data) || isSpace(p.data[p.pos+2]) || isDelimiter(p.data[p.pos+2])) {
			p.pos += 2
			return
		}
		p.pos++
	}
	p.pos = len(p.data)
}

func isSpace(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
