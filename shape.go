package jsoncache

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Shape is the structural kind of a JSON value.
type Shape uint8

const (
	ShapeInvalid Shape = iota
	ShapeArray
	ShapeObject
	ShapeString
	ShapeNumber
	ShapeBool
	ShapeNull
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	case ShapeString:
		return "string"
	case ShapeNumber:
		return "number"
	case ShapeBool:
		return "bool"
	case ShapeNull:
		return "null"
	default:
		return "invalid"
	}
}

var errInvalidJSON = errors.New("invalid JSON document")

// shapeOf validates doc and returns the kind of its top-level value.
func shapeOf(doc []byte) (Shape, error) {
	if !json.Valid(doc) {
		return ShapeInvalid, errInvalidJSON
	}
	doc = bytes.TrimLeft(doc, " \t\r\n")
	switch doc[0] {
	case '[':
		return ShapeArray, nil
	case '{':
		return ShapeObject, nil
	case '"':
		return ShapeString, nil
	case 't', 'f':
		return ShapeBool, nil
	case 'n':
		return ShapeNull, nil
	default:
		return ShapeNumber, nil
	}
}
