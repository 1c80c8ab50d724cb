package templates

import (
	"strings"
)

type NumberKind uint8

const (
	KindSigned NumberKind = iota
	KindUnsigned
	KindFloat
)

// LerpType is one number type the interpolation switch handles.
type LerpType struct {
	Name string
	Kind NumberKind
	// bounds of integer types, as Go expressions
	Min, Max string
}

func (lt LerpType) Func() string {
	return "lerp" + strings.ToUpper(lt.Name[:1]) + lt.Name[1:]
}

var NumberTypes = []LerpType{
	{Name: "int", Kind: KindSigned, Min: "math.MinInt", Max: "math.MaxInt"},
	{Name: "int8", Kind: KindSigned, Min: "math.MinInt8", Max: "math.MaxInt8"},
	{Name: "int16", Kind: KindSigned, Min: "math.MinInt16", Max: "math.MaxInt16"},
	{Name: "int32", Kind: KindSigned, Min: "math.MinInt32", Max: "math.MaxInt32"},
	{Name: "int64", Kind: KindSigned, Min: "math.MinInt64", Max: "math.MaxInt64"},
	{Name: "uint", Kind: KindUnsigned, Min: "0", Max: "math.MaxUint"},
	{Name: "uint8", Kind: KindUnsigned, Min: "0", Max: "math.MaxUint8"},
	{Name: "uint16", Kind: KindUnsigned, Min: "0", Max: "math.MaxUint16"},
	{Name: "uint32", Kind: KindUnsigned, Min: "0", Max: "math.MaxUint32"},
	{Name: "uint64", Kind: KindUnsigned, Min: "0", Max: "math.MaxUint64"},
	{Name: "float32", Kind: KindFloat},
	{Name: "float64", Kind: KindFloat},
}
