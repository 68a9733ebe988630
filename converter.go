package gosnowconn

import (
	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"
)

// normalizeValue maps a scanned driver value to the value exposed in a
// ResultSet row. The driver hands back text for several Snowflake types:
// FIXED columns become decimal.Decimal, semi-structured columns are parsed
// into native maps and slices, raw bytes become strings. Values that do not
// match a known shape pass through untouched.
func normalizeValue(raw interface{}, databaseType string) interface{} {
	if raw == nil {
		return nil
	}
	if b, ok := raw.([]byte); ok {
		raw = string(b)
	}
	s, ok := raw.(string)
	if !ok {
		return raw
	}

	switch databaseType {
	case "FIXED":
		if d, err := decimal.NewFromString(s); err == nil {
			return d
		}
	case "VARIANT", "OBJECT", "ARRAY":
		if v, err := fastjson.Parse(s); err == nil {
			return nativeValue(v)
		}
	}
	return s
}

func nativeValue(v *fastjson.Value) interface{} {
	switch v.Type() {
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil
		}
		m := make(map[string]interface{}, obj.Len())
		obj.Visit(func(key []byte, value *fastjson.Value) {
			m[string(key)] = nativeValue(value)
		})
		return m
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil
		}
		out := make([]interface{}, 0, len(items))
		for _, item := range items {
			out = append(out, nativeValue(item))
		}
		return out
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return v.GetFloat64()
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	}
	return nil
}
