package raymond

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aymerick/raymond"
)

// Helpers returns the helpers available in mail templates:
//
//	{{#if (gt count 1)}}...{{/if}}
//	{{createLink url "text"}}
//	{{smallHtmlTag "text"}}
func Helpers() map[string]any {
	return map[string]any{
		"gt":           GreaterThan,
		"createLink":   CreateLink,
		"smallHtmlTag": SmallHTMLTag,
	}
}

// GreaterThan reports whether a > b. Values are compared as numbers when
// both are numeric (numeric strings included) and as strings otherwise.
func GreaterThan(a, b any) bool {
	x, okA := toNumber(a)
	y, okB := toNumber(b)
	if okA && okB {
		return x > y
	}
	return toString(a) > toString(b)
}

// CreateLink returns an anchor element. The arguments are escaped; the
// returned markup is not escaped again by the template.
func CreateLink(url, text string) raymond.SafeString {
	return raymond.SafeString(`<a href="` + raymond.Escape(url) + `">` + raymond.Escape(text) + `</a>`)
}

// SmallHTMLTag wraps text in a small element.
func SmallHTMLTag(text string) raymond.SafeString {
	return raymond.SafeString(`<small>` + raymond.Escape(text) + `</small>`)
}

func toNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
