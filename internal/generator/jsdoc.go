package generator

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge/internal/models"
)

// jsDocTarget emits @typedef comment blocks. Like the TypeScript target it
// assumes no runtime beyond the language itself.
type jsDocTarget struct{}

func (t *jsDocTarget) primitive(kind models.Kind) string {
	switch kind {
	case models.KindString:
		return "string"
	case models.KindNumber:
		return "number"
	case models.KindBoolean:
		return "boolean"
	case models.KindNull:
		return "null"
	default:
		return "*"
	}
}

func (t *jsDocTarget) anyPlaceholder() string {
	return "*"
}

func (t *jsDocTarget) array(elem string) string {
	return "Array<" + elem + ">"
}

func (t *jsDocTarget) nullable(expr string) string {
	return "(" + expr + "|null)"
}

func (t *jsDocTarget) declaration(name string, fields []fieldSpec) string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * @typedef {Object} %s\n", name)
	for _, f := range fields {
		typ := f.Type
		if f.Nullable {
			typ = t.nullable(typ)
		}
		key := f.Key
		if !tsIdentifierRegex.MatchString(key) {
			key = fmt.Sprintf("%q", key)
		}
		if f.Optional {
			// Square brackets mark the property as optional in JSDoc.
			fmt.Fprintf(&b, " * @property {%s} [%s]\n", typ, key)
		} else {
			fmt.Fprintf(&b, " * @property {%s} %s\n", typ, key)
		}
	}
	b.WriteString(" */")
	return b.String()
}

func (t *jsDocTarget) alias(name, expr string) string {
	return fmt.Sprintf("/** @typedef {%s} %s */", expr, name)
}

func (t *jsDocTarget) header() string {
	return ""
}

func (t *jsDocTarget) dependencies() []string {
	return nil
}
