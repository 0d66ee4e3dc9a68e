package generator

import (
	"fmt"
	"strings"

	"github.com/typeforge/typeforge/internal/models"
)

// pythonVariant distinguishes the three Python targets, which share
// primitive spellings and typing syntax but render declarations differently.
type pythonVariant int

const (
	pythonTypedDict pythonVariant = iota
	pythonDataclass
	pythonPydantic
)

// pythonTarget tracks which typing helpers the traversal actually used so
// the import header and dependency list only name what the emitted text
// assumes.
type pythonTarget struct {
	variant pythonVariant

	usedOptional    bool
	usedList        bool
	usedAny         bool
	usedNotRequired bool
	usedBase        bool
}

func newPythonTarget(variant pythonVariant) *pythonTarget {
	return &pythonTarget{variant: variant}
}

func (t *pythonTarget) primitive(kind models.Kind) string {
	switch kind {
	case models.KindString:
		return "str"
	case models.KindNumber:
		// JSON numbers always map to float; the schema model carries no
		// integer/float distinction.
		return "float"
	case models.KindBoolean:
		return "bool"
	case models.KindNull:
		return "None"
	default:
		t.usedAny = true
		return "Any"
	}
}

func (t *pythonTarget) anyPlaceholder() string {
	t.usedAny = true
	return "Any"
}

func (t *pythonTarget) array(elem string) string {
	t.usedList = true
	return "List[" + elem + "]"
}

func (t *pythonTarget) nullable(expr string) string {
	t.usedOptional = true
	return "Optional[" + expr + "]"
}

func (t *pythonTarget) declaration(name string, fields []fieldSpec) string {
	t.usedBase = true

	var b strings.Builder
	switch t.variant {
	case pythonTypedDict:
		fmt.Fprintf(&b, "class %s(TypedDict):\n", name)
	case pythonDataclass:
		fmt.Fprintf(&b, "@dataclass\nclass %s:\n", name)
	case pythonPydantic:
		fmt.Fprintf(&b, "class %s(BaseModel):\n", name)
	}

	if len(fields) == 0 {
		b.WriteString("    pass")
		return b.String()
	}

	ordered := fields
	if t.variant == pythonDataclass {
		// Dataclass fields with defaults must follow default-free fields.
		ordered = make([]fieldSpec, 0, len(fields))
		for _, f := range fields {
			if !f.Optional {
				ordered = append(ordered, f)
			}
		}
		for _, f := range fields {
			if f.Optional {
				ordered = append(ordered, f)
			}
		}
	}

	lines := make([]string, 0, len(ordered))
	for _, f := range ordered {
		lines = append(lines, "    "+t.fieldLine(f))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func (t *pythonTarget) fieldLine(f fieldSpec) string {
	typ := f.Type

	if t.variant == pythonTypedDict {
		if f.Nullable {
			typ = t.nullable(typ)
		}
		if f.Optional {
			t.usedNotRequired = true
			typ = "NotRequired[" + typ + "]"
		}
		return fmt.Sprintf("%s: %s", f.Key, typ)
	}

	// dataclass and pydantic: optional fields get an explicit None default,
	// which forces an Optional annotation even when the type itself never
	// held a null.
	if f.Nullable || f.Optional {
		typ = t.nullable(typ)
	}
	if f.Optional {
		return fmt.Sprintf("%s: %s = None", f.Key, typ)
	}
	return fmt.Sprintf("%s: %s", f.Key, typ)
}

func (t *pythonTarget) alias(name, expr string) string {
	return fmt.Sprintf("%s = %s", name, expr)
}

func (t *pythonTarget) header() string {
	var lines []string

	if t.variant == pythonDataclass && t.usedBase {
		lines = append(lines, "from dataclasses import dataclass")
	}

	var typing []string
	if t.usedAny {
		typing = append(typing, "Any")
	}
	if t.usedList {
		typing = append(typing, "List")
	}
	if t.usedNotRequired {
		typing = append(typing, "NotRequired")
	}
	if t.usedOptional {
		typing = append(typing, "Optional")
	}
	if t.variant == pythonTypedDict && t.usedBase {
		typing = append(typing, "TypedDict")
	}
	if len(typing) > 0 {
		lines = append(lines, "from typing import "+strings.Join(typing, ", "))
	}

	if t.variant == pythonPydantic && t.usedBase {
		lines = append(lines, "from pydantic import BaseModel")
	}

	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (t *pythonTarget) dependencies() []string {
	var deps []string
	if t.variant == pythonDataclass && t.usedBase {
		deps = append(deps, "dataclasses")
	}
	if t.usedAny || t.usedList || t.usedNotRequired || t.usedOptional ||
		(t.variant == pythonTypedDict && t.usedBase) {
		deps = append(deps, "typing")
	}
	if t.variant == pythonPydantic && t.usedBase {
		deps = append(deps, "pydantic")
	}
	return deps
}
