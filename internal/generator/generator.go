// Package generator turns an inferred Schema tree into type declaration
// text for one of the supported target formats. One shared traversal drives
// all five targets; only the concrete syntax lives in the per-target
// implementations.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/typeforge/typeforge/internal/errors"
	"github.com/typeforge/typeforge/internal/models"
)

// fieldSpec carries everything a target needs to render one field of a
// named declaration. Type is the base type expression without any null
// union applied; the target applies its own optional and nullable syntax.
type fieldSpec struct {
	Key      string
	Type     string
	Optional bool
	Nullable bool
}

// target is the capability object each format implements: primitive
// spellings, array and null-union syntax, declaration rendering, and any
// import header / dependency list the emitted text assumes. Targets may be
// stateful (e.g. tracking which imports were used); Generate constructs a
// fresh one per call.
type target interface {
	primitive(kind models.Kind) string
	anyPlaceholder() string
	array(elem string) string
	nullable(expr string) string
	declaration(name string, fields []fieldSpec) string
	alias(name, expr string) string
	header() string
	dependencies() []string
}

// Generate emits the type declarations for schema in the format selected by
// opts. An unsupported format or empty root type name is a configuration
// error; given valid options and a valid schema, generation is total.
func Generate(schema *models.Schema, opts models.TypeGenerationOptions) (models.GeneratedType, error) {
	if strings.TrimSpace(opts.RootTypeName) == "" {
		return models.GeneratedType{}, errors.NewConfigError("root type name must not be empty", nil)
	}

	var tgt target
	switch opts.Format {
	case models.FormatTypeScript:
		tgt = &typeScriptTarget{}
	case models.FormatJSDoc:
		tgt = &jsDocTarget{}
	case models.FormatPythonTypedDict:
		tgt = newPythonTarget(pythonTypedDict)
	case models.FormatPythonDataclass:
		tgt = newPythonTarget(pythonDataclass)
	case models.FormatPydantic:
		tgt = newPythonTarget(pythonPydantic)
	default:
		return models.GeneratedType{}, errors.NewConfigError(
			fmt.Sprintf("unsupported format %q", opts.Format),
			errors.ErrUnknownFormat,
		)
	}

	e := &emitter{
		tgt:   tgt,
		namer: newNamer(opts.RootTypeName),
		opts:  opts,
	}

	// The root declaration always comes last; nested declarations are
	// enqueued leaves-first so every referenced name is declared before
	// (textually above) its reference.
	if schema.Kind == models.KindObject {
		e.declareObject(opts.RootTypeName, schema)
	} else {
		e.decls = append(e.decls, tgt.alias(opts.RootTypeName, e.exprWithNull(schema)))
	}

	var b strings.Builder
	if header := tgt.header(); header != "" {
		b.WriteString(header)
		b.WriteString("\n")
	}
	b.WriteString(strings.Join(e.decls, "\n\n"))
	b.WriteString("\n")

	return models.GeneratedType{
		Name:         opts.RootTypeName,
		Content:      b.String(),
		Dependencies: tgt.dependencies(),
	}, nil
}

// emitter holds the per-call traversal state: the target syntax, the namer
// and the queue of rendered declarations.
type emitter struct {
	tgt   target
	namer *namer
	opts  models.TypeGenerationOptions
	decls []string
}

// expr computes the type expression for a schema node, enqueueing a named
// declaration whenever the node is an object.
func (e *emitter) expr(s *models.Schema) string {
	switch s.Kind {
	case models.KindObject:
		name := e.namer.allocate()
		e.declareObject(name, s)
		return name
	case models.KindArray:
		if s.Items.Kind == models.KindNull {
			// Unknown element type (empty array) or all-null elements;
			// either way there is nothing to pin the element type to.
			return e.tgt.array(e.tgt.anyPlaceholder())
		}
		return e.tgt.array(e.exprWithNull(s.Items))
	default:
		return e.tgt.primitive(s.Kind)
	}
}

// exprWithNull is expr plus the node's own null union, used where no field
// wrapper will apply it (array elements and non-object roots).
func (e *emitter) exprWithNull(s *models.Schema) string {
	expr := e.expr(s)
	if s.Nullable {
		expr = e.tgt.nullable(expr)
	}
	return expr
}

// declareObject renders one named object declaration and appends it after
// the declarations of any nested objects it references.
func (e *emitter) declareObject(name string, s *models.Schema) {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]fieldSpec, 0, len(keys))
	for _, key := range keys {
		prop := s.Properties[key]

		// A pure-null property is always emitted as a required field of
		// the literal null type, regardless of the required set.
		if prop.Kind == models.KindNull {
			fields = append(fields, fieldSpec{
				Key:  key,
				Type: e.tgt.primitive(models.KindNull),
			})
			continue
		}

		fields = append(fields, fieldSpec{
			Key:      key,
			Type:     e.expr(prop),
			Optional: e.opts.UseOptionalFields && !s.IsRequired(key),
			Nullable: prop.Nullable,
		})
	}

	e.decls = append(e.decls, e.tgt.declaration(name, fields))
}
