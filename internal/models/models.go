package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// IntermediateRepresentation holds the parsed JSON data in a way that's easy
// for the analyzer to work with.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// Kind identifies the shape category of a schema node.
type Kind string

const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindNull    Kind = "null"
)

// Schema describes the inferred shape of a JSON subtree.
//
// A schema never represents "null alongside one other kind" as KindNull:
// the non-null kind wins and Nullable is set. When array elements disagree
// on more than one non-null kind, the merger degrades to
// {KindString, Nullable: true} rather than modeling a union.
type Schema struct {
	Kind Kind

	// Properties and Required are set only when Kind is KindObject.
	// Required holds the property names whose values were present and
	// non-null in every object observed at this position.
	Properties map[string]*Schema
	Required   map[string]bool

	// Items is set only when Kind is KindArray. An empty array yields
	// Items of KindNull, meaning "element type unknown".
	Items *Schema

	// Nullable is true when a null was observed at this position alongside
	// non-null values of a single underlying kind.
	Nullable bool
}

// IsRequired reports whether the named property was non-null in every
// observed sample.
func (s *Schema) IsRequired(name string) bool {
	return s.Required != nil && s.Required[name]
}

// Format selects one of the supported target type systems.
type Format string

const (
	FormatTypeScript      Format = "typescript"
	FormatJSDoc           Format = "jsdoc"
	FormatPythonTypedDict Format = "python-typeddict"
	FormatPythonDataclass Format = "python-dataclass"
	FormatPydantic        Format = "pydantic"
)

// Formats lists every supported format id, in display order.
func Formats() []Format {
	return []Format{
		FormatTypeScript,
		FormatJSDoc,
		FormatPythonTypedDict,
		FormatPythonDataclass,
		FormatPydantic,
	}
}

// Valid reports whether f is one of the supported format ids.
func (f Format) Valid() bool {
	switch f {
	case FormatTypeScript, FormatJSDoc, FormatPythonTypedDict, FormatPythonDataclass, FormatPydantic:
		return true
	}
	return false
}

// TypeGenerationOptions configures a single generation call.
type TypeGenerationOptions struct {
	Format Format

	// RootTypeName must be a syntactically valid type identifier in the
	// target format; validity is the caller's responsibility.
	RootTypeName string

	// UseOptionalFields controls whether properties missing from some
	// samples are emitted as optional. When false, every property is
	// emitted as required.
	UseOptionalFields bool
}

// GeneratedType is the result of one emission: the root type name, the
// complete declaration text (nested types included, leaves first), and the
// external runtime/import names the text assumes.
type GeneratedType struct {
	Name         string
	Content      string
	Dependencies []string
}
