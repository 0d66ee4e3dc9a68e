package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typeforge/typeforge/internal/analyzer"
	"github.com/typeforge/typeforge/internal/models"
	"github.com/typeforge/typeforge/internal/parser"
)

func generateFromJSON(t *testing.T, jsonInput string, format models.Format, rootName string) models.GeneratedType {
	t.Helper()
	ir, err := parser.ParseString(jsonInput)
	require.NoError(t, err)

	schema, err := analyzer.New().Analyze(ir)
	require.NoError(t, err)

	result, err := Generate(schema, models.TypeGenerationOptions{
		Format:            format,
		RootTypeName:      rootName,
		UseOptionalFields: true,
	})
	require.NoError(t, err)
	return result
}

const sampleJSON = `{"name":"John","age":30,"tags":["x","y"],"email":null}`

func TestPipeline_TypeScript(t *testing.T) {
	result := generateFromJSON(t, sampleJSON, models.FormatTypeScript, "Person")

	assert.Equal(t, "Person", result.Name)
	assert.Empty(t, result.Dependencies)
	expected := `export interface Person {
  age: number;
  email: null;
  name: string;
  tags: string[];
}
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_JSDoc(t *testing.T) {
	result := generateFromJSON(t, sampleJSON, models.FormatJSDoc, "Person")

	assert.Empty(t, result.Dependencies)
	expected := `/**
 * @typedef {Object} Person
 * @property {number} age
 * @property {null} email
 * @property {string} name
 * @property {Array<string>} tags
 */
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_PythonTypedDict(t *testing.T) {
	result := generateFromJSON(t, sampleJSON, models.FormatPythonTypedDict, "Person")

	assert.Equal(t, []string{"typing"}, result.Dependencies)
	expected := `from typing import List, TypedDict

class Person(TypedDict):
    age: float
    email: None
    name: str
    tags: List[str]
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_PythonDataclass(t *testing.T) {
	result := generateFromJSON(t, sampleJSON, models.FormatPythonDataclass, "Person")

	assert.Equal(t, []string{"dataclasses", "typing"}, result.Dependencies)
	expected := `from dataclasses import dataclass
from typing import List

@dataclass
class Person:
    age: float
    email: None
    name: str
    tags: List[str]
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_Pydantic(t *testing.T) {
	result := generateFromJSON(t, sampleJSON, models.FormatPydantic, "Person")

	assert.Equal(t, []string{"typing", "pydantic"}, result.Dependencies)
	expected := `from typing import List
from pydantic import BaseModel

class Person(BaseModel):
    age: float
    email: None
    name: str
    tags: List[str]
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_ArrayOfObjectsWithOptionalFields(t *testing.T) {
	jsonInput := `[{"id":1,"name":"Apple","color":"red"},{"id":2,"name":"Banana"}]`

	ts := generateFromJSON(t, jsonInput, models.FormatTypeScript, "Item")
	expected := `export interface ItemNested {
  color?: string;
  id: number;
  name: string;
}

export type Item = ItemNested[];
`
	assert.Equal(t, expected, ts.Content)
}

func TestPipeline_DataclassDefaultsComeLast(t *testing.T) {
	// color is optional and must be emitted after the default-free fields
	// or the dataclass would not be valid Python.
	jsonInput := `[{"color":"red","id":1},{"id":2}]`
	result := generateFromJSON(t, jsonInput, models.FormatPythonDataclass, "Item")

	expected := `from dataclasses import dataclass
from typing import List, Optional

@dataclass
class ItemNested:
    id: float
    color: Optional[str] = None

Item = List[ItemNested]
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_AmbiguousArrayFallsBackToNullableString(t *testing.T) {
	result := generateFromJSON(t, `{"mixed":["a",1,true]}`, models.FormatTypeScript, "Root")
	expected := `export interface Root {
  mixed: (string | null)[];
}
`
	assert.Equal(t, expected, result.Content)
}

func TestPipeline_TotalityOverEdgeInputs(t *testing.T) {
	inputs := []string{`{}`, `[]`, `null`, `"x"`, `0`, `false`,
		`{"a":{"b":{"c":[{"d":[[null]]}]}}}`}

	for _, input := range inputs {
		for _, format := range models.Formats() {
			result := generateFromJSON(t, input, format, "Root")
			assert.NotEmpty(t, result.Content, "input %s format %s", input, format)
		}
	}
}
