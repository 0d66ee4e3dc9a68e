package analyzer

import (
	"encoding/json"
	"fmt"

	"github.com/typeforge/typeforge/internal/errors"
	"github.com/typeforge/typeforge/internal/models"
)

// DefaultMaxDepth bounds recursion over pathologically nested input. The
// guard fails closed with an analysis error instead of exhausting the stack.
const DefaultMaxDepth = 200

// Analyzer infers a Schema tree from a parsed JSON value.
type Analyzer struct {
	maxDepth int
}

// New creates an Analyzer with the default nesting limit.
func New() *Analyzer {
	return &Analyzer{maxDepth: DefaultMaxDepth}
}

// NewWithMaxDepth creates an Analyzer with a custom nesting limit.
// Non-positive values fall back to the default.
func NewWithMaxDepth(maxDepth int) *Analyzer {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Analyzer{maxDepth: maxDepth}
}

// Analyze walks the parsed JSON value and produces a Schema describing its
// shape. It never fails on valid JSON values, only on input nested beyond
// the configured limit.
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation) (*models.Schema, error) {
	schema, err := a.analyzeValue(ir.Root, 0)
	if err != nil {
		return nil, err
	}
	return schema, nil
}

// analyzeValue is the core recursive function that determines the Schema
// for a given JSON node.
func (a *Analyzer) analyzeValue(node models.JSONValue, depth int) (*models.Schema, error) {
	if depth > a.maxDepth {
		return nil, errors.NewAnalysisError(
			fmt.Sprintf("input exceeds maximum nesting depth of %d", a.maxDepth),
			errors.ErrTooDeep,
		)
	}

	switch v := node.(type) {
	case nil:
		return &models.Schema{Kind: models.KindNull}, nil
	case bool:
		return &models.Schema{Kind: models.KindBoolean}, nil
	case string:
		return &models.Schema{Kind: models.KindString}, nil
	case json.Number:
		// There is no integer/float distinction in the schema model;
		// every JSON number is KindNumber.
		return &models.Schema{Kind: models.KindNumber}, nil
	case models.JSONObject:
		return a.analyzeObject(v, depth)
	case models.JSONArray:
		return a.analyzeArray(v, depth)
	default:
		return nil, errors.NewAnalysisError(
			fmt.Sprintf("unexpected json value type: %T", v), nil)
	}
}

func (a *Analyzer) analyzeObject(obj models.JSONObject, depth int) (*models.Schema, error) {
	schema := &models.Schema{
		Kind:       models.KindObject,
		Properties: make(map[string]*models.Schema, len(obj)),
	}

	required := make(map[string]bool)
	for key, val := range obj {
		propSchema, err := a.analyzeValue(val, depth+1)
		if err != nil {
			return nil, err
		}
		schema.Properties[key] = propSchema
		// A property counts as required only when its value is non-null.
		if val != nil {
			required[key] = true
		}
	}
	if len(required) > 0 {
		schema.Required = required
	}
	return schema, nil
}

func (a *Analyzer) analyzeArray(arr models.JSONArray, depth int) (*models.Schema, error) {
	if len(arr) == 0 {
		// No information about the element type; KindNull items are
		// surfaced downstream as the target's untyped placeholder.
		return &models.Schema{
			Kind:  models.KindArray,
			Items: &models.Schema{Kind: models.KindNull},
		}, nil
	}

	elements := make([]*models.Schema, len(arr))
	for i, element := range arr {
		elementSchema, err := a.analyzeValue(element, depth+1)
		if err != nil {
			return nil, err
		}
		elements[i] = elementSchema
	}

	return &models.Schema{
		Kind:  models.KindArray,
		Items: Merge(elements),
	}, nil
}
