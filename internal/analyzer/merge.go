package analyzer

import (
	"github.com/typeforge/typeforge/internal/models"
)

// Merge reconciles the per-element schemas of an array into a single
// element schema. It must be called with a non-empty slice.
//
// Null elements never win over a non-null kind: when null co-occurs with
// exactly one other kind, that kind is kept and Nullable is set. When two
// or more distinct non-null kinds co-occur, the result degrades to
// {KindString, Nullable: true}. That fallback is contractual: callers rely
// on merging never failing and never producing union types.
func Merge(schemas []*models.Schema) *models.Schema {
	if len(schemas) == 1 {
		return schemas[0]
	}

	nonNull := make([]*models.Schema, 0, len(schemas))
	hadNull := false
	for _, s := range schemas {
		if s.Kind == models.KindNull {
			hadNull = true
			continue
		}
		nonNull = append(nonNull, s)
	}

	if len(nonNull) == 0 {
		return &models.Schema{Kind: models.KindNull}
	}

	kind := nonNull[0].Kind
	for _, s := range nonNull[1:] {
		if s.Kind != kind {
			// Ambiguous-type fallback; see doc comment.
			return &models.Schema{Kind: models.KindString, Nullable: true}
		}
	}

	nullable := hadNull
	for _, s := range nonNull {
		if s.Nullable {
			nullable = true
		}
	}

	switch kind {
	case models.KindObject:
		merged := mergeObjects(nonNull)
		merged.Nullable = nullable
		return merged
	case models.KindArray:
		items := make([]*models.Schema, len(nonNull))
		for i, s := range nonNull {
			items[i] = s.Items
		}
		return &models.Schema{
			Kind:     models.KindArray,
			Items:    Merge(items),
			Nullable: nullable,
		}
	default:
		return &models.Schema{Kind: kind, Nullable: nullable}
	}
}

// mergeObjects unions the property sets of several object schemas. Each
// resulting property is the recursive merge of the schemas observed for it;
// instances lacking the property simply do not contribute to that merge.
// A property stays required only unanimously: it must appear, and be
// required, in every contributing instance.
func mergeObjects(objects []*models.Schema) *models.Schema {
	properties := make(map[string]*models.Schema)
	occurrences := make(map[string]int)
	requiredCount := make(map[string]int)
	observed := make(map[string][]*models.Schema)

	for _, obj := range objects {
		for name, propSchema := range obj.Properties {
			observed[name] = append(observed[name], propSchema)
			occurrences[name]++
			if obj.IsRequired(name) {
				requiredCount[name]++
			}
		}
	}

	required := make(map[string]bool)
	for name, schemas := range observed {
		properties[name] = Merge(schemas)
		if occurrences[name] == len(objects) && requiredCount[name] == len(objects) {
			required[name] = true
		}
	}

	merged := &models.Schema{
		Kind:       models.KindObject,
		Properties: properties,
	}
	if len(required) > 0 {
		merged.Required = required
	}
	return merged
}
