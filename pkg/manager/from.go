package manager

import (
	"iter"
	"reflect"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// inputKind tags the shape of a value handed to From.
type inputKind int

const (
	scalarInput inputKind = iota
	recordInput
	sequenceInput
)

// input is a classified From argument. values holds the sequence
// elements, or the single scalar or record.
type input struct {
	kind   inputKind
	values []any
}

// From builds an untitled ToDo from input.
//
// A ToDo, a slice or array, or an iter.Seq of any, string, *types.Item or
// map[string]any contributes its elements; any other value, sequences of
// other element types included, is a one-element list. Records
// (map[string]any with a "content" key) become Items carrying their
// checked flag and, when it is a non-empty string, their id. Text and Items go through the usual bulk
// insert rules and everything else is skipped.
func From(v any) *types.ToDo {
	in := classify(v)
	entries := make([]any, 0, len(in.values))
	for _, value := range in.values {
		if entry := normalizeEntry(value); entry != nil {
			entries = append(entries, entry)
		}
	}
	todo := types.NewToDo("")
	todo.Append(entries...)
	return todo
}

func classify(v any) input {
	switch x := v.(type) {
	case *types.ToDo:
		if x == nil {
			return input{kind: scalarInput, values: []any{v}}
		}
		return input{kind: sequenceInput, values: itemValues(x.Items())}
	case types.ToDo:
		return input{kind: sequenceInput, values: itemValues(x.Items())}
	case iter.Seq[any]:
		return input{kind: sequenceInput, values: collect(x)}
	case iter.Seq[string]:
		return input{kind: sequenceInput, values: collect(x)}
	case iter.Seq[*types.Item]:
		return input{kind: sequenceInput, values: collect(x)}
	case iter.Seq[map[string]any]:
		return input{kind: sequenceInput, values: collect(x)}
	case map[string]any:
		if isRecord(x) {
			return input{kind: recordInput, values: []any{x}}
		}
		return input{kind: scalarInput, values: []any{x}}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		values := make([]any, 0, rv.Len())
		for i := range rv.Len() {
			values = append(values, rv.Index(i).Interface())
		}
		return input{kind: sequenceInput, values: values}
	}
	return input{kind: scalarInput, values: []any{v}}
}

// normalizeEntry turns a record into an Item and passes every other value
// through. It returns nil for a record whose content is unusable.
func normalizeEntry(v any) any {
	rec, ok := v.(map[string]any)
	if !ok || !isRecord(rec) {
		return v
	}

	content, _ := rec["content"].(string)
	id, _ := rec["id"].(string)
	item, err := types.RestoreItem(content, types.Truthy(rec["checked"]), id)
	if err != nil {
		return nil
	}
	return item
}

// collect drains seq. A nil seq yields no values.
func collect[T any](seq iter.Seq[T]) []any {
	var values []any
	if seq == nil {
		return values
	}
	for v := range seq {
		values = append(values, v)
	}
	return values
}

func isRecord(m map[string]any) bool {
	_, ok := m["content"]
	return ok
}

func itemValues(items []*types.Item) []any {
	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item
	}
	return values
}
