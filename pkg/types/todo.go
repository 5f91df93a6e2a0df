package types

import (
	"encoding/json"
	"iter"
	"reflect"
	"slices"
)

// ToDo is an ordered, titled list of Items.
//
// Every entry is a non-nil *Item. Bulk operations (NewToDo, Append,
// Prepend, Splice, Concat) promote text to new Items, keep existing Items
// as they are and silently drop everything else. Add is the strict
// single-entry counterpart. Duplicate ids are not rejected.
type ToDo struct {
	Title string
	items []*Item
}

// Document is the canonical wire representation of a ToDo.
type Document struct {
	Title string       `json:"title"`
	Items []ItemRecord `json:"items"`
}

// NewToDo creates a ToDo with the given title and appends entries using
// the Append rules. A single entry that is a slice, an array or a ToDo
// is taken as the initial sequence and inserted element by element.
func NewToDo(title string, entries ...any) *ToDo {
	t := &ToDo{Title: title}
	if len(entries) == 1 {
		entries = spread(entries[0])
	}
	t.Append(entries...)
	return t
}

// Len returns the number of entries.
func (t *ToDo) Len() int {
	return len(t.items)
}

// At returns the entry at index i, or nil if i is out of range.
func (t *ToDo) At(i int) *Item {
	if i < 0 || i >= len(t.items) {
		return nil
	}
	return t.items[i]
}

// Items returns a copy of the entry list. The Items themselves are shared.
func (t *ToDo) Items() []*Item {
	return slices.Clone(t.items)
}

// All iterates over the entries in order.
func (t *ToDo) All() iter.Seq2[int, *Item] {
	return slices.All(t.items)
}

// Index returns the position of the first entry with the given id, or -1.
func (t *ToDo) Index(id string) int {
	return slices.IndexFunc(t.items, func(i *Item) bool { return i.id == id })
}

// Append adds values to the end of the list and returns the new length.
// Text is promoted to new Items and any other value is dropped. An *Item
// is stored as is; an Item value is stored as a pointer to its copy, which
// keeps the id but is not the caller's instance.
func (t *ToDo) Append(values ...any) int {
	t.items = append(t.items, promoteAll(values)...)
	return len(t.items)
}

// Prepend inserts values at the front of the list, preserving their
// relative order, and returns the new length. Values are filtered as in
// Append.
func (t *ToDo) Prepend(values ...any) int {
	t.items = append(promoteAll(values), t.items...)
	return len(t.items)
}

// Splice removes deleteCount entries starting at start, inserts values in
// their place and returns the removed entries as a new untitled ToDo.
//
// A negative start counts back from the end of the list. start is clamped
// to [0, Len]. A negative deleteCount removes everything from start to the
// end; a larger one is clamped to the entries available. values are
// filtered as in Append.
func (t *ToDo) Splice(start, deleteCount int, values ...any) *ToDo {
	n := len(t.items)
	start = clampIndex(start, n)
	if deleteCount < 0 || deleteCount > n-start {
		deleteCount = n - start
	}

	removed := &ToDo{items: slices.Clone(t.items[start : start+deleteCount])}
	t.items = slices.Replace(t.items, start, start+deleteCount, promoteAll(values)...)
	return removed
}

// Fill writes value into every slot of [start, end) and returns the
// receiver. bounds holds the optional start and end, defaulting to the
// whole list; negative bounds count back from the end.
//
// Text is promoted once, so every filled slot holds the same *Item. If
// value is neither text nor an Item the list is left unchanged.
func (t *ToDo) Fill(value any, bounds ...int) *ToDo {
	item, ok := promote(value)
	if !ok {
		return t
	}

	n := len(t.items)
	start, end := 0, n
	if len(bounds) > 0 {
		start = clampIndex(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = clampIndex(bounds[1], n)
	}
	for i := start; i < end; i++ {
		t.items[i] = item
	}
	return t
}

// Concat returns a new untitled ToDo holding the receiver's entries
// followed by others. A ToDo or slice argument contributes its elements;
// any other argument is taken as a single value. Values are filtered as in
// Append. Neither the receiver nor the arguments are modified, and
// existing Items are shared rather than copied.
func (t *ToDo) Concat(others ...any) *ToDo {
	candidates := make([]any, 0, len(t.items)+len(others))
	for _, item := range t.items {
		candidates = append(candidates, item)
	}
	for _, other := range others {
		candidates = append(candidates, spread(other)...)
	}
	res := &ToDo{}
	res.Append(candidates...)
	return res
}

// Add appends a new Item built from value and returns it. The Item is
// always a fresh copy: adding an existing Item copies its content and
// checked flag under a new id.
// Returns ErrInvalidToDoEntry if value is neither text nor an Item, and
// ErrInvalidItemInput if it is empty text.
func (t *ToDo) Add(value any) (*Item, error) {
	if !isEntry(value) {
		return nil, ErrInvalidToDoEntry
	}
	item, err := NewItem(value)
	if err != nil {
		return nil, err
	}
	t.items = append(t.items, item)
	return item, nil
}

// Remove deletes the first entry whose id matches target and reports
// whether one was found. target is an Item, whose id is used, or text
// taken as the id itself; any other value returns false.
func (t *ToDo) Remove(target any) bool {
	var id string
	switch x := target.(type) {
	case string:
		id = x
	case *Item:
		if x != nil {
			id = x.id
		}
	case Item:
		id = x.id
	}
	if id == "" {
		return false
	}

	pos := t.Index(id)
	if pos == -1 {
		return false
	}
	t.items = slices.Delete(t.items, pos, pos+1)
	return true
}

// ToJSON returns the canonical document for the list.
func (t *ToDo) ToJSON() Document {
	records := make([]ItemRecord, 0, len(t.items))
	for _, item := range t.items {
		records = append(records, item.Record())
	}
	return Document{Title: t.Title, Items: records}
}

// MarshalJSON encodes the list as its canonical Document.
func (t *ToDo) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToJSON())
}

// isEntry reports whether v is text or an Item.
func isEntry(v any) bool {
	switch x := v.(type) {
	case string, Item:
		return true
	case *Item:
		return x != nil
	}
	return false
}

// promote turns v into a list entry. Text becomes a new Item, Items are
// returned as they are, and anything else (empty text included) is
// rejected.
func promote(v any) (*Item, bool) {
	switch x := v.(type) {
	case string:
		item, err := NewItem(x)
		return item, err == nil
	case *Item:
		return x, x != nil
	case Item:
		return &x, true
	}
	return nil, false
}

func promoteAll(values []any) []*Item {
	items := make([]*Item, 0, len(values))
	for _, v := range values {
		if item, ok := promote(v); ok {
			items = append(items, item)
		}
	}
	return items
}

// spread flattens a ToDo, slice or array argument one level. Any other
// value is returned as a single element.
func spread(v any) []any {
	switch x := v.(type) {
	case *ToDo:
		if x == nil {
			return nil
		}
		return x.values()
	case ToDo:
		return x.values()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []any{v}
	}
	out := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		out = append(out, rv.Index(i).Interface())
	}
	return out
}

func (t *ToDo) values() []any {
	out := make([]any, len(t.items))
	for i, item := range t.items {
		out[i] = item
	}
	return out
}

// clampIndex resolves a possibly negative index against length n and
// clamps it to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	return max(0, min(i, n))
}
