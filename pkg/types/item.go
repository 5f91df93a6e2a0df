package types

import "encoding/json"

// Item is a single entry of a ToDo.
type Item struct {
	Content string // Description of the entry (required, non-empty).
	Checked bool   // Completion flag.

	id string // Minted on construction, never changed afterwards.
}

// ItemRecord is the wire representation of an Item.
type ItemRecord struct {
	Content string `json:"content"`
	Checked bool   `json:"checked"`
	ID      string `json:"id"`
}

// NewItem creates an Item from source with a freshly minted id.
//
// source is either non-empty text, an existing Item (by value or pointer),
// or a record (map[string]any) whose "content" field is non-empty text and
// whose optional "checked" field is coerced with Truthy. Content and
// checked are copied from an existing Item; its id never is.
// Returns ErrInvalidItemInput for any other source.
func NewItem(source any) (*Item, error) {
	var content string
	var checked bool

	switch s := source.(type) {
	case string:
		content = s
	case *Item:
		if s == nil {
			return nil, ErrInvalidItemInput
		}
		content, checked = s.Content, s.Checked
	case Item:
		content, checked = s.Content, s.Checked
	case map[string]any:
		content, _ = s["content"].(string)
		checked = Truthy(s["checked"])
	default:
		return nil, ErrInvalidItemInput
	}

	if content == "" {
		return nil, ErrInvalidItemInput
	}
	return &Item{Content: content, Checked: checked, id: newID()}, nil
}

// RestoreItem rebuilds an Item from persisted field values. A non-empty
// id is adopted as is and reserved so that no minted id collides with it;
// an empty id is replaced by a freshly minted one.
// Returns ErrInvalidItemInput if content is empty.
func RestoreItem(content string, checked bool, id string) (*Item, error) {
	if content == "" {
		return nil, ErrInvalidItemInput
	}
	if id == "" {
		id = newID()
	} else {
		reserveID(id)
	}
	return &Item{Content: content, Checked: checked, id: id}, nil
}

// ID returns the item id.
func (i *Item) ID() string {
	return i.id
}

// Toggle flips Checked when called without arguments. With an argument it
// sets Checked to the Truthy coercion of flag[0]; further arguments are
// ignored. Returns the resulting Checked value.
func (i *Item) Toggle(flag ...any) bool {
	if len(flag) > 0 {
		i.Checked = Truthy(flag[0])
	} else {
		i.Checked = !i.Checked
	}
	return i.Checked
}

// String returns the item content.
func (i *Item) String() string {
	return i.Content
}

// Record returns the wire representation of the item.
func (i *Item) Record() ItemRecord {
	return ItemRecord{Content: i.Content, Checked: i.Checked, ID: i.id}
}

// MarshalJSON encodes the item as its ItemRecord.
func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Record())
}
