package types

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"a3F4dfro", true},
		{"Z0000000", true},
		{"aZ34efr2", true},
		{"13F4dfro", false},
		{"a3F4dfr", false},
		{"a3F4dfro9", false},
		{"a3F4-fro", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidID(tt.id))
		})
	}
}

func TestMintedIDsSkipReservedIDs(t *testing.T) {
	reserved, err := RestoreItem("reserved", false, "Reserved")
	assert.NoError(t, err)

	for range 1000 {
		assert.NotEqual(t, reserved.ID(), newID())
	}
}

func TestItemProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	if testing.Short() {
		params.MinSuccessfulTests = 20
	}
	properties := gopter.NewProperties(params)

	properties.Property("text items keep content and mint valid ids", prop.ForAll(
		func(content string) bool {
			item, err := NewItem(content)
			return err == nil &&
				item.Content == content &&
				!item.Checked &&
				ValidID(item.ID())
		},
		gen.AnyString().SuchThat(func(s string) bool { return s != "" }),
	))

	properties.Property("toggle without a flag is an involution", prop.ForAll(
		func(content string, checked bool) bool {
			item, err := NewItem(content)
			if err != nil {
				return false
			}
			item.Checked = checked
			item.Toggle()
			item.Toggle()
			return item.Checked == checked
		},
		gen.Identifier(),
		gen.Bool(),
	))

	properties.Property("toggle with an integer flag ignores prior state", prop.ForAll(
		func(flag int, checked bool) bool {
			item, err := NewItem("flag")
			if err != nil {
				return false
			}
			item.Checked = checked
			return item.Toggle(flag) == (flag != 0)
		},
		gen.Int(),
		gen.Bool(),
	))

	properties.Property("copies never share an id", prop.ForAll(
		func(content string) bool {
			a, err := NewItem(content)
			if err != nil {
				return false
			}
			b, err := NewItem(a)
			return err == nil && a.ID() != b.ID() && a.Content == b.Content
		},
		gen.Identifier(),
	))

	properties.TestingRun(t)
}
