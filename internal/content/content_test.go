package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SectionsInOrder(t *testing.T) {
	c := NewCatalog()

	ids := make([]string, 0, 6)
	for _, s := range c.Sections() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"home", "technology", "capabilities", "cases", "research", "contact"}, ids)
	assert.Equal(t, "Главная", c.Sections()[0].Label)
}

func TestCatalog_SectionsReturnsCopy(t *testing.T) {
	c := NewCatalog()
	s := c.Sections()
	s[0].Label = "changed"

	assert.Equal(t, "Главная", c.Sections()[0].Label)
}

func TestCatalog_Locate(t *testing.T) {
	c := NewCatalog()

	for _, s := range c.Sections() {
		region, ok := c.Locate(s.ID)
		require.True(t, ok, s.ID)
		assert.Equal(t, s.ID, region.SectionID)
		assert.Equal(t, "#"+s.ID, region.Anchor)
		assert.True(t, c.Has(s.ID))
	}

	_, ok := c.Locate("pricing")
	assert.False(t, ok)
	assert.False(t, c.Has(""))
}

func TestCopy_Shape(t *testing.T) {
	assert.Len(t, Capabilities, 6)
	assert.Len(t, Cases, 4)
	assert.Len(t, Publications, 3)
	assert.Len(t, Contact.Fields, 4)

	for _, v := range Volume {
		assert.LessOrEqual(t, v.Height, 100)
	}
	for _, s := range TaskScores {
		assert.Greater(t, s.AI, s.Traditional, s.Task)
	}
}
