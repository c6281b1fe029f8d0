// Package content holds the fixed copy of the landing page and resolves
// section ids to scroll anchors.
package content

import (
	"github.com/pr-poehali-dev/ai-promotion-design/internal/navigation"
)

const Brand = "NeuroTech AI"

// Section ids in page order.
const (
	SectionHome         = "home"
	SectionTechnology   = "technology"
	SectionCapabilities = "capabilities"
	SectionCases        = "cases"
	SectionResearch     = "research"
	SectionContact      = "contact"
)

var sections = []navigation.Section{
	{ID: SectionHome, Label: "Главная"},
	{ID: SectionTechnology, Label: "Технология"},
	{ID: SectionCapabilities, Label: "Возможности"},
	{ID: SectionCases, Label: "Кейсы"},
	{ID: SectionResearch, Label: "Исследования"},
	{ID: SectionContact, Label: "Контакты"},
}

// Catalog is the SectionLocator backed by the rendered page. Every section
// renders an element whose id equals the section id.
type Catalog struct {
	index map[string]int
}

// NewCatalog indexes the page sections.
func NewCatalog() *Catalog {
	idx := make(map[string]int, len(sections))
	for i, s := range sections {
		idx[s.ID] = i
	}
	return &Catalog{index: idx}
}

// Sections returns the sections in page order.
func (c *Catalog) Sections() []navigation.Section {
	return append([]navigation.Section(nil), sections...)
}

// Locate returns the anchor for id, or false when the page has no such section.
func (c *Catalog) Locate(id string) (navigation.Region, bool) {
	if _, ok := c.index[id]; !ok {
		return navigation.Region{}, false
	}
	return navigation.Region{SectionID: id, Anchor: "#" + id}, true
}

// Has reports whether id names a section.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

var _ navigation.SectionLocator = (*Catalog)(nil)
