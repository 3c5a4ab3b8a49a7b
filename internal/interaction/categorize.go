package interaction

// Group holds the entries of one element that share a recognition family.
type Group struct {
	Element Element
	Family  Family
	Entries []*Entry
}

// Entry returns the group's entry for gt, or nil.
func (g *Group) Entry(gt GestureType) *Entry {
	for _, e := range g.Entries {
		if e.Type == gt {
			return e
		}
	}
	return nil
}

// groupKey identifies a group.
type groupKey struct {
	el  Element
	fam Family
}

// Categories is the result of Categorize.
type Categories struct {
	groups []*Group
	index  map[groupKey]*Group
}

// Categorize groups entries by (element, family). Groups keep the order in
// which they were first encountered and entries keep their input order.
// It does not modify its input and may be called any number of times.
func Categorize(entries []*Entry) *Categories {
	c := &Categories{
		index: make(map[groupKey]*Group),
	}
	for _, e := range entries {
		fam := e.Family()
		if fam == FamilyNone {
			continue
		}
		k := groupKey{el: e.Element, fam: fam}
		g, ok := c.index[k]
		if !ok {
			g = &Group{Element: e.Element, Family: fam}
			c.index[k] = g
			c.groups = append(c.groups, g)
		}
		g.Entries = append(g.Entries, e)
	}
	return c
}

// Groups returns all groups in creation order.
func (c *Categories) Groups() []*Group {
	out := make([]*Group, len(c.groups))
	copy(out, c.groups)
	return out
}

// Group returns the group for (el, fam).
func (c *Categories) Group(el Element, fam Family) (*Group, bool) {
	if isNilElement(el) || !isComparable(el) {
		return nil, false
	}
	g, ok := c.index[groupKey{el: el, fam: fam}]
	return g, ok
}

// Len returns the number of groups.
func (c *Categories) Len() int {
	return len(c.groups)
}
