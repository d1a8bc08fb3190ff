package boxchart

// Categories is an ordered list of distinct category labels. The position
// of a label is the X coordinate of all items in that category.
type Categories struct {
	Labels []string
	index  map[string]int
}

// NewCategories returns an empty category list.
func NewCategories() *Categories {
	return &Categories{index: make(map[string]int)}
}

// Add returns the index of label, appending it if it has not been seen
// before.
func (c *Categories) Add(label string) int {
	if i, ok := c.index[label]; ok {
		return i
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	i := len(c.Labels)
	c.Labels = append(c.Labels, label)
	c.index[label] = i
	return i
}

// Index returns the position of label.
func (c *Categories) Index(label string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[label]
	return i, ok
}

// Len returns the number of distinct categories.
func (c *Categories) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Labels)
}

// Group partitions the record indices by category. The result is indexed
// like c.Labels and each group keeps source order, so the position of a
// record inside its group is its ordinal within the category cluster.
func (c *Categories) Group(n int, category func(i int) string) [][]int {
	groups := make([][]int, c.Len())
	for i := 0; i < n; i++ {
		k, ok := c.Index(category(i))
		if !ok {
			continue
		}
		groups[k] = append(groups[k], i)
	}
	return groups
}
