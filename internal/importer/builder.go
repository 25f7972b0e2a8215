package importer

// treeBuilder accumulates the canonical tree for the adapters that
// produce nested output directly (markdown, tagged text). Categories
// and sub-categories merge by name, insertion order preserved.
type treeBuilder struct {
	result   *Result
	catIndex map[string]int
	subIndex map[string]map[string]int

	curCat string
	curSub string
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{
		result:   &Result{Categories: []Category{}},
		catIndex: map[string]int{},
		subIndex: map[string]map[string]int{},
	}
}

func (b *treeBuilder) setCategory(name string) {
	if _, ok := b.catIndex[name]; !ok {
		b.result.Categories = append(b.result.Categories, Category{
			Name:          name,
			SubCategories: []SubCategory{},
		})
		b.catIndex[name] = len(b.result.Categories) - 1
		b.subIndex[name] = map[string]int{}
	}
	b.curCat = name
	b.curSub = ""
}

func (b *treeBuilder) setSubCategory(name string) {
	b.curSub = name
}

// addItem appends an item under the current category/sub-category.
// Items seen before any category heading have no home and are dropped.
func (b *treeBuilder) addItem(item MenuItem) {
	if b.curCat == "" {
		return
	}

	subName := b.curSub
	if subName == "" {
		subName = DefaultSubCategory
	}

	ci := b.catIndex[b.curCat]

	si, ok := b.subIndex[b.curCat][subName]
	if !ok {
		cat := &b.result.Categories[ci]
		cat.SubCategories = append(cat.SubCategories, SubCategory{
			Name:  subName,
			Items: []MenuItem{},
		})
		si = len(cat.SubCategories) - 1
		b.subIndex[b.curCat][subName] = si
	}

	sub := &b.result.Categories[ci].SubCategories[si]
	sub.Items = append(sub.Items, item)
}
