package bank

import "fmt"

// Category is the exam subject a question belongs to. The source workbook
// carries the Hebrew label in its category column; the mapping is closed and
// exact in both directions.
type Category int

const (
	CategorySafety Category = iota
	CategoryTrafficLaws
	CategoryRoadSigns
	CategoryCarKnowledge
)

const (
	labelSafety       = "בטיחות"
	labelTrafficLaws  = "חוקי התנועה"
	labelRoadSigns    = "תמרורים"
	labelCarKnowledge = "הכרת הרכב"
)

var categoryByLabel = map[string]Category{
	labelSafety:       CategorySafety,
	labelTrafficLaws:  CategoryTrafficLaws,
	labelRoadSigns:    CategoryRoadSigns,
	labelCarKnowledge: CategoryCarKnowledge,
}

var labelByCategory = map[Category]string{
	CategorySafety:       labelSafety,
	CategoryTrafficLaws:  labelTrafficLaws,
	CategoryRoadSigns:    labelRoadSigns,
	CategoryCarKnowledge: labelCarKnowledge,
}

// CategoryFromLabel resolves a Hebrew category label from the workbook.
// An unrecognized label is an error, never a default category.
func CategoryFromLabel(label string) (Category, error) {
	c, ok := categoryByLabel[label]
	if !ok {
		return 0, fmt.Errorf("unknown category label %q", label)
	}
	return c, nil
}

// Label returns the Hebrew label the workbook uses for this category.
func (c Category) Label() string {
	return labelByCategory[c]
}

func (c Category) String() string {
	switch c {
	case CategorySafety:
		return "safety"
	case CategoryTrafficLaws:
		return "traffic_laws"
	case CategoryRoadSigns:
		return "road_signs"
	case CategoryCarKnowledge:
		return "car_knowledge"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// MarshalJSON emits the stable snake_case name rather than the numeric value.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// CategoryFromName resolves the snake_case name used in JSON and query
// parameters, the inverse of String.
func CategoryFromName(name string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Categories lists every category in declaration order.
func Categories() []Category {
	return []Category{CategorySafety, CategoryTrafficLaws, CategoryRoadSigns, CategoryCarKnowledge}
}
