package domain

type Department struct {
	ID          int64
	Name        string
	Description *string
}

// Category forms a two-level tree: top-level categories have a nil parent,
// subcategories point at their parent category.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
}
