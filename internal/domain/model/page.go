package model

// PageDescriptor describes a bounded slice of the ordered user collection.
type PageDescriptor struct {
	CurrentPage int
	PageSize    int
	TotalCount  int
	TotalPages  int
	HasPrevious bool
	HasNext     bool
}

// Page holds one window of users together with its navigation metadata.
type Page struct {
	Descriptor PageDescriptor
	Items      []User
}
