package models

// ProductCollection is the body of product list responses.
type ProductCollection struct {
	Products []*Product `json:"products"`
}

// CategoryCollection is the body of category list responses.
type CategoryCollection struct {
	Categories []*Category `json:"categories"`
}

// WindowParams holds the optional 1-based inclusive bounds of a list request.
type WindowParams struct {
	First *int
	Last  *int
}
