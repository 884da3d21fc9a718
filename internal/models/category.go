package models

// Category groups products. Its product list behaves as a set.
type Category struct {
	ID          int64      `json:"categoryId" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"categoryName" gorm:"size:45;uniqueIndex;not null"`
	Products    []*Product `json:"products" gorm:"many2many:category_product;"`
	Created     Date       `json:"categoryCreated" gorm:"column:created"`
	LastUpdated Date       `json:"categoryUpdated" gorm:"column:last_updated"`
}

func (Category) TableName() string {
	return "categories"
}

// Equal compares categories by name.
func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}

	return c.Name == other.Name
}

func (c *Category) StampDates() {
	today := Today()

	if c.Created.IsZero() {
		c.Created = today
	}
	if c.LastUpdated.IsZero() {
		c.LastUpdated = today
	}
}

// HasProduct reports whether an equal product is already a member.
func (c *Category) HasProduct(product *Product) bool {
	return c.indexOf(product) >= 0
}

// AddProduct adds product unless an equal one is already present.
// It reports whether the set changed.
func (c *Category) AddProduct(product *Product) bool {
	if c.HasProduct(product) {
		return false
	}

	c.Products = append(c.Products, product)

	return true
}

// RemoveProduct removes the member equal to product and reports whether it was present.
func (c *Category) RemoveProduct(product *Product) bool {
	i := c.indexOf(product)
	if i < 0 {
		return false
	}

	c.Products = append(c.Products[:i], c.Products[i+1:]...)

	return true
}

func (c *Category) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.Products))
	for _, p := range c.Products {
		ids = append(ids, p.ID)
	}

	return ids
}

func (c *Category) indexOf(product *Product) int {
	for i, p := range c.Products {
		if p.ID != 0 && p.ID == product.ID {
			return i
		}
		if p.Equal(product) {
			return i
		}
	}

	return -1
}

type CreateCategoryRequest struct {
	Name        string `json:"categoryName" validate:"required,max=45"`
	Created     Date   `json:"categoryCreated"`
	LastUpdated Date   `json:"categoryUpdated"`
}

func (r *CreateCategoryRequest) ToCategory() *Category {
	category := &Category{
		Name:        r.Name,
		Products:    []*Product{},
		Created:     r.Created,
		LastUpdated: r.LastUpdated,
	}
	category.StampDates()

	return category
}

func (r *CreateCategoryRequest) Sanitize(clean func(string) string) {
	r.Name = clean(r.Name)
}
