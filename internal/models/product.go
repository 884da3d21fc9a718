package models

// Product is a catalog item identified by its SKU.
type Product struct {
	ID          int64  `json:"productId" gorm:"primaryKey;autoIncrement"`
	SKU         string `json:"productSku" gorm:"column:sku;size:45;uniqueIndex;not null"`
	Name        string `json:"productName" gorm:"size:45;not null"`
	Created     Date   `json:"productCreated" gorm:"column:created"`
	LastUpdated Date   `json:"productLastUpdated" gorm:"column:last_updated"`
}

func (Product) TableName() string {
	return "products"
}

// Equal compares products by their (sku, name) pair, ignoring identity.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.SKU == other.SKU && p.Name == other.Name
}

// StampDates defaults unset dates to today.
func (p *Product) StampDates() {
	today := Today()

	if p.Created.IsZero() {
		p.Created = today
	}
	if p.LastUpdated.IsZero() {
		p.LastUpdated = today
	}
}

type CreateProductRequest struct {
	SKU         string `json:"productSku" validate:"required,max=45"`
	Name        string `json:"productName" validate:"required,max=45"`
	Created     Date   `json:"productCreated"`
	LastUpdated Date   `json:"productLastUpdated"`
}

func (r *CreateProductRequest) ToProduct() *Product {
	product := &Product{
		SKU:         r.SKU,
		Name:        r.Name,
		Created:     r.Created,
		LastUpdated: r.LastUpdated,
	}
	product.StampDates()

	return product
}

// UpdateProductRequest carries optional replacements; nil fields keep the stored value.
type UpdateProductRequest struct {
	SKU  *string `json:"productSku,omitempty" validate:"omitempty,min=1,max=45"`
	Name *string `json:"productName,omitempty" validate:"omitempty,min=1,max=45"`
}

func (r *CreateProductRequest) Sanitize(clean func(string) string) {
	r.SKU = clean(r.SKU)
	r.Name = clean(r.Name)
}

func (r *UpdateProductRequest) Sanitize(clean func(string) string) {
	if r.SKU != nil {
		sku := clean(*r.SKU)
		r.SKU = &sku
	}
	if r.Name != nil {
		name := clean(*r.Name)
		r.Name = &name
	}
}
