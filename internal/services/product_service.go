package services

import (
	"practico/internal/models"
	"practico/internal/repositories"

	"github.com/rs/zerolog"
)

// ProductService handles business logic related to products.
type ProductService = CRUDService[models.Product, *models.Product, models.ProductRequest, models.ProductResponse]

// ProductDefinition maps products. Products have no uniqueness key; price
// and stock bounds are enforced by ProductRequest.Validate.
var ProductDefinition = Definition[models.Product, models.ProductRequest, models.ProductResponse]{
	Resource: "product",
	NewEntity: func(r models.ProductRequest) models.Product {
		var p models.Product
		applyProduct(&p, r)
		return p
	},
	Apply: applyProduct,
	ToResponse: func(p *models.Product) models.ProductResponse {
		return models.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
			Category:    p.Category,
		}
	},
}

func applyProduct(p *models.Product, r models.ProductRequest) {
	p.Name = r.Name
	p.Description = r.Description
	p.Category = r.Category
	// Requests reaching the service have passed validation, so both are set.
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Stock = *r.Stock
	}
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.Repository[models.Product], publisher EventPublisher, log zerolog.Logger) *ProductService {
	return NewCRUDService[models.Product, *models.Product](repo, ProductDefinition, publisher, log)
}
