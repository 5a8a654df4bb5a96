package services

import (
	"calipollo/internal/catalog"
	"calipollo/internal/domain"
	"calipollo/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

// Browse runs the filter/sort pipeline over the available menu.
func (s *CatalogService) Browse(p catalog.Pipeline) ([]domain.Product, error) {
	products, err := s.Prods.ListAvailable()
	if err != nil {
		return nil, err
	}
	return p.Apply(products), nil
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}
