package store

import "github.com/rogerio-castellano/shophub/internal/models"

// Favorites is the set of products a shopper liked, kept in the order they were added.
type Favorites struct {
	products []models.Product
}

func NewFavorites() *Favorites {
	return &Favorites{products: []models.Product{}}
}

// Add appends product unless a product with the same id is already there.
func (f *Favorites) Add(product models.Product) {
	if f.IsFavorite(product.ID) {
		return
	}
	f.products = append(f.products, product)
}

func (f *Favorites) Remove(productID int) {
	for i, p := range f.products {
		if p.ID == productID {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return
		}
	}
}

func (f *Favorites) IsFavorite(productID int) bool {
	for _, p := range f.products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

// Toggle flips the membership of product and reports whether it is now a favorite.
func (f *Favorites) Toggle(product models.Product) bool {
	if f.IsFavorite(product.ID) {
		f.Remove(product.ID)
		return false
	}
	f.products = append(f.products, product)
	return true
}

// List returns a copy of the favorites.
func (f *Favorites) List() []models.Product {
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out
}

func (f *Favorites) Len() int {
	return len(f.products)
}

func (f *Favorites) Snapshot() []models.Product {
	return f.List()
}

// RestoreFavorites rebuilds the set from a snapshot, keeping the first of any repeated id.
func RestoreFavorites(products []models.Product) *Favorites {
	f := NewFavorites()
	for _, p := range products {
		f.Add(p)
	}
	return f
}
