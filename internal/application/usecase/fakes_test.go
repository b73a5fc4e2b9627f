package usecase_test

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tu-usuario/modelcar-catalog/internal/domain/entity"
	"github.com/tu-usuario/modelcar-catalog/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Replican la semántica
// de los adaptadores de Mongo que importa a los casos de uso: lecturas
// sin documento devuelven (nil, nil) y PullCompatibleProduct barre todos
// los documentos de la colección.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID.Hex()] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeBrandRepo struct {
	brands map[string]*entity.Brand
}

func newFakeBrandRepo(names ...string) *fakeBrandRepo {
	r := &fakeBrandRepo{brands: map[string]*entity.Brand{}}
	for _, name := range names {
		b := &entity.Brand{ID: primitive.NewObjectID(), Name: name, Logo: "https://cdn.example.com/" + strings.ToLower(name) + ".png"}
		r.brands[b.ID.Hex()] = b
	}
	return r
}

func (r *fakeBrandRepo) Create(_ context.Context, b *entity.Brand) error {
	r.brands[b.ID.Hex()] = b
	return nil
}

func (r *fakeBrandRepo) GetByID(_ context.Context, id string) (*entity.Brand, error) {
	return r.brands[id], nil
}

func (r *fakeBrandRepo) GetByName(_ context.Context, name string) (*entity.Brand, error) {
	for _, b := range r.brands {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBrandRepo) List(_ context.Context) ([]*entity.Brand, error) {
	out := make([]*entity.Brand, 0, len(r.brands))
	for _, b := range r.brands {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBrandRepo) Update(_ context.Context, b *entity.Brand) error {
	r.brands[b.ID.Hex()] = b
	return nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID.Hex()] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.Color != "" && p.Color != filter.Color {
			continue
		}
		if filter.Scale != "" && p.Scale != filter.Scale {
			continue
		}
		if filter.OutOfStock != nil && p.OutOfStock != *filter.OutOfStock {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID.Hex()] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakePartRepo struct {
	parts map[string]*entity.Part
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: map[string]*entity.Part{}}
}

func (r *fakePartRepo) Create(_ context.Context, p *entity.Part) error {
	r.parts[p.ID.Hex()] = p
	return nil
}

func (r *fakePartRepo) GetByID(_ context.Context, id string) (*entity.Part, error) {
	return r.parts[id], nil
}

func (r *fakePartRepo) GetBySlug(_ context.Context, slug string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) GetBySKU(_ context.Context, sku string) (*entity.Part, error) {
	for _, p := range r.parts {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) List(_ context.Context, filter repository.PartFilter) ([]*entity.Part, error) {
	out := make([]*entity.Part, 0, len(r.parts))
	for _, p := range r.parts {
		if filter.Brand != "" && p.Brand != filter.Brand {
			continue
		}
		if filter.Category != "" && !containsString(p.Categories, filter.Category) {
			continue
		}
		if filter.CompatibleWith != "" && !referencesProduct(p, filter.CompatibleWith) {
			continue
		}
		if filter.InStock != nil && p.OutOfStock == *filter.InStock {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePartRepo) ListByCompatibleProduct(_ context.Context, productID string) ([]*entity.Part, error) {
	out := []*entity.Part{}
	for _, p := range r.parts {
		if referencesProduct(p, productID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePartRepo) Update(_ context.Context, p *entity.Part) error {
	r.parts[p.ID.Hex()] = p
	return nil
}

func (r *fakePartRepo) Delete(_ context.Context, id string) error {
	delete(r.parts, id)
	return nil
}

func (r *fakePartRepo) PullCompatibleProduct(_ context.Context, productID string) error {
	for _, p := range r.parts {
		kept := p.CompatibleProductIds[:0]
		for _, oid := range p.CompatibleProductIds {
			if oid.Hex() != productID {
				kept = append(kept, oid)
			}
		}
		p.CompatibleProductIds = kept
	}
	return nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func referencesProduct(p *entity.Part, productID string) bool {
	for _, oid := range p.CompatibleProductIds {
		if oid.Hex() == productID {
			return true
		}
	}
	return false
}
