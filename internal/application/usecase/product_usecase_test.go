package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *memCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	delete(r.categories, id)
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(productID string, quantity int64) error {
	if p, ok := r.products[productID]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *memProductRepo) List(categoryID string, limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID != "" && p.CategoryID != categoryID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func seedCategory(t *testing.T, repo *memCategoryRepo, id, name string) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Category{ID: id, Name: name}))
}

// ──────────────────────────────────────────────────────────────────────────────
// ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_RedondeaPrecioYResuelveCategoria(t *testing.T) {
	catRepo := newMemCategoryRepo()
	prodRepo := newMemProductRepo()
	seedCategory(t, catRepo, "cat-1", "ferretería")
	uc := usecase.NewProductUseCase(prodRepo, catRepo)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:       "tornillos",
		CategoryID: "cat-1",
		Quantity:   100,
		UnitPrice:  decimal.RequireFromString("2.505"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2.51", out.UnitPrice.String(), "unit_price se redondea a 2 decimales")
	assert.Equal(t, "ferretería", out.CategoryName)
}

func TestProductCreate_CategoriaInexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), newMemCategoryRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "tornillos", CategoryID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La edición directa de quantity por el catálogo no genera asiento: es el
// segundo camino de escritura heredado y se conserva.
func TestProductUpdate_PermiteSobrescribirQuantity(t *testing.T) {
	catRepo := newMemCategoryRepo()
	prodRepo := newMemProductRepo()
	seedCategory(t, catRepo, "cat-1", "ferretería")
	uc := usecase.NewProductUseCase(prodRepo, catRepo)

	created, err := uc.Create(dto.CreateProductRequest{
		Name: "tornillos", CategoryID: "cat-1", Quantity: 100,
	})
	require.NoError(t, err)

	newQty := int64(7)
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Quantity: &newQty})
	require.NoError(t, err)
	assert.EqualValues(t, 7, out.Quantity)

	stored, _ := prodRepo.GetByID(created.ID)
	assert.EqualValues(t, 7, stored.Quantity)
}

func TestProductList_FiltraPorCategoria(t *testing.T) {
	catRepo := newMemCategoryRepo()
	prodRepo := newMemProductRepo()
	seedCategory(t, catRepo, "cat-1", "ferretería")
	seedCategory(t, catRepo, "cat-2", "pinturas")
	uc := usecase.NewProductUseCase(prodRepo, catRepo)

	_, err := uc.Create(dto.CreateProductRequest{Name: "tornillos", CategoryID: "cat-1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Name: "esmalte", CategoryID: "cat-2"})
	require.NoError(t, err)

	out, err := uc.List("cat-2", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "esmalte", out.Items[0].Name)
}

func TestProductDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo(), newMemCategoryRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreDuplicado_RetornaDuplicate(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "ferretería"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateCategoryRequest{Name: "ferretería"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryUpdate_CambioANombreOcupado_RetornaDuplicate(t *testing.T) {
	repo := newMemCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "ferretería"})
	require.NoError(t, err)
	created, err := uc.Create(dto.CreateCategoryRequest{Name: "pinturas"})
	require.NoError(t, err)

	taken := "ferretería"
	_, err = uc.Update(created.ID, dto.UpdateCategoryRequest{Name: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newMemCategoryRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
