package catalogservice

import (
	"context"
	"errors"

	catalogrepo "github.com/aibaljacob/prodigi/internal/repo/catalog-repo"

	"github.com/aibaljacob/prodigi/internal/domain"
	"github.com/aibaljacob/prodigi/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

type CatalogRepo interface {
	ListCategories(ctx context.Context, onlyActive bool) ([]domain.Category, error)
	CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, c *domain.Category) error
	SetCategoryActive(ctx context.Context, categoryID int, isActive bool) error
	ListProducts(ctx context.Context, filter catalogrepo.ProductFilter) ([]domain.Product, int, error)
	FindProductByID(ctx context.Context, id int) (*domain.Product, error)
	FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, p *domain.Product) error
	SetProductActive(ctx context.Context, productID int, isActive bool) error
	SetProductApproved(ctx context.Context, productID int, isApproved bool) error
	Store(ctx context.Context) (*domain.Store, error)
}

type ReviewRepo interface {
	ListApprovedByProduct(ctx context.Context, productID int) ([]domain.Review, error)
}

type Service struct {
	catalogRepo CatalogRepo
	reviewRepo  ReviewRepo

	downloadLimit       int
	downloadExpiryHours int
}

func New(catalogRepo CatalogRepo, reviewRepo ReviewRepo, downloadLimit, downloadExpiryHours int) *Service {
	return &Service{
		catalogRepo:         catalogRepo,
		reviewRepo:          reviewRepo,
		downloadLimit:       downloadLimit,
		downloadExpiryHours: downloadExpiryHours,
	}
}

var (
	ErrNotFound  = errors.New("not found")
	ErrSlugTaken = errors.New("slug already taken")
)

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.catalogRepo.ListCategories(ctx, true)
}

func (s *Service) ListProducts(ctx context.Context, categoryID int, search string, page, perPage int) ([]domain.Product, int, error) {
	return s.catalogRepo.ListProducts(ctx, catalogrepo.ProductFilter{
		CategoryID:  categoryID,
		Search:      search,
		Page:        page,
		PerPage:     perPage,
		OnlyVisible: true,
	})
}

// GetProduct returns a storefront-visible product with its approved reviews.
func (s *Service) GetProduct(ctx context.Context, slug string) (*domain.Product, []domain.Review, error) {
	product, err := s.catalogRepo.FindProductBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if product == nil || !product.IsActive || !product.IsApproved {
		return nil, nil, ErrNotFound
	}

	reviews, err := s.reviewRepo.ListApprovedByProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return product, reviews, nil
}

func (s *Service) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	category, err := s.catalogRepo.CreateCategory(ctx, &domain.Category{
		CategoryName: name,
		Slug:         slug,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, category *domain.Category) error {
	err := s.catalogRepo.UpdateCategory(ctx, category)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return ErrSlugTaken
		}
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteCategory(ctx context.Context, categoryID int) error {
	err := s.catalogRepo.SetCategoryActive(ctx, categoryID, false)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// CreateProduct assigns the single store and fills the configured download
// policy where the caller left it unset. A zero limit would otherwise mean
// unlimited downloads, so new products never keep it implicitly.
func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	store, err := s.catalogRepo.Store(ctx)
	if err != nil {
		return nil, err
	}
	product.StoreID = store.ID
	if product.DownloadLimit == 0 {
		product.DownloadLimit = s.downloadLimit
	}
	if product.DownloadExpiryHours == 0 {
		product.DownloadExpiryHours = s.downloadExpiryHours
	}

	created, err := s.catalogRepo.CreateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	zap.L().Info("product created", zap.Int("productID", created.ID), zap.String("slug", created.Slug))
	return created, nil
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) error {
	err := s.catalogRepo.UpdateProduct(ctx, product)
	if err != nil {
		if errors.Is(err, pg.ErrUniqueViolation) {
			return ErrSlugTaken
		}
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteProduct soft-deletes via is_active; transactions keep referencing it.
func (s *Service) DeleteProduct(ctx context.Context, productID int) error {
	err := s.catalogRepo.SetProductActive(ctx, productID, false)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ApproveProduct(ctx context.Context, productID int, isApproved bool) error {
	err := s.catalogRepo.SetProductApproved(ctx, productID, isApproved)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
