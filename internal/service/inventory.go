package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"github.com/crmrapid/portal/internal/domain"
	"github.com/crmrapid/portal/internal/money"
	"github.com/crmrapid/portal/internal/repository"
)

// InventoryItem is the API view of an inventory row. LowStock is derived at
// read time, never stored.
type InventoryItem struct {
	ID            string    `json:"id"`
	CategoryID    string    `json:"category_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	SKU           string    `json:"sku,omitempty"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	StockQuantity int       `json:"stock_quantity"`
	ReorderPoint  int       `json:"reorder_point"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// InventoryCategory is the API view of a category row.
type InventoryCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// InventoryItemParams are the mutable fields of an inventory item, shared
// by create and update.
type InventoryItemParams struct {
	CategoryID    string  `json:"category_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SKU           string  `json:"sku"`
	Price         float64 `json:"price"`
	Cost          float64 `json:"cost"`
	StockQuantity int     `json:"stock_quantity"`
	ReorderPoint  int     `json:"reorder_point"`
}

// InventoryService manages inventory items and categories.
type InventoryService interface {
	ListItems(ctx context.Context) ([]InventoryItem, error)
	GetItem(ctx context.Context, id string) (*InventoryItem, error)
	CreateItem(ctx context.Context, params InventoryItemParams) (*InventoryItem, error)
	UpdateItem(ctx context.Context, id string, params InventoryItemParams) (*InventoryItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]InventoryCategory, error)
	CreateCategory(ctx context.Context, name string) (*InventoryCategory, error)
}

type inventoryService struct {
	repo      repository.Querier
	accountID pgtype.UUID
}

// NewInventoryService creates a new InventoryService instance.
func NewInventoryService(repo repository.Querier, accountID string) (InventoryService, error) {
	var accountUUID pgtype.UUID
	if err := accountUUID.Scan(accountID); err != nil {
		return nil, fmt.Errorf("invalid account ID: %w", err)
	}
	return &inventoryService{repo: repo, accountID: accountUUID}, nil
}

func (s *inventoryService) ListItems(ctx context.Context) ([]InventoryItem, error) {
	rows, err := s.repo.ListInventoryItems(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "inventory.list", "failed to list inventory items")
	}
	items := make([]InventoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, inventoryItemFromRow(row))
	}
	return items, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id string) (*InventoryItem, error) {
	itemID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("inventory.get", "invalid item id")
	}
	row, err := s.repo.GetInventoryItem(ctx, repository.GetInventoryItemParams{
		ID:        itemID,
		AccountID: s.accountID,
	})
	if err != nil {
		return nil, domain.NotFound("inventory.get", "inventory item", id)
	}
	item := inventoryItemFromRow(row)
	return &item, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, params InventoryItemParams) (*InventoryItem, error) {
	if err := validateItemParams("inventory.create", params); err != nil {
		return nil, err
	}
	categoryID, err := optionalUUID(params.CategoryID)
	if err != nil {
		return nil, domain.Invalid("inventory.create", "invalid category id")
	}

	row, err := s.repo.CreateInventoryItem(ctx, repository.CreateInventoryItemParams{
		AccountID:     s.accountID,
		CategoryID:    categoryID,
		Name:          strings.TrimSpace(params.Name),
		Description:   pgText(params.Description),
		Sku:           pgText(params.SKU),
		Price:         money.Round2(params.Price),
		Cost:          money.Round2(params.Cost),
		StockQuantity: int32(params.StockQuantity),
		ReorderPoint:  int32(params.ReorderPoint),
	})
	if err != nil {
		return nil, domain.Internal(err, "inventory.create", "failed to create inventory item")
	}
	item := inventoryItemFromRow(row)
	return &item, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id string, params InventoryItemParams) (*InventoryItem, error) {
	itemID, err := scanUUID(id)
	if err != nil {
		return nil, domain.Invalid("inventory.update", "invalid item id")
	}
	if err := validateItemParams("inventory.update", params); err != nil {
		return nil, err
	}
	categoryID, err := optionalUUID(params.CategoryID)
	if err != nil {
		return nil, domain.Invalid("inventory.update", "invalid category id")
	}

	row, err := s.repo.UpdateInventoryItem(ctx, repository.UpdateInventoryItemParams{
		ID:            itemID,
		AccountID:     s.accountID,
		CategoryID:    categoryID,
		Name:          strings.TrimSpace(params.Name),
		Description:   pgText(params.Description),
		Sku:           pgText(params.SKU),
		Price:         money.Round2(params.Price),
		Cost:          money.Round2(params.Cost),
		StockQuantity: int32(params.StockQuantity),
		ReorderPoint:  int32(params.ReorderPoint),
	})
	if err != nil {
		return nil, domain.NotFound("inventory.update", "inventory item", id)
	}
	item := inventoryItemFromRow(row)
	return &item, nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	itemID, err := scanUUID(id)
	if err != nil {
		return domain.Invalid("inventory.delete", "invalid item id")
	}
	if err := s.repo.DeleteInventoryItem(ctx, repository.DeleteInventoryItemParams{
		ID:        itemID,
		AccountID: s.accountID,
	}); err != nil {
		return domain.Internal(err, "inventory.delete", "failed to delete inventory item")
	}
	return nil
}

func (s *inventoryService) ListCategories(ctx context.Context) ([]InventoryCategory, error) {
	rows, err := s.repo.ListInventoryCategories(ctx, s.accountID)
	if err != nil {
		return nil, domain.Internal(err, "inventory.categories", "failed to list categories")
	}
	categories := make([]InventoryCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, InventoryCategory{
			ID:        uuidString(row.ID),
			Name:      row.Name,
			CreatedAt: tsValue(row.CreatedAt),
		})
	}
	return categories, nil
}

func (s *inventoryService) CreateCategory(ctx context.Context, name string) (*InventoryCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("inventory.category.create", "name", "name is required")
	}
	row, err := s.repo.CreateInventoryCategory(ctx, repository.CreateInventoryCategoryParams{
		AccountID: s.accountID,
		Name:      name,
	})
	if err != nil {
		// unique(account_id, name)
		return nil, domain.Conflict("inventory.category.create", "category already exists")
	}
	return &InventoryCategory{
		ID:        uuidString(row.ID),
		Name:      row.Name,
		CreatedAt: tsValue(row.CreatedAt),
	}, nil
}

func validateItemParams(op string, params InventoryItemParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return domain.NewValidationError(op, "name", "name is required")
	}
	if params.Price < 0 {
		return domain.NewValidationError(op, "price", "price cannot be negative")
	}
	if params.Cost < 0 {
		return domain.NewValidationError(op, "cost", "cost cannot be negative")
	}
	if params.StockQuantity < 0 {
		return domain.NewValidationError(op, "stock_quantity", "stock quantity cannot be negative")
	}
	return nil
}

// optionalUUID parses an optional id, returning a NULL UUID for "".
func optionalUUID(id string) (pgtype.UUID, error) {
	if id == "" {
		return pgtype.UUID{}, nil
	}
	return scanUUID(id)
}

func inventoryItemFromRow(row repository.InventoryItem) InventoryItem {
	return InventoryItem{
		ID:            uuidString(row.ID),
		CategoryID:    uuidString(row.CategoryID),
		Name:          row.Name,
		Description:   textString(row.Description),
		SKU:           textString(row.Sku),
		Price:         row.Price,
		Cost:          row.Cost,
		StockQuantity: int(row.StockQuantity),
		ReorderPoint:  int(row.ReorderPoint),
		LowStock:      row.StockQuantity <= row.ReorderPoint,
		CreatedAt:     tsValue(row.CreatedAt),
		UpdatedAt:     tsValue(row.UpdatedAt),
	}
}
