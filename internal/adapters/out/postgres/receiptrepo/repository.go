package receiptrepo

import (
	"context"
	"errors"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/receipt"
	"stockflow/internal/core/ports"
	"stockflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormReceiptRepository implements ports.ReceiptRepository using GORM.
type GormReceiptRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB, tracker aggregateTracker) *GormReceiptRepository {
	return &GormReceiptRepository{
		db:      db,
		tracker: tracker,
	}
}

func applyFetchMode(db *gorm.DB, mode ports.FetchMode) *gorm.DB {
	switch mode {
	case ports.FetchActiveOnly:
		return db.Where("deleted_at IS NULL")
	case ports.FetchDeletedOnly:
		return db.Where("deleted_at IS NOT NULL")
	default:
		return db
	}
}

// Add inserts a new receipt with its lines and assigns the generated identity
// back to the aggregate.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = aggregate.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the receipt's current state, replacing its lines wholesale.
func (r *GormReceiptRepository) Update(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&ReceiptDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "last_status_changed_at", "deleted_at").
		Updates(map[string]any{
			"status":                 dto.Status,
			"last_status_changed_at": dto.LastStatusChangedAt,
			"deleted_at":             dto.DeletedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("receipt", aggregate.ID().String())
	}

	if err := db.Where("receipt_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	for i := range dto.Lines {
		dto.Lines[i].ReceiptID = dto.ID
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves one receipt by identity within the given soft-delete view.
func (r *GormReceiptRepository) Get(
	ctx context.Context,
	id kernel.ID,
	mode ports.FetchMode,
) (*receipt.Receipt, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReceiptDTO
	db := applyFetchMode(r.db.WithContext(ctx), mode)
	if err := db.Preload("Lines").First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves all receipts matching the identities within the given
// view, sorted by id.
func (r *GormReceiptRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.ID,
	mode ports.FetchMode,
) ([]*receipt.Receipt, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Int64())
	}

	var dtos []ReceiptDTO
	db := applyFetchMode(r.db.WithContext(ctx), mode)
	if err := db.Preload("Lines").Order("id").Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	receipts := make([]*receipt.Receipt, 0, len(dtos))
	for _, dto := range dtos {
		rec, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, rec)
	}

	return receipts, nil
}
