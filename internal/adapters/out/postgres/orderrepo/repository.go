package orderrepo

import (
	"context"
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
	"stockflow/internal/core/ports"
	"stockflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// applyFetchMode narrows a query to the requested soft-delete view.
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

// Add inserts a new order with its lines and assigns the generated identity
// back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update persists the order's current state. The line collection is replaced
// wholesale: stored lines are dropped and the aggregate's lines re-inserted.
// Selecting the lifecycle columns by name forces writing their nil values
// too, so a restore clears deleted_at.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "last_status_changed_at", "deleted_at", "finished_by").
		Updates(map[string]any{
			"status":                 dto.Status,
			"last_status_changed_at": dto.LastStatusChangedAt,
			"deleted_at":             dto.DeletedAt,
			"finished_by":            dto.FinishedBy,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	for i := range dto.Lines {
		dto.Lines[i].OrderID = dto.ID
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves one order by identity within the given soft-delete view.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID, mode ports.FetchMode) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	db := applyFetchMode(r.db.WithContext(ctx), mode)
	if err := db.Preload("Lines").First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves all orders matching the identities within the given
// view, sorted by id. Missing identities are simply absent from the result.
func (r *GormOrderRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.ID,
	mode ports.FetchMode,
) ([]*order.Order, error) {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Int64())
	}

	var dtos []OrderDTO
	db := applyFetchMode(r.db.WithContext(ctx), mode)
	if err := db.Preload("Lines").Order("id").Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPendingBefore retrieves active pending orders whose last status change
// is older than the cutoff.
func (r *GormOrderRepository) GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Where("status = ? AND last_status_changed_at < ? AND deleted_at IS NULL", order.StatusPending.String(), cutoff).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
