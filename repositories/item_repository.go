package repositories

import (
	"time"

	"moving-tracker/models"

	"gorm.io/gorm"
)

type IItemRepository interface {
	FindAll() (*[]models.Item, error)
	FindById(itemID uint) (*models.Item, error)
	Create(newItem models.Item) (*models.Item, error)
	UpdateDecision(itemID uint, decision *string) error
	Delete(itemID uint) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(newItem models.Item) (*models.Item, error) {
	result := r.db.Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newItem, nil
}

// FindAll returns items newest-first with creator and votes (and each
// vote's user) preloaded, so the caller gets nested collections instead
// of a flat join that would repeat item fields once per vote.
func (r *ItemRepository) FindAll() (*[]models.Item, error) {
	var items []models.Item
	result := r.db.
		Preload("Creator").
		Preload("Votes").
		Preload("Votes.User").
		Order("created_at DESC, id DESC").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return &items, nil
}

func (r *ItemRepository) FindById(itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) UpdateDecision(itemID uint, decision *string) error {
	result := r.db.Model(&models.Item{}).
		Where("id = ?", itemID).
		Updates(map[string]interface{}{"decision": decision, "updated_at": time.Now()})
	return result.Error
}

// Delete removes the item and all of its votes. The cascade runs in a
// transaction rather than relying on the driver's foreign-key pragma.
func (r *ItemRepository) Delete(itemID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Vote{}, "item_id = ?", itemID).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Item{}, "id = ?", itemID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
