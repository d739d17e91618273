package repositories

import (
	"moving-tracker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IVoteRepository interface {
	Upsert(vote models.Vote) error
	FindByItem(itemID uint) (*[]models.Vote, error)
}

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) IVoteRepository {
	return &VoteRepository{db: db}
}

// Upsert inserts the vote, or on a (item_id, user_id) conflict overwrites
// the existing row's vote, comment and timestamp. Last writer wins; there
// is never more than one row per user per item.
func (r *VoteRepository) Upsert(vote models.Vote) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote", "comment", "created_at"}),
	}).Create(&vote)
	return result.Error
}

func (r *VoteRepository) FindByItem(itemID uint) (*[]models.Vote, error) {
	var votes []models.Vote
	result := r.db.Preload("User").Find(&votes, "item_id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &votes, nil
}
