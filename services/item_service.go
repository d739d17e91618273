package services

import (
	"errors"

	"moving-tracker/constants"
	"moving-tracker/dto"
	"moving-tracker/models"
	"moving-tracker/repositories"

	"gorm.io/gorm"
)

type IItemService interface {
	FindAll() ([]dto.ItemResponse, error)
	Create(name string, imagePath *string, userID uint) (*models.Item, error)
	Delete(itemID uint) error
	Vote(itemID uint, userID uint, input dto.VoteInput) error
	UpdateDecision(itemID uint, decision *string) error
}

type ItemService struct {
	itemRepository repositories.IItemRepository
	voteRepository repositories.IVoteRepository
}

func NewItemService(itemRepository repositories.IItemRepository, voteRepository repositories.IVoteRepository) IItemService {
	return &ItemService{
		itemRepository: itemRepository,
		voteRepository: voteRepository,
	}
}

func (s *ItemService) FindAll() ([]dto.ItemResponse, error) {
	items, err := s.itemRepository.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ItemResponse, 0, len(*items))
	for _, item := range *items {
		votes := make([]dto.VoteResponse, 0, len(item.Votes))
		for _, vote := range item.Votes {
			votes = append(votes, dto.VoteResponse{
				UserID:   vote.UserID,
				Username: vote.User.DisplayName,
				Vote:     vote.Vote,
				Comment:  vote.Comment,
			})
		}
		responses = append(responses, dto.ItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			ImagePath:     item.ImagePath,
			Decision:      item.Decision,
			CreatedBy:     item.CreatedBy,
			CreatedByName: item.Creator.DisplayName,
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
			Votes:         votes,
		})
	}
	return responses, nil
}

func (s *ItemService) Create(name string, imagePath *string, userID uint) (*models.Item, error) {
	newItem := models.Item{
		Name:      name,
		ImagePath: imagePath,
		CreatedBy: userID,
	}
	return s.itemRepository.Create(newItem)
}

func (s *ItemService) Delete(itemID uint) error {
	err := s.itemRepository.Delete(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New(constants.ErrItemNotFound)
	}
	return err
}

func (s *ItemService) Vote(itemID uint, userID uint, input dto.VoteInput) error {
	if !constants.IsValidVote(input.Vote) {
		return errors.New(constants.ErrInvalidVote)
	}

	if _, err := s.itemRepository.FindById(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New(constants.ErrItemNotFound)
		}
		return err
	}

	return s.voteRepository.Upsert(models.Vote{
		ItemID:  itemID,
		UserID:  userID,
		Vote:    input.Vote,
		Comment: input.Comment,
	})
}

// UpdateDecision overwrites the item's decision unconditionally. An empty
// or absent decision clears the field and re-opens the item.
func (s *ItemService) UpdateDecision(itemID uint, decision *string) error {
	if decision != nil && *decision == "" {
		decision = nil
	}
	if decision != nil && !constants.IsValidVote(*decision) {
		return errors.New(constants.ErrInvalidDecision)
	}
	return s.itemRepository.UpdateDecision(itemID, decision)
}
