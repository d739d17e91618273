package dto

import "time"

type CreateItemInput struct {
	Name string `form:"name" binding:"required"`
}

type CreateItemResponse struct {
	Message   string  `json:"message"`
	ItemID    uint    `json:"itemId"`
	ImagePath *string `json:"imagePath"`
}

type VoteInput struct {
	Vote    string  `json:"vote" binding:"required"`
	Comment *string `json:"comment"`
}

type DecisionInput struct {
	Decision *string `json:"decision"`
}

// ItemResponse uses the snake_case field names both clients already bind to.
type ItemResponse struct {
	ID            uint           `json:"id"`
	Name          string         `json:"name"`
	ImagePath     *string        `json:"image_path"`
	Decision      *string        `json:"decision"`
	CreatedBy     uint           `json:"created_by"`
	CreatedByName string         `json:"created_by_name"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Votes         []VoteResponse `json:"votes"`
}

// VoteResponse carries the voter's display name in the username field,
// matching what the clients render.
type VoteResponse struct {
	UserID   uint    `json:"user_id"`
	Username string  `json:"username"`
	Vote     string  `json:"vote"`
	Comment  *string `json:"comment"`
}
