package services

import (
	"testing"

	"moving-tracker/constants"
	"moving-tracker/dto"
	"moving-tracker/models"
	"moving-tracker/repositories"
	"moving-tracker/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemService(t *testing.T) (IItemService, *gorm.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewItemService(repositories.NewItemRepository(db), repositories.NewVoteRepository(db)), db
}

func TestItemService_VoteRejectsUnknownValue(t *testing.T) {
	service, db := newItemService(t)
	user := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)
	item := testutil.CreateTestItem(t, db, "Couch", user.ID)

	err := service.Vote(item.ID, user.ID, dto.VoteInput{Vote: "maybe"})
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidVote, err.Error())

	var count int64
	db.Model(&models.Vote{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected vote must not create a row")
}

func TestItemService_VoteOnMissingItem(t *testing.T) {
	service, db := newItemService(t)
	user := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)

	err := service.Vote(99, user.ID, dto.VoteInput{Vote: constants.VoteMove})
	require.Error(t, err)
	assert.Equal(t, constants.ErrItemNotFound, err.Error())
}

func TestItemService_VoteAllowedAfterDecision(t *testing.T) {
	service, db := newItemService(t)
	user := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)
	item := testutil.CreateTestItem(t, db, "Couch", user.ID)

	decision := constants.VoteSell
	require.NoError(t, service.UpdateDecision(item.ID, &decision))

	// The API does not lock out voting once a decision lands; clients do.
	err := service.Vote(item.ID, user.ID, dto.VoteInput{Vote: constants.VoteMove})
	assert.NoError(t, err)
}

func TestItemService_UpdateDecision(t *testing.T) {
	service, db := newItemService(t)
	user := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)
	item := testutil.CreateTestItem(t, db, "Couch", user.ID)

	decision := constants.VoteToss
	require.NoError(t, service.UpdateDecision(item.ID, &decision))

	var got models.Item
	require.NoError(t, db.First(&got, item.ID).Error)
	require.NotNil(t, got.Decision)
	assert.Equal(t, constants.VoteToss, *got.Decision)

	// Empty string clears the decision.
	empty := ""
	require.NoError(t, service.UpdateDecision(item.ID, &empty))
	require.NoError(t, db.First(&got, item.ID).Error)
	assert.Nil(t, got.Decision)
}

func TestItemService_UpdateDecisionRejectsUnknownValue(t *testing.T) {
	service, db := newItemService(t)
	user := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)
	item := testutil.CreateTestItem(t, db, "Couch", user.ID)

	bad := "keep"
	err := service.UpdateDecision(item.ID, &bad)
	require.Error(t, err)
	assert.Equal(t, constants.ErrInvalidDecision, err.Error())
}

func TestItemService_FindAllMapsNestedVotes(t *testing.T) {
	service, db := newItemService(t)
	alice := testutil.CreateTestUser(t, db, "alice", "password123", "Alice", false)
	bob := testutil.CreateTestUser(t, db, "bob", "password123", "Bob", false)
	item := testutil.CreateTestItem(t, db, "Couch", alice.ID)

	comment := "too big"
	require.NoError(t, service.Vote(item.ID, bob.ID, dto.VoteInput{Vote: constants.VoteMove, Comment: &comment}))
	require.NoError(t, service.Vote(item.ID, alice.ID, dto.VoteInput{Vote: constants.VoteToss}))

	items, err := service.FindAll()
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "Couch", got.Name)
	assert.Equal(t, "Alice", got.CreatedByName)
	require.Len(t, got.Votes, 2)

	byUser := map[uint]dto.VoteResponse{}
	for _, v := range got.Votes {
		byUser[v.UserID] = v
	}
	assert.Equal(t, constants.VoteMove, byUser[bob.ID].Vote)
	assert.Equal(t, "Bob", byUser[bob.ID].Username)
	require.NotNil(t, byUser[bob.ID].Comment)
	assert.Equal(t, "too big", *byUser[bob.ID].Comment)
	assert.Equal(t, constants.VoteToss, byUser[alice.ID].Vote)
}
