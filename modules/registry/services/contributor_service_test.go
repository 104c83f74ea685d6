package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civisafe/civisafe/modules/registry/domain/entities/contributor"
	"github.com/civisafe/civisafe/modules/registry/services"
)

func TestAwardPoint_IncrementsAndReturns(t *testing.T) {
	repo := newMemoryContributorRepo()
	repo.add(1, "Meera", "302001", 4)
	svc := services.NewContributorService(repo)

	got, err := svc.AwardPoint(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 5, got.ContributionPoints)
}

func TestAwardPoint_UnknownUser(t *testing.T) {
	svc := services.NewContributorService(newMemoryContributorRepo())

	_, err := svc.AwardPoint(context.Background(), 404)
	assert.ErrorIs(t, err, contributor.ErrNotFound)
}

func TestTopInArea_NoProfilePincode(t *testing.T) {
	repo := newMemoryContributorRepo()
	repo.add(1, "Meera", "", 4)
	svc := services.NewContributorService(repo)

	board, err := svc.TopInArea(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, board)
}

func TestTopInArea_SmallNeighbourhood(t *testing.T) {
	repo := newMemoryContributorRepo()
	repo.add(1, "Meera", "302001", 4)
	repo.add(2, "Arjun", "302001", 9)
	repo.add(3, "Dev", "999999", 50)
	svc := services.NewContributorService(repo)

	board, err := svc.TopInArea(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, int64(2), board[0].UserID)
	assert.Equal(t, int64(1), board[1].UserID)
	// Ranks stay unset when the whole neighbourhood fits the board.
	assert.Zero(t, board[0].Rank)
}

func TestTopInArea_CallerBelowCutoff(t *testing.T) {
	repo := newMemoryContributorRepo()
	for i := 1; i <= 20; i++ {
		// user i has 100-i points, so user 1 ranks first and user 20 last
		repo.add(int64(i), fmt.Sprintf("user-%d", i), "302001", 100-i)
	}
	svc := services.NewContributorService(repo)

	board, err := svc.TopInArea(context.Background(), 18)
	require.NoError(t, err)
	require.Len(t, board, 16)

	for i := 0; i < 15; i++ {
		assert.Equal(t, int64(i+1), board[i].UserID)
		assert.Zero(t, board[i].Rank)
	}
	caller := board[15]
	assert.Equal(t, int64(18), caller.UserID)
	assert.Equal(t, 18, caller.Rank)
}

func TestTopInArea_CallerInsideCutoff(t *testing.T) {
	repo := newMemoryContributorRepo()
	for i := 1; i <= 20; i++ {
		repo.add(int64(i), fmt.Sprintf("user-%d", i), "302001", 100-i)
	}
	svc := services.NewContributorService(repo)

	board, err := svc.TopInArea(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, board, 15)
}
