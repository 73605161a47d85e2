package service

import (
	"context"
	"testing"

	"feedback-forum-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReactionsBatchEmptyInputSkipsStore(t *testing.T) {
	uow := newFakeUow()
	svc := NewReactionService(&fakeFactory{uow: uow})

	res, err := svc.GetFeedbackReactionsBatch(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Empty(t, res)
	assert.Zero(t, uow.reactions.batchCalls)
}

func TestReactionsBatchPreservesInputOrder(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	viewer := uuid.New()

	uow := newFakeUow()
	// Storage returns rows grouped by feedback, not in request order.
	uow.reactions.batch = []*entity.FeedbackReaction{
		{Id: uuid.New(), FeedbackId: c, UserId: viewer},
		{Id: uuid.New(), FeedbackId: c, UserId: uuid.New()},
		{Id: uuid.New(), FeedbackId: a, UserId: uuid.New()},
	}
	svc := NewReactionService(&fakeFactory{uow: uow})

	res, err := svc.GetFeedbackReactionsBatch(context.Background(), []uuid.UUID{a, b, c}, &viewer)

	assert.NoError(t, err)
	assert.Len(t, res, 3)

	assert.Equal(t, a, res[0].FeedbackId)
	assert.Equal(t, 1, res[0].ReactionCount)
	assert.False(t, res[0].UserHasReacted)

	// Feedback with no reactions still appears, zeroed.
	assert.Equal(t, b, res[1].FeedbackId)
	assert.Zero(t, res[1].ReactionCount)
	assert.False(t, res[1].UserHasReacted)

	assert.Equal(t, c, res[2].FeedbackId)
	assert.Equal(t, 2, res[2].ReactionCount)
	assert.True(t, res[2].UserHasReacted)

	assert.Equal(t, 1, uow.reactions.batchCalls)
}

func TestReactionsBatchWithoutViewerNeverFlags(t *testing.T) {
	id := uuid.New()

	uow := newFakeUow()
	uow.reactions.batch = []*entity.FeedbackReaction{
		{Id: uuid.New(), FeedbackId: id, UserId: uuid.New()},
	}
	svc := NewReactionService(&fakeFactory{uow: uow})

	res, err := svc.GetFeedbackReactionsBatch(context.Background(), []uuid.UUID{id}, nil)

	assert.NoError(t, err)
	assert.Equal(t, 1, res[0].ReactionCount)
	assert.False(t, res[0].UserHasReacted)
}

func TestReactionToggleAlternates(t *testing.T) {
	uow := newFakeUow()
	svc := NewReactionService(&fakeFactory{uow: uow})
	feedbackId, userId := uuid.New(), uuid.New()

	reacted, err := svc.Toggle(context.Background(), feedbackId, userId)
	assert.NoError(t, err)
	assert.True(t, reacted)
	assert.Len(t, uow.reactions.created, 1)

	reacted, err = svc.Toggle(context.Background(), feedbackId, userId)
	assert.NoError(t, err)
	assert.False(t, reacted)
	assert.Len(t, uow.reactions.softDeleted, 1)

	reacted, err = svc.Toggle(context.Background(), feedbackId, userId)
	assert.NoError(t, err)
	assert.True(t, reacted)
	assert.Len(t, uow.reactions.created, 2)

	// Every toggle ran inside its own transaction.
	assert.Equal(t, 3, uow.began)
	assert.Equal(t, 3, uow.committed)
}
