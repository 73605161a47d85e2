package service

import (
	"context"
	"testing"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddTagsToFeedbackEmptyIsNoOp(t *testing.T) {
	uow := newFakeUow()
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})

	err := svc.AddTagsToFeedback(context.Background(), uuid.New(), nil, uuid.New())

	assert.NoError(t, err)
	assert.Empty(t, uow.links.created)
}

func TestAddTagsToFeedbackStampsAttribution(t *testing.T) {
	uow := newFakeUow()
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})
	feedbackId := uuid.New()
	userId := uuid.New()
	tagIds := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	err := svc.AddTagsToFeedback(context.Background(), feedbackId, tagIds, userId)

	assert.NoError(t, err)
	assert.Len(t, uow.links.created, 1)
	links := uow.links.created[0]
	assert.Len(t, links, 3)
	for _, l := range links {
		assert.Equal(t, feedbackId, l.FeedbackId)
		assert.Equal(t, userId, l.UserId)
		// All links of one attach share the same timestamp.
		assert.Equal(t, links[0].CreatedAt, l.CreatedAt)
	}
}

func TestRemoveTagFromFeedbackIsIdempotent(t *testing.T) {
	uow := newFakeUow()
	uow.links.pairDeletes = 0 // already removed
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})

	err := svc.RemoveTagFromFeedback(context.Background(), uuid.New(), uuid.New())

	assert.NoError(t, err)
}

func TestUpdateFeedbackTagsReplacesInOneTransaction(t *testing.T) {
	uow := newFakeUow()
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})
	feedbackId := uuid.New()
	tagIds := []uuid.UUID{uuid.New()}

	err := svc.UpdateFeedbackTags(context.Background(), feedbackId, tagIds, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, 1, uow.began)
	assert.Equal(t, 1, uow.committed)
	assert.Equal(t, []uuid.UUID{feedbackId}, uow.links.allDeletes)
	assert.Len(t, uow.links.created, 1)
}

func TestUpdateFeedbackTagsWithEmptySetClears(t *testing.T) {
	uow := newFakeUow()
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})
	feedbackId := uuid.New()

	err := svc.UpdateFeedbackTags(context.Background(), feedbackId, nil, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{feedbackId}, uow.links.allDeletes)
	assert.Empty(t, uow.links.created)
	assert.Equal(t, 1, uow.committed)
}

func TestUpdateFeedbackTagsRollsBackOnInsertFailure(t *testing.T) {
	uow := newFakeUow()
	uow.links.createErr = assert.AnError
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})

	err := svc.UpdateFeedbackTags(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, uuid.New())

	assert.Error(t, err)
	assert.Equal(t, 1, uow.rolledBack)
	assert.Zero(t, uow.committed)
}

func TestGetTagsForFeedback(t *testing.T) {
	tag := &entity.Tag{Id: uuid.New(), Name: "ux"}
	feedbackId := uuid.New()

	uow := newFakeUow()
	uow.links.tagged = []*contract.TaggedLink{{FeedbackId: feedbackId, Tag: tag}}
	svc := NewFeedbackTagService(&fakeFactory{uow: uow})

	tags, err := svc.GetTagsForFeedback(context.Background(), feedbackId)

	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, "ux", tags[0].Name)
}
