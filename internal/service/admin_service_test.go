package service

import (
	"context"
	"testing"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminPageSpecs(t *testing.T) {
	limit := 5
	offset := 20

	tests := []struct {
		name   string
		limit  *int
		offset *int
		want   []specification.Specification
	}{
		{
			name: "no paging yields no specs",
			want: []specification.Specification{},
		},
		{
			name:   "offset alone defaults the window",
			offset: &offset,
			want:   []specification.Specification{specification.Pagination{Limit: defaultPageSize, Offset: offset}},
		},
		{
			name:  "limit alone caps only",
			limit: &limit,
			want:  []specification.Specification{specification.Limit{N: limit}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, adminPageSpecs(tt.limit, tt.offset))
		})
	}
}

func TestGetDeletedFeedbackQueriesDeletedRowsByDeletionOrder(t *testing.T) {
	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	_, err := svc.GetDeletedFeedback(context.Background(), nil, nil)

	assert.NoError(t, err)
	// Soft delete re-stamps updated_at, so this ordering is deletion order.
	assert.Contains(t, uow.feedbacks.lastSpecs, specification.DeletedOnly{})
	assert.Contains(t, uow.feedbacks.lastSpecs, specification.OrderBy{Field: "updated_at", Desc: true})
}

func TestGetAllFeedbackLiftsSoftDeleteScope(t *testing.T) {
	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	_, err := svc.GetAllFeedback(context.Background(), nil, nil)

	assert.NoError(t, err)
	assert.Contains(t, uow.feedbacks.lastSpecs, specification.WithDeleted{})
}

func TestBulkSoftDeleteRefusesUnfiltered(t *testing.T) {
	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	_, err := svc.BulkSoftDeleteFeedback(context.Background(), &dto.BulkSoftDeleteFeedbackRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestBulkSoftDeleteReportsAffectedRows(t *testing.T) {
	userId := uuid.New()

	uow := newFakeUow()
	uow.feedbacks.bulkDeleted = 7
	svc := NewAdminService(&fakeFactory{uow: uow})

	res, err := svc.BulkSoftDeleteFeedback(context.Background(), &dto.BulkSoftDeleteFeedbackRequest{UserId: &userId})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), res.Affected)
}

func TestForceDeleteTagPurgesLinksFirst(t *testing.T) {
	tagId := uuid.New()

	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	err := svc.ForceDeleteTag(context.Background(), tagId)

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tagId}, uow.links.byTagPurged)
	assert.Equal(t, []uuid.UUID{tagId}, uow.tags.deleted)
	assert.Equal(t, 1, uow.began)
	assert.Equal(t, 1, uow.committed)
}

func TestBulkCreateTagsRejectsBlankNames(t *testing.T) {
	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	_, err := svc.BulkCreateTags(context.Background(), &dto.BulkCreateTagsRequest{
		Tags: []dto.CreateTagRequest{{Name: "good"}, {Name: "  "}},
	})

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, uow.tags.created)
}

func TestBulkCreateTagsTrimsAndCounts(t *testing.T) {
	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	res, err := svc.BulkCreateTags(context.Background(), &dto.BulkCreateTagsRequest{
		Tags: []dto.CreateTagRequest{{Name: " bug "}, {Name: "ux"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "bug", res.Tags[0].Name)
	assert.Len(t, uow.tags.created, 2)
}

func TestGetAllFeedbackTagsKeepsDeletedLinks(t *testing.T) {
	feedbackId := uuid.New()

	uow := newFakeUow()
	uow.links.links = []*entity.FeedbackTag{
		{Id: uuid.New(), FeedbackId: feedbackId, TagId: uuid.New(), UserId: uuid.New()},
	}
	svc := NewAdminService(&fakeFactory{uow: uow})

	res, err := svc.GetAllFeedbackTags(context.Background(), feedbackId)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, feedbackId, res[0].FeedbackId)
}

func TestHardDeleteFeedback(t *testing.T) {
	id := uuid.New()

	uow := newFakeUow()
	svc := NewAdminService(&fakeFactory{uow: uow})

	err := svc.HardDeleteFeedback(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, uow.feedbacks.hardDeleted)
}
