package service

import (
	"context"
	"testing"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTagListServesSecondCallFromCache(t *testing.T) {
	uow := newFakeUow()
	uow.tags.items = []*entity.Tag{{Id: uuid.New(), Name: "bug"}}
	svc := NewTagService(&fakeFactory{uow: uow})

	first, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, uow.tags.findCalls)
}

func TestTagMutationsInvalidateListCache(t *testing.T) {
	uow := newFakeUow()
	svc := NewTagService(&fakeFactory{uow: uow})

	_, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, uow.tags.findCalls)

	_, err = svc.Create(context.Background(), &dto.CreateTagRequest{Name: "docs"})
	assert.NoError(t, err)

	// The next list goes back to the store.
	res, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, uow.tags.findCalls)
	assert.Len(t, res, 1)
	assert.Equal(t, "docs", res[0].Name)
}

func TestTagCreateTrimsAndRejectsBlankName(t *testing.T) {
	uow := newFakeUow()
	svc := NewTagService(&fakeFactory{uow: uow})

	_, err := svc.Create(context.Background(), &dto.CreateTagRequest{Name: "   "})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Empty(t, uow.tags.created)

	res, err := svc.Create(context.Background(), &dto.CreateTagRequest{Name: "  perf  "})
	assert.NoError(t, err)
	assert.Equal(t, "perf", res.Name)
}

func TestTagGetByIdsEmptySkipsStore(t *testing.T) {
	uow := newFakeUow()
	svc := NewTagService(&fakeFactory{uow: uow})

	res, err := svc.GetByIds(context.Background(), nil)

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	assert.Zero(t, uow.tags.findCalls)
}

func TestTagGetByIdUnknownReturnsNotFound(t *testing.T) {
	uow := newFakeUow()
	svc := NewTagService(&fakeFactory{uow: uow})

	_, err := svc.GetById(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTagUpdateRejectsBlankName(t *testing.T) {
	tag := &entity.Tag{Id: uuid.New(), Name: "ux"}
	blank := "  "

	uow := newFakeUow()
	uow.tags.items = []*entity.Tag{tag}
	svc := NewTagService(&fakeFactory{uow: uow})

	_, err := svc.Update(context.Background(), &dto.UpdateTagRequest{Id: tag.Id, Name: &blank})

	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Equal(t, "ux", tag.Name)
}
