package service

import (
	"context"
	"testing"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentCreateRejectsBlankBody(t *testing.T) {
	uow := newFakeUow()
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCommentRequest{
		FeedbackId: uuid.New(),
		Body:       "  \t ",
	})

	assert.ErrorIs(t, err, ErrBodyRequired)
	assert.Empty(t, uow.comments.created)
}

func TestCommentCreateRequiresExistingFeedback(t *testing.T) {
	uow := newFakeUow()
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateCommentRequest{
		FeedbackId: uuid.New(),
		Body:       "looks broken to me",
	})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentCreatePublishesOwnerEvent(t *testing.T) {
	owner := uuid.New()
	author := uuid.New()
	feedback := &entity.Feedback{Id: uuid.New(), UserId: owner, Title: "slow search"}

	uow := newFakeUow()
	uow.feedbacks.items = []*entity.Feedback{feedback}
	pub := &fakePublisher{}
	svc := NewCommentService(&fakeFactory{uow: uow}, pub)

	res, err := svc.Create(context.Background(), author, &dto.CreateCommentRequest{
		FeedbackId: feedback.Id,
		Body:       "  same here  ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "same here", res.Body)
	assert.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeCommentCreated, pub.published[0].EventType())

	payload := pub.published[0].Payload()
	assert.Equal(t, owner.String(), payload["owner_id"])
	assert.Equal(t, author.String(), payload["author_id"])
}

func TestCommentCreateDecoratesAuthor(t *testing.T) {
	author := &entity.User{Id: uuid.New(), DisplayName: "Dana"}
	feedback := &entity.Feedback{Id: uuid.New(), UserId: uuid.New(), Title: "t"}

	uow := newFakeUow()
	uow.users.users = []*entity.User{author}
	uow.feedbacks.items = []*entity.Feedback{feedback}
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	res, err := svc.Create(context.Background(), author.Id, &dto.CreateCommentRequest{
		FeedbackId: feedback.Id,
		Body:       "hi",
	})

	assert.NoError(t, err)
	assert.NotNil(t, res.User)
	assert.Equal(t, "Dana", res.User.DisplayName)
}

func TestCommentSoftDeleteEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	comment := &entity.Comment{Id: uuid.New(), UserId: owner, Body: "mine"}

	uow := newFakeUow()
	uow.comments.items = []*entity.Comment{comment}
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	err := svc.SoftDelete(context.Background(), uuid.New(), comment.Id)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, uow.comments.softDeleted)

	err = svc.SoftDelete(context.Background(), owner, comment.Id)
	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{comment.Id}, uow.comments.softDeleted)
}

func TestToggleLikeAlternates(t *testing.T) {
	owner := uuid.New()
	actor := uuid.New()
	comment := &entity.Comment{Id: uuid.New(), UserId: owner, Body: "nice"}

	uow := newFakeUow()
	uow.comments.items = []*entity.Comment{comment}
	pub := &fakePublisher{}
	svc := NewCommentService(&fakeFactory{uow: uow}, pub)

	res, err := svc.ToggleLike(context.Background(), comment.Id, actor)
	assert.NoError(t, err)
	assert.True(t, res.Liked)
	assert.NotNil(t, res.Like)
	assert.Equal(t, comment.Id, res.Like.CommentId)

	res, err = svc.ToggleLike(context.Background(), comment.Id, actor)
	assert.NoError(t, err)
	assert.False(t, res.Liked)
	assert.Nil(t, res.Like)
	assert.Len(t, uow.likes.softDeleted, 1)

	// Only the like path publishes, not the un-like.
	assert.Len(t, pub.published, 1)
	assert.Equal(t, events.TypeCommentLiked, pub.published[0].EventType())

	// Both toggles committed their transaction.
	assert.Equal(t, 2, uow.began)
	assert.Equal(t, 2, uow.committed)
}

func TestListByFeedbackBatchesAuthors(t *testing.T) {
	author := &entity.User{Id: uuid.New(), DisplayName: "Cleo"}
	feedbackId := uuid.New()

	uow := newFakeUow()
	uow.users.users = []*entity.User{author}
	uow.comments.items = []*entity.Comment{
		{Id: uuid.New(), FeedbackId: feedbackId, UserId: author.Id, Body: "one"},
		{Id: uuid.New(), FeedbackId: feedbackId, UserId: author.Id, Body: "two"},
	}
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	res, err := svc.ListByFeedback(context.Background(), feedbackId)

	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "Cleo", res[0].User.DisplayName)
	assert.Len(t, uow.users.idQueries, 1)
	assert.Equal(t, []uuid.UUID{author.Id}, uow.users.idQueries[0])
}

func TestHasUserLiked(t *testing.T) {
	uow := newFakeUow()
	svc := NewCommentService(&fakeFactory{uow: uow}, &fakePublisher{})

	liked, err := svc.HasUserLiked(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.False(t, liked)

	uow.likes.active = &entity.CommentLike{Id: uuid.New()}
	liked, err = svc.HasUserLiked(context.Background(), uuid.New(), uuid.New())
	assert.NoError(t, err)
	assert.True(t, liked)
}
