package service

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/model"
	"feedback-forum-be/internal/repository/contract"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory fakes for the repository contracts. Each fake records writes and
// serves reads from plain slices, so service behavior can be tested without a
// database.

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeUow struct {
	feedbacks *fakeFeedbackRepo
	tags      *fakeTagRepo
	links     *fakeLinkRepo
	comments  *fakeCommentRepo
	likes     *fakeLikeRepo
	reactions *fakeReactionRepo
	users     *fakeUserRepo
	features  *fakeFeatureRepo
	notifs    *fakeNotificationRepo

	began      int
	committed  int
	rolledBack int
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		feedbacks: &fakeFeedbackRepo{},
		tags:      &fakeTagRepo{},
		links:     &fakeLinkRepo{},
		comments:  &fakeCommentRepo{},
		likes:     &fakeLikeRepo{},
		reactions: &fakeReactionRepo{},
		users:     &fakeUserRepo{},
		features:  &fakeFeatureRepo{},
		notifs:    &fakeNotificationRepo{},
	}
}

func newFakeFactory() (*fakeFactory, *fakeUow) {
	uow := newFakeUow()
	return &fakeFactory{uow: uow}, uow
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began++; return nil }
func (u *fakeUow) Commit() error                   { u.committed++; return nil }
func (u *fakeUow) Rollback() error                 { u.rolledBack++; return nil }

func (u *fakeUow) FeedbackRepository() contract.FeedbackRepository                 { return u.feedbacks }
func (u *fakeUow) TagRepository() contract.TagRepository                           { return u.tags }
func (u *fakeUow) FeedbackTagRepository() contract.FeedbackTagRepository           { return u.links }
func (u *fakeUow) CommentRepository() contract.CommentRepository                   { return u.comments }
func (u *fakeUow) CommentLikeRepository() contract.CommentLikeRepository           { return u.likes }
func (u *fakeUow) FeedbackReactionRepository() contract.FeedbackReactionRepository { return u.reactions }
func (u *fakeUow) UserRepository() contract.UserRepository                         { return u.users }
func (u *fakeUow) FeatureRepository() contract.FeatureRepository                   { return u.features }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository         { return u.notifs }

// feedback

type fakeFeedbackRepo struct {
	items      []*entity.Feedback
	created    []*entity.Feedback
	updated    []*entity.Feedback
	findCalls  int
	countCalls int
	lastSpecs  []specification.Specification

	softDeleted      []uuid.UUID
	softDeleteResult int64
	bulkDeleted      int64
	hardDeleted      []uuid.UUID
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *entity.Feedback) error {
	r.created = append(r.created, f)
	r.items = append(r.items, f)
	return nil
}

func (r *fakeFeedbackRepo) Update(ctx context.Context, f *entity.Feedback) error {
	r.updated = append(r.updated, f)
	return nil
}

func (r *fakeFeedbackRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	r.softDeleted = append(r.softDeleted, id)
	return r.softDeleteResult, nil
}

func (r *fakeFeedbackRepo) SoftDeleteWhere(ctx context.Context, at time.Time, specs ...specification.Specification) (int64, error) {
	return r.bulkDeleted, nil
}

func (r *fakeFeedbackRepo) HardDelete(ctx context.Context, id uuid.UUID) error {
	r.hardDeleted = append(r.hardDeleted, id)
	return nil
}

func (r *fakeFeedbackRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error) {
	r.findCalls++
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			for _, f := range r.items {
				if f.Id == byId.ID {
					return f, nil
				}
			}
			return nil, nil
		}
	}
	if len(r.items) > 0 {
		return r.items[0], nil
	}
	return nil, nil
}

func (r *fakeFeedbackRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error) {
	r.findCalls++
	r.lastSpecs = specs
	return r.items, nil
}

func (r *fakeFeedbackRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.countCalls++
	return int64(len(r.items)), nil
}

// tag

type fakeTagRepo struct {
	items     []*entity.Tag
	created   []*entity.Tag
	deleted   []uuid.UUID
	findCalls int
}

func (r *fakeTagRepo) Create(ctx context.Context, t *entity.Tag) error {
	r.created = append(r.created, t)
	r.items = append(r.items, t)
	return nil
}

func (r *fakeTagRepo) CreateBatch(ctx context.Context, tags []*entity.Tag) error {
	r.created = append(r.created, tags...)
	r.items = append(r.items, tags...)
	return nil
}

func (r *fakeTagRepo) Update(ctx context.Context, t *entity.Tag) error { return nil }

func (r *fakeTagRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeTagRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error) {
	r.findCalls++
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			for _, t := range r.items {
				if t.Id == byId.ID {
					return t, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	r.findCalls++
	return r.items, nil
}

func (r *fakeTagRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

// feedback tag link

type fakeLinkRepo struct {
	links       []*entity.FeedbackTag
	tagged      []*contract.TaggedLink
	createErr   error
	created     [][]*entity.FeedbackTag
	pairDeletes int64
	allDeletes  []uuid.UUID
	byTagPurged []uuid.UUID
}

func (r *fakeLinkRepo) CreateBatch(ctx context.Context, links []*entity.FeedbackTag) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, links)
	r.links = append(r.links, links...)
	return nil
}

func (r *fakeLinkRepo) SoftDeleteActive(ctx context.Context, feedbackId, tagId uuid.UUID, at time.Time) (int64, error) {
	return r.pairDeletes, nil
}

func (r *fakeLinkRepo) SoftDeleteAllForFeedback(ctx context.Context, feedbackId uuid.UUID, at time.Time) (int64, error) {
	r.allDeletes = append(r.allDeletes, feedbackId)
	return int64(len(r.links)), nil
}

func (r *fakeLinkRepo) HardDeleteByTag(ctx context.Context, tagId uuid.UUID) (int64, error) {
	r.byTagPurged = append(r.byTagPurged, tagId)
	return 0, nil
}

func (r *fakeLinkRepo) FindActiveWithTags(ctx context.Context, feedbackIds []uuid.UUID) ([]*contract.TaggedLink, error) {
	return r.tagged, nil
}

func (r *fakeLinkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackTag, error) {
	return r.links, nil
}

func (r *fakeLinkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.links)), nil
}

// comment

type fakeCommentRepo struct {
	items       []*entity.Comment
	created     []*entity.Comment
	softDeleted []uuid.UUID
}

func (r *fakeCommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	r.created = append(r.created, c)
	r.items = append(r.items, c)
	return nil
}

func (r *fakeCommentRepo) Update(ctx context.Context, c *entity.Comment) error { return nil }

func (r *fakeCommentRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	r.softDeleted = append(r.softDeleted, id)
	return 1, nil
}

func (r *fakeCommentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Comment, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			for _, c := range r.items {
				if c.Id == byId.ID {
					return c, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeCommentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Comment, error) {
	return r.items, nil
}

func (r *fakeCommentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.items)), nil
}

// comment like

type fakeLikeRepo struct {
	active      *entity.CommentLike
	created     []*entity.CommentLike
	softDeleted []uuid.UUID
	countActive int64
}

func (r *fakeLikeRepo) Create(ctx context.Context, like *entity.CommentLike) error {
	r.created = append(r.created, like)
	r.active = like
	return nil
}

func (r *fakeLikeRepo) FindActive(ctx context.Context, commentId, userId uuid.UUID) (*entity.CommentLike, error) {
	return r.active, nil
}

func (r *fakeLikeRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	r.softDeleted = append(r.softDeleted, id)
	r.active = nil
	return 1, nil
}

func (r *fakeLikeRepo) CountActive(ctx context.Context, commentId uuid.UUID) (int64, error) {
	return r.countActive, nil
}

// feedback reaction

type fakeReactionRepo struct {
	active      *entity.FeedbackReaction
	batch       []*entity.FeedbackReaction
	batchCalls  int
	created     []*entity.FeedbackReaction
	softDeleted []uuid.UUID
}

func (r *fakeReactionRepo) Create(ctx context.Context, reaction *entity.FeedbackReaction) error {
	r.created = append(r.created, reaction)
	r.active = reaction
	return nil
}

func (r *fakeReactionRepo) FindActive(ctx context.Context, feedbackId, userId uuid.UUID) (*entity.FeedbackReaction, error) {
	return r.active, nil
}

func (r *fakeReactionRepo) FindActiveByFeedbackIds(ctx context.Context, feedbackIds []uuid.UUID) ([]*entity.FeedbackReaction, error) {
	r.batchCalls++
	return r.batch, nil
}

func (r *fakeReactionRepo) SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error) {
	r.softDeleted = append(r.softDeleted, id)
	r.active = nil
	return 1, nil
}

func (r *fakeReactionRepo) CountActive(ctx context.Context, feedbackId uuid.UUID) (int64, error) {
	return int64(len(r.created)), nil
}

// user

type fakeUserRepo struct {
	users     []*entity.User
	idQueries [][]uuid.UUID
}

func (r *fakeUserRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.Id == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	r.idQueries = append(r.idQueries, ids)
	found := make([]*entity.User, 0)
	for _, u := range r.users {
		for _, id := range ids {
			if u.Id == id {
				found = append(found, u)
			}
		}
	}
	return found, nil
}

// feature

type fakeFeatureRepo struct {
	items []*entity.Feature
}

func (r *fakeFeatureRepo) Create(ctx context.Context, f *entity.Feature) error {
	r.items = append(r.items, f)
	return nil
}

func (r *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	for _, s := range specs {
		if byId, ok := s.(specification.ByID); ok {
			for _, f := range r.items {
				if f.Id == byId.ID {
					return f, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	return r.items, nil
}

// notification

type fakeNotificationRepo struct {
	created []*model.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) FindByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error) {
	return r.created, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error {
	return nil
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	return int64(len(r.created)), nil
}

// publisher

type fakePublisher struct {
	published []events.Event
}

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

// logger

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// hub

type fakeHub struct {
	sent      map[uuid.UUID][]interface{}
	broadcast []interface{}
}

func newFakeHub() *fakeHub {
	return &fakeHub{sent: make(map[uuid.UUID][]interface{})}
}

func (h *fakeHub) Send(userId uuid.UUID, payload interface{}) {
	h.sent[userId] = append(h.sent[userId], payload)
}

func (h *fakeHub) Broadcast(payload interface{}) {
	h.broadcast = append(h.broadcast, payload)
}
