package service

import (
	"context"
	"strings"
	"time"

	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"
	"feedback-forum-be/internal/repository/unitofwork"
	"feedback-forum-be/pkg/events"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultPageSize = 10

type IFeedbackService interface {
	List(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error)
	ListWithUsers(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error)
	ListWithTags(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error)
	ListWithUsersAndTags(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.FeedbackResponse, error)
	GetByTagId(ctx context.Context, tagId uuid.UUID) (*dto.FeedbackPageResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Search(ctx context.Context, term string, limit, offset *int) (*dto.FeedbackPageResponse, error)
	TotalCount(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	CountByFeature(ctx context.Context, featureId uuid.UUID) (int64, error)
	HasUserSubmittedForFeature(ctx context.Context, featureId, userId uuid.UUID) (*dto.HasSubmittedResponse, error)
}

type feedbackService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewFeedbackService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IFeedbackService {
	return &feedbackService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

// filterSpecs translates the optional list filters. Shared by the page fetch
// and the total count so both always agree.
func filterSpecs(q dto.ListFeedbackQuery) []specification.Specification {
	specs := make([]specification.Specification, 0, 2)
	if q.UserId != nil {
		specs = append(specs, specification.OwnedBy{UserID: *q.UserId})
	}
	if q.GeneralOnly {
		specs = append(specs, specification.GeneralOnly{})
	} else if q.FeatureId != nil {
		specs = append(specs, specification.ByFeature{FeatureID: *q.FeatureId})
	}
	return specs
}

// pageSpecs adds the fixed ordering and the pagination window. An offset
// implies a window (size defaults to 10); a bare limit just caps the result.
func pageSpecs(q dto.ListFeedbackQuery) []specification.Specification {
	specs := filterSpecs(q)
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	switch {
	case q.Offset != nil:
		limit := defaultPageSize
		if q.Limit != nil {
			limit = *q.Limit
		}
		specs = append(specs, specification.Pagination{Limit: limit, Offset: *q.Offset})
	case q.Limit != nil:
		specs = append(specs, specification.Limit{N: *q.Limit})
	}
	return specs
}

// listPage runs the page query and the server-side count.
func (s *feedbackService) listPage(ctx context.Context, uow unitofwork.UnitOfWork, q dto.ListFeedbackQuery) ([]*entity.Feedback, int64, error) {
	repo := uow.FeedbackRepository()

	items, err := repo.FindAll(ctx, pageSpecs(q)...)
	if err != nil {
		return nil, 0, err
	}
	count, err := repo.Count(ctx, filterSpecs(q)...)
	if err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (s *feedbackService) List(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, count, err := s.listPage(ctx, uow, q)
	if err != nil {
		return nil, err
	}
	return buildPage(items, count, nil, nil), nil
}

func (s *feedbackService) ListWithUsers(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, count, err := s.listPage(ctx, uow, q)
	if err != nil {
		return nil, err
	}

	users, err := s.fetchUsers(ctx, uow, items)
	if err != nil {
		return nil, err
	}
	return buildPage(items, count, users, nil), nil
}

func (s *feedbackService) ListWithTags(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, count, err := s.listPage(ctx, uow, q)
	if err != nil {
		return nil, err
	}

	tags, err := s.fetchTags(ctx, uow, items)
	if err != nil {
		return nil, err
	}
	return buildPage(items, count, nil, tags), nil
}

func (s *feedbackService) ListWithUsersAndTags(ctx context.Context, q dto.ListFeedbackQuery) (*dto.FeedbackPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	items, count, err := s.listPage(ctx, uow, q)
	if err != nil {
		return nil, err
	}

	// The two decoration fetches are independent reads; run them concurrently
	// so the composed call costs one extra round trip, not two.
	var (
		users map[uuid.UUID]*entity.User
		tags  map[uuid.UUID][]*entity.Tag
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.fetchUsers(gctx, uow, items)
		return err
	})
	g.Go(func() error {
		var err error
		tags, err = s.fetchTags(gctx, uow, items)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buildPage(items, count, users, tags), nil
}

// fetchUsers resolves the page's distinct authors in one query.
func (s *feedbackService) fetchUsers(ctx context.Context, uow unitofwork.UnitOfWork, items []*entity.Feedback) (map[uuid.UUID]*entity.User, error) {
	seen := make(map[uuid.UUID]bool, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, f := range items {
		if !seen[f.UserId] {
			seen[f.UserId] = true
			ids = append(ids, f.UserId)
		}
	}

	users, err := uow.UserRepository().FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	byId := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byId[u.Id] = u
	}
	return byId, nil
}

// fetchTags resolves every active tag of the page in one joined query.
func (s *feedbackService) fetchTags(ctx context.Context, uow unitofwork.UnitOfWork, items []*entity.Feedback) (map[uuid.UUID][]*entity.Tag, error) {
	ids := make([]uuid.UUID, len(items))
	for i, f := range items {
		ids[i] = f.Id
	}

	links, err := uow.FeedbackTagRepository().FindActiveWithTags(ctx, ids)
	if err != nil {
		return nil, err
	}

	grouped := make(map[uuid.UUID][]*entity.Tag, len(items))
	for _, l := range links {
		grouped[l.FeedbackId] = append(grouped[l.FeedbackId], l.Tag)
	}
	return grouped, nil
}

// buildPage shapes entities into the response. A feedback whose user lookup
// missed keeps a nil User; a feedback without active tags gets an empty list.
func buildPage(items []*entity.Feedback, count int64, users map[uuid.UUID]*entity.User, tags map[uuid.UUID][]*entity.Tag) *dto.FeedbackPageResponse {
	responses := make([]*dto.FeedbackResponse, len(items))
	for i, f := range items {
		res := toFeedbackResponse(f)
		if users != nil {
			if u, ok := users[f.UserId]; ok {
				res.User = toUserResponse(u)
			}
		}
		if tags != nil {
			res.Tags = toTagResponses(tags[f.Id])
		}
		responses[i] = res
	}
	return &dto.FeedbackPageResponse{Items: responses, Count: count}
}

func toFeedbackResponse(f *entity.Feedback) *dto.FeedbackResponse {
	return &dto.FeedbackResponse{
		Id:          f.Id,
		UserId:      f.UserId,
		FeatureId:   f.FeatureId,
		Title:       f.Title,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		Id:             u.Id,
		DisplayName:    u.DisplayName,
		ProfilePicture: u.ProfilePicture,
	}
}

func toTagResponses(tags []*entity.Tag) []dto.TagResponse {
	responses := make([]dto.TagResponse, len(tags))
	for i, t := range tags {
		responses[i] = dto.TagResponse{
			Id:          t.Id,
			Name:        t.Name,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
	}
	return responses
}

func (s *feedbackService) GetById(ctx context.Context, id uuid.UUID) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feedback, err := uow.FeedbackRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrNotFound
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) GetByTagId(ctx context.Context, tagId uuid.UUID) (*dto.FeedbackPageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	links, err := uow.FeedbackTagRepository().FindAll(ctx, specification.ByTagID{TagID: tagId})
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		// Nothing linked: skip the second query entirely.
		return &dto.FeedbackPageResponse{Items: []*dto.FeedbackResponse{}, Count: 0}, nil
	}

	ids := make([]uuid.UUID, len(links))
	for i, l := range links {
		ids[i] = l.FeedbackId
	}

	repo := uow.FeedbackRepository()
	items, err := repo.FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	count, err := repo.Count(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	return buildPage(items, count, nil, nil), nil
}

func (s *feedbackService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	now := time.Now()
	feedback := entity.Feedback{
		Id:          uuid.New(),
		UserId:      userId,
		FeatureId:   req.FeatureId,
		Title:       title,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if len(req.TagIds) == 0 {
		if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
			return nil, err
		}
	} else {
		// Create and tag in one transaction so a failed link insert does not
		// leave an untagged post behind.
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		if err := uow.FeedbackRepository().Create(ctx, &feedback); err != nil {
			uow.Rollback()
			return nil, err
		}
		links := newTagLinks(feedback.Id, req.TagIds, userId, now)
		if err := uow.FeedbackTagRepository().CreateBatch(ctx, links); err != nil {
			uow.Rollback()
			return nil, err
		}
		if err := uow.Commit(); err != nil {
			return nil, err
		}
	}

	// The post exists either way; a dropped event only delays notifications.
	_ = s.publisherService.Publish(ctx, events.NewFeedbackCreated(feedback.Id, userId, feedback.Title))

	return toFeedbackResponse(&feedback), nil
}

func (s *feedbackService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeedbackRepository()

	feedback, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, ErrNotFound
	}
	if feedback.UserId != userId {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		feedback.Title = title
	}
	if req.Description != nil {
		feedback.Description = req.Description
	}

	// updated_at is always re-stamped, even for a no-op patch.
	now := time.Now()
	feedback.UpdatedAt = &now

	if err := repo.Update(ctx, feedback); err != nil {
		return nil, err
	}
	return toFeedbackResponse(feedback), nil
}

func (s *feedbackService) SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeedbackRepository()

	feedback, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if feedback == nil {
		return ErrNotFound
	}
	if feedback.UserId != userId {
		return ErrForbidden
	}

	_, err = repo.SoftDelete(ctx, id, time.Now())
	return err
}

func (s *feedbackService) Search(ctx context.Context, term string, limit, offset *int) (*dto.FeedbackPageResponse, error) {
	l, o := defaultPageSize, 0
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}

	search := specification.SearchTitleOrDescription{Term: term}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.FeedbackRepository()

	items, err := repo.FindAll(ctx,
		search,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: l, Offset: o},
	)
	if err != nil {
		return nil, err
	}
	count, err := repo.Count(ctx, search)
	if err != nil {
		return nil, err
	}
	return buildPage(items, count, nil, nil), nil
}

func (s *feedbackService) TotalCount(ctx context.Context) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackRepository().Count(ctx)
}

func (s *feedbackService) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackRepository().Count(ctx, specification.OwnedBy{UserID: userId})
}

func (s *feedbackService) CountByFeature(ctx context.Context, featureId uuid.UUID) (int64, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.FeedbackRepository().Count(ctx, specification.ByFeature{FeatureID: featureId})
}

func (s *feedbackService) HasUserSubmittedForFeature(ctx context.Context, featureId, userId uuid.UUID) (*dto.HasSubmittedResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.FeedbackRepository().Count(ctx,
		specification.ByFeature{FeatureID: featureId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	return &dto.HasSubmittedResponse{HasSubmitted: count > 0, Count: count}, nil
}

// newTagLinks builds one link per tag, all sharing the same timestamp and
// attribution.
func newTagLinks(feedbackId uuid.UUID, tagIds []uuid.UUID, userId uuid.UUID, at time.Time) []*entity.FeedbackTag {
	links := make([]*entity.FeedbackTag, len(tagIds))
	for i, tagId := range tagIds {
		ts := at
		links[i] = &entity.FeedbackTag{
			Id:         uuid.New(),
			FeedbackId: feedbackId,
			TagId:      tagId,
			UserId:     userId,
			CreatedAt:  at,
			UpdatedAt:  &ts,
		}
	}
	return links
}
