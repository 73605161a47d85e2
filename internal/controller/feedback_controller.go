package controller

import (
	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/pkg/serverutils"
	"feedback-forum-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	ByTag(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	HasSubmitted(ctx *fiber.Ctx) error
	ReplaceTags(ctx *fiber.Ctx) error
	AddTags(ctx *fiber.Ctx) error
	RemoveTag(ctx *fiber.Ctx) error
	ShowTags(ctx *fiber.Ctx) error
	ReactionsBatch(ctx *fiber.Ctx) error
	ToggleReaction(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService    service.IFeedbackService
	feedbackTagService service.IFeedbackTagService
	reactionService    service.IReactionService
}

func NewFeedbackController(
	feedbackService service.IFeedbackService,
	feedbackTagService service.IFeedbackTagService,
	reactionService service.IReactionService,
) IFeedbackController {
	return &feedbackController{
		feedbackService:    feedbackService,
		feedbackTagService: feedbackTagService,
		reactionService:    reactionService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")
	h.Get("", c.List)
	h.Get("search", c.Search)
	h.Get("tag/:tagId", c.ByTag)
	h.Get(":id/tags", c.ShowTags)
	h.Get(":id", c.Show)

	auth := h.Use(serverutils.JwtMiddleware)
	auth.Post("", c.Create)
	auth.Put(":id", c.Update)
	auth.Delete(":id", c.Delete)
	auth.Get("feature/:featureId/has-submitted", c.HasSubmitted)
	auth.Put(":id/tags", c.ReplaceTags)
	auth.Post(":id/tags", c.AddTags)
	auth.Delete(":id/tags/:tagId", c.RemoveTag)
	auth.Post("reactions/batch", c.ReactionsBatch)
	auth.Post(":id/reactions/toggle", c.ToggleReaction)
}

func parseListQuery(ctx *fiber.Ctx) dto.ListFeedbackQuery {
	q := dto.ListFeedbackQuery{
		GeneralOnly: ctx.QueryBool("general_only", false),
	}
	if raw := ctx.Query("user_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.UserId = &id
		}
	}
	if raw := ctx.Query("feature_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			q.FeatureId = &id
		}
	}
	if limit := ctx.QueryInt("limit", -1); limit >= 0 {
		q.Limit = &limit
	}
	if offset := ctx.QueryInt("offset", -1); offset >= 0 {
		q.Offset = &offset
	}
	return q
}

func (c *feedbackController) List(ctx *fiber.Ctx) error {
	q := parseListQuery(ctx)

	var (
		res *dto.FeedbackPageResponse
		err error
	)
	switch ctx.Query("include") {
	case "users":
		res, err = c.feedbackService.ListWithUsers(ctx.Context(), q)
	case "tags":
		res, err = c.feedbackService.ListWithTags(ctx.Context(), q)
	case "users,tags", "tags,users":
		res, err = c.feedbackService.ListWithUsersAndTags(ctx.Context(), q)
	default:
		res, err = c.feedbackService.List(ctx.Context(), q)
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Feedback list", res))
}

func (c *feedbackController) Search(ctx *fiber.Ctx) error {
	term := ctx.Query("q")
	if term == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query parameter 'q' is required")
	}

	var limit, offset *int
	if l := ctx.QueryInt("limit", -1); l >= 0 {
		limit = &l
	}
	if o := ctx.QueryInt("offset", -1); o >= 0 {
		offset = &o
	}

	res, err := c.feedbackService.Search(ctx.Context(), term, limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback search results", res))
}

func (c *feedbackController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	res, err := c.feedbackService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback detail", res))
}

func (c *feedbackController) ByTag(ctx *fiber.Ctx) error {
	tagId, err := uuid.Parse(ctx.Params("tagId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	res, err := c.feedbackService.GetByTagId(ctx.Context(), tagId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback by tag", res))
}

func (c *feedbackController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Feedback created", res))
}

func (c *feedbackController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	var req dto.UpdateFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	req.Id = id

	res, err := c.feedbackService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback updated", res))
}

func (c *feedbackController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	if err := c.feedbackService.SoftDelete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback deleted", nil))
}

func (c *feedbackController) HasSubmitted(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	featureId, err := uuid.Parse(ctx.Params("featureId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feature id")
	}

	res, err := c.feedbackService.HasUserSubmittedForFeature(ctx.Context(), featureId, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Submission status", res))
}

func (c *feedbackController) ReplaceTags(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	var req dto.UpdateFeedbackTagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := c.feedbackTagService.UpdateFeedbackTags(ctx.Context(), id, req.TagIds, userId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback tags replaced", nil))
}

func (c *feedbackController) AddTags(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	var req dto.AddFeedbackTagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.feedbackTagService.AddTagsToFeedback(ctx.Context(), id, req.TagIds, userId); err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse[any]("Tags attached", nil))
}

func (c *feedbackController) RemoveTag(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}
	tagId, err := uuid.Parse(ctx.Params("tagId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	if err := c.feedbackTagService.RemoveTagFromFeedback(ctx.Context(), id, tagId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Tag detached", nil))
}

func (c *feedbackController) ShowTags(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	res, err := c.feedbackTagService.GetTagsForFeedback(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback tags", res))
}

func (c *feedbackController) ReactionsBatch(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req struct {
		FeedbackIds []uuid.UUID `json:"feedback_ids"`
	}
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.reactionService.GetFeedbackReactionsBatch(ctx.Context(), req.FeedbackIds, &userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reaction summaries", res))
}

func (c *feedbackController) ToggleReaction(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	reacted, err := c.reactionService.Toggle(ctx.Context(), id, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Reaction toggled", fiber.Map{"reacted": reacted}))
}
