package controller

import (
	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/pkg/serverutils"
	"feedback-forum-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICommentController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListByFeedback(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	CountByFeedback(ctx *fiber.Ctx) error
	ToggleLike(ctx *fiber.Ctx) error
	LikeCount(ctx *fiber.Ctx) error
	HasLiked(ctx *fiber.Ctx) error
}

type commentController struct {
	commentService service.ICommentService
}

func NewCommentController(commentService service.ICommentService) ICommentController {
	return &commentController{commentService: commentService}
}

func (c *commentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/comment/v1")
	h.Get("feedback/:feedbackId", c.ListByFeedback)
	h.Get("feedback/:feedbackId/count", c.CountByFeedback)
	h.Get(":id/likes/count", c.LikeCount)

	auth := h.Use(serverutils.JwtMiddleware)
	auth.Post("", c.Create)
	auth.Delete(":id", c.Delete)
	auth.Post(":id/like", c.ToggleLike)
	auth.Get(":id/likes/me", c.HasLiked)
}

func (c *commentController) Create(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateCommentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.commentService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Comment created", res))
}

func (c *commentController) ListByFeedback(ctx *fiber.Ctx) error {
	feedbackId, err := uuid.Parse(ctx.Params("feedbackId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	res, err := c.commentService.ListByFeedback(ctx.Context(), feedbackId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment list", res))
}

func (c *commentController) CountByFeedback(ctx *fiber.Ctx) error {
	feedbackId, err := uuid.Parse(ctx.Params("feedbackId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	count, err := c.commentService.CountByFeedback(ctx.Context(), feedbackId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Comment count", fiber.Map{"count": count}))
}

func (c *commentController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	if err := c.commentService.SoftDelete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Comment deleted", nil))
}

func (c *commentController) ToggleLike(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	res, err := c.commentService.ToggleLike(ctx.Context(), id, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Like toggled", res))
}

func (c *commentController) LikeCount(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	count, err := c.commentService.LikeCount(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Like count", fiber.Map{"count": count}))
}

func (c *commentController) HasLiked(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromLocals(ctx)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	liked, err := c.commentService.HasUserLiked(ctx.Context(), id, userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Like status", fiber.Map{"liked": liked}))
}
