package controller

import (
	"feedback-forum-be/internal/dto"
	"feedback-forum-be/internal/pkg/serverutils"
	"feedback-forum-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListFeedback(ctx *fiber.Ctx) error
	ListDeletedFeedback(ctx *fiber.Ctx) error
	BulkDeleteFeedback(ctx *fiber.Ctx) error
	HardDeleteFeedback(ctx *fiber.Ctx) error
	BulkCreateTags(ctx *fiber.Ctx) error
	ForceDeleteTag(ctx *fiber.Ctx) error
	ListFeedbackTags(ctx *fiber.Ctx) error
	ClearFeedbackTags(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
}

func NewAdminController(adminService service.IAdminService) IAdminController {
	return &adminController{adminService: adminService}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware, serverutils.AdminMiddleware)

	h.Get("feedback", c.ListFeedback)
	h.Get("feedback/deleted", c.ListDeletedFeedback)
	h.Post("feedback/bulk-delete", c.BulkDeleteFeedback)
	h.Delete("feedback/:id", c.HardDeleteFeedback)
	h.Get("feedback/:id/tags", c.ListFeedbackTags)
	h.Delete("feedback/:id/tags", c.ClearFeedbackTags)
	h.Post("tags/bulk", c.BulkCreateTags)
	h.Delete("tags/:id/force", c.ForceDeleteTag)
}

func pageParams(ctx *fiber.Ctx) (limit, offset *int) {
	if l := ctx.QueryInt("limit", -1); l >= 0 {
		limit = &l
	}
	if o := ctx.QueryInt("offset", -1); o >= 0 {
		offset = &o
	}
	return limit, offset
}

func (c *adminController) ListFeedback(ctx *fiber.Ctx) error {
	limit, offset := pageParams(ctx)
	res, err := c.adminService.GetAllFeedback(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("All feedback", res))
}

func (c *adminController) ListDeletedFeedback(ctx *fiber.Ctx) error {
	limit, offset := pageParams(ctx)
	res, err := c.adminService.GetDeletedFeedback(ctx.Context(), limit, offset)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Deleted feedback", res))
}

func (c *adminController) BulkDeleteFeedback(ctx *fiber.Ctx) error {
	var req dto.BulkSoftDeleteFeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	res, err := c.adminService.BulkSoftDeleteFeedback(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Bulk delete completed", res))
}

func (c *adminController) HardDeleteFeedback(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	if err := c.adminService.HardDeleteFeedback(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback purged", nil))
}

func (c *adminController) BulkCreateTags(ctx *fiber.Ctx) error {
	var req dto.BulkCreateTagsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.BulkCreateTags(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Bulk creation completed", res))
}

func (c *adminController) ForceDeleteTag(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid tag id")
	}

	if err := c.adminService.ForceDeleteTag(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Tag purged", nil))
}

func (c *adminController) ListFeedbackTags(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	res, err := c.adminService.GetAllFeedbackTags(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback tag links", res))
}

func (c *adminController) ClearFeedbackTags(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feedback id")
	}

	res, err := c.adminService.BulkDeleteTagsForFeedback(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feedback tags cleared", res))
}
