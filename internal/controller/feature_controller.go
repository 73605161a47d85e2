package controller

import (
	"feedback-forum-be/internal/pkg/serverutils"
	"feedback-forum-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFeatureController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type featureController struct {
	featureService service.IFeatureService
}

func NewFeatureController(featureService service.IFeatureService) IFeatureController {
	return &featureController{featureService: featureService}
}

func (c *featureController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feature/v1")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *featureController) List(ctx *fiber.Ctx) error {
	res, err := c.featureService.List(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature list", res))
}

func (c *featureController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid feature id")
	}

	res, err := c.featureService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Feature detail", res))
}
