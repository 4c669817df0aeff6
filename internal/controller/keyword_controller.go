package controller

import (
	"github.com/gofiber/fiber/v2"

	"recipe-search-be/internal/dto"
	"recipe-search-be/internal/pkg/serverutils"
	"recipe-search-be/internal/service"
)

type IKeywordController interface {
	RegisterRoutes(r fiber.Router)
	Toggle(ctx *fiber.Ctx) error
}

type keywordController struct {
	keywordService service.IKeywordService
}

func NewKeywordController(keywordService service.IKeywordService) IKeywordController {
	return &keywordController{
		keywordService: keywordService,
	}
}

func (c *keywordController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/keyword/v1")
	h.Post("toggle", c.Toggle)
}

func (c *keywordController) Toggle(ctx *fiber.Ctx) error {
	var req dto.ToggleKeywordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.keywordService.Toggle(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle keyword", res))
}
