package controller

import (
	"github.com/gofiber/fiber/v2"

	"recipe-search-be/internal/pkg/serverutils"
	"recipe-search-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type sessionController struct {
	searchService service.ISearchService
}

func NewSessionController(searchService service.ISearchService) ISessionController {
	return &sessionController{
		searchService: searchService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.searchService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	res, err := c.searchService.GetSession(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}
