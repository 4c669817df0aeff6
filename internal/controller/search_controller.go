package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recipe-search-be/internal/dto"
	"recipe-search-be/internal/pkg/serverutils"
	"recipe-search-be/internal/service"
	"recipe-search-be/pkg/search"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	GraphSearch(ctx *fiber.Ctx) error
	KeywordSearch(ctx *fiber.Ctx) error
	RecipeDetail(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recipe/v1")
	h.Post("search", c.Search)
	h.Post("graph-search", c.GraphSearch)
	h.Post("keyword-search", c.KeywordSearch)
	h.Get(":id", c.RecipeDetail)
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	return c.handleSearch(ctx, search.VariantPlain)
}

func (c *searchController) GraphSearch(ctx *fiber.Ctx) error {
	return c.handleSearch(ctx, search.VariantGraph)
}

func (c *searchController) KeywordSearch(ctx *fiber.Ctx) error {
	return c.handleSearch(ctx, search.VariantKeyword)
}

func (c *searchController) handleSearch(ctx *fiber.Ctx, variant search.Variant) error {
	var req dto.RecipeSearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.HandleSearch(ctx.Context(), variant, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success recipe search", res))
}

func (c *searchController) RecipeDetail(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "recipe id must be numeric")
	}

	payload, err := c.searchService.FetchRecipeDetail(ctx.Context(), id)
	if err != nil {
		return err
	}

	// Crawler payload goes out untouched.
	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.Send(payload)
}
