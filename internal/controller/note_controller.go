package controller

import (
	"notes-api/internal/dto"
	"notes-api/internal/pkg/serverutils"
	"notes-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler, createLimit fiber.Handler)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

// RegisterRoutes guards creation with Basic auth and the stricter
// per-client window; listing is open, matching the create-only asymmetry.
func (c *noteController) RegisterRoutes(r fiber.Router, auth fiber.Handler, createLimit fiber.Handler) {
	r.Post("/notes", auth, createLimit, c.Create)
	r.Get("/notes", c.List)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
