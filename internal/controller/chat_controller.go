package controller

import (
	"yatta-helin-be/internal/dto"
	"yatta-helin-be/internal/pkg/serverutils"
	"yatta-helin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	GetProducts(ctx *fiber.Ctx) error
	GetFaqs(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

// RegisterRoutes mounts the visitor-facing surface. No auth: the widget
// talks here before any login exists.
func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/helin/v1")
	h.Post("/chat", c.SendChat)
	h.Get("/session/:sessionKey/history", c.GetHistory)
	h.Get("/products", c.GetProducts)
	h.Get("/faqs", c.GetFaqs)
}

func (c *chatController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SendChat(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	sessionKey := ctx.Params("sessionKey")
	if sessionKey == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Session key is required")
	}

	res, err := c.service.GetChatHistory(ctx.Context(), sessionKey)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

func (c *chatController) GetProducts(ctx *fiber.Ctx) error {
	res, err := c.service.GetProducts(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}

func (c *chatController) GetFaqs(ctx *fiber.Ctx) error {
	res, err := c.service.GetFaqs(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get faqs", res))
}
