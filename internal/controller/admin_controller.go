package controller

import (
	"yatta-helin-be/internal/dto"
	"yatta-helin-be/internal/pkg/serverutils"
	"yatta-helin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetSessions(ctx *fiber.Ctx) error
	GetSessionLogs(ctx *fiber.Ctx) error
	GetHandoffs(ctx *fiber.Ctx) error
	GetReservations(ctx *fiber.Ctx) error
	UpdateHandoffStatus(ctx *fiber.Ctx) error
	UpdateReservationStatus(ctx *fiber.Ctx) error
	GetSystemLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("/sessions", c.GetSessions)
	h.Get("/sessions/:id/logs", c.GetSessionLogs)
	h.Get("/handoffs", c.GetHandoffs)
	h.Get("/reservations", c.GetReservations)
	h.Put("/handoffs/:id/status", c.UpdateHandoffStatus)
	h.Put("/reservations/:id/status", c.UpdateReservationStatus)
	h.Get("/logs", c.GetSystemLogs)
}

func (c *adminController) GetSessions(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.service.GetSessions(ctx.Context(), page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get sessions", res))
}

func (c *adminController) GetSessionLogs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid session id")
	}

	res, err := c.service.GetSessionMessages(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session logs", res))
}

func (c *adminController) GetHandoffs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	status := ctx.Query("status")

	res, err := c.service.GetHandoffs(ctx.Context(), page, limit, status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get handoffs", res))
}

func (c *adminController) GetReservations(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)
	status := ctx.Query("status")

	res, err := c.service.GetReservations(ctx.Context(), page, limit, status)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get reservations", res))
}

func (c *adminController) UpdateHandoffStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid handoff id")
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateHandoffStatus(ctx.Context(), id, req.Status); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update handoff status", nil))
}

func (c *adminController) UpdateReservationStatus(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid reservation id")
	}

	var req dto.UpdateStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateReservationStatus(ctx.Context(), id, req.Status); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update reservation status", nil))
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)
	level := ctx.Query("level")

	res, err := c.service.GetSystemLogs(ctx.Context(), page, limit, level)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}
