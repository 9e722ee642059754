package controller

import (
	"fmt"

	"counselling-portal-be/internal/dto"
	"counselling-portal-be/internal/pkg/serverutils"
	"counselling-portal-be/internal/service"
	"counselling-portal-be/pkg/report"

	"github.com/gofiber/fiber/v2"
)

type IReportController interface {
	RegisterRoutes(r fiber.Router, auth ...fiber.Handler)
	Generate(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
	Fields(ctx *fiber.Ctx) error
}

type reportController struct {
	reportService service.IReportService
}

func NewReportController(reportService service.IReportService) IReportController {
	return &reportController{
		reportService: reportService,
	}
}

func (c *reportController) RegisterRoutes(r fiber.Router, auth ...fiber.Handler) {
	h := r.Group("/reports")
	for _, mw := range auth {
		h.Use(mw)
	}
	h.Post("generate", c.Generate)
	h.Post("export", c.Export)
	h.Get("stats", c.Stats)
	h.Get("fields", c.Fields)
}

func (c *reportController) Generate(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.GenerateReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return report.InvalidRequest("malformed request body", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	q, err := report.ParseQuery(req.ToSpec())
	if err != nil {
		return err
	}

	res, err := c.reportService.Generate(ctx.UserContext(), principal, q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate report", dto.NewGenerateReportResponse(res)))
}

func (c *reportController) Export(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.ExportReportRequest
	if err := ctx.BodyParser(&req); err != nil {
		// data or fields of the wrong shape
		return report.InvalidRequest("malformed request body", nil)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	file, err := c.reportService.Export(ctx.UserContext(), principal, &req)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Filename))
	return ctx.Send(file.Data)
}

func (c *reportController) Stats(ctx *fiber.Ctx) error {
	principal, ok := serverutils.GetPrincipal(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.reportService.Stats(ctx.UserContext(), principal)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get report stats", res))
}

func (c *reportController) Fields(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get report fields", report.Headers()))
}
