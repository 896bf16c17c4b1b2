package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/atlas-rto/workforce-matrix/internal/api/dto"
	"github.com/atlas-rto/workforce-matrix/internal/domain"
	"github.com/atlas-rto/workforce-matrix/internal/service"
	apperrors "github.com/atlas-rto/workforce-matrix/pkg/util"
)

// StaffHandler exposes the roster endpoints.
type StaffHandler struct {
	roster *service.RosterService
	auth   *service.AuthService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(roster *service.RosterService, authService *service.AuthService) *StaffHandler {
	return &StaffHandler{roster: roster, auth: authService}
}

// List handles GET /staff with optional state/position/status/soa filters.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	criteria := service.FilterCriteria{
		State:    c.Query("state", service.FilterAll),
		Position: c.Query("position", service.FilterAll),
		Status:   c.Query("status", service.FilterAll),
		SOACode:  c.Query("soa", service.FilterAll),
	}

	records := h.roster.Filtered(criteria)
	return c.JSON(fiber.Map{"data": records, "count": len(records)})
}

// SOAOptions handles GET /staff/soas.
func (h *StaffHandler) SOAOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.roster.SOAOptions()})
}

// Get handles GET /staff/:atlasId.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	record, err := h.roster.GetByAtlasID(c.Params("atlasId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": record})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.roster.Create(c.UserContext(), actor, service.CreateStaffInput{
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		Surname:     req.Surname,
		Position:    domain.Position(req.Position),
		State:       req.State,
		TeamStatus:  req.TeamStatus,
		DateOfBirth: req.DateOfBirth,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Suburb:      req.Suburb,
		Postcode:    req.Postcode,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": record})
}

// UpdateSection handles PATCH /staff/:id/section.
func (h *StaffHandler) UpdateSection(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid staff id", nil)
	}

	var req dto.SectionPatchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patch, err := req.ToPatch()
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	record, err := h.roster.Update(c.UserContext(), actor, id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": record})
}

// Delete handles DELETE /staff/:atlasId.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	if err := h.roster.Delete(c.UserContext(), actor, c.Params("atlasId")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddSubRecord handles POST /staff/:id/section/:section.
func (h *StaffHandler) AddSubRecord(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid staff id", nil)
	}

	var req dto.AddSubRecordRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}

	record, err := h.roster.AddSubRecord(c.UserContext(), actor, id, domain.Section(c.Params("section")), req.Tab)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": record})
}

// DeleteSubRecord handles DELETE /staff/:id/section/:section/:index. The
// qualification tab, when relevant, arrives as the tab query param.
func (h *StaffHandler) DeleteSubRecord(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid staff id", nil)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return apperrors.NewValidationError("invalid index", nil)
	}

	record, err := h.roster.DeleteSubRecord(c.UserContext(), actor, id,
		domain.Section(c.Params("section")), domain.QualTab(c.Query("tab")), index)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": record})
}

// Export handles GET /staff/export.
func (h *StaffHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ATLAS-workforce-data.json"`)
	return c.JSON(h.roster.ExportAll())
}

// Import handles POST /staff/import. The body is the complete roster array;
// it replaces the collection atomically.
func (h *StaffHandler) Import(c *fiber.Ctx) error {
	actor, err := actorFrom(c, h.auth)
	if err != nil {
		return err
	}

	var records []domain.StaffRecord
	if err := c.BodyParser(&records); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	count, err := h.roster.ImportAll(c.UserContext(), actor, records)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"imported": count}})
}

// SummaryCSV handles GET /staff/:atlasId/summary.csv.
func (h *StaffHandler) SummaryCSV(c *fiber.Ctx) error {
	record, err := h.roster.GetByAtlasID(c.Params("atlasId"))
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("ATLAS Workforce Data Export\n\n")
	fmt.Fprintf(&b, "Staff Member: %s\n", record.Name)
	fmt.Fprintf(&b, "ATLAS ID: %s\n", record.AtlasID)
	fmt.Fprintf(&b, "Position: %s\n", record.Position)
	fmt.Fprintf(&b, "Date Added: %s\n\n", orFallback(record.CreatedDate, "Not recorded"))
	b.WriteString("Contact Details\n")
	fmt.Fprintf(&b, "Email,%s\n", record.Contact.Email)
	fmt.Fprintf(&b, "Phone,%s\n", record.Contact.Phone)
	fmt.Fprintf(&b, "Address,%s\n", record.Contact.Address)
	fmt.Fprintf(&b, "Date of Birth,%s\n", orFallback(record.DateOfBirth, "Not provided"))
	fmt.Fprintf(&b, "Date Added to System,%s\n", orFallback(record.CreatedDate, "Not recorded"))

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s_workforce_data.csv"`, record.AtlasID))
	return c.SendString(b.String())
}

// ComplianceReport handles GET /staff/:atlasId/compliance.
func (h *StaffHandler) ComplianceReport(c *fiber.Ctx) error {
	record, err := h.roster.GetByAtlasID(c.Params("atlasId"))
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "COMPLIANCE REPORT - %s\n", record.Name)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("02/01/2006"))
	b.WriteString("ASQA 2025 Compliance Status\n")
	b.WriteString("=============================\n\n")
	fmt.Fprintf(&b, "Professional Indemnity: %s\n", orFallback(string(record.Insurance.ProfessionalIndemnity.Status), "N/A"))
	fmt.Fprintf(&b, "Public Liability: %s\n", orFallback(string(record.Insurance.PublicLiability.Status), "N/A"))
	fmt.Fprintf(&b, "WorkCover: %s\n", orFallback(string(record.Insurance.WorkCover.Status), "N/A"))

	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(b.String())
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
