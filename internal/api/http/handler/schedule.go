package handler

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/gofiber/fiber/v3"

	"github.com/healhub/healhub_backend/internal/service/scheduling"
)

// ScheduleHandler exposes the clinic calendar math. These endpoints are
// pure computation; no record-store call and no role gate.
type ScheduleHandler struct{}

func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// GET /api/v1/clinic-dates/next?from=YYYY-MM-DD
// from defaults to today.
func (h *ScheduleHandler) NextClinicDate(c fiber.Ctx) error {
	from := civil.DateOf(time.Now())
	if raw := c.Query("from"); raw != "" {
		parsed, err := civil.ParseDate(raw)
		if err != nil {
			return badRequest(c, "from must be YYYY-MM-DD")
		}
		from = parsed
	}

	next, err := scheduling.NextClinicDate(from)
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"from": from, "next_clinic_date": next})
}

// GET /api/v1/clinic-dates/fourth-tuesday?year=2024&month=3
func (h *ScheduleHandler) FourthTuesday(c fiber.Ctx) error {
	year := fiber.Query(c, "year", 0)
	month := fiber.Query(c, "month", 0)
	if year <= 0 {
		return badRequest(c, "year is required")
	}

	d, err := scheduling.FourthTuesday(year, time.Month(month))
	if err != nil {
		return fail(c, err)
	}

	return ok(c, fiber.Map{"clinic_date": d})
}
