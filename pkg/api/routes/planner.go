package routes

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/travigo/navigator/pkg/api/session"
	"github.com/travigo/navigator/pkg/ctdf"
	"github.com/travigo/navigator/pkg/planner"
)

func PlannerRouter(router fiber.Router) {
	router.Get("/plan", getPlan)
	router.Get("/latest", getLatestPlan)
}

func getPlan(c *fiber.Ctx) error {
	current := session.FromContext(c)

	request := planner.Request{
		OriginName:      utils.CopyString(c.Query("fromName")),
		DestinationName: utils.CopyString(c.Query("toName")),
		Exclusions:      current.Selection.Criteria(),
	}

	var err error

	// A missing endpoint is not an error, there is just nothing to plan yet
	if from := c.Query("from"); from != "" {
		if request.Origin, err = ctdf.ParseLocation(from); err != nil {
			return sendError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	if to := c.Query("to"); to != "" {
		if request.Destination, err = ctdf.ParseLocation(to); err != nil {
			return sendError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	if datetime := c.Query("datetime"); datetime != "" {
		if request.DateTime, err = time.Parse(time.RFC3339, datetime); err != nil {
			return sendError(c, fiber.StatusBadRequest, "Parameter datetime should be an RFC3339/ISO8601 datetime")
		}
	}

	if maxTransfers := c.Query("maxTransfers"); maxTransfers != "" {
		value, err := strconv.Atoi(maxTransfers)
		if err != nil || value < 0 {
			return sendError(c, fiber.StatusBadRequest, "Parameter maxTransfers should be a non-negative integer")
		}
		request.Limits.MaxTransfers = &value
	}
	if request.Limits.ResultCount, err = optionalInt(c, "count"); err != nil {
		return sendError(c, fiber.StatusBadRequest, "Parameter count should be an integer")
	}

	results, err := current.Planner.Plan(c.UserContext(), request)
	if errors.Is(err, planner.ErrSuperseded) {
		return sendError(c, fiber.StatusConflict, err.Error())
	}
	if err != nil {
		return sendError(c, fiber.StatusServiceUnavailable, err.Error())
	}

	return sendReduced(c, results)
}

// getLatestPlan returns the last round again with the current exclusions applied
func getLatestPlan(c *fiber.Ctx) error {
	current := session.FromContext(c)

	results, found := current.Planner.Refilter(current.Selection.Criteria())
	if !found {
		return sendError(c, fiber.StatusNotFound, "No journey has been planned in this session")
	}

	return sendReduced(c, results)
}

func optionalInt(c *fiber.Ctx, key string) (int, error) {
	value := c.Query(key)
	if value == "" {
		return 0, nil
	}

	return strconv.Atoi(value)
}
