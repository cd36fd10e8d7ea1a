package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog"

	"tharagrowth-api/internal/advisor"
	"tharagrowth-api/internal/catalog"
	"tharagrowth-api/internal/models"
	"tharagrowth-api/internal/services"
)

type AdvisorHandler struct {
	profiler *advisor.Profiler
	engine   *advisor.Engine
	catalog  *catalog.Catalog
	exchange *services.ExchangeService
	store    *session.Store
	log      zerolog.Logger
}

func NewAdvisorHandler(
	profiler *advisor.Profiler,
	engine *advisor.Engine,
	cat *catalog.Catalog,
	exchange *services.ExchangeService,
	store *session.Store,
	log zerolog.Logger,
) *AdvisorHandler {
	return &AdvisorHandler{
		profiler: profiler,
		engine:   engine,
		catalog:  cat,
		exchange: exchange,
		store:    store,
		log:      log,
	}
}

// Analyze handles POST /analyze: validates the submitted preferences,
// runs the profiler, allocation engine and opportunity filter, stores
// the result in the session and returns it.
func (h *AdvisorHandler) Analyze(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	var input models.UserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
			Code:    fiber.StatusBadRequest,
		})
	}

	if errs := input.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse{
			Error:  "Validation failed",
			Fields: errs,
			Code:   fiber.StatusBadRequest,
		})
	}

	if input.QuickStart && len(input.InvestmentTypes) == 0 {
		input.InvestmentTypes = advisor.QuickStartTypes(input.RiskAppetite)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		h.log.Warn().Err(err).Msg("session unavailable, result will not be retrievable")
		sess = nil
	}
	loc := resolveLocale(c, sess)

	budgetUSD := h.exchange.ToUSD(ctx, input.Budget, input.Currency)
	profile := h.profiler.CreateProfile(input, budgetUSD)
	plan := h.engine.BuildPlan(input.RiskAppetite, input.Goal, input.InvestmentTypes, profile.TimeHorizon, loc)
	opportunities := h.catalog.RecommendationsFor(input.InvestmentTypes, input.RiskAppetite, budgetUSD, input.Currency, loc)

	result := models.AnalysisResult{
		Input:         input,
		Profile:       profile,
		Plan:          plan,
		Opportunities: opportunities,
		Timestamp:     time.Now(),
	}

	if sess != nil {
		sess.Set(sessionAnalysisKey, result)
		if err := sess.Save(); err != nil {
			h.log.Warn().Err(err).Msg("failed to persist analysis to session")
		}
	}

	c.Set("Location", "/results")
	return c.JSON(result)
}

// Results handles GET /results: replays the last analysis from session
// storage with the current display exchange rate. Visitors without a
// stored analysis are sent back to the entry point.
func (h *AdvisorHandler) Results(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Redirect("/", fiber.StatusFound)
	}

	result, ok := sess.Get(sessionAnalysisKey).(models.AnalysisResult)
	if !ok {
		return c.Redirect("/", fiber.StatusFound)
	}

	loc := resolveLocale(c, sess)
	if err := sess.Save(); err != nil {
		h.log.Warn().Err(err).Msg("failed to save session")
	}

	return c.JSON(fiber.Map{
		"analysis":      result,
		"exchange_rate": h.exchange.Rate(ctx, "USD", result.Input.Currency),
		"language":      loc,
	})
}
