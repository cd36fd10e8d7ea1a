package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"tharagrowth-api/internal/catalog"
	"tharagrowth-api/internal/locale"
	"tharagrowth-api/internal/models"
	"tharagrowth-api/internal/services"
)

type MarketHandler struct {
	market   *services.MarketService
	exchange *services.ExchangeService
	news     *services.NewsService
	catalog  *catalog.Catalog
	store    *session.Store
}

func NewMarketHandler(
	market *services.MarketService,
	exchange *services.ExchangeService,
	news *services.NewsService,
	cat *catalog.Catalog,
	store *session.Store,
) *MarketHandler {
	return &MarketHandler{
		market:   market,
		exchange: exchange,
		news:     news,
		catalog:  cat,
		store:    store,
	}
}

func (h *MarketHandler) session(c *fiber.Ctx) *session.Session {
	sess, err := h.store.Get(c)
	if err != nil {
		return nil
	}
	return sess
}

// Home handles GET /: service overview with live market highlights and
// featured real estate for the resolved locale.
func (h *MarketHandler) Home(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sess := h.session(c)
	loc := resolveLocale(c, sess)
	if sess != nil {
		_ = sess.Save()
	}

	return c.JSON(fiber.Map{
		"service":              "TharaGrowth API",
		"languages":            locale.Names,
		"language":             loc,
		"gold_price":           h.market.GoldPrice(ctx),
		"active_stocks":        h.market.ActiveStocks(ctx),
		"featured_real_estate": h.catalog.FeaturedRealEstate(loc),
	})
}

// Education handles GET /education: financial news in the resolved
// locale.
func (h *MarketHandler) Education(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	sess := h.session(c)
	loc := resolveLocale(c, sess)
	if sess != nil {
		_ = sess.Save()
	}

	return c.JSON(fiber.Map{
		"language": loc,
		"news":     h.news.FinancialNews(ctx, loc),
	})
}

// MarketData handles GET /api/market-data: the full market snapshot.
func (h *MarketHandler) MarketData(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	return c.JSON(fiber.Map{
		"gold_price":     h.market.GoldPrice(ctx),
		"stocks":         h.market.ActiveStocks(ctx),
		"exchange_rates": h.exchange.MajorRates(ctx),
		"timestamp":      time.Now(),
	})
}

// CurrencyConvert handles GET /api/currency-convert?amount&from&to.
func (h *MarketHandler) CurrencyConvert(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	raw := c.Query("amount")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Amount required",
			Code:  fiber.StatusBadRequest,
		})
	}

	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Amount required",
			Message: "amount must be a number",
			Code:    fiber.StatusBadRequest,
		})
	}

	from := c.Query("from", "USD")
	to := c.Query("to", "AED")

	return c.JSON(h.exchange.Convert(ctx, amount, from, to))
}

// Status handles GET /api/status.
func (h *MarketHandler) Status(c *fiber.Ctx) error {
	sess := h.session(c)
	loc := resolveLocale(c, sess)
	if sess != nil {
		_ = sess.Save()
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"message":   "TharaGrowth API is running",
		"timestamp": time.Now(),
		"language":  loc,
	})
}

// SetLanguage handles GET /set-language/:lang: stores the preference in
// the session and sends the visitor back where they came from.
func (h *MarketHandler) SetLanguage(c *fiber.Ctx) error {
	lang := c.Params("lang")
	if !locale.IsSupported(lang) {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error:   "Unsupported language",
			Message: "supported languages: en, ar, fr",
			Code:    fiber.StatusBadRequest,
		})
	}

	if sess := h.session(c); sess != nil {
		sess.Set(sessionLangKey, lang)
		_ = sess.Save()
	}

	target := c.Get("Referer")
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusFound)
}
