package handlers

import (
	"html/template"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"wellness/internal/config"
	"wellness/internal/metrics"
	"wellness/internal/models"
	"wellness/internal/responder"
	"wellness/internal/validation"
)

// Exchange is one user message and the companion's reply, ready for the
// partials/exchange template.
type Exchange struct {
	UserText string // escaped by html/template
	Reply    template.HTML
	Crisis   bool
}

// ChatHandler serves the chat page.
type ChatHandler struct {
	responder *responder.Responder
	metrics   *metrics.Recorder
	cfg       *config.Config
	sleep     func(time.Duration)
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(r *responder.Responder, rec *metrics.Recorder, cfg *config.Config) *ChatHandler {
	return &ChatHandler{
		responder: r,
		metrics:   rec,
		cfg:       cfg,
		sleep:     time.Sleep,
	}
}

// Index renders the empty chat page.
func (h *ChatHandler) Index(c fiber.Ctx) error {
	return c.Render("index", MergeBranding(fiber.Map{
		"Title": "Chat",
	}, h.cfg))
}

// Send handles a chat form submission. HTMX requests get the exchange
// partial; plain form posts get the whole page with the exchange in it.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.Bind().Form(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form submission")
	}

	message := validation.NormalizeMessage(req.Message)
	if valid, msg := validation.ValidateMessage(message); !valid {
		if isHTMX(c) {
			return htmxError(c, msg)
		}
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	reply := h.responder.Respond(message)
	if reply.Classification.Crisis {
		slog.Warn("crisis phrase detected", "source", "web")
	}
	h.metrics.RecordReply(metrics.PathFor(reply.Classification), "web", reply.Classification.Tags.Strings())

	// Cosmetic pause so the reply does not appear instantly.
	if h.cfg.ReplyDelay > 0 {
		h.sleep(h.cfg.ReplyDelay)
	}

	exchange := Exchange{
		UserText: message,
		// Reply markup comes only from fixed templates.
		Reply:  template.HTML(reply.Text),
		Crisis: reply.Classification.Crisis,
	}

	if isHTMX(c) {
		return c.Render("partials/exchange", exchange, "")
	}
	return c.Render("index", MergeBranding(fiber.Map{
		"Title":    "Chat",
		"Exchange": exchange,
	}, h.cfg))
}
