package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wellness/internal/metrics"
	"wellness/internal/models"
	"wellness/internal/responder"
	"wellness/internal/validation"
)

// ChatHandler handles chat exchanges via JSON API.
type ChatHandler struct {
	responder *responder.Responder
	metrics   *metrics.Recorder
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(r *responder.Responder, rec *metrics.Recorder) *ChatHandler {
	return &ChatHandler{responder: r, metrics: rec}
}

// bindMessage parses and validates the message from a JSON body.
// A non-empty problem is the client-facing reason the body was rejected.
func bindMessage(c fiber.Ctx) (message, problem string) {
	var req models.ChatRequest
	if err := c.Bind().JSON(&req); err != nil {
		return "", "invalid JSON body"
	}
	message = validation.NormalizeMessage(req.Message)
	if valid, msg := validation.ValidateMessage(message); !valid {
		return "", msg
	}
	return message, ""
}

// Chat composes a reply for a message.
func (h *ChatHandler) Chat(c fiber.Ctx) error {
	message, problem := bindMessage(c)
	if problem != "" {
		return jsonError(c, fiber.StatusBadRequest, problem)
	}

	reply := h.responder.Respond(message)
	if reply.Classification.Crisis {
		slog.Warn("crisis phrase detected", "source", "api")
	}
	tags := reply.Classification.Tags.Strings()
	h.metrics.RecordReply(metrics.PathFor(reply.Classification), "api", tags)

	return jsonSuccess(c, models.ChatResponse{
		ID:      uuid.New(),
		Message: validation.EscapeMessage(message),
		Reply:   reply.Text,
		Crisis:  reply.Classification.Crisis,
		Tags:    tags,
	})
}

// Classify reports how a message would be classified without composing a reply.
func (h *ChatHandler) Classify(c fiber.Ctx) error {
	message, problem := bindMessage(c)
	if problem != "" {
		return jsonError(c, fiber.StatusBadRequest, problem)
	}

	result := responder.Classify(message)
	return jsonSuccess(c, models.ClassifyResponse{
		Crisis:   result.Crisis,
		Positive: result.Tags.Has(responder.TagPositive),
		Tags:     result.Tags.Strings(),
	})
}
