package handlers

import (
	"context"

	"practico/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Request is a request body that knows its own structural rules.
type Request interface {
	Validate(v *validation.Validator) error
}

// Service is the business layer behind a CRUDHandler.
type Service[Req, Resp any] interface {
	Create(ctx context.Context, req Req) (Resp, error)
	List(ctx context.Context) ([]Resp, error)
	Get(ctx context.Context, id string) (Resp, error)
	Update(ctx context.Context, id string, req Req) (Resp, error)
	Delete(ctx context.Context, id string) error
}

// Route binds one method and path to a handler.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
}

// CRUDHandler handles HTTP requests for one entity collection.
type CRUDHandler[Req Request, Resp any] struct {
	prefix    string
	service   Service[Req, Resp]
	validator *validation.Validator
	log       zerolog.Logger
}

// NewCRUDHandler creates a handler serving the collection under prefix,
// e.g. "/customers".
func NewCRUDHandler[Req Request, Resp any](prefix string, service Service[Req, Resp], v *validation.Validator, log zerolog.Logger) *CRUDHandler[Req, Resp] {
	return &CRUDHandler[Req, Resp]{
		prefix:    prefix,
		service:   service,
		validator: v,
		log:       log,
	}
}

// Routes returns the route table of the collection.
func (h *CRUDHandler[Req, Resp]) Routes() []Route {
	return []Route{
		{Method: fiber.MethodPost, Path: "/", Handler: h.HandleCreate},
		{Method: fiber.MethodGet, Path: "/", Handler: h.HandleList},
		{Method: fiber.MethodGet, Path: "/:id", Handler: h.HandleGet},
		{Method: fiber.MethodPut, Path: "/:id", Handler: h.HandleUpdate},
		{Method: fiber.MethodDelete, Path: "/:id", Handler: h.HandleDelete},
	}
}

// RegisterRoutes registers the collection routes with the router.
func (h *CRUDHandler[Req, Resp]) RegisterRoutes(router fiber.Router) {
	group := router.Group(h.prefix)
	for _, r := range h.Routes() {
		group.Add(r.Method, r.Path, r.Handler)
	}
}

// HandleCreate creates a new record.
func (h *CRUDHandler[Req, Resp]) HandleCreate(c *fiber.Ctx) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	created, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleList retrieves all records.
func (h *CRUDHandler[Req, Resp]) HandleList(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	if items == nil {
		items = []Resp{}
	}
	return c.JSON(items)
}

// HandleGet retrieves a single record by its ID.
func (h *CRUDHandler[Req, Resp]) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// HandleUpdate replaces a record.
func (h *CRUDHandler[Req, Resp]) HandleUpdate(c *fiber.Ctx) error {
	req, err := h.bind(c)
	if err != nil {
		return err
	}
	updated, err := h.service.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleDelete deletes a record.
func (h *CRUDHandler[Req, Resp]) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bind parses and validates the request body. Both kinds of failure are
// rendered by ErrorHandler.
func (h *CRUDHandler[Req, Resp]) bind(c *fiber.Ctx) (Req, error) {
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return req, &BadRequestError{Message: "Invalid request body", Err: err}
	}
	if err := req.Validate(h.validator); err != nil {
		h.log.Debug().Err(err).Str("path", c.Path()).Msg("request failed validation")
		return req, err
	}
	return req, nil
}
