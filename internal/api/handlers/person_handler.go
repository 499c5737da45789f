package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"person-api/internal/apperrors"
	"person-api/internal/domain/dtos"
	"person-api/internal/domain/mappers"
	"person-api/internal/domain/repositories"
	"person-api/internal/services"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PersonHandler struct {
	personService services.PersonServiceContract
	validator     services.Validator
	logger        zerolog.Logger
	timeout       time.Duration
}

func NewPersonHandler(ps services.PersonServiceContract, validator services.Validator, logger zerolog.Logger, timeout time.Duration) *PersonHandler {
	return &PersonHandler{
		personService: ps,
		validator:     validator,
		logger:        logger.With().Str("component", "person_handler").Logger(),
		timeout:       timeout,
	}
}

// GetAll lists every person, or one page of them when page or size is given.
func (h *PersonHandler) GetAll(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if c.Query("page") == "" && c.Query("size") == "" {
		people, err := h.personService.FindAll(ctx)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusOK).JSON(mappers.PersonsToResponse(people))
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}
	result, err := h.personService.FindPage(ctx, page)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mappers.PageToResponse(result))
}

func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	person, err := h.personService.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mappers.PersonToResponse(person))
}

func (h *PersonHandler) Create(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}
	person, err := mappers.PersonFromRequest(req)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	saved, err := h.personService.Create(ctx, person)
	if err != nil {
		return err
	}

	c.Location("/api/person/" + strconv.FormatUint(uint64(saved.ID), 10))
	return c.Status(fiber.StatusCreated).JSON(mappers.PersonToResponse(saved))
}

// Update replaces the person at :id with the request body.
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	id, err := personID(c)
	if err != nil {
		return err
	}
	req, err := h.parseRequest(c)
	if err != nil {
		return err
	}

	person, err := mappers.PersonFromRequest(req)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	saved, err := h.personService.Update(ctx, id, person)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(mappers.PersonToResponse(saved))
}

func (h *PersonHandler) Delete(c *fiber.Ctx) error {
	id, err := personID(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.personService.Delete(ctx, id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PersonHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// parseRequest decodes and validates the body, reporting every bad field at once.
func (h *PersonHandler) parseRequest(c *fiber.Ctx) (dtos.PersonRequest, error) {
	var req dtos.PersonRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug().Err(err).Msg("rejecting unparsable body")
		return req, apperrors.Invalid("body", "Request body must be a JSON object: "+err.Error())
	}
	if err := h.validator.Struct(req); err != nil {
		return req, err
	}
	return req, nil
}

func personID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 63)
	if err != nil {
		return 0, apperrors.Invalid("id", "Id must be a non-negative integer")
	}
	return uint(id), nil
}

func pageRequest(c *fiber.Ctx) (repositories.PageRequest, error) {
	page, err := queryInt(c, "page", 0)
	if err != nil {
		return repositories.PageRequest{}, err
	}
	size, err := queryInt(c, "size", defaultPageSize)
	if err != nil {
		return repositories.PageRequest{}, err
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return repositories.PageRequest{Page: page, Size: size}, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.Invalid(key, key+" must be an integer")
	}
	return v, nil
}

// RegisterPersonRoutes mounts the person endpoints on router, which is
// expected to be the /api/person group.
func RegisterPersonRoutes(router fiber.Router, h *PersonHandler) {
	router.Get("/", h.GetAll)
	router.Post("/", h.Create)
	router.Get("/:id", h.GetByID)
	router.Put("/:id", h.Update)
	router.Delete("/:id", h.Delete)
}
