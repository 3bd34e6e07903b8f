package api

import (
	"net/http"

	"github.com/avnit77/recipes/pkg/api/resource"
	"github.com/avnit77/recipes/pkg/notify"
	"github.com/avnit77/recipes/pkg/storage"
	"github.com/labstack/echo"
)

func (h *Handler) handleFetchEvents(c echo.Context) error {
	m, err := h.store.Events().FetchAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resource.NewEventList(m))
}

func (h *Handler) handleGetEventByID(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.store.Events().FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}

	// The recipe reference is expanded only here.
	recipe, err := h.store.Recipes().FindByID(ctx, m.RecipeID)
	if err != nil && !storage.IsNotFound(err) {
		return err
	}

	return c.JSON(http.StatusOK, resource.NewPopulatedEvent(m, recipe))
}

func (h *Handler) handleCreateEvent(c echo.Context) error {
	r := &resource.EventRequest{}
	if err := c.Bind(r); err != nil {
		return err
	}

	m, err := resource.ValidateEvent(r, h.loc)
	if err != nil {
		return err
	}

	if err := h.store.Events().Create(c.Request().Context(), m); err != nil {
		return err
	}

	out := resource.NewEvent(m)
	h.notifier.Notify(notify.ActionCreated, out)

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) handleUpdateEvent(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.store.Events().FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}

	r := &resource.EventRequest{}
	if err := c.Bind(r); err != nil {
		return err
	}

	if err := resource.ApplyEvent(m, r, h.loc); err != nil {
		return err
	}

	if err := h.store.Events().Update(ctx, m); err != nil {
		return err
	}

	out := resource.NewEvent(m)
	h.notifier.Notify(notify.ActionUpdated, out)

	return c.JSON(http.StatusOK, out)
}

func (h *Handler) handleDeleteEvent(c echo.Context) error {
	ctx := c.Request().Context()

	m, err := h.store.Events().FindByID(ctx, idParam(c))
	if err != nil {
		return err
	}

	if err := h.store.Events().Delete(ctx, m.ID); err != nil {
		return err
	}

	out := resource.NewEvent(m)
	h.notifier.Notify(notify.ActionDeleted, out)

	return c.JSON(http.StatusOK, out)
}

