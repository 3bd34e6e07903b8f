package api

import (
	"net/http"

	"github.com/avnit77/recipes/pkg/api/resource"
	"github.com/labstack/echo"
)

func (h *Handler) handleFetchRecipes(c echo.Context) error {
	m, err := h.store.Recipes().FetchAll(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resource.NewRecipeList(m))
}

func (h *Handler) handleGetRecipeByID(c echo.Context) error {
	m, err := h.store.Recipes().FindByID(c.Request().Context(), idParam(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resource.NewRecipe(m))
}

func (h *Handler) handleCreateRecipe(c echo.Context) error {
	r := &resource.RecipeRequest{}
	if err := c.Bind(r); err != nil {
		return err
	}

	m, err := resource.ValidateRecipe(r)
	if err != nil {
		return err
	}

	if err := h.store.Recipes().Create(c.Request().Context(), m); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resource.NewRecipe(m))
}
