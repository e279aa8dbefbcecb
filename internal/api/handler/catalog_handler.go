package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mi-ecommerce/marketplace-api/internal/core/ports"
)

// CatalogHandler handles HTTP requests for products, categories, and pictures.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// --- Products ---

// ListProducts handles GET /products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.service.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "products list", products)
}

// ListMostWanted handles GET /products/mostwanted.
//
// @Summary      List most-wanted products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /products/mostwanted [get]
func (h *CatalogHandler) ListMostWanted(c echo.Context) error {
	products, err := h.service.ListMostWanted(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "most wanted products", products)
}

// GetProduct handles GET /products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product detail", product)
}

// CreateProduct handles POST /products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /products [post]
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.CreateProduct(c.Request().Context(), ports.CreateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Stock:       req.Stock,
		MostWanted:  req.MostWanted,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "product created successfully", product)
}

// UpdateProduct handles PUT /products/:id.
//
// @Summary      Partially update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.UpdateProduct(c.Request().Context(), id, ports.UpdateProductInput{
		Title:       req.Title,
		Price:       req.Price,
		Stock:       req.Stock,
		MostWanted:  req.MostWanted,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product updated successfully", product)
}

// DeleteProduct handles DELETE /products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	product, err := h.service.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "product deleted successfully", product)
}

// ListPictures handles GET /products/:id/pictures.
//
// @Summary      List pictures of a product
// @Tags         pictures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Product id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /products/{id}/pictures [get]
func (h *CatalogHandler) ListPictures(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	pictures, err := h.service.ListPictures(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "pictures list", pictures)
}

// --- Categories ---

// ListCategories handles GET /category.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /category [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.service.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "categories list", categories)
}

// GetCategory handles GET /category/:id.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /category/{id} [get]
func (h *CatalogHandler) GetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.service.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category detail", category)
}

// CreateCategory handles POST /category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /category [post]
func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "category created successfully", category)
}

// UpdateCategory handles PUT /category/:id.
//
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "New name"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /category/{id} [put]
func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.service.UpdateCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category updated successfully", category)
}

// DeleteCategory handles DELETE /category/:id.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Category id"
// @Success      200  {object}  envelope
// @Failure      400  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /category/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	category, err := h.service.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "category deleted successfully", category)
}

// --- Pictures ---

// GetPicture handles GET /pictures/:id.
//
// @Summary      Get a picture by id
// @Tags         pictures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Picture id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /pictures/{id} [get]
func (h *CatalogHandler) GetPicture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	picture, err := h.service.GetPicture(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "picture detail", picture)
}

// CreatePicture handles POST /pictures.
//
// @Summary      Attach a picture to a product
// @Tags         pictures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPictureRequest  true  "Picture details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /pictures [post]
func (h *CatalogHandler) CreatePicture(c echo.Context) error {
	var req createPictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.service.CreatePicture(c.Request().Context(), req.ProductID, req.URL)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "picture created successfully", picture)
}

// UpdatePicture handles PUT /pictures/:id.
//
// @Summary      Replace a picture URL
// @Tags         pictures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Picture id"
// @Param        body  body      updatePictureRequest  true  "New URL"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /pictures/{id} [put]
func (h *CatalogHandler) UpdatePicture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updatePictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.service.UpdatePicture(c.Request().Context(), id, req.URL)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "picture updated successfully", picture)
}

// DeletePicture handles DELETE /pictures/:id.
//
// @Summary      Delete a picture
// @Tags         pictures
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Picture id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /pictures/{id} [delete]
func (h *CatalogHandler) DeletePicture(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	picture, err := h.service.DeletePicture(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "picture deleted successfully", picture)
}
