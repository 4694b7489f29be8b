package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// BookHandler handles HTTP requests for inventory operations. Validation
// happens here via c.Validate; domain errors flow to the central error
// handler which maps them to status codes.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// Create handles POST /v1/books.
//
// @Summary      Create a new book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookRequest  true  "Book details"
// @Success      201   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req createBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), toCreateInput(req), identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBookResponse(book))
}

// Get handles GET /v1/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookResponse(book))
}

// List handles GET /v1/books. Whether this route requires authentication is
// a deployment policy decided by configuration, not by the handler.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Success      200  {array}  bookResponse
// @Router       /v1/books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookListResponse(books))
}

// Update handles PUT /v1/books/:id. This is a partial update despite the verb, for
// compatibility with existing clients. Only fields present in the body are
// applied.
//
// @Summary      Update book fields
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Book id"
// @Param        body  body      updateBookRequest  true  "Fields to update"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	var req updateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.Update(c.Request().Context(), c.Param("id"), toPatch(req), identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// UpdateStock handles PATCH /v1/books/:id/stock. The quantity is an absolute
// replacement, not a delta.
//
// @Summary      Update book stock
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Book id"
// @Param        body  body      updateStockRequest  true  "New stock quantity"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/books/{id}/stock [patch]
func (h *BookHandler) UpdateStock(c echo.Context) error {
	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid stock quantity")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.UpdateStock(c.Request().Context(), c.Param("id"), *req.StockQuantity, identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// SetRecommended handles PATCH /v1/books/:id/recommend.
//
// @Summary      Set the recommendation flag
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Book id"
// @Param        body  body      setRecommendedRequest  true  "New recommendation value"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/books/{id}/recommend [patch]
func (h *BookHandler) SetRecommended(c echo.Context) error {
	var req setRecommendedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recommendation status")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.SetRecommended(c.Request().Context(), c.Param("id"), *req.Recommended, identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// RemoveRecommendation handles DELETE /v1/books/:id/recommend. Clears the
// flag unconditionally.
//
// @Summary      Remove the recommendation flag
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  bookMessageResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/books/{id}/recommend [delete]
func (h *BookHandler) RemoveRecommendation(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.RemoveRecommendation(c.Request().Context(), c.Param("id"), identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookMessageResponse{
		Message: "recommendation removed successfully",
		Book:    toBookResponse(book),
	})
}

// AddFeedback handles POST /v1/books/:id/feedback. Any authenticated user
// may append; entries are never edited or removed.
//
// @Summary      Append feedback to a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Book id"
// @Param        body  body      addFeedbackRequest  true  "Feedback content (1..500 chars)"
// @Success      200   {object}  bookResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/books/{id}/feedback [post]
func (h *BookHandler) AddFeedback(c echo.Context) error {
	var req addFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "feedback must be between 1 and 500 characters")
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	book, err := h.service.AddFeedback(c.Request().Context(), c.Param("id"), req.Content, identity.Username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toBookResponse(book))
}

// Delete handles DELETE /v1/books/:id.
//
// @Summary      Delete a book
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  deletedResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), identity.Username); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedResponse{Message: "book deleted successfully"})
}
