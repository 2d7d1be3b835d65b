package handler

import (
	"errors"
	"net/http"
	"strconv"

	"book-inventory-backend/internal/domains/book"
	"book-inventory-backend/internal/shared/response"
	"book-inventory-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Handler maps the HTTP surface onto the book service.
// Failure bodies are fixed messages; raw store errors never reach the wire.
type Handler struct {
	service book.Service
}

func NewHandler(service book.Service) *Handler {
	return &Handler{service: service}
}

// ListBooks - GET /allBooks
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		logger.Error("list books failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to get books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook - GET /book/:id
func (h *Handler) GetBook(c *gin.Context) {
	b, err := h.service.GetBook(c.Request.Context(), c.Param("id"))
	if errors.Is(err, book.ErrBookNotFound) {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logger.Error("get book failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to get book")
		return
	}

	c.JSON(http.StatusOK, b)
}

// CreateBook - POST /newBook
func (h *Handler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Covers malformed JSON and wrong primitive kinds (a string price).
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateBook(c.Request.Context(), &req)

	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.Error(c, http.StatusBadRequest, vErrs.Error())
		return
	}
	if err != nil {
		logger.Error("create book failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to save book")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateBook - PUT /bookChange/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	err := h.service.UpdateBook(c.Request.Context(), c.Param("id"), &req)
	if errors.Is(err, book.ErrBookNotFound) {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logger.Error("update book failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to update book")
		return
	}

	response.Message(c, http.StatusOK, "Product updated successfully")
}

// DeleteBook - DELETE /bookDelete/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	err := h.service.DeleteBook(c.Request.Context(), c.Param("id"))
	if errors.Is(err, book.ErrBookNotFound) {
		response.Error(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logger.Error("delete book failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete book")
		return
	}

	response.Message(c, http.StatusOK, "Product deleted successfully")
}

// FilterBooks - GET /sortingBooks?minPrice=&maxPrice=&sortBy=
//
// Price bounds coerce to integers: decimal values truncate toward zero
// and a non-numeric value degrades to "no constraint" rather than an
// error.
func (h *Handler) FilterBooks(c *gin.Context) {
	filter := &book.BookFilter{
		Sort: book.ParseSortOrder(c.Query("sortBy")),
	}

	if v := c.Query("minPrice"); v != "" {
		filter.MinPrice = parsePriceBound(v)
	}
	if v := c.Query("maxPrice"); v != "" {
		filter.MaxPrice = parsePriceBound(v)
	}

	books, err := h.service.FilterBooks(c.Request.Context(), filter)
	if err != nil {
		logger.Error("filter books failed", err)
		response.Error(c, http.StatusInternalServerError, "Failed to get books")
		return
	}

	c.JSON(http.StatusOK, books)
}

// parsePriceBound coerces a price query parameter to an integer bound.
// "10" and "10.5" both yield 10; anything non-numeric yields nil.
func parsePriceBound(v string) *int {
	if n, err := strconv.Atoi(v); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}
