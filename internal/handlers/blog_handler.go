package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thrivesecure/thrivesecure-backend/internal/models"
	"github.com/thrivesecure/thrivesecure-backend/internal/query"
	"github.com/thrivesecure/thrivesecure-backend/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// defaultBlogLimit is the page size when the caller does not supply one.
const defaultBlogLimit = 6

// BlogHandler handles blog-related HTTP requests
type BlogHandler struct {
	blogService services.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// CreateBlog handles POST /blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if blog.Title == "" || blog.AuthorEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and author email are required"})
		return
	}

	if err := h.blogService.CreateBlog(c.Request.Context(), &blog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// GetBlogs handles GET /blogs
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	p := query.ParseParams(c.Query("page"), c.Query("limit"), defaultBlogLimit)
	email := c.Query("email")

	blogs, totalPages, err := h.blogService.GetBlogs(c.Request.Context(), email, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get blogs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "totalPages": totalPages})
}

// GetLatestBlogs handles GET /blogs/latest
func (h *BlogHandler) GetLatestBlogs(c *gin.Context) {
	blogs, err := h.blogService.GetLatestBlogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get blogs: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBlog handles GET /blogs/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	blog, err := h.blogService.GetBlog(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// UpdateBlog handles PUT /blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	var blog models.Blog
	if err := c.ShouldBindJSON(&blog); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	blog.ID = id

	if err := h.blogService.UpdateBlog(c.Request.Context(), &blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog handles DELETE /blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format"})
		return
	}

	if err := h.blogService.DeleteBlog(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Blog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete blog: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully."})
}
