package api

import (
	"time"

	"github.com/i-asim/my-portfolio/internal/postservice"
)

// CreatePostRequest is the request body for creating a post. Content
// may be empty, in which case the post starts from the default
// document template.
type CreatePostRequest struct {
	Name    string `json:"name" example:"hello-world.mdx" validate:"required"`
	Content string `json:"content" example:"---\ntitle: Hello\n---\n# Hello"`
}

// UpdatePostRequest is the request body for updating a post.
type UpdatePostRequest struct {
	Content string `json:"content" example:"---\ntitle: Updated\n---\nContent" validate:"required"`
}

// PostDetail is the full post response type (aliased from the domain layer).
type PostDetail = postservice.PostDetail

// PostListItem is a lightweight item in a list response (aliased from the domain layer).
type PostListItem = postservice.PostListItem

// RenderedPost is the read-only presentation response (aliased from the domain layer).
type RenderedPost = postservice.RenderedPost

// PostListResponse wraps paginated post listings.
type PostListResponse struct {
	Posts []PostListItem `json:"posts" validate:"required"`
	Total int            `json:"total" example:"42" validate:"required"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Name    string `json:"name" example:"hello-world.mdx" validate:"required"`
	Title   string `json:"title" example:"Hello World" validate:"required"`
	Snippet string `json:"snippet" example:"...matched text..." validate:"required"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []SearchResult `json:"results" validate:"required"`
}

// AttachmentUploadResponse is returned after a successful attachment upload.
type AttachmentUploadResponse struct {
	Filename string `json:"filename" example:"image.png" validate:"required"`
	Size     int64  `json:"size" example:"12345" validate:"required"`
	URL      string `json:"url" example:"/attachments/image.png" validate:"required"`
}

// PostListItemDTO mirrors PostListItem for swag.
type PostListItemDTO struct {
	Name        string    `json:"name" example:"hello-world.mdx"`
	Title       string    `json:"title" example:"Hello World"`
	Description string    `json:"description,omitempty" example:"An introduction"`
	Date        time.Time `json:"date,omitempty"`
	Checksum    string    `json:"checksum" example:"abc123..."`
	Tags        []string  `json:"tags" example:"go,web"`
	UpdatedAt   time.Time `json:"updated_at"`
}
