package graphql

import (
	_ "embed"
	"encoding/json"
	"net/http"

	domainerrors "rentql/internal/domain/errors"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/labstack/echo/v4"
)

//go:embed graphiql.html
var graphiqlPage []byte

// request is the standard GraphQL-over-HTTP payload.
type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler serves GraphQL over HTTP.
type Handler struct {
	schema *graphqlgo.Schema
}

// NewHandler is the constructor for Handler.
func NewHandler(schema *graphqlgo.Schema) *Handler {
	return &Handler{schema: schema}
}

// Serve executes a query sent as a JSON body (POST) or as URL parameters (GET).
// Operation errors are part of the 200 response; only unreadable requests fail at the HTTP level.
func (h *Handler) Serve(c echo.Context) error {
	var req request
	switch c.Request().Method {
	case http.MethodGet:
		req.Query = c.QueryParam("query")
		req.OperationName = c.QueryParam("operationName")
		if raw := c.QueryParam("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return domainerrors.ErrValidationFailed.WithDetails("variables must be a JSON object")
			}
		}
	default:
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("request body must be a GraphQL JSON payload")
		}
	}

	if req.Query == "" {
		return domainerrors.ErrValidationFailed.WithDetails("query is required")
	}

	resp := h.schema.Exec(c.Request().Context(), req.Query, req.OperationName, req.Variables)

	return c.JSON(http.StatusOK, resp)
}

// Playground serves the GraphiQL page.
func (h *Handler) Playground(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, graphiqlPage)
}
