// Package router registers the routes of the GraphQL API server.
package router

import (
	"net/http"

	"rentql/config"
	"rentql/internal/delivery/api/graphql"
	"rentql/internal/delivery/api/middleware"
	"rentql/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GraphQLHandler *graphql.Handler
	AuthGate       *middleware.AuthGate
	Config         *config.Config
}

type router struct {
	graphqlHandler *graphql.Handler
	authGate       *middleware.AuthGate
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		graphqlHandler: params.GraphQLHandler,
		authGate:       params.AuthGate,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", HealthCheck)

	// The gate only attaches an identity; each operation decides whether it needs one.
	graphqlGroup := e.Group("/graphql", r.authGate.Authenticate)
	{
		graphqlGroup.POST("", r.graphqlHandler.Serve)
		graphqlGroup.GET("", r.graphqlHandler.Serve)
	}

	if r.config.GraphQL != nil && r.config.GraphQL.Playground {
		e.GET("/graphiql", r.graphqlHandler.Playground)
	}
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
