// Package graphql exposes the use cases through a GraphQL schema served by graph-gophers/graphql-go.
//
// Every root resolver reads the caller identity from the request context exactly once and passes it
// explicitly to the use case. Mutations acting for a caller reject anonymous requests before parsing
// ids or validating input, so an anonymous caller always sees UNAUTHENTICATED.
package graphql

import (
	"context"
	_ "embed"
	"log/slog"

	"rentql/config"
	"rentql/internal/delivery/api/validator"
	"rentql/internal/domain/service"
	"rentql/internal/errors"
	"rentql/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"go.uber.org/fx"
)

//go:embed schema.graphql
var schemaSDL string

// Resolver is the root resolver for queries and mutations.
type Resolver struct {
	accounts   usecase.AccountUsecase
	apartments usecase.ApartmentUsecase
	posts      usecase.PostUsecase
	tech       usecase.TechnologyUsecase
	people     usecase.PersonUsecase
	tokens     service.TokenService
	validator  *validator.CustomValidator
	logger     *slog.Logger
}

// ResolverParams holds dependencies for the root resolver, injected by Fx.
type ResolverParams struct {
	fx.In

	Accounts   usecase.AccountUsecase
	Apartments usecase.ApartmentUsecase
	Posts      usecase.PostUsecase
	Tech       usecase.TechnologyUsecase
	People     usecase.PersonUsecase
	Tokens     service.TokenService
	Logger     *slog.Logger
}

// NewResolver creates the root resolver.
func NewResolver(params ResolverParams) *Resolver {
	return &Resolver{
		accounts:   params.Accounts,
		apartments: params.Apartments,
		posts:      params.Posts,
		tech:       params.Tech,
		people:     params.People,
		tokens:     params.Tokens,
		validator:  validator.New(),
		logger:     params.Logger,
	}
}

// NewSchema parses the embedded schema against the resolver.
func NewSchema(resolver *Resolver, cfg *config.Config) (*graphqlgo.Schema, error) {
	opts := []graphqlgo.SchemaOpt{
		graphqlgo.Logger(&panicLogger{logger: resolver.logger}),
	}
	if cfg.GraphQL != nil && cfg.GraphQL.MaxDepth > 0 {
		opts = append(opts, graphqlgo.MaxDepth(cfg.GraphQL.MaxDepth))
	}

	schema, err := graphqlgo.ParseSchema(schemaSDL, resolver, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "parse graphql schema")
	}

	return schema, nil
}

// panicLogger reports resolver panics through slog.
type panicLogger struct {
	logger *slog.Logger
}

func (l *panicLogger) LogPanic(ctx context.Context, value any) {
	l.logger.ErrorContext(ctx, "GraphQL resolver panic", slog.Any("panic", value))
}
