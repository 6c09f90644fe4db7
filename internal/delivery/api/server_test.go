package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"rentql/config"
	"rentql/internal/delivery/api/graphql"
	"rentql/internal/delivery/api/middleware"
	"rentql/internal/delivery/api/router"
	"rentql/internal/domain/service"
	"rentql/internal/infra/auth"
	"rentql/internal/infra/persistence"
	"rentql/internal/infra/persistence/memory"
	"rentql/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type discardPublisher struct{}

func (discardPublisher) PublishAccountDeleted(context.Context, *service.AccountDeletedEvent) error {
	return nil
}

func (discardPublisher) Close() error { return nil }

type gqlError struct {
	Message    string         `json:"message"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

func (r gqlResponse) code() string {
	if len(r.Errors) == 0 {
		return ""
	}
	code, _ := r.Errors[0].Extensions["code"].(string)

	return code
}

type harness struct {
	t *testing.T
	e *echo.Echo
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "test-secret"
	cfg.GraphQL = &config.GraphQLConfig{MaxDepth: 8, Playground: true}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost, config.PasswordStrengthConfig{MinLength: 8})
	repos := persistence.NewMemory(memory.NewStore())

	resolver := graphql.NewResolver(graphql.ResolverParams{
		Accounts: impl.NewAccountService(impl.AccountServiceParams{
			TxManager:    repos.TxManager,
			UserRepo:     repos.Users,
			Hasher:       hasher,
			TokenService: tokens,
			Publisher:    discardPublisher{},
			Logger:       logger,
		}),
		Apartments: impl.NewApartmentService(impl.ApartmentServiceParams{
			TxManager:     repos.TxManager,
			ApartmentRepo: repos.Apartments,
			Logger:        logger,
		}),
		Posts: impl.NewPostService(impl.PostServiceParams{
			TxManager: repos.TxManager,
			PostRepo:  repos.Posts,
			TechRepo:  repos.Technologies,
			Logger:    logger,
		}),
		Tech:       impl.NewTechnologyService(impl.TechnologyServiceParams{TechRepo: repos.Technologies, Logger: logger}),
		People:     impl.NewPersonService(repos.People),
		Tokens:     tokens,
		Logger:     logger,
	})
	schema, err := graphql.NewSchema(resolver, cfg)
	require.NoError(t, err)

	e := NewEcho(cfg, logger, router.RouterParams{
		GraphQLHandler: graphql.NewHandler(schema),
		AuthGate:       middleware.NewAuthGate(tokens, logger),
		Config:         cfg,
	})

	return &harness{t: t, e: e}
}

func (h *harness) exec(token, query string, variables map[string]any) gqlResponse {
	h.t.Helper()

	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	require.NoError(h.t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)
	require.Equal(h.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp gqlResponse
	require.NoError(h.t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func (h *harness) register(email string) {
	h.t.Helper()

	resp := h.exec("", `mutation($input: RegisterInput!) { register(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"email": email, "password": "Secret#123"}})
	require.Empty(h.t, resp.Errors)
}

func (h *harness) login(email string) string {
	h.t.Helper()

	resp := h.exec("", `mutation($e: String!, $p: String!) { login(email: $e, password: $p) { token expiresIn } }`,
		map[string]any{"e": email, "p": "Secret#123"})
	require.Empty(h.t, resp.Errors)

	var payload struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expiresIn"`
	}
	require.NoError(h.t, json.Unmarshal(resp.Data["login"], &payload))
	assert.Equal(h.t, 7*24*60*60, payload.ExpiresIn)

	return payload.Token
}

const createApartment = `mutation($input: ApartmentInput!) { createApartment(input: $input) { id ownerId title } }`

func apartmentVars(title string) map[string]any {
	return map[string]any{"input": map[string]any{
		"title": title, "latitude": 25.033, "longitude": 121.5654, "price": 1000.0, "city": "Taipei",
	}}
}

func TestGraphQL_OwnershipFlow(t *testing.T) {
	h := newHarness(t)
	h.register("owner@example.com")
	h.register("stranger@example.com")
	ownerToken := h.login("owner@example.com")
	strangerToken := h.login("stranger@example.com")

	resp := h.exec("", createApartment, apartmentVars("Ghost"))
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec(ownerToken, createApartment, apartmentVars("Loft"))
	require.Empty(t, resp.Errors)
	var created struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["createApartment"], &created))

	update := `mutation($id: ID!, $input: ApartmentInput!) { updateApartment(id: $id, input: $input) { title } }`
	vars := apartmentVars("Hijacked")
	vars["id"] = created.ID

	resp = h.exec(strangerToken, update, vars)
	assert.Equal(t, "FORBIDDEN", resp.code())
	assert.EqualValues(t, http.StatusForbidden, resp.Errors[0].Extensions["status"])

	resp = h.exec("", `query($id: ID!) { apartment(id: $id) { title } }`, map[string]any{"id": created.ID})
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"title":"Loft"}`, string(resp.Data["apartment"]))

	vars = apartmentVars("Renovated")
	vars["id"] = created.ID
	resp = h.exec(ownerToken, update, vars)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"title":"Renovated"}`, string(resp.Data["updateApartment"]))

	resp = h.exec(ownerToken, `mutation { deleteAccount { apartments posts } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `{"apartments":1,"posts":0}`, string(resp.Data["deleteAccount"]))

	resp = h.exec("", `{ apartments { id } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `[]`, string(resp.Data["apartments"]))

	// The token outlives the account; operations fail downstream.
	resp = h.exec(ownerToken, `{ me { id } }`, nil)
	assert.Equal(t, "USER_NOT_FOUND", resp.code())
}

func TestGraphQL_DeletedAccountTokenCannotCreate(t *testing.T) {
	h := newHarness(t)
	h.register("owner@example.com")
	h.register("other@example.com")
	ownerToken := h.login("owner@example.com")
	otherToken := h.login("other@example.com")

	resp := h.exec(otherToken, `mutation($n: String!) { addTechnology(name: $n) { id } }`, map[string]any{"n": "Go"})
	require.Empty(t, resp.Errors)
	var tech struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Data["addTechnology"], &tech))

	resp = h.exec(ownerToken, `mutation { deleteAccount { apartments posts } }`, nil)
	require.Empty(t, resp.Errors)

	resp = h.exec(ownerToken, createApartment, apartmentVars("Orphan"))
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec(ownerToken, `mutation($input: PostInput!) { addPost(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"title": "Orphan", "link": "https://go.dev/tour", "techId": tech.ID}})
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec("", `{ apartments { id } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `[]`, string(resp.Data["apartments"]))

	resp = h.exec("", `{ posts { id } }`, nil)
	require.Empty(t, resp.Errors)
	assert.JSONEq(t, `[]`, string(resp.Data["posts"]))
}

func TestGraphQL_IdentityCheckedBeforeInput(t *testing.T) {
	h := newHarness(t)

	resp := h.exec("", createApartment, apartmentVars(""))
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec("", `mutation { deleteApartment(id: "nope") { id } }`, nil)
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec("", `mutation($input: PostInput!) { addPost(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"title": "", "link": "not a url", "techId": "not-a-uuid"}})
	assert.Equal(t, "UNAUTHENTICATED", resp.code())

	resp = h.exec("", `mutation { deleteTechnology(id: "nope") { id } }`, nil)
	assert.Equal(t, "UNAUTHENTICATED", resp.code())
}

func TestGraphQL_LoginFailuresAreIndistinguishable(t *testing.T) {
	h := newHarness(t)
	h.register("ada@example.com")

	login := `mutation($e: String!, $p: String!) { login(email: $e, password: $p) { token } }`
	wrongPassword := h.exec("", login, map[string]any{"e": "ada@example.com", "p": "Wrong#1234"})
	unknownEmail := h.exec("", login, map[string]any{"e": "nobody@example.com", "p": "Wrong#1234"})

	require.Len(t, wrongPassword.Errors, 1)
	require.Len(t, unknownEmail.Errors, 1)
	assert.Equal(t, "INVALID_CREDENTIALS", wrongPassword.code())
	assert.Equal(t, wrongPassword.Errors[0], unknownEmail.Errors[0])
}

func TestGraphQL_GateSoftFails(t *testing.T) {
	h := newHarness(t)

	// Public reads succeed with a forged token.
	resp := h.exec("forged.token.value", `{ technologies { id } }`, nil)
	assert.Empty(t, resp.Errors)

	resp = h.exec("forged.token.value", `{ me { id } }`, nil)
	assert.Equal(t, "UNAUTHENTICATED", resp.code())
}

func TestGraphQL_DuplicateEmail(t *testing.T) {
	h := newHarness(t)
	h.register("ada@example.com")

	resp := h.exec("", `mutation($input: RegisterInput!) { register(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"email": "ADA@example.com", "password": "Secret#123"}})
	assert.Equal(t, "DUPLICATE_EMAIL", resp.code())
}

func TestGraphQL_ValidationDetails(t *testing.T) {
	h := newHarness(t)
	token := func() string {
		h.register("ada@example.com")

		return h.login("ada@example.com")
	}()

	resp := h.exec(token, `mutation($input: PostInput!) { addPost(input: $input) { id } }`,
		map[string]any{"input": map[string]any{"title": "Tour", "link": "not a url", "techId": "not-a-uuid"}})
	assert.Equal(t, "VALIDATION_FAILED", resp.code())
	assert.NotEmpty(t, resp.Errors[0].Extensions["details"])
}

func TestHTTPEndpoints(t *testing.T) {
	h := newHarness(t)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("graphql over GET", func(t *testing.T) {
		rec := httptest.NewRecorder()
		target := "/graphql?query=" + url.QueryEscape(`{ people { id } }`)
		h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"people":[]}}`, rec.Body.String())
	})

	t.Run("missing query", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphql", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("playground", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/graphiql", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "graphiql")
	})
}
