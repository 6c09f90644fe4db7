package graphql

import (
	"context"
	"time"

	"rentql/internal/domain/entity"

	"github.com/google/uuid"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

func toID(id uuid.UUID) graphqlgo.ID {
	return graphqlgo.ID(id.String())
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

type userResolver struct {
	user *entity.User
}

func (u *userResolver) ID() graphqlgo.ID  { return toID(u.user.ID) }
func (u *userResolver) Email() string     { return u.user.Email }
func (u *userResolver) Name() string      { return u.user.Name }
func (u *userResolver) Surname() string   { return u.user.Surname }
func (u *userResolver) Phone() string     { return u.user.Phone }
func (u *userResolver) Roles() []string   { return u.user.Roles.ToStrings() }
func (u *userResolver) Verified() bool    { return u.user.Verified }
func (u *userResolver) CreatedAt() string { return formatTime(u.user.CreatedAt) }

type authPayloadResolver struct {
	token     string
	expiresIn int32
	user      *entity.User
}

func (p *authPayloadResolver) Token() string       { return p.token }
func (p *authPayloadResolver) ExpiresIn() int32    { return p.expiresIn }
func (p *authPayloadResolver) User() *userResolver { return &userResolver{user: p.user} }

type deleteAccountPayloadResolver struct {
	apartments int32
	posts      int32
}

func (p *deleteAccountPayloadResolver) Apartments() int32 { return p.apartments }
func (p *deleteAccountPayloadResolver) Posts() int32      { return p.posts }

type geolocationResolver struct {
	geo entity.Geolocation
}

func (g *geolocationResolver) Latitude() float64  { return g.geo.Latitude }
func (g *geolocationResolver) Longitude() float64 { return g.geo.Longitude }

type apartmentResolver struct {
	apartment *entity.Apartment
}

func (a *apartmentResolver) ID() graphqlgo.ID      { return toID(a.apartment.ID) }
func (a *apartmentResolver) OwnerID() graphqlgo.ID { return toID(a.apartment.OwnerID) }
func (a *apartmentResolver) Title() string         { return a.apartment.Title }
func (a *apartmentResolver) Details() string       { return a.apartment.Details }
func (a *apartmentResolver) Date() string          { return a.apartment.Date }
func (a *apartmentResolver) Address() string       { return a.apartment.Address }
func (a *apartmentResolver) City() string          { return a.apartment.City }
func (a *apartmentResolver) Price() float64        { return a.apartment.Price }
func (a *apartmentResolver) Type() string          { return a.apartment.Type }
func (a *apartmentResolver) MSquare() float64      { return a.apartment.MSquare }
func (a *apartmentResolver) RoomCount() int32      { return int32(a.apartment.RoomCount) }
func (a *apartmentResolver) CreatedAt() string     { return formatTime(a.apartment.CreatedAt) }
func (a *apartmentResolver) UpdatedAt() string     { return formatTime(a.apartment.UpdatedAt) }

func (a *apartmentResolver) Geolocation() *geolocationResolver {
	return &geolocationResolver{geo: a.apartment.Geolocation}
}

func (a *apartmentResolver) Photos() []string {
	if a.apartment.Photos == nil {
		return []string{}
	}

	return a.apartment.Photos
}

func apartmentResolvers(apartments []*entity.Apartment) []*apartmentResolver {
	out := make([]*apartmentResolver, len(apartments))
	for i, apartment := range apartments {
		out[i] = &apartmentResolver{apartment: apartment}
	}

	return out
}

type postResolver struct {
	root *Resolver
	post *entity.Post
}

func (p *postResolver) ID() graphqlgo.ID      { return toID(p.post.ID) }
func (p *postResolver) OwnerID() graphqlgo.ID { return toID(p.post.OwnerID) }
func (p *postResolver) Title() string         { return p.post.Title }
func (p *postResolver) Link() string          { return p.post.Link }
func (p *postResolver) Date() string          { return p.post.Date }
func (p *postResolver) TechID() graphqlgo.ID  { return toID(p.post.TechID) }

// Technology is null when the referenced technology was removed from the catalog.
func (p *postResolver) Technology(ctx context.Context) (*technologyResolver, error) {
	technologies, err := p.root.tech.ListByIDs(ctx, []uuid.UUID{p.post.TechID})
	if err != nil {
		return nil, p.root.fail(ctx, err)
	}
	if len(technologies) == 0 {
		return nil, nil
	}

	return &technologyResolver{root: p.root, technology: technologies[0]}, nil
}

func (r *Resolver) postResolvers(posts []*entity.Post) []*postResolver {
	out := make([]*postResolver, len(posts))
	for i, post := range posts {
		out[i] = &postResolver{root: r, post: post}
	}

	return out
}

type technologyResolver struct {
	root       *Resolver
	technology *entity.Technology
}

func (t *technologyResolver) ID() graphqlgo.ID { return toID(t.technology.ID) }
func (t *technologyResolver) Name() string     { return t.technology.Name }

func (t *technologyResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	posts, err := t.root.posts.List(ctx, entity.PostFilter{TechID: &t.technology.ID})
	if err != nil {
		return nil, t.root.fail(ctx, err)
	}

	return t.root.postResolvers(posts), nil
}

func (r *Resolver) technologyResolvers(technologies []*entity.Technology) []*technologyResolver {
	out := make([]*technologyResolver, len(technologies))
	for i, technology := range technologies {
		out[i] = &technologyResolver{root: r, technology: technology}
	}

	return out
}

type personResolver struct {
	root   *Resolver
	person *entity.Person
}

func (p *personResolver) ID() graphqlgo.ID { return toID(p.person.ID) }
func (p *personResolver) Name() string     { return p.person.Name }

func (p *personResolver) Technologies(ctx context.Context) ([]*technologyResolver, error) {
	technologies, err := p.root.tech.ListByIDs(ctx, p.person.TechIDs)
	if err != nil {
		return nil, p.root.fail(ctx, err)
	}

	return p.root.technologyResolvers(technologies), nil
}
