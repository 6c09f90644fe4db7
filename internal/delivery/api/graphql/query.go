package graphql

import (
	"context"

	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/entity"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

func (r *Resolver) Me(ctx context.Context) (*userResolver, error) {
	actor := deliverycontext.GetIdentity(ctx)

	user, err := r.accounts.Me(ctx, actor)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &userResolver{user: user}, nil
}

func (r *Resolver) Apartments(ctx context.Context, args struct {
	Filter *apartmentFilterInput
	Sort   *apartmentSortInput
}) ([]*apartmentResolver, error) {
	filter, err := args.Filter.toEntity()
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	apartments, err := r.apartments.List(ctx, filter, args.Sort.toEntity())
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return apartmentResolvers(apartments), nil
}

func (r *Resolver) MyApartments(ctx context.Context, args struct{ Sort *apartmentSortInput }) ([]*apartmentResolver, error) {
	actor := deliverycontext.GetIdentity(ctx)

	apartments, err := r.apartments.ListMine(ctx, actor, args.Sort.toEntity())
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return apartmentResolvers(apartments), nil
}

func (r *Resolver) Apartment(ctx context.Context, args struct{ ID graphqlgo.ID }) (*apartmentResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	apartment, err := r.apartments.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &apartmentResolver{apartment: apartment}, nil
}

func (r *Resolver) Posts(ctx context.Context, args struct {
	TechID  *graphqlgo.ID
	OwnerID *graphqlgo.ID
}) ([]*postResolver, error) {
	techID, err := parseOptionalID(args.TechID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	ownerID, err := parseOptionalID(args.OwnerID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	posts, err := r.posts.List(ctx, entity.PostFilter{TechID: techID, OwnerID: ownerID})
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return r.postResolvers(posts), nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ ID graphqlgo.ID }) (*postResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	post, err := r.posts.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &postResolver{root: r, post: post}, nil
}

func (r *Resolver) Technologies(ctx context.Context) ([]*technologyResolver, error) {
	technologies, err := r.tech.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return r.technologyResolvers(technologies), nil
}

func (r *Resolver) Technology(ctx context.Context, args struct{ ID graphqlgo.ID }) (*technologyResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	technology, err := r.tech.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &technologyResolver{root: r, technology: technology}, nil
}

func (r *Resolver) People(ctx context.Context) ([]*personResolver, error) {
	people, err := r.people.List(ctx)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	out := make([]*personResolver, len(people))
	for i, person := range people {
		out[i] = &personResolver{root: r, person: person}
	}

	return out, nil
}

func (r *Resolver) Person(ctx context.Context, args struct{ ID graphqlgo.ID }) (*personResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	person, err := r.people.Get(ctx, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &personResolver{root: r, person: person}, nil
}
