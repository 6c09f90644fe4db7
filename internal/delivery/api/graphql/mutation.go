package graphql

import (
	"context"

	deliverycontext "rentql/internal/delivery/context"
	"rentql/internal/domain/entity"
	"rentql/internal/domain/policy"
	"rentql/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// requireIdentity reads the caller identity and rejects anonymous callers before any input is decoded.
func (r *Resolver) requireIdentity(ctx context.Context) (*entity.Identity, error) {
	actor := deliverycontext.GetIdentity(ctx)
	if err := policy.RequireIdentity(actor); err != nil {
		return nil, r.fail(ctx, err)
	}

	return actor, nil
}

func (r *Resolver) Register(ctx context.Context, args struct{ Input registerInput }) (*userResolver, error) {
	input := args.Input.toUsecase()
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	user, err := r.accounts.Register(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &userResolver{user: user}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct {
	Email    string
	Password string
}) (*authPayloadResolver, error) {
	input := &usecase.LoginInput{Email: args.Email, Password: args.Password}
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	out, err := r.accounts.Login(ctx, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &authPayloadResolver{
		token:     out.Token,
		expiresIn: int32(r.tokens.TTL().Seconds()),
		user:      out.User,
	}, nil
}

func (r *Resolver) UpdateProfile(ctx context.Context, args struct{ Input profileInput }) (*userResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	input := args.Input.toUsecase()
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	user, err := r.accounts.UpdateProfile(ctx, actor, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &userResolver{user: user}, nil
}

func (r *Resolver) DeleteAccount(ctx context.Context) (*deleteAccountPayloadResolver, error) {
	actor := deliverycontext.GetIdentity(ctx)

	out, err := r.accounts.DeleteAccount(ctx, actor)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &deleteAccountPayloadResolver{
		apartments: int32(out.Apartments),
		posts:      int32(out.Posts),
	}, nil
}

func (r *Resolver) CreateApartment(ctx context.Context, args struct{ Input apartmentInput }) (*apartmentResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	input := args.Input.toUsecase()
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	apartment, err := r.apartments.Create(ctx, actor, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &apartmentResolver{apartment: apartment}, nil
}

func (r *Resolver) UpdateApartment(ctx context.Context, args struct {
	ID    graphqlgo.ID
	Input apartmentInput
}) (*apartmentResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	input := args.Input.toUsecase()
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	apartment, err := r.apartments.Update(ctx, actor, id, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &apartmentResolver{apartment: apartment}, nil
}

func (r *Resolver) DeleteApartment(ctx context.Context, args struct{ ID graphqlgo.ID }) (*apartmentResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	apartment, err := r.apartments.Delete(ctx, actor, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &apartmentResolver{apartment: apartment}, nil
}

func (r *Resolver) AddPost(ctx context.Context, args struct{ Input postInput }) (*postResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	input, err := args.Input.toUsecase()
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	post, err := r.posts.Create(ctx, actor, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &postResolver{root: r, post: post}, nil
}

func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID    graphqlgo.ID
	Input postInput
}) (*postResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	input, err := args.Input.toUsecase()
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	post, err := r.posts.Update(ctx, actor, id, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &postResolver{root: r, post: post}, nil
}

func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphqlgo.ID }) (*postResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	post, err := r.posts.Delete(ctx, actor, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &postResolver{root: r, post: post}, nil
}

func (r *Resolver) AddTechnology(ctx context.Context, args struct{ Name string }) (*technologyResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	input := &usecase.TechnologyInput{Name: args.Name}
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	technology, err := r.tech.Add(ctx, actor, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &technologyResolver{root: r, technology: technology}, nil
}

func (r *Resolver) UpdateTechnology(ctx context.Context, args struct {
	ID   graphqlgo.ID
	Name string
}) (*technologyResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}
	input := &usecase.TechnologyInput{Name: args.Name}
	if err := r.validator.Validate(input); err != nil {
		return nil, r.fail(ctx, err)
	}

	technology, err := r.tech.Update(ctx, actor, id, input)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &technologyResolver{root: r, technology: technology}, nil
}

func (r *Resolver) DeleteTechnology(ctx context.Context, args struct{ ID graphqlgo.ID }) (*technologyResolver, error) {
	actor, err := r.requireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	id, err := parseID(args.ID)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	technology, err := r.tech.Delete(ctx, actor, id)
	if err != nil {
		return nil, r.fail(ctx, err)
	}

	return &technologyResolver{root: r, technology: technology}, nil
}
