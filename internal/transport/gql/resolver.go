package gql

import (
	"context"

	"github.com/google/uuid"
	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
	domainErrors "github.com/AbdelazizSaid250/membership-service/internal/domain/errors"
	"github.com/AbdelazizSaid250/membership-service/internal/usecase"
)

// AuthUserService операции над учетными записями, доступные через GraphQL
type AuthUserService interface {
	ListAuthUsers(ctx context.Context, p entity.Pagination) (*entity.Page[entity.AuthUser], error)
	CreateAuthUser(ctx context.Context, newUser *entity.NewAuthUser) (*entity.AuthUser, error)
	CreateAuthUsers(ctx context.Context, newUsers []*entity.NewAuthUser) ([]*entity.AuthUser, error)
	GetAuthUser(ctx context.Context, id uuid.UUID) (*entity.AuthUser, error)
	DeleteAuthUser(ctx context.Context, id uuid.UUID) error
	DeleteAllAuthUsers(ctx context.Context) (*usecase.PurgeResult, error)
}

// MemberService операции над участниками, доступные через GraphQL
type MemberService interface {
	ListMembers(ctx context.Context, p entity.Pagination) (*entity.Page[entity.Member], error)
	CreateMember(ctx context.Context, newMember *entity.NewMember) (*entity.Member, error)
	CreateMembers(ctx context.Context, newMembers []*entity.NewMember) ([]*entity.Member, error)
	GetMember(ctx context.Context, id uuid.UUID) (*entity.Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	DeleteAllMembers(ctx context.Context) (int, error)
	MemberEmails(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberEmail, error)
	MemberInfos(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberInfo, error)
	MemberNames(ctx context.Context, teamID uuid.UUID) ([]*entity.MemberName, error)
}

// Resolver корневой resolver схемы
type Resolver struct {
	authUsers AuthUserService
	members   MemberService
}

// NewResolver создает корневой resolver
func NewResolver(authUsers AuthUserService, members MemberService) *Resolver {
	return &Resolver{authUsers: authUsers, members: members}
}

type pageArgs struct {
	PageSize int32
	Offset   int32
}

func (a pageArgs) pagination() entity.Pagination {
	return entity.Pagination{PageSize: int(a.PageSize), Offset: int(a.Offset)}
}

type idArgs struct {
	ID graphql.ID
}

type teamArgs struct {
	TeamID graphql.ID
}

type newAuthUserInput struct {
	Email    string
	Name     string
	Password string
}

type newMemberInput struct {
	TeamID      graphql.ID
	UserID      graphql.ID
	Name        string
	IdentityNum string
	Role        string
	ExpiredAt   *graphql.Time
}

func parseID(id graphql.ID) (uuid.UUID, error) {
	parsed, err := uuid.Parse(string(id))
	if err != nil {
		return uuid.Nil, toResolverError(domainErrors.NewBadRequest("invalid id", domainErrors.CodeInvalidIDFormat))
	}
	return parsed, nil
}

// Запросы

func (r *Resolver) AuthUsers(ctx context.Context, args pageArgs) (*authUserPageResolver, error) {
	page, err := r.authUsers.ListAuthUsers(ctx, args.pagination())
	if err != nil {
		return nil, toResolverError(err)
	}
	return &authUserPageResolver{items: wrapAll(page.Items, newAuthUserResolver), count: page.Count}, nil
}

func (r *Resolver) AuthUser(ctx context.Context, args idArgs) (*authUserResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	user, err := r.authUsers.GetAuthUser(ctx, id)
	if err != nil {
		return nil, toResolverError(err)
	}
	return newAuthUserResolver(user), nil
}

func (r *Resolver) Members(ctx context.Context, args pageArgs) (*memberPageResolver, error) {
	page, err := r.members.ListMembers(ctx, args.pagination())
	if err != nil {
		return nil, toResolverError(err)
	}
	return &memberPageResolver{items: wrapAll(page.Items, newMemberResolver), count: page.Count}, nil
}

func (r *Resolver) Member(ctx context.Context, args idArgs) (*memberResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}

	member, err := r.members.GetMember(ctx, id)
	if err != nil {
		return nil, toResolverError(err)
	}
	return newMemberResolver(member), nil
}

func (r *Resolver) MemberEmails(ctx context.Context, args teamArgs) ([]*memberEmailResolver, error) {
	teamID, err := parseID(args.TeamID)
	if err != nil {
		return nil, err
	}

	emails, err := r.members.MemberEmails(ctx, teamID)
	if err != nil {
		return nil, toResolverError(err)
	}
	return wrapAll(emails, newMemberEmailResolver), nil
}

func (r *Resolver) MemberInfos(ctx context.Context, args teamArgs) ([]*memberInfoResolver, error) {
	teamID, err := parseID(args.TeamID)
	if err != nil {
		return nil, err
	}

	infos, err := r.members.MemberInfos(ctx, teamID)
	if err != nil {
		return nil, toResolverError(err)
	}
	return wrapAll(infos, newMemberInfoResolver), nil
}

func (r *Resolver) MemberNames(ctx context.Context, args teamArgs) ([]*memberNameResolver, error) {
	teamID, err := parseID(args.TeamID)
	if err != nil {
		return nil, err
	}

	names, err := r.members.MemberNames(ctx, teamID)
	if err != nil {
		return nil, toResolverError(err)
	}
	return wrapAll(names, newMemberNameResolver), nil
}

// Мутации

func (r *Resolver) CreateAuthUser(ctx context.Context, args struct{ Input newAuthUserInput }) (*authUserResolver, error) {
	user, err := r.authUsers.CreateAuthUser(ctx, toNewAuthUser(&args.Input))
	if err != nil {
		return nil, toResolverError(err)
	}
	return newAuthUserResolver(user), nil
}

func (r *Resolver) CreateAuthUsers(ctx context.Context, args struct{ Input []newAuthUserInput }) ([]*authUserResolver, error) {
	newUsers := make([]*entity.NewAuthUser, 0, len(args.Input))
	for i := range args.Input {
		newUsers = append(newUsers, toNewAuthUser(&args.Input[i]))
	}

	users, err := r.authUsers.CreateAuthUsers(ctx, newUsers)
	if err != nil {
		return nil, toResolverError(err)
	}
	return wrapAll(users, newAuthUserResolver), nil
}

func (r *Resolver) DeleteAuthUser(ctx context.Context, args idArgs) (bool, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	if err := r.authUsers.DeleteAuthUser(ctx, id); err != nil {
		return false, toResolverError(err)
	}
	return true, nil
}

func (r *Resolver) DeleteAllAuthUsers(ctx context.Context) (bool, error) {
	if !isAdmin(ctx) {
		return false, unauthorizedError()
	}

	if _, err := r.authUsers.DeleteAllAuthUsers(ctx); err != nil {
		return false, toResolverError(err)
	}
	return true, nil
}

func (r *Resolver) CreateMember(ctx context.Context, args struct{ Input newMemberInput }) (*memberResolver, error) {
	newMember, err := toNewMember(&args.Input)
	if err != nil {
		return nil, err
	}

	member, err := r.members.CreateMember(ctx, newMember)
	if err != nil {
		return nil, toResolverError(err)
	}
	return newMemberResolver(member), nil
}

func (r *Resolver) CreateMembers(ctx context.Context, args struct{ Input []newMemberInput }) ([]*memberResolver, error) {
	newMembers := make([]*entity.NewMember, 0, len(args.Input))
	for i := range args.Input {
		nm, err := toNewMember(&args.Input[i])
		if err != nil {
			return nil, err
		}
		newMembers = append(newMembers, nm)
	}

	members, err := r.members.CreateMembers(ctx, newMembers)
	if err != nil {
		return nil, toResolverError(err)
	}
	return wrapAll(members, newMemberResolver), nil
}

func (r *Resolver) DeleteMember(ctx context.Context, args idArgs) (bool, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return false, err
	}

	if err := r.members.DeleteMember(ctx, id); err != nil {
		return false, toResolverError(err)
	}
	return true, nil
}

func (r *Resolver) DeleteAllMembers(ctx context.Context) (int32, error) {
	if !isAdmin(ctx) {
		return 0, unauthorizedError()
	}

	count, err := r.members.DeleteAllMembers(ctx)
	if err != nil {
		return 0, toResolverError(err)
	}
	return clampInt32(int64(count)), nil
}

func toNewAuthUser(in *newAuthUserInput) *entity.NewAuthUser {
	return &entity.NewAuthUser{Email: in.Email, Name: in.Name, Password: in.Password}
}

func toNewMember(in *newMemberInput) (*entity.NewMember, error) {
	teamID, err := parseID(in.TeamID)
	if err != nil {
		return nil, err
	}
	userID, err := parseID(in.UserID)
	if err != nil {
		return nil, err
	}

	nm := &entity.NewMember{
		TeamID:      teamID,
		UserID:      userID,
		Name:        in.Name,
		IdentityNum: in.IdentityNum,
		Role:        in.Role,
	}
	if in.ExpiredAt != nil {
		t := in.ExpiredAt.Time
		nm.ExpiredAt = &t
	}
	return nm, nil
}
