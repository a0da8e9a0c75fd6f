package gql

import (
	"math"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/AbdelazizSaid250/membership-service/internal/domain/entity"
)

// clampInt32 приводит счетчик к Int схемы, значения за пределами int32 насыщаются
func clampInt32(n int64) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}

type authUserResolver struct{ u *entity.AuthUser }

func (r *authUserResolver) ID() graphql.ID { return graphql.ID(r.u.ID.String()) }
func (r *authUserResolver) Email() string  { return r.u.Email }
func (r *authUserResolver) Name() string   { return r.u.Name }

type authUserPageResolver struct {
	items []*authUserResolver
	count int64
}

func (r *authUserPageResolver) Items() []*authUserResolver { return r.items }
func (r *authUserPageResolver) Count() int32               { return clampInt32(r.count) }

type memberResolver struct{ m *entity.Member }

func (r *memberResolver) ID() graphql.ID      { return graphql.ID(r.m.ID.String()) }
func (r *memberResolver) TeamID() graphql.ID  { return graphql.ID(r.m.TeamID.String()) }
func (r *memberResolver) UserID() graphql.ID  { return graphql.ID(r.m.UserID.String()) }
func (r *memberResolver) Name() string        { return r.m.Name }
func (r *memberResolver) IdentityNum() string { return r.m.IdentityNum }
func (r *memberResolver) Role() string        { return r.m.Role }

func (r *memberResolver) AssignedAt() graphql.Time {
	return graphql.Time{Time: r.m.AssignedAt}
}

func (r *memberResolver) ExpiredAt() *graphql.Time {
	if r.m.ExpiredAt == nil {
		return nil
	}
	return &graphql.Time{Time: *r.m.ExpiredAt}
}

func (r *memberResolver) ModificationDate() *graphql.Time {
	if r.m.ModificationDate == nil {
		return nil
	}
	return &graphql.Time{Time: *r.m.ModificationDate}
}

type memberPageResolver struct {
	items []*memberResolver
	count int64
}

func (r *memberPageResolver) Items() []*memberResolver { return r.items }
func (r *memberPageResolver) Count() int32             { return clampInt32(r.count) }

type memberEmailResolver struct{ m *entity.MemberEmail }

func (r *memberEmailResolver) Name() string  { return r.m.Name }
func (r *memberEmailResolver) Email() string { return r.m.Email }

type memberInfoResolver struct{ m *entity.MemberInfo }

func (r *memberInfoResolver) Name() string        { return r.m.Name }
func (r *memberInfoResolver) Email() string       { return r.m.Email }
func (r *memberInfoResolver) IdentityNum() string { return r.m.IdentityNum }
func (r *memberInfoResolver) Role() string        { return r.m.Role }

type memberNameResolver struct{ m *entity.MemberName }

func (r *memberNameResolver) Name() string { return r.m.Name }

// wrapAll оборачивает сущности в resolver'ы
func wrapAll[E any, R any](items []*E, wrap func(*E) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, wrap(item))
	}
	return out
}

func newAuthUserResolver(u *entity.AuthUser) *authUserResolver          { return &authUserResolver{u: u} }
func newMemberResolver(m *entity.Member) *memberResolver                { return &memberResolver{m: m} }
func newMemberEmailResolver(m *entity.MemberEmail) *memberEmailResolver { return &memberEmailResolver{m: m} }
func newMemberInfoResolver(m *entity.MemberInfo) *memberInfoResolver    { return &memberInfoResolver{m: m} }
func newMemberNameResolver(m *entity.MemberName) *memberNameResolver    { return &memberNameResolver{m: m} }
