package gql

const schemaSDL = `
schema {
	query: Query
	mutation: Mutation
}

scalar Time

type AuthUser {
	id: ID!
	email: String!
	name: String!
}

type AuthUserPage {
	items: [AuthUser!]!
	count: Int!
}

type Member {
	id: ID!
	teamId: ID!
	userId: ID!
	name: String!
	identityNum: String!
	role: String!
	assignedAt: Time!
	expiredAt: Time
	modificationDate: Time
}

type MemberPage {
	items: [Member!]!
	count: Int!
}

type MemberEmail {
	name: String!
	email: String!
}

type MemberInfo {
	name: String!
	email: String!
	identityNum: String!
	role: String!
}

type MemberName {
	name: String!
}

input NewAuthUser {
	email: String!
	name: String!
	password: String!
}

input NewMember {
	teamId: ID!
	userId: ID!
	name: String!
	identityNum: String!
	role: String!
	expiredAt: Time
}

type Query {
	authUsers(pageSize: Int = 0, offset: Int = 0): AuthUserPage!
	authUser(id: ID!): AuthUser!
	members(pageSize: Int = 0, offset: Int = 0): MemberPage!
	member(id: ID!): Member!
	memberEmails(teamId: ID!): [MemberEmail!]!
	memberInfos(teamId: ID!): [MemberInfo!]!
	memberNames(teamId: ID!): [MemberName!]!
}

type Mutation {
	createAuthUser(input: NewAuthUser!): AuthUser!
	createAuthUsers(input: [NewAuthUser!]!): [AuthUser!]!
	deleteAuthUser(id: ID!): Boolean!
	deleteAllAuthUsers: Boolean!
	createMember(input: NewMember!): Member!
	createMembers(input: [NewMember!]!): [Member!]!
	deleteMember(id: ID!): Boolean!
	deleteAllMembers: Int!
}
`
