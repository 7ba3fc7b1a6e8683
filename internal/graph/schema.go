package graph

import (
	"github.com/graphql-go/graphql"
	"tweet-app-go/internal/graph/permission"
)

// NewSchema builds the executable schema. Every resolver is wrapped with the
// rule the table declares for its (type, field) pair at build time.
func NewSchema(r *Resolver, rules permission.Table) (graphql.Schema, error) {
	wrap := func(typeName, fieldName string, resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
		return permission.Wrap(rules.Get(typeName, fieldName), resolve)
	}

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":  &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	profileType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Profile",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"bio":       &graphql.Field{Type: graphql.String},
			"location":  &graphql.Field{Type: graphql.String},
			"website":   &graphql.Field{Type: graphql.String},
			"avatar":    &graphql.Field{Type: graphql.String},
		},
	})

	tweetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Tweet",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
			"content":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"token": &graphql.Field{Type: graphql.String},
			"user":  &graphql.Field{Type: userType},
		},
	})

	// Relationship fields reference each other's types, so they are bound
	// after all objects exist. Each traversal re-queries the store by the
	// parent's identifier.
	userType.AddFieldConfig("profile", &graphql.Field{
		Type:    profileType,
		Resolve: wrap("User", "profile", r.resolveUserProfile),
	})
	userType.AddFieldConfig("tweets", &graphql.Field{
		Type:    graphql.NewNonNull(graphql.NewList(tweetType)),
		Resolve: wrap("User", "tweets", r.resolveUserTweets),
	})
	profileType.AddFieldConfig("user", &graphql.Field{
		Type:    userType,
		Resolve: wrap("Profile", "user", r.resolveProfileUser),
	})
	tweetType.AddFieldConfig("author", &graphql.Field{
		Type:    userType,
		Resolve: wrap("Tweet", "author", r.resolveTweetAuthor),
	})

	sortOrderEnum := graphql.NewEnum(graphql.EnumConfig{
		Name: "SortOrder",
		Values: graphql.EnumValueConfigMap{
			"asc":  &graphql.EnumValueConfig{Value: "asc"},
			"desc": &graphql.EnumValueConfig{Value: "desc"},
		},
	})

	userUniqueInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserUniqueInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":    &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	profileCreateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProfileCreateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"bio":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"location": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"website":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"avatar":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	profileUpdateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ProfileUpdateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":       &graphql.InputObjectFieldConfig{Type: graphql.Int},
			"bio":      &graphql.InputObjectFieldConfig{Type: graphql.String},
			"location": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"website":  &graphql.InputObjectFieldConfig{Type: graphql.String},
			"avatar":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	tweetCreateInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "TweetCreateInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"allUsers": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: wrap("Query", "allUsers", r.resolveAllUsers),
			},
			"me": &graphql.Field{
				Type:    userType,
				Resolve: wrap("Query", "me", r.resolveMe),
			},
			"tweets": &graphql.Field{
				Type:    graphql.NewList(tweetType),
				Resolve: wrap("Query", "tweets", r.resolveTweets),
			},
			"tweet": &graphql.Field{
				Type: tweetType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: wrap("Query", "tweet", r.resolveTweet),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.String},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: wrap("Mutation", "signup", r.resolveSignup),
			},
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: wrap("Mutation", "login", r.resolveLogin),
			},
			"createProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(profileCreateInput)},
				},
				Resolve: wrap("Mutation", "createProfile", r.resolveCreateProfile),
			},
			"updateProfile": &graphql.Field{
				Type: profileType,
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(profileUpdateInput)},
				},
				Resolve: wrap("Mutation", "updateProfile", r.resolveUpdateProfile),
			},
			"createTweet": &graphql.Field{
				Type: tweetType,
				Args: graphql.FieldConfigArgument{
					"data": &graphql.ArgumentConfig{Type: graphql.NewNonNull(tweetCreateInput)},
				},
				Resolve: wrap("Mutation", "createTweet", r.resolveCreateTweet),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
		// Declared in the schema but referenced by no active field.
		Types: []graphql.Type{sortOrderEnum, userUniqueInput},
	})
}
