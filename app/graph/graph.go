// Package graph exposes a read-only GraphQL view of the catalogue for
// storefront clients that want to shape their own queries.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/goldenaura/app/models"
	"github.com/shashiranjanraj/goldenaura/app/repositories"
	"github.com/shashiranjanraj/goldenaura/app/services"
	gqlschema "github.com/shashiranjanraj/goldenaura/pkg/graphql"
	"github.com/shashiranjanraj/goldenaura/pkg/logger"
	"github.com/shashiranjanraj/goldenaura/pkg/response"
)

// resolve adapts a typed getter into a graphql resolver.
func resolve(get func(p models.Product) interface{}) graphql.FieldResolveFn {
	return func(rp graphql.ResolveParams) (interface{}, error) {
		if p, ok := rp.Source.(models.Product); ok {
			return get(p), nil
		}
		return nil, nil
	}
}

var imageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductImage",
	Fields: graphql.Fields{
		"url": &graphql.Field{Type: graphql.String},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type:    graphql.Int,
			Resolve: resolve(func(p models.Product) interface{} { return int(p.ID) }),
		},
		"title": &graphql.Field{
			Type:    graphql.String,
			Resolve: resolve(func(p models.Product) interface{} { return p.Title }),
		},
		"type": &graphql.Field{
			Type:    graphql.String,
			Resolve: resolve(func(p models.Product) interface{} { return p.Type }),
		},
		"category": &graphql.Field{
			Type:    graphql.String,
			Resolve: resolve(func(p models.Product) interface{} { return p.Category }),
		},
		"description": &graphql.Field{
			Type:    graphql.String,
			Resolve: resolve(func(p models.Product) interface{} { return p.Description }),
		},
		"price": &graphql.Field{
			Type:    graphql.Float,
			Resolve: resolve(func(p models.Product) interface{} { return p.Price }),
		},
		"stock": &graphql.Field{
			Type:    graphql.Int,
			Resolve: resolve(func(p models.Product) interface{} { return p.Stock }),
		},
		"brandName": &graphql.Field{
			Type:    graphql.String,
			Resolve: resolve(func(p models.Product) interface{} { return p.BrandName }),
		},
		"rating": &graphql.Field{
			Type:    graphql.Float,
			Resolve: resolve(func(p models.Product) interface{} { return p.Rating }),
		},
		"images": &graphql.Field{
			Type: graphql.NewList(imageType),
			Resolve: resolve(func(p models.Product) interface{} {
				urls := make([]map[string]interface{}, 0, len(p.Images))
				for _, img := range p.Images {
					urls = append(urls, map[string]interface{}{"url": img.URL})
				}
				return urls
			}),
		},
	},
})

// newRootQuery builds the catalogue query surface.
func newRootQuery(products *services.ProductService) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "RootQuery",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: func(rp graphql.ResolveParams) (interface{}, error) {
					id, _ := rp.Args["id"].(int)
					if id < 1 {
						return nil, nil
					}
					p, err := products.Get(uint(id))
					if err != nil {
						return nil, nil // absent, not an error, for a lookup
					}
					return p, nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
					"type":     &graphql.ArgumentConfig{Type: graphql.String},
					"search":   &graphql.ArgumentConfig{Type: graphql.String},
					"limit":    &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(rp graphql.ResolveParams) (interface{}, error) {
					category, _ := rp.Args["category"].(string)
					ptype, _ := rp.Args["type"].(string)
					search, _ := rp.Args["search"].(string)
					limit, _ := rp.Args["limit"].(int)

					list, _, err := products.List(repositories.ProductFilter{
						Category: category,
						Type:     ptype,
						Search:   search,
						Page:     1,
						Limit:    limit,
					})
					return list, err
				},
			},
			"featured": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 8},
				},
				Resolve: func(rp graphql.ResolveParams) (interface{}, error) {
					limit, _ := rp.Args["limit"].(int)
					return products.Featured(limit)
				},
			},
		},
	})
}

type gqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Handler returns the POST /api/graphql endpoint.
func Handler() http.HandlerFunc {
	schema, err := gqlschema.NewSchema(newRootQuery(services.NewProductService()))
	if err != nil {
		logger.Error("graph: schema build failed", "error", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req gqlRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid GraphQL request")
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result) //nolint:errcheck
	}
}
