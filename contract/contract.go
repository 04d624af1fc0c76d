// Package contract declares the shape of every public endpoint: method, path
// template, accepted input and the payload type sent for each status code.
// The HTTP layer registers its routes from here and checks outgoing payloads
// against it, so server and clients agree on one description.
package contract

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/rpupo63/editorial-backend/models"
)

// Message is the body of every non-2xx response. Field and Details are set
// for validation and constraint failures.
type Message struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// Validator is implemented by parsed request inputs.
type Validator interface {
	Validate() error
}

type Endpoint struct {
	Name   string
	Method string
	Path   string // path template, named parameters written as :name
	// Input is a prototype of the parsed request input, nil when the endpoint takes none.
	Input Validator
	// Responses maps a status code to a prototype of the payload sent with it.
	Responses map[int]any
}

// Conforms reports whether payload has the type declared for status.
// A pointer to the declared type is accepted.
func (e Endpoint) Conforms(status int, payload any) error {
	declared, ok := e.Responses[status]
	if !ok {
		return fmt.Errorf("%s: status %d is not declared", e.Name, status)
	}

	want := reflect.TypeOf(declared)
	got := reflect.TypeOf(payload)
	if got != nil && got.Kind() == reflect.Pointer && got.Elem() == want {
		got = got.Elem()
	}
	if got != want {
		return fmt.Errorf("%s: status %d expects %v, got %v", e.Name, status, want, got)
	}
	return nil
}

// ValidateInput checks that in is the input type declared by the endpoint and runs its Validate.
func (e Endpoint) ValidateInput(in Validator) error {
	if e.Input == nil {
		return fmt.Errorf("%s: endpoint takes no input", e.Name)
	}
	if want, got := reflect.TypeOf(e.Input), reflect.TypeOf(in); got != want {
		return fmt.Errorf("%s: input expects %v, got %v", e.Name, want, got)
	}
	return in.Validate()
}

// ChiPattern renders the path template in chi's {name} syntax.
func (e Endpoint) ChiPattern() string {
	return rewriteParams(e.Path, func(name string) (string, bool) {
		return "{" + name + "}", true
	})
}

// PathWith builds a concrete path for this endpoint.
func (e Endpoint) PathWith(params map[string]string) string {
	return BuildPath(e.Path, params)
}

var API = struct {
	Articles struct {
		List Endpoint
		Get  Endpoint
	}
	Categories struct {
		List Endpoint
		Get  Endpoint
	}
}{
	Articles: struct {
		List Endpoint
		Get  Endpoint
	}{
		List: Endpoint{
			Name:   "articles.list",
			Method: http.MethodGet,
			Path:   "/api/articles",
			Input:  ListArticlesQuery{},
			Responses: map[int]any{
				http.StatusOK:         []models.ArticleWithRelations{},
				http.StatusBadRequest: Message{},
			},
		},
		Get: Endpoint{
			Name:   "articles.get",
			Method: http.MethodGet,
			Path:   "/api/articles/:slug",
			Responses: map[int]any{
				http.StatusOK:       models.ArticleWithRelations{},
				http.StatusNotFound: Message{},
			},
		},
	},
	Categories: struct {
		List Endpoint
		Get  Endpoint
	}{
		List: Endpoint{
			Name:   "categories.list",
			Method: http.MethodGet,
			Path:   "/api/categories",
			Responses: map[int]any{
				http.StatusOK: []models.Category{},
			},
		},
		Get: Endpoint{
			Name:   "categories.get",
			Method: http.MethodGet,
			Path:   "/api/categories/:slug",
			Responses: map[int]any{
				http.StatusOK:       models.Category{},
				http.StatusNotFound: Message{},
			},
		},
	},
}

// Endpoints lists every declared endpoint.
func Endpoints() []Endpoint {
	return []Endpoint{
		API.Articles.List,
		API.Articles.Get,
		API.Categories.List,
		API.Categories.Get,
	}
}
