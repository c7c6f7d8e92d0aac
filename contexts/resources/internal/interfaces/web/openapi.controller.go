package web

import (
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/labstack/echo/v4"

	"github.com/go-arrower/restapi"
)

const (
	apiTitle   = "RESTful API"
	apiVersion = "1.0.0"
)

// Describer adds its operations to an API description. basePath is the prefix of all its routes.
type Describer interface {
	Describe(doc *openapi3.T, basePath string) error
}

// NewOpenAPIDocument returns the API description of the health endpoint and all resources.
func NewOpenAPIDocument(basePath string, describers ...Describer) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       apiTitle,
			Description: "Basic management of users, cars, products and orders",
			Version:     apiVersion,
		},
		Paths: openapi3.NewPaths(),
	}

	health, err := openapi3gen.NewSchemaRefForValue(HealthResponse{}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not describe health: %w", err)
	}

	op := openapi3.NewOperation()
	op.Summary = "Health check"
	op.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("API is running").WithJSONSchemaRef(health))
	doc.AddOperation("/health", http.MethodGet, op)

	for _, d := range describers {
		if err := d.Describe(doc, basePath); err != nil {
			return nil, fmt.Errorf("could not describe api: %w", err)
		}
	}

	return doc, nil
}

func NewOpenAPIController(doc *openapi3.T) *OpenAPIController {
	return &OpenAPIController{doc: doc}
}

type OpenAPIController struct {
	doc *openapi3.T
}

func (oc *OpenAPIController) Document() func(c echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, oc.doc)
	}
}

// Describe adds the list, show, create, update and delete operations of the resource.
func (rc *ResourceController[E, C, P, B, U]) Describe(doc *openapi3.T, basePath string) error {
	schemas := map[string]any{
		"record":  *new(E),
		"records": []E{},
		"payload": *new(B),
		"patch":   *new(U),
		"error":   restapi.ErrorResponse{},
		"deleted": map[string]string{},
	}

	refs := make(map[string]*openapi3.SchemaRef, len(schemas))

	for name, value := range schemas {
		ref, err := openapi3gen.NewSchemaRefForValue(value, nil)
		if err != nil {
			return fmt.Errorf("could not describe %s %s: %w", rc.resource.Name, name, err)
		}

		refs[name] = ref
	}

	var (
		collection = basePath + "/" + rc.resource.Plural
		single     = collection + "/{id}"
		name       = rc.resource.Name
	)

	notFound := openapi3.NewResponse().WithDescription(name + " not found").WithJSONSchemaRef(refs["error"])
	invalid := openapi3.NewResponse().WithDescription(restapi.ValidationErrorMessage).WithJSONSchemaRef(refs["error"])

	list := openapi3.NewOperation()
	list.Summary = "List all " + rc.resource.Plural
	list.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription("All "+rc.resource.Plural).
		WithJSONSchemaRef(refs["records"]))
	doc.AddOperation(collection, http.MethodGet, list)

	show := openapi3.NewOperation()
	show.Summary = "Show one " + name
	show.Parameters = openapi3.Parameters{idParameter()}
	show.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription(name).WithJSONSchemaRef(refs["record"]))
	show.AddResponse(http.StatusNotFound, notFound)
	doc.AddOperation(single, http.MethodGet, show)

	create := openapi3.NewOperation()
	create.Summary = "Create one " + name
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(refs["payload"]),
	}
	create.AddResponse(http.StatusCreated, openapi3.NewResponse().WithDescription(name+" created").
		WithJSONSchemaRef(refs["record"]))
	create.AddResponse(http.StatusUnprocessableEntity, invalid)
	doc.AddOperation(collection, http.MethodPost, create)

	update := openapi3.NewOperation()
	update.Summary = "Update one " + name
	update.Parameters = openapi3.Parameters{idParameter()}
	update.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithJSONSchemaRef(refs["patch"]),
	}
	update.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription(name+" updated").
		WithJSONSchemaRef(refs["record"]))
	update.AddResponse(http.StatusNotFound, notFound)
	update.AddResponse(http.StatusUnprocessableEntity, invalid)
	doc.AddOperation(single, http.MethodPut, update)

	del := openapi3.NewOperation()
	del.Summary = "Delete one " + name
	del.Parameters = openapi3.Parameters{idParameter()}
	del.AddResponse(http.StatusOK, openapi3.NewResponse().WithDescription(name+" deleted").
		WithJSONSchemaRef(refs["deleted"]))
	del.AddResponse(http.StatusNotFound, notFound)
	doc.AddOperation(single, http.MethodDelete, del)

	return nil
}

func idParameter() *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewStringSchema()),
	}
}
