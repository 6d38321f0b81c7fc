package http

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPISpec []byte

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}
	return doc, nil
}

// RequestValidator rejects requests that do not match the API document.
// Routes missing from the document are left to echo's router.
func RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				var routeErr *routers.RouteError
				if errors.As(err, &routeErr) {
					return next(c)
				}
				return err
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
			}
			return next(c)
		}
	}, nil
}

type swaggerDoc struct {
	once sync.Once
	json string
	doc  *openapi3.T
}

// ReadDoc renders the embedded document as JSON for the swagger UI.
func (s *swaggerDoc) ReadDoc() string {
	s.once.Do(func() {
		data, err := s.doc.MarshalJSON()
		if err != nil {
			return
		}
		s.json = string(data)
	})
	return s.json
}

var registerSwagger sync.Once

// RegisterSwagger exposes doc to echo-swagger under the default instance name.
func RegisterSwagger(doc *openapi3.T) {
	registerSwagger.Do(func() {
		swag.Register(swag.Name, &swaggerDoc{doc: doc})
	})
}
