package handler

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/amd4k/ZHV/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo with the catalog's
// custom rules.
type RequestValidator struct {
	validate *validator.Validate
}

func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Prices are validated on their exact decimal representation so that
	// excess precision is rejected rather than rounded away.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if p, ok := field.Interface().(model.Price); ok {
			return p.Decimal.String()
		}
		return nil
	}, model.Price{})

	mustRegister(v, "price", func(fl validator.FieldLevel) bool {
		p, err := model.ParsePrice(fl.Field().String())
		return err == nil && p.Valid()
	})
	mustRegister(v, "platform", func(fl validator.FieldLevel) bool {
		return model.Platform(fl.Field().String()).Valid()
	})
	mustRegister(v, "gender", func(fl validator.FieldLevel) bool {
		return model.Gender(fl.Field().String()).Valid()
	})
	mustRegister(v, "httpurl", func(fl validator.FieldLevel) bool {
		return isHTTPURL(fl.Field().String())
	})

	v.RegisterStructValidation(validatePlatformLink, PlatformLinkRequest{})

	return &RequestValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}

// validatePlatformLink requires a URL for every platform except direct.
func validatePlatformLink(sl validator.StructLevel) {
	req := sl.Current().Interface().(PlatformLinkRequest)
	if req.Platform.RequiresURL() && (req.URL == nil || *req.URL == "") {
		sl.ReportError(req.URL, "url", "URL", "required_for_platform", string(req.Platform))
	}
}

func isHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// bindAndValidate decodes the request body into req and checks it. The
// returned details list one "field: rule" entry per failed constraint.
func bindAndValidate(c echo.Context, req interface{ normalize() }) ([]string, error) {
	if err := c.Bind(req); err != nil {
		return nil, err
	}
	req.normalize()
	if err := c.Validate(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldPath(fe)+": "+fe.Tag())
			}
			return details, err
		}
		return nil, err
	}
	return nil, nil
}

// fieldPath drops the top-level struct name from the namespace
// ("ProductRequest.images[0]" becomes "images[0]").
func fieldPath(fe validator.FieldError) string {
	if _, rest, ok := strings.Cut(fe.Namespace(), "."); ok {
		return rest
	}
	return fe.Field()
}
