package catalog

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"shopadmin/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by the name clients send them under.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// messages overrides the generic wording for a few fields.
var messages = map[string]string{
	"imageBase64":  "Image data is required.",
	"imageBase641": "At least one image is required.",
}

// CategoryForm is the body of a category create or update.
type CategoryForm struct {
	Name        string `form:"name" json:"name" validate:"required"`
	ImageBase64 string `form:"imageBase64" json:"imageBase64" validate:"required"`
}

// PosterForm is the body of a poster create or update.
type PosterForm struct {
	PosterName  string `form:"posterName" json:"posterName" validate:"required"`
	ImageBase64 string `form:"imageBase64" json:"imageBase64" validate:"required"`
}

// ProductForm is the body of a product create or update. Every value
// arrives as text; empty means absent.
type ProductForm struct {
	Name             string `form:"name" json:"name"`
	Description      string `form:"description" json:"description"`
	Quantity         string `form:"quantity" json:"quantity" validate:"omitempty,number"`
	Price            string `form:"price" json:"price" validate:"omitempty,numeric"`
	OfferPrice       string `form:"offerPrice" json:"offerPrice" validate:"omitempty,numeric"`
	ProCategoryID    string `form:"proCategoryId" json:"proCategoryId" validate:"omitempty,number"`
	ProSubCategoryID string `form:"proSubCategoryId" json:"proSubCategoryId" validate:"omitempty,number"`
	ProBrandID       string `form:"proBrandId" json:"proBrandId" validate:"omitempty,number"`
	ProVariantTypeID string `form:"proVariantTypeId" json:"proVariantTypeId" validate:"omitempty,number"`
	ProVariantID     string `form:"proVariantId" json:"proVariantId" validate:"omitempty,number"`
	ImageBase641     string `form:"imageBase641" json:"imageBase641"`
	ImageBase642     string `form:"imageBase642" json:"imageBase642"`
	ImageBase643     string `form:"imageBase643" json:"imageBase643"`
	ImageBase644     string `form:"imageBase644" json:"imageBase644"`
	ImageBase645     string `form:"imageBase645" json:"imageBase645"`
}

// Images returns the supplied payloads keyed by slot.
func (f ProductForm) Images() map[int]string {
	out := make(map[int]string, models.MaxImageSlots)
	for slot, v := range [models.MaxImageSlots]string{f.ImageBase641, f.ImageBase642, f.ImageBase643, f.ImageBase644, f.ImageBase645} {
		if v != "" {
			out[slot+1] = v
		}
	}
	return out
}

// required checks that a new product carries every mandatory field, in
// the order clients list them.
func (f ProductForm) required() error {
	fields := []struct{ name, value string }{
		{"name", f.Name},
		{"quantity", f.Quantity},
		{"price", f.Price},
		{"proCategoryId", f.ProCategoryID},
		{"proSubCategoryId", f.ProSubCategoryID},
		{"imageBase641", f.ImageBase641},
	}
	for _, fld := range fields {
		if err := validate.Var(fld.value, "required"); err != nil {
			return invalid(fld.name, "required")
		}
	}
	return nil
}

// validationErr converts a validator failure into a ValidationError for
// the first offending field.
func validationErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return invalid(verrs[0].Field(), verrs[0].Tag())
	}
	return &ValidationError{Message: err.Error()}
}

func invalid(field, tag string) *ValidationError {
	var msg string
	switch tag {
	case "required":
		if m, ok := messages[field]; ok {
			msg = m
		} else {
			msg = field + " is required."
		}
	case "number", "numeric":
		msg = field + " must be a number."
	default:
		msg = field + " is invalid."
	}
	return &ValidationError{Field: field, Message: msg}
}

func parseID(field, v string) (uint, error) {
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil || id == 0 {
		return 0, invalid(field, "invalid")
	}
	return uint(id), nil
}

func parseOptionalID(field, v string) (*uint, error) {
	if v == "" {
		return nil, nil
	}
	id, err := parseID(field, v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseInt(field, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(field, "number")
	}
	return n, nil
}

func parseFloat(field, v string) (float64, error) {
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, invalid(field, "numeric")
	}
	return n, nil
}
