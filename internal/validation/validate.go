package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/franciscosanchezn/truckplate-api/internal/models"
	"github.com/go-playground/validator/v10"
)

// Field messages shown next to the offending input
const (
	MsgRecipeName     = "Recipe name is required"
	MsgDescription    = "Description is required"
	MsgValidNumber    = "Valid number required"
	MsgUnknownStation = "Unknown prep station"
	MsgIngredientName = "Ingredient name is required"
	MsgSupplier       = "Supplier name is required"
	MsgValidAmount    = "Valid amount required"
	MsgDateRequired   = "Date is required"
	MsgDateFormat     = "Date must be YYYY-MM-DD"
	MsgItems          = "Item description is required"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		must(v.RegisterValidation("station", func(fl validator.FieldLevel) bool {
			return models.IsStation(fl.Field().String())
		}))
		must(v.RegisterValidation("posint", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			return err == nil && n > 0
		}))
		must(v.RegisterValidation("nonnegint", func(fl validator.FieldLevel) bool {
			n, err := strconv.Atoi(fl.Field().String())
			return err == nil && n >= 0
		}))
		must(v.RegisterValidation("posnum", func(fl validator.FieldLevel) bool {
			f, ok := parseDecimal(fl.Field().String())
			return ok && f > 0
		}))
		must(v.RegisterValidation("nonnegnum", func(fl validator.FieldLevel) bool {
			f, ok := parseDecimal(fl.Field().String())
			return ok && f >= 0
		}))
		validate = v
	})
	return validate
}

func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("validation: %v", err))
	}
}

func parseDecimal(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ValidateRecipe returns one message per invalid field, keyed by the
// field's JSON name. An empty map means the form is valid.
func ValidateRecipe(f RecipeForm) map[string]string {
	return collect(instance().Struct(f.normalize()), recipeMessage)
}

// ValidateInvoice is ValidateRecipe for invoice submissions
func ValidateInvoice(f InvoiceForm) map[string]string {
	return collect(instance().Struct(f.normalize()), invoiceMessage)
}

func collect(err error, message func(field, tag string) string) map[string]string {
	errs := map[string]string{}
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		if _, dup := errs[field]; dup {
			continue
		}
		errs[field] = message(field, fe.Tag())
	}
	return errs
}

// fieldPath drops the struct name from a namespace such as
// "RecipeForm.ingredients[0].cost"
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func recipeMessage(field, tag string) string {
	if strings.HasPrefix(field, "ingredients[") {
		if tag == "required" {
			return MsgIngredientName
		}
		return MsgValidNumber
	}
	switch field {
	case "name":
		return MsgRecipeName
	case "description":
		return MsgDescription
	case "prepStation":
		return MsgUnknownStation
	default:
		return MsgValidNumber
	}
}

func invoiceMessage(field, tag string) string {
	switch field {
	case "supplier":
		return MsgSupplier
	case "amount":
		return MsgValidAmount
	case "date":
		if tag == "required" {
			return MsgDateRequired
		}
		return MsgDateFormat
	default:
		return MsgItems
	}
}
