package validators

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

// upiPattern matches a VPA such as name@bank.
var upiPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,256}@[a-zA-Z]{2,64}$`)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("upi_id", func(fl validator.FieldLevel) bool {
			return upiPattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

func IsEmail(s string) bool {
	return instance().Var(s, "required,email") == nil
}

func IsHTTPURL(s string) bool {
	return instance().Var(s, "required,http_url") == nil
}

func IsUPIID(s string) bool {
	return instance().Var(s, "required,upi_id") == nil
}
