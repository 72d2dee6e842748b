// Package validate enforces the `validate` tags on request structs.
package validate

import (
	"github.com/cloudwego/hertz/pkg/app/server/binding"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/go-playground/validator/v10"
)

var v = validator.New()

func Struct(obj any) error {
	return v.Struct(obj)
}

// Func is installed on the server so that BindAndValidate checks
// `validate` tags instead of hertz's default `vd` expressions.
func Func() binding.ValidatorFunc {
	return func(_ *protocol.Request, obj interface{}) error {
		return v.Struct(obj)
	}
}
