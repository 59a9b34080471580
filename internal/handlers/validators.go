package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the ledger's custom binding tags to gin's validator.
// Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("gin binding engine is %T, not *validator.Validate", binding.Validator.Engine())
			return
		}
		registerErr = v.RegisterValidation("journal_status", func(fl validator.FieldLevel) bool {
			return domain.JournalStatus(fl.Field().String()).Valid()
		})
	})
	return registerErr
}
