package collection

import (
	"errors"
	"fmt"
)

// ErrNotFound 表示按标识查找的记录不存在
// ErrNotFound means no record matches the given identifier
var ErrNotFound = errors.New("record not found")

// ValidationError 必填字段缺失 / ValidationError marks a missing required field
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsValidation 判断是否校验错误 / IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
