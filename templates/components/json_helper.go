package components

import (
	"encoding/json"

	"go.uber.org/zap"
)

// JSON marshals v for hx-headers attributes and inline scripts, "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("marshal json attribute", zap.Error(err))
		return "{}"
	}
	return string(b)
}
