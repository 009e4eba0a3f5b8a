package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crmkeeper/internal/common"
)

type field struct {
	name  string
	value string
}

// requireFields reports the first field whose value is blank.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", common.ErrRequiredField, f.name)
		}
	}
	return nil
}
