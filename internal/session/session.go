// Package session keeps search form state of browser sessions.
package session

import (
	"context"

	"github.com/umalmyha/customer-search/internal/model"
)

// FormState is what user has entered into search form
type FormState struct {
	Criteria model.SearchCriteria `msgpack:"criteria"`
}

// Store persists form state by session id. Unknown session yields empty form state.
type Store interface {
	Load(context.Context, string) (FormState, error)
	Save(context.Context, string, FormState) error
	Delete(context.Context, string) error
}
