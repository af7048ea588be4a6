package mock

import (
	"context"

	"github.com/fwojciec/maildoc"
)

var _ maildoc.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is a mock implementation of maildoc.TemplateStore.
type TemplateStore struct {
	SaveFn func(ctx context.Context, documentID string, html string) (string, error)
	LoadFn func(ctx context.Context, documentID string) (string, error)
}

func (s *TemplateStore) Save(ctx context.Context, documentID string, html string) (string, error) {
	return s.SaveFn(ctx, documentID, html)
}

func (s *TemplateStore) Load(ctx context.Context, documentID string) (string, error) {
	return s.LoadFn(ctx, documentID)
}
