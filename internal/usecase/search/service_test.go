package search

import (
	"context"
	"errors"
	"testing"

	domco "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/company"
	domsearch "github.com/LoaiAlaa24/fetch-companies-data/internal/domain/search"
)

type mockRepo struct {
	companies  []domco.Company
	err        error
	lastParams domsearch.Params
	called     bool
}

func (m *mockRepo) Search(_ context.Context, params domsearch.Params) ([]domco.Company, error) {
	m.called = true
	m.lastParams = params
	return m.companies, m.err
}

func TestSearch_PassesValidatedParams(t *testing.T) {
	repo := &mockRepo{companies: []domco.Company{{ID: 1, CompanyID: "c-1"}}}
	svc := New(repo)

	params, err := domsearch.NewParams("Germany", "sie", "", 25, 50)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	got, err := svc.Search(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %d companies, want 1", len(got))
	}
	if repo.lastParams.Country() != "Germany" || repo.lastParams.Limit() != 25 || repo.lastParams.Offset() != 50 {
		t.Errorf("params not passed through: %+v", repo.lastParams)
	}
}

func TestSearch_RepositoryErrorPropagates(t *testing.T) {
	wantErr := errors.New("boom")
	repo := &mockRepo{err: wantErr}
	svc := New(repo)

	params, err := domsearch.NewParams("", "", "", 10, 0)
	if err != nil {
		t.Fatalf("NewParams: %v", err)
	}

	_, err = svc.Search(context.Background(), params)
	if !errors.Is(err, wantErr) {
		t.Errorf("got %v, want wrapped boom", err)
	}
}
