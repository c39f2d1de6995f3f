package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talenthub/recruiting-api/internal/api"
	"github.com/talenthub/recruiting-api/internal/api/handler"
	"github.com/talenthub/recruiting-api/internal/core/domain"
)

type stubSkillService struct {
	listFn func(ctx context.Context) ([]domain.Skill, error)
}

func (s *stubSkillService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.listFn(ctx)
}

func newSkillTestServer(svc *stubSkillService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/api/skills", handler.NewSkillHandler(svc).ListSkills)
	return e
}

func TestListSkills(t *testing.T) {
	svc := &stubSkillService{
		listFn: func(context.Context) ([]domain.Skill, error) {
			return []domain.Skill{
				{ID: "s1", Name: "Go", Category: "Core Tech"},
				{ID: "s2", Name: "Redis", Category: "Core Tech"},
			}, nil
		},
	}
	e := newSkillTestServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/skills", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			Category string `json:"category"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Name != "Go" {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestListSkillsFailure(t *testing.T) {
	svc := &stubSkillService{
		listFn: func(context.Context) ([]domain.Skill, error) {
			return nil, errors.New("mongo down")
		},
	}
	e := newSkillTestServer(svc)

	rec := doJSON(e, http.MethodGet, "/api/skills", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if rec.Body.String() == "" || !json.Valid(rec.Body.Bytes()) {
		t.Error("error body must be the JSON envelope")
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error != "internal server error" {
		t.Errorf("error = %q, internal causes must not leak", resp.Error)
	}
}
