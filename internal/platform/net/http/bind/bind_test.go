package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "biblia/internal/platform/errors"
	kit "biblia/internal/platform/testkit"
)

type lookup struct {
	Ref   string `json:"ref" validate:"required,max=20,scripture_ref"`
	Limit int    `json:"limit,omitempty" validate:"omitempty,min=1,max=5"`
}

func TestParseJSON_Success(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ref":"João 3:16"}`))
	got, err := ParseJSON[lookup](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Ref != "João 3:16" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_Failures(t *testing.T) {
	cases := []struct {
		name string
		body string
		code perr.ErrorCode
	}{
		{"empty body", "", perr.ErrorCodeJSON},
		{"invalid json", `{`, perr.ErrorCodeJSON},
		{"unknown field", `{"ref":"Jo 1","x":1}`, perr.ErrorCodeJSON},
		{"trailing data", `{"ref":"Jo 1"} {}`, perr.ErrorCodeJSON},
		{"missing ref", `{}`, perr.ErrorCodeValidation},
		{"too long", `{"ref":"` + strings.Repeat("a", 21) + `"}`, perr.ErrorCodeValidation},
		{"control chars", `{"ref":"Jo\u0007 1"}`, perr.ErrorCodeValidation},
		{"punctuation only", `{"ref":"::--"}`, perr.ErrorCodeValidation},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(c.body))
			_, err := ParseJSON[lookup](req)
			if got := perr.CodeOf(err); got != c.code {
				t.Fatalf("code = %v, want %v (%v)", got, c.code, err)
			}
		})
	}
}

func TestParseJSON_ValidationCarriesField(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ref":"Jo 1","limit":9}`))
	_, err := ParseJSON[lookup](req)
	e, ok := perr.As(err)
	if !ok || e.Field() != "limit" {
		t.Fatalf("expected field limit, got %v", err)
	}
	kit.MustContain(t, e.Message(), "limit must be at most 5")
}

func TestParseJSON_AllowEmptyBody(t *testing.T) {
	type optional struct {
		Note string `json:"note" validate:"max=3"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
	got, err := ParseJSON[optional](req, JSONOptions{AllowEmptyBody: true})
	if err != nil || got != (optional{}) {
		t.Fatalf("unexpected: %+v %v", got, err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ref":"Genesis 1"}`))
	_, err := ParseJSON[lookup](req, JSONOptions{MaxBytes: 4, DisallowUnknown: true})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected JSON error for truncated body, got %v", err)
	}
}

func TestParseJSON_TrailingData_Seam(t *testing.T) {
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ref":"Jo 1"}`))
	if _, err := ParseJSON[lookup](req); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

type catalogQuery struct {
	Q      string `query:"q" validate:"max=10"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Strict bool   `query:"strict"`
	hidden string `query:"hidden"`
	Skip   string
}

func TestParseQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?q=%20Jo%C3%A3o%20&page=2&strict=true&hidden=x&Skip=y", nil)
	got, err := ParseQuery[catalogQuery](req)
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if got.Q != "João" || got.Page != 2 || !got.Strict || got.hidden != "" || got.Skip != "" {
		t.Fatalf("bound %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
	_, err = ParseQuery[catalogQuery](req)
	if e, ok := perr.As(err); !ok || e.Code() != perr.ErrorCodeInvalidArgument || e.Field() != "page" {
		t.Fatalf("expected invalid page, got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/?q="+strings.Repeat("x", 11), nil)
	_, err = ParseQuery[catalogQuery](req)
	if e, ok := perr.As(err); !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != "q" {
		t.Fatalf("expected q validation error, got %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if got, err := ParseQuery[catalogQuery](req); err != nil || got.Q != "" {
		t.Fatalf("empty query should bind zero value: %+v %v", got, err)
	}
}

func TestParseQuery_NonStruct(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?q=1", nil)
	if _, err := ParseQuery[string](req); err == nil {
		t.Fatalf("expected error for non-struct target")
	}
}

func TestValidationFieldAndMessage_GenericError(t *testing.T) {
	f, m := ValidationFieldAndMessage(perr.Internalf("plain"))
	if f != "" || m != "plain" {
		t.Fatalf("got %q %q", f, m)
	}
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should yield empty strings")
	}
}
