package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"imobi/internal/delivery/http/validator"
	"imobi/internal/domain/entity"
	"imobi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOwnerUsecase struct {
	created *usecase.OwnerInput
	owner   *entity.Owner
	err     error
}

func (f *fakeOwnerUsecase) Create(_ context.Context, input *usecase.OwnerInput) (*entity.Owner, error) {
	f.created = input
	return f.owner, f.err
}

func (f *fakeOwnerUsecase) Get(context.Context, int64) (*entity.Owner, error) {
	return f.owner, f.err
}

func (f *fakeOwnerUsecase) List(context.Context) ([]*entity.Owner, error) {
	return []*entity.Owner{f.owner}, f.err
}

func (f *fakeOwnerUsecase) Update(_ context.Context, _ int64, input *usecase.OwnerInput) (*entity.Owner, error) {
	f.created = input
	return f.owner, f.err
}

func (f *fakeOwnerUsecase) Delete(context.Context, int64) error {
	return f.err
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestOwnerHandler_Create(t *testing.T) {
	uc := &fakeOwnerUsecase{owner: &entity.Owner{ID: 1, Person: entity.Person{Name: "Ana Silva"}}}
	h := NewOwnerHandler(uc)

	body := `{"name":"Ana Silva","document":"111.222.333-44"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/owners", body)

	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Silva")
	require.NotNil(t, uc.created)
	assert.Equal(t, "111.222.333-44", uc.created.Document)
}

func TestOwnerHandler_Create_ValidationFailure(t *testing.T) {
	h := NewOwnerHandler(&fakeOwnerUsecase{})

	// name is required.
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/owners", `{"document":"111.222.333-44"}`)

	err := h.Create(c)
	require.Error(t, err)
}

func TestOwnerHandler_Get_InvalidID(t *testing.T) {
	h := NewOwnerHandler(&fakeOwnerUsecase{})

	c, _ := newTestContext(t, http.MethodGet, "/api/v1/owners/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	require.Error(t, err)
}

func TestOwnerHandler_Get(t *testing.T) {
	uc := &fakeOwnerUsecase{owner: &entity.Owner{ID: 7, Person: entity.Person{Name: "Ana Silva"}}}
	h := NewOwnerHandler(uc)

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/owners/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Silva")
}
