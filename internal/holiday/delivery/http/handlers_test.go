package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/model"
	"someday-maybe/pkg/log"
)

type fakeUseCase struct {
	years map[int]model.HolidayYear
	err   error
}

func (f *fakeUseCase) GetYear(ctx context.Context, year int) (model.HolidayYear, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.years[year], nil
}

func (f *fakeUseCase) Get(ctx context.Context, year, month, day int) (*model.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	if month < 1 || month > 12 {
		return nil, holiday.ErrInvalidDate
	}
	h, ok := f.years[year][fmt.Sprintf("%04d-%02d-%02d", year, month, day)]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newTestRouter(uc holiday.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc))
	return r
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func sampleUseCase() *fakeUseCase {
	return &fakeUseCase{years: map[int]model.HolidayYear{
		2025: {
			"2025-12-25": {Name: "Christmas Day", Category: holiday.CategoryFederal},
			"2025-07-04": {Name: "Independence Day", Category: holiday.CategoryFederal},
		},
	}}
}

func TestGetYearSorted(t *testing.T) {
	r := newTestRouter(sampleUseCase())

	w, env := get(r, "/api/v1/holidays/2025")
	require.Equal(t, http.StatusOK, w.Code)

	var resp yearResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 2025, resp.Year)
	require.Len(t, resp.Holidays, 2)
	assert.Equal(t, "2025-07-04", resp.Holidays[0].Date)
	assert.Equal(t, "Christmas Day", resp.Holidays[1].Name)
}

func TestGetDay(t *testing.T) {
	r := newTestRouter(sampleUseCase())

	w, env := get(r, "/api/v1/holidays/2025/12/25")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dayResp
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "2025-12-25", resp.Date)
	require.NotNil(t, resp.Holiday)
	assert.Equal(t, "Christmas Day", resp.Holiday.Name)

	w, env = get(r, "/api/v1/holidays/2025/3/5")
	require.Equal(t, http.StatusOK, w.Code)
	resp = dayResp{}
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "2025-03-05", resp.Date)
	assert.Nil(t, resp.Holiday)
}

func TestHolidayErrors(t *testing.T) {
	cases := []struct {
		name string
		uc   *fakeUseCase
		path string
		want int
	}{
		{"non numeric year", sampleUseCase(), "/api/v1/holidays/next", http.StatusBadRequest},
		{"non numeric day", sampleUseCase(), "/api/v1/holidays/2025/12/xx", http.StatusBadRequest},
		{"invalid month", sampleUseCase(), "/api/v1/holidays/2025/13/1", http.StatusBadRequest},
		{"upstream", &fakeUseCase{err: holiday.ErrUpstream}, "/api/v1/holidays/2025", http.StatusBadGateway},
		{"malformed", &fakeUseCase{err: fmt.Errorf("decode: %w", holiday.ErrMalformedResponse)}, "/api/v1/holidays/2025/1/1", http.StatusBadGateway},
		{"timeout", &fakeUseCase{err: context.DeadlineExceeded}, "/api/v1/holidays/2025", http.StatusGatewayTimeout},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := get(newTestRouter(tc.uc), tc.path)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
