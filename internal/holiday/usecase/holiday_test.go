package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"someday-maybe/internal/holiday"
	"someday-maybe/internal/holiday/repository"
	calendarificSource "someday-maybe/internal/holiday/repository/calendarific"
	holidayKV "someday-maybe/internal/holiday/repository/kvstore"
	"someday-maybe/internal/model"
	pkgCalendarific "someday-maybe/pkg/calendarific"
	"someday-maybe/pkg/kvstore"
	"someday-maybe/pkg/log"
	"someday-maybe/pkg/metrics"
)

const (
	cacheKey = "someday-maybe-holidays-v2"
	body2025 = `{"meta":{"code":200},"response":{"holidays":[
		{"name":"Christmas Day","primary_type":"Federal Holiday","locations":"All","date":{"iso":"2025-12-25"}},
		{"name":"Halloween","primary_type":"Observance","locations":"All","date":{"iso":"2025-10-31"}}
	]}}`
)

// fakeAPI counts requests and can hold them until release is closed.
type fakeAPI struct {
	srv     *httptest.Server
	calls   atomic.Int32
	arrived chan struct{}
	release chan struct{}
	body    atomic.Pointer[string]
}

func newFakeAPI(t *testing.T, body string, hold bool) *fakeAPI {
	t.Helper()
	f := &fakeAPI{arrived: make(chan struct{}, 16), release: make(chan struct{})}
	f.setBody(body)
	if !hold {
		close(f.release)
	}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.arrived <- struct{}{}
		<-f.release
		w.Write([]byte(*f.body.Load()))
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeAPI) setBody(body string) { f.body.Store(&body) }

func (f *fakeAPI) source(t *testing.T) repository.Source {
	client, err := pkgCalendarific.New("key")
	require.NoError(t, err)
	client.WithBaseURL(f.srv.URL)
	return calendarificSource.New(client, holiday.DefaultAllowList(), log.NewNop())
}

type failingCache struct{}

func (failingCache) Load(ctx context.Context) (map[int]model.HolidayYear, error) {
	return nil, nil
}

func (failingCache) Save(ctx context.Context, years map[int]model.HolidayYear) error {
	return kvstore.ErrQuotaExceeded
}

func newTestUseCase(t *testing.T, src repository.Source, store kvstore.Store) (*implUseCase, *metrics.Metrics) {
	t.Helper()
	m := metrics.New()
	uc := New(context.Background(), log.NewNop(), src, holidayKV.New(store, cacheKey, log.NewNop()),
		holiday.DefaultAllowList(), m, Options{FetchTimeout: 5 * time.Second})
	return uc, m
}

func TestGetChristmas(t *testing.T) {
	api := newFakeAPI(t, body2025, false)
	uc, _ := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	h, err := uc.Get(context.Background(), 2025, 12, 25)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Christmas Day", h.Name)
	assert.Equal(t, holiday.CategoryFederal, h.Category)

	h, err = uc.Get(context.Background(), 2025, 10, 29)
	require.NoError(t, err)
	assert.Nil(t, h)

	assert.Equal(t, int32(1), api.calls.Load(), "the year is fetched once")
}

func TestGetInvalidDate(t *testing.T) {
	api := newFakeAPI(t, body2025, false)
	uc, _ := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	_, err := uc.Get(context.Background(), 2025, 2, 30)
	assert.ErrorIs(t, err, holiday.ErrInvalidDate)
	_, err = uc.Get(context.Background(), 2025, 13, 1)
	assert.ErrorIs(t, err, holiday.ErrInvalidDate)
	assert.Zero(t, api.calls.Load())
}

func TestConcurrentGetYearSharesOneRequest(t *testing.T) {
	api := newFakeAPI(t, `{"meta":{"code":200},"response":{"holidays":[]}}`, true)
	uc, m := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	const callers = 8
	var wg sync.WaitGroup
	results := make([]model.HolidayYear, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = uc.GetYear(context.Background(), 2030)
	}()
	<-api.arrived

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = uc.GetYear(context.Background(), 2030)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(api.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.NotNil(t, results[i])
	}
	assert.Equal(t, int32(1), api.calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HolidayFetches.WithLabelValues("calendarific", "ok")))
}

func TestPersistedYearsSurviveRestart(t *testing.T) {
	store := kvstore.New(afero.NewMemMapFs(), 0)
	api := newFakeAPI(t, body2025, false)
	uc, _ := newTestUseCase(t, api.source(t), store)

	_, err := uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)

	down := newFakeAPI(t, `{"meta":{"code":500},"response":[]}`, false)
	restarted, _ := newTestUseCase(t, down.source(t), store)

	h, err := restarted.Get(context.Background(), 2025, 10, 31)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Halloween", h.Name)
	assert.Zero(t, down.calls.Load())
}

func TestFetchErrorIsNotCached(t *testing.T) {
	api := newFakeAPI(t, `{"meta":{"code":200},"response":{}}`, false)
	uc, m := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	_, err := uc.GetYear(context.Background(), 2025)
	assert.ErrorIs(t, err, holiday.ErrMalformedResponse)

	api.setBody(body2025)
	y, err := uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, y, 2)
	assert.Equal(t, int32(2), api.calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HolidayFetches.WithLabelValues("calendarific", "error")))
}

func TestCancelledCallerStopsWaiting(t *testing.T) {
	api := newFakeAPI(t, body2025, true)
	uc, _ := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := uc.GetYear(ctx, 2025)
		done <- err
	}()
	<-api.arrived
	cancel()
	assert.True(t, errors.Is(<-done, context.Canceled))

	// The shared lookup was not cancelled with its first caller.
	close(api.release)
	y, err := uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, y, 2)
	assert.Equal(t, int32(1), api.calls.Load())
}

func TestPersistFailureStillReturns(t *testing.T) {
	api := newFakeAPI(t, body2025, false)
	uc := New(context.Background(), log.NewNop(), api.source(t), failingCache{},
		holiday.DefaultAllowList(), nil, Options{})

	y, err := uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, y, 2)

	_, err = uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, int32(1), api.calls.Load(), "kept in memory")
}

func TestGetHidesDisallowedCategory(t *testing.T) {
	store := kvstore.New(afero.NewMemMapFs(), 0)
	cache := holidayKV.New(store, cacheKey, log.NewNop())
	require.NoError(t, cache.Save(context.Background(), map[int]model.HolidayYear{
		2025: {"2025-03-20": {Name: "March Equinox", Category: "Season"}},
	}))

	api := newFakeAPI(t, body2025, false)
	uc, _ := newTestUseCase(t, api.source(t), store)

	h, err := uc.Get(context.Background(), 2025, 3, 20)
	require.NoError(t, err)
	assert.Nil(t, h)
}

func TestReturnedYearIsACopy(t *testing.T) {
	api := newFakeAPI(t, body2025, false)
	uc, _ := newTestUseCase(t, api.source(t), kvstore.New(afero.NewMemMapFs(), 0))

	y, err := uc.GetYear(context.Background(), 2025)
	require.NoError(t, err)
	delete(y, "2025-12-25")

	h, err := uc.Get(context.Background(), 2025, 12, 25)
	require.NoError(t, err)
	assert.NotNil(t, h)
}
