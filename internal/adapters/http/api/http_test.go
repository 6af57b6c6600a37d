package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/footprint/internal/adapters/http/api"
	"github.com/okian/footprint/internal/domain/estimator"
	"github.com/okian/footprint/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeDeps is a canned-response implementation of the handler dependencies.
type fakeDeps struct {
	minted    int
	estimated []string

	assessment types.Assessment
	estimerr   error

	history []types.Record
	summary types.Summary
	readerr error
}

func (f *fakeDeps) NewSession(_ context.Context) string {
	f.minted++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", f.minted)
}

func (f *fakeDeps) estimate(category string) (types.Assessment, error) {
	f.estimated = append(f.estimated, category)
	if f.estimerr != nil {
		return types.Assessment{}, f.estimerr
	}
	return f.assessment, nil
}

func (f *fakeDeps) EstimateHousehold(_ context.Context, _ string, _ estimator.HouseholdInput) (types.Assessment, error) {
	return f.estimate("Household")
}

func (f *fakeDeps) EstimateTransport(_ context.Context, _ string, _ estimator.TransportInput) (types.Assessment, error) {
	return f.estimate("Transport")
}

func (f *fakeDeps) EstimateCar(_ context.Context, _ string, _ estimator.CarInput) (types.Assessment, error) {
	return f.estimate("Car")
}

func (f *fakeDeps) EstimateFood(_ context.Context, _ string, _ estimator.FoodInput) (types.Assessment, error) {
	return f.estimate("Food")
}

func (f *fakeDeps) History(_ context.Context, _ string) ([]types.Record, error) {
	return f.history, f.readerr
}

func (f *fakeDeps) Summary(_ context.Context, _ string) (types.Summary, error) {
	return f.summary, f.readerr
}

func (f *fakeDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true}
}

const cookieName = "footprint_session"

func newTestServer(deps *fakeDeps) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, deps, cookieName).Register(context.Background(), mux)
	return mux
}

func TestEstimateEndpoints(t *testing.T) {
	Convey("Given the estimate routes", t, func() {
		deps := &fakeDeps{
			assessment: types.Assessment{
				Category:  "Household",
				Value:     0.71,
				Unit:      "tCO2e",
				Impact:    "Excellent",
				Level:     0,
				Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
		}
		mux := newTestServer(deps)

		Convey("When posting a valid household request", func() {
			body := `{"members":1,"electricity_kwh":1000}`
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/household", strings.NewReader(body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it returns the assessment", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got types.Assessment
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Category, ShouldEqual, "Household")
				So(got.Value, ShouldEqual, 0.71)
				So(got.Impact, ShouldEqual, "Excellent")
				So(deps.estimated, ShouldResemble, []string{"Household"})
			})

			Convey("Then a session cookie is set on first contact", func() {
				cookies := rec.Result().Cookies()
				So(cookies, ShouldHaveLength, 1)
				So(cookies[0].Name, ShouldEqual, cookieName)
				So(cookies[0].HttpOnly, ShouldBeTrue)
				So(deps.minted, ShouldEqual, 1)
			})
		})

		Convey("When the request carries a valid session cookie", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/transport", strings.NewReader(`{"bus_km":100}`))
			req.AddCookie(&http.Cookie{Name: cookieName, Value: "7a9f4f6e-0f6c-4c8e-9a4d-1b2c3d4e5f60"})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then no new session is minted", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(deps.minted, ShouldEqual, 0)
				So(rec.Result().Cookies(), ShouldBeEmpty)
			})
		})

		Convey("When the cookie value is not a UUID", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/transport", strings.NewReader(`{"bus_km":100}`))
			req.AddCookie(&http.Cookie{Name: cookieName, Value: "junk"})
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then a fresh session replaces it", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(deps.minted, ShouldEqual, 1)
				So(rec.Result().Cookies(), ShouldHaveLength, 1)
			})
		})

		Convey("When the body fails range validation", func() {
			body := `{"members":0,"electricity_kwh":1000}`
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/household", strings.NewReader(body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it is rejected before the service is called", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "bad_request")
				So(deps.estimated, ShouldBeEmpty)
			})
		})

		Convey("When the fuel type is not in the allowed set", func() {
			body := `{"distance_km":100,"fuel_type":"Steam","fuel_efficiency_l_per_100km":8}`
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/car", strings.NewReader(body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it is rejected with a bad request", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(deps.estimated, ShouldBeEmpty)
			})
		})

		Convey("When the body is not JSON", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/food", strings.NewReader("not json"))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it is rejected with a bad request", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the service reports invalid input", func() {
			deps.estimerr = fmt.Errorf("meals out of range: %w", estimator.ErrInvalidInput)
			body := `{"diet_type":"Vegan","meals_per_week":21}`
			req := httptest.NewRequest(http.MethodPost, "/api/estimate/food", strings.NewReader(body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the caller gets a 400 with the invalid_input code", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "invalid_input")
			})
		})

		Convey("When using GET on an estimate route", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/estimate/household", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the route does not exist for that method", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestReadEndpoints(t *testing.T) {
	Convey("Given the history and summary routes", t, func() {
		ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		deps := &fakeDeps{
			history: []types.Record{
				{Category: "Household", Value: 0.71, Timestamp: ts},
				{Category: "Food", Value: 0.73, Timestamp: ts.Add(time.Minute)},
			},
			summary: types.Summary{
				Latest: []types.Record{
					{Category: "Household", Value: 0.71, Timestamp: ts},
					{Category: "Food", Value: 0.73, Timestamp: ts.Add(time.Minute)},
				},
				Total: 1.44,
			},
		}
		mux := newTestServer(deps)

		Convey("When fetching the history", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the records come back in order", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got []types.Record
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got, ShouldHaveLength, 2)
				So(got[0].Category, ShouldEqual, "Household")
				So(got[1].Category, ShouldEqual, "Food")
			})
		})

		Convey("When the session has no records", func() {
			deps.history = nil
			req := httptest.NewRequest(http.MethodGet, "/api/history", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then an empty JSON array is returned, not null", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When fetching the summary", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the latest records and total are returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got types.Summary
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got.Latest, ShouldHaveLength, 2)
				So(got.Total, ShouldEqual, 1.44)
			})
		})

		Convey("When the read fails", func() {
			deps.readerr = fmt.Errorf("store closed")
			req := httptest.NewRequest(http.MethodGet, "/api/summary", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then an internal error is reported", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(rec.Body.String(), ShouldContainSubstring, "internal_error")
			})
		})

		Convey("When using POST on a read route", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/history", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then the route does not exist for that method", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestOperationalEndpoints(t *testing.T) {
	Convey("Given the operational routes", t, func() {
		deps := &fakeDeps{}
		mux := newTestServer(deps)

		Convey("When probing /healthz", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it responds OK with metrics exposition", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.Len(), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When fetching /stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it returns the provider's snapshot as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var got map[string]interface{}
				So(json.Unmarshal(rec.Body.Bytes(), &got), ShouldBeNil)
				So(got["started"], ShouldEqual, true)
			})
		})

		Convey("When fetching /dashboard", func() {
			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			Convey("Then it serves the embedded page", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(rec.Body.String(), ShouldContainSubstring, "<html")
			})
		})
	})
}
