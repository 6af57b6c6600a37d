package metrics

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// gatherNames collects the metric family names currently registered.
func gatherNames(t *testing.T) map[string]bool {
	t.Helper()
	families, err := GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	return names
}

func TestMetricsRegistry(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording domain events", func() {
			RecordEstimate("Household", 0.71)
			RecordImpactBand("Household", "Excellent")
			RecordInvalidInput("Food")
			RecordSessionCreated()
			RecordSessionExpired()
			UpdateActiveSessions(3)
			UpdateLedgerRecords(7)
			RecordHTTPRequest("estimate_household", "POST", "200")
			RecordHTTPRequestDuration("estimate_household", "POST", "200", 1.5)

			Convey("Then the expected families are registered and gatherable", func() {
				names := gatherNames(t)
				So(names["footprint_calculator_estimates_total"], ShouldBeTrue)
				So(names["footprint_calculator_estimate_tons"], ShouldBeTrue)
				So(names["footprint_calculator_impact_bands_total"], ShouldBeTrue)
				So(names["footprint_calculator_invalid_inputs_total"], ShouldBeTrue)
				So(names["footprint_calculator_active_sessions"], ShouldBeTrue)
				So(names["footprint_calculator_ledger_records"], ShouldBeTrue)
				So(names["footprint_calculator_http_requests_total"], ShouldBeTrue)
			})
		})

		Convey("When recording error observations", func() {
			RecordErrorByType("client_error", "medium")
			RecordErrorByEndpoint("estimate_food", "POST", "client_error")
			RecordErrorLatency("http", "client_error", 2.0)

			Convey("Then the error families are gatherable", func() {
				names := gatherNames(t)
				So(names["footprint_calculator_errors_by_type_total"], ShouldBeTrue)
				So(names["footprint_calculator_errors_by_endpoint_total"], ShouldBeTrue)
			})
		})
	})
}
