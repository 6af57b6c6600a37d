package repository

import (
	"context"
	"testing"
	"time"

	"github.com/okian/footprint/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLedgerAppend(t *testing.T) {
	Convey("Given an empty ledger", t, func() {
		ctx := context.Background()
		ledger := NewLedger()
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		Convey("When appending records in order", func() {
			ledger.Append(ctx, model.NewRecord(model.CategoryHousehold, 1.0, base))
			ledger.Append(ctx, model.NewRecord(model.CategoryTransport, 0.5, base.Add(time.Second)))
			ledger.Append(ctx, model.NewRecord(model.CategoryHousehold, 2.0, base.Add(2*time.Second)))

			Convey("Then the history preserves append order", func() {
				all := ledger.All(ctx)
				So(all, ShouldHaveLength, 3)
				So(all[0].Category, ShouldEqual, model.CategoryHousehold)
				So(all[0].Value, ShouldEqual, 1.0)
				So(all[1].Category, ShouldEqual, model.CategoryTransport)
				So(all[2].Value, ShouldEqual, 2.0)
				So(ledger.Len(ctx), ShouldEqual, 3)
			})
		})

		Convey("When appending identical records", func() {
			rec := model.NewRecord(model.CategoryFood, 0.73, base)
			ledger.Append(ctx, rec)
			ledger.Append(ctx, rec)

			Convey("Then duplicates are kept as distinct entries", func() {
				So(ledger.Len(ctx), ShouldEqual, 2)
			})
		})

		Convey("When the clock steps backwards between appends", func() {
			ledger.Append(ctx, model.NewRecord(model.CategoryCar, 0.02, base))
			stored := ledger.Append(ctx, model.NewRecord(model.CategoryCar, 0.03, base.Add(-time.Minute)))

			Convey("Then the new timestamp is clamped to the previous one", func() {
				So(stored.Timestamp.Equal(base), ShouldBeTrue)
				all := ledger.All(ctx)
				So(all[1].Timestamp.Before(all[0].Timestamp), ShouldBeFalse)
			})
		})

		Convey("When mutating a returned copy of the history", func() {
			ledger.Append(ctx, model.NewRecord(model.CategoryFood, 1.0, base))
			all := ledger.All(ctx)
			all[0].Value = 99

			Convey("Then the stored record is unaffected", func() {
				So(ledger.All(ctx)[0].Value, ShouldEqual, 1.0)
			})
		})
	})
}

func TestLedgerLatestPerCategory(t *testing.T) {
	Convey("Given a ledger with repeated categories", t, func() {
		ctx := context.Background()
		ledger := NewLedger()
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		ledger.Append(ctx, model.NewRecord(model.CategoryHousehold, 1.0, base))
		ledger.Append(ctx, model.NewRecord(model.CategoryHousehold, 2.0, base.Add(time.Second)))
		ledger.Append(ctx, model.NewRecord(model.CategoryTransport, 0.5, base.Add(2*time.Second)))

		Convey("When selecting the latest record per category", func() {
			latest := ledger.LatestPerCategory(ctx)

			Convey("Then the most recently appended record wins", func() {
				So(latest, ShouldHaveLength, 2)
				So(latest[model.CategoryHousehold].Value, ShouldEqual, 2.0)
				So(latest[model.CategoryTransport].Value, ShouldEqual, 0.5)
			})

			Convey("Then unobserved categories are absent", func() {
				_, ok := latest[model.CategoryFood]
				So(ok, ShouldBeFalse)
			})
		})
	})
}
