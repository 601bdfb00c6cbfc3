package array

import (
	"errors"
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("New", t, func() {
		Convey("Should allocate exactly the requested capacity", func() {
			a, err := New[int](4)
			So(err, ShouldBeNil)
			So(a.Cap(), ShouldEqual, 4)
			So(a.Len(), ShouldEqual, 0)
			So(a.IsEmpty(), ShouldBeTrue)
			So(a.GrowthFactor(), ShouldEqual, DefaultGrowthFactor)
		})

		Convey("Should accept zero capacity", func() {
			a, err := New[int](0)
			So(err, ShouldBeNil)
			So(a.Cap(), ShouldEqual, 0)
		})

		Convey("Should reject negative capacity", func() {
			a, err := New[int](-1)
			So(a, ShouldBeNil)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("NewDefault should use the default capacity", func() {
			a := NewDefault[string]()
			So(a.Cap(), ShouldEqual, DefaultCapacity)
			So(a.Len(), ShouldEqual, 0)
		})
	})
}

func TestFrom(t *testing.T) {
	Convey("From", t, func() {
		Convey("Should size the buffer to the items and keep their order", func() {
			a := From(80, 30, 50, 40)
			So(a.Len(), ShouldEqual, 4)
			So(a.Cap(), ShouldEqual, 4)
			So(slices.Collect(a.Values()), ShouldResemble, []int{80, 30, 50, 40})
		})

		Convey("Should not alias the caller's slice", func() {
			src := []int{1, 2, 3}
			a := From(src...)
			src[0] = 100
			v, err := a.Get(0)
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 1)
		})

		Convey("FromSeq should trim the capacity to the number of items", func() {
			a := FromSeq(slices.Values([]string{"a", "b", "c"}))
			So(a.Len(), ShouldEqual, 3)
			So(a.Cap(), ShouldEqual, 3)
			So(a.Slice(), ShouldResemble, []string{"a", "b", "c"})
		})

		Convey("FromSeq of an empty sequence should be empty", func() {
			a := FromSeq(slices.Values([]int{}))
			So(a.IsEmpty(), ShouldBeTrue)
			So(a.Cap(), ShouldEqual, 0)
		})
	})
}

func TestGetSet(t *testing.T) {
	Convey("Given an array of three elements", t, func() {
		a := From(1, 2, 3)

		Convey("Get should return each element", func() {
			for i, want := range []int{1, 2, 3} {
				got, err := a.Get(i)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Set should overwrite in place", func() {
			So(a.Set(1, 20), ShouldBeNil)
			So(a.Slice(), ShouldResemble, []int{1, 20, 3})
		})

		Convey("Out of range indices should fail without touching state", func() {
			for _, index := range []int{-1, 3, 10} {
				_, err := a.Get(index)
				So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
				So(errors.Is(a.Set(index, 9), ErrOutOfRange), ShouldBeTrue)
			}
			So(a.Slice(), ShouldResemble, []int{1, 2, 3})
			So(a.Len(), ShouldEqual, 3)
		})

		Convey("Slots past the length should not be readable", func() {
			a.SetCapacity(8)
			_, err := a.Get(3)
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		})

		Convey("At and Last should return options", func() {
			So(a.At(0).MustGet(), ShouldEqual, 1)
			So(a.At(3).IsAbsent(), ShouldBeTrue)
			So(a.At(-1).IsAbsent(), ShouldBeTrue)
			So(a.Last().MustGet(), ShouldEqual, 3)

			a.Clear()
			So(a.Last().IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestCapacity(t *testing.T) {
	Convey("SetCapacity", t, func() {
		a := From(1, 2, 3, 4)

		Convey("Should grow and keep the elements", func() {
			So(a.SetCapacity(10), ShouldEqual, 10)
			So(a.Cap(), ShouldEqual, 10)
			So(a.Slice(), ShouldResemble, []int{1, 2, 3, 4})
		})

		Convey("Should clamp a request below the length to the length", func() {
			a.SetCapacity(10)
			So(a.SetCapacity(2), ShouldEqual, 4)
			So(a.Cap(), ShouldEqual, 4)
			So(a.Slice(), ShouldResemble, []int{1, 2, 3, 4})
		})

		Convey("Should treat a negative request like any request below the length", func() {
			So(a.SetCapacity(-5), ShouldEqual, 4)
		})

		Convey("Should return the current capacity when nothing changes", func() {
			So(a.SetCapacity(4), ShouldEqual, 4)
		})

		Convey("Should zero slots exposed by a later shrink and regrow", func() {
			b := From("x", "y")
			b.SetCapacity(6)
			So(b.Remove("y"), ShouldBeTrue)
			b.SetCapacity(1)
			b.SetCapacity(4)
			b.Add("z")
			So(b.Slice(), ShouldResemble, []string{"x", "z"})
		})
	})

	Convey("SetGrowthFactor", t, func() {
		a := NewDefault[int]()

		Convey("Should clamp values below the minimum", func() {
			a.SetGrowthFactor(0.5)
			So(a.GrowthFactor(), ShouldEqual, 1.1)
		})

		Convey("Should clamp values above the maximum", func() {
			a.SetGrowthFactor(5.0)
			So(a.GrowthFactor(), ShouldEqual, 2.0)
		})

		Convey("Should keep values inside the range", func() {
			a.SetGrowthFactor(1.5)
			So(a.GrowthFactor(), ShouldEqual, 1.5)
		})
	})
}

func TestGrowth(t *testing.T) {
	Convey("Add", t, func() {
		Convey("Should double a full buffer with the default factor", func() {
			a, _ := New[int](4)
			for i := 0; i < 5; i++ {
				a.Add(i)
			}
			So(a.Cap(), ShouldEqual, 8)
			So(a.Slice(), ShouldResemble, []int{0, 1, 2, 3, 4})
		})

		Convey("Should grow a zero-capacity buffer by one", func() {
			a, _ := New[int](0)
			a.Add(7)
			So(a.Cap(), ShouldEqual, 1)
			a.Add(8)
			So(a.Cap(), ShouldEqual, 2)
		})

		Convey("Should grow by one when the factor does not change the capacity", func() {
			a, _ := New[int](5)
			a.SetGrowthFactor(1.1)
			for i := 0; i < 6; i++ {
				a.Add(i)
			}
			// floor(5 * 1.1) == 5
			So(a.Cap(), ShouldEqual, 6)
		})

		Convey("Should floor the scaled capacity", func() {
			a, _ := New[int](10)
			a.SetGrowthFactor(1.5)
			for i := 0; i < 11; i++ {
				a.Add(i)
			}
			So(a.Cap(), ShouldEqual, 15)
		})

		Convey("Should keep every added value in order", func() {
			a, _ := New[int](1)
			for i := 0; i < 1000; i++ {
				a.Add(i * 3)
				So(a.Cap(), ShouldBeGreaterThanOrEqualTo, a.Len())
			}
			So(a.Len(), ShouldEqual, 1000)
			for i := 0; i < 1000; i++ {
				So(a.At(i).MustGet(), ShouldEqual, i*3)
			}
		})
	})
}
