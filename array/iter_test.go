package array

import (
	"errors"
	"slices"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIteration(t *testing.T) {
	Convey("Given [80, 30, 50, 40]", t, func() {
		a := From(80, 30, 50, 40)

		Convey("Values should yield the elements in order", func() {
			So(slices.Collect(a.Values()), ShouldResemble, []int{80, 30, 50, 40})
		})

		Convey("Iteration should be restartable", func() {
			seq := a.Values()
			So(slices.Collect(seq), ShouldResemble, slices.Collect(seq))
		})

		Convey("All should yield indices", func() {
			var indices []int
			for i := range a.All() {
				indices = append(indices, i)
			}
			So(indices, ShouldResemble, []int{0, 1, 2, 3})
		})

		Convey("Backward should yield from the end", func() {
			var values []int
			for _, v := range a.Backward() {
				values = append(values, v)
			}
			So(values, ShouldResemble, []int{40, 50, 30, 80})
		})

		Convey("Breaking early should stop the iterator", func() {
			var values []int
			for v := range a.Values() {
				if v == 50 {
					break
				}
				values = append(values, v)
			}
			So(values, ShouldResemble, []int{80, 30})
		})

		Convey("Elements added during iteration should not be observed", func() {
			count := 0
			for range a.Values() {
				a.Add(1)
				count++
			}
			So(count, ShouldEqual, 4)
			So(a.Len(), ShouldEqual, 8)
		})
	})
}

func TestCopyTo(t *testing.T) {
	Convey("CopyTo", t, func() {
		a := From(1, 2, 3)

		Convey("Should copy at an offset", func() {
			dst := make([]int, 5)
			So(a.CopyTo(dst, 2), ShouldBeNil)
			So(dst, ShouldResemble, []int{0, 0, 1, 2, 3})
		})

		Convey("Should fail when the destination is too small", func() {
			dst := make([]int, 4)
			So(errors.Is(a.CopyTo(dst, 2), ErrInvalidArgument), ShouldBeTrue)
			So(dst, ShouldResemble, []int{0, 0, 0, 0})
		})

		Convey("Should fail on a negative offset", func() {
			So(errors.Is(a.CopyTo(make([]int, 10), -1), ErrInvalidArgument), ShouldBeTrue)
		})
	})
}

func TestCloneEqual(t *testing.T) {
	Convey("Clone", t, func() {
		a := From("a", "b")
		a.SetGrowthFactor(1.5)
		a.SetCapacity(5)

		b := a.Clone()
		So(b.Equal(a), ShouldBeTrue)
		So(b.Cap(), ShouldEqual, 5)
		So(b.GrowthFactor(), ShouldEqual, 1.5)

		Convey("Should be independent of the original", func() {
			b.Add("c")
			So(a.Len(), ShouldEqual, 2)
			So(b.Equal(a), ShouldBeFalse)
		})

		Convey("Equal should ignore capacity", func() {
			So(From("a", "b").Equal(a), ShouldBeTrue)
			So(a.Equal(nil), ShouldBeFalse)
		})
	})
}
