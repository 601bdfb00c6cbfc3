package array

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFluent(t *testing.T) {
	Convey("Given [80, 30, 50, 40]", t, func() {
		a := From(80, 30, 50, 40)

		Convey("Append should mutate and return the receiver", func() {
			So(a.Append(11), ShouldPointTo, a)
			So(a.Slice(), ShouldResemble, []int{80, 30, 50, 40, 11})
		})

		Convey("Prepend should mutate and return the receiver", func() {
			So(a.Prepend(99), ShouldPointTo, a)
			So(a.Slice(), ShouldResemble, []int{99, 80, 30, 50, 40})
		})

		Convey("RemoveValue should return the receiver whether or not it removed", func() {
			So(a.RemoveValue(30), ShouldPointTo, a)
			So(a.RemoveValue(1000), ShouldPointTo, a)
			So(a.Slice(), ShouldResemble, []int{80, 50, 40})
		})

		Convey("The full scenario should match", func() {
			a.Append(11)
			So(a.Slice(), ShouldResemble, []int{80, 30, 50, 40, 11})
			a.Prepend(99)
			So(a.Slice(), ShouldResemble, []int{99, 80, 30, 50, 40, 11})
			same, err := a.DropLast()
			So(err, ShouldBeNil)
			So(same, ShouldPointTo, a)
			So(a.Slice(), ShouldResemble, []int{99, 80, 30, 50, 40})
			a.RemoveValue(30)
			So(a.Slice(), ShouldResemble, []int{99, 80, 50, 40})
		})

		Convey("Calls should chain", func() {
			a.Append(11).Prepend(99).RemoveValue(30)
			So(a.Slice(), ShouldResemble, []int{99, 80, 50, 40, 11})
		})
	})

	Convey("DropLast on an empty array", t, func() {
		a := NewDefault[int]()
		same, err := a.DropLast()
		So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		So(same, ShouldPointTo, a)
		So(a.Len(), ShouldEqual, 0)
	})
}
