package inline

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Should split on semicolons and newlines", func() {
			ops, err := Parse("add 11; prepend 99\ndrop\n\n# comment\nREMOVE 30")
			So(err, ShouldBeNil)
			So(ops, ShouldResemble, []Op{
				{Name: "add", Args: []string{"11"}},
				{Name: "prepend", Args: []string{"99"}},
				{Name: "drop", Args: []string{}},
				{Name: "remove", Args: []string{"30"}},
			})
		})

		Convey("Should accept optional args in both forms", func() {
			ops, err := Parse("capacity; capacity 20; growth; growth 1.5")
			So(err, ShouldBeNil)
			So(ops, ShouldHaveLength, 4)
			So(ops[0].mutates(), ShouldBeFalse)
			So(ops[1].mutates(), ShouldBeTrue)
		})

		Convey("Should reject an empty script", func() {
			_, err := Parse(" ; \n# nothing")
			So(errors.Is(err, ErrEmptyScript), ShouldBeTrue)
		})

		Convey("Should reject wrong arity", func() {
			_, err := Parse("insert 1")
			So(errors.Is(err, ErrArity), ShouldBeTrue)
		})

		Convey("Should reject non-numeric args", func() {
			_, err := Parse("add eleven")
			So(errors.Is(err, ErrBadArgument), ShouldBeTrue)

			_, err = Parse("growth fast")
			So(errors.Is(err, ErrBadArgument), ShouldBeTrue)
		})

		Convey("Should suggest a close name for unknown ops", func() {
			_, err := Parse("add 1; insrt 0 1")
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "op 2")
			So(err.Error(), ShouldContainSubstring, `did you mean "insert"`)
		})

		Convey("Should not suggest anything for unrelated names", func() {
			_, err := Parse("zzz")
			So(errors.Is(err, ErrUnknownOp), ShouldBeTrue)
			So(err.Error(), ShouldNotContainSubstring, "did you mean")
		})
	})

	Convey("Op.String", t, func() {
		So(Op{Name: "insert", Args: []string{"0", "5"}}.String(), ShouldEqual, "insert 0 5")
		So(Op{Name: "drop"}.String(), ShouldEqual, "drop")
	})
}
