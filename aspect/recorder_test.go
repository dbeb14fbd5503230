package aspect

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorder(t *testing.T) {
	Convey("Given a new recorder", t, func() {
		r := NewRecorder[string]()

		Convey("it has not been called and holds no value", func() {
			So(r.Called(), ShouldBeFalse)
			v, ok := r.ReturnValue()
			So(ok, ShouldBeFalse)
			So(v, ShouldBeEmpty)
		})

		Convey("calling Next records the value", func() {
			r.Next("foo")
			So(r.Called(), ShouldBeTrue)
			v, ok := r.ReturnValue()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "foo")

			Convey("and Reset restores the initial state", func() {
				r.Reset()
				So(r.Called(), ShouldBeFalse)
				v, ok := r.ReturnValue()
				So(ok, ShouldBeFalse)
				So(v, ShouldBeEmpty)
			})
		})

		Convey("calling Proceed marks it called without a value", func() {
			r.Next("foo")
			r.Proceed()
			So(r.Called(), ShouldBeTrue)
			v, ok := r.ReturnValue()
			So(ok, ShouldBeFalse)
			So(v, ShouldBeEmpty)
		})
	})
}
