package loop_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mrua/internal/loop"
)

var _ = Describe("FrameQueue", func() {
	var q *loop.FrameQueue

	BeforeEach(func() {
		q = loop.NewFrameQueue()
	})

	It("issues distinct non-zero handles", func() {
		a := q.RequestFrame(func() {})
		b := q.RequestFrame(func() {})
		Expect(a).NotTo(BeZero())
		Expect(b).NotTo(Equal(a))
		Expect(q.Len()).To(Equal(2))
	})

	It("runs only the callbacks queued before the flush", func() {
		calls := 0
		var again func()
		again = func() {
			calls++
			q.RequestFrame(again)
		}
		q.RequestFrame(again)

		Expect(q.Flush()).To(Equal(1))
		Expect(calls).To(Equal(1))
		Expect(q.Len()).To(Equal(1))

		Expect(q.Flush()).To(Equal(1))
		Expect(calls).To(Equal(2))
	})

	It("never runs a cancelled callback", func() {
		ran := false
		h := q.RequestFrame(func() { ran = true })
		q.CancelFrame(h)

		Expect(q.Flush()).To(BeZero())
		Expect(ran).To(BeFalse())
	})

	It("honours a cancel issued by an earlier callback of the same flush", func() {
		var second loop.Handle
		ran := false
		q.RequestFrame(func() { q.CancelFrame(second) })
		second = q.RequestFrame(func() { ran = true })

		Expect(q.Flush()).To(Equal(1))
		Expect(ran).To(BeFalse())
	})

	It("ignores unknown handles", func() {
		q.RequestFrame(func() {})
		q.CancelFrame(loop.Handle(42))
		Expect(q.Len()).To(Equal(1))
	})
})
