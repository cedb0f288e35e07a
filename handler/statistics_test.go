package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/AirHelp/numstats/errorhandler"
	"github.com/AirHelp/numstats/handler"
	handlerMock "github.com/AirHelp/numstats/handler/mock"
	"github.com/AirHelp/numstats/parser"
	"github.com/AirHelp/numstats/stat"
	usageMock "github.com/AirHelp/numstats/usage/mock"
)

const invalidInputBody = `{"error": "Invalid input. The query string should contain numeric values separated by commas."}`

var _ = Describe("StatisticsHandler", func() {
	var (
		mockCtrl     *gomock.Controller
		recorderMock *usageMock.MockRecorder
		observerMock *handlerMock.MockObserver

		router *echo.Echo
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())

		recorderMock = usageMock.NewMockRecorder(mockCtrl)
		observerMock = handlerMock.NewMockObserver(mockCtrl)

		h := handler.NewStatistics(handler.Config{
			Recorder: recorderMock,
			Observer: observerMock,
		})

		router = echo.New()
		router.HideBanner = true
		router.HTTPErrorHandler = errorhandler.HTTPErrorHandler
		router.Logger.SetOutput(io.Discard)

		for _, op := range stat.Operations() {
			router.GET("/"+string(op), h.Handler(op))
		}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	serve := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}

	Describe("Successful computations", func() {
		DescribeTable("Properly responds with the statistic",
			func(target string, op stat.Operation, body string) {
				observerMock.EXPECT().ObserveComputation(op, nil)
				recorderMock.EXPECT().Record(gomock.Any(), op).Return(nil)

				rec := serve(target)

				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(rec.Header().Get(echo.HeaderContentType)).To(HavePrefix(echo.MIMEApplicationJSON))
				Expect(rec.Body.String()).To(MatchJSON(body))
			},
			Entry("Mean", "/mean?nums=10,20,30", stat.OperationMean,
				`{"response": {"operation": "mean", "value": "20"}}`),
			Entry("Fractional mean", "/mean?nums=1,2", stat.OperationMean,
				`{"response": {"operation": "mean", "value": "1.5"}}`),
			Entry("Median with spaces", "/median?nums=1,%202,%203,%204", stat.OperationMedian,
				`{"response": {"operation": "median", "value": "2.5"}}`),
			Entry("Odd median", "/median?nums=3,1,2", stat.OperationMedian,
				`{"response": {"operation": "median", "value": "2"}}`),
			Entry("Mode", "/mode?nums=1,1,2,3", stat.OperationMode,
				`{"response": {"operation": "mode", "value": "1"}}`),
			Entry("Mode tie", "/mode?nums=1,2,2,3,3", stat.OperationMode,
				`{"response": {"operation": "mode", "value": "2"}}`),
			Entry("Negative values", "/mean?nums=-5,0,-25,9", stat.OperationMean,
				`{"response": {"operation": "mean", "value": "-5.25"}}`),
		)

		It("Still responds when usage cannot be recorded", func() {
			observerMock.EXPECT().ObserveComputation(stat.OperationMode, nil)
			recorderMock.EXPECT().Record(gomock.Any(), stat.OperationMode).Return(errors.New("redis down"))
			recorderMock.EXPECT().Kind().Return("redis")

			rec := serve("/mode?nums=4,4")

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"response": {"operation": "mode", "value": "4"}}`))
		})
	})

	Describe("Invalid input", func() {
		DescribeTable("Properly rejects with the fixed error",
			func(target string, op stat.Operation) {
				observerMock.EXPECT().ObserveComputation(op, parser.ErrInvalidInput)

				rec := serve(target)

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				Expect(rec.Body.String()).To(MatchJSON(invalidInputBody))
			},
			Entry("Non numeric", "/mean?nums=abc", stat.OperationMean),
			Entry("Non numeric on median", "/median?nums=abc", stat.OperationMedian),
			Entry("Non numeric on mode", "/mode?nums=abc", stat.OperationMode),
			Entry("Missing parameter", "/mean", stat.OperationMean),
			Entry("Other parameter only", "/median?numbers=1,2", stat.OperationMedian),
			Entry("Empty parameter", "/mode?nums=", stat.OperationMode),
			Entry("Empty token", "/mean?nums=1,,3", stat.OperationMean),
			Entry("Trailing comma", "/median?nums=1,2,", stat.OperationMedian),
			Entry("Partially numeric", "/mode?nums=1,2,x", stat.OperationMode),
		)
	})

	Describe("NewStatistics()", func() {
		It("Works without collaborators", func() {
			h := handler.NewStatistics(handler.Config{})

			r := echo.New()
			r.HTTPErrorHandler = errorhandler.HTTPErrorHandler
			r.GET("/mean", h.Mean)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mean?nums=2,4", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(MatchJSON(`{"response": {"operation": "mean", "value": "3"}}`))
		})
	})

	Describe("Handler()", func() {
		It("Returns nil for unknown operations", func() {
			h := handler.NewStatistics(handler.Config{})

			Expect(h.Handler(stat.Operation("variance"))).To(BeNil())
		})
	})
})
