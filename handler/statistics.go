package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/AirHelp/numstats/api"
	"github.com/AirHelp/numstats/helper"
	"github.com/AirHelp/numstats/parser"
	"github.com/AirHelp/numstats/stat"
	"github.com/AirHelp/numstats/usage"
)

const loggedNumbers = 20

//go:generate mockgen -destination=mock/observer_mock.go -package handlerMock github.com/AirHelp/numstats/handler Observer
type Observer interface {
	ObserveComputation(stat.Operation, error)
}

type noopObserver struct{}

func (noopObserver) ObserveComputation(stat.Operation, error) {}

type Config struct {
	Recorder usage.Recorder
	Observer Observer
}

// The StatisticsHandler type provides handler functions for the mean,
// median and mode endpoints.
type StatisticsHandler struct {
	recorder usage.Recorder
	observer Observer
}

// NewStatistics returns a new StatisticsHandler, missing collaborators are
// replaced with no-ops.
func NewStatistics(config Config) *StatisticsHandler {
	h := &StatisticsHandler{
		recorder: config.Recorder,
		observer: config.Observer,
	}

	if h.recorder == nil {
		h.recorder = usage.Noop{}
	}

	if h.observer == nil {
		h.observer = noopObserver{}
	}

	return h
}

// Mean returns the arithmetic mean of the nums query parameter
func (h *StatisticsHandler) Mean(c echo.Context) error {
	return h.compute(c, stat.OperationMean)
}

// Median returns the median of the nums query parameter
func (h *StatisticsHandler) Median(c echo.Context) error {
	return h.compute(c, stat.OperationMedian)
}

// Mode returns the most frequent value of the nums query parameter
func (h *StatisticsHandler) Mode(c echo.Context) error {
	return h.compute(c, stat.OperationMode)
}

// Handler returns the handler function serving op.
func (h *StatisticsHandler) Handler(op stat.Operation) echo.HandlerFunc {
	switch op {
	case stat.OperationMean:
		return h.Mean
	case stat.OperationMedian:
		return h.Median
	case stat.OperationMode:
		return h.Mode
	default:
		return nil
	}
}

func (h *StatisticsHandler) compute(c echo.Context, op stat.Operation) error {
	logger := zap.S().With("operation", op)

	numbers, err := parser.FromQuery(c.QueryParams(), api.NumsParam)
	if err != nil {
		h.observer.ObserveComputation(op, err)
		logger.Debugf("rejected input: %q", c.QueryParam(api.NumsParam))

		return api.InvalidInput()
	}

	logger.Debugf("parsed %d numbers: %v", len(numbers), helper.Preview(numbers, loggedNumbers))

	result, err := stat.Summarize(op, numbers)
	h.observer.ObserveComputation(op, err)

	if err != nil {
		return err
	}

	if err := h.recorder.Record(c.Request().Context(), op); err != nil {
		logger.Warnf("failed to record usage in %v: %v", h.recorder.Kind(), err)
	}

	return c.JSON(http.StatusOK, api.Response{Response: result})
}
