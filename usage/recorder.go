package usage

import (
	"context"

	"github.com/AirHelp/numstats/stat"
)

//go:generate mockgen -destination=mock/recorder_mock.go -package usageMock github.com/AirHelp/numstats/usage Recorder
type Recorder interface {
	Kind() string
	Record(context.Context, stat.Operation) error
}

// Noop is used when no usage backend is configured.
type Noop struct{}

func (Noop) Kind() string {
	return "noop"
}

func (Noop) Record(context.Context, stat.Operation) error {
	return nil
}
