package api

import "github.com/AirHelp/numstats/stat"

// Response wraps a computed statistic
type Response struct {
	Response stat.Result `json:"response"`
}
