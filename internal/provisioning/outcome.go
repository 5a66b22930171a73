package provisioning

import (
	hcloudplat "github.com/llamaup/llamaup/internal/platform/hcloud"
)

// Result is the terminal classification of one workflow run.
type Result string

const (
	// ResultSucceeded means every fatal stage passed. Warnings may exist.
	ResultSucceeded Result = "succeeded"
	// ResultFailedNoInstance means the run failed before any billable
	// resource existed. Nothing to clean up.
	ResultFailedNoInstance Result = "failed-no-instance"
	// ResultFailedWithInstance means the run failed while a server exists.
	// Cleanup was offered; InstanceDeleted records the decision.
	ResultFailedWithInstance Result = "failed-with-instance"
)

// Outcome is returned exactly once per workflow run.
type Outcome struct {
	Result Result

	// Stage names the failed phase. Empty on success.
	Stage string
	// Err is the fatal error. Nil on success.
	Err error

	// Instance is the in-flight server, if one was created. Retained on
	// failure so the operator can clean up manually.
	Instance *hcloudplat.Instance
	// InstanceDeleted records whether cleanup removed the server.
	InstanceDeleted bool

	// Warnings are the degraded conditions collected along the way.
	Warnings []string
}

// Succeeded reports whether the run reached the end of the pipeline.
func (o *Outcome) Succeeded() bool { return o.Result == ResultSucceeded }

// ResidualInstance reports whether a server still exists after the run.
func (o *Outcome) ResidualInstance() bool {
	return o.Instance != nil && (o.Result == ResultSucceeded || !o.InstanceDeleted)
}
