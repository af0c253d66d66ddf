package runner

// Conclusion is the final pass/fail verdict reported to the pipeline.
type Conclusion string

const (
	// ConclusionSuccess marks a run whose result subtype was success.
	ConclusionSuccess Conclusion = "success"
	// ConclusionFailure marks every other terminal state.
	ConclusionFailure Conclusion = "failure"
)

// Outcome is the typed result of one agent run.
type Outcome struct {
	// Conclusion is the final verdict.
	Conclusion Conclusion `json:"conclusion"`
	// ExecutionFile is the transcript path, set only when the write succeeded.
	ExecutionFile string `json:"execution_file,omitempty"`
	// StructuredOutput is the serialized structured payload, set only when a
	// schema was requested and satisfied.
	StructuredOutput string `json:"structured_output,omitempty"`
}

// PipelineOutputs renders the outcome as step outputs for ghoutput.Write.
// Absent values stay absent rather than appearing as empty strings.
func (o *Outcome) PipelineOutputs() map[string]string {
	outputs := map[string]string{
		"conclusion": string(o.Conclusion),
	}
	if o.ExecutionFile != "" {
		outputs["execution_file"] = o.ExecutionFile
	}
	if o.StructuredOutput != "" {
		outputs["structured_output"] = o.StructuredOutput
	}
	return outputs
}
