package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldRunID      = "run_id"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldFile      = "file"
	FieldLine      = "line"
	FieldBatch     = "batch"
	FieldBatchSize = "batch_size"
)
