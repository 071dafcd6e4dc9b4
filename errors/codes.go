package errors

// ErrorCode identifies an application error category
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 0
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003

	ErrorCode_MISSING_AUDIO_FILE ErrorCode = 2000
	ErrorCode_UNSUPPORTED_AUDIO  ErrorCode = 2001
	ErrorCode_UPLOAD_READ_FAILED ErrorCode = 2002

	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001
	ErrorCode_AI_SERVICE_UNAVAILABLE  ErrorCode = 3002

	ErrorCode_REPORT_GENERATION_FAILED ErrorCode = 4000
	ErrorCode_REPORT_NOT_FOUND         ErrorCode = 4001

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 5000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_MISSING_AUDIO_FILE:         "MISSING_AUDIO_FILE",
	ErrorCode_UNSUPPORTED_AUDIO:          "UNSUPPORTED_AUDIO",
	ErrorCode_UPLOAD_READ_FAILED:         "UPLOAD_READ_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:    "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_REPORT_GENERATION_FAILED:   "REPORT_GENERATION_FAILED",
	ErrorCode_REPORT_NOT_FOUND:           "REPORT_NOT_FOUND",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
}

// String returns the symbolic name for the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
