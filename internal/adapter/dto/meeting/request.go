package meeting

// GenerateReportRequest carries the optional fields accompanying the audio
// upload
type GenerateReportRequest struct {
	// Language overrides the transcriber's auto-detection (ISO 639-1 or
	// BCP 47 code).
	Language string `form:"language" validate:"omitempty,max=16"`

	// Format selects the response body: "markdown" (default, the report
	// document itself) or "json" (structured notes).
	Format string `form:"format" query:"format" validate:"omitempty,oneof=markdown json"`
}
