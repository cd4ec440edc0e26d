package domain

// TranslatePostInput requests translation of one stored post into one locale
type TranslatePostInput struct {
	PostID       string `json:"post_id" validate:"required,uuid4" example:"6f1e7a4e-8b4f-4b52-9a5e-2f3a1d9c0b7e"`
	TargetLocale string `json:"target_locale" validate:"required,oneof=th fr es zh" example:"fr"`
}

// TranslatePostOutput summarizes the stored locale variant
type TranslatePostOutput struct {
	PostID       string `json:"post_id"`
	TargetLocale string `json:"target_locale"`
	Source       Source `json:"source"`
	Note         string `json:"note,omitempty"`
	Message      string `json:"message"`
}
