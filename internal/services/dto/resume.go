package dto

type GenerateResumeRequest struct {
	PlainText string `json:"plain_text" validate:"required,min=40"`
}

type RefineResumeRequest struct {
	LaTeX        string `json:"latex" validate:"required,min=20"`
	Instructions string `json:"instructions" validate:"required,min=5"`
}

type CompileResumeRequest struct {
	LaTeX string `json:"latex" validate:"required,min=20"`
}

type ResumeResponse struct {
	LaTeX string `json:"latex"`
}
