package services

import (
	"context"
	"net/http"
	"strings"

	"aplyease_backend/internal/ai"
	"aplyease_backend/internal/latex"
	"aplyease_backend/internal/services/dto"
	"aplyease_backend/pkg/apperrors"
)

const generateSystemPrompt = `You are a resume typesetter. Convert the user's plain-text resume into a
complete, compilable LaTeX document using the article class. Output only the
LaTeX source, no commentary and no markdown fences.`

const refineSystemPrompt = `You are a resume typesetter. Apply the user's instructions to the LaTeX
resume they provide. Keep the document compilable. Output only the full
updated LaTeX source, no commentary and no markdown fences.`

type ResumeService interface {
	Generate(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.ResumeResponse, error)
	Refine(ctx context.Context, req *dto.RefineResumeRequest) (*dto.ResumeResponse, error)
	Compile(ctx context.Context, req *dto.CompileResumeRequest) ([]byte, error)
}

type resumeService struct {
	aiClient *ai.Client
	compiler *latex.Compiler
}

func NewResumeService(aiClient *ai.Client, compiler *latex.Compiler) ResumeService {
	return &resumeService{
		aiClient: aiClient,
		compiler: compiler,
	}
}

func (s *resumeService) Generate(ctx context.Context, req *dto.GenerateResumeRequest) (*dto.ResumeResponse, error) {
	source, err := s.aiClient.Complete(ctx, generateSystemPrompt, req.PlainText)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "resume", "Resume generation failed", http.StatusBadGateway)
	}
	return &dto.ResumeResponse{LaTeX: stripFences(source)}, nil
}

func (s *resumeService) Refine(ctx context.Context, req *dto.RefineResumeRequest) (*dto.ResumeResponse, error) {
	userPrompt := "Instructions:\n" + req.Instructions + "\n\nCurrent LaTeX:\n" + req.LaTeX
	source, err := s.aiClient.Complete(ctx, refineSystemPrompt, userPrompt)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "resume", "Resume refinement failed", http.StatusBadGateway)
	}
	return &dto.ResumeResponse{LaTeX: stripFences(source)}, nil
}

func (s *resumeService) Compile(ctx context.Context, req *dto.CompileResumeRequest) ([]byte, error) {
	pdf, err := s.compiler.Compile(ctx, req.LaTeX)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "resume", "LaTeX compilation failed", http.StatusBadGateway)
	}
	return pdf, nil
}

// stripFences removes markdown code fences models sometimes wrap the source
// in despite the prompt.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```latex")
	trimmed = strings.TrimPrefix(trimmed, "```tex")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
